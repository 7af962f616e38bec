package coloringbook

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mergimdemku/flux-coloring-book-generator-sub000/flux"
	"github.com/mergimdemku/flux-coloring-book-generator-sub000/lineart"
	"github.com/mergimdemku/flux-coloring-book-generator-sub000/story"

	aa_bucket "github.com/aaronland/gocloud-blob/bucket"
	"github.com/go-pdf/fpdf"
	"github.com/whosonfirst/go-reader"
)

// Run executes one complete book generation: load the theme, generate
// and post-process every page, assemble the PDF and write the PDF and
// manifest to the configured bucket. The assembled project is returned
// for callers that update project records afterwards.
func Run(ctx context.Context, cfg *Config) (*BookProject, error) {

	r, err := reader.NewReader(ctx, cfg.ReaderURI)

	if err != nil {
		return nil, fmt.Errorf("Failed to create theme reader, %w", err)
	}

	theme, err := story.LoadTheme(ctx, r, cfg.Theme)

	if err != nil {
		return nil, fmt.Errorf("Failed to load theme, %w", err)
	}

	style, err := lineart.ParseStyle(cfg.Style)

	if err != nil {
		return nil, fmt.Errorf("Failed to parse style, %w", err)
	}

	timeout := time.Duration(cfg.Flux.TimeoutSeconds) * time.Second

	backend, err := flux.NewClient(cfg.Flux.EndpointTemplate, cfg.Flux.Model, timeout)

	if err != nil {
		return nil, fmt.Errorf("Failed to create diffusion client, %w", err)
	}

	return RunWithBackend(ctx, cfg, theme, style, backend)
}

// RunWithBackend is Run with the theme, style and backend already
// resolved, so tests and the Lambda handler can inject their own.
func RunWithBackend(ctx context.Context, cfg *Config, theme *story.Theme, style lineart.Style, backend flux.Backend) (*BookProject, error) {

	opts := &GenerateBookOptions{
		Title:       cfg.Title,
		URL:         cfg.URL,
		Theme:       theme,
		Style:       style,
		Pages:       cfg.Pages,
		Seed:        cfg.Seed,
		Backend:     backend,
		FluxOptions: cfg.GenerateOptions(),
	}

	slog.Info("Generating coloring book",
		"title", cfg.Title,
		"theme", theme.Name,
		"style", style.String(),
		"pages", cfg.Pages,
		"seed", cfg.Seed)

	project, err := GenerateBook(ctx, opts)

	if err != nil {
		return nil, fmt.Errorf("Failed to generate book, %w", err)
	}

	pdf := fpdf.New("P", "in", "Letter", "")

	err = AssembleBook(ctx, pdf, project)

	if err != nil {
		return nil, fmt.Errorf("Failed to assemble book, %w", err)
	}

	bucket, err := aa_bucket.OpenBucket(ctx, cfg.BucketURI)

	if err != nil {
		return nil, fmt.Errorf("Failed to open bucket, %w", err)
	}

	defer bucket.Close()

	filename := cfg.Filename

	if filename == "" {
		filename = fmt.Sprintf("%s-coloringbook.pdf", slugify(cfg.Title))
	}

	pdf_wr, err := bucket.NewWriter(ctx, filename, nil)

	if err != nil {
		return nil, fmt.Errorf("Failed to create writer for %s, %w", filename, err)
	}

	err = pdf.OutputAndClose(pdf_wr)

	if err != nil {
		return nil, fmt.Errorf("Failed to write %s, %w", filename, err)
	}

	slog.Info("Wrote coloring book", "filename", filename)

	manifest_name := strings.TrimSuffix(filename, ".pdf") + ".json"

	manifest_wr, err := bucket.NewWriter(ctx, manifest_name, nil)

	if err != nil {
		return nil, fmt.Errorf("Failed to create writer for %s, %w", manifest_name, err)
	}

	err = writeManifestTo(manifest_wr, project)

	if err != nil {
		manifest_wr.Close()
		return nil, fmt.Errorf("Failed to write manifest, %w", err)
	}

	err = manifest_wr.Close()

	if err != nil {
		return nil, fmt.Errorf("Failed to close manifest writer, %w", err)
	}

	slog.Info("Wrote manifest", "filename", manifest_name)

	return project, nil
}

func slugify(s string) string {

	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Join(strings.Fields(s), "-")

	return s
}
