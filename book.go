// Package coloringbook assembles generated, post-processed images in to
// a printable coloring book PDF.
package coloringbook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"io"
	"log/slog"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/whosonfirst/go-whosonfirst-export/v2"
	"github.com/whosonfirst/go-writer/v3"
)

// Page is one (prompt, image) pair in a book. Image may be nil when the
// diffusion backend produced nothing for the page; such pages are
// skipped at assembly time.
type Page struct {
	Number         int         `json:"number"`
	Scene          string      `json:"scene"`
	Prompt         string      `json:"prompt"`
	NegativePrompt string      `json:"negative_prompt"`
	Image          image.Image `json:"-"`
}

// BookProject is a book assembled once and serialized to PDF. There is
// no update or versioning lifecycle; a project is built, written out and
// discarded.
type BookProject struct {
	Title string  `json:"title"`
	Theme string  `json:"theme"`
	Style string  `json:"style"`
	Seed  int64   `json:"seed"`
	URL   string  `json:"url,omitempty"`
	Pages []*Page `json:"pages"`
}

func NewBookProject(title string, theme string, style string, seed int64) *BookProject {

	return &BookProject{
		Title: title,
		Theme: theme,
		Style: style,
		Seed:  seed,
		Pages: make([]*Page, 0),
	}
}

func (p *BookProject) AddPage(scene string, prompt_text string, negative string, im image.Image) *Page {

	page := &Page{
		Number:         len(p.Pages) + 1,
		Scene:          scene,
		Prompt:         prompt_text,
		NegativePrompt: negative,
		Image:          im,
	}

	p.Pages = append(p.Pages, page)
	return page
}

// AssembleBook writes the cover and one sheet per page to the PDF. Pages
// without an image are skipped with a warning; a single failed page
// never aborts the book.
func AssembleBook(ctx context.Context, pdf *fpdf.Fpdf, project *BookProject) error {

	var cover image.Image

	for _, page := range project.Pages {

		if page.Image != nil {
			cover = page.Image
			break
		}
	}

	cover_opts := &AddCoverSheetOptions{
		Image:    cover,
		Title:    project.Title,
		Subtitle: fmt.Sprintf("A %s coloring book", project.Theme),
		URL:      project.URL,
	}

	err := AddCoverSheet(ctx, pdf, cover_opts)

	if err != nil {
		return fmt.Errorf("Failed to add cover sheet, %w", err)
	}

	for _, page := range project.Pages {

		if page.Image == nil {

			slog.Warn("Page has no image, skipping",
				"page", page.Number,
				"scene", page.Scene)

			continue
		}

		sheet_opts := &AddSheetOptions{
			Image:      page.Image,
			Caption:    page.Scene,
			PageNumber: page.Number,
			URL:        project.URL,
		}

		err := AddSheet(ctx, pdf, sheet_opts)

		if err != nil {
			return fmt.Errorf("Failed to add sheet for page %d, %w", page.Number, err)
		}
	}

	return nil
}

// WriteManifest writes the project's JSON manifest (prompts and page
// metadata, no pixel data) through wr under the given path.
func WriteManifest(ctx context.Context, wr writer.Writer, project *BookProject, path string) error {

	body, err := json.MarshalIndent(project, "", "  ")

	if err != nil {
		return fmt.Errorf("Failed to marshal manifest, %w", err)
	}

	_, err = wr.Write(ctx, path, bytes.NewReader(body))

	if err != nil {
		return fmt.Errorf("Failed to write manifest to %s, %w", path, err)
	}

	return nil
}

// writeManifestTo writes the manifest JSON to a plain stream (a bucket
// writer, usually).
func writeManifestTo(wr io.Writer, project *BookProject) error {

	body, err := json.MarshalIndent(project, "", "  ")

	if err != nil {
		return fmt.Errorf("Failed to marshal manifest, %w", err)
	}

	_, err = wr.Write(body)

	if err != nil {
		return fmt.Errorf("Failed to write manifest, %w", err)
	}

	return nil
}

// UpdateProjectRecord assigns generation results to an existing project
// record, returning the updated body only when something changed.
func UpdateProjectRecord(ctx context.Context, body []byte, project *BookProject) (bool, []byte, error) {

	rendered := 0

	for _, page := range project.Pages {

		if page.Image != nil {
			rendered++
		}
	}

	updates := map[string]interface{}{
		"properties.coloringbook:generated": time.Now().Unix(),
		"properties.coloringbook:pages":     rendered,
		"properties.coloringbook:style":     project.Style,
		"properties.coloringbook:seed":      project.Seed,
	}

	return export.AssignPropertiesIfChanged(ctx, body, updates)
}
