package coloringbook

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/mergimdemku/flux-coloring-book-generator-sub000/flux"
	"github.com/mergimdemku/flux-coloring-book-generator-sub000/lineart"
	"github.com/mergimdemku/flux-coloring-book-generator-sub000/prompt"
	"github.com/mergimdemku/flux-coloring-book-generator-sub000/story"
)

type GenerateBookOptions struct {
	Title       string
	URL         string
	Theme       *story.Theme
	Style       lineart.Style
	Pages       int
	Seed        int64
	Backend     flux.Backend
	FluxOptions *flux.GenerateOptions
	Composer    *prompt.Composer
}

// GenerateBook runs the whole pipeline for one book: scenes from the
// theme, prompts from the composer, renders from the diffusion backend
// and line art post-processing, collected in to a BookProject. Pages
// that fail to render are recorded without an image and skipped at
// assembly; the book fails only when no page rendered at all.
func GenerateBook(ctx context.Context, opts *GenerateBookOptions) (*BookProject, error) {

	profile, err := lineart.GetProfile(opts.Style)

	if err != nil {
		return nil, fmt.Errorf("Failed to resolve style, %w", err)
	}

	rnd := rand.New(rand.NewSource(opts.Seed))

	gen, err := story.NewSceneGenerator(opts.Theme, rnd)

	if err != nil {
		return nil, fmt.Errorf("Failed to create scene generator, %w", err)
	}

	composer := opts.Composer

	if composer == nil {
		composer = prompt.NewComposer(prompt.DefaultBudget, nil)
	}

	flux_opts := opts.FluxOptions

	if flux_opts == nil {
		flux_opts = flux.DefaultGenerateOptions()
	}

	negative := composer.ComposeNegative(profile.NegativePhrases)

	project := NewBookProject(opts.Title, opts.Theme.Name, opts.Style.String(), opts.Seed)
	project.URL = opts.URL

	scenes := gen.Generate(opts.Pages)

	rendered := 0

	for i, scene := range scenes {

		spec := story.BuildPromptSpec(scene, profile.StylePhrases)
		prompt_text := composer.Compose(spec)

		page_opts := *flux_opts
		page_opts.Seed = opts.Seed + int64(i)

		im, err := opts.Backend.GenerateImage(ctx, prompt_text, negative, &page_opts)

		if err != nil {

			slog.Warn("Failed to generate image, skipping page",
				"page", i+1,
				"scene", scene.Description(),
				"error", err)

			project.AddPage(scene.Description(), prompt_text, negative, nil)
			continue
		}

		if im == nil {

			slog.Warn("Backend produced no image, skipping page",
				"page", i+1,
				"scene", scene.Description())

			project.AddPage(scene.Description(), prompt_text, negative, nil)
			continue
		}

		processed, err := lineart.Process(ctx, im, opts.Style)

		if err != nil {

			slog.Warn("Failed to post-process image, skipping page",
				"page", i+1,
				"error", err)

			project.AddPage(scene.Description(), prompt_text, negative, nil)
			continue
		}

		project.AddPage(scene.Description(), prompt_text, negative, processed)
		rendered++
	}

	if rendered == 0 {
		return nil, fmt.Errorf("Failed to render any of %d pages", opts.Pages)
	}

	return project, nil
}
