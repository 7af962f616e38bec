// prompt composes and prints the positive and negative prompts for a
// theme without rendering anything. Useful for checking what actually
// fits in the token budget before burning GPU time.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"github.com/mergimdemku/flux-coloring-book-generator-sub000/lineart"
	"github.com/mergimdemku/flux-coloring-book-generator-sub000/prompt"
	"github.com/mergimdemku/flux-coloring-book-generator-sub000/story"
	"github.com/sfomuseum/go-flags/flagset"
	"github.com/whosonfirst/go-reader"
	_ "github.com/whosonfirst/go-reader-http"
)

func main() {

	var reader_uri string
	var theme_path string
	var style_name string
	var count int
	var seed int64
	var budget int

	fs := flagset.NewFlagSet("prompt")

	fs.StringVar(&reader_uri, "reader-uri", "fs:///usr/local/data/themes", "A valid whosonfirst/go-reader URI for loading theme documents.")
	fs.StringVar(&theme_path, "theme", "", "The path of the theme document, relative to -reader-uri.")
	fs.StringVar(&style_name, "style", "classic", "The line art style whose phrases are appended to each prompt.")
	fs.IntVar(&count, "count", 4, "The number of scenes to compose prompts for.")
	fs.Int64Var(&seed, "seed", 0, "The seed for scene selection.")
	fs.IntVar(&budget, "budget", prompt.DefaultBudget, "The token budget for composed prompts.")

	flagset.Parse(fs)

	ctx := context.Background()

	r, err := reader.NewReader(ctx, reader_uri)

	if err != nil {
		log.Fatalf("Failed to create reader, %v", err)
	}

	theme, err := story.LoadTheme(ctx, r, theme_path)

	if err != nil {
		log.Fatalf("Failed to load theme, %v", err)
	}

	style, err := lineart.ParseStyle(style_name)

	if err != nil {
		log.Fatalf("Failed to parse style, %v", err)
	}

	profile, err := lineart.GetProfile(style)

	if err != nil {
		log.Fatalf("Failed to get style profile, %v", err)
	}

	gen, err := story.NewSceneGenerator(theme, rand.New(rand.NewSource(seed)))

	if err != nil {
		log.Fatalf("Failed to create scene generator, %v", err)
	}

	composer := prompt.NewComposer(budget, nil)
	est := prompt.NewWordEstimator()

	negative := composer.ComposeNegative(profile.NegativePhrases)

	for i, scene := range gen.Generate(count) {

		spec := story.BuildPromptSpec(scene, profile.StylePhrases)
		composed := composer.Compose(spec)

		fmt.Printf("# page %d (%d tokens estimated)\n", i+1, est.Estimate(composed))
		fmt.Printf("prompt: %s\n", composed)
		fmt.Printf("negative: %s\n\n", negative)
	}
}
