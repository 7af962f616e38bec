package coloringbook

import (
	"strings"
	"testing"
)

func TestLoadConfig(t *testing.T) {

	doc := `
title: Forest Friends
theme: woodland.json
style: manga_clean
pages: 12
seed: 42
bucket_uri: file:///tmp/books
flux:
  model: flux-dev
  steps: 20
  width: 832
  height: 1216
`

	cfg, err := LoadConfig(strings.NewReader(doc))

	if err != nil {
		t.Fatalf("Failed to load config, %v", err)
	}

	if cfg.Title != "Forest Friends" {
		t.Errorf("Expected title 'Forest Friends', got %q", cfg.Title)
	}

	if cfg.Style != "manga_clean" {
		t.Errorf("Expected style 'manga_clean', got %q", cfg.Style)
	}

	if cfg.Pages != 12 {
		t.Errorf("Expected 12 pages, got %d", cfg.Pages)
	}

	if cfg.Flux.Model != "flux-dev" {
		t.Errorf("Expected model 'flux-dev', got %q", cfg.Flux.Model)
	}

	// Unset values keep their defaults.

	if cfg.Flux.EndpointTemplate == "" {
		t.Errorf("Expected default endpoint template")
	}

	opts := cfg.GenerateOptions()

	if opts.Steps != 20 {
		t.Errorf("Expected 20 steps, got %d", opts.Steps)
	}

	if opts.Width != 832 || opts.Height != 1216 {
		t.Errorf("Expected 832x1216, got %dx%d", opts.Width, opts.Height)
	}

	if opts.GuidanceScale != 3.5 {
		t.Errorf("Expected default guidance scale, got %f", opts.GuidanceScale)
	}
}

func TestDefaultConfig(t *testing.T) {

	cfg := DefaultConfig()

	if cfg.Pages <= 0 {
		t.Errorf("Expected a positive default page count")
	}

	if cfg.Style == "" {
		t.Errorf("Expected a default style")
	}

	if cfg.BucketURI != "cwd://" {
		t.Errorf("Expected cwd:// default bucket, got %q", cfg.BucketURI)
	}
}
