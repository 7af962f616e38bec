package coloringbook

import (
	"fmt"
	"io"

	"github.com/mergimdemku/flux-coloring-book-generator-sub000/flux"

	"gopkg.in/yaml.v3"
)

// Config describes one book generation run. Commands populate it from a
// YAML file, flags or a Lambda request body.
type Config struct {
	Title     string `yaml:"title" json:"title"`
	URL       string `yaml:"url" json:"url"`
	ReaderURI string `yaml:"reader_uri" json:"reader_uri"`
	Theme     string `yaml:"theme" json:"theme"`
	Style     string `yaml:"style" json:"style"`
	Pages     int    `yaml:"pages" json:"pages"`
	Seed      int64  `yaml:"seed" json:"seed"`
	BucketURI string `yaml:"bucket_uri" json:"bucket_uri"`
	Filename  string `yaml:"filename" json:"filename"`

	Flux FluxConfig `yaml:"flux" json:"flux"`
}

type FluxConfig struct {
	EndpointTemplate string  `yaml:"endpoint_template" json:"endpoint_template"`
	Model            string  `yaml:"model" json:"model"`
	Steps            int     `yaml:"steps" json:"steps"`
	GuidanceScale    float64 `yaml:"guidance_scale" json:"guidance_scale"`
	Width            int     `yaml:"width" json:"width"`
	Height           int     `yaml:"height" json:"height"`
	TimeoutSeconds   int     `yaml:"timeout_seconds" json:"timeout_seconds"`
}

func DefaultConfig() *Config {

	flux_defaults := flux.DefaultGenerateOptions()

	return &Config{
		Title:     "My Coloring Book",
		ReaderURI: "fs:///usr/local/data/themes",
		Style:     "classic",
		Pages:     8,
		BucketURI: "cwd://",
		Flux: FluxConfig{
			EndpointTemplate: flux.DefaultEndpointTemplate,
			Model:            flux.DefaultModel,
			Steps:            flux_defaults.Steps,
			GuidanceScale:    flux_defaults.GuidanceScale,
			Width:            flux_defaults.Width,
			Height:           flux_defaults.Height,
		},
	}
}

// LoadConfig merges a YAML document on top of the defaults.
func LoadConfig(r io.Reader) (*Config, error) {

	cfg := DefaultConfig()

	body, err := io.ReadAll(r)

	if err != nil {
		return nil, fmt.Errorf("Failed to read config, %w", err)
	}

	err = yaml.Unmarshal(body, cfg)

	if err != nil {
		return nil, fmt.Errorf("Failed to unmarshal config, %w", err)
	}

	return cfg, nil
}

// GenerateOptions derives the backend generation parameters from the
// config.
func (cfg *Config) GenerateOptions() *flux.GenerateOptions {

	opts := flux.DefaultGenerateOptions()

	if cfg.Flux.Steps > 0 {
		opts.Steps = cfg.Flux.Steps
	}

	if cfg.Flux.GuidanceScale > 0 {
		opts.GuidanceScale = cfg.Flux.GuidanceScale
	}

	if cfg.Flux.Width > 0 {
		opts.Width = cfg.Flux.Width
	}

	if cfg.Flux.Height > 0 {
		opts.Height = cfg.Flux.Height
	}

	return opts
}
