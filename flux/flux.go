// Package flux talks to a locally-run FLUX diffusion server. The rest of
// the pipeline treats image generation as an opaque call that takes a
// prompt pair and numeric parameters and returns one raster image, or no
// image at all.
package flux

import (
	"context"
	"image"
)

// DefaultEndpointTemplate is expanded with the model name to derive the
// generation endpoint.
const DefaultEndpointTemplate = "http://localhost:8570/v1/{model}/generate"

const DefaultModel = "flux-schnell"

// GenerateOptions are the numeric generation parameters passed through
// to the diffusion backend untouched.
type GenerateOptions struct {
	Steps         int     `json:"steps" yaml:"steps"`
	GuidanceScale float64 `json:"guidance_scale" yaml:"guidance_scale"`
	Width         int     `json:"width" yaml:"width"`
	Height        int     `json:"height" yaml:"height"`
	Seed          int64   `json:"seed" yaml:"seed"`
}

func DefaultGenerateOptions() *GenerateOptions {

	return &GenerateOptions{
		Steps:         28,
		GuidanceScale: 3.5,
		Width:         1024,
		Height:        1024,
	}
}

// Backend generates one image per call. A nil image with a nil error is
// a valid "no image produced" result; callers are expected to skip that
// page rather than abort.
type Backend interface {
	GenerateImage(ctx context.Context, prompt string, negative_prompt string, opts *GenerateOptions) (image.Image, error)
}
