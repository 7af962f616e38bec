// Package lineart converts rendered images in to high-contrast black and
// white line art suitable for a printable coloring page. Every style runs
// the same fixed pipeline with different parameters; the output always
// contains exactly two luminance levels.
package lineart

import (
	"context"
	"fmt"
	"image"
	"log/slog"
)

// Process converts an image in to printable line art using the named
// style's profile. The result has the same dimensions as the input, is
// strictly two-level (pure black and pure white) and is deterministic for
// a given input and style.
//
// Degenerate inputs (a single uniform color) produce a blank page rather
// than an error. Re-processing an already binarized image returns the
// pixels unchanged.
func Process(ctx context.Context, im image.Image, style Style) (image.Image, error) {

	profile, err := GetProfile(style)

	if err != nil {
		return nil, fmt.Errorf("Failed to resolve style profile, %w", err)
	}

	gray := toGray(im)
	hist := histogram(gray)

	if isUniform(hist) {

		slog.Warn("Input image has no exploitable contrast, returning blank page",
			"style", style.String(),
			"width", gray.Bounds().Dx(),
			"height", gray.Bounds().Dy())

		return toRGBA(whitePage(gray.Bounds())), nil
	}

	if isBinary(hist) {
		return toRGBA(gray), nil
	}

	var processed *image.Gray

	if profile.Threshold == ThresholdContour {

		processed, err = contourTrace(ctx, gray, profile)

		if err != nil {
			return nil, fmt.Errorf("Failed to trace contours, %w", err)
		}

	} else {

		processed = binarize(gray, profile)
	}

	// Crispening introduces intermediate levels at edges; the closing
	// hard threshold removes them so the two-level guarantee holds.

	processed = unsharp(processed, profile.SharpenAmount)
	processed = hardThreshold(processed)

	return toRGBA(processed), nil
}

func binarize(gray *image.Gray, profile *Profile) *image.Gray {

	smoothed := medianFilter(gray, profile.SmoothRadius)

	var bin *image.Gray

	switch profile.Threshold {
	case ThresholdFixed:
		bin = fixedThreshold(smoothed, profile.Level)
	default:
		bin = adaptiveThreshold(smoothed, profile.BlockSize, profile.Offset)
	}

	if profile.CloseKernel > 1 {
		bin = closeInk(bin, profile.CloseKernel)
	}

	if profile.OpenKernel > 1 {
		bin = openInk(bin, profile.OpenKernel)
	}

	if profile.ThickenKernel > 1 {
		bin = dilateInk(bin, profile.ThickenKernel)
	}

	return bin
}
