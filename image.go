package coloringbook

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"strings"

	"github.com/sfomuseum/go-svg"
)

// Orientation returns the fpdf orientation code ("P" or "L") for an
// image.
func Orientation(im image.Image) string {

	bounds := im.Bounds()

	w := bounds.Max.X
	h := bounds.Max.Y

	if h > w {
		return "P"
	}

	return "L"
}

// ReadImage decodes an image from r. Names ending in .svg are rasterized
// (cover assets are sometimes shipped as vector art); everything else
// goes through the stdlib decoders.
func ReadImage(ctx context.Context, r io.Reader, name string) (image.Image, error) {

	if strings.HasSuffix(strings.ToLower(name), ".svg") {

		im, err := svg.Rasterize(ctx, r)

		if err != nil {
			return nil, fmt.Errorf("Failed to rasterize %s, %w", name, err)
		}

		return im, nil
	}

	im, _, err := image.Decode(r)

	if err != nil {
		return nil, fmt.Errorf("Failed to decode %s, %w", name, err)
	}

	return im, nil
}

// pngReader encodes an image to PNG in memory and returns a reader over
// the encoded bytes, for registering images with fpdf without temp
// files.
func pngReader(im image.Image) (*bytes.Reader, error) {

	var buf bytes.Buffer

	err := png.Encode(&buf, im)

	if err != nil {
		return nil, fmt.Errorf("Failed to encode image, %w", err)
	}

	return bytes.NewReader(buf.Bytes()), nil
}
