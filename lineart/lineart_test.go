package lineart

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"testing"
)

// testScene draws a dark disk and a soft gradient so there is real
// contrast to threshold.
func testScene(w int, h int) *image.RGBA {

	im := image.NewRGBA(image.Rect(0, 0, w, h))

	cx := w / 2
	cy := h / 2
	r2 := (w / 4) * (w / 4)

	for y := 0; y < h; y++ {

		for x := 0; x < w; x++ {

			dx := x - cx
			dy := y - cy

			if dx*dx+dy*dy <= r2 {
				im.SetRGBA(x, y, color.RGBA{20, 20, 20, 255})
			} else {
				v := uint8(150 + (x*100)/w)
				im.SetRGBA(x, y, color.RGBA{v, v, v, 255})
			}
		}
	}

	return im
}

func uniformImage(w int, h int, v uint8) *image.RGBA {

	im := image.NewRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {

		for x := 0; x < w; x++ {
			im.SetRGBA(x, y, color.RGBA{v, v, v, 255})
		}
	}

	return im
}

func assertTwoLevel(t *testing.T, im image.Image) {

	t.Helper()

	bounds := im.Bounds()

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {

		for x := bounds.Min.X; x < bounds.Max.X; x++ {

			g := color.GrayModel.Convert(im.At(x, y)).(color.Gray)

			if g.Y != 0 && g.Y != 255 {
				t.Fatalf("Pixel (%d, %d) has luminance %d, expected 0 or 255", x, y, g.Y)
			}
		}
	}
}

func TestProcessMidGrayReturnsBlankPage(t *testing.T) {

	// Concrete scenario: a pure mid-gray 100x100 image with style
	// simple_thick comes back as a valid all-white page.

	ctx := context.Background()

	im := uniformImage(100, 100, 128)

	out, err := Process(ctx, im, StyleSimpleThick)

	if err != nil {
		t.Fatalf("Failed to process uniform image, %v", err)
	}

	bounds := out.Bounds()

	if bounds.Dx() != 100 || bounds.Dy() != 100 {
		t.Fatalf("Expected 100x100 output, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {

		for x := bounds.Min.X; x < bounds.Max.X; x++ {

			g := color.GrayModel.Convert(out.At(x, y)).(color.Gray)

			if g.Y != 255 {
				t.Fatalf("Expected all-white output, pixel (%d, %d) has luminance %d", x, y, g.Y)
			}
		}
	}
}

func TestProcessOutputIsTwoLevel(t *testing.T) {

	ctx := context.Background()

	im := testScene(96, 96)

	for _, style := range []Style{StyleMangaClean, StyleSimpleThick, StyleClassic, StyleContourTrace} {

		out, err := Process(ctx, im, style)

		if err != nil {
			t.Fatalf("Failed to process with style %s, %v", style, err)
		}

		if out.Bounds().Dx() != 96 || out.Bounds().Dy() != 96 {
			t.Fatalf("Style %s changed dimensions to %v", style, out.Bounds())
		}

		assertTwoLevel(t, out)
	}
}

func TestProcessIsIdempotent(t *testing.T) {

	ctx := context.Background()

	im := testScene(80, 80)

	first, err := Process(ctx, im, StyleMangaClean)

	if err != nil {
		t.Fatalf("Failed to process image, %v", err)
	}

	second, err := Process(ctx, first, StyleMangaClean)

	if err != nil {
		t.Fatalf("Failed to re-process image, %v", err)
	}

	first_rgba, ok := first.(*image.RGBA)

	if !ok {
		t.Fatalf("Expected *image.RGBA output")
	}

	second_rgba, ok := second.(*image.RGBA)

	if !ok {
		t.Fatalf("Expected *image.RGBA output")
	}

	if !bytes.Equal(first_rgba.Pix, second_rgba.Pix) {
		t.Fatalf("Re-processing a binarized image changed its pixels")
	}
}

func TestProcessIsDeterministic(t *testing.T) {

	ctx := context.Background()

	im := testScene(64, 64)

	a, err := Process(ctx, im, StyleSimpleThick)

	if err != nil {
		t.Fatalf("Failed to process image, %v", err)
	}

	b, err := Process(ctx, im, StyleSimpleThick)

	if err != nil {
		t.Fatalf("Failed to process image, %v", err)
	}

	if !bytes.Equal(a.(*image.RGBA).Pix, b.(*image.RGBA).Pix) {
		t.Fatalf("Two runs over the same input produced different pixels")
	}
}

func TestProcessUniformBlackReturnsBlankPage(t *testing.T) {

	ctx := context.Background()

	im := uniformImage(32, 32, 0)

	out, err := Process(ctx, im, StyleMangaClean)

	if err != nil {
		t.Fatalf("Failed to process uniform black image, %v", err)
	}

	g := color.GrayModel.Convert(out.At(10, 10)).(color.Gray)

	if g.Y != 255 {
		t.Fatalf("Expected blank page for zero-variance input, got luminance %d", g.Y)
	}
}
