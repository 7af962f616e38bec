package lineart

import (
	"context"
	"image"

	"github.com/fogleman/colormap"
	"github.com/fogleman/contourmap"
	"github.com/fogleman/gg"
)

// contourTrace renders iso-luminance contours of the image as black
// strokes on a white page. The drawing context antialiases strokes, so
// callers are expected to run the result through hardThreshold.
func contourTrace(ctx context.Context, gray *image.Gray, profile *Profile) (*image.Gray, error) {

	levels := profile.ContourLevels

	if levels < 2 {
		levels = 2
	}

	m := contourmap.FromImage(gray).Closed()
	z0 := m.Min
	z1 := m.Max

	bounds := gray.Bounds()

	w := bounds.Dx()
	h := bounds.Dy()

	dc := gg.NewContext(w, h)
	dc.SetColor(colormap.ParseColor("FFFFFF"))
	dc.Clear()

	for i := 0; i < levels; i++ {

		t := float64(i) / (float64(levels) - 1)
		z := z0 + (z1-z0)*t

		contours := m.Contours(z + 1e-9)

		for _, c := range contours {

			dc.NewSubPath()

			for _, p := range c {
				dc.LineTo(p.X, p.Y)
			}
		}

		dc.SetRGB(0, 0, 0)
		dc.SetLineWidth(1.0)
		dc.Stroke()
	}

	return toGray(dc.Image()), nil
}
