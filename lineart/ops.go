package lineart

import (
	"image"
	"image/color"
	"sort"
)

// ink is pure black and paper is pure white. All binarization helpers
// produce images containing only these two values.
const (
	ink   = uint8(0)
	paper = uint8(255)
)

func toGray(im image.Image) *image.Gray {

	bounds := im.Bounds()
	gray := image.NewGray(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {

		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray.Set(x, y, color.GrayModel.Convert(im.At(x, y)))
		}
	}

	return gray
}

func toRGBA(gray *image.Gray) *image.RGBA {

	bounds := gray.Bounds()
	rgba := image.NewRGBA(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {

		for x := bounds.Min.X; x < bounds.Max.X; x++ {

			v := gray.GrayAt(x, y).Y
			rgba.SetRGBA(x, y, color.RGBA{v, v, v, 255})
		}
	}

	return rgba
}

func whitePage(bounds image.Rectangle) *image.Gray {

	gray := image.NewGray(bounds)

	for i := range gray.Pix {
		gray.Pix[i] = paper
	}

	return gray
}

func histogram(gray *image.Gray) [256]int {

	var hist [256]int

	bounds := gray.Bounds()

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {

		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			hist[gray.GrayAt(x, y).Y]++
		}
	}

	return hist
}

// isUniform reports whether every pixel carries the same value.
func isUniform(hist [256]int) bool {

	levels := 0

	for _, count := range hist {

		if count > 0 {
			levels++
		}

		if levels > 1 {
			return false
		}
	}

	return true
}

// isBinary reports whether the image already contains only pure black
// and pure white. Re-processing such an image must not change it.
func isBinary(hist [256]int) bool {

	for v := 1; v < 255; v++ {

		if hist[v] > 0 {
			return false
		}
	}

	return hist[0] > 0 && hist[255] > 0
}

// medianFilter smooths while preserving edges. A median keeps hard
// black/white transitions that a gaussian would smear in to gray.
func medianFilter(gray *image.Gray, radius int) *image.Gray {

	if radius <= 0 {
		return gray
	}

	bounds := gray.Bounds()
	out := image.NewGray(bounds)

	side := 2*radius + 1
	window := make([]uint8, 0, side*side)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {

		for x := bounds.Min.X; x < bounds.Max.X; x++ {

			window = window[:0]

			for dy := -radius; dy <= radius; dy++ {

				for dx := -radius; dx <= radius; dx++ {

					sx := clamp(x+dx, bounds.Min.X, bounds.Max.X-1)
					sy := clamp(y+dy, bounds.Min.Y, bounds.Max.Y-1)

					window = append(window, gray.GrayAt(sx, sy).Y)
				}
			}

			sort.Slice(window, func(i, j int) bool {
				return window[i] < window[j]
			})

			out.SetGray(x, y, color.Gray{Y: window[len(window)/2]})
		}
	}

	return out
}

// adaptiveThreshold binarizes against the mean of a block_size window
// minus offset, computed with an integral image so the cost does not
// grow with the block size.
func adaptiveThreshold(gray *image.Gray, block_size int, offset float64) *image.Gray {

	bounds := gray.Bounds()

	w := bounds.Dx()
	h := bounds.Dy()

	if block_size < 3 {
		block_size = 3
	}

	if block_size%2 == 0 {
		block_size++
	}

	half := block_size / 2

	// Integral image with a zero row and column of padding.

	integral := make([]uint64, (w+1)*(h+1))

	for y := 0; y < h; y++ {

		var row_sum uint64

		for x := 0; x < w; x++ {

			row_sum += uint64(gray.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y)
			integral[(y+1)*(w+1)+(x+1)] = integral[y*(w+1)+(x+1)] + row_sum
		}
	}

	out := image.NewGray(bounds)

	for y := 0; y < h; y++ {

		for x := 0; x < w; x++ {

			x0 := clamp(x-half, 0, w-1)
			x1 := clamp(x+half, 0, w-1)
			y0 := clamp(y-half, 0, h-1)
			y1 := clamp(y+half, 0, h-1)

			count := uint64((x1 - x0 + 1) * (y1 - y0 + 1))

			sum := integral[(y1+1)*(w+1)+(x1+1)] -
				integral[y0*(w+1)+(x1+1)] -
				integral[(y1+1)*(w+1)+x0] +
				integral[y0*(w+1)+x0]

			mean := float64(sum) / float64(count)

			v := float64(gray.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y)

			if v > mean-offset {
				out.SetGray(bounds.Min.X+x, bounds.Min.Y+y, color.Gray{Y: paper})
			} else {
				out.SetGray(bounds.Min.X+x, bounds.Min.Y+y, color.Gray{Y: ink})
			}
		}
	}

	return out
}

func fixedThreshold(gray *image.Gray, level uint8) *image.Gray {

	bounds := gray.Bounds()
	out := image.NewGray(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {

		for x := bounds.Min.X; x < bounds.Max.X; x++ {

			if gray.GrayAt(x, y).Y > level {
				out.SetGray(x, y, color.Gray{Y: paper})
			} else {
				out.SetGray(x, y, color.Gray{Y: ink})
			}
		}
	}

	return out
}

// hardThreshold forces every pixel to pure black or pure white. This is
// the final stage of every recipe; no gray survives it.
func hardThreshold(gray *image.Gray) *image.Gray {

	bounds := gray.Bounds()
	out := image.NewGray(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {

		for x := bounds.Min.X; x < bounds.Max.X; x++ {

			if gray.GrayAt(x, y).Y >= 128 {
				out.SetGray(x, y, color.Gray{Y: paper})
			} else {
				out.SetGray(x, y, color.Gray{Y: ink})
			}
		}
	}

	return out
}

// dilateInk grows black regions: a pixel becomes ink if any pixel in the
// kernel window is ink. Used to bridge gaps in lines and thicken them.
func dilateInk(gray *image.Gray, kernel int) *image.Gray {

	return morphInk(gray, kernel, true)
}

// erodeInk shrinks black regions: a pixel stays ink only if every pixel
// in the kernel window is ink. Used to remove small speckles.
func erodeInk(gray *image.Gray, kernel int) *image.Gray {

	return morphInk(gray, kernel, false)
}

// closeInk bridges gaps in lines: dilate then erode.
func closeInk(gray *image.Gray, kernel int) *image.Gray {

	return erodeInk(dilateInk(gray, kernel), kernel)
}

// openInk removes isolated speckles: erode then dilate.
func openInk(gray *image.Gray, kernel int) *image.Gray {

	return dilateInk(erodeInk(gray, kernel), kernel)
}

func morphInk(gray *image.Gray, kernel int, dilate bool) *image.Gray {

	if kernel <= 1 {
		return gray
	}

	radius := kernel / 2

	bounds := gray.Bounds()
	out := image.NewGray(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {

		for x := bounds.Min.X; x < bounds.Max.X; x++ {

			ink_count := 0
			window := 0

			for dy := -radius; dy <= radius; dy++ {

				for dx := -radius; dx <= radius; dx++ {

					sx := clamp(x+dx, bounds.Min.X, bounds.Max.X-1)
					sy := clamp(y+dy, bounds.Min.Y, bounds.Max.Y-1)

					if gray.GrayAt(sx, sy).Y < 128 {
						ink_count++
					}

					window++
				}
			}

			v := paper

			if dilate && ink_count > 0 {
				v = ink
			}

			if !dilate && ink_count == window {
				v = ink
			}

			out.SetGray(x, y, color.Gray{Y: v})
		}
	}

	return out
}

// unsharp applies a mild unsharp mask: out = in + amount * (in - blur).
// Values are clamped; the final hard threshold removes any intermediate
// levels this introduces at edges.
func unsharp(gray *image.Gray, amount float64) *image.Gray {

	if amount <= 0 {
		return gray
	}

	bounds := gray.Bounds()
	blurred := boxBlur(gray, 1)
	out := image.NewGray(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {

		for x := bounds.Min.X; x < bounds.Max.X; x++ {

			v := float64(gray.GrayAt(x, y).Y)
			b := float64(blurred.GrayAt(x, y).Y)

			sharpened := v + amount*(v-b)

			if sharpened < 0 {
				sharpened = 0
			}

			if sharpened > 255 {
				sharpened = 255
			}

			out.SetGray(x, y, color.Gray{Y: uint8(sharpened)})
		}
	}

	return out
}

func boxBlur(gray *image.Gray, radius int) *image.Gray {

	bounds := gray.Bounds()
	out := image.NewGray(bounds)

	side := 2*radius + 1
	count := side * side

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {

		for x := bounds.Min.X; x < bounds.Max.X; x++ {

			sum := 0

			for dy := -radius; dy <= radius; dy++ {

				for dx := -radius; dx <= radius; dx++ {

					sx := clamp(x+dx, bounds.Min.X, bounds.Max.X-1)
					sy := clamp(y+dy, bounds.Min.Y, bounds.Max.Y-1)

					sum += int(gray.GrayAt(sx, sy).Y)
				}
			}

			out.SetGray(x, y, color.Gray{Y: uint8(sum / count)})
		}
	}

	return out
}

func clamp(v int, lo int, hi int) int {

	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
