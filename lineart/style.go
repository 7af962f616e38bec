package lineart

import (
	"fmt"
)

// Style identifies a line art processing recipe. Adding a style is a data
// change in the profiles table, not a code change.
type Style uint8

const (
	StyleMangaClean Style = iota
	StyleSimpleThick
	StyleClassic
	StyleContourTrace
)

func (s Style) String() string {

	switch s {
	case StyleMangaClean:
		return "manga_clean"
	case StyleSimpleThick:
		return "simple_thick"
	case StyleClassic:
		return "classic"
	case StyleContourTrace:
		return "contour_trace"
	default:
		return "unknown"
	}
}

// ParseStyle resolves a style name in to its Style value.
func ParseStyle(name string) (Style, error) {

	for _, s := range []Style{StyleMangaClean, StyleSimpleThick, StyleClassic, StyleContourTrace} {

		if s.String() == name {
			return s, nil
		}
	}

	return 0, fmt.Errorf("Invalid style name '%s'", name)
}

// ThresholdMode selects how an image is binarized.
type ThresholdMode uint8

const (
	// ThresholdAdaptive computes the black/white cutoff per local
	// neighborhood (mean of a BlockSize window minus Offset).
	ThresholdAdaptive ThresholdMode = iota
	// ThresholdFixed uses a single global cutoff (Level).
	ThresholdFixed
	// ThresholdContour skips thresholding and renders iso-contours
	// instead.
	ThresholdContour
)

// Profile holds the processing parameters for one style along with the
// prompt phrases that steer the diffusion model toward (and away from)
// that style's look.
type Profile struct {
	Style           Style
	Threshold       ThresholdMode
	BlockSize       int
	Offset          float64
	Level           uint8
	SmoothRadius    int
	CloseKernel     int
	OpenKernel      int
	ThickenKernel   int
	SharpenAmount   float64
	ContourLevels   int
	StylePhrases    []string
	NegativePhrases []string
}

// baseNegativePhrases are prepended to every style's negative prompt, in
// priority order. The composer may drop phrases from the end but never
// reorders them.
var baseNegativePhrases = []string{
	"color",
	"shading",
	"gradients",
	"photorealistic",
	"text",
	"watermark",
	"signature",
	"blurry",
	"noise",
}

var profiles = map[Style]*Profile{
	StyleMangaClean: {
		Style:         StyleMangaClean,
		Threshold:     ThresholdAdaptive,
		BlockSize:     11,
		Offset:        7.0,
		SmoothRadius:  1,
		CloseKernel:   3,
		OpenKernel:    3,
		SharpenAmount: 0.5,
		StylePhrases: []string{
			"manga style line art",
			"fine clean lines",
		},
		NegativePhrases: append([]string{
			"screentone",
			"crosshatching",
		}, baseNegativePhrases...),
	},
	StyleSimpleThick: {
		Style:         StyleSimpleThick,
		Threshold:     ThresholdFixed,
		Level:         180,
		SmoothRadius:  2,
		CloseKernel:   5,
		OpenKernel:    3,
		ThickenKernel: 5,
		SharpenAmount: 0.3,
		StylePhrases: []string{
			"simple thick outlines",
			"large shapes",
		},
		NegativePhrases: append([]string{
			"fine detail",
			"thin lines",
		}, baseNegativePhrases...),
	},
	StyleClassic: {
		Style:         StyleClassic,
		Threshold:     ThresholdAdaptive,
		BlockSize:     15,
		Offset:        5.0,
		SmoothRadius:  1,
		CloseKernel:   3,
		OpenKernel:    3,
		ThickenKernel: 3,
		SharpenAmount: 0.4,
		StylePhrases: []string{
			"classic coloring book outlines",
		},
		NegativePhrases: baseNegativePhrases,
	},
	StyleContourTrace: {
		Style:         StyleContourTrace,
		Threshold:     ThresholdContour,
		ContourLevels: 8,
		StylePhrases: []string{
			"high contrast silhouette",
		},
		NegativePhrases: baseNegativePhrases,
	},
}

// GetProfile returns the processing profile for a style.
func GetProfile(s Style) (*Profile, error) {

	p, ok := profiles[s]

	if !ok {
		return nil, fmt.Errorf("No profile registered for style '%s'", s)
	}

	return p, nil
}

// Styles returns the names of all registered styles.
func Styles() []string {

	names := make([]string, 0, len(profiles))

	for s := range profiles {
		names = append(names, s.String())
	}

	return names
}
