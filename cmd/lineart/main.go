// lineart post-processes a single rendered image in to printable black
// and white line art.
package main

import (
	"context"
	"image/png"
	"log"
	"os"
	"strings"

	"github.com/mergimdemku/flux-coloring-book-generator-sub000"
	"github.com/mergimdemku/flux-coloring-book-generator-sub000/lineart"
	"github.com/sfomuseum/go-flags/flagset"
)

func main() {

	var style_name string
	var infile string
	var outfile string

	fs := flagset.NewFlagSet("lineart")

	fs.StringVar(&style_name, "style", "classic", "The processing style to apply. Valid styles are: "+strings.Join(lineart.Styles(), ", "))
	fs.StringVar(&infile, "infile", "", "The path of the image to process.")
	fs.StringVar(&outfile, "outfile", "", "The path where the processed image is written.")

	flagset.Parse(fs)

	ctx := context.Background()

	style, err := lineart.ParseStyle(style_name)

	if err != nil {
		log.Fatalf("Failed to parse style, %v", err)
	}

	r, err := os.Open(infile)

	if err != nil {
		log.Fatalf("Failed to open %s for reading, %v", infile, err)
	}

	defer r.Close()

	im, err := coloringbook.ReadImage(ctx, r, infile)

	if err != nil {
		log.Fatalf("Failed to read %s, %v", infile, err)
	}

	processed, err := lineart.Process(ctx, im, style)

	if err != nil {
		log.Fatalf("Failed to process %s, %v", infile, err)
	}

	wr, err := os.OpenFile(outfile, os.O_RDWR|os.O_CREATE, 0644)

	if err != nil {
		log.Fatalf("Failed to open %s for writing, %v", outfile, err)
	}

	err = png.Encode(wr, processed)

	if err != nil {
		log.Fatalf("Failed to encode %s, %v", outfile, err)
	}

	err = wr.Close()

	if err != nil {
		log.Fatalf("Failed to close %s after writing, %v", outfile, err)
	}
}
