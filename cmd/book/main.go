// book generates a complete coloring book: scenes from a theme document,
// prompts packed to the CLIP token budget, images from a local FLUX
// server, line art post-processing and a printable PDF.
package main

import (
	"bytes"
	"context"
	"io"
	"log"
	"os"

	_ "github.com/aaronland/gocloud-blob-s3"
	"github.com/mergimdemku/flux-coloring-book-generator-sub000"
	"github.com/sfomuseum/go-flags/flagset"
	"github.com/whosonfirst/go-reader"
	_ "github.com/whosonfirst/go-reader-http"
	"github.com/whosonfirst/go-writer/v3"
	_ "gocloud.dev/blob/fileblob"
)

func main() {

	var config_path string

	var title string
	var url string
	var reader_uri string
	var theme string
	var style string
	var pages int
	var seed int64
	var bucket_uri string
	var filename string

	var manifest_writer_uri string
	var manifest_path string

	var update_project bool
	var project_record string
	var writer_uri string

	fs := flagset.NewFlagSet("book")

	fs.StringVar(&config_path, "config", "", "An optional path to a YAML config file. Flags override config values.")
	fs.StringVar(&title, "title", "", "The title of the coloring book.")
	fs.StringVar(&url, "url", "", "An optional URL encoded as a QR code on each sheet.")
	fs.StringVar(&reader_uri, "reader-uri", "", "A valid whosonfirst/go-reader URI for loading theme documents.")
	fs.StringVar(&theme, "theme", "", "The path of the theme document, relative to -reader-uri.")
	fs.StringVar(&style, "style", "", "The line art style to render pages with.")
	fs.IntVar(&pages, "pages", 0, "The number of pages to generate.")
	fs.Int64Var(&seed, "seed", 0, "The seed for scene selection and image generation.")
	fs.StringVar(&bucket_uri, "bucket-uri", "", "A valid gocloud.dev/blob URI where the PDF and manifest are written.")
	fs.StringVar(&filename, "filename", "", "An optional filename for the PDF.")
	fs.StringVar(&manifest_writer_uri, "manifest-writer-uri", "", "An optional whosonfirst/go-writer URI to publish the JSON manifest somewhere besides -bucket-uri.")
	fs.StringVar(&manifest_path, "manifest-path", "manifest.json", "The path the manifest is written to, relative to -manifest-writer-uri.")
	fs.BoolVar(&update_project, "update-project", false, "Update the project record after generation.")
	fs.StringVar(&project_record, "project-record", "", "The path of the project record, relative to -reader-uri.")
	fs.StringVar(&writer_uri, "writer-uri", "stdout://", "A valid whosonfirst/go-writer URI for updated project records.")

	flagset.Parse(fs)

	ctx := context.Background()

	cfg := coloringbook.DefaultConfig()

	if config_path != "" {

		config_r, err := os.Open(config_path)

		if err != nil {
			log.Fatalf("Failed to open config %s, %v", config_path, err)
		}

		cfg, err = coloringbook.LoadConfig(config_r)

		if err != nil {
			log.Fatalf("Failed to load config, %v", err)
		}

		config_r.Close()
	}

	if title != "" {
		cfg.Title = title
	}

	if url != "" {
		cfg.URL = url
	}

	if reader_uri != "" {
		cfg.ReaderURI = reader_uri
	}

	if theme != "" {
		cfg.Theme = theme
	}

	if style != "" {
		cfg.Style = style
	}

	if pages > 0 {
		cfg.Pages = pages
	}

	if seed != 0 {
		cfg.Seed = seed
	}

	if bucket_uri != "" {
		cfg.BucketURI = bucket_uri
	}

	if filename != "" {
		cfg.Filename = filename
	}

	if cfg.Theme == "" {
		log.Fatalf("Missing -theme")
	}

	project, err := coloringbook.Run(ctx, cfg)

	if err != nil {
		log.Fatalf("Failed to generate coloring book, %v", err)
	}

	if manifest_writer_uri != "" {

		manifest_wr, err := writer.NewWriter(ctx, manifest_writer_uri)

		if err != nil {
			log.Fatalf("Failed to create manifest writer, %v", err)
		}

		err = coloringbook.WriteManifest(ctx, manifest_wr, project, manifest_path)

		if err != nil {
			log.Fatalf("Failed to write manifest, %v", err)
		}

		err = manifest_wr.Close(ctx)

		if err != nil {
			log.Fatalf("Failed to close manifest writer, %v", err)
		}
	}

	// Update project record

	if update_project {

		if project_record == "" {
			log.Fatalf("Missing -project-record")
		}

		r, err := reader.NewReader(ctx, cfg.ReaderURI)

		if err != nil {
			log.Fatalf("Failed to create reader, %v", err)
		}

		record_fh, err := r.Read(ctx, project_record)

		if err != nil {
			log.Fatalf("Failed to read project record %s, %v", project_record, err)
		}

		body, err := io.ReadAll(record_fh)

		record_fh.Close()

		if err != nil {
			log.Fatalf("Failed to read body for %s, %v", project_record, err)
		}

		has_updates, new_body, err := coloringbook.UpdateProjectRecord(ctx, body, project)

		if err != nil {
			log.Fatalf("Failed to assign updates to project record, %v", err)
		}

		if has_updates {

			wr, err := writer.NewWriter(ctx, writer_uri)

			if err != nil {
				log.Fatalf("Failed to create writer, %v", err)
			}

			_, err = wr.Write(ctx, project_record, bytes.NewReader(new_body))

			if err != nil {
				log.Fatalf("Failed to update project record, %v", err)
			}

			err = wr.Close(ctx)

			if err != nil {
				log.Fatalf("Failed to close project record writer, %v", err)
			}
		}
	}
}
