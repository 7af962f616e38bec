// backfill invokes the book generation Lambda for every config document
// under a local directory. Used to regenerate a catalog of books after a
// style or theme change.
package main

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mergimdemku/flux-coloring-book-generator-sub000"
	"github.com/sfomuseum/go-flags/flagset"
)

func main() {

	var function_uri string
	var configs_dir string
	var dryrun bool

	fs_flags := flagset.NewFlagSet("backfill")

	fs_flags.StringVar(&function_uri, "function-uri", coloringbook.GENERATE_COLORING_BOOK_LAMBDA_URI, "A valid aaronland/go-aws-lambda URI.")
	fs_flags.StringVar(&configs_dir, "configs", "", "A directory containing book config (YAML) documents.")
	fs_flags.BoolVar(&dryrun, "dryrun", false, "Log what would be invoked without invoking anything.")

	flagset.Parse(fs_flags)

	ctx := context.Background()

	walk_cb := func(path string, d fs.DirEntry, err error) error {

		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if !strings.HasSuffix(path, ".yml") && !strings.HasSuffix(path, ".yaml") {
			return nil
		}

		r, err := os.Open(path)

		if err != nil {
			return fmt.Errorf("Failed to open %s, %w", path, err)
		}

		defer r.Close()

		cfg, err := coloringbook.LoadConfig(r)

		if err != nil {
			return fmt.Errorf("Failed to load config %s, %w", path, err)
		}

		if dryrun {
			log.Printf("Would invoke %s for %s (%s)\n", function_uri, cfg.Title, path)
			return nil
		}

		err = coloringbook.GenerateBookLambda(ctx, function_uri, cfg)

		if err != nil {
			return fmt.Errorf("Failed to invoke function for %s, %w", path, err)
		}

		log.Printf("Invoked %s for %s\n", function_uri, cfg.Title)
		return nil
	}

	err := filepath.WalkDir(configs_dir, walk_cb)

	if err != nil {
		log.Fatalf("Failed to walk %s, %v", configs_dir, err)
	}
}
