// lambda runs book generation as an AWS Lambda function. The request
// body is the same Config document the local commands consume.
package main

import (
	"context"

	_ "github.com/aaronland/gocloud-blob-s3"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/mergimdemku/flux-coloring-book-generator-sub000"
	_ "github.com/whosonfirst/go-reader-http"
	_ "gocloud.dev/blob/fileblob"
)

func main() {

	handler := func(ctx context.Context, cfg *coloringbook.Config) error {

		_, err := coloringbook.Run(ctx, cfg)
		return err
	}

	lambda.Start(handler)
}
