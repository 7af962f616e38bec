package coloringbook

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aaronland/go-aws-lambda"
)

const GENERATE_COLORING_BOOK_LAMBDA_URI string = "aws://GenerateColoringBook?region=us-west-2&credentials=session"

// GenerateBookLambda invokes the remote book generation function with a
// full run config. The Lambda side unmarshals the same Config the local
// commands use.
func GenerateBookLambda(ctx context.Context, function_uri string, cfg *Config) error {

	f, err := lambda.NewLambdaFunction(ctx, function_uri)

	if err != nil {
		return fmt.Errorf("Failed to create new Lambda function, %v", err)
	}

	payload, err := json.Marshal(cfg)

	if err != nil {
		return fmt.Errorf("Failed to marshal request, %v", err)
	}

	_, err = f.InvokeWithJSON(ctx, payload)

	if err != nil {
		return fmt.Errorf("Failed to invoke function, %v", err)
	}

	return nil
}
