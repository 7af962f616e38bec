package flux

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"time"

	"github.com/jtacoma/uritemplates"
)

const DefaultTimeout = 10 * time.Minute

type generateRequest struct {
	Prompt         string  `json:"prompt"`
	NegativePrompt string  `json:"negative_prompt,omitempty"`
	Steps          int     `json:"steps"`
	GuidanceScale  float64 `json:"guidance_scale"`
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	Seed           int64   `json:"seed"`
}

// Client implements Backend over HTTP against a FLUX inference server.
type Client struct {
	endpoint    string
	http_client *http.Client
}

// NewClient expands endpoint_template with the model name and returns a
// client bound to the resulting URL. Generation is slow so the timeout
// defaults to DefaultTimeout when zero.
func NewClient(endpoint_template string, model string, timeout time.Duration) (*Client, error) {

	if endpoint_template == "" {
		endpoint_template = DefaultEndpointTemplate
	}

	if model == "" {
		model = DefaultModel
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	t, err := uritemplates.Parse(endpoint_template)

	if err != nil {
		return nil, fmt.Errorf("Failed to parse endpoint template, %w", err)
	}

	values := map[string]interface{}{
		"model": model,
	}

	endpoint, err := t.Expand(values)

	if err != nil {
		return nil, fmt.Errorf("Failed to expand endpoint template, %w", err)
	}

	cl := &Client{
		endpoint: endpoint,
		http_client: &http.Client{
			Timeout: timeout,
		},
	}

	return cl, nil
}

// GenerateImage posts the prompt pair and generation parameters to the
// backend and decodes the image it returns. A 204 response means the
// backend declined to produce an image; that is reported as (nil, nil).
func (cl *Client) GenerateImage(ctx context.Context, prompt string, negative_prompt string, opts *GenerateOptions) (image.Image, error) {

	if opts == nil {
		opts = DefaultGenerateOptions()
	}

	gen_req := generateRequest{
		Prompt:         prompt,
		NegativePrompt: negative_prompt,
		Steps:          opts.Steps,
		GuidanceScale:  opts.GuidanceScale,
		Width:          opts.Width,
		Height:         opts.Height,
		Seed:           opts.Seed,
	}

	body, err := json.Marshal(gen_req)

	if err != nil {
		return nil, fmt.Errorf("Failed to marshal generate request, %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cl.endpoint, bytes.NewReader(body))

	if err != nil {
		return nil, fmt.Errorf("Failed to create generate request, %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	rsp, err := cl.http_client.Do(req)

	if err != nil {
		return nil, fmt.Errorf("Failed to execute generate request, %w", err)
	}

	defer rsp.Body.Close()

	if rsp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	if rsp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Generate request failed with status %s", rsp.Status)
	}

	im, _, err := image.Decode(rsp.Body)

	if err != nil {
		return nil, fmt.Errorf("Failed to decode generated image, %w", err)
	}

	return im, nil
}
