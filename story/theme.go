// Package story supplies the scene descriptions that become prompt
// phrase groups. Themes are plain JSON documents; scene selection is
// driven by an explicitly injected random source so that a seed fully
// determines a book's content.
package story

import (
	"context"
	"fmt"
	"io"

	"github.com/tidwall/gjson"
	"github.com/whosonfirst/go-reader"
)

// Theme is the pool of story elements a book draws from.
type Theme struct {
	Name       string
	Characters []string
	Settings   []string
	Actions    []string
	Objects    []string
}

// LoadTheme reads and parses a theme document from a go-reader source,
// which may be a local directory or an HTTP endpoint depending on the
// reader the caller constructed.
func LoadTheme(ctx context.Context, r reader.Reader, uri string) (*Theme, error) {

	fh, err := r.Read(ctx, uri)

	if err != nil {
		return nil, fmt.Errorf("Failed to read theme document %s, %w", uri, err)
	}

	defer fh.Close()

	body, err := io.ReadAll(fh)

	if err != nil {
		return nil, fmt.Errorf("Failed to read body for %s, %w", uri, err)
	}

	return UnmarshalTheme(body)
}

// UnmarshalTheme parses a theme from its JSON encoding.
func UnmarshalTheme(body []byte) (*Theme, error) {

	name_rsp := gjson.GetBytes(body, "name")

	if !name_rsp.Exists() {
		return nil, fmt.Errorf("Theme document is missing name property")
	}

	t := &Theme{
		Name:       name_rsp.String(),
		Characters: stringList(body, "characters"),
		Settings:   stringList(body, "settings"),
		Actions:    stringList(body, "actions"),
		Objects:    stringList(body, "objects"),
	}

	if len(t.Characters) == 0 {
		return nil, fmt.Errorf("Theme '%s' has no characters", t.Name)
	}

	if len(t.Actions) == 0 {
		return nil, fmt.Errorf("Theme '%s' has no actions", t.Name)
	}

	if len(t.Settings) == 0 {
		return nil, fmt.Errorf("Theme '%s' has no settings", t.Name)
	}

	return t, nil
}

func stringList(body []byte, path string) []string {

	rsp := gjson.GetBytes(body, path)

	if !rsp.Exists() {
		return nil
	}

	values := make([]string, 0)

	for _, el := range rsp.Array() {

		if el.String() == "" {
			continue
		}

		values = append(values, el.String())
	}

	return values
}
