package story

import (
	"testing"
)

func TestUnmarshalTheme(t *testing.T) {

	body := []byte(`{
		"name": "woodland",
		"characters": ["a small fluffy rabbit", "a curious fox cub"],
		"settings": ["in a sunny meadow"],
		"actions": ["hopping happily"],
		"objects": ["a basket of berries"]
	}`)

	theme, err := UnmarshalTheme(body)

	if err != nil {
		t.Fatalf("Failed to unmarshal theme, %v", err)
	}

	if theme.Name != "woodland" {
		t.Errorf("Expected name 'woodland', got %q", theme.Name)
	}

	if len(theme.Characters) != 2 {
		t.Errorf("Expected 2 characters, got %d", len(theme.Characters))
	}

	if theme.Objects[0] != "a basket of berries" {
		t.Errorf("Unexpected object %q", theme.Objects[0])
	}
}

func TestUnmarshalThemeMissingName(t *testing.T) {

	body := []byte(`{"characters": ["a rabbit"], "settings": ["a meadow"], "actions": ["hopping"]}`)

	_, err := UnmarshalTheme(body)

	if err == nil {
		t.Fatalf("Expected error for theme without a name")
	}
}

func TestUnmarshalThemeEmptyPools(t *testing.T) {

	body := []byte(`{"name": "empty", "characters": [], "settings": [], "actions": []}`)

	_, err := UnmarshalTheme(body)

	if err == nil {
		t.Fatalf("Expected error for theme with empty pools")
	}
}
