package lineart

import (
	"testing"
)

func TestParseStyle(t *testing.T) {

	tests := []struct {
		name     string
		expected Style
	}{
		{"manga_clean", StyleMangaClean},
		{"simple_thick", StyleSimpleThick},
		{"classic", StyleClassic},
		{"contour_trace", StyleContourTrace},
	}

	for _, tc := range tests {

		s, err := ParseStyle(tc.name)

		if err != nil {
			t.Fatalf("Failed to parse style %s, %v", tc.name, err)
		}

		if s != tc.expected {
			t.Errorf("ParseStyle(%q) = %v, expected %v", tc.name, s, tc.expected)
		}

		if s.String() != tc.name {
			t.Errorf("Style %v renders as %q, expected %q", s, s.String(), tc.name)
		}
	}
}

func TestParseStyleInvalid(t *testing.T) {

	_, err := ParseStyle("photorealistic")

	if err == nil {
		t.Fatalf("Expected error for unknown style")
	}
}

func TestProfilesHaveNegativePhrases(t *testing.T) {

	for _, name := range Styles() {

		s, err := ParseStyle(name)

		if err != nil {
			t.Fatalf("Failed to parse style %s, %v", name, err)
		}

		profile, err := GetProfile(s)

		if err != nil {
			t.Fatalf("Failed to get profile for %s, %v", name, err)
		}

		if len(profile.NegativePhrases) == 0 {
			t.Errorf("Style %s has no negative phrases", name)
		}

		if len(profile.StylePhrases) == 0 {
			t.Errorf("Style %s has no style phrases", name)
		}
	}
}
