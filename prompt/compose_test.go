package prompt

import (
	"strings"
	"testing"
)

func TestComposeUnderBudget(t *testing.T) {

	c := NewComposer(DefaultBudget, nil)

	spec := NewSpec(
		[]string{"black white line art", "coloring book page"},
		[]string{"a small fluffy rabbit"},
		nil,
		[]string{"hopping through a meadow"},
		[]string{"bold clean lines"},
	)

	composed := c.Compose(spec)

	for _, phrase := range []string{"black white line art", "coloring book page", "a small fluffy rabbit", "hopping through a meadow", "bold clean lines"} {

		if !strings.Contains(composed, phrase) {
			t.Fatalf("Expected composed prompt to contain %q, got %q", phrase, composed)
		}
	}

	est := NewWordEstimator()

	if est.Estimate(composed) > DefaultBudget {
		t.Fatalf("Composed prompt estimate %d exceeds budget %d", est.Estimate(composed), DefaultBudget)
	}
}

func TestComposeClampsCharacterPhrase(t *testing.T) {

	// Concrete scenario: long character description is clamped to eight
	// words while essential phrases survive verbatim.

	c := NewComposer(77, nil)

	spec := NewSpec(
		[]string{"black white line art", "coloring book page"},
		[]string{"a small fluffy rabbit with long ears and a blue bow"},
		nil,
		nil,
		nil,
	)

	composed := c.Compose(spec)

	if !strings.Contains(composed, "black white line art") {
		t.Fatalf("Missing essential phrase in %q", composed)
	}

	if !strings.Contains(composed, "coloring book page") {
		t.Fatalf("Missing essential phrase in %q", composed)
	}

	if strings.Contains(composed, "blue bow") {
		t.Fatalf("Character phrase was not clamped to 8 words, got %q", composed)
	}

	if !strings.Contains(composed, "a small fluffy rabbit with long ears and") {
		t.Fatalf("Expected 8-word character prefix in %q", composed)
	}

	est := NewWordEstimator()

	if est.Estimate(composed) > 77 {
		t.Fatalf("Estimate %d exceeds budget", est.Estimate(composed))
	}
}

func TestComposeEssentialSurvivesOversizedInput(t *testing.T) {

	c := NewComposer(77, nil)

	big := make([]string, 0, 40)

	for i := 0; i < 40; i++ {
		big = append(big, "an extremely detailed ornamental background flourish")
	}

	spec := NewSpec(
		[]string{"black white line art", "coloring book page"},
		[]string{"a brave knight"},
		big,
		big,
		[]string{"bold clean lines"},
	)

	composed := c.Compose(spec)

	if !strings.Contains(composed, "black white line art") {
		t.Fatalf("Essential phrase lost under pressure, got %q", composed)
	}

	if !strings.Contains(composed, "coloring book page") {
		t.Fatalf("Essential phrase lost under pressure, got %q", composed)
	}

	est := NewWordEstimator()

	if est.Estimate(composed) > 77 {
		t.Fatalf("Estimate %d exceeds budget", est.Estimate(composed))
	}
}

func TestComposeSkipsEmptyGroups(t *testing.T) {

	c := NewComposer(77, nil)

	spec := NewSpec(
		[]string{"black white line art", "", "  "},
		nil,
		[]string{""},
		nil,
		nil,
	)

	composed := c.Compose(spec)

	if composed != "black white line art" {
		t.Fatalf("Expected clean single phrase, got %q", composed)
	}

	if strings.Contains(composed, ", ,") || strings.HasSuffix(composed, ",") {
		t.Fatalf("Dangling comma in %q", composed)
	}
}

func TestComposeNegativeRespectsThreshold(t *testing.T) {

	c := NewComposer(77, nil)
	est := NewWordEstimator()

	phrases := make([]string, 0, 60)

	for i := 0; i < 60; i++ {
		phrases = append(phrases, "unwanted photographic texture artifact")
	}

	negative := c.ComposeNegative(phrases)

	if est.Estimate(negative) > NegativeSafetyThreshold {
		t.Fatalf("Negative prompt estimate %d exceeds threshold %d", est.Estimate(negative), NegativeSafetyThreshold)
	}
}

func TestComposeNegativeStopsAtFirstOverflow(t *testing.T) {

	c := NewComposer(77, nil)

	phrases := []string{
		"color", "shading", "gradients", "text", "watermark",
	}

	negative := c.ComposeNegative(phrases)

	expected := "color, shading, gradients, text, watermark"

	if negative != expected {
		t.Fatalf("Expected %q, got %q", expected, negative)
	}
}

func TestWordEstimator(t *testing.T) {

	tests := []struct {
		text     string
		expected int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 2},
		{"black white line art", 6},
		{"a small fluffy rabbit with long ears and", 11},
	}

	est := NewWordEstimator()

	for _, tc := range tests {

		got := est.Estimate(tc.text)

		if got != tc.expected {
			t.Errorf("Estimate(%q) = %d, expected %d", tc.text, got, tc.expected)
		}
	}
}
