package story

import (
	"math/rand"
	"strings"
	"testing"
)

func testTheme() *Theme {

	return &Theme{
		Name:       "woodland",
		Characters: []string{"a small fluffy rabbit", "a curious fox cub", "a sleepy owl"},
		Settings:   []string{"in a sunny meadow", "under a tall oak tree", "beside a quiet stream"},
		Actions:    []string{"hopping happily", "reading a tiny book", "flying a paper kite"},
		Objects:    []string{"a basket of berries", "a wooden lantern"},
	}
}

func TestGenerateIsDeterministic(t *testing.T) {

	theme := testTheme()

	a, err := NewSceneGenerator(theme, rand.New(rand.NewSource(42)))

	if err != nil {
		t.Fatalf("Failed to create generator, %v", err)
	}

	b, err := NewSceneGenerator(theme, rand.New(rand.NewSource(42)))

	if err != nil {
		t.Fatalf("Failed to create generator, %v", err)
	}

	scenes_a := a.Generate(8)
	scenes_b := b.Generate(8)

	for i := range scenes_a {

		if scenes_a[i].Description() != scenes_b[i].Description() {
			t.Fatalf("Scene %d differs across identically seeded generators: %q vs %q", i, scenes_a[i].Description(), scenes_b[i].Description())
		}
	}
}

func TestGenerateRotatesCharacters(t *testing.T) {

	theme := testTheme()

	g, err := NewSceneGenerator(theme, rand.New(rand.NewSource(1)))

	if err != nil {
		t.Fatalf("Failed to create generator, %v", err)
	}

	scenes := g.Generate(3)

	seen := make(map[string]bool)

	for _, s := range scenes {
		seen[s.Character] = true
	}

	if len(seen) != 3 {
		t.Fatalf("Expected all three characters in the first three scenes, got %d", len(seen))
	}
}

func TestNewSceneGeneratorRequiresRandomSource(t *testing.T) {

	_, err := NewSceneGenerator(testTheme(), nil)

	if err == nil {
		t.Fatalf("Expected error for missing random source")
	}
}

func TestBuildPromptSpec(t *testing.T) {

	s := &Scene{
		Character: "a small fluffy rabbit",
		Action:    "hopping happily",
		Setting:   "in a sunny meadow",
		Object:    "a basket of berries",
	}

	spec := BuildPromptSpec(s, []string{"bold clean lines"})

	if len(spec.Groups) != 5 {
		t.Fatalf("Expected 5 phrase groups, got %d", len(spec.Groups))
	}

	if spec.Groups[0].Name != "essential" {
		t.Fatalf("Expected essential group first, got %s", spec.Groups[0].Name)
	}

	joined := strings.Join(spec.Groups[3].Phrases, " ")

	if !strings.Contains(joined, "hopping happily in a sunny meadow") {
		t.Fatalf("Scene action group missing scene content, got %q", joined)
	}
}
