package story

import (
	"fmt"
	"math/rand"

	"github.com/mergimdemku/flux-coloring-book-generator-sub000/prompt"
)

// EssentialPhrases are the non-negotiable prompt phrases for every page.
// They occupy the highest priority group so the composer never drops
// them.
var EssentialPhrases = []string{
	"black and white line art",
	"coloring book page",
	"clean bold outlines",
	"white background",
	"no text",
}

// Scene is one page's worth of story content.
type Scene struct {
	Character string
	Action    string
	Setting   string
	Object    string
}

// Description renders the scene as a single readable sentence fragment.
func (s *Scene) Description() string {

	desc := fmt.Sprintf("%s %s %s", s.Character, s.Action, s.Setting)

	if s.Object != "" {
		desc = fmt.Sprintf("%s with %s", desc, s.Object)
	}

	return desc
}

// SceneGenerator selects scenes from a theme. The random source is
// injected by the caller; there is no global seed state, so the same
// seed always yields the same scenes.
type SceneGenerator struct {
	theme *Theme
	rnd   *rand.Rand
}

func NewSceneGenerator(theme *Theme, rnd *rand.Rand) (*SceneGenerator, error) {

	if theme == nil {
		return nil, fmt.Errorf("Missing theme")
	}

	if rnd == nil {
		return nil, fmt.Errorf("Missing random source")
	}

	g := &SceneGenerator{
		theme: theme,
		rnd:   rnd,
	}

	return g, nil
}

// Generate produces count scenes. Characters rotate round-robin so every
// character appears before any repeats; actions, settings and objects are
// drawn from the injected random source.
func (g *SceneGenerator) Generate(count int) []*Scene {

	scenes := make([]*Scene, 0, count)

	for i := 0; i < count; i++ {

		s := &Scene{
			Character: g.theme.Characters[i%len(g.theme.Characters)],
			Action:    g.theme.Actions[g.rnd.Intn(len(g.theme.Actions))],
			Setting:   g.theme.Settings[g.rnd.Intn(len(g.theme.Settings))],
		}

		if len(g.theme.Objects) > 0 {
			s.Object = g.theme.Objects[g.rnd.Intn(len(g.theme.Objects))]
		}

		scenes = append(scenes, s)
	}

	return scenes
}

// BuildPromptSpec maps a scene on to the composer's phrase groups. Style
// phrases come from the line art profile for the book's style.
func BuildPromptSpec(s *Scene, style_phrases []string) *prompt.Spec {

	character := []string{s.Character}

	var objects []string

	if s.Object != "" {
		objects = []string{s.Object}
	}

	scene_action := []string{
		fmt.Sprintf("%s %s", s.Action, s.Setting),
	}

	return prompt.NewSpec(EssentialPhrases, character, objects, scene_action, style_phrases)
}
