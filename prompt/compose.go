// Package prompt assembles diffusion prompts from prioritized phrase
// groups without exceeding the token window of the downstream text
// encoder. Content past the window is silently ignored by the encoder,
// so anything that must survive ("black and white line art", "no text")
// has to be packed in priority order up front.
package prompt

import (
	"log/slog"
	"strings"
)

// DefaultBudget is the hard token cap. CLIP attends to at most 77 tokens.
const DefaultBudget = 77

// NegativeSafetyThreshold is the slightly lower cap used for negative
// prompts, leaving headroom for encoder start/end tokens.
const NegativeSafetyThreshold = 75

// MaxScenePhraseWords caps the length of character and scene phrases
// before insertion. Story-derived descriptions ramble; eight words keeps
// the subject without eating the whole budget.
const MaxScenePhraseWords = 8

const (
	GroupEssential      = "essential"
	GroupCharacter      = "character"
	GroupObjectEmphasis = "object_emphasis"
	GroupSceneAction    = "scene_action"
	GroupStyle          = "style"
)

// Group is a named set of phrases sharing one priority slot.
type Group struct {
	Name    string
	Phrases []string
}

// Spec is an ordered list of phrase groups, highest priority first.
type Spec struct {
	Groups []Group
}

// NewSpec builds a Spec with the conventional group ordering.
func NewSpec(essential []string, character []string, objects []string, scene []string, style []string) *Spec {

	return &Spec{
		Groups: []Group{
			{Name: GroupEssential, Phrases: essential},
			{Name: GroupCharacter, Phrases: character},
			{Name: GroupObjectEmphasis, Phrases: objects},
			{Name: GroupSceneAction, Phrases: scene},
			{Name: GroupStyle, Phrases: style},
		},
	}
}

// Composer packs phrase groups into a single comma-joined prompt string
// that stays under a token budget. Composition cannot fail: at worst the
// output is an overly truncated prompt, which is logged rather than
// returned as an error.
type Composer struct {
	budget    int
	estimator Estimator
	logger    *slog.Logger
}

func NewComposer(budget int, estimator Estimator) *Composer {

	if budget <= 0 {
		budget = DefaultBudget
	}

	if estimator == nil {
		estimator = NewWordEstimator()
	}

	return &Composer{
		budget:    budget,
		estimator: estimator,
		logger:    slog.Default(),
	}
}

// Compose joins the spec's groups in priority order. Full groups are
// appended while the running estimate stays under the budget; groups that
// would overflow are dropped, not trimmed, so a later smaller group may
// still fit. Character and scene phrases are clamped to
// MaxScenePhraseWords before insertion. The essential group is always
// included.
func (c *Composer) Compose(spec *Spec) string {

	parts := make([]string, 0, 8)
	running := 0

	for _, g := range spec.Groups {

		phrases := cleanPhrases(g.Phrases)

		if g.Name == GroupCharacter || g.Name == GroupSceneAction {
			phrases = clampPhrases(phrases, MaxScenePhraseWords)
		}

		if len(phrases) == 0 {
			continue
		}

		cost := c.estimator.Estimate(strings.Join(phrases, " "))

		if g.Name != GroupEssential && running+cost > c.budget {

			c.logger.Warn("Phrase group dropped to honor token budget",
				"group", g.Name,
				"cost", cost,
				"used", running,
				"budget", c.budget)

			continue
		}

		parts = append(parts, phrases...)
		running += cost
	}

	composed := strings.Join(parts, ", ")

	if c.estimator.Estimate(composed) > c.budget {

		composed = c.truncateToBudget(composed, c.budget)

		c.logger.Warn("Composed prompt exceeded token budget and was hard-truncated",
			"budget", c.budget)
	}

	return composed
}

// ComposeNegative joins phrases in priority order, stopping at the first
// phrase whose insertion would push the running estimate past the safety
// threshold. Negative prompts never use the full hard cap.
func (c *Composer) ComposeNegative(phrases []string) string {

	threshold := NegativeSafetyThreshold

	if threshold > c.budget {
		threshold = c.budget
	}

	parts := make([]string, 0, len(phrases))
	running := 0

	for _, p := range cleanPhrases(phrases) {

		cost := c.estimator.Estimate(p)

		if running+cost > threshold {

			c.logger.Warn("Negative prompt truncated at safety threshold",
				"threshold", threshold,
				"dropped", p)

			break
		}

		parts = append(parts, p)
		running += cost
	}

	return strings.Join(parts, ", ")
}

// truncateToBudget drops words from the end until the estimate fits.
func (c *Composer) truncateToBudget(text string, budget int) string {

	words := strings.Fields(text)

	for len(words) > 0 && c.estimator.Estimate(strings.Join(words, " ")) > budget {
		words = words[:len(words)-1]
	}

	return strings.TrimRight(strings.Join(words, " "), ", \t")
}

// cleanPhrases trims whitespace and removes empty phrases so that no
// group can emit a dangling comma.
func cleanPhrases(phrases []string) []string {

	cleaned := make([]string, 0, len(phrases))

	for _, p := range phrases {

		p = strings.TrimSpace(p)

		if p == "" {
			continue
		}

		cleaned = append(cleaned, p)
	}

	return cleaned
}

// clampPhrases truncates each phrase to at most max_words words.
func clampPhrases(phrases []string, max_words int) []string {

	clamped := make([]string, 0, len(phrases))

	for _, p := range phrases {

		words := strings.Fields(p)

		if len(words) > max_words {
			words = words[:max_words]
		}

		clamped = append(clamped, strings.Join(words, " "))
	}

	return clamped
}
