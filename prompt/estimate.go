package prompt

import (
	"math"
	"strings"
)

// DefaultTokensPerWord is the approximate number of CLIP tokens produced
// per whitespace-delimited word. CLIP splits many words into multiple
// sub-word units so a flat word count undershoots the real total.
const DefaultTokensPerWord = 1.33

// Estimator approximates the number of tokens a text encoder will consume
// for a given string. Implementations are expected to be cheap; the
// estimate is used to pack prompts, not to bill anything.
type Estimator interface {
	Estimate(text string) int
}

// WordEstimator estimates token counts from whitespace-delimited word
// counts. It is deliberately a heuristic: a real tokenizer can be swapped
// in through the Estimator interface without touching the composer.
type WordEstimator struct {
	TokensPerWord float64
}

func NewWordEstimator() *WordEstimator {

	return &WordEstimator{
		TokensPerWord: DefaultTokensPerWord,
	}
}

func (e *WordEstimator) Estimate(text string) int {

	words := len(strings.Fields(text))

	if words == 0 {
		return 0
	}

	return int(math.Ceil(float64(words) * e.TokensPerWord))
}
