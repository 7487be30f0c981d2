// Package match classifies whole documents into contract categories and
// compares them against standard templates.
package match

import (
	"strings"

	"github.com/psarda/clauselens/internal/lexicon"
)

// hitScore is the flat score added when any trigger word of a catalogue
// entry is present. Multiple matched triggers do not combine.
const hitScore = 0.8

// Matcher classifies documents into contract types
type Matcher struct {
	lex *lexicon.Lexicon
}

// NewMatcher creates a matcher over the given catalogue
func NewMatcher(lex *lexicon.Lexicon) *Matcher {
	return &Matcher{lex: lex}
}

// MatchContractType returns the best-matching contract type and its
// confidence. Each catalogue entry scores a flat hit if any of its trigger
// words appears anywhere in the text; ties break toward the earlier
// catalogue entry. This is a coarse single-pass heuristic used for
// contextual labeling only, never inside per-clause scoring.
func (m *Matcher) MatchContractType(text string) (string, float64) {
	lower := strings.ToLower(text)

	bestType := ""
	bestScore := -1.0

	for _, entry := range m.lex.ContractTypes {
		score := 0.0
		for _, trigger := range entry.Triggers {
			if strings.Contains(lower, trigger) {
				score = hitScore
				break
			}
		}
		if score > bestScore {
			bestType = entry.Label
			bestScore = score
		}
	}

	if bestScore < 0 {
		return "", 0.0
	}
	return bestType, bestScore
}
