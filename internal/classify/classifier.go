// Package classify assigns clause-type labels by ordered keyword matching.
package classify

import (
	"strings"

	"github.com/psarda/clauselens/internal/lexicon"
)

// Classifier assigns one clause-type label per clause
type Classifier struct {
	lex *lexicon.Lexicon
}

// NewClassifier creates a classifier over the given catalogue
func NewClassifier(lex *lexicon.Lexicon) *Classifier {
	return &Classifier{lex: lex}
}

// Classify returns the first clause type whose any keyword appears in the
// text (case-insensitive substring). The catalogue order is the priority
// order: earlier-declared types win ties, so a clause containing both
// "indemnify" and "terminate" is an Indemnity Clause. No match returns the
// default "General Clause".
func (c *Classifier) Classify(clauseText string) string {
	lower := strings.ToLower(clauseText)

	for _, entry := range c.lex.ClauseTypes {
		for _, keyword := range entry.Keywords {
			if strings.Contains(lower, keyword) {
				return entry.Label
			}
		}
	}

	return c.lex.DefaultClauseType
}
