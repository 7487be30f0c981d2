// Package segment splits raw contract text into discrete clauses.
package segment

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/psarda/clauselens/internal/lexicon"
	"github.com/psarda/clauselens/internal/model"
)

// minClauseRunes filters out headings with no body
const minClauseRunes = 20

// longSentenceRunes starts a new paragraph group in the fallback path
const longSentenceRunes = 50

var whitespaceRe = regexp.MustCompile(`\s+`)

// Normalize collapses all whitespace runs to single spaces
func Normalize(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// Segmenter extracts clauses using numbered-heading patterns with a
// sentence-grouping fallback
type Segmenter struct {
	lex *lexicon.Lexicon
}

// NewSegmenter creates a segmenter over the given catalogue
func NewSegmenter(lex *lexicon.Lexicon) *Segmenter {
	return &Segmenter{lex: lex}
}

// Segment splits document text into clauses, preserving document order.
// Heading families are applied in catalogue order; within a family, each
// match captures the clause number and the text run until the next heading
// of the same family. The first family to produce a given clause number
// wins. If no family matches anywhere, sentences are grouped into
// "Paragraph n" clauses instead. Empty input yields an empty result.
func (s *Segmenter) Segment(text string) []model.Clause {
	text = Normalize(text)
	if text == "" {
		return nil
	}

	seen := make(map[string]bool)
	var clauses []model.Clause

	for _, family := range s.lex.HeadingFamilies {
		locs := family.Pattern.FindAllStringSubmatchIndex(text, -1)
		for i, loc := range locs {
			number := text[loc[2]:loc[3]]

			bodyEnd := len(text)
			if i+1 < len(locs) {
				bodyEnd = locs[i+1][0]
			}
			body := strings.TrimSpace(text[loc[1]:bodyEnd])
			if utf8.RuneCountInString(body) <= minClauseRunes {
				continue
			}

			id := "Clause " + number
			if seen[id] {
				continue
			}
			seen[id] = true
			clauses = append(clauses, model.Clause{ID: id, Text: body})
		}
	}

	if len(clauses) > 0 {
		return clauses
	}

	return groupSentences(text)
}

// groupSentences is the fallback when no heading pattern matched: each
// sentence longer than longSentenceRunes flushes the accumulated group and
// starts a new one; shorter sentences accumulate into the current group.
func groupSentences(text string) []model.Clause {
	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return nil
	}

	var clauses []model.Clause
	var current []string
	n := 1

	emit := func() {
		if len(current) == 0 {
			return
		}
		clauses = append(clauses, model.Clause{
			ID:   "Paragraph " + strconv.Itoa(n),
			Text: strings.Join(current, " "),
		})
		n++
		current = nil
	}

	for _, sentence := range sentences {
		if utf8.RuneCountInString(sentence) > longSentenceRunes {
			emit()
		}
		current = append(current, sentence)
	}
	emit()

	return clauses
}

// SplitSentences splits text on sentence terminators, including the
// Devanagari danda used in Hindi contracts
func SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		sentence := strings.TrimSpace(current.String())
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		current.Reset()
	}

	for i, r := range text {
		current.WriteRune(r)

		if r == '.' || r == '!' || r == '?' || r == '।' {
			// Look ahead to avoid splitting on abbreviations and decimals
			next := i + utf8.RuneLen(r)
			if next >= len(text) || text[next] == ' ' || text[next] == '\t' {
				flush()
			}
		}
	}
	flush()

	return sentences
}
