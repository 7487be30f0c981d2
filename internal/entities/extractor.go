// Package entities extracts parties, dates, amounts and statute references
// from contract text.
package entities

import (
	"regexp"
	"strings"

	prose "github.com/jdkato/prose/v2"

	"github.com/psarda/clauselens/internal/lexicon"
	"github.com/psarda/clauselens/internal/model"
)

var (
	dateRe  = regexp.MustCompile(`(?i)\d{1,2}[-/]\d{1,2}[-/]\d{2,4}|\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4}`)
	moneyRe = regexp.MustCompile(`₹\s*\d+(?:,\d+)*(?:\.\d+)?|\$\s*\d+(?:,\d+)*(?:\.\d+)?|(?:INR|Rs\.?)\s*\d+(?:,\d+)*(?:\.\d+)?|रुपये\s*\d+(?:,\d+)*(?:\.\d+)?`)

	// "between X and Y" names the contracting parties in most preambles
	betweenRe    = regexp.MustCompile(`(?i)between\s+([^,]+?)\s+and\s+([^,.]+)`)
	hindiPartyRe = regexp.MustCompile(`पक्ष\s*:\s*([^।\n]+)`)

	// Indian statutes are conventionally cited as "<name> Act, <year>"
	statuteRe = regexp.MustCompile(`(?i)\b(?:the\s+)?([A-Za-z][A-Za-z ]{2,60}Act)(?:,?\s*(\d{4}))?`)
)

// Extractor pulls named entities out of full document text
type Extractor struct {
	lex *lexicon.Lexicon
}

// NewExtractor creates an entity extractor
func NewExtractor(lex *lexicon.Lexicon) *Extractor {
	return &Extractor{lex: lex}
}

// Extract returns the entities found in the document. English text goes
// through the NLP model for person/place/organization mentions; Hindi text
// uses the regex patterns only. Extraction failures degrade to the regex
// results; this never returns an error.
func (e *Extractor) Extract(text string) *model.EntitySet {
	set := &model.EntitySet{}
	if strings.TrimSpace(text) == "" {
		return set
	}

	if model.DetectLanguage(text) == model.LanguageEnglish {
		if doc, err := prose.NewDocument(text); err == nil {
			for _, ent := range doc.Entities() {
				switch ent.Label {
				case "PERSON":
					set.Parties = append(set.Parties, ent.Text)
				case "GPE":
					set.Places = append(set.Places, ent.Text)
				case "ORG", "ORGANIZATION":
					set.Orgs = append(set.Orgs, ent.Text)
				}
			}
		}
	}

	set.Dates = dateRe.FindAllString(text, -1)
	set.Money = moneyRe.FindAllString(text, -1)

	for _, m := range betweenRe.FindAllStringSubmatch(text, -1) {
		set.Parties = append(set.Parties, strings.TrimSpace(m[1]), strings.TrimSpace(m[2]))
	}
	for _, m := range hindiPartyRe.FindAllStringSubmatch(text, -1) {
		set.Parties = append(set.Parties, strings.TrimSpace(m[1]))
	}

	set.Statutes = e.extractStatutes(text)

	set.Parties = dedupe(set.Parties)
	set.Dates = dedupe(set.Dates)
	set.Money = dedupe(set.Money)
	set.Orgs = dedupe(set.Orgs)
	set.Places = dedupe(set.Places)

	return set
}

// extractStatutes collects statute citations, preferring the known Indian
// compliance acts from the catalogue
func (e *Extractor) extractStatutes(text string) []string {
	lower := strings.ToLower(text)
	var statutes []string

	for _, act := range e.lex.ComplianceActs {
		if strings.Contains(lower, act) {
			statutes = append(statutes, act)
		}
	}

	for _, m := range statuteRe.FindAllStringSubmatch(text, -1) {
		cite := strings.TrimSpace(m[1])
		if m[2] != "" {
			cite += ", " + m[2]
		}
		statutes = append(statutes, cite)
	}

	return dedupe(statutes)
}

// dedupe removes duplicates and empty strings, preserving first-seen order
func dedupe(items []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		key := strings.ToLower(item)
		if !seen[key] {
			seen[key] = true
			out = append(out, item)
		}
	}
	return out
}
