package match

import "strings"

// presentThreshold marks a template clause as present in the document
const presentThreshold = 0.7

// Section is one "## heading" block of a standard contract template
type Section struct {
	Name    string
	Clauses []string
}

// Template is a standard contract template used for gap comparison
type Template struct {
	Name     string
	Sections []Section
}

// Comparison is the result of checking one template clause against a document
type Comparison struct {
	Section        string  `json:"section"`
	TemplateClause string  `json:"template_clause"`
	Similarity     float64 `json:"similarity"`
	Status         string  `json:"status"` // "Present" or "Missing"
}

// ParseTemplate parses template text into sections. Lines starting with
// "##" open a section; subsequent non-empty lines are its clauses.
func ParseTemplate(name, content string) Template {
	tpl := Template{Name: name}
	var current *Section

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "##") {
			tpl.Sections = append(tpl.Sections, Section{Name: strings.TrimSpace(line[2:])})
			current = &tpl.Sections[len(tpl.Sections)-1]
			continue
		}
		if current != nil && line != "" {
			current.Clauses = append(current.Clauses, line)
		}
	}

	return tpl
}

// CompareWithTemplate checks each template clause against the document text
// and reports whether an equivalent appears to be present
func CompareWithTemplate(text string, tpl Template) []Comparison {
	var comparisons []Comparison

	for _, section := range tpl.Sections {
		for _, clause := range section.Clauses {
			sim := Similarity(clause, text)
			status := "Missing"
			if sim > presentThreshold {
				status = "Present"
			}
			comparisons = append(comparisons, Comparison{
				Section:        section.Name,
				TemplateClause: clause,
				Similarity:     sim,
				Status:         status,
			})
		}
	}

	return comparisons
}
