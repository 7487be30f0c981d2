package match

import "testing"

const sampleTemplate = `## Payment
Payment shall be made within 30 days of invoice.

## Termination
Either party may terminate with 30 days written notice.
Termination for cause requires documented reasons.
`

func TestParseTemplate(t *testing.T) {
	tpl := ParseTemplate("Service Agreement", sampleTemplate)

	if tpl.Name != "Service Agreement" {
		t.Errorf("Expected template name preserved, got %s", tpl.Name)
	}
	if len(tpl.Sections) != 2 {
		t.Fatalf("Expected 2 sections, got %d", len(tpl.Sections))
	}
	if tpl.Sections[0].Name != "Payment" {
		t.Errorf("Expected Payment section, got %s", tpl.Sections[0].Name)
	}
	if len(tpl.Sections[1].Clauses) != 2 {
		t.Errorf("Expected 2 termination clauses, got %d", len(tpl.Sections[1].Clauses))
	}
}

func TestCompareWithTemplate_PresentAndMissing(t *testing.T) {
	tpl := ParseTemplate("Service Agreement", sampleTemplate)

	// Document contains the payment clause verbatim but nothing about termination
	text := "Payment shall be made within 30 days of invoice."
	comparisons := CompareWithTemplate(text, tpl)

	if len(comparisons) != 3 {
		t.Fatalf("Expected 3 comparisons, got %d", len(comparisons))
	}

	if comparisons[0].Status != "Present" {
		t.Errorf("Expected payment clause Present (similarity %f), got %s",
			comparisons[0].Similarity, comparisons[0].Status)
	}
	for _, c := range comparisons[1:] {
		if c.Status != "Missing" {
			t.Errorf("Expected %q Missing, got %s", c.TemplateClause, c.Status)
		}
	}
}
