package lexicon

import "testing"

func TestNew_CatalogueShape(t *testing.T) {
	lex := New()

	if len(lex.EnglishRisk.High) == 0 || len(lex.EnglishRisk.Medium) == 0 || len(lex.EnglishRisk.Low) == 0 {
		t.Errorf("English tiers must all be populated")
	}
	if len(lex.HindiRisk.High) == 0 || len(lex.HindiRisk.Medium) == 0 {
		t.Errorf("Hindi high and medium tiers must be populated")
	}

	// Classifier priority: Indemnity is checked before everything else
	if lex.ClauseTypes[0].Label != "Indemnity Clause" {
		t.Errorf("Expected Indemnity Clause first, got %s", lex.ClauseTypes[0].Label)
	}
	if lex.DefaultClauseType != "General Clause" {
		t.Errorf("Expected General Clause default, got %s", lex.DefaultClauseType)
	}

	seen := make(map[string]bool)
	for _, entry := range lex.ClauseTypes {
		if seen[entry.Label] {
			t.Errorf("Duplicate clause type %s", entry.Label)
		}
		seen[entry.Label] = true
		if len(entry.Keywords) == 0 {
			t.Errorf("Clause type %s has no keywords", entry.Label)
		}
	}
}

func TestDeadlinePatterns_NumericCapture(t *testing.T) {
	lex := New()

	captured := false
	for _, p := range lex.DeadlinePatterns {
		m := p.FindStringSubmatch("within 3 days of notice")
		if len(m) >= 2 && m[1] == "3" {
			captured = true
		}
	}
	if !captured {
		t.Errorf("Expected a deadline pattern to capture the day count")
	}
}

func TestRiskTierFor(t *testing.T) {
	lex := New()

	if got := lex.RiskTierFor(true); len(got.High) != len(lex.HindiRisk.High) {
		t.Errorf("Expected Hindi tier")
	}
	if got := lex.RiskTierFor(false); len(got.High) != len(lex.EnglishRisk.High) {
		t.Errorf("Expected English tier")
	}
}
