package classify

import (
	"testing"

	"github.com/psarda/clauselens/internal/lexicon"
)

func newTestClassifier() *Classifier {
	return NewClassifier(lexicon.New())
}

func TestClassifier_Classify_PriorityOrder(t *testing.T) {
	c := newTestClassifier()

	// Matches both Indemnity and Termination keywords; the earlier catalogue
	// entry wins
	got := c.Classify("The party shall indemnify the other and may terminate this agreement.")
	if got != "Indemnity Clause" {
		t.Errorf("Expected Indemnity Clause, got %s", got)
	}
}

func TestClassifier_Classify_Default(t *testing.T) {
	c := newTestClassifier()

	got := c.Classify("The headings in this document are for convenience only.")
	if got != "General Clause" {
		t.Errorf("Expected General Clause, got %s", got)
	}
}

func TestClassifier_Classify_CaseInsensitive(t *testing.T) {
	c := newTestClassifier()

	got := c.Classify("ARBITRATION shall be the exclusive remedy.")
	if got != "Arbitration Clause" {
		t.Errorf("Expected Arbitration Clause, got %s", got)
	}
}

func TestClassifier_Classify_HindiKeywords(t *testing.T) {
	c := newTestClassifier()

	got := c.Classify("सभी विवादों के लिए क्षतिपूर्ति देय होगी।")
	if got != "Indemnity Clause" {
		t.Errorf("Expected Indemnity Clause, got %s", got)
	}
}

func TestClassifier_Classify_Scenarios(t *testing.T) {
	c := newTestClassifier()

	cases := []struct {
		text string
		want string
	}{
		{"This agreement is governed by the laws of India and the jurisdiction of Mumbai courts.", "Jurisdiction Clause"},
		{"All confidential information shall be protected for three years.", "Confidentiality Clause"},
		{"Payment shall be made within thirty days of invoice receipt.", "Payment Clause"},
		{"Force majeure events excuse performance during their continuance.", "Force Majeure Clause"},
	}

	for _, tc := range cases {
		if got := c.Classify(tc.text); got != tc.want {
			t.Errorf("Classify(%q) = %s, want %s", tc.text, got, tc.want)
		}
	}
}
