package segment

import (
	"testing"

	"github.com/psarda/clauselens/internal/lexicon"
)

func newTestSegmenter() *Segmenter {
	return NewSegmenter(lexicon.New())
}

func TestNormalize(t *testing.T) {
	got := Normalize("  The\tparties\n\nagree.  ")
	want := "The parties agree."
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestSegmenter_Segment_NumberedHeadings(t *testing.T) {
	s := newTestSegmenter()

	text := "1. The employer shall pay salary monthly to the employee. " +
		"2. Either party may terminate this agreement with thirty days written notice."

	clauses := s.Segment(text)
	if len(clauses) != 2 {
		t.Fatalf("Expected 2 clauses, got %d: %v", len(clauses), clauses)
	}
	if clauses[0].ID != "Clause 1" || clauses[1].ID != "Clause 2" {
		t.Errorf("Expected Clause 1 and Clause 2, got %s and %s", clauses[0].ID, clauses[1].ID)
	}
}

func TestSegmenter_Segment_WordedHeadings(t *testing.T) {
	s := newTestSegmenter()

	text := "Clause 1. The vendor shall deliver the goods to the agreed location. " +
		"Clause 2. Payment shall be made within thirty days of delivery of goods."

	clauses := s.Segment(text)
	if len(clauses) != 2 {
		t.Fatalf("Expected 2 clauses, got %d", len(clauses))
	}
	if clauses[0].ID != "Clause 1" {
		t.Errorf("Expected Clause 1, got %s", clauses[0].ID)
	}
}

func TestSegmenter_Segment_ShortBodyFiltered(t *testing.T) {
	s := newTestSegmenter()

	text := "1. Short. 2. This clause has enough body text to pass the minimum filter easily."

	clauses := s.Segment(text)
	if len(clauses) != 1 {
		t.Fatalf("Expected 1 clause after filtering, got %d", len(clauses))
	}
	if clauses[0].ID != "Clause 2" {
		t.Errorf("Expected Clause 2, got %s", clauses[0].ID)
	}
}

func TestSegmenter_Segment_FallbackGrouping(t *testing.T) {
	s := newTestSegmenter()

	text := "This agreement is made between Acme Industries and Bharat Traders for supply of goods. " +
		"All disputes shall be settled amicably between the parties before approaching any court."

	clauses := s.Segment(text)
	if len(clauses) != 2 {
		t.Fatalf("Expected 2 paragraph groups, got %d: %v", len(clauses), clauses)
	}
	if clauses[0].ID != "Paragraph 1" || clauses[1].ID != "Paragraph 2" {
		t.Errorf("Expected Paragraph 1 and Paragraph 2, got %s and %s", clauses[0].ID, clauses[1].ID)
	}
}

func TestSegmenter_Segment_Empty(t *testing.T) {
	s := newTestSegmenter()

	if clauses := s.Segment(""); clauses != nil {
		t.Errorf("Expected nil for empty input, got %v", clauses)
	}
	if clauses := s.Segment("   \n\t "); clauses != nil {
		t.Errorf("Expected nil for whitespace input, got %v", clauses)
	}
}

func TestSegmenter_Segment_HindiHeadings(t *testing.T) {
	s := newTestSegmenter()

	text := "धारा 1. विक्रेता सभी माल समय पर वितरित करेगा और गुणवत्ता बनाए रखेगा। " +
		"धारा 2. भुगतान तीस दिनों के भीतर बैंक हस्तांतरण द्वारा किया जाएगा।"

	clauses := s.Segment(text)
	if len(clauses) != 2 {
		t.Fatalf("Expected 2 Hindi clauses, got %d", len(clauses))
	}
	if clauses[0].ID != "Clause 1" {
		t.Errorf("Expected Clause 1, got %s", clauses[0].ID)
	}
}

func TestSplitSentences_Danda(t *testing.T) {
	sentences := SplitSentences("पहला वाक्य। दूसरा वाक्य।")
	if len(sentences) != 2 {
		t.Fatalf("Expected 2 sentences, got %d: %v", len(sentences), sentences)
	}
}

func TestSplitSentences_NoSplitOnDecimals(t *testing.T) {
	sentences := SplitSentences("Interest accrues at 1.5% per month. Late fees apply.")
	if len(sentences) != 2 {
		t.Errorf("Expected 2 sentences, got %d: %v", len(sentences), sentences)
	}
}
