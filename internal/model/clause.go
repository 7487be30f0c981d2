package model

// Clause represents one contiguous span of contract text extracted by the segmenter
type Clause struct {
	ID   string `json:"id"`   // Generated label, e.g. "Clause 3" or "Paragraph 2"
	Text string `json:"text"` // Raw clause text (>20 chars for heading-based clauses)
}

// ClauseAssessment is the scorer's output for a single clause
type ClauseAssessment struct {
	RiskScore  float64   `json:"risk_score"`           // Always in [0,1]
	RiskFlags  []string  `json:"risk_flags,omitempty"` // Warnings in signal order
	ClauseType string    `json:"clause_type"`          // From the closed label set, "General Clause" default
	RiskLevel  RiskLevel `json:"risk_level"`
}

// RiskLevel is the three-value projection of a risk score
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// LevelForScore projects a risk score onto a risk level.
// Thresholds: <0.4 low, [0.4,0.7) medium, >=0.7 high.
func LevelForScore(score float64) RiskLevel {
	switch {
	case score >= 0.7:
		return RiskHigh
	case score >= 0.4:
		return RiskMedium
	default:
		return RiskLow
	}
}

func (l RiskLevel) String() string {
	switch l {
	case RiskHigh:
		return "High"
	case RiskMedium:
		return "Medium"
	default:
		return "Low"
	}
}

// Language tags the detected script of a clause or document
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageHindi   Language = "hi"
)

// DetectLanguage returns Hindi iff any rune within the first 1000 runes
// falls in the Devanagari block, English otherwise.
func DetectLanguage(text string) Language {
	checked := 0
	for _, r := range text {
		if checked >= 1000 {
			break
		}
		checked++
		if r >= 0x0900 && r <= 0x097F {
			return LanguageHindi
		}
	}
	return LanguageEnglish
}
