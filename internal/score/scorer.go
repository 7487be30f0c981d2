// Package score computes per-clause risk scores and the contract-level
// composite. All functions are total over string input: they never error
// and always return a score in [0,1].
package score

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/psarda/clauselens/internal/classify"
	"github.com/psarda/clauselens/internal/lexicon"
	"github.com/psarda/clauselens/internal/model"
)

// Scorer calculates clause risk scores and diagnostic flags
type Scorer struct {
	lex        *lexicon.Lexicon
	classifier *classify.Classifier
}

// NewScorer creates a new scorer over the given catalogue
func NewScorer(lex *lexicon.Lexicon) *Scorer {
	return &Scorer{
		lex:        lex,
		classifier: classify.NewClassifier(lex),
	}
}

// ScoreClause scores a single clause. Signals accumulate additively and the
// score is clamped to 1.0 after every addition that could exceed it. Flags
// follow the signal order: jurisdiction, one-sidedness, ambiguity,
// deadlines. Keyword-tier scoring contributes score only, no flags.
func (s *Scorer) ScoreClause(clauseText string) model.ClauseAssessment {
	lower := strings.ToLower(clauseText)
	hindi := model.DetectLanguage(clauseText) == model.LanguageHindi

	var riskScore float64
	var flags []string

	// 1. Keyword tiers for the detected language only; the English and
	// Hindi lexicons are never combined for the same clause.
	if hindi {
		riskScore += float64(countPresent(clauseText, s.lex.HindiRisk.High)) * lexicon.WeightHindiHigh
		riskScore += float64(countPresent(clauseText, s.lex.HindiRisk.Medium)) * lexicon.WeightHindiMedium
	} else {
		riskScore += float64(countPresent(lower, s.lex.EnglishRisk.High)) * lexicon.WeightEnglishHigh
		riskScore += float64(countPresent(lower, s.lex.EnglishRisk.Medium)) * lexicon.WeightEnglishMedium
		riskScore += float64(countPresent(lower, s.lex.EnglishRisk.Low)) * lexicon.WeightEnglishLow
	}

	// 2. Non-Indian jurisdiction markers
	for _, marker := range s.lex.JurisdictionMarkers {
		if strings.Contains(lower, marker) {
			riskScore = clamp(riskScore + lexicon.WeightJurisdiction)
			flags = append(flags, fmt.Sprintf("Indian jurisdiction risk: '%s'", marker))
		}
	}

	// 3. One-sided language, applied once per matching pattern
	for _, pattern := range s.lex.OneSidedPatterns {
		if pattern.MatchString(lower) {
			riskScore = clamp(riskScore + lexicon.WeightOneSided)
			flags = append(flags, "One-sided language detected")
		}
	}

	// 4. Ambiguous terms
	if ambiguous := countPresent(lower, s.lex.AmbiguousTerms); ambiguous > 0 {
		riskScore = clamp(riskScore + float64(ambiguous)*lexicon.WeightAmbiguous)
		flags = append(flags, fmt.Sprintf("Contains %d ambiguous term(s)", ambiguous))
	}

	// 5. Short deadlines. Urgency words ("immediately", "forthwith") match
	// their patterns but capture no number, so they add neither score nor
	// flag; only a parsed day count below the threshold contributes.
	for _, pattern := range s.lex.DeadlinePatterns {
		for _, match := range pattern.FindAllStringSubmatch(lower, -1) {
			if len(match) < 2 {
				continue
			}
			days, err := strconv.Atoi(match[1])
			if err != nil {
				continue
			}
			if days < lexicon.ShortDeadlineDays {
				riskScore = clamp(riskScore + lexicon.WeightDeadline)
				flags = append(flags, fmt.Sprintf("Very short deadline: %d days", days))
			}
		}
	}

	// 6. Clause type, then the multiplier for the inherently risky types
	clauseType := s.classifier.Classify(clauseText)
	if clauseType == "Indemnity Clause" || clauseType == "Liability Clause" {
		riskScore = clamp(riskScore * lexicon.TypeMultiplier)
	}

	riskScore = clamp(riskScore)

	return model.ClauseAssessment{
		RiskScore:  riskScore,
		RiskFlags:  flags,
		ClauseType: clauseType,
		RiskLevel:  model.LevelForScore(riskScore),
	}
}

// Composite aggregates per-clause scores into one contract-level score.
// Each score is reweighted by tier (>=0.7 ×1.5, [0.4,0.7) ×1.2, else
// unchanged) and clamped, then averaged, so concentrated high-risk clauses
// are not diluted by a plain mean. Empty input returns 0.
func Composite(scores []float64) float64 {
	if len(scores) == 0 {
		return 0.0
	}

	var sum float64
	for _, score := range scores {
		switch {
		case score >= 0.7:
			sum += clamp(score * 1.5)
		case score >= 0.4:
			sum += clamp(score * 1.2)
		default:
			sum += score
		}
	}

	return clamp(sum / float64(len(scores)))
}

// countPresent counts how many of the keywords occur in the text
func countPresent(text string, keywords []string) int {
	count := 0
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			count++
		}
	}
	return count
}

func clamp(score float64) float64 {
	if score > 1.0 {
		return 1.0
	}
	if score < 0.0 {
		return 0.0
	}
	return score
}
