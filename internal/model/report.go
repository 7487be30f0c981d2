package model

import "time"

// Report represents the complete ClauseLens analysis of one document
type Report struct {
	DocumentHash string    `json:"document_hash"` // sha256 prefix identifying the document content
	Source       string    `json:"source"`        // File path or URL the text came from
	AnalyzedAt   time.Time `json:"analyzed_at"`
	Language     Language  `json:"language"` // Dominant script of the document

	ContractType       string  `json:"contract_type"`
	ContractConfidence float64 `json:"contract_confidence"`

	Clauses []ClauseResult `json:"clauses"` // Document order

	CompositeScore float64   `json:"composite_score"` // Tier-reweighted mean, [0,1]
	CompositeLevel RiskLevel `json:"composite_level"`

	Entities *EntitySet `json:"entities,omitempty"`

	Advisor *AdvisorOutput `json:"advisor,omitempty"` // Optional, never affects scores
}

// ClauseResult pairs a clause with its assessment
type ClauseResult struct {
	Clause     Clause           `json:"clause"`
	Assessment ClauseAssessment `json:"assessment"`
}

// EntitySet holds entities extracted from the full document text
type EntitySet struct {
	Parties  []string `json:"parties,omitempty"`
	Dates    []string `json:"dates,omitempty"`
	Money    []string `json:"money,omitempty"`
	Orgs     []string `json:"orgs,omitempty"`
	Statutes []string `json:"statutes,omitempty"`
	Places   []string `json:"places,omitempty"`
}

// AdvisorOutput contains optional LLM-generated advice
// CRITICAL: This never affects scoring and is clearly separated
type AdvisorOutput struct {
	Enabled  bool           `json:"enabled"`
	Provider string         `json:"provider,omitempty"`
	Model    string         `json:"model,omitempty"`
	Fallback bool           `json:"fallback"` // True when static fallback text was substituted
	Summary  string         `json:"summary,omitempty"`
	ByClause []ClauseAdvice `json:"by_clause,omitempty"`
	Warnings []string       `json:"warnings,omitempty"`
}

// ClauseAdvice is the advisor's structured analysis of one clause
type ClauseAdvice struct {
	ClauseID        string   `json:"clause_id"`
	Explanation     string   `json:"plain_language_explanation"`
	PotentialRisks  []string `json:"potential_risks,omitempty"`
	UnfairTerms     []string `json:"unfair_terms,omitempty"`
	Alternative     string   `json:"suggested_alternative,omitempty"`
	ComplianceNotes string   `json:"compliance_notes,omitempty"`
	NegotiationTips []string `json:"negotiation_tips,omitempty"`
	Severity        string   `json:"severity,omitempty"`
}

// HighRiskCount returns the number of clauses at high risk level
func (r *Report) HighRiskCount() int {
	n := 0
	for _, c := range r.Clauses {
		if c.Assessment.RiskLevel == RiskHigh {
			n++
		}
	}
	return n
}

// Scores returns the per-clause risk scores in document order
func (r *Report) Scores() []float64 {
	scores := make([]float64, len(r.Clauses))
	for i, c := range r.Clauses {
		scores[i] = c.Assessment.RiskScore
	}
	return scores
}
