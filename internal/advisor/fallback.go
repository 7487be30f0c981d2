package advisor

import (
	"fmt"

	"github.com/psarda/clauselens/internal/model"
)

// FallbackAdvice is the static analysis substituted when no provider is
// configured or a provider call fails. The numeric assessment stays
// authoritative either way.
func FallbackAdvice(clause model.Clause, assessment model.ClauseAssessment) model.ClauseAdvice {
	return model.ClauseAdvice{
		ClauseID: clause.ID,
		Explanation: fmt.Sprintf("This is a %s. It contains standard legal terms that should be reviewed carefully.",
			assessment.ClauseType),
		PotentialRisks:  []string{"Standard legal risks apply", "Review with legal counsel"},
		UnfairTerms:     []string{"Check for one-sided terms"},
		Alternative:     "Consult legal counsel for appropriate wording",
		ComplianceNotes: "Ensure compliance with Indian Contract Act, 1872",
		NegotiationTips: []string{"Understand all terms", "Get legal advice", "Negotiate fair terms"},
		Severity:        assessment.RiskLevel.String(),
	}
}

// FallbackSummary is the static executive summary
func FallbackSummary(report *model.Report) string {
	highRisk := report.HighRiskCount()

	urgency := "Medium"
	if highRisk > 0 {
		urgency = "High"
	}

	return fmt.Sprintf(`**Executive Summary for %s**

This contract requires careful review. Found %d high-risk clauses that need immediate attention.

**Key Concerns:**
1. Review all indemnity and liability clauses
2. Check termination conditions carefully
3. Verify jurisdiction is in India

**Next Steps:**
1. Discuss high-risk clauses with legal counsel
2. Negotiate fair terms before signing
3. Document all agreed changes

**Urgency: %s**
`, report.ContractType, highRisk, urgency)
}
