package advisor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"golang.org/x/time/rate"

	"github.com/psarda/clauselens/internal/model"
)

type stubProvider struct {
	reply string
	err   error
}

func (p *stubProvider) Name() string { return "stub" }

func (p *stubProvider) Complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	return p.reply, p.err
}

func newStubAdvisor(p Provider) *Advisor {
	return &Advisor{
		provider: p,
		limiter:  rate.NewLimiter(rate.Inf, 1),
		config:   DefaultConfig(),
	}
}

func TestParseAdvice_ExtractsWrappedJSON(t *testing.T) {
	reply := `Here is my analysis:
{
  "plain_language_explanation": "You pay for all losses.",
  "potential_risks": ["Unlimited exposure"],
  "unfair_terms": ["No cap"],
  "suggested_alternative": "Cap liability at contract value.",
  "compliance_notes": "Indian Contract Act applies.",
  "negotiation_tips": ["Ask for a cap"],
  "severity": "High"
}
Hope this helps!`

	advice, ok := parseAdvice("Clause 1", reply)
	if !ok {
		t.Fatalf("Expected valid advice")
	}
	if advice.ClauseID != "Clause 1" {
		t.Errorf("Expected clause ID preserved, got %s", advice.ClauseID)
	}
	if advice.Explanation != "You pay for all losses." {
		t.Errorf("Unexpected explanation: %s", advice.Explanation)
	}
	if len(advice.PotentialRisks) != 1 || advice.PotentialRisks[0] != "Unlimited exposure" {
		t.Errorf("Unexpected risks: %v", advice.PotentialRisks)
	}
	if advice.Severity != "High" {
		t.Errorf("Unexpected severity: %s", advice.Severity)
	}
}

func TestParseAdvice_RejectsGarbage(t *testing.T) {
	if _, ok := parseAdvice("Clause 1", "no json here"); ok {
		t.Errorf("Expected rejection without JSON")
	}
	if _, ok := parseAdvice("Clause 1", "{broken json"); ok {
		t.Errorf("Expected rejection for invalid JSON")
	}
	if _, ok := parseAdvice("Clause 1", `{"severity": "High"}`); ok {
		t.Errorf("Expected rejection without explanation")
	}
}

func TestAdvisor_Annotate_FallbackOnProviderFailure(t *testing.T) {
	adv := newStubAdvisor(&stubProvider{err: errors.New("provider down")})

	report := &model.Report{
		ContractType: "Service Agreement",
		Clauses: []model.ClauseResult{
			{
				Clause: model.Clause{ID: "Clause 1", Text: "The vendor shall indemnify the buyer."},
				Assessment: model.ClauseAssessment{
					RiskScore:  0.8,
					ClauseType: "Indemnity Clause",
					RiskLevel:  model.RiskHigh,
				},
			},
		},
		CompositeScore: 0.8,
		CompositeLevel: model.RiskHigh,
	}

	adv.Annotate(context.Background(), report)

	if report.Advisor == nil {
		t.Fatalf("Expected advisor output attached")
	}
	if !report.Advisor.Fallback {
		t.Errorf("Expected fallback marker")
	}
	if len(report.Advisor.Warnings) == 0 {
		t.Errorf("Expected warnings recorded")
	}
	if len(report.Advisor.ByClause) != 1 {
		t.Fatalf("Expected fallback advice for the clause")
	}
	if report.Advisor.ByClause[0].Severity != "High" {
		t.Errorf("Expected fallback severity High, got %s", report.Advisor.ByClause[0].Severity)
	}
	if report.Advisor.Summary == "" {
		t.Errorf("Expected fallback summary")
	}

	// Scores must be untouched
	if report.CompositeScore != 0.8 || report.Clauses[0].Assessment.RiskScore != 0.8 {
		t.Errorf("Advisor must never modify scores")
	}
}

func TestAdvisor_PickClauses_TopRiskInDocumentOrder(t *testing.T) {
	adv := newStubAdvisor(&stubProvider{})
	adv.config.MaxClauses = 2

	report := &model.Report{
		Clauses: []model.ClauseResult{
			{Clause: model.Clause{ID: "Clause 1"}, Assessment: model.ClauseAssessment{RiskScore: 0.9}},
			{Clause: model.Clause{ID: "Clause 2"}, Assessment: model.ClauseAssessment{RiskScore: 0.1}},
			{Clause: model.Clause{ID: "Clause 3"}, Assessment: model.ClauseAssessment{RiskScore: 0.8}},
		},
	}

	picked := adv.pickClauses(report)
	if len(picked) != 2 {
		t.Fatalf("Expected 2 picked clauses, got %d", len(picked))
	}
	if picked[0].Clause.ID != "Clause 1" || picked[1].Clause.ID != "Clause 3" {
		t.Errorf("Expected Clause 1 then Clause 3, got %s then %s",
			picked[0].Clause.ID, picked[1].Clause.ID)
	}
}

func TestFallbackSummary_UrgencyTracksHighRisk(t *testing.T) {
	calm := &model.Report{ContractType: "Service Agreement"}
	if !strings.Contains(FallbackSummary(calm), "Urgency: Medium") {
		t.Errorf("Expected Medium urgency without high-risk clauses")
	}

	risky := &model.Report{
		ContractType: "Service Agreement",
		Clauses: []model.ClauseResult{
			{Assessment: model.ClauseAssessment{RiskLevel: model.RiskHigh}},
		},
	}
	if !strings.Contains(FallbackSummary(risky), "Urgency: High") {
		t.Errorf("Expected High urgency with a high-risk clause")
	}
}

func TestSuggestTemplate(t *testing.T) {
	if tpl := SuggestTemplate("Indemnity Clause", "en"); !strings.Contains(tpl, "indemnify") {
		t.Errorf("Expected English indemnity template, got %q", tpl)
	}
	if tpl := SuggestTemplate("Payment Clause", "hi"); !strings.Contains(tpl, "भुगतान") {
		t.Errorf("Expected Hindi payment template, got %q", tpl)
	}
	if tpl := SuggestTemplate("Indemnity Clause", "hi"); tpl != "" {
		t.Errorf("Expected no Hindi indemnity template, got %q", tpl)
	}
	if tpl := SuggestTemplate("Unknown Clause", "en"); tpl != "" {
		t.Errorf("Expected empty for unknown type, got %q", tpl)
	}
}
