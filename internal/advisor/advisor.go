package advisor

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"

	"github.com/psarda/clauselens/internal/model"
)

// maxClauseRunes limits how much clause text goes into one prompt
const maxClauseRunes = 2000

const systemPrompt = "You are a helpful legal assistant for Indian SMEs. " +
	"Provide clear, practical advice in simple English. Always return valid JSON."

// Advisor runs clause analysis and summary generation through a provider,
// degrading to static fallback text on any failure
type Advisor struct {
	provider Provider
	limiter  *rate.Limiter
	config   Config
}

// New creates an advisor. Returns (nil, nil) when no provider is configured.
func New(config Config) (*Advisor, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, nil
	}

	rps := config.RequestsPerSecond
	if rps <= 0 {
		rps = 2
	}

	return &Advisor{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), 1),
		config:   config,
	}, nil
}

// Annotate attaches advisor output to the report: structured advice for the
// highest-risk clauses plus an executive summary. Scores are read, never
// written. A failed call substitutes the fallback text and adds a warning.
func (a *Advisor) Annotate(ctx context.Context, report *model.Report) {
	out := &model.AdvisorOutput{
		Enabled:  true,
		Provider: a.provider.Name(),
		Model:    a.config.Model,
	}

	for _, result := range a.pickClauses(report) {
		advice, err := a.AnalyzeClause(ctx, result.Clause, result.Assessment)
		if err != nil {
			out.Warnings = append(out.Warnings,
				fmt.Sprintf("%s: %v (fallback used)", result.Clause.ID, err))
			out.Fallback = true
			advice = FallbackAdvice(result.Clause, result.Assessment)
		}
		out.ByClause = append(out.ByClause, advice)
	}

	summary, err := a.Summarize(ctx, report, out.ByClause)
	if err != nil {
		out.Warnings = append(out.Warnings, fmt.Sprintf("summary: %v (fallback used)", err))
		out.Fallback = true
		summary = FallbackSummary(report)
	}
	out.Summary = summary

	report.Advisor = out
}

// AnalyzeClause asks the provider for structured advice about one clause
func (a *Advisor) AnalyzeClause(ctx context.Context, clause model.Clause, assessment model.ClauseAssessment) (model.ClauseAdvice, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return model.ClauseAdvice{}, err
	}

	text := truncate(clause.Text, maxClauseRunes)
	prompt := fmt.Sprintf(`As a legal advisor for Indian SMEs, analyze this %s:

%q

Provide analysis in this EXACT JSON format:
{
    "plain_language_explanation": "Simple explanation in business English",
    "potential_risks": ["Risk 1", "Risk 2", "Risk 3"],
    "unfair_terms": ["Term 1", "Term 2"],
    "suggested_alternative": "SME-friendly alternative wording",
    "compliance_notes": "Notes on Indian law compliance",
    "negotiation_tips": ["Tip 1", "Tip 2", "Tip 3"],
    "severity": "High/Medium/Low"
}

Keep it practical and actionable for business owners.`, assessment.ClauseType, text)

	reply, err := a.provider.Complete(ctx, systemPrompt, prompt, a.config.MaxTokens)
	if err != nil {
		return model.ClauseAdvice{}, err
	}

	advice, ok := parseAdvice(clause.ID, reply)
	if !ok {
		return model.ClauseAdvice{}, fmt.Errorf("no valid JSON in provider response")
	}
	return advice, nil
}

// Summarize generates the executive summary from the structured advice
func (a *Advisor) Summarize(ctx context.Context, report *model.Report, advice []model.ClauseAdvice) (string, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return "", err
	}

	var findings strings.Builder
	for i, adv := range advice {
		if i >= 3 {
			break
		}
		fmt.Fprintf(&findings, "- %s (%s): %s\n", adv.ClauseID, adv.Severity, adv.Explanation)
	}

	prompt := fmt.Sprintf(`Based on analysis of a %s contract for an Indian SME, provide a concise executive summary.

Composite risk: %.2f (%s), %d of %d clauses high risk.

Key findings:
%s
Provide summary in this format:
1. Overall assessment (2-3 lines)
2. Top 3 immediate concerns
3. Recommended next steps
4. Urgency level (High/Medium/Low)

Keep it under 200 words, in simple business English.`,
		report.ContractType, report.CompositeScore, report.CompositeLevel,
		report.HighRiskCount(), len(report.Clauses), findings.String())

	return a.provider.Complete(ctx, "Create a clear, actionable executive summary for a business owner.", prompt, 400)
}

// pickClauses selects the highest-risk clauses up to the configured limit,
// keeping document order within the selection
func (a *Advisor) pickClauses(report *model.Report) []model.ClauseResult {
	max := a.config.MaxClauses
	if max <= 0 {
		max = 5
	}
	if len(report.Clauses) <= max {
		return report.Clauses
	}

	idx := make([]int, len(report.Clauses))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return report.Clauses[idx[i]].Assessment.RiskScore > report.Clauses[idx[j]].Assessment.RiskScore
	})

	chosen := idx[:max]
	sort.Ints(chosen)

	picked := make([]model.ClauseResult, 0, max)
	for _, i := range chosen {
		picked = append(picked, report.Clauses[i])
	}
	return picked
}

// parseAdvice extracts the JSON object from a provider reply. Models often
// wrap JSON in prose, so locate the outermost braces first.
func parseAdvice(clauseID, reply string) (model.ClauseAdvice, bool) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end <= start {
		return model.ClauseAdvice{}, false
	}

	doc := reply[start : end+1]
	if !gjson.Valid(doc) {
		return model.ClauseAdvice{}, false
	}

	parsed := gjson.Parse(doc)
	advice := model.ClauseAdvice{
		ClauseID:        clauseID,
		Explanation:     parsed.Get("plain_language_explanation").String(),
		Alternative:     parsed.Get("suggested_alternative").String(),
		ComplianceNotes: parsed.Get("compliance_notes").String(),
		Severity:        parsed.Get("severity").String(),
	}
	for _, r := range parsed.Get("potential_risks").Array() {
		advice.PotentialRisks = append(advice.PotentialRisks, r.String())
	}
	for _, r := range parsed.Get("unfair_terms").Array() {
		advice.UnfairTerms = append(advice.UnfairTerms, r.String())
	}
	for _, r := range parsed.Get("negotiation_tips").Array() {
		advice.NegotiationTips = append(advice.NegotiationTips, r.String())
	}

	return advice, advice.Explanation != ""
}

func truncate(text string, maxRunes int) string {
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text
	}
	return string(runes[:maxRunes]) + "...[truncated]"
}
