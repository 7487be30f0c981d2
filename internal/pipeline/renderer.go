package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/psarda/clauselens/internal/model"
)

// Renderer writes analysis reports as JSON, Markdown, and plain text
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the full report as indented JSON
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable Markdown report
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Contract Risk Report\n\n")
	fmt.Fprintf(&b, "**Source:** %s\n", report.Source)
	fmt.Fprintf(&b, "**Analyzed:** %s\n", report.AnalyzedAt.Format("2006-01-02 15:04 MST"))
	fmt.Fprintf(&b, "**Document Hash:** `%s`\n", report.DocumentHash)
	fmt.Fprintf(&b, "**Language:** %s\n\n", languageName(report.Language))

	fmt.Fprintf(&b, "## Overview\n\n")
	fmt.Fprintf(&b, "| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Contract Type | %s |\n", report.ContractType)
	fmt.Fprintf(&b, "| Overall Risk | %s (%.2f) |\n", report.CompositeLevel.String(), report.CompositeScore)
	fmt.Fprintf(&b, "| Clauses Analyzed | %d |\n", len(report.Clauses))
	fmt.Fprintf(&b, "| High-Risk Clauses | %d |\n\n", report.HighRiskCount())

	if report.Entities != nil {
		writeEntities(&b, report.Entities)
	}

	fmt.Fprintf(&b, "## Clauses\n\n")
	for _, c := range report.Clauses {
		fmt.Fprintf(&b, "### %s: %s\n\n", c.Clause.ID, c.Assessment.ClauseType)
		fmt.Fprintf(&b, "**Risk:** %s (%.2f)\n\n", c.Assessment.RiskLevel.String(), c.Assessment.RiskScore)
		if len(c.Assessment.RiskFlags) > 0 {
			for _, flag := range c.Assessment.RiskFlags {
				fmt.Fprintf(&b, "- ⚠️ %s\n", flag)
			}
			fmt.Fprintln(&b)
		}
		fmt.Fprintf(&b, "> %s\n\n", truncate(c.Clause.Text, 300))
	}

	if report.Advisor != nil && report.Advisor.Enabled {
		writeAdvisorMarkdown(&b, report.Advisor)
	}

	if r.includeFooter {
		fmt.Fprintf(&b, "---\n\n")
		fmt.Fprintf(&b, "*Generated by ClauseLens. This analysis is for guidance only and is not legal advice. Consult a qualified lawyer.*\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// RenderText writes a plain-text consultation brief suitable for handing to
// legal counsel
func (r *Renderer) RenderText(report *model.Report, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "LEGAL CONSULTATION BRIEF\n")
	fmt.Fprintf(&b, "Generated: %s\n", report.AnalyzedAt.Format("02 January 2006, 3:04 PM"))
	fmt.Fprintf(&b, "Document: %s\n", report.Source)
	fmt.Fprintf(&b, "Hash: %s\n\n", report.DocumentHash)

	fmt.Fprintf(&b, "CONTRACT OVERVIEW\n")
	fmt.Fprintf(&b, "══════════════════\n")
	fmt.Fprintf(&b, "Type: %s\n", report.ContractType)
	fmt.Fprintf(&b, "Overall Risk: %s (Score: %.2f)\n", report.CompositeLevel.String(), report.CompositeScore)
	fmt.Fprintf(&b, "Language: %s\n", languageName(report.Language))
	fmt.Fprintf(&b, "Clauses Analyzed: %d\n\n", len(report.Clauses))

	fmt.Fprintf(&b, "HIGH-RISK CLAUSES IDENTIFIED\n")
	fmt.Fprintf(&b, "═══════════════════════════════\n")

	highRisk := topHighRisk(report, 5)
	if len(highRisk) == 0 {
		fmt.Fprintf(&b, "\nNo high-risk clauses identified.\n")
	} else {
		for i, c := range highRisk {
			fmt.Fprintf(&b, "\n%d. %s - %s\n", i+1, c.Clause.ID, c.Assessment.ClauseType)
			fmt.Fprintf(&b, "   Risk Score: %.2f\n", c.Assessment.RiskScore)
			if len(c.Assessment.RiskFlags) > 0 {
				flags := c.Assessment.RiskFlags
				if len(flags) > 2 {
					flags = flags[:2]
				}
				fmt.Fprintf(&b, "   Key Issues: %s\n", strings.Join(flags, ", "))
			}
		}
	}

	if report.Advisor != nil && report.Advisor.Summary != "" {
		fmt.Fprintf(&b, "\nEXECUTIVE SUMMARY\n")
		fmt.Fprintf(&b, "══════════════════\n")
		fmt.Fprintf(&b, "%s\n", truncate(report.Advisor.Summary, 500))
	}

	fmt.Fprintf(&b, "\nRECOMMENDED ACTIONS\n")
	fmt.Fprintf(&b, "═══════════════════\n")
	fmt.Fprintf(&b, "1. Review all flagged clauses with legal counsel\n")
	fmt.Fprintf(&b, "2. Negotiate changes to high-risk terms\n")
	fmt.Fprintf(&b, "3. Ensure jurisdiction is set to India\n")
	fmt.Fprintf(&b, "4. Clarify ambiguous terms\n")
	fmt.Fprintf(&b, "5. Document all agreed changes\n\n")

	urgency := "MEDIUM"
	if len(highRisk) > 0 {
		urgency = "HIGH"
	}
	fmt.Fprintf(&b, "URGENCY LEVEL: %s\n", urgency)

	if r.includeFooter {
		fmt.Fprintf(&b, "\nDISCLAIMER: This analysis is for guidance only. Consult a qualified lawyer.\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// RenderSummary prints a short summary to stdout
func (r *Renderer) RenderSummary(report *model.Report) {
	fmt.Printf("\n%s\n", report.Source)
	fmt.Printf("  Contract Type:  %s\n", report.ContractType)
	fmt.Printf("  Overall Risk:   %s (%.2f)\n", report.CompositeLevel.String(), report.CompositeScore)
	fmt.Printf("  Clauses:        %d analyzed, %d high-risk\n", len(report.Clauses), report.HighRiskCount())

	for _, c := range topHighRisk(report, 3) {
		fmt.Printf("  ⚠️  %s (%s): %.2f\n", c.Clause.ID, c.Assessment.ClauseType, c.Assessment.RiskScore)
	}
	fmt.Println()
}

// topHighRisk returns up to n high-risk clauses, highest score first
func topHighRisk(report *model.Report, n int) []model.ClauseResult {
	var high []model.ClauseResult
	for _, c := range report.Clauses {
		if c.Assessment.RiskLevel == model.RiskHigh {
			high = append(high, c)
		}
	}
	sort.SliceStable(high, func(i, j int) bool {
		return high[i].Assessment.RiskScore > high[j].Assessment.RiskScore
	})
	if len(high) > n {
		high = high[:n]
	}
	return high
}

func writeEntities(b *strings.Builder, e *model.EntitySet) {
	rows := []struct {
		name   string
		values []string
	}{
		{"Parties", e.Parties},
		{"Organizations", e.Orgs},
		{"Dates", e.Dates},
		{"Amounts", e.Money},
		{"Statutes", e.Statutes},
		{"Places", e.Places},
	}

	any := false
	for _, row := range rows {
		if len(row.values) > 0 {
			any = true
			break
		}
	}
	if !any {
		return
	}

	fmt.Fprintf(b, "## Key Entities\n\n")
	for _, row := range rows {
		if len(row.values) == 0 {
			continue
		}
		fmt.Fprintf(b, "- **%s:** %s\n", row.name, strings.Join(row.values, ", "))
	}
	fmt.Fprintln(b)
}

func writeAdvisorMarkdown(b *strings.Builder, adv *model.AdvisorOutput) {
	fmt.Fprintf(b, "## Advisor Notes\n\n")
	if adv.Fallback {
		fmt.Fprintf(b, "*Provider unavailable; static guidance shown. Risk scores above are unaffected.*\n\n")
	} else {
		fmt.Fprintf(b, "*Generated by %s/%s. Advisory only; risk scores above are computed independently.*\n\n", adv.Provider, adv.Model)
	}

	if adv.Summary != "" {
		fmt.Fprintf(b, "%s\n\n", adv.Summary)
	}

	for _, advice := range adv.ByClause {
		fmt.Fprintf(b, "### %s\n\n", advice.ClauseID)
		fmt.Fprintf(b, "%s\n\n", advice.Explanation)
		if len(advice.PotentialRisks) > 0 {
			fmt.Fprintf(b, "**Potential risks:**\n")
			for _, risk := range advice.PotentialRisks {
				fmt.Fprintf(b, "- %s\n", risk)
			}
			fmt.Fprintln(b)
		}
		if advice.Alternative != "" {
			fmt.Fprintf(b, "**Suggested alternative:** %s\n\n", advice.Alternative)
		}
		if len(advice.NegotiationTips) > 0 {
			fmt.Fprintf(b, "**Negotiation tips:**\n")
			for _, tip := range advice.NegotiationTips {
				fmt.Fprintf(b, "- %s\n", tip)
			}
			fmt.Fprintln(b)
		}
	}

	if len(adv.Warnings) > 0 {
		fmt.Fprintf(b, "**Warnings:**\n")
		for _, w := range adv.Warnings {
			fmt.Fprintf(b, "- %s\n", w)
		}
		fmt.Fprintln(b)
	}
}

func languageName(lang model.Language) string {
	if lang == model.LanguageHindi {
		return "Hindi"
	}
	return "English"
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
