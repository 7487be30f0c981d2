package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/psarda/clauselens/internal/model"
)

const sampleContract = `1. The Employee shall receive a monthly salary of ₹50,000 payable by the Employer.
2. The Employee shall indemnify and hold harmless the Employer against unlimited liability at its sole discretion.
3. Notices under this agreement shall be sent to the registered office of each party.`

func testConfig(t *testing.T) *model.Config {
	t.Helper()
	cfg := model.DefaultConfig()
	cfg.Cache.Dir = t.TempDir()
	cfg.Audit.Dir = t.TempDir()
	return cfg
}

func TestPipeline_AnalyzeText_EndToEnd(t *testing.T) {
	cfg := testConfig(t)
	cfg.Cache.Enabled = false
	cfg.Audit.Enabled = false

	p := NewPipeline(cfg)
	report, err := p.AnalyzeText(context.Background(), sampleContract, "test")
	if err != nil {
		t.Fatalf("AnalyzeText failed: %v", err)
	}

	if len(report.Clauses) != 3 {
		t.Fatalf("Expected 3 clauses, got %d", len(report.Clauses))
	}
	if report.ContractType != "Employment Agreement" {
		t.Errorf("Expected Employment Agreement, got %s", report.ContractType)
	}
	if report.Language != model.LanguageEnglish {
		t.Errorf("Expected English, got %s", report.Language)
	}
	if report.CompositeScore < 0 || report.CompositeScore > 1 {
		t.Errorf("Composite score out of bounds: %f", report.CompositeScore)
	}
	if report.DocumentHash == "" {
		t.Errorf("Expected document hash set")
	}
	if report.Advisor != nil {
		t.Errorf("Advisor output must be absent when disabled")
	}

	// The indemnity clause must be the riskiest
	indemnity := report.Clauses[1].Assessment
	if indemnity.ClauseType != "Indemnity Clause" {
		t.Errorf("Expected Indemnity Clause, got %s", indemnity.ClauseType)
	}
	if indemnity.RiskLevel != model.RiskHigh {
		t.Errorf("Expected high risk for indemnity clause, got %s (%f)",
			indemnity.RiskLevel, indemnity.RiskScore)
	}
}

func TestPipeline_AnalyzeText_EmptyDocument(t *testing.T) {
	cfg := testConfig(t)
	cfg.Cache.Enabled = false
	cfg.Audit.Enabled = false

	p := NewPipeline(cfg)
	report, err := p.AnalyzeText(context.Background(), "", "empty")
	if err != nil {
		t.Fatalf("AnalyzeText failed: %v", err)
	}

	if len(report.Clauses) != 0 {
		t.Errorf("Expected no clauses, got %d", len(report.Clauses))
	}
	if report.CompositeScore != 0.0 {
		t.Errorf("Expected composite 0.0 for empty document, got %f", report.CompositeScore)
	}
	if report.CompositeLevel != model.RiskLow {
		t.Errorf("Expected Low level, got %s", report.CompositeLevel)
	}
}

func TestPipeline_AnalyzeText_CacheAndAudit(t *testing.T) {
	cfg := testConfig(t)

	p := NewPipeline(cfg)
	first, err := p.AnalyzeText(context.Background(), sampleContract, "test")
	if err != nil {
		t.Fatalf("AnalyzeText failed: %v", err)
	}

	second, err := p.AnalyzeText(context.Background(), sampleContract, "test")
	if err != nil {
		t.Fatalf("Second AnalyzeText failed: %v", err)
	}
	if second.DocumentHash != first.DocumentHash {
		t.Errorf("Expected identical hash for identical text")
	}
	if !second.AnalyzedAt.Equal(first.AnalyzedAt) {
		t.Errorf("Expected the cached report back, got a fresh analysis")
	}

	// The audit trail records the first (uncached) analysis
	trailFiles, err := os.ReadDir(cfg.Audit.Dir)
	if err != nil {
		t.Fatalf("read audit dir: %v", err)
	}
	if len(trailFiles) != 1 {
		t.Errorf("Expected 1 audit trail file, got %d", len(trailFiles))
	}
}

func TestPipeline_AnalyzeFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.Cache.Enabled = false
	cfg.Audit.Enabled = false

	path := filepath.Join(t.TempDir(), "contract.txt")
	if err := os.WriteFile(path, []byte(sampleContract), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	p := NewPipeline(cfg)
	report, err := p.AnalyzeFile(context.Background(), path)
	if err != nil {
		t.Fatalf("AnalyzeFile failed: %v", err)
	}
	if report.Source != path {
		t.Errorf("Expected source %s, got %s", path, report.Source)
	}
	if len(report.Clauses) == 0 {
		t.Errorf("Expected clauses from file")
	}
}

func TestStandardTemplate(t *testing.T) {
	for _, name := range TemplateContractTypes() {
		tpl, ok := StandardTemplate(name)
		if !ok {
			t.Errorf("Expected template for %s", name)
			continue
		}
		if len(tpl.Sections) == 0 {
			t.Errorf("Expected sections in %s template", name)
		}
	}

	if _, ok := StandardTemplate("Unknown Agreement"); ok {
		t.Errorf("Expected no template for unknown type")
	}
}

func TestPipeline_CompareWithTemplate(t *testing.T) {
	cfg := testConfig(t)
	cfg.Cache.Enabled = false
	cfg.Audit.Enabled = false

	p := NewPipeline(cfg)

	comparisons := p.CompareWithTemplate(sampleContract, "Employment Agreement")
	if len(comparisons) == 0 {
		t.Fatalf("Expected comparisons against the employment template")
	}
	for _, c := range comparisons {
		if c.Status != "Present" && c.Status != "Missing" {
			t.Errorf("Unexpected status %s", c.Status)
		}
	}

	if got := p.CompareWithTemplate(sampleContract, "Unknown Agreement"); got != nil {
		t.Errorf("Expected nil for unknown contract type, got %v", got)
	}
}

func TestRenderer_Outputs(t *testing.T) {
	cfg := testConfig(t)
	cfg.Cache.Enabled = false
	cfg.Audit.Enabled = false

	p := NewPipeline(cfg)
	report, err := p.AnalyzeText(context.Background(), sampleContract, "test")
	if err != nil {
		t.Fatalf("AnalyzeText failed: %v", err)
	}

	dir := t.TempDir()
	renderer := NewRenderer(true)

	jsonPath := filepath.Join(dir, "report.json")
	if err := renderer.RenderJSON(report, jsonPath); err != nil {
		t.Fatalf("RenderJSON failed: %v", err)
	}

	mdPath := filepath.Join(dir, "report.md")
	if err := renderer.RenderMarkdown(report, mdPath); err != nil {
		t.Fatalf("RenderMarkdown failed: %v", err)
	}
	md, err := os.ReadFile(mdPath)
	if err != nil {
		t.Fatalf("read markdown: %v", err)
	}
	if !strings.Contains(string(md), "# Contract Risk Report") {
		t.Errorf("Expected markdown header")
	}
	if !strings.Contains(string(md), "Indemnity Clause") {
		t.Errorf("Expected clause types in markdown")
	}

	txtPath := filepath.Join(dir, "brief.txt")
	if err := renderer.RenderText(report, txtPath); err != nil {
		t.Fatalf("RenderText failed: %v", err)
	}
	txt, err := os.ReadFile(txtPath)
	if err != nil {
		t.Fatalf("read brief: %v", err)
	}
	if !strings.Contains(string(txt), "LEGAL CONSULTATION BRIEF") {
		t.Errorf("Expected consultation brief header")
	}
	if !strings.Contains(string(txt), "URGENCY LEVEL:") {
		t.Errorf("Expected urgency level in brief")
	}
}
