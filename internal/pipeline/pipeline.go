// Package pipeline orchestrates the complete contract analysis.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/psarda/clauselens/internal/advisor"
	"github.com/psarda/clauselens/internal/audit"
	"github.com/psarda/clauselens/internal/cache"
	"github.com/psarda/clauselens/internal/docload"
	"github.com/psarda/clauselens/internal/entities"
	"github.com/psarda/clauselens/internal/fetch"
	"github.com/psarda/clauselens/internal/lexicon"
	"github.com/psarda/clauselens/internal/match"
	"github.com/psarda/clauselens/internal/model"
	"github.com/psarda/clauselens/internal/score"
	"github.com/psarda/clauselens/internal/segment"
	"github.com/psarda/clauselens/internal/worker"
)

// Pipeline wires the analysis core to its collaborators
type Pipeline struct {
	lex       *lexicon.Lexicon
	segmenter *segment.Segmenter
	scorer    *score.Scorer
	matcher   *match.Matcher
	extractor *entities.Extractor
	fetcher   *fetch.Fetcher
	advisor   *advisor.Advisor // nil when disabled
	cache     cache.Cache      // nil when disabled
	auditLog  *audit.Logger    // nil when disabled
	renderer  *Renderer
	config    *model.Config
}

// NewPipeline creates a pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	lex := lexicon.New()

	var adv *advisor.Advisor
	if cfg.Advisor.Provider != "" {
		a, err := advisor.New(advisor.ConfigFromModel(cfg.Advisor))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize advisor: %v\n", err)
		} else {
			adv = a
		}
	}

	var reportCache cache.Cache
	if cfg.Cache.Enabled {
		reportCache = cache.NewLayeredCache(cfg.Cache.MemoryTTL, resolveDir(cfg.Cache.Dir, "cache"), cfg.Cache.DiskTTL)
	}

	var auditLog *audit.Logger
	if cfg.Audit.Enabled {
		auditLog = audit.NewLogger(resolveDir(cfg.Audit.Dir, "audit"))
	}

	return &Pipeline{
		lex:       lex,
		segmenter: segment.NewSegmenter(lex),
		scorer:    score.NewScorer(lex),
		matcher:   match.NewMatcher(lex),
		extractor: entities.NewExtractor(lex),
		fetcher:   fetch.NewFetcher(cfg.HTTP.Timeout, cfg.HTTP.UserAgent, cfg.HTTP.MaxBodyBytes, cfg.HTTP.RespectRobots),
		advisor:   adv,
		cache:     reportCache,
		auditLog:  auditLog,
		renderer:  NewRenderer(cfg.Output.IncludeFooter),
		config:    cfg,
	}
}

// AnalyzeText runs the full analysis over normalized contract text. The
// scoring core is total: the only error paths here belong to collaborators,
// and those degrade to warnings rather than failing the analysis.
func (p *Pipeline) AnalyzeText(ctx context.Context, text, source string) (*model.Report, error) {
	text = segment.Normalize(text)
	docHash := cache.DocumentHash(text)

	// 1. Cache check
	if p.cache != nil {
		if report, found := cache.GetReport(p.cache, docHash); found {
			if p.config.Output.Verbose {
				fmt.Fprintf(os.Stderr, "✓ Cache hit for %s\n", docHash)
			}
			return report, nil
		}
	}

	// 2. Segment into clauses
	clauses := p.segmenter.Segment(text)

	// 3. Score clauses concurrently (the scorer is pure, this is safe)
	results := worker.ScoreClauses(p.scorer, clauses, p.config.Concurrency.ScoreWorkers)

	// 4. Composite score
	scores := make([]float64, len(results))
	for i, r := range results {
		scores[i] = r.Assessment.RiskScore
	}
	composite := score.Composite(scores)

	// 5. Contract type (contextual label only, not part of clause scoring)
	contractType, confidence := p.matcher.MatchContractType(text)

	// 6. Entities
	entitySet := p.extractor.Extract(text)

	report := &model.Report{
		DocumentHash:       docHash,
		Source:             source,
		AnalyzedAt:         time.Now().UTC(),
		Language:           model.DetectLanguage(text),
		ContractType:       contractType,
		ContractConfidence: confidence,
		Clauses:            results,
		CompositeScore:     composite,
		CompositeLevel:     model.LevelForScore(composite),
		Entities:           entitySet,
	}

	// 7. Advisor runs AFTER scoring and never affects the numbers
	if p.advisor != nil {
		p.advisor.Annotate(ctx, report)
	}

	// 8. Persist to cache and audit trail; failures warn, never fail
	if p.cache != nil {
		if err := cache.SetReport(p.cache, report, 0); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cache write failed: %v\n", err)
		}
	}
	if p.auditLog != nil {
		if _, err := p.auditLog.Log(report); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: audit log failed: %v\n", err)
		}
	}

	return report, nil
}

// AnalyzeFile loads a document from disk and analyzes it
func (p *Pipeline) AnalyzeFile(ctx context.Context, path string) (*model.Report, error) {
	text, err := docload.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	return p.AnalyzeText(ctx, text, path)
}

// AnalyzeURL fetches a contract page and analyzes it
func (p *Pipeline) AnalyzeURL(ctx context.Context, url string) (*model.Report, error) {
	text, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch document: %w", err)
	}
	return p.AnalyzeText(ctx, text, url)
}

// CompareWithTemplate checks the document against the standard template for
// its contract type
func (p *Pipeline) CompareWithTemplate(text, contractType string) []match.Comparison {
	tpl, ok := StandardTemplate(contractType)
	if !ok {
		return nil
	}
	return match.CompareWithTemplate(segment.Normalize(text), tpl)
}

// CompareFileWithTemplate loads a document and compares it with the standard
// template for the contract type. A nil result means no template exists.
func (p *Pipeline) CompareFileWithTemplate(path, contractType string) ([]match.Comparison, error) {
	text, err := docload.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	return p.CompareWithTemplate(text, contractType), nil
}

// RenderReport renders the report to the requested outputs and prints the
// stdout summary
func (p *Pipeline) RenderReport(report *model.Report, jsonPath, mdPath, txtPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	if txtPath != "" {
		if err := p.renderer.RenderText(report, txtPath); err != nil {
			return fmt.Errorf("render text: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote text summary: %s\n", txtPath)
		}
	}

	p.renderer.RenderSummary(report)
	return nil
}

// resolveDir returns dir, or ~/.clauselens/<name> when dir is empty
func resolveDir(dir, name string) string {
	if dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".clauselens", name)
	}
	return filepath.Join(home, ".clauselens", name)
}
