package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/psarda/clauselens/internal/model"
	"github.com/psarda/clauselens/internal/score"
)

// ClauseScoreJob scores one clause; Index preserves document order when
// results are collected out of order
type ClauseScoreJob struct {
	Index  int
	Clause model.Clause
	Scorer *score.Scorer
}

// Execute scores the clause. The scorer is pure, so no error path exists.
func (j *ClauseScoreJob) Execute(ctx context.Context) Result {
	return &ClauseScoreResult{
		Index:      j.Index,
		Clause:     j.Clause,
		Assessment: j.Scorer.ScoreClause(j.Clause.Text),
	}
}

// ClauseScoreResult is the result of a clause scoring job
type ClauseScoreResult struct {
	Index      int
	Clause     model.Clause
	Assessment model.ClauseAssessment
}

// GetError always returns nil; clause scoring is total
func (r *ClauseScoreResult) GetError() error { return nil }

// ScoreClauses scores all clauses concurrently and returns results in
// document order
func ScoreClauses(scorer *score.Scorer, clauses []model.Clause, workers int) []model.ClauseResult {
	if len(clauses) == 0 {
		return nil
	}

	pool := NewPool(workers)
	pool.Start()

	for i, clause := range clauses {
		pool.Submit(&ClauseScoreJob{Index: i, Clause: clause, Scorer: scorer})
	}

	ordered := make([]model.ClauseResult, len(clauses))
	for _, result := range pool.Wait() {
		r := result.(*ClauseScoreResult)
		ordered[r.Index] = model.ClauseResult{Clause: r.Clause, Assessment: r.Assessment}
	}
	return ordered
}

// Analyzer runs a complete analysis of one document file
type Analyzer interface {
	AnalyzeFile(ctx context.Context, path string) (*model.Report, error)
}

// DocumentJob analyzes one document file
type DocumentJob struct {
	Path     string
	Analyzer Analyzer
}

// Execute runs the analysis
func (j *DocumentJob) Execute(ctx context.Context) Result {
	report, err := j.Analyzer.AnalyzeFile(ctx, j.Path)
	return &DocumentResult{Path: j.Path, Report: report, Error: err}
}

// DocumentResult is the result of a document analysis job
type DocumentResult struct {
	Path   string
	Report *model.Report
	Error  error
}

// GetError returns the analysis error, if any
func (r *DocumentResult) GetError() error { return r.Error }

// BatchProcessor analyzes multiple documents concurrently
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{analyzer: analyzer, concurrency: concurrency}
}

// ProcessPaths analyzes all paths concurrently
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*DocumentResult {
	if len(paths) == 0 {
		return []*DocumentResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(&DocumentJob{Path: path, Analyzer: b.analyzer})
	}

	results := pool.Wait()
	docResults := make([]*DocumentResult, len(results))
	for i, result := range results {
		docResults[i] = result.(*DocumentResult)
	}
	return docResults
}

// CollectFiles expands a path into analyzable document files. A directory
// contributes its supported files (non-recursive); other paths pass
// through as-is so unsupported extensions error at load time.
func CollectFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat: %w", err)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".txt", ".md", ".pdf", ".html", ".htm":
			files = append(files, filepath.Join(path, entry.Name()))
		}
	}
	return files, nil
}
