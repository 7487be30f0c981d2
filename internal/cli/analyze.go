package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/psarda/clauselens/internal/model"
	"github.com/psarda/clauselens/internal/pipeline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	outJSON         string
	outMD           string
	outTXT          string
	timeout         time.Duration
	userAgent       string
	maxBytes        int64
	noCache         bool
	noRobots        bool
	noFooter        bool
	noAudit         bool
	compareTemplate bool
	advisorEnabled  bool
	advisorProvider string
	advisorModel    string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file-or-url>",
	Short: "Analyze a contract and generate a risk report",
	Long: `Analyze reads a contract from a file (.txt, .md, .pdf, .html) or a URL and:
- Segments the text into clauses
- Classifies each clause (indemnity, termination, jurisdiction, ...)
- Scores each clause against a transparent risk lexicon
- Computes a composite document risk score
- Extracts parties, dates, amounts, and cited statutes

Example:
  clauselens analyze contract.pdf
  clauselens analyze contract.txt --json report.json --md report.md
  clauselens analyze https://example.com/terms --txt brief.txt
  clauselens analyze contract.pdf --advisor --advisor-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().StringVar(&outTXT, "txt", "", "output consultation brief path (optional)")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer/disclaimer in reports")
	analyzeCmd.Flags().BoolVar(&compareTemplate, "compare", false, "compare against the standard template for the detected contract type")

	// HTTP flags (only used for URL sources)
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall analysis timeout")
	analyzeCmd.Flags().StringVar(&userAgent, "ua", "ClauseLens/0.2 (+https://github.com/psarda/clauselens)", "HTTP User-Agent")
	analyzeCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	analyzeCmd.Flags().BoolVar(&noRobots, "no-robots", false, "skip robots.txt checks when fetching URLs")

	// Storage flags
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable report cache (force fresh analysis)")
	analyzeCmd.Flags().BoolVar(&noAudit, "no-audit", false, "disable the audit trail for this run")

	// Advisor flags
	analyzeCmd.Flags().BoolVar(&advisorEnabled, "advisor", false, "enable LLM advisor annotations")
	analyzeCmd.Flags().StringVar(&advisorProvider, "advisor-provider", "openai", "advisor provider")
	analyzeCmd.Flags().StringVar(&advisorModel, "advisor-model", "gpt-4o-mini", "advisor model name")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	source := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", source)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", !noCache)
		fmt.Fprintln(os.Stderr)
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	p := pipeline.NewPipeline(cfg)

	var report *model.Report
	if isURL(source) {
		report, err = p.AnalyzeURL(ctx, source)
	} else {
		report, err = p.AnalyzeFile(ctx, source)
	}
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Segmented %d clauses\n", len(report.Clauses))
		fmt.Fprintf(os.Stderr, "✓ Contract type: %s\n", report.ContractType)
		fmt.Fprintf(os.Stderr, "✓ Composite risk: %.2f (%s)\n", report.CompositeScore, report.CompositeLevel.String())
		if report.Advisor != nil && report.Advisor.Enabled {
			fmt.Fprintf(os.Stderr, "✓ Advisor annotations via %s/%s\n", report.Advisor.Provider, report.Advisor.Model)
		}
		fmt.Fprintln(os.Stderr)
	}

	if err := p.RenderReport(report, outJSON, outMD, outTXT, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	if compareTemplate {
		if isURL(source) {
			fmt.Fprintf(os.Stderr, "Warning: --compare only supports local files\n")
		} else {
			printTemplateComparison(p, source, report.ContractType)
		}
	}

	return nil
}

// buildConfig merges defaults, the config file, and flags in priority order
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.HTTP.Timeout = timeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.HTTP.RespectRobots = !noRobots
	cfg.Cache.Enabled = cfg.Cache.Enabled && !noCache
	cfg.Audit.Enabled = cfg.Audit.Enabled && !noAudit
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if advisorEnabled {
		cfg.Advisor.Provider = advisorProvider
		cfg.Advisor.Model = advisorModel

		switch advisorProvider {
		case "openai":
			cfg.Advisor.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.Advisor.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
			if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
				cfg.Advisor.BaseURL = baseURL
			}
		default:
			return nil, fmt.Errorf("unknown advisor provider: %s", advisorProvider)
		}
	} else {
		cfg.Advisor.Provider = ""
	}

	return cfg, nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func printTemplateComparison(p *pipeline.Pipeline, source, contractType string) {
	comparisons, err := p.CompareFileWithTemplate(source, contractType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: template comparison failed: %v\n", err)
		return
	}
	if comparisons == nil {
		fmt.Fprintf(os.Stderr, "No standard template available for %q\n", contractType)
		return
	}

	fmt.Printf("Template comparison (%s):\n", contractType)
	for _, c := range comparisons {
		mark := "✗"
		if c.Status == "Present" {
			mark = "✓"
		}
		fmt.Printf("  %s [%s] %s\n", mark, c.Section, truncateLine(c.TemplateClause, 70))
	}
	fmt.Println()
}

func truncateLine(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
