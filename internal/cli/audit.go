package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/psarda/clauselens/internal/audit"
	"github.com/psarda/clauselens/internal/cache"
	"github.com/psarda/clauselens/internal/docload"
	"github.com/psarda/clauselens/internal/model"
	"github.com/psarda/clauselens/internal/segment"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// auditCmd represents the audit command
var auditCmd = &cobra.Command{
	Use:   "audit <file>",
	Short: "Show the analysis history of a document",
	Long: `Audit prints the recorded analysis trail for a document. Trails are keyed
by content hash, so renaming or moving a file does not lose its history.

Example:
  clauselens audit contract.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runAudit,
}

func init() {
	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	text, err := docload.Load(args[0])
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}
	hash := cache.DocumentHash(segment.Normalize(text))

	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	logger := audit.NewLogger(auditDir(cfg))
	entries, err := logger.Trail(hash)
	if err != nil {
		return fmt.Errorf("read audit trail: %w", err)
	}

	if len(entries) == 0 {
		fmt.Printf("No recorded analyses for %s (hash %s)\n", args[0], hash)
		return nil
	}

	fmt.Printf("Analysis history for %s (hash %s):\n\n", args[0], hash)
	for i, e := range entries {
		fmt.Printf("%d. %s\n", i+1, e.Timestamp.Format("2006-01-02 15:04:05 MST"))
		fmt.Printf("   Entry ID:     %s\n", e.ID)
		if e.Report != nil {
			fmt.Printf("   Overall Risk: %s (%.2f)\n", e.Report.CompositeLevel.String(), e.Report.CompositeScore)
			fmt.Printf("   Clauses:      %d analyzed, %d high-risk\n", len(e.Report.Clauses), e.Report.HighRiskCount())
		}
		fmt.Println()
	}

	return nil
}

// auditDir mirrors the pipeline's default audit trail location
func auditDir(cfg *model.Config) string {
	if cfg.Audit.Dir != "" {
		return cfg.Audit.Dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".clauselens", "audit")
	}
	return filepath.Join(home, ".clauselens", "audit")
}
