package cli

import (
	"fmt"

	"github.com/psarda/clauselens/internal/advisor"
	"github.com/psarda/clauselens/internal/pipeline"
	"github.com/spf13/cobra"
)

var templateLanguage string

// templateCmd represents the template command
var templateCmd = &cobra.Command{
	Use:   "template [clause-type]",
	Short: "Print SME-friendly template clauses",
	Long: `Template prints a fair, SME-friendly version of a clause type to use as a
negotiation starting point. Without arguments it lists the available types.

Example:
  clauselens template
  clauselens template "Indemnity Clause"
  clauselens template "Payment Clause" --language hi`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTemplate,
}

func init() {
	rootCmd.AddCommand(templateCmd)

	templateCmd.Flags().StringVar(&templateLanguage, "language", "en", "template language (en, hi)")
}

func runTemplate(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Println("Available clause templates:")
		for _, t := range advisor.TemplateTypes() {
			fmt.Printf("  - %s\n", t)
		}
		fmt.Println("\nStandard contract templates (used by 'analyze --compare'):")
		for _, t := range pipeline.TemplateContractTypes() {
			fmt.Printf("  - %s\n", t)
		}
		return nil
	}

	clauseType := args[0]
	tpl := advisor.SuggestTemplate(clauseType, templateLanguage)
	if tpl == "" {
		return fmt.Errorf("no %s template for %q (run 'clauselens template' to list types)", templateLanguage, clauseType)
	}

	fmt.Println(tpl)
	return nil
}
