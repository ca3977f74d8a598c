package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	cardkit "github.com/opd-ai/cardkit-go"
	"github.com/opd-ai/cardkit-go/internal/report"
)

func newValidateCmd(root *rootOptions) *cobra.Command {
	var (
		input      string
		reportPath string
		asJSON     bool
		strict     bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate every card against the card schema",
		Long:  "Runs structural, asset-generation, and cross-subsystem checks over the\ncorpus and renders a report. Exits non-zero when any card is invalid\n(with --strict, warnings fail too).",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := input
			if dir == "" {
				dir = root.cfg.InputDir
			}
			if reportPath == "" {
				reportPath = root.cfg.ReportPath
			}

			corpus, err := cardkit.LoadCorpus(dir)
			if err != nil {
				return err
			}

			var results []*cardkit.ValidationResult
			for _, f := range corpus.Failures {
				results = append(results, &cardkit.ValidationResult{
					Character: f.ID,
					Path:      f.Path,
					Errors:    []string{fmt.Sprintf("Failed to load character data: %v", f.Err)},
					Warnings:  []string{},
				})
			}
			for _, entry := range corpus.Entries {
				results = append(results, cardkit.Validate(entry.Card, entry.ID, entry.Path))
			}

			out := cmd.OutOrStdout()
			if asJSON {
				if err := report.WriteJSON(out, results); err != nil {
					return err
				}
			} else {
				// fatih/color disables itself when stdout is not a TTY.
				fmt.Fprint(out, report.Validation(results, !color.NoColor))
			}

			if reportPath != "" {
				if err := os.WriteFile(reportPath, []byte(report.ValidationMarkdown(results)), 0644); err != nil {
					return fmt.Errorf("write report %s: %w", reportPath, err)
				}
				root.log.Info("report saved", zap.String("path", reportPath))
			}

			invalid, warned := 0, 0
			for _, r := range results {
				if !r.Valid {
					invalid++
				}
				if len(r.Warnings) > 0 {
					warned++
				}
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d characters invalid", invalid, len(results))
			}
			if strict && warned > 0 {
				return fmt.Errorf("%d of %d characters have warnings (strict mode)", warned, len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "card corpus directory")
	cmd.Flags().StringVar(&reportPath, "report", "", "write a markdown report to this path")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit results as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as failures")
	return cmd
}
