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

func newAuditCmd(root *rootOptions) *cobra.Command {
	var (
		input      string
		reportPath string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Report feature coverage across the card corpus",
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
			for _, f := range corpus.Failures {
				root.log.Warn("card skipped",
					zap.String("character", f.ID),
					zap.Error(f.Err))
			}
			if len(corpus.Entries) == 0 {
				return fmt.Errorf("no character files found in %s", dir)
			}

			rep := cardkit.Audit(corpus.Cards())

			out := cmd.OutOrStdout()
			if asJSON {
				if err := report.WriteJSON(out, rep); err != nil {
					return err
				}
			} else {
				fmt.Fprint(out, report.Audit(rep, !color.NoColor))
			}

			if reportPath != "" {
				if err := os.WriteFile(reportPath, []byte(report.AuditMarkdown(rep)), 0644); err != nil {
					return fmt.Errorf("write report %s: %w", reportPath, err)
				}
				root.log.Info("report saved", zap.String("path", reportPath))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "card corpus directory")
	cmd.Flags().StringVar(&reportPath, "report", "", "write a markdown report to this path")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the report as JSON")
	return cmd
}
