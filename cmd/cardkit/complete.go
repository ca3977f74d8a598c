package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	cardkit "github.com/opd-ai/cardkit-go"
)

func newCompleteCmd(root *rootOptions) *cobra.Command {
	var (
		input    string
		workers  int
		dryRun   bool
		noBackup bool
	)

	cmd := &cobra.Command{
		Use:   "complete",
		Short: "Backfill missing subsystem defaults on every card",
		Long:  "Injects default stubs for any subsystem a card is missing (dialog backend,\ngift system, multiplayer, news, battle, events, progression, behavior).\nFills holes only; present values are never overwritten.",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := input
			if dir == "" {
				dir = root.cfg.InputDir
			}
			if workers == 0 {
				workers = root.cfg.Workers
			}
			backup := root.cfg.BackupEnabled && !noBackup

			corpus, err := cardkit.LoadCorpus(dir)
			if err != nil {
				return err
			}
			root.log.Info("corpus loaded",
				zap.Int("cards", len(corpus.Entries)),
				zap.Int("load_failures", len(corpus.Failures)))

			now := time.Now()
			proc := cardkit.NewProcessor(root.log)
			proc.Workers = workers

			result := proc.Run(cmd.Context(), corpus, func(ctx context.Context, entry cardkit.Entry) error {
				injected := cardkit.CompleteFeatures(entry.Card, entry.ID, now)
				if len(injected) == 0 {
					root.log.Debug("card already complete", zap.String("character", entry.ID))
					return nil
				}
				root.log.Info("defaults injected",
					zap.String("character", entry.ID),
					zap.Strings("features", injected))
				if dryRun {
					return nil
				}
				return saveWithBackup(entry, backup, now)
			})

			printRunSummary(cmd, "Completed", result, dryRun)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "card corpus directory")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker pool size")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would change without writing")
	cmd.Flags().BoolVar(&noBackup, "no-backup", false, "skip pre-rewrite backups")
	return cmd
}
