package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	cardkit "github.com/opd-ai/cardkit-go"
)

func newGenerateCmd(root *rootOptions) *cobra.Command {
	var (
		input    string
		workers  int
		dryRun   bool
		noBackup bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Synthesize assetGeneration configs for every card",
		Long:  "Classifies each card's archetype, merges the animation catalog over its\nexisting animations, and rewrites the assetGeneration block in place.\nExisting assetGeneration blocks are replaced.",
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
				archetype, err := cardkit.RegenerateAssetConfig(entry.Card, entry.Path, now)
				if err != nil {
					return err
				}
				root.log.Info("asset config synthesized",
					zap.String("character", entry.ID),
					zap.String("archetype", string(archetype)))
				if dryRun {
					return nil
				}
				return saveWithBackup(entry, backup, now)
			})

			printRunSummary(cmd, "Updated", result, dryRun)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "card corpus directory")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker pool size")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would change without writing")
	cmd.Flags().BoolVar(&noBackup, "no-backup", false, "skip pre-rewrite backups")
	return cmd
}

// saveWithBackup snapshots the card file per its own backup settings,
// then rewrites it atomically.
func saveWithBackup(entry cardkit.Entry, backup bool, now time.Time) error {
	if backup {
		opts := cardkit.BackupOptionsFrom(entry.Card)
		if _, err := cardkit.BackupCard(entry.Path, now, opts); err != nil {
			return err
		}
	}
	return cardkit.SaveCard(entry.Path, entry.Card)
}

func printRunSummary(cmd *cobra.Command, verb string, result *cardkit.RunResult, dryRun bool) {
	out := cmd.OutOrStdout()
	if dryRun {
		verb = verb + " (dry run)"
	}
	fmt.Fprintf(out, "%s: %d\n", verb, result.Processed)
	fmt.Fprintf(out, "Failed: %d\n", result.Failed)
	for _, f := range result.Failures {
		fmt.Fprintf(out, "  ✗ %s: %v\n", f.ID, f.Err)
	}
}
