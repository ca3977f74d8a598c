package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const version = "1.0.0"

// rootOptions carries the persistent flags plus the resolved config and
// logger, shared by every subcommand.
type rootOptions struct {
	configPath string
	logLevel   string
	quiet      bool

	cfg *Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "cardkit",
		Short:         "Maintain character cards for the desktop companion",
		Long:          "cardkit synthesizes asset-generation configs, backfills subsystem defaults,\nvalidates character cards against the card schema, and audits feature coverage.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			level := opts.logLevel
			if level == "" {
				level = cfg.LogLevel
			}
			log, err := newLogger(level, opts.quiet)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			opts.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.log != nil {
				_ = opts.log.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "cardkit.yaml", "path to config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress log output")

	cmd.AddCommand(
		newGenerateCmd(opts),
		newCompleteCmd(opts),
		newValidateCmd(opts),
		newAuditCmd(opts),
		newArchetypesCmd(),
		newVersionCmd(),
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the cardkit version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cardkit %s\n", version)
		},
	}
}
