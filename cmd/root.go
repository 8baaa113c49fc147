// Package cmd implements the recruitmail command line.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"recruitmail/config"
)

var version = "dev"

// app carries state shared by subcommands once the root pre-run has loaded it.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "recruitmail",
		Short:         "Email template service for the recruitment dashboard",
		Long:          `recruitmail serves the recruitment notification template catalog, renders previews with candidate data, and sends template emails.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = config.NewLogger(cmd.ErrOrStderr(), cfg.Environment, cfg.LogLevel)
			for _, w := range cfg.Warnings {
				a.logger.Warn(w)
			}
			return nil
		},
	}
	root.AddCommand(newServeCmd(a), newTemplatesCmd(), newTokenCmd(a))
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		root.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
