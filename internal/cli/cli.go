// Package cli contains command setup shared by example programs.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"github.com/tliron/kutil/util"
)

// Options are the flags common to all commands.
type Options struct {
	// Verbosity is the number of -v flags: 1 enables Info, 2 enables Debug and parser traces.
	Verbosity int

	// LogPath is the log file, logs go to stderr if empty.
	LogPath string
}

// NewCommand creates root command with logging flags, logging is configured before run.
func NewCommand(use, short string, opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Initialize(opts.Verbosity, opts.LogPath)
		},
	}

	cmd.PersistentFlags().CountVarP(&opts.Verbosity, "verbose", "v", "add verbosity (-vv for parser traces)")
	cmd.PersistentFlags().StringVar(&opts.LogPath, "log", "", "log file path")
	return cmd
}

// Execute runs cmd and exits, failure is logged to log and yields exit code 1.
// Buffered log output is flushed on exit.
func Execute(cmd *cobra.Command, log commonlog.Logger) {
	if e := cmd.Execute(); e != nil {
		log.Error(e.Error())
		util.Exit(1)
	}
	util.Exit(0)
}
