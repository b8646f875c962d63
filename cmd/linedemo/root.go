package main

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/gogpu/linekit"
	"github.com/spf13/cobra"
)

// app holds state shared by all commands.
type app struct {
	logger   *log.Logger
	settings settings
}

func newApp(w io.Writer, s settings) *app {
	level := log.InfoLevel
	if s.Verbose {
		level = log.DebugLevel
	}
	return &app{
		logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		settings: s,
	}
}

// rootCommand creates the root command with all subcommands registered.
func (a *app) rootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "linedemo",
		Short:        "Line geometry and glyph layout playground",
		Version:      linekit.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				a.logger.SetLevel(log.DebugLevel)
			}
			// Library debug records go through the same logger.
			linekit.SetLogger(slog.New(a.logger))
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", a.settings.Verbose, "enable debug logging")

	root.AddCommand(a.classifyCommand())
	root.AddCommand(a.intersectCommand())
	root.AddCommand(a.strokeCommand())
	root.AddCommand(a.layoutCommand())
	root.AddCommand(a.renderCommand())
	return root
}
