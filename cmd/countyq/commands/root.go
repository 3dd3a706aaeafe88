// Package commands implements the countyq CLI commands.
package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/countyq/internal/county"
	"github.com/satishbabariya/countyq/internal/version"
	"github.com/satishbabariya/countyq/internal/watch"
)

const rootUse = "countyq <csv_file> <operations_file>"

// NewRootCommand creates the countyq command with its subcommands.
func NewRootCommand() *cobra.Command {
	var watchOps bool

	cmd := &cobra.Command{
		Use:   rootUse,
		Short: "Query county demographics with an operations script",
		Long: `countyq loads county demographic records from a CSV file and runs the
operations in a script against them, one per line:

  filter-state:<ST>
  filter:<field>:ge|le:<number>
  population-total
  population:<field>
  percent:<field>
  display

Run "countyq fields" to list the field names filters and aggregates accept.`,
		Example: `  countyq counties.csv ops.txt
  countyq --table counties.csv ops.txt
  countyq --watch counties.csv ops.txt`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return &UsageError{Use: rootUse}
			}
			return nil
		},
		Version:       version.Current().Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args[0], args[1], watchOps)
		},
	}

	cmd.SetVersionTemplate("countyq {{.Version}}\n")

	flags := cmd.PersistentFlags()
	flags.String("config", "", "Path to config file (default: .countyq.yaml)")
	flags.Int("max-records", county.DefaultCapacity, "Maximum number of records to load")
	flags.Bool("quote-aware", false, "Keep commas inside double-quoted CSV fields")
	flags.Bool("table", false, "Render display output as a table")
	flags.Bool("no-color", false, "Disable colored diagnostics")
	flags.Bool("debug", false, "Enable debug tracing on stderr")
	cmd.Flags().BoolVarP(&watchOps, "watch", "w", false, "Re-run when the operations file changes")

	cmd.AddCommand(NewFieldsCommand())
	cmd.AddCommand(NewShellCommand())
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

func runRoot(cmd *cobra.Command, csvPath, opsPath string, watchOps bool) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	if err := s.runOnce(csvPath, opsPath); err != nil {
		return err
	}
	if !watchOps {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := watch.NewWatcher(opsPath, func() error {
		s.printer.Infof("%s changed, re-running", opsPath)
		return s.runOnce(csvPath, opsPath)
	}, s.printer.Error)
	if err != nil {
		return err
	}

	s.printer.Infof("Watching %s for changes (Ctrl-C to stop)", opsPath)
	return w.Run(ctx)
}
