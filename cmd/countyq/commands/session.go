package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/countyq/internal/config"
	"github.com/satishbabariya/countyq/internal/county"
	"github.com/satishbabariya/countyq/internal/debug"
	"github.com/satishbabariya/countyq/internal/loader"
	"github.com/satishbabariya/countyq/internal/script"
	"github.com/satishbabariya/countyq/internal/ui"
)

// session carries the resolved settings shared by the commands that load a CSV.
type session struct {
	cfg     *config.Config
	printer *ui.Printer
	style   script.Style
}

func newSession(cmd *cobra.Command) (*session, error) {
	configFile, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(config.AppFs, configFile, cmd.Flags())
	if err != nil {
		return nil, err
	}

	debug.Init(cfg.Debug, cmd.ErrOrStderr())
	debug.Dump("configuration", cfg)

	style, err := script.ParseStyle(cfg.DisplayStyle)
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:     cfg,
		printer: ui.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), !cfg.NoColor),
		style:   style,
	}, nil
}

// load reads csvPath into a fresh table and prints the load summary.
func (s *session) load(csvPath string) (*county.Table, error) {
	res, err := loader.New(config.AppFs, s.cfg.LoaderOptions(), s.printer).LoadFile(csvPath)
	if err != nil {
		return nil, err
	}
	s.printer.Printf("%d records loaded\n", res.Loaded)
	return res.Table, nil
}

func (s *session) interpreter(table *county.Table) *script.Interpreter {
	return script.New(table, s.printer.Out, s.printer, script.Options{
		Style:        s.style,
		MaxLineBytes: s.cfg.MaxLineBytes,
	})
}

// runOnce loads the CSV and runs the script against it. A script that
// cannot be opened is reported but is not an error.
func (s *session) runOnce(csvPath, opsPath string) error {
	table, err := s.load(csvPath)
	if err != nil {
		return err
	}

	stats, err := s.interpreter(table).RunFile(config.AppFs, opsPath)
	if err != nil {
		s.printer.Error(err)
		return nil
	}
	debug.Debug("run complete", "executed", stats.Executed, "failed", stats.Failed)
	return nil
}

// UsageError is returned when the command line has the wrong shape.
type UsageError struct {
	Use string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("usage: %s", e.Use)
}

// Usage returns the line printed to the user.
func (e *UsageError) Usage() string {
	return "Usage: " + e.Use
}
