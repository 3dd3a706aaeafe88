package commands

import (
	"errors"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"

	"github.com/satishbabariya/countyq/internal/script"
)

// NewShellCommand creates the shell command.
func NewShellCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell <csv_file>",
		Short: "Run operations interactively against a CSV file",
		Long: `Load a CSV file and read operations from a prompt, one at a time.
Filters narrow the working set for the rest of the session.
Type "exit" or "quit", or press Ctrl-C, to leave.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			table, err := s.load(args[0])
			if err != nil {
				return err
			}

			s.printer.Header("countyq shell", `Type an operation, or "exit" to quit`)
			return runShell(s.interpreter(table), s.printer, askOperation)
		},
	}
}

type reporter interface {
	Error(err error)
}

// prompter returns the next line typed by the user.
type prompter func() (string, error)

func askOperation() (string, error) {
	var line string
	err := survey.AskOne(&survey.Input{
		Message: "countyq>",
		Help:    "filter-state:<ST>, filter:<field>:ge|le:<n>, population-total, population:<field>, percent:<field>, display",
	}, &line)
	return line, err
}

func runShell(in *script.Interpreter, r reporter, prompt prompter) error {
	for {
		line, err := prompt()
		if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.TrimSpace(line) {
		case "exit", "quit":
			return nil
		case "":
			continue
		}
		if script.Skippable(line) {
			line = strings.TrimSpace(line)
		}

		if err := in.Exec(line); err != nil {
			r.Error(err)
		}
	}
}
