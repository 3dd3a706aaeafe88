package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/countyq/internal/county"
	"github.com/satishbabariya/countyq/internal/ui"
)

// NewFieldsCommand creates the fields command.
func NewFieldsCommand() *cobra.Command {
	var markdown bool

	cmd := &cobra.Command{
		Use:   "fields",
		Short: "List the field names usable in operations",
		Long: `List every numeric field that filter, population and percent operations
accept, with its aliases, unit and CSV column.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			printer := ui.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), !noColor)
			if markdown {
				return printer.Markdown(fieldsMarkdown())
			}
			return printFieldsTable(printer)
		},
	}

	cmd.Flags().BoolVar(&markdown, "markdown", false, "Render the field list as markdown")

	return cmd
}

func fieldRows() [][]string {
	fields := county.Fields()
	rows := make([][]string, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, []string{
			f.Name(),
			strings.Join(f.Aliases(), ", "),
			f.Unit().String(),
			strconv.Itoa(f.Column()),
		})
	}
	return rows
}

var fieldHeaders = []string{"Field", "Aliases", "Unit", "Column"}

func printFieldsTable(p *ui.Printer) error {
	out, err := ui.Table(fieldHeaders, fieldRows())
	if err != nil {
		return fmt.Errorf("failed to render fields: %w", err)
	}
	p.Printf("%s\n", out)
	return nil
}

func fieldsMarkdown() string {
	var b strings.Builder
	b.WriteString("# Fields\n\n")
	b.WriteString("| " + strings.Join(fieldHeaders, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat("---|", len(fieldHeaders)) + "\n")
	for _, row := range fieldRows() {
		for i, cell := range row {
			if cell == "" {
				row[i] = "-"
			}
		}
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}
	b.WriteString("\nPercent fields work with `population:` and `percent:`; all fields work with `filter:`.\n")
	return b.String()
}
