package commands

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/countyq/internal/county"
	"github.com/satishbabariya/countyq/internal/script"
	"github.com/satishbabariya/countyq/internal/version"
)

type errRecorder struct{ errs []error }

func (r *errRecorder) Error(err error) { r.errs = append(r.errs, err) }
func (r *errRecorder) Warn(err error)  { r.errs = append(r.errs, err) }

func lines(ls ...string) prompter {
	return func() (string, error) {
		if len(ls) == 0 {
			return "", io.EOF
		}
		l := ls[0]
		ls = ls[1:]
		return l, nil
	}
}

func shellTable(t *testing.T) *county.Table {
	t.Helper()

	tbl := county.NewTable(0)
	require.NoError(t, tbl.Add(county.Record{County: "Alpha County", State: "CA", Population2014: 1000}))
	require.NoError(t, tbl.Add(county.Record{County: "Gamma County", State: "NY", Population2014: 4000}))
	return tbl
}

func TestRunShell(t *testing.T) {
	tests := []struct {
		name    string
		prompt  prompter
		want    string
		wantErr int
	}{
		{
			name:   "runs until exit",
			prompt: lines("filter-state:NY", "population-total", "exit", "display"),
			want:   "Filter: state == NY (1 entries)\n2014 population: 4000\n",
		},
		{
			name:   "quit and blank lines",
			prompt: lines("", "   population-total", "quit"),
			want:   "2014 population: 5000\n",
		},
		{
			name:    "bad operation is reported",
			prompt:  lines("nope", "population-total"),
			want:    "2014 population: 5000\n",
			wantErr: 1,
		},
		{
			name: "interrupt ends the shell",
			prompt: func() (string, error) {
				return "", terminal.InterruptErr
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			rep := &errRecorder{}
			in := script.New(shellTable(t), &out, rep, script.Options{})

			require.NoError(t, runShell(in, rep, tt.prompt))
			assert.Equal(t, tt.want, out.String())
			assert.Len(t, rep.errs, tt.wantErr)
		})
	}
}

func TestRunShellPromptFailure(t *testing.T) {
	boom := errors.New("no terminal")
	in := script.New(shellTable(t), io.Discard, &errRecorder{}, script.Options{})

	err := runShell(in, &errRecorder{}, func() (string, error) { return "", boom })
	assert.ErrorIs(t, err, boom)
}

func TestFieldsCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"fields", "--no-color"})

	require.NoError(t, cmd.Execute())
	for _, f := range county.Fields() {
		assert.Contains(t, out.String(), f.Name())
	}
}

func TestFieldsMarkdown(t *testing.T) {
	md := fieldsMarkdown()
	assert.Contains(t, md, "| Field | Aliases | Unit | Column |")
	assert.Contains(t, md, "Income.Median Household Income")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "countyq "+version.Current().Version+"\n")
	assert.Contains(t, out.String(), "semver:")
}

func TestVersionFlag(t *testing.T) {
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "countyq "+version.Current().Short()+"\n", out.String())
}
