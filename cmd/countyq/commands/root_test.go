package commands

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/countyq/internal/config"
)

func csvRow(name, state, population string) string {
	cols := make([]string, 39)
	for i := range cols {
		cols[i] = "0"
	}
	cols[0] = `"` + name + `"`
	cols[1] = `"` + state + `"`
	cols[38] = population
	return strings.Join(cols, ",")
}

func csvHeader() string {
	cols := make([]string, 39)
	for i := range cols {
		cols[i] = `"col"`
	}
	return strings.Join(cols, ",")
}

func memFs(t *testing.T, files map[string]string) {
	t.Helper()

	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
	prev := config.AppFs
	config.AppFs = fs
	t.Cleanup(func() { config.AppFs = prev })
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

var counties = strings.Join([]string{
	csvHeader(),
	csvRow("Alpha County", "CA", "1000"),
	csvRow("Beta County", "CA", "2000"),
	csvRow("Gamma County", "NY", "4000"),
}, "\n") + "\n"

func TestRootRunsScript(t *testing.T) {
	memFs(t, map[string]string{
		"counties.csv": counties,
		"ops.txt":      "filter-state:CA\npopulation-total\n",
	})

	out, errOut, err := execute(t, "--no-color", "counties.csv", "ops.txt")
	require.NoError(t, err)
	assert.Empty(t, errOut)
	assert.Equal(t, "3 records loaded\nFilter: state == CA (2 entries)\n2014 population: 3000\n", out)
}

func TestRootReportsBadLinesAndContinues(t *testing.T) {
	memFs(t, map[string]string{
		"counties.csv": counties,
		"ops.txt":      "bogus\n  indented\npopulation-total\n",
	})

	out, errOut, err := execute(t, "--no-color", "counties.csv", "ops.txt")
	require.NoError(t, err)
	assert.Equal(t, "3 records loaded\n2014 population: 7000\n", out)
	assert.Contains(t, errOut, "Error: ")
	assert.Contains(t, errOut, "bogus")
	assert.NotContains(t, errOut, "indented")
}

func TestRootUsage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no args", nil},
		{"one arg", []string{"counties.csv"}},
		{"three args", []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			var usage *UsageError
			require.True(t, errors.As(err, &usage))
			assert.Equal(t, "Usage: countyq <csv_file> <operations_file>", usage.Usage())
		})
	}
}

func TestRootMissingCSVFails(t *testing.T) {
	memFs(t, map[string]string{"ops.txt": "display\n"})

	out, _, err := execute(t, "--no-color", "missing.csv", "ops.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error opening file")
	assert.Empty(t, out)
}

func TestRootMissingScriptIsReported(t *testing.T) {
	memFs(t, map[string]string{"counties.csv": counties})

	out, errOut, err := execute(t, "--no-color", "counties.csv", "missing.txt")
	require.NoError(t, err)
	assert.Equal(t, "3 records loaded\n", out)
	assert.Contains(t, errOut, "error opening operations file")
}

func TestRootMaxRecordsFlag(t *testing.T) {
	memFs(t, map[string]string{
		"counties.csv": counties,
		"ops.txt":      "population-total\n",
	})

	out, errOut, err := execute(t, "--no-color", "--max-records", "2", "counties.csv", "ops.txt")
	require.NoError(t, err)
	assert.Equal(t, "2 records loaded\n2014 population: 3000\n", out)
	assert.Contains(t, errOut, "too many entries to load")
}

func TestRootTableStyle(t *testing.T) {
	memFs(t, map[string]string{
		"counties.csv": counties,
		"ops.txt":      "filter-state:NY\ndisplay\n",
	})

	out, _, err := execute(t, "--no-color", "--table", "counties.csv", "ops.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "Gamma County")
	assert.NotContains(t, out, "Alpha County")
}
