package config

import (
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("countyq", pflag.ContinueOnError)
	flags.Int("max-records", 10000, "")
	flags.Bool("quote-aware", false, "")
	flags.Bool("table", false, "")
	flags.Bool("no-color", false, "")
	flags.Bool("debug", false, "")
	return flags
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(afero.NewMemMapFs(), "", nil)
	require.NoError(t, err)

	assert.Equal(t, 10000, cfg.MaxRecords)
	assert.Equal(t, 10000, cfg.MaxLineBytes)
	assert.Equal(t, "block", cfg.DisplayStyle)
	assert.False(t, cfg.QuoteAware)
	assert.False(t, cfg.Debug)
}

func TestLoadExplicitFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/countyq.yaml", []byte(
		"max_records: 50\nquote_aware: true\ndisplay_style: table\n"), 0o644))

	cfg, err := Load(fs, "/etc/countyq.yaml", nil)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.MaxRecords)
	assert.True(t, cfg.QuoteAware)
	assert.Equal(t, "table", cfg.DisplayStyle)

	opts := cfg.LoaderOptions()
	assert.Equal(t, 50, opts.Capacity)
	assert.True(t, opts.QuoteAware)

	_, err = Load(fs, "/etc/missing.yaml", nil)
	assert.Error(t, err)
}

func TestFlagsOverrideFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "cfg.yaml", []byte("max_records: 50\n"), 0o644))

	flags := testFlags()
	require.NoError(t, flags.Parse([]string{"--max-records=7", "--table", "--debug"}))

	cfg, err := Load(fs, "cfg.yaml", flags)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.MaxRecords)
	assert.Equal(t, "table", cfg.DisplayStyle)
	assert.True(t, cfg.Debug)
}

func TestUnsetFlagsKeepFileValues(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "cfg.yaml", []byte("max_records: 50\n"), 0o644))

	cfg, err := Load(fs, "cfg.yaml", testFlags())
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.MaxRecords)
	assert.Equal(t, "block", cfg.DisplayStyle)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "cfg.yaml", []byte("max_records: 50\n"), 0o644))
	t.Setenv("COUNTYQ_MAX_RECORDS", "25")

	cfg, err := Load(fs, "cfg.yaml", nil)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.MaxRecords)
}

func TestDotEnvLocalWins(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, ".env", []byte("COUNTYQ_DISPLAY_STYLE=table\nCOUNTYQ_MAX_LINE_BYTES=512\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, ".env.local", []byte("COUNTYQ_MAX_LINE_BYTES=2048\n"), 0o644))

	// t.Setenv restores the previous state once the test ends.
	t.Setenv("COUNTYQ_DISPLAY_STYLE", "")
	t.Setenv("COUNTYQ_MAX_LINE_BYTES", "")
	os.Unsetenv("COUNTYQ_DISPLAY_STYLE")
	os.Unsetenv("COUNTYQ_MAX_LINE_BYTES")

	cfg, err := Load(fs, "", nil)
	require.NoError(t, err)
	assert.Equal(t, "table", cfg.DisplayStyle)
	assert.Equal(t, 2048, cfg.MaxLineBytes)
}

func TestValidate(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "bad.yaml", []byte("display_style: json\n"), 0o644))
	_, err := Load(fs, "bad.yaml", nil)
	assert.ErrorContains(t, err, "display_style")

	require.NoError(t, afero.WriteFile(fs, "zero.yaml", []byte("max_records: 0\n"), 0o644))
	_, err = Load(fs, "zero.yaml", nil)
	assert.ErrorContains(t, err, "max_records")
}
