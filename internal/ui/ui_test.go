package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinterSeparatesStreams(t *testing.T) {
	var out, errw bytes.Buffer
	p := NewPrinter(&out, &errw, true)

	assert.False(t, p.Color(), "buffers are never terminals")

	p.Printf("2014 population: %d\n", 3000)
	p.Error(errors.New("malformed line 3: insufficient fields"))
	p.Warn(errors.New("header has too few columns"))
	p.Infof("%d records loaded", 2)

	assert.Equal(t, "2014 population: 3000\n", out.String())
	assert.Equal(t,
		"Error: malformed line 3: insufficient fields\n"+
			"Warning: header has too few columns\n"+
			"2 records loaded\n",
		errw.String())
}

func TestTable(t *testing.T) {
	NewPrinter(&bytes.Buffer{}, &bytes.Buffer{}, false)

	out, err := Table([]string{"County", "State"}, [][]string{{"Alpha County", "CA"}, {"Beta County", "NY"}})
	require.NoError(t, err)
	assert.Contains(t, out, "County")
	assert.Contains(t, out, "Alpha County")
	assert.Contains(t, out, "NY")
}

func TestHeaderWithoutColor(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, &bytes.Buffer{}, false)

	p.Header("countyq", "Field catalog")
	assert.Equal(t, "countyq\nField catalog\n\n", out.String())
}

func TestMarkdown(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, &bytes.Buffer{}, false)

	require.NoError(t, p.Markdown("# Fields\n\n- Income.Median Household Income\n"))
	assert.Contains(t, out.String(), "Income.Median Household Income")
}
