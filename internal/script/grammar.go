package script

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// OperationLexer tokenizes one operation line. Keywords are recognised only
// before the first colon; everything after the first colon is argument
// text, so field names may contain spaces, dots and apostrophes.
var OperationLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Keyword", Pattern: `filter-state|filter|population-total|population|percent|display`},
		{Name: "Colon", Pattern: `:`, Action: lexer.Push("Args")},
		{Name: "Word", Pattern: `[^:]+`},
	},
	"Args": {
		{Name: "Colon", Pattern: `:`},
		{Name: "Text", Pattern: `[^:]+`},
	},
})

// Operation is one parsed script line.
type Operation interface {
	apply(in *Interpreter) error
}

// Line is the parse root for a single operation line.
type Line struct {
	Pos lexer.Position
	Op  Operation `parser:"@@"`
}

// FilterStateOp is "filter-state:<code>". Everything after the first
// colon, further colons included, is the state code.
type FilterStateOp struct {
	State string `parser:"\"filter-state\" Colon @(Text | Colon)*"`
}

// FilterOp is "filter:<field>:<ge|le>:<value>". Arguments after the
// value are ignored.
type FilterOp struct {
	Field     string   `parser:"\"filter\" Colon @Text"`
	Operator  string   `parser:"Colon @Text"`
	Threshold string   `parser:"Colon @Text"`
	Extra     []string `parser:"(Colon @Text?)*"`
}

// PopulationTotalOp is "population-total".
type PopulationTotalOp struct {
	Keyword  bool     `parser:"@\"population-total\""`
	Trailing []string `parser:"(@Keyword | @Word | @Colon | @Text)*"`
}

// PopulationOp is "population:<field>". The field name runs to the end
// of the line.
type PopulationOp struct {
	Field string `parser:"\"population\" Colon @(Text | Colon)+"`
}

// PercentOp is "percent:<field>".
type PercentOp struct {
	Field string `parser:"\"percent\" Colon @(Text | Colon)+"`
}

// DisplayOp is "display". Like "population-total" it matches by prefix and
// ignores whatever follows the keyword.
type DisplayOp struct {
	Keyword  bool     `parser:"@\"display\""`
	Trailing []string `parser:"(@Keyword | @Word | @Colon | @Text)*"`
}

var parser = participle.MustBuild[Line](
	participle.Lexer(OperationLexer),
	participle.Union[Operation](
		&FilterStateOp{},
		&FilterOp{},
		&PopulationTotalOp{},
		&PopulationOp{},
		&PercentOp{},
		&DisplayOp{},
	),
)

// Parse parses a single operation line. A trailing line ending is ignored.
func Parse(text string) (Operation, error) {
	line, err := parser.ParseString("", strings.TrimRight(text, "\r\n"))
	if err != nil {
		return nil, err
	}
	return line.Op, nil
}
