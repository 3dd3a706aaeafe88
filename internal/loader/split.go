package loader

import "strings"

const (
	delimiter = ','
	quote     = '"'
)

// splitNaive splits on every delimiter, including delimiters inside quotes.
func splitNaive(line string) []string {
	tokens := strings.Split(line, string(delimiter))
	for i, tok := range tokens {
		tokens[i] = trimQuotes(tok)
	}
	return tokens
}

// splitQuoted splits on delimiters outside double quotes only.
func splitQuoted(line string) []string {
	var (
		tokens   []string
		inQuotes bool
		start    int
	)
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case quote:
			inQuotes = !inQuotes
		case delimiter:
			if !inQuotes {
				tokens = append(tokens, trimQuotes(line[start:i]))
				start = i + 1
			}
		}
	}
	return append(tokens, trimQuotes(line[start:]))
}

// trimQuotes removes one enclosing pair of double quotes.
func trimQuotes(tok string) string {
	if len(tok) >= 2 && tok[0] == quote && tok[len(tok)-1] == quote {
		return tok[1 : len(tok)-1]
	}
	return tok
}
