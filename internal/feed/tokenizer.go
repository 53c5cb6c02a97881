package feed

import "strings"

// Tokenize splits one line of a delimited feed into trimmed field values.
// A double quote toggles quoted mode; commas inside a quoted field are
// literal. Embedded quote escaping ("") is not supported: every quote
// toggles, which is the documented contract of the feed format.
func Tokenize(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for _, c := range line {
		switch {
		case c == '"':
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(c)
		}
	}

	fields = append(fields, strings.TrimSpace(current.String()))
	return fields
}
