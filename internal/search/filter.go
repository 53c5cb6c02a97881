package search

// filter.go is the parameterized alternative to hand-built filter strings.
// Values pass through OData single-quote escaping, so caller-supplied text
// cannot break out of the literal it is embedded in. Build keeps the
// bug-compatible raw interpolation for the legacy request path; new callers
// should construct filters here.

import "strings"

// Filter accumulates AND-joined OData comparison clauses.
type Filter struct {
	clauses []string
}

// NewFilter returns an empty filter.
func NewFilter() *Filter {
	return &Filter{}
}

// Eq appends a string equality clause with the value escaped.
func (f *Filter) Eq(field, value string) *Filter {
	f.clauses = append(f.clauses, field+" eq '"+escape(value)+"'")
	return f
}

// Ge appends a numeric greater-or-equal clause.
func (f *Filter) Ge(field string, value float64) *Filter {
	f.clauses = append(f.clauses, field+" ge "+FormatNumber(value))
	return f
}

// Le appends a numeric less-or-equal clause.
func (f *Filter) Le(field string, value float64) *Filter {
	f.clauses = append(f.clauses, field+" le "+FormatNumber(value))
	return f
}

// Empty reports whether no clauses have been added.
func (f *Filter) Empty() bool { return len(f.clauses) == 0 }

// String renders the AND-conjunction of all clauses.
func (f *Filter) String() string {
	return strings.Join(f.clauses, " and ")
}

// escape doubles single quotes per the OData string literal grammar.
func escape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
