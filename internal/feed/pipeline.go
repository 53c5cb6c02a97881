// Package feed implements CSV feed ingestion: tokenizing delimited lines,
// materializing typed products under a field mapping, and collecting
// per-row and per-field diagnostics without aborting the batch.
package feed

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"productsearch/internal/catalog"
	"productsearch/internal/mapping"
)

// maxLineSize bounds a single feed line; product feeds with long
// descriptions stay well under this.
const maxLineSize = 1024 * 1024

// RowError records a row that was skipped entirely.
type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// Result is the outcome of parsing one feed: materialized products in file
// order plus the diagnostic manifest for skipped rows and unset fields.
type Result struct {
	Products    []catalog.Product `json:"products"`
	Skipped     []RowError        `json:"skipped,omitempty"`
	FieldErrors []FieldError      `json:"fieldErrors,omitempty"`
}

// Parse reads a delimited feed line by line, treating the first non-blank
// line as the header row and materializing every subsequent non-blank line
// whose field count matches the header's. Mismatched rows are skipped with a
// warning and recorded in the manifest; only a stream read failure is fatal.
func Parse(r io.Reader, m *mapping.FieldMapping) (Result, error) {
	var result Result
	var headers []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()

		if strings.TrimSpace(line) == "" {
			continue
		}

		if headers == nil {
			headers = Tokenize(line)
			continue
		}

		values := Tokenize(line)
		if len(values) != len(headers) {
			reason := fmt.Sprintf("row has %d columns, expected %d", len(values), len(headers))
			slog.Warn("skipping feed row", "line", lineNumber, "reason", reason)
			result.Skipped = append(result.Skipped, RowError{Line: lineNumber, Reason: reason})
			continue
		}

		product, fieldErrs := Materialize(headers, values, m)
		for _, fe := range fieldErrs {
			fe.Line = lineNumber
			slog.Warn("feed field not set", "line", lineNumber, "field", fe.Field, "reason", fe.Reason)
			result.FieldErrors = append(result.FieldErrors, fe)
		}
		result.Products = append(result.Products, product)
	}

	if err := scanner.Err(); err != nil {
		return Result{}, fmt.Errorf("reading feed: %w", err)
	}

	return result, nil
}
