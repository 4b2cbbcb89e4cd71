// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"fmt"
	"strconv"
	"strings"

	"rulecheck/internal/formatters"
	"rulecheck/internal/rule"
)

// Formatter implements CSV output formatting
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "Comma-separated values for spreadsheet import"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

func (f *Formatter) Format(results []rule.Result, options formatters.FormatterOptions) (string, error) {
	headers := []string{"Line", "Rule", "Letter", "Status", "Input", "Error"}
	rows := []string{strings.Join(headers, ",")}

	for _, r := range results {
		rows = append(rows, f.createCSVRow(r, options))
	}

	return strings.Join(rows, "\n") + "\n", nil
}

func (f *Formatter) createCSVRow(r rule.Result, options formatters.FormatterOptions) string {
	line := ""
	if r.Line > 0 {
		line = strconv.Itoa(r.Line)
	}
	errText := ""
	if r.Err != nil {
		errText = r.Err.Error()
	}

	row := []string{
		line,
		f.escapeCSVField(r.Rule.String()),
		r.Rule.Letter(),
		r.Status(),
		f.escapeCSVField(formatters.DisplayInput(r, options)),
		f.escapeCSVField(errText),
	}
	return strings.Join(row, ",")
}

// escapeCSVField properly escapes a field for CSV format and prevents CSV injection
func (f *Formatter) escapeCSVField(field string) string {
	// Prevent CSV injection by sanitizing formula characters
	field = f.sanitizeFormulaInjection(field)

	// If field contains comma, quote, or newline, wrap in quotes and escape internal quotes
	if strings.ContainsAny(field, ",\"\n\r") {
		escaped := strings.ReplaceAll(field, "\"", "\"\"")
		return fmt.Sprintf("\"%s\"", escaped)
	}
	return field
}

// sanitizeFormulaInjection prefixes fields that spreadsheets would evaluate
// as formulas with a single quote
func (f *Formatter) sanitizeFormulaInjection(field string) string {
	if len(field) == 0 {
		return field
	}

	switch field[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + field
	}
	return field
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
