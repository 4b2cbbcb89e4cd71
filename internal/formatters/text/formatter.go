// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"rulecheck/internal/formatters"
	"rulecheck/internal/rule"

	"github.com/fatih/color"
)

// maxInputWidth caps the input column for readability
const maxInputWidth = 30

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":  color.New(color.FgGreen),
			"yellow": color.New(color.FgYellow),
			"red":    color.New(color.FgRed),
			"cyan":   color.New(color.FgCyan),
			"blue":   color.New(color.FgBlue),
			"white":  color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors and tables"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(results []rule.Result, options formatters.FormatterOptions) (string, error) {
	// Disable colors if requested
	if options.NoColor {
		color.NoColor = true
	}

	if len(results) == 0 {
		return "No results.", nil
	}

	var builder strings.Builder
	inputWidth := f.calculateInputColumnWidth(results, options)

	f.appendHeaders(&builder, inputWidth, options)
	for _, r := range results {
		f.appendResultLine(&builder, r, inputWidth, options)
	}

	if options.Summary {
		f.appendSummary(&builder, formatters.Summarize(results), options)
	}

	return strings.TrimRight(builder.String(), "\n"), nil
}

// appendHeaders adds column headers to the string builder
func (f *Formatter) appendHeaders(builder *strings.Builder, inputWidth int, options formatters.FormatterOptions) {
	header := fmt.Sprintf("%-9s %-3s %-15s %-6s %-*s %s\n",
		"STATUS", "OPT", "RULE", "LINE", inputWidth, "INPUT", "DETAIL")
	if !options.NoColor {
		header = f.colors["white"].Sprint(header)
	}
	builder.WriteString(header)

	totalWidth := 9 + 1 + 3 + 1 + 15 + 1 + 6 + 1 + inputWidth + 1 + 6
	separator := strings.Repeat("-", totalWidth) + "\n"
	if !options.NoColor {
		separator = f.colors["white"].Sprint(separator)
	}
	builder.WriteString(separator)
}

// calculateInputColumnWidth calculates the optimal width for the input column
func (f *Formatter) calculateInputColumnWidth(results []rule.Result, options formatters.FormatterOptions) int {
	maxWidth := len("INPUT")
	for _, r := range results {
		width := len([]rune(flatten(formatters.DisplayInput(r, options))))
		if width > maxWidth {
			maxWidth = width
		}
	}
	if maxWidth > maxInputWidth {
		maxWidth = maxInputWidth
	}
	return maxWidth
}

// appendResultLine adds a single result line to the string builder
func (f *Formatter) appendResultLine(builder *strings.Builder, r rule.Result, inputWidth int, options formatters.FormatterOptions) {
	status := r.Status()

	statusStr := fmt.Sprintf("[%-7s]", strings.ToUpper(status))
	if !options.NoColor {
		statusStr = f.statusColor(status).Sprint(statusStr)
	}

	ruleStr := fmt.Sprintf("%-15s", r.Rule.String())
	if !options.NoColor {
		ruleStr = f.colors["cyan"].Sprint(ruleStr)
	}

	lineStr := "-"
	if r.Line > 0 {
		lineStr = fmt.Sprintf("%d", r.Line)
	}

	input := truncate(flatten(formatters.DisplayInput(r, options)), inputWidth)

	detail := ""
	if r.Err != nil {
		detail = r.Err.Error()
		if !options.NoColor {
			detail = f.colors["yellow"].Sprint(detail)
		}
	}

	builder.WriteString(fmt.Sprintf("%s %-3s %s %-6s %-*s %s",
		statusStr, r.Rule.Letter(), ruleStr, lineStr, inputWidth, input, detail))
	builder.WriteString("\n")
}

// appendSummary adds the totals line to the string builder
func (f *Formatter) appendSummary(builder *strings.Builder, s formatters.Summary, options formatters.FormatterOptions) {
	builder.WriteString("\n")
	line := fmt.Sprintf("%d checked: %d valid, %d invalid, %d error(s)\n", s.Total, s.Valid, s.Invalid, s.Errors)
	if !options.NoColor {
		line = f.colors["blue"].Sprint(line)
	}
	builder.WriteString(line)
}

func (f *Formatter) statusColor(status string) *color.Color {
	switch status {
	case "valid":
		return f.colors["green"]
	case "invalid":
		return f.colors["red"]
	default:
		return f.colors["yellow"]
	}
}

// flatten keeps control characters from breaking the table layout
func flatten(s string) string {
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	return strings.ReplaceAll(s, "\t", "\\t")
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
