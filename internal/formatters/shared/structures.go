// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package shared

import (
	"rulecheck/internal/formatters"
	"rulecheck/internal/rule"
)

// JSONResponse represents the top-level response structure for JSON/YAML output
type JSONResponse struct {
	Results []JSONResult        `json:"results" yaml:"results"`
	Summary *formatters.Summary `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// JSONResult represents a single rule evaluation in JSON/YAML format
type JSONResult struct {
	Rule       string `json:"rule" yaml:"rule"`
	Letter     string `json:"letter,omitempty" yaml:"letter,omitempty"`
	LineNumber int    `json:"line_number,omitempty" yaml:"line_number,omitempty"`
	Input      string `json:"input" yaml:"input"`
	Valid      bool   `json:"valid" yaml:"valid"`
	Status     string `json:"status" yaml:"status"`
	Error      string `json:"error,omitempty" yaml:"error,omitempty"`
}

// ConvertResultsToJSONFormat converts rule results to JSON/YAML format
func ConvertResultsToJSONFormat(results []rule.Result, options formatters.FormatterOptions) JSONResponse {
	jsonResults := make([]JSONResult, 0, len(results))
	for _, r := range results {
		jr := JSONResult{
			Rule:       r.Rule.String(),
			Letter:     r.Rule.Letter(),
			LineNumber: r.Line,
			Input:      formatters.DisplayInput(r, options),
			Valid:      r.Valid,
			Status:     r.Status(),
		}
		if r.Err != nil {
			jr.Error = r.Err.Error()
		}
		jsonResults = append(jsonResults, jr)
	}

	response := JSONResponse{Results: jsonResults}
	if options.Summary {
		summary := formatters.Summarize(results)
		response.Summary = &summary
	}
	return response
}
