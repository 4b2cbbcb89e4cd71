// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"rulecheck/internal/observability"
	"rulecheck/internal/parallel"
	"rulecheck/internal/rule"
)

// ErrMalformedLine is returned for batch lines without a rule field
var ErrMalformedLine = errors.New("malformed batch line: expected RULE<TAB>input")

// maxLineSize bounds a single batch line
const maxLineSize = 1024 * 1024

// Evaluator runs a single rule evaluation. *catalog.Catalog satisfies it.
type Evaluator interface {
	Evaluate(ctx context.Context, req rule.Request) rule.Result
}

// BatchRequest is one parsed line of batch input
type BatchRequest struct {
	rule.Request
	Line int

	// Err is set when the line itself could not be parsed
	Err error
}

// ReadRequests parses batch input. Each line is a rule name or option
// letter, a tab, and the candidate text. Blank lines and lines starting with
// '#' are skipped. The candidate is kept verbatim apart from a trailing
// carriage return.
func ReadRequests(r io.Reader) ([]BatchRequest, error) {
	var requests []BatchRequest

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, input, ok := strings.Cut(line, "\t")
		if !ok {
			requests = append(requests, BatchRequest{
				Line: lineNum,
				Err:  fmt.Errorf("line %d: %w", lineNum, ErrMalformedLine),
			})
			continue
		}

		req := BatchRequest{Line: lineNum}
		req.Input = input
		id, err := rule.Parse(name)
		if err != nil {
			req.Request.Rule = rule.ID(strings.TrimSpace(name))
			req.Err = fmt.Errorf("line %d: %w", lineNum, err)
		} else {
			req.Request.Rule = id
		}
		requests = append(requests, req)
	}

	if err := scanner.Err(); err != nil {
		return requests, fmt.Errorf("error reading batch input: %w", err)
	}
	return requests, nil
}

// Report aggregates the results of one batch run
type Report struct {
	Results []rule.Result
	Total   int
	Valid   int
	Invalid int
	Errors  int
	Skipped int
}

// Add records one result
func (r *Report) Add(res rule.Result) {
	r.Results = append(r.Results, res)
	r.Total++
	switch res.Status() {
	case "valid":
		r.Valid++
	case "invalid":
		r.Invalid++
	default:
		r.Errors++
	}
}

// Clear wipes every candidate held by the report
func (r *Report) Clear() {
	for i := range r.Results {
		r.Results[i].Clear()
	}
}

// Runner evaluates batches of requests
type Runner struct {
	evaluator Evaluator
	enabled   map[rule.ID]bool
	logger    zerolog.Logger
	workers   int
	observer  *observability.StandardObserver
}

// RunnerOption configures a Runner
type RunnerOption func(*Runner)

// WithWorkers evaluates requests on n goroutines. Results keep input order.
func WithWorkers(n int) RunnerOption {
	return func(r *Runner) { r.workers = n }
}

// WithObserver times each evaluation done by the worker pool
func WithObserver(o *observability.StandardObserver) RunnerOption {
	return func(r *Runner) { r.observer = o }
}

// NewRunner creates a batch runner. A nil enabled map runs every rule.
func NewRunner(evaluator Evaluator, enabled map[rule.ID]bool, logger zerolog.Logger, opts ...RunnerOption) *Runner {
	r := &Runner{
		evaluator: evaluator,
		enabled:   enabled,
		logger:    logger.With().Str("component", "batch").Logger(),
		workers:   1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run evaluates requests and reports them in input order. Requests for rules
// that are not enabled are counted as skipped. Run stops early if ctx is
// cancelled.
func (r *Runner) Run(ctx context.Context, requests []BatchRequest) (*Report, error) {
	report := &Report{}

	if r.workers > 1 {
		if err := r.runParallel(ctx, requests, report); err != nil {
			return report, err
		}
	} else {
		for _, req := range requests {
			if err := ctx.Err(); err != nil {
				return report, err
			}
			if res, ok := r.immediate(req); ok {
				report.Add(res)
				continue
			}
			if r.isSkipped(req) {
				report.Skipped++
				continue
			}

			res := r.evaluator.Evaluate(ctx, req.Request)
			res.Line = req.Line
			report.Add(res)
		}
	}

	r.logger.Debug().
		Int("total", report.Total).
		Int("valid", report.Valid).
		Int("invalid", report.Invalid).
		Int("errors", report.Errors).
		Int("skipped", report.Skipped).
		Int("workers", r.workers).
		Msg("batch complete")

	return report, nil
}

// immediate returns the error result for a line that failed to parse
func (r *Runner) immediate(req BatchRequest) (rule.Result, bool) {
	if req.Err == nil {
		return rule.Result{}, false
	}
	res := rule.NewResult(req.Rule, req.Input, false, req.Err)
	res.Line = req.Line
	return res, true
}

func (r *Runner) isSkipped(req BatchRequest) bool {
	return r.enabled != nil && !r.enabled[req.Rule]
}

func (r *Runner) runParallel(ctx context.Context, requests []BatchRequest, report *Report) error {
	var pending []rule.Request
	var lines []int
	for _, req := range requests {
		if req.Err == nil && !r.isSkipped(req) {
			pending = append(pending, req.Request)
			lines = append(lines, req.Line)
		}
	}

	evaluated, err := parallel.EvaluateAll(ctx, r.workers, r.evaluator, r.observer, pending)
	if err != nil {
		return err
	}

	next := 0
	for _, req := range requests {
		if res, ok := r.immediate(req); ok {
			report.Add(res)
			continue
		}
		if r.isSkipped(req) {
			report.Skipped++
			continue
		}
		res := evaluated[next]
		res.Line = lines[next]
		next++
		report.Add(res)
	}
	return nil
}

// ParseRules converts a comma-separated list of rule names or letters into
// an enabled-rules map. An empty string or "all" enables every rule.
// Unknown names are an error.
func ParseRules(rules string) (map[rule.ID]bool, error) {
	result := make(map[rule.ID]bool, len(rule.All))
	for _, id := range rule.All {
		result[id] = false
	}

	if trimmed := strings.TrimSpace(rules); trimmed == "" || strings.EqualFold(trimmed, "all") {
		for id := range result {
			result[id] = true
		}
		return result, nil
	}

	for _, name := range strings.Split(rules, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		id, err := rule.Parse(name)
		if err != nil {
			return nil, err
		}
		result[id] = true
	}

	return result, nil
}
