// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"rulecheck/internal/core"
	"rulecheck/internal/formatters"
	"rulecheck/internal/help"
	"rulecheck/internal/paths"
	"rulecheck/internal/rule"
	"rulecheck/internal/version"
)

func newValidateCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <rule> <input>",
		Short: "Check one input against one rule",
		Long: `Check one input against one rule.

Exit status is 0 when the input is valid, 1 when it is invalid and 2 when
the rule is unknown or its reference data could not be loaded.`,
		Example: `  rulecheck validate SSN 123-45-6789
  rulecheck validate B "(234) 555-1234" --show-input`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, opts)
			if err != nil {
				return err
			}

			// An unparseable id still goes through the catalog so the
			// unknown-rule error is reported like any other result
			id, err := rule.Parse(args[0])
			if err != nil {
				id = rule.ID(args[0])
			}

			res := a.catalog.Evaluate(cmd.Context(), rule.Request{Rule: id, Input: args[1]})
			defer res.Clear()

			out, err := formatters.Export(a.eff.Format, []rule.Result{res}, a.formatterOptions(false))
			if err != nil {
				return &exitCodeError{code: exitError, err: err}
			}
			if err := a.writeOutput(out); err != nil {
				return &exitCodeError{code: exitError, err: err}
			}

			switch res.Status() {
			case "valid":
				return nil
			case "invalid":
				return &exitCodeError{code: exitInvalid}
			default:
				return &exitCodeError{code: exitError}
			}
		},
	}
}

func newBatchCmd(opts *cliOptions) *cobra.Command {
	var file string
	var workers int

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Check RULE<TAB>input lines from a file or stdin",
		Long: `Check many inputs at once. Each line holds a rule name or letter, a tab,
and the candidate text. Blank lines and lines starting with # are ignored.
Only rules enabled by the configuration's "rules" setting are evaluated.

Exit status is 0 when every input is valid, 1 when any input is invalid and
2 when any line could not be evaluated.`,
		Example: `  printf 'SSN\t123-45-6789\nE\t02-29-2024\n' | rulecheck batch
  rulecheck batch --file candidates.tsv --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, opts)
			if err != nil {
				return err
			}

			enabled, err := core.ParseRules(a.eff.Rules)
			if err != nil {
				return &exitCodeError{code: exitError, err: fmt.Errorf("invalid rules setting: %w", err)}
			}

			var in io.Reader = opts.stdin
			if file != "" {
				resolved, err := paths.ResolvePath(file)
				if err != nil {
					return &exitCodeError{code: exitError, err: fmt.Errorf("invalid --file path: %w", err)}
				}
				f, err := os.Open(resolved)
				if err != nil {
					return &exitCodeError{code: exitError, err: fmt.Errorf("error opening batch file: %w", err)}
				}
				defer f.Close()
				in = f
			}

			requests, err := core.ReadRequests(in)
			if err != nil {
				return &exitCodeError{code: exitError, err: err}
			}

			report, err := core.NewRunner(a.catalog, enabled, a.logger,
				core.WithWorkers(workers), core.WithObserver(a.observer)).Run(cmd.Context(), requests)
			defer report.Clear()
			if err != nil {
				return &exitCodeError{code: exitError, err: fmt.Errorf("batch interrupted: %w", err)}
			}

			out, err := formatters.Export(a.eff.Format, report.Results, a.formatterOptions(true))
			if err != nil {
				return &exitCodeError{code: exitError, err: err}
			}
			if err := a.writeOutput(out); err != nil {
				return &exitCodeError{code: exitError, err: err}
			}
			if report.Skipped > 0 {
				a.logger.Info().Int("skipped", report.Skipped).Msg("lines for disabled rules were skipped")
			}

			switch {
			case report.Errors > 0:
				return &exitCodeError{code: exitError}
			case report.Invalid > 0:
				return &exitCodeError{code: exitInvalid}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "read requests from this file instead of stdin")
	cmd.Flags().IntVar(&workers, "workers", 1, "number of concurrent evaluators (output order is unchanged)")
	return cmd
}

func newSessionCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Interactive loop: option letter, then text to test; Q quits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, opts)
			if err != nil {
				return err
			}

			s := &session{
				in:          opts.stdin,
				out:         opts.stdout,
				evaluator:   a.catalog,
				interactive: isTerminalReader(opts.stdin),
				showInput:   a.eff.ShowInput,
				noColor:     a.eff.NoColor,
			}
			count, err := s.Run(cmd.Context())
			a.logger.Debug().Int("evaluated", count).Msg("session ended")
			if err != nil {
				return &exitCodeError{code: exitError, err: err}
			}
			return nil
		},
	}
}

func newRulesCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rules [rule]",
		Short: "List rules, or show detailed help for one rule",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, opts)
			if err != nil {
				return err
			}

			h := help.NewSystem(opts.stdout, a.eff.NoColor)
			a.catalog.RegisterHelp(h)

			if len(args) == 0 {
				h.ShowChecksHelp()
				return nil
			}
			if !h.ShowCheckHelp(args[0]) {
				return &exitCodeError{code: exitError}
			}
			return nil
		},
	}
}

func newProfilesCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the configuration profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, opts)
			if err != nil {
				return err
			}

			names := a.cfg.ListProfiles()
			if len(names) == 0 {
				fmt.Fprintln(opts.stdout, "No profiles defined.")
				return nil
			}
			fmt.Fprintln(opts.stdout, "Available profiles:")
			for _, name := range names {
				p := a.cfg.GetProfile(name)
				if p.Description != "" {
					fmt.Fprintf(opts.stdout, "  %-12s %s\n", name, p.Description)
				} else {
					fmt.Fprintf(opts.stdout, "  %s\n", name)
				}
			}
			return nil
		},
	}
}

func newVersionCmd(opts *cliOptions) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case short:
				fmt.Fprintln(opts.stdout, version.Short())
			case opts.format == "json":
				data, err := json.MarshalIndent(version.Full(), "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(opts.stdout, string(data))
			default:
				fmt.Fprintln(opts.stdout, version.Info())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "print only the version number")
	return cmd
}
