// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"rulecheck/internal/catalog"
	"rulecheck/internal/config"
	"rulecheck/internal/core"
	"rulecheck/internal/formatters"
	_ "rulecheck/internal/formatters/csv"
	_ "rulecheck/internal/formatters/json"
	_ "rulecheck/internal/formatters/text"
	_ "rulecheck/internal/formatters/yaml"
	"rulecheck/internal/observability"
	"rulecheck/internal/paths"
)

// Exit codes shared by every subcommand
const (
	exitValid   = 0
	exitInvalid = 1
	exitError   = 2
)

// exitCodeError carries a process exit code out of a cobra RunE
type exitCodeError struct {
	code int
	err  error
}

func (e *exitCodeError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return fmt.Sprintf("exit status %d", e.code)
}

func (e *exitCodeError) Unwrap() error {
	return e.err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs the command line and maps the outcome to an exit code
func execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd(stdin, stdout, stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitValid
	}

	var ee *exitCodeError
	if errors.As(err, &ee) {
		if ee.err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", ee.err)
		}
		return ee.code
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return exitError
}

// cliOptions holds global flag values and the process streams
type cliOptions struct {
	configFile string
	profile    string
	format     string
	areaCodes  string
	output     string
	noColor    bool
	showInput  bool
	debug      bool

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &cliOptions{stdin: stdin, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "rulecheck",
		Short: "Validate text against a fixed catalog of pattern rules",
		Long: `rulecheck checks a candidate string against one of twelve fixed rules
(SSN, US phone, email, roster name, date, house address, city/state/zip,
military time, US currency, URL, password, odd-length "ion" word).

Matching is always whole-string. Rules are named by identifier
(e.g. US_PHONE) or by option letter (A through L).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          func(cmd *cobra.Command, args []string) error { return cmd.Help() },
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "config file (default: rulecheck.yaml or the user config directory)")
	flags.StringVar(&opts.profile, "profile", "", "configuration profile to apply")
	flags.StringVarP(&opts.format, "format", "f", config.DefaultFormat, "output format ("+strings.Join(formatters.List(), ", ")+")")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	flags.BoolVar(&opts.showInput, "show-input", false, "print candidate text instead of a placeholder")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging and operation timing")
	flags.StringVar(&opts.areaCodes, "area-codes", "", "area code reference file (one code per line)")
	flags.StringVarP(&opts.output, "output", "o", "", "write results to a file instead of stdout")

	root.AddCommand(
		newValidateCmd(opts),
		newBatchCmd(opts),
		newSessionCmd(opts),
		newRulesCmd(opts),
		newProfilesCmd(opts),
		newVersionCmd(opts),
	)
	return root
}

// app is the resolved runtime shared by subcommands
type app struct {
	opts     *cliOptions
	cfg      *config.Config
	eff      config.Effective
	logger   zerolog.Logger
	observer *observability.StandardObserver
	catalog  *catalog.Catalog
}

// setup resolves configuration with flags over profile over defaults, then
// builds the logger and rule catalog
func setup(cmd *cobra.Command, opts *cliOptions) (*app, error) {
	cfg, err := config.LoadConfigOrDefault(opts.configFile)
	if err != nil {
		fmt.Fprintf(opts.stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(opts.stderr, "Using default configuration\n")
	}

	eff, err := cfg.Resolve(opts.profile)
	if err != nil {
		return nil, &exitCodeError{code: exitError, err: err}
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		eff.Format = opts.format
	}
	if _, ok := formatters.Get(eff.Format); !ok {
		return nil, &exitCodeError{code: exitError, err: fmt.Errorf("unsupported format '%s'. Available formats: %s", eff.Format, strings.Join(formatters.List(), ", "))}
	}
	eff.NoColor = eff.NoColor || opts.noColor || !isTerminalWriter(opts.stdout) || opts.output != ""
	eff.ShowInput = eff.ShowInput || opts.showInput
	eff.Debug = eff.Debug || opts.debug

	if opts.areaCodes != "" {
		resolved, err := paths.ResolvePath(opts.areaCodes)
		if err != nil {
			return nil, &exitCodeError{code: exitError, err: fmt.Errorf("invalid --area-codes path: %w", err)}
		}
		eff.AreaCodes.File = resolved
	}

	level := eff.LogLevel
	observerLevel := observability.ObservabilityOff
	if eff.Debug {
		level = "debug"
		observerLevel = observability.ObservabilityDebug
	}
	logger := config.NewLogger(config.LoggerConfig{
		Level:  level,
		Format: eff.LogFormat,
		Out:    opts.stderr,
	})
	observer := observability.NewStandardObserver(observerLevel, logger)

	logger.Debug().
		Str("format", eff.Format).
		Str("profile", opts.profile).
		Str("area_codes_file", eff.AreaCodes.File).
		Bool("s3", eff.AreaCodes.S3.Enabled).
		Bool("gregorian", eff.Date.Gregorian).
		Msg("configuration resolved")

	return &app{
		opts:     opts,
		cfg:      cfg,
		eff:      eff,
		logger:   logger,
		observer: observer,
		catalog:  core.BuildCatalog(cmd.Context(), eff, logger, observer),
	}, nil
}

func (a *app) formatterOptions(summary bool) formatters.FormatterOptions {
	return formatters.FormatterOptions{
		NoColor:   a.eff.NoColor,
		ShowInput: a.eff.ShowInput,
		Summary:   summary,
	}
}

// writeOutput prints result to stdout, or to the --output file with owner-only
// permissions since it may contain candidate text
func (a *app) writeOutput(result string) error {
	if a.opts.output == "" {
		fmt.Fprintln(a.opts.stdout, result)
		return nil
	}

	if strings.Contains(a.opts.output, "..") {
		return fmt.Errorf("path traversal not allowed in output path: %s", a.opts.output)
	}
	resolved, err := paths.ResolvePath(a.opts.output)
	if err != nil {
		return fmt.Errorf("invalid output file path: %w", err)
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return fmt.Errorf("invalid output file path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0700); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}
	if err := os.WriteFile(abs, []byte(result+"\n"), 0600); err != nil {
		return fmt.Errorf("error writing to output file: %w", err)
	}
	return nil
}

func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func isTerminalReader(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
