// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rulecheck/internal/formatters/shared"
	"rulecheck/internal/version"
)

// isolate keeps config discovery away from the developer's own files
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("RULECHECK_CONFIG_DIR", filepath.Join(dir, "cfg"))
	t.Chdir(dir)
	return dir
}

func run(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestValidate_ExitCodes(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"valid ssn", []string{"validate", "SSN", "123-45-6789"}, exitValid},
		{"invalid ssn", []string{"validate", "SSN", "666-45-6789"}, exitInvalid},
		{"letter form", []string{"validate", "L", "station"}, exitValid},
		{"lowercase name", []string{"validate", "us-phone", "234-555-1234"}, exitValid},
		{"unlisted area code", []string{"validate", "B", "199-555-1234"}, exitInvalid},
		{"unknown rule", []string{"validate", "NOPE", "x"}, exitError},
		{"empty input", []string{"validate", "EMAIL", ""}, exitInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, _ := run(t, "", tt.args...)
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestValidate_TextOutputHidesInput(t *testing.T) {
	isolate(t)

	code, stdout, _ := run(t, "", "validate", "PASSWORD", "Str0ng!Pass")
	assert.Equal(t, exitValid, code)
	assert.Contains(t, stdout, "[VALID  ]")
	assert.Contains(t, stdout, "[HIDDEN]")
	assert.NotContains(t, stdout, "Str0ng!Pass")
}

func TestValidate_JSONShowInput(t *testing.T) {
	isolate(t)

	code, stdout, _ := run(t, "", "validate", "E", "02-29-2024", "--format", "json", "--show-input")
	require.Equal(t, exitValid, code)

	var resp shared.JSONResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "DATE", resp.Results[0].Rule)
	assert.Equal(t, "02-29-2024", resp.Results[0].Input)
	assert.True(t, resp.Results[0].Valid)
}

func TestValidate_UnknownRuleReported(t *testing.T) {
	isolate(t)

	code, stdout, _ := run(t, "", "validate", "NOPE", "x", "--format", "csv")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stdout, "unknown rule")
}

func TestValidate_AreaCodeFile(t *testing.T) {
	dir := isolate(t)
	file := filepath.Join(dir, "codes.txt")
	require.NoError(t, os.WriteFile(file, []byte("# local list\n555\n"), 0600))

	code, _, _ := run(t, "", "validate", "B", "555-555-1234", "--area-codes", file)
	assert.Equal(t, exitValid, code)

	code, _, _ = run(t, "", "validate", "B", "234-555-1234", "--area-codes", file)
	assert.Equal(t, exitInvalid, code)

	code, stdout, _ := run(t, "", "validate", "B", "234-555-1234", "--area-codes", filepath.Join(dir, "missing.txt"), "--format", "json")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stdout, "area code")
}

func TestValidate_UnknownFormat(t *testing.T) {
	isolate(t)

	code, _, stderr := run(t, "", "validate", "SSN", "123-45-6789", "--format", "xml")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "unsupported format 'xml'")
}

func TestValidate_WrongArgCount(t *testing.T) {
	isolate(t)

	code, _, stderr := run(t, "", "validate", "SSN")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "accepts 2 arg(s)")
}

func TestBatch_Stdin(t *testing.T) {
	isolate(t)

	input := "# header\nSSN\t123-45-6789\nC\tnot-an-email\n\n"
	code, stdout, _ := run(t, input, "batch")
	assert.Equal(t, exitInvalid, code)
	assert.Contains(t, stdout, "2 checked: 1 valid, 1 invalid, 0 error(s)")
}

func TestBatch_FileAndErrors(t *testing.T) {
	dir := isolate(t)
	file := filepath.Join(dir, "batch.tsv")
	content := "A\t123-45-6789\nnot a request\nZZ\tvalue\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0600))

	code, stdout, _ := run(t, "", "batch", "--file", file, "--format", "json")
	assert.Equal(t, exitError, code)

	var resp shared.JSONResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	require.Len(t, resp.Results, 3)
	require.NotNil(t, resp.Summary)
	assert.Equal(t, 1, resp.Summary.Valid)
	assert.Equal(t, 2, resp.Summary.Errors)
	assert.Equal(t, 2, resp.Results[1].LineNumber)
}

func TestBatch_Workers(t *testing.T) {
	isolate(t)

	var b strings.Builder
	for i := 0; i < 50; i++ {
		b.WriteString("SSN\t123-45-6789\nODD_ION\tstation\n")
	}
	code, stdout, _ := run(t, b.String(), "batch", "--workers", "4", "--format", "json")
	require.Equal(t, exitValid, code)

	var resp shared.JSONResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	require.Len(t, resp.Results, 100)
	for i, r := range resp.Results {
		assert.Equal(t, i+1, r.LineNumber)
	}
}

func TestBatch_MissingFile(t *testing.T) {
	dir := isolate(t)

	code, _, stderr := run(t, "", "batch", "--file", filepath.Join(dir, "nope.tsv"))
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "error opening batch file")
}

func TestBatch_OutputFile(t *testing.T) {
	dir := isolate(t)
	outFile := filepath.Join(dir, "reports", "out.csv")

	code, stdout, _ := run(t, "H\t23:59\n", "batch", "--format", "csv", "--output", outFile)
	assert.Equal(t, exitValid, code)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Line,Rule,Letter,Status,Input,Error\n"))
	assert.Contains(t, string(data), "1,MILITARY_TIME,H,valid,[HIDDEN],")

	info, err := os.Stat(outFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestBatch_OutputTraversalRejected(t *testing.T) {
	isolate(t)

	code, _, stderr := run(t, "H\t23:59\n", "batch", "--output", "../escape.txt")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "path traversal not allowed")
}

func TestBatch_RulesFromConfig(t *testing.T) {
	dir := isolate(t)
	cfg := "defaults:\n  rules: SSN\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rulecheck.yaml"), []byte(cfg), 0600))

	code, stdout, _ := run(t, "SSN\t123-45-6789\nEMAIL\tnope\n", "batch")
	assert.Equal(t, exitValid, code)
	assert.Contains(t, stdout, "1 checked: 1 valid, 0 invalid, 0 error(s)")
}

func TestConfigProfile(t *testing.T) {
	dir := isolate(t)
	cfg := `defaults:
  format: text
profiles:
  machine:
    format: json
    description: JSON output
`
	file := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(file, []byte(cfg), 0600))

	code, stdout, _ := run(t, "", "validate", "SSN", "123-45-6789", "--config", file, "--profile", "machine")
	require.Equal(t, exitValid, code)
	assert.True(t, json.Valid([]byte(stdout)))

	code, _, stderr := run(t, "", "validate", "SSN", "123-45-6789", "--config", file, "--profile", "nope")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "profile 'nope' not found")

	code, stdout, _ = run(t, "", "profiles", "--config", file)
	assert.Equal(t, exitValid, code)
	assert.Contains(t, stdout, "machine")
	assert.Contains(t, stdout, "JSON output")
}

func TestConfig_BadFileFallsBack(t *testing.T) {
	dir := isolate(t)
	file := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(file, []byte("defaults: [unclosed"), 0600))

	code, _, stderr := run(t, "", "validate", "SSN", "123-45-6789", "--config", file)
	assert.Equal(t, exitValid, code)
	assert.Contains(t, stderr, "Using default configuration")
}

func TestSessionCommand(t *testing.T) {
	isolate(t)

	code, stdout, _ := run(t, "A\n123-45-6789\nQ\n", "session")
	assert.Equal(t, exitValid, code)
	assert.Equal(t, "A SSN: valid\n", stdout)
}

func TestRulesCommand(t *testing.T) {
	isolate(t)

	code, stdout, _ := run(t, "", "rules")
	assert.Equal(t, exitValid, code)
	assert.Contains(t, stdout, "Available Rules")
	assert.Contains(t, stdout, "ODD_ION")

	code, stdout, _ = run(t, "", "rules", "k")
	assert.Equal(t, exitValid, code)
	assert.Contains(t, stdout, "PASSWORD (K)")

	code, stdout, _ = run(t, "", "rules", "nope")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stdout, "Rule 'nope' not found")
}

func TestVersionCommand(t *testing.T) {
	isolate(t)

	code, stdout, _ := run(t, "", "version")
	assert.Equal(t, exitValid, code)
	assert.Equal(t, version.Info()+"\n", stdout)

	_, stdout, _ = run(t, "", "version", "--short")
	assert.Equal(t, version.Version+"\n", stdout)

	_, stdout, _ = run(t, "", "version", "--format", "json")
	var full map[string]string
	require.NoError(t, json.Unmarshal([]byte(stdout), &full))
	assert.Equal(t, version.Version, full["version"])
}

func TestDebugLogsToStderr(t *testing.T) {
	isolate(t)

	code, stdout, stderr := run(t, "", "validate", "SSN", "123-45-6789", "--debug", "--format", "json")
	assert.Equal(t, exitValid, code)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stderr, "configuration resolved")
	assert.Contains(t, stderr, "operation completed")
}
