// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package areacode

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for plain-text area code files.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a loader that reads one area code per line from a
// local file.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "areacode-file-loader").Logger(),
	}
}

// Load reads the file at path and returns its area codes as a Set.
func (l *fileLoader) Load(ctx context.Context, path string) (Set, error) {
	l.logger.Debug().Str("file", path).Msg("loading area code file")

	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to open area code file")
		return nil, fmt.Errorf("failed to open area code file %s: %w", path, err)
	}
	defer file.Close()

	set, skipped, err := ReadSet(ctx, file)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("error reading area code file")
		return nil, fmt.Errorf("error reading area code file %s: %w", path, err)
	}

	l.logger.Info().
		Str("file", path).
		Int("codes_loaded", set.Size()).
		Int("lines_skipped", skipped).
		Msg("area code file loaded")

	return set, nil
}

// ReadSet parses an area code list from r. Each non-blank line holds one
// code; surrounding whitespace is trimmed and lines starting with '#' are
// comments. Lines that are not exactly three digits are skipped and counted.
func ReadSet(ctx context.Context, r io.Reader) (Set, int, error) {
	set := newMapSet(512)
	skipped := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !isCode(line) {
			skipped++
			continue
		}
		set.add(line)
	}

	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	return set, skipped, nil
}

func isCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
