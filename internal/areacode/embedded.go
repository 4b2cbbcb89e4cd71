// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package areacode

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// defaultList is the built-in list of U.S. area codes, used when no file
// is configured.
//
//go:embed data/areacodes.txt
var defaultList string

type embeddedLoader struct {
	logger zerolog.Logger
}

// NewEmbeddedLoader creates a loader for the built-in area code list.
// The source argument to Load is ignored.
func NewEmbeddedLoader(logger zerolog.Logger) Loader {
	return &embeddedLoader{
		logger: logger.With().Str("component", "areacode-embedded-loader").Logger(),
	}
}

func (l *embeddedLoader) Load(ctx context.Context, _ string) (Set, error) {
	set, _, err := ReadSet(ctx, strings.NewReader(defaultList))
	if err != nil {
		return nil, fmt.Errorf("error reading built-in area code list: %w", err)
	}
	l.logger.Debug().Int("codes_loaded", set.Size()).Msg("built-in area code list loaded")
	return set, nil
}
