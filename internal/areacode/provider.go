// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package areacode

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLoadTimeout bounds a single load attempt
const DefaultLoadTimeout = 30 * time.Second

// Provider loads the area code set on first use and keeps it for the
// process lifetime. A failed load is not cached; the next Get tries again.
type Provider struct {
	loader  Loader
	source  string
	timeout time.Duration
	logger  zerolog.Logger

	mu  sync.Mutex
	set Set
}

// NewProvider creates a provider that reads source through loader
func NewProvider(loader Loader, source string, logger zerolog.Logger) *Provider {
	return &Provider{
		loader:  loader,
		source:  source,
		timeout: DefaultLoadTimeout,
		logger:  logger.With().Str("component", "areacode-provider").Logger(),
	}
}

// NewStaticProvider wraps an already loaded set
func NewStaticProvider(set Set) *Provider {
	return &Provider{set: set, logger: zerolog.Nop()}
}

// Get returns the loaded set, loading it if needed. Errors wrap
// ErrUnavailable.
func (p *Provider) Get(ctx context.Context) (Set, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.set != nil {
		return p.set, nil
	}
	if p.loader == nil {
		return nil, fmt.Errorf("%w: no loader configured", ErrUnavailable)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	set, err := p.loader.Load(ctx, p.source)
	if err != nil {
		p.logger.Error().Err(err).Str("source", p.source).Msg("area code list unavailable")
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	p.set = set
	return set, nil
}
