// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package areacode

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_CachesSuccess(t *testing.T) {
	loader := &mockLoader{set: NewSet("234")}
	p := NewProvider(loader, "codes.txt", zerolog.Nop())

	for i := 0; i < 3; i++ {
		set, err := p.Get(context.Background())
		require.NoError(t, err)
		assert.True(t, set.Contains("234"))
	}
	assert.Equal(t, 1, loader.calls)
	assert.Equal(t, []string{"codes.txt"}, loader.sources)
}

func TestProvider_RetriesAfterFailure(t *testing.T) {
	loadErr := errors.New("missing file")
	loader := &mockLoader{err: loadErr}
	p := NewProvider(loader, "codes.txt", zerolog.Nop())

	_, err := p.Get(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, loadErr)

	loader.err = nil
	loader.set = NewSet("212")

	set, err := p.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, set.Contains("212"))
	assert.Equal(t, 2, loader.calls)
}

func TestProvider_NoLoader(t *testing.T) {
	p := NewProvider(nil, "", zerolog.Nop())

	_, err := p.Get(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestStaticProvider(t *testing.T) {
	p := NewStaticProvider(NewSet("234"))

	set, err := p.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, set.Size())
}

func TestProvider_ConcurrentGet(t *testing.T) {
	loader := &mockLoader{set: NewSet("234")}
	p := NewProvider(loader, "codes.txt", zerolog.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			set, err := p.Get(context.Background())
			assert.NoError(t, err)
			assert.True(t, set.Contains("234"))
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, loader.calls)
}
