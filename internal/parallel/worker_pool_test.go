// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package parallel

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rulecheck/internal/observability"
	"rulecheck/internal/rule"
)

type countingEvaluator struct {
	calls atomic.Int64
}

func (e *countingEvaluator) Evaluate(ctx context.Context, req rule.Request) rule.Result {
	e.calls.Add(1)
	return rule.NewResult(req.Rule, req.Input, len(req.Input)%2 == 0, nil)
}

func requests(n int) []rule.Request {
	reqs := make([]rule.Request, n)
	for i := range reqs {
		reqs[i] = rule.Request{Rule: rule.OddIon, Input: fmt.Sprintf("%0*d", i%5+1, i)}
	}
	return reqs
}

func TestEvaluateAll_Order(t *testing.T) {
	eval := &countingEvaluator{}
	reqs := requests(500)

	results, err := EvaluateAll(context.Background(), 6, eval, nil, reqs)
	require.NoError(t, err)
	require.Len(t, results, len(reqs))
	assert.Equal(t, int64(len(reqs)), eval.calls.Load())

	for i, res := range results {
		assert.Equal(t, reqs[i].Input, res.Input.String())
		assert.Equal(t, len(reqs[i].Input)%2 == 0, res.Valid)
	}
}

func TestEvaluateAll_Empty(t *testing.T) {
	results, err := EvaluateAll(context.Background(), 4, &countingEvaluator{}, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestEvaluateAll_ZeroWorkers(t *testing.T) {
	results, err := EvaluateAll(context.Background(), 0, &countingEvaluator{}, nil, requests(3))
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestEvaluateAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := EvaluateAll(ctx, 4, &countingEvaluator{}, nil, requests(100))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, results)
}

func TestEvaluateAll_Observed(t *testing.T) {
	observer := observability.NewStandardObserver(observability.ObservabilityDebug, zerolog.Nop())

	_, err := EvaluateAll(context.Background(), 3, &countingEvaluator{}, observer, requests(10))
	require.NoError(t, err)
	assert.Equal(t, uint64(10), observer.Operations())
}
