// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package resilience

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantType  ErrorType
		retryable bool
	}{
		{"missing file", fmt.Errorf("open: %w", fs.ErrNotExist), ErrorTypeResourceNotFound, false},
		{"permission", fmt.Errorf("open: %w", fs.ErrPermission), ErrorTypePermanent, false},
		{"deadline", fmt.Errorf("get: %w", context.DeadlineExceeded), ErrorTypeTimeout, true},
		{"cancelled", context.Canceled, ErrorTypePermanent, false},
		{"no such key", &smithy.GenericAPIError{Code: "NoSuchKey", Message: "gone"}, ErrorTypeResourceNotFound, false},
		{"access denied", &smithy.GenericAPIError{Code: "AccessDenied"}, ErrorTypePermanent, false},
		{"slow down", &smithy.GenericAPIError{Code: "SlowDown"}, ErrorTypeRateLimit, true},
		{"server fault", &smithy.GenericAPIError{Code: "Weird", Fault: smithy.FaultServer}, ErrorTypeServiceUnavailable, true},
		{"plain", errors.New("boom"), ErrorTypeUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyError(tt.err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantType, got.Type, got.Type.String())
			assert.Equal(t, tt.retryable, got.IsRetryable())
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestClassifyError_Nil(t *testing.T) {
	assert.Nil(t, ClassifyError(nil))
}

func TestClassifyError_KeepsExistingClassification(t *testing.T) {
	transient := NewTransientError("temporary", nil)
	wrapped := fmt.Errorf("loading: %w", transient)

	got := ClassifyError(wrapped)
	assert.Same(t, transient, got)
	assert.True(t, got.IsRetryable())
}
