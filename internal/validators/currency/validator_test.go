// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Validate(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"grouped with cents", "$123,456,789.00", true},
		{"grouped", "$123,456,789", true},
		{"zero with cents", "$0.00", true},
		{"plain digits", "$1000", true},
		{"plain digits with cents", "$1000.99", true},
		{"small group", "$1,000", true},
		{"leading minus", "-$123,456,789.00", false},
		{"minus after sign", "$-123,456,789", false},
		{"negative zero", "$-0.00", false},
		{"no dollar sign with cents", "123,456,789.00", false},
		{"no dollar sign", "123,456,789", false},
		{"zero", "0", false},
		{"sign only", "$", false},
		{"group of four", "$1,2345", false},
		{"group of two", "$12,34", false},
		{"one cent digit", "$5.5", false},
		{"three cent digits", "$5.555", false},
		{"comma for cents", "$5,55", false},
		{"cents only", "$.99", false},
		{"trailing text", "$5.00 USD", false},
		{"empty", "", false},
		{"blank", " ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.Validate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetCheckInfo(t *testing.T) {
	v := NewValidator()
	info := v.GetCheckInfo()

	assert.Equal(t, "US_CURRENCY", info.Name)
	assert.Equal(t, "I", info.Letter)
	for _, s := range info.Accepts {
		got, _ := v.Validate(s)
		assert.True(t, got, s)
	}
	for _, s := range info.Rejects {
		got, _ := v.Validate(s)
		assert.False(t, got, s)
	}
}
