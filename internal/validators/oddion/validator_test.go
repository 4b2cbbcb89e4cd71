// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package oddion

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
		{"suffix only", "ion", true},
		{"five letters", "llion", true},
		{"eleven letters", "imagination", true},
		{"any characters before suffix", "a ion", true},
		{"even length in runes", "éion", false},
		{"odd length in runes", "éeion", true},
		{"four letters", "lion", false},
		{"extra letter", "ionn", false},
		{"ten letters", "imagiation", false},
		{"two letters", "on", false},
		{"odd without suffix", "lilon", false},
		{"suffix twice", "ionion", false},
		{"uppercase suffix", "ION", false},
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

	assert.Equal(t, "ODD_ION", info.Name)
	assert.Equal(t, "L", info.Letter)
	for _, s := range info.Accepts {
		got, _ := v.Validate(s)
		assert.True(t, got, s)
	}
	for _, s := range info.Rejects {
		got, _ := v.Validate(s)
		assert.False(t, got, s)
	}
}
