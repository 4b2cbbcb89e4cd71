// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package address

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
		{"boulevard abbreviation", "123 StreetName blvd", true},
		{"street abbreviation", "123 StreetName st", true},
		{"avenue abbreviation", "123 StreetName ave", true},
		{"avenue", "123 StreetName avenue", true},
		{"boulevard", "123 StreetName boulevard", true},
		{"street", "123 StreetName street", true},
		{"trailing period", "123 Main St.", true},
		{"unit token", "1234 Apt5 Main St.", true},
		{"trailing direction", "123 Main St. NW", true},
		{"with city state zip", "123 StreetName street, lakewood WA 98498", false},
		{"no number", "streetName street", false},
		{"two digit number", "12 Main St", false},
		{"no road type", "123 Main", false},
		{"one letter street", "123 M St", false},
		{"digits in street name", "123 M4in St", false},
		{"trailing space", "123 Main St. ", false},
		{"trailing newline", "123 Main St.\n", false},
		{"trailing tab", "123 Main St.\t", false},
		{"tab and newline separators", "123\tMain\nSt", false},
		{"double space", "123  Main St", false},
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

	assert.Equal(t, "HOUSE_ADDRESS", info.Name)
	assert.Equal(t, "F", info.Letter)
	for _, s := range info.Accepts {
		got, _ := v.Validate(s)
		assert.True(t, got, s)
	}
	for _, s := range info.Rejects {
		got, _ := v.Validate(s)
		assert.False(t, got, s)
	}
}
