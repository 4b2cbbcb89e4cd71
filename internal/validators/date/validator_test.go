// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package date

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
		{"ordinary date", "09-22-1992", true},
		{"year zero", "09-22-0000", true},
		{"year 9999", "09-22-9999", true},
		{"leap day", "02-29-2016", true},
		{"leap day in century year", "02-29-1900", true},
		{"leap day in non-leap year", "02-29-2017", false},
		{"april 31", "04-31-2020", false},
		{"june 31", "06-31-2020", false},
		{"september 31", "09-31-2016", false},
		{"november 31", "11-31-2020", false},
		{"december 31", "12-31-2020", true},
		{"month 13", "13-01-2020", false},
		{"month 00", "00-29-2016", false},
		{"day 00", "01-00-2016", false},
		{"all zero", "00-00-0000", false},
		{"day 32", "01-32-2020", false},
		{"single digit month", "9-22-1992", false},
		{"slashes", "09/22/1992", false},
		{"two digit year", "09-22-92", false},
		{"trailing text", "09-22-1992T", false},
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

func TestValidator_Gregorian(t *testing.T) {
	v := NewValidator(WithGregorian())

	tests := []struct {
		input string
		want  bool
	}{
		{"02-29-1900", false},
		{"02-29-2000", true},
		{"02-29-2016", true},
		{"02-29-2017", false},
		{"04-31-2000", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := v.Validate(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckPlausible(t *testing.T) {
	assert.True(t, CheckPlausible("02", "29", "2016"))
	assert.False(t, CheckPlausible("02", "29", "2017"))
	assert.False(t, CheckPlausible("00", "10", "2016"))
	assert.False(t, CheckPlausible("10", "00", "2016"))
	assert.False(t, CheckPlausible("11", "31", "2016"))
	assert.True(t, CheckPlausible("02", "28", "2017"))
	// only the 29th is checked against the year
	assert.True(t, CheckPlausible("02", "30", "2016"))
}

func TestValidator_Idempotent(t *testing.T) {
	v := NewValidator()
	for i := 0; i < 3; i++ {
		got, err := v.Validate("02-29-2017")
		require.NoError(t, err)
		assert.False(t, got)
	}
}

func TestGetCheckInfo(t *testing.T) {
	v := NewValidator()
	info := v.GetCheckInfo()

	assert.Equal(t, "DATE", info.Name)
	assert.Equal(t, "E", info.Letter)
	for _, s := range info.Accepts {
		got, _ := v.Validate(s)
		assert.True(t, got, s)
	}
	for _, s := range info.Rejects {
		got, _ := v.Validate(s)
		assert.False(t, got, s)
	}
	assert.Contains(t, NewValidator(WithGregorian()).GetCheckInfo().AuxiliaryCheck, "Gregorian")
}
