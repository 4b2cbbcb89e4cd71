// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package date

import (
	"regexp"
	"strconv"

	"rulecheck/internal/validators"
)

// Option configures a date Validator
type Option func(*Validator)

// WithGregorian applies the full Gregorian leap year rule, so that century
// years are leap years only when divisible by 400.
func WithGregorian() Option {
	return func(v *Validator) {
		v.gregorian = true
	}
}

// Validator checks that an input is a plausible MM-DD-YYYY date
type Validator struct {
	pattern   string
	regex     *regexp.Regexp
	gregorian bool
}

// NewValidator creates and returns a new date Validator
func NewValidator(opts ...Option) *Validator {
	v := &Validator{
		pattern: `(0\d|1[0-2])-([0-2]\d|3[01])-(\d{4})`,
	}
	for _, opt := range opts {
		opt(v)
	}
	v.regex = validators.Whole(v.pattern)
	return v
}

// Validate implements the rule.Validator interface
func (v *Validator) Validate(input string) (bool, error) {
	groups := v.regex.FindStringSubmatch(input)
	if groups == nil {
		return false, nil
	}
	if v.gregorian {
		return CheckPlausibleGregorian(groups[1], groups[2], groups[3]), nil
	}
	return CheckPlausible(groups[1], groups[2], groups[3]), nil
}

// CheckPlausible reports whether a shape-valid date can exist. Month and day
// 00 are rejected, as are day 31 in a thirty day month and February 29 when
// the year is not divisible by 4. Other February days up to 31 pass.
func CheckPlausible(month, day, year string) bool {
	return checkPlausible(month, day, year, func(y int) bool { return y%4 == 0 })
}

// CheckPlausibleGregorian is CheckPlausible with the century exception
func CheckPlausibleGregorian(month, day, year string) bool {
	return checkPlausible(month, day, year, func(y int) bool {
		return y%4 == 0 && (y%100 != 0 || y%400 == 0)
	})
}

func checkPlausible(month, day, year string, leap func(int) bool) bool {
	if month == "00" || day == "00" {
		return false
	}

	switch month {
	case "02":
		if day == "29" {
			y, err := strconv.Atoi(year)
			if err != nil || !leap(y) {
				return false
			}
		}
	case "04", "06", "09", "11":
		if day == "31" {
			return false
		}
	}
	return true
}
