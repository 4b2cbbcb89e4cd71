// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package password

import (
	"regexp"
	"unicode"

	"rulecheck/internal/validators"
)

// MinLength is the minimum password length in characters
const MinLength = 10

// Validator checks that an input is a strong password.
//
// The pattern enforces the length; the character class requirements and the
// repeated lowercase check are applied in code since RE2 has no lookahead or
// backreferences.
type Validator struct {
	pattern string
	regex   *regexp.Regexp
}

// NewValidator creates and returns a new password Validator
func NewValidator() *Validator {
	v := &Validator{
		pattern: `.{10,}`,
	}
	v.regex = validators.Whole(v.pattern)
	return v
}

// Validate implements the rule.Validator interface
func (v *Validator) Validate(input string) (bool, error) {
	if !v.regex.MatchString(input) {
		return false, nil
	}
	return hasRequiredClasses(input) && !hasLowercaseRun(input, 3), nil
}

// hasRequiredClasses reports whether s holds a digit, a lowercase letter,
// an uppercase letter and a punctuation or symbol character.
func hasRequiredClasses(s string) bool {
	var digit, lower, upper, punct bool
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			punct = true
		}
	}
	return digit && lower && upper && punct
}

// hasLowercaseRun reports whether s repeats one ASCII lowercase letter n or
// more times in a row.
func hasLowercaseRun(s string, n int) bool {
	var prev rune
	count := 0
	for _, r := range s {
		if r >= 'a' && r <= 'z' && r == prev {
			count++
		} else {
			count = 1
		}
		if r >= 'a' && r <= 'z' && count >= n {
			return true
		}
		prev = r
	}
	return false
}
