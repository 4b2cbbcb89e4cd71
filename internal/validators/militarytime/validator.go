// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package militarytime

import (
	"regexp"

	"rulecheck/internal/validators"
)

// hour is 00-23 with the leading zero optional for 1-9
const hour = `(?:0?[1-9]|00|1\d|2[0-3])`

// Validator checks that an input is a 24-hour clock time
type Validator struct {
	pattern string
	regex   *regexp.Regexp
}

// NewValidator creates and returns a new military time Validator
func NewValidator() *Validator {
	v := &Validator{
		// one alternative per separator so ':' and '.' are never mixed
		pattern: hour + `:[0-5]\d(?::[0-5]\d)?|` + hour + `\.[0-5]\d(?:\.[0-5]\d)?`,
	}
	v.regex = validators.Whole(v.pattern)
	return v
}

// Validate implements the rule.Validator interface
func (v *Validator) Validate(input string) (bool, error) {
	return v.regex.MatchString(input), nil
}
