// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package oddion

import (
	"regexp"

	"rulecheck/internal/validators"
)

// Validator checks that an input has an odd length and ends in "ion"
type Validator struct {
	pattern string
	regex   *regexp.Regexp
}

// NewValidator creates and returns a new odd "ion" Validator
func NewValidator() *Validator {
	v := &Validator{
		// pairs of characters keep the length odd
		pattern: `(?:..)*ion`,
	}
	v.regex = validators.Whole(v.pattern)
	return v
}

// Validate implements the rule.Validator interface
func (v *Validator) Validate(input string) (bool, error) {
	return v.regex.MatchString(input), nil
}
