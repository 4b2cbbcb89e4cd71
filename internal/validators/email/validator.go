// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package email

import (
	"regexp"

	"rulecheck/internal/validators"
)

// Validator checks that an input is a plain email address
type Validator struct {
	pattern string
	regex   *regexp.Regexp
}

// NewValidator creates and returns a new email Validator
func NewValidator() *Validator {
	v := &Validator{
		// local and domain parts are alphanumeric runs joined by single '.' or '-'
		pattern: `[a-zA-Z0-9]+(?:[.-]?[a-zA-Z0-9]+)*@[a-zA-Z0-9]+(?:[.-]?[a-zA-Z0-9]+)*\.[a-zA-Z]{2,7}`,
	}
	v.regex = validators.Whole(v.pattern)
	return v
}

// Validate implements the rule.Validator interface
func (v *Validator) Validate(input string) (bool, error) {
	return v.regex.MatchString(input), nil
}
