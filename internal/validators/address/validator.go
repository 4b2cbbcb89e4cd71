// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package address

import (
	"regexp"

	"rulecheck/internal/validators"
)

// Validator checks that an input is a street address line such as
// "123 Main St."
type Validator struct {
	pattern string
	regex   *regexp.Regexp
}

// NewValidator creates and returns a new house address Validator
func NewValidator() *Validator {
	v := &Validator{
		// number, unit, street name, road type, trailing token; tokens are
		// separated by single spaces and optional tokens carry their own
		pattern: `\d{3,}(?: \w{1,5})? [a-zA-Z]{2,30} [a-zA-Z]{2,15}\.?(?: \w{1,5})?`,
	}
	v.regex = validators.Whole(v.pattern)
	return v
}

// Validate implements the rule.Validator interface
func (v *Validator) Validate(input string) (bool, error) {
	return v.regex.MatchString(input), nil
}
