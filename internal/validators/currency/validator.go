// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package currency

import (
	"regexp"

	"rulecheck/internal/validators"
)

// Validator checks that an input is a U.S. dollar amount such as
// "$123,456.78"
type Validator struct {
	pattern string
	regex   *regexp.Regexp
}

// NewValidator creates and returns a new currency Validator
func NewValidator() *Validator {
	v := &Validator{
		// comma-grouped or plain dollars, optional cents
		pattern: `\$(?:\d{1,3}(?:,\d{3})+|\d+)(?:\.\d{2})?`,
	}
	v.regex = validators.Whole(v.pattern)
	return v
}

// Validate implements the rule.Validator interface
func (v *Validator) Validate(input string) (bool, error) {
	return v.regex.MatchString(input), nil
}
