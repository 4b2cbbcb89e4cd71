// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package citystatezip

import (
	"regexp"
	"strings"

	"rulecheck/internal/validators"
)

// States lists the 50 USPS state codes
var States = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
	"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD",
	"MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
	"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC",
	"SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
}

// Validator checks that an input is a "City, ST 12345" line
type Validator struct {
	pattern string
	regex   *regexp.Regexp
}

// NewValidator creates and returns a new city/state/zip Validator
func NewValidator() *Validator {
	v := &Validator{
		pattern: `[A-Za-z][A-Za-z .'-]*, (` + strings.Join(States, "|") + `) \d{5}(?:-\d{4})?`,
	}
	v.regex = validators.Whole(v.pattern)
	return v
}

// Validate implements the rule.Validator interface
func (v *Validator) Validate(input string) (bool, error) {
	return v.regex.MatchString(input), nil
}
