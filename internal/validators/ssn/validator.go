// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ssn

import (
	"regexp"

	"rulecheck/internal/validators"
)

// Validator checks that an input is a well-formed Social Security Number.
//
// The pattern captures the area, group and serial numbers; the SSA
// exclusions are applied to the captured groups afterwards since RE2 has no
// lookahead.
type Validator struct {
	pattern string
	regex   *regexp.Regexp
}

// NewValidator creates and returns a new SSN Validator
func NewValidator() *Validator {
	v := &Validator{
		// XXX-XX-XXXX, XXX XX XXXX or XXXXXXXXX
		pattern: `(\d{3})[- ]?(\d{2})[- ]?(\d{4})`,
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
	return isValidSSN(groups[1], groups[2], groups[3]), nil
}

// isValidSSN applies the SSA rules: the area number is never 000, 666 or
// 900-999, the group number is never 00 and the serial number is never 0000.
func isValidSSN(area, group, serial string) bool {
	if area == "000" || area == "666" || area[0] == '9' {
		return false
	}
	if group == "00" {
		return false
	}
	return serial != "0000"
}
