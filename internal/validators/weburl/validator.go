// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package weburl

import (
	"regexp"

	"rulecheck/internal/validators"
)

// Validator checks that an input looks like a web or FTP address
type Validator struct {
	pattern string
	regex   *regexp.Regexp
}

// NewValidator creates and returns a new URL Validator
func NewValidator() *Validator {
	v := &Validator{
		// The character after "www" or the leading alphanumeric is any
		// character, so "example.com" and "wwwa.co" both pass.
		pattern: `(?:(?i:https?|ftps?)://)?` +
			`(?:www.|[a-zA-Z0-9].)[a-zA-Z0-9\-.]+\.[a-zA-Z]{2,6}` +
			`(?::\d{1,5})?` +
			`(?:/(?:$|[a-zA-Z0-9.,;?'+&%$#=~_\-]+))*`,
	}
	v.regex = validators.Whole(v.pattern)
	return v
}

// Validate implements the rule.Validator interface
func (v *Validator) Validate(input string) (bool, error) {
	return v.regex.MatchString(input), nil
}
