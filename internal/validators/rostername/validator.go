// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package rostername

import (
	"regexp"

	"rulecheck/internal/validators"
)

// letters is the set of name letters, including the accented letters common
// in European names.
const letters = `a-zA-ZàáâäãåąčćęèéêëėįìíîïłńòóôöõøùúûüųūÿýżźñçčšžÀÁÂÄÃÅĄĆČĖĘÈÉÊËÌÍÎÏĮŁŃÒÓÔÖÕØÙÚÛÜŲŪŸÝŻŹÑßÇŒÆČŠŽ∂ð`

// Validator checks that an input is a class roster name:
// "Last, First" followed by middle initials or one middle name.
type Validator struct {
	pattern string
	regex   *regexp.Regexp
}

// NewValidator creates and returns a new roster name Validator
func NewValidator() *Validator {
	letter := "[" + letters + "]"
	// a leading apostrophe is allowed; hyphens and apostrophes must sit
	// between letters
	name := "'?" + letter + "(?:['-]?" + letter + ")*"

	// Last, First then all-dotted initials, bare initials or one middle name
	v := &Validator{
		pattern: name + ", " + name +
			"(?:(?: " + letter + `\.)+|(?: ` + letter + ")+| " + name + ")?",
	}
	v.regex = validators.Whole(v.pattern)
	return v
}

// Validate implements the rule.Validator interface
func (v *Validator) Validate(input string) (bool, error) {
	return v.regex.MatchString(input), nil
}
