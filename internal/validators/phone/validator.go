// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package phone

import (
	"context"
	"fmt"
	"regexp"

	"rulecheck/internal/areacode"
	"rulecheck/internal/validators"
)

// CodeSource supplies the set of valid area codes. *areacode.Provider
// satisfies it.
type CodeSource interface {
	Get(ctx context.Context) (areacode.Set, error)
}

// Validator checks that an input is a ten digit U.S. phone number whose
// area code is in the reference list.
type Validator struct {
	pattern string
	regex   *regexp.Regexp
	codes   CodeSource
}

// NewValidator creates a phone Validator backed by codes
func NewValidator(codes CodeSource) *Validator {
	v := &Validator{
		// (NXX) or NXX, then XXX and XXXX with optional '-' or ' ' between
		pattern: `(?:\([2-9]\d{2}\)|[2-9]\d{2})[- ]?\d{3}[- ]?\d{4}`,
		codes:   codes,
	}
	v.regex = validators.Whole(v.pattern)
	return v
}

// Validate implements the rule.Validator interface
func (v *Validator) Validate(input string) (bool, error) {
	return v.ValidateContext(context.Background(), input)
}

// ValidateContext is Validate with a context bounding the one-time area
// code load. When the list cannot be loaded the result is false and the
// error wraps areacode.ErrUnavailable.
func (v *Validator) ValidateContext(ctx context.Context, input string) (bool, error) {
	if !v.regex.MatchString(input) {
		return false, nil
	}
	if v.codes == nil {
		return false, fmt.Errorf("%w: no area code source", areacode.ErrUnavailable)
	}

	set, err := v.codes.Get(ctx)
	if err != nil {
		return false, err
	}
	return set.Contains(AreaCode(input)), nil
}

// AreaCode extracts the area code from a shape-valid phone number: the
// three characters after a leading '(', otherwise the first three.
func AreaCode(input string) string {
	r := []rune(input)
	if len(r) > 0 && r[0] == '(' {
		if len(r) < 4 {
			return ""
		}
		return string(r[1:4])
	}
	if len(r) < 3 {
		return ""
	}
	return string(r[:3])
}
