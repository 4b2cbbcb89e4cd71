// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package rule

import (
	"errors"
	"fmt"
	"strings"

	"rulecheck/internal/security"
)

// ID identifies one of the fixed validation rules
type ID string

const (
	SSN          ID = "SSN"
	USPhone      ID = "US_PHONE"
	Email        ID = "EMAIL"
	RosterName   ID = "ROSTER_NAME"
	Date         ID = "DATE"
	HouseAddress ID = "HOUSE_ADDRESS"
	CityStateZip ID = "CITY_STATE_ZIP"
	MilitaryTime ID = "MILITARY_TIME"
	USCurrency   ID = "US_CURRENCY"
	URL          ID = "URL"
	Password     ID = "PASSWORD"
	OddIon       ID = "ODD_ION"
)

// ErrUnknownRule is returned when a rule identifier does not name a defined rule
var ErrUnknownRule = errors.New("unknown rule")

// All lists every rule in option-letter order (A through L)
var All = []ID{
	SSN, USPhone, Email, RosterName, Date, HouseAddress,
	CityStateZip, MilitaryTime, USCurrency, URL, Password, OddIon,
}

// Letter returns the single-letter option used by the interactive session
func (id ID) Letter() string {
	for i, r := range All {
		if r == id {
			return string(rune('A' + i))
		}
	}
	return ""
}

// Valid reports whether id is one of the defined rules
func (id ID) Valid() bool {
	return id.Letter() != ""
}

func (id ID) String() string {
	return string(id)
}

// Parse resolves a rule name or option letter to an ID.
// Names are matched case-insensitively; letters must be upper case.
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if len(s) == 1 && s[0] >= 'A' && int(s[0]-'A') < len(All) {
		return All[s[0]-'A'], nil
	}

	id := ID(strings.ToUpper(strings.ReplaceAll(s, "-", "_")))
	if id.Valid() {
		return id, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRule, s)
}

// Validator decides whether a candidate string satisfies one rule.
// A mismatch is reported as false with a nil error; an error means the
// rule could not be evaluated at all.
type Validator interface {
	Validate(input string) (bool, error)
}

// Request is a single rule evaluation
type Request struct {
	Rule  ID
	Input string
}

// Result is the outcome of evaluating one Request
type Result struct {
	Rule  ID
	Input *security.SecureString
	Valid bool
	Err   error

	// Line is the 1-based source line for batch input, 0 otherwise
	Line int
}

// NewResult builds a Result, copying input into a SecureString
func NewResult(id ID, input string, valid bool, err error) Result {
	return Result{
		Rule:  id,
		Input: security.NewSecureString(input),
		Valid: valid,
		Err:   err,
	}
}

// Status returns "valid", "invalid" or "error"
func (r Result) Status() string {
	switch {
	case r.Err != nil:
		return "error"
	case r.Valid:
		return "valid"
	default:
		return "invalid"
	}
}

// Clear wipes the candidate text from memory
func (r *Result) Clear() {
	if r.Input != nil {
		r.Input.Clear()
		r.Input = nil
	}
}
