// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ssn

import "rulecheck/internal/help"

// GetCheckInfo returns standardized information about the SSN rule
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "SSN",
		Letter:           "A",
		ShortDescription: "Social Security Number (XXX-XX-XXXX)",
		DetailedDescription: `Accepts a nine digit Social Security Number written as three groups of
3, 2 and 4 digits. Each group may be separated from the next by a hyphen or
a space, or the digits may run together.

Area numbers 000, 666 and 900-999 are never issued, nor are group 00 or
serial 0000, so those inputs are rejected.`,
		Pattern:        v.pattern,
		AuxiliaryCheck: "area not 000/666/9xx, group not 00, serial not 0000",
		Accepts:        []string{"555-55-5555", "555555555", "555 55 5555"},
		Rejects:        []string{"666-55-5555", "555-00-5555", "555-55-0000", "5555-5-5555"},
		Examples: []string{
			"rulecheck validate SSN 555-55-5555",
			"rulecheck validate A 555555555",
		},
	}
}
