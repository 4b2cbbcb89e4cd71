// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package password

import "rulecheck/internal/help"

// GetCheckInfo returns standardized information about the password rule
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "PASSWORD",
		Letter:           "K",
		ShortDescription: "Strong password (10+ characters, mixed classes)",
		DetailedDescription: `Accepts a password of at least ten characters that contains a digit, a
lowercase letter, an uppercase letter and a punctuation mark or symbol.

The same lowercase letter may not appear three or more times in a row.`,
		Pattern:        v.pattern,
		AuxiliaryCheck: "digit, lowercase, uppercase and punctuation required; no lowercase letter repeated 3+ times in a row",
		Accepts:        []string{"48as4tAa1!", "48as4tAaa1!", "48as4tA1!!!", "48as4tAa1["},
		Rejects:        []string{"8as4tAa1!", "48as4tAaaa1!", "48as4tAa1", "abcdefghij", "12345"},
		Examples: []string{
			"rulecheck validate PASSWORD '48as4tAa1!'",
			"rulecheck validate K '48as4tAa1!' --show-input",
		},
	}
}
