// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package email

import "rulecheck/internal/help"

// GetCheckInfo returns standardized information about the email rule
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "EMAIL",
		Letter:           "C",
		ShortDescription: "Email address",
		DetailedDescription: `Accepts an email address whose local part and domain are runs of letters
and digits, optionally joined by a single dot or hyphen. The address ends
with a dot and a two to seven letter top-level domain.

Quoted local parts, '+' tags, underscores and IP address domains are not
accepted.`,
		Pattern:  v.pattern,
		Accepts:  []string{"jane.doe@example.com", "j-d@mail.example.museum", "a1@b2.io"},
		Rejects:  []string{"jane..doe@example.com", ".jane@example.com", "jane@example.c", "jane+tag@example.com", "jane@example"},
		Examples: []string{"rulecheck validate EMAIL jane.doe@example.com"},
	}
}
