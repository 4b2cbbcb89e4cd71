// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package rostername

import "rulecheck/internal/help"

// GetCheckInfo returns standardized information about the roster name rule
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "ROSTER_NAME",
		Letter:           "D",
		ShortDescription: "Class roster name (Last, First M.)",
		DetailedDescription: `Accepts a name written the way it appears on a class roster: the last
name, a comma and a space, then the first name. The first name may be
followed by one or more middle initials, either all with periods or all
without, or by a single spelled-out middle name.

Name parts may contain hyphens and apostrophes and the accented letters
commonly found in European names.`,
		Pattern: v.pattern,
		Accepts: []string{"Smith, John", "o'malley-Smith, Jones", "Smith, Jones J. R.", "Smith, Jones J R", "Müller, José"},
		Rejects: []string{"Smith, Jones J. R", "Smith. Jones J.", "Smith", "Smith Smith Smith", "Smith,John"},
		Examples: []string{
			`rulecheck validate ROSTER_NAME "Smith, John Q."`,
		},
	}
}
