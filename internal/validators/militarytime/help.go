// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package militarytime

import "rulecheck/internal/help"

// GetCheckInfo returns standardized information about the military time rule
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "MILITARY_TIME",
		Letter:           "H",
		ShortDescription: "24-hour time (HH:MM[:SS])",
		DetailedDescription: `Accepts a time on the 24-hour clock as hours and minutes with optional
seconds. Hours run from 00 to 23 and the leading zero may be dropped for
1 through 9. Minutes and seconds run from 00 to 59 and always take two
digits.

The parts are separated by colons or by periods, but not a mix of both.`,
		Pattern:  v.pattern,
		Accepts:  []string{"23:23:23", "00:00:00", "01:01:01", "7:45", "13.30.15"},
		Rejects:  []string{"1:1:1", "24:00:00", "12:60", "12:30.15", "1230"},
		Examples: []string{"rulecheck validate MILITARY_TIME 23:59:59"},
	}
}
