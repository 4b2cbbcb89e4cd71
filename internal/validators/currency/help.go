// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package currency

import "rulecheck/internal/help"

// GetCheckInfo returns standardized information about the currency rule
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "US_CURRENCY",
		Letter:           "I",
		ShortDescription: "U.S. dollar amount ($1,234.56)",
		DetailedDescription: `Accepts a dollar amount starting with '$'. The dollars are either plain
digits or grouped in threes with commas, and may be followed by a period
and exactly two digits of cents.

Negative amounts are not accepted.`,
		Pattern:  v.pattern,
		Accepts:  []string{"$123,456,789.00", "$123,456,789", "$0.00", "$1000"},
		Rejects:  []string{"-$123,456,789.00", "$-123,456,789", "123,456,789.00", "$", "$1,2345", "$5.5"},
		Examples: []string{"rulecheck validate US_CURRENCY '$1,234.56'"},
	}
}
