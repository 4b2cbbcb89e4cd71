// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package oddion

import "rulecheck/internal/help"

// GetCheckInfo returns standardized information about the odd "ion" rule
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "ODD_ION",
		Letter:           "L",
		ShortDescription: `Odd-length word ending in "ion"`,
		DetailedDescription: `Accepts any input with an odd number of characters that ends with the
letters "ion", such as "ion", "llion" or "imagination".`,
		Pattern:  v.pattern,
		Accepts:  []string{"ion", "llion", "imagination"},
		Rejects:  []string{"lion", "ionn", "imagiation", "ionion", "on"},
		Examples: []string{"rulecheck validate ODD_ION imagination"},
	}
}
