// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package address

import "rulecheck/internal/help"

// GetCheckInfo returns standardized information about the house address rule
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "HOUSE_ADDRESS",
		Letter:           "F",
		ShortDescription: "Street address (123 Main St.)",
		DetailedDescription: `Accepts the street line of a postal address: a house number of at least
three digits, an optional short unit token, the street name, and the road
type such as st, ave or boulevard with an optional trailing period. A short
token like a direction may follow.

City, state and zip belong to the CITY_STATE_ZIP rule and are rejected here.`,
		Pattern:  v.pattern,
		Accepts:  []string{"123 StreetName blvd", "123 StreetName avenue", "1234 Apt5 Main St.", "123 Main St. NW"},
		Rejects:  []string{"123 StreetName street, lakewood WA 98498", "streetName street", "12 Main St", "123 Main"},
		Examples: []string{`rulecheck validate HOUSE_ADDRESS "123 Main St."`},
	}
}
