// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package citystatezip

import "rulecheck/internal/help"

// GetCheckInfo returns standardized information about the city/state/zip rule
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "CITY_STATE_ZIP",
		Letter:           "G",
		ShortDescription: "City, state code and zip (Lakewood, WA 98498)",
		DetailedDescription: `Accepts the last line of a U.S. postal address: the city, a comma, the
two letter USPS code of one of the 50 states, and a five digit zip code
with an optional four digit extension.

State names, territories and the District of Columbia are not accepted.`,
		Pattern:  v.pattern,
		Accepts:  []string{"Lakewood, WA 98498", "Salt Lake City, UT 84101-1234", "Coeur d'Alene, ID 83814"},
		Rejects:  []string{"Lakewood, ZZ 98498", "Lakewood, WA", "Lakewood, WA, 98498", "Lakewood, Washington 98498", "Washington, DC 20001"},
		Examples: []string{`rulecheck validate CITY_STATE_ZIP "Lakewood, WA 98498"`},
	}
}
