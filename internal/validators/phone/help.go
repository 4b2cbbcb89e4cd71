// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package phone

import "rulecheck/internal/help"

// GetCheckInfo returns standardized information about the phone rule
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "US_PHONE",
		Letter:           "B",
		ShortDescription: "U.S. phone number with a known area code",
		DetailedDescription: `Accepts a ten digit U.S. phone number. The area code may be wrapped in
parentheses and must start with 2-9. The exchange and line number may be
separated by a hyphen or a space, or the digits may run together.

The area code must also appear in the reference list of U.S. area codes.
If that list cannot be loaded the number is reported as an error.`,
		Pattern:        v.pattern,
		AuxiliaryCheck: "area code must be in the area code reference list",
		Accepts:        []string{"2345555555", "(234)555-5555", "234 555 5555"},
		Rejects:        []string{"(199)5555555", "1345555555", "234-555-555", "+1 234 555 5555"},
		ConfigurationInfo: `area_codes:
  file: /path/to/areacodes.txt   # one code per line, '#' comments
  s3:
    enabled: true
    bucket: my-reference-data
    region: us-east-1
    key: areacodes.txt`,
		Examples: []string{
			"rulecheck validate US_PHONE 2345555555",
			"rulecheck validate B '(234) 555-5555' --area-codes ./areacodes.txt",
		},
	}
}
