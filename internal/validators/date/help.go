// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package date

import "rulecheck/internal/help"

// GetCheckInfo returns standardized information about the date rule
func (v *Validator) GetCheckInfo() help.CheckInfo {
	leap := "February 29 requires a year divisible by 4."
	if v.gregorian {
		leap = "February 29 requires a Gregorian leap year."
	}

	return help.CheckInfo{
		Name:             "DATE",
		Letter:           "E",
		ShortDescription: "Calendar date (MM-DD-YYYY)",
		DetailedDescription: `Accepts a date written as a two digit month, a two digit day and a four
digit year separated by hyphens. The month runs from 01 to 12 and the day
from 01 to 31.

The day must also exist in the month: April, June, September and November
have no 31st.`,
		Pattern:        v.pattern,
		AuxiliaryCheck: "month and day not 00, no day 31 in 30-day months. " + leap,
		Accepts:        []string{"09-22-1992", "02-29-2016", "12-31-0000"},
		Rejects:        []string{"02-29-2017", "04-31-2020", "13-01-2020", "00-15-2020", "9-22-1992"},
		ConfigurationInfo: `date:
  gregorian: true   # century years are leap years only when divisible by 400`,
		Examples: []string{"rulecheck validate DATE 02-29-2016"},
	}
}
