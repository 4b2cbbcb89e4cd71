// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package weburl

import "rulecheck/internal/help"

// GetCheckInfo returns standardized information about the URL rule
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "URL",
		Letter:           "J",
		ShortDescription: "Web or FTP address (https://www.example.com)",
		DetailedDescription: `Accepts a host name with an optional http, https, ftp or ftps scheme in
any letter case. The host ends with a two to six letter top-level domain
and may be followed by a port and path segments.

Path segments may contain letters, digits and the characters . , ; ? ' + & % $ # = ~ _ -`,
		Pattern: v.pattern,
		Accepts: []string{"https://www.a.com", "HTTPS://www.a.co.za", "http://www.0.com", "example.com:8080/docs/index.html", "ftp://files.example.org/pub/"},
		Rejects: []string{"https://www.a.", "HTTPS:/www.a.com", "HTTPS//www.0.com", "https:www.0.com", "gopher://www.a.com"},
		Examples: []string{
			"rulecheck validate URL https://www.example.com",
		},
	}
}
