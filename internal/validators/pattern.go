// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package validators holds helpers shared by the per-rule validator packages.
package validators

import "regexp"

// Whole compiles expr anchored at both ends, so only an entire input can
// satisfy it. expr must not carry its own ^ or $ anchors.
func Whole(expr string) *regexp.Regexp {
	return regexp.MustCompile(`^(?:` + expr + `)$`)
}
