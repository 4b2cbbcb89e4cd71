// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package security

import (
	"strings"
	"unicode/utf8"
)

// HiddenPlaceholder is printed instead of a candidate when inputs are hidden
const HiddenPlaceholder = "[HIDDEN]"

// SecureString holds a validation candidate in a mutable buffer so it can be
// zeroed once a result has been reported.
//
// Clear only scrubs this buffer. Copies made by String() or held by the
// caller are outside its reach.
type SecureString struct {
	data []byte
}

// NewSecureString copies s into a private buffer
func NewSecureString(s string) *SecureString {
	data := make([]byte, len(s))
	copy(data, s)
	return &SecureString{data: data}
}

// String returns the held value. A nil or cleared SecureString yields "".
func (ss *SecureString) String() string {
	if ss == nil {
		return ""
	}
	return string(ss.data)
}

// Len returns the length of the held value in characters
func (ss *SecureString) Len() int {
	if ss == nil {
		return 0
	}
	return utf8.RuneCount(ss.data)
}

// Masked returns one '*' per character, for showing the shape of a secret
func (ss *SecureString) Masked() string {
	return strings.Repeat("*", ss.Len())
}

// Display returns the value when show is true and the placeholder otherwise
func (ss *SecureString) Display(show bool) string {
	if show {
		return ss.String()
	}
	return HiddenPlaceholder
}

// Clear zeroes and releases the buffer. Safe to call more than once.
func (ss *SecureString) Clear() {
	if ss == nil || ss.data == nil {
		return
	}
	for i := range ss.data {
		ss.data[i] = 0
	}
	ss.data = nil
}
