// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package areacode loads and holds the reference list of valid U.S.
// telephone area codes.
package areacode

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when the area code list could not be loaded
var ErrUnavailable = errors.New("area code list unavailable")

// Set represents a read-only set of area codes for fast lookup.
// Implementations are safe for concurrent readers.
type Set interface {
	// Contains reports whether code is in the set. Matching is exact.
	Contains(code string) bool

	// Size returns the number of codes in the set.
	Size() int
}

// Loader reads an area code list from a source. The meaning of source
// depends on the loader: a file path, an S3 key, or ignored.
type Loader interface {
	Load(ctx context.Context, source string) (Set, error)
}
