// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package areacode

// mapSet implements Set using a map for O(1) lookups.
type mapSet struct {
	codes map[string]struct{}
}

// NewSet creates a set holding codes
func NewSet(codes ...string) Set {
	s := newMapSet(len(codes))
	for _, c := range codes {
		s.add(c)
	}
	return s
}

func newMapSet(capacity int) *mapSet {
	return &mapSet{codes: make(map[string]struct{}, capacity)}
}

// Contains checks if an area code exists in the set.
func (s *mapSet) Contains(code string) bool {
	_, exists := s.codes[code]
	return exists
}

// Size returns the number of area codes in the set.
func (s *mapSet) Size() int {
	return len(s.codes)
}

func (s *mapSet) add(code string) {
	s.codes[code] = struct{}{}
}
