// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0


package usage

import (
	"iter"
	"maps"
	"slices"

	"fillmore-labs.com/fieldusage/classfile"
)

// FieldSet is a set of distinct field identities.
type FieldSet map[classfile.FieldKey]struct{}

// Add inserts k and reports whether it was new.
func (s FieldSet) Add(k classfile.FieldKey) bool {
	if _, ok := s[k]; ok {
		return false
	}

	s[k] = struct{}{}

	return true
}

// Contains reports whether k is a member of s.
func (s FieldSet) Contains(k classfile.FieldKey) bool {
	_, ok := s[k]

	return ok
}

// All iterates over the members in unspecified order.
func (s FieldSet) All() iter.Seq[classfile.FieldKey] {
	return maps.Keys(s)
}

// Sorted returns the members ordered by [classfile.FieldKey.Compare].
func (s FieldSet) Sorted() []classfile.FieldKey {
	return slices.SortedFunc(s.All(), classfile.FieldKey.Compare)
}

// Difference returns the members of s that are not in o.
func (s FieldSet) Difference(o FieldSet) FieldSet {
	d := make(FieldSet)
	for k := range s {
		if !o.Contains(k) {
			d[k] = struct{}{}
		}
	}

	return d
}
