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


package classfile

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Jar is a closed set of classes keyed by internal name.
// It is passed explicitly to every analysis and never mutated by one.
type Jar map[string]*Class

// ErrStructural matches every structural error in the class model, see [CycleError].
var ErrStructural = errors.New("structural error")

// CycleError is returned when a superclass chain reaches the same class twice.
type CycleError struct {
	// Class is the first class reached a second time.
	Class string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("superclass cycle through %q", e.Class)
}

// Is makes [CycleError] match [ErrStructural].
func (e *CycleError) Is(target error) bool {
	return target == ErrStructural
}

// Class looks up a class by internal name. The empty name is never present.
func (j Jar) Class(name string) (*Class, bool) {
	if name == "" {
		return nil, false
	}

	c, ok := j[name]

	return c, ok && c != nil
}

// Superclass returns the superclass of c when it is part of the jar.
func (j Jar) Superclass(c *Class) (*Class, bool) {
	return j.Class(c.SuperName)
}

// Names returns the class names in lexical order.
func (j Jar) Names() []string {
	return slices.Sorted(maps.Keys(j))
}

// Ancestors iterates over the superclass chain of c, starting at its immediate superclass
// and ending before the first superclass that is not in the jar.
//
// When a class is reached twice, a [*CycleError] is yielded with a nil class and the
// iteration ends.
func (j Jar) Ancestors(c *Class) iter.Seq2[*Class, error] {
	return func(yield func(*Class, error) bool) {
		seen := map[string]struct{}{c.Name: {}}

		for parent, ok := j.Superclass(c); ok; parent, ok = j.Superclass(parent) {
			if _, ok := seen[parent.Name]; ok {
				yield(nil, &CycleError{Class: parent.Name})

				return
			}
			seen[parent.Name] = struct{}{}

			if !yield(parent, nil) {
				return
			}
		}
	}
}
