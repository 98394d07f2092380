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
	"slices"

	"fillmore-labs.com/fieldusage/classfile"
	"fillmore-labs.com/fieldusage/internal/config"
	"fillmore-labs.com/fieldusage/internal/visitor"
)

// fieldVisitor accumulates field identities while visiting classes of a jar.
type fieldVisitor struct {
	// ClassVisitor is the embedded event dispatcher the concrete visitors subscribe to.
	*visitor.ClassVisitor

	jar      classfile.Jar
	behavior config.Behaviors

	// visited holds the distinct fields recorded so far.
	visited FieldSet
}

func newFieldVisitor(jar classfile.Jar, behavior config.Behaviors) fieldVisitor {
	return fieldVisitor{
		ClassVisitor: visitor.New(),
		jar:          jar,
		behavior:     behavior,
		visited:      make(FieldSet),
	}
}

// Count returns the number of distinct fields recorded.
func (v *fieldVisitor) Count() int {
	return len(v.visited)
}

// Fields returns the recorded fields in unspecified order.
func (v *fieldVisitor) Fields() []classfile.FieldKey {
	return slices.Collect(v.visited.All())
}

// Set returns the recorded fields.
func (v *fieldVisitor) Set() FieldSet {
	return v.visited
}

func (v *fieldVisitor) record(class, name, desc string) {
	v.visited.Add(classfile.FieldKey{Class: class, Name: name, Desc: desc})
}
