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
	"fillmore-labs.com/fieldusage/classfile"
	"fillmore-labs.com/fieldusage/internal/config"
	"fillmore-labs.com/fieldusage/internal/visitor"
)

// DeclaredFieldVisitor records the fields a class has: its own fields and the fields
// it inherits from ancestors that are visible to subclasses.
type DeclaredFieldVisitor struct {
	fieldVisitor
}

// NewDeclaredFieldVisitor creates a [DeclaredFieldVisitor] for classes of jar.
func NewDeclaredFieldVisitor(jar classfile.Jar, behavior config.Behaviors) *DeclaredFieldVisitor {
	v := &DeclaredFieldVisitor{fieldVisitor: newFieldVisitor(jar, behavior)}

	v.On(visitor.VisitStart, v.visitStart)
	v.On(visitor.VisitField, v.visitField)

	return v
}

// visitStart attributes inherited visible fields to the visited class.
// This runs for every class, including those without fields of their own.
func (v *DeclaredFieldVisitor) visitStart(ev visitor.Event) error {
	for ancestor, err := range v.jar.Ancestors(ev.Class) {
		if err != nil {
			return err
		}

		for _, f := range ancestor.Fields {
			if !f.Access.VisibleToChildren() || v.skip(f) {
				continue
			}

			v.record(ev.Class.Name, f.Name, f.Desc)
		}
	}

	return nil
}

// visitField records an own field regardless of its visibility.
func (v *DeclaredFieldVisitor) visitField(ev visitor.Event) error {
	if v.skip(ev.Field) {
		return nil
	}

	v.record(ev.Class.Name, ev.Field.Name, ev.Field.Desc)

	return nil
}

func (v *DeclaredFieldVisitor) skip(f *classfile.Field) bool {
	return v.behavior.Enabled(config.SkipSynthetic) && f.Access.Has(classfile.AccSynthetic)
}
