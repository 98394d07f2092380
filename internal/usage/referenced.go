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

// ReferencedFieldVisitor records the fields touched by field instructions. A reference is
// propagated up the superclass chain as long as the ancestors declare a visible field
// with the same name and descriptor, mirroring field resolution at run time.
type ReferencedFieldVisitor struct {
	fieldVisitor
}

// NewReferencedFieldVisitor creates a [ReferencedFieldVisitor] for classes of jar.
func NewReferencedFieldVisitor(jar classfile.Jar, behavior config.Behaviors) *ReferencedFieldVisitor {
	v := &ReferencedFieldVisitor{fieldVisitor: newFieldVisitor(jar, behavior)}

	v.On(visitor.VisitMethod, v.visitMethod)

	return v
}

// visitMethod processes every field instruction whose owner is part of the jar.
// Owners outside the jar cannot be resolved and are ignored.
func (v *ReferencedFieldVisitor) visitMethod(ev visitor.Event) error {
	for _, insn := range ev.Method.Instructions {
		fi, ok := insn.(classfile.FieldInsn)
		if !ok {
			continue
		}

		owner, ok := v.jar.Class(fi.Owner)
		if !ok {
			continue
		}

		if err := v.visitFieldInsn(owner, fi.Name, fi.Desc); err != nil {
			return err
		}
	}

	return nil
}

func (v *ReferencedFieldVisitor) visitFieldInsn(owner *classfile.Class, name, desc string) error {
	if v.behavior.Enabled(config.ValidateOwner) {
		ok, err := v.resolves(owner, name, desc)
		if err != nil || !ok {
			return err
		}
	}

	v.record(owner.Name, name, desc)

	for ancestor, err := range v.jar.Ancestors(owner) {
		if err != nil {
			return err
		}

		f, ok := ancestor.Field(name, desc)
		if !ok || !f.Access.VisibleToChildren() {
			break
		}

		v.record(ancestor.Name, name, desc)
	}

	return nil
}

// resolves reports whether owner declares the field or inherits it from the nearest
// ancestor declaring it, which must make it visible to subclasses.
func (v *ReferencedFieldVisitor) resolves(owner *classfile.Class, name, desc string) (bool, error) {
	if _, ok := owner.Field(name, desc); ok {
		return true, nil
	}

	for ancestor, err := range v.jar.Ancestors(owner) {
		if err != nil {
			return false, err
		}

		if f, ok := ancestor.Field(name, desc); ok {
			return f.Access.VisibleToChildren(), nil
		}
	}

	return false, nil
}
