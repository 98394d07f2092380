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


// Package visitor dispatches the declarations of a class to subscribed handlers.
//
// A [ClassVisitor] keeps an ordered list of handlers per [Kind]. Several independent
// analyses can subscribe to the same visitor and observe a single traversal.
package visitor

import (
	"fmt"

	"fillmore-labs.com/fieldusage/classfile"
)

// Event is passed to handlers. Only the members relevant to Kind are set:
// Field for [VisitField], Method for [VisitMethod], Method and Instruction for [VisitInstruction].
type Event struct {
	Kind        Kind
	Class       *classfile.Class
	Field       *classfile.Field
	Method      *classfile.Method
	Instruction classfile.Instruction
}

// Handler receives visitor events. A non-nil error aborts the traversal of the current class.
type Handler func(ev Event) error

// ClassVisitor fires events for classes passed to [ClassVisitor.Accept].
// The zero value is ready to use.
type ClassVisitor struct {
	handlers map[Kind][]Handler
}

// New creates a [ClassVisitor] without subscribers.
func New() *ClassVisitor {
	return &ClassVisitor{handlers: make(map[Kind][]Handler)}
}

// On subscribes h to events of kind k. Handlers run in registration order.
func (v *ClassVisitor) On(k Kind, h Handler) {
	if v.handlers == nil {
		v.handlers = make(map[Kind][]Handler)
	}

	v.handlers[k] = append(v.handlers[k], h)
}

// Subscribed reports whether any handler listens to k.
func (v *ClassVisitor) Subscribed(k Kind) bool {
	return len(v.handlers[k]) > 0
}

// Accept fires [VisitStart], then [VisitField] per field, [VisitMethod] per method, each
// followed by [VisitInstruction] per instruction, and finally [VisitEnd].
//
// The first handler error stops the traversal and is returned, annotated with the class
// name and the event kind.
func (v *ClassVisitor) Accept(c *classfile.Class) error {
	if err := v.emit(Event{Kind: VisitStart, Class: c}); err != nil {
		return err
	}

	for _, f := range c.Fields {
		if err := v.emit(Event{Kind: VisitField, Class: c, Field: f}); err != nil {
			return err
		}
	}

	instructions := v.Subscribed(VisitInstruction)
	for _, m := range c.Methods {
		if err := v.emit(Event{Kind: VisitMethod, Class: c, Method: m}); err != nil {
			return err
		}

		if !instructions {
			continue
		}

		for _, insn := range m.Instructions {
			if err := v.emit(Event{Kind: VisitInstruction, Class: c, Method: m, Instruction: insn}); err != nil {
				return err
			}
		}
	}

	return v.emit(Event{Kind: VisitEnd, Class: c})
}

func (v *ClassVisitor) emit(ev Event) error {
	for _, h := range v.handlers[ev.Kind] {
		if err := h(ev); err != nil {
			return fmt.Errorf("%s %s: %w", ev.Kind, ev.Class.Name, err)
		}
	}

	return nil
}
