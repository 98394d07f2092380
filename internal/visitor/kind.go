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


package visitor

// Kind identifies the events fired by [ClassVisitor.Accept].
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// VisitStart is fired once per class before any other event.
	VisitStart Kind = iota // visit-start

	// VisitField is fired once per declared field, in declaration order.
	VisitField // visit-field

	// VisitMethod is fired once per declared method, in declaration order.
	VisitMethod // visit-method

	// VisitInstruction is fired for every instruction of a method, right after its [VisitMethod] event.
	VisitInstruction // visit-instruction

	// VisitEnd is fired once per class after all other events.
	VisitEnd // visit-end
)
