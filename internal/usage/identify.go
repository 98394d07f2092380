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
	"context"
	"runtime/trace"

	"fillmore-labs.com/fieldusage/classfile"
	"fillmore-labs.com/fieldusage/internal/config"
)

// Result is the field usage report of a jar.
type Result struct {
	// Declared is the number of distinct declared fields, including inherited ones.
	Declared int

	// Referenced is the number of distinct referenced fields.
	Referenced int

	// Diff lists the fields declared but never referenced, ordered by [classfile.FieldKey.Compare].
	Diff []classfile.FieldKey
}

// Stage configures the field usage identification.
type Stage struct {
	Behavior config.Behaviors
}

// Identify visits every class of jar with a [DeclaredFieldVisitor] and a
// [ReferencedFieldVisitor] and reports the declared fields that were never referenced.
func (s Stage) Identify(ctx context.Context, jar classfile.Jar) (Result, error) {
	defer trace.StartRegion(ctx, "Identify").End()

	declared := NewDeclaredFieldVisitor(jar, s.Behavior)
	referenced := NewReferencedFieldVisitor(jar, s.Behavior)

	for _, name := range jar.Names() {
		c, ok := jar.Class(name)
		if !ok {
			continue
		}

		if err := declared.Accept(c); err != nil {
			return Result{}, err
		}

		if err := referenced.Accept(c); err != nil {
			return Result{}, err
		}
	}

	trace.Logf(ctx, "fields", "declared=%d referenced=%d", declared.Count(), referenced.Count())

	return Result{
		Declared:   declared.Count(),
		Referenced: referenced.Count(),
		Diff:       declared.Set().Difference(referenced.Set()).Sorted(),
	}, nil
}
