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


// Package analyzer reports fields of a jar that are declared but never referenced.
//
// # Overview
//
// The analysis runs as the [StepIdentification] step of a [fillmore-labs.com/fieldusage/pipeline.Pipeline]:
//
//	p := analyzer.New(analyzer.WithSkipSynthetic(true))
//	p.After(func(elapsed time.Duration) {
//	    res, _ := analyzer.Identification(p)
//	    fmt.Printf("Fields referenced: %d/%d\n", res.Referenced, res.Declared)
//	})
//	err := p.Execute(ctx, jar)
//
// # Inheritance
//
// A class has its own fields and every public or protected field of its ancestors
// within the jar. A field instruction naming a subclass as owner also references the
// ancestors declaring a visible field of the same name and descriptor, so inherited
// fields accessed through a subclass are not reported.
//
// # Owner validation
//
// A field instruction always counts on its owner class, even when that class neither
// declares nor inherits the field. [WithValidateOwner] drops such references.
package analyzer
