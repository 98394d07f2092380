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


package analyzer

import (
	"context"

	"fillmore-labs.com/fieldusage/classfile"
	"fillmore-labs.com/fieldusage/internal/usage"
	"fillmore-labs.com/fieldusage/pipeline"
)

// StepIdentification is the name of the step computing the field usage [Result].
const StepIdentification = "identification"

// Result is the field usage report of a jar.
type Result = usage.Result

// New creates a pipeline with the [StepIdentification] step, configured by opts.
func New(opts ...Option) *pipeline.Pipeline[classfile.Jar] {
	r := makeRunOptions(opts)

	p := pipeline.New[classfile.Jar]()
	if err := p.AddStep(StepIdentification, r.identify); err != nil {
		panic(err) // registering on a fresh pipeline can't fail
	}

	return p
}

// Identification returns the [Result] recorded by a pipeline created with [New].
func Identification(p *pipeline.Pipeline[classfile.Jar]) (Result, error) {
	return pipeline.Result[Result](p, StepIdentification)
}

// Analyze runs the field usage analysis on jar and returns its report.
func Analyze(ctx context.Context, jar classfile.Jar, opts ...Option) (Result, error) {
	p := New(opts...)
	if err := p.Execute(ctx, jar); err != nil {
		return Result{}, err
	}

	return Identification(p)
}
