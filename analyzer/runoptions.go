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
	"fillmore-labs.com/fieldusage/internal/config"
	"fillmore-labs.com/fieldusage/internal/usage"
)

type runOptions struct {
	// behavior holds the enabled analysis refinements.
	behavior config.Behaviors
}

func makeRunOptions(opts Options) *runOptions {
	r := defaultRunOptions()
	opts.apply(r)

	return r
}

func defaultRunOptions() *runOptions {
	return &runOptions{
		behavior: config.DefaultBehavior(),
	}
}

func (r *runOptions) identify(ctx context.Context, jar classfile.Jar) (any, error) {
	stage := usage.Stage{Behavior: r.behavior}

	return stage.Identify(ctx, jar)
}
