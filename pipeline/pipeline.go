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


// Package pipeline runs named analysis steps in sequence and records their results and timing.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"runtime/trace"
	"time"
)

var (
	// ErrDuplicateStep is returned by [Pipeline.AddStep] for a name already registered.
	ErrDuplicateStep = errors.New("duplicate step")

	// ErrInvalidStep is returned by [Pipeline.AddStep] for an empty name or a nil function.
	ErrInvalidStep = errors.New("invalid step")

	// ErrNotExecuted is returned by [Pipeline.StepResult] before a successful [Pipeline.Execute].
	ErrNotExecuted = errors.New("pipeline not executed")

	// ErrUnknownStep is returned by [Pipeline.StepResult] for names that were never registered.
	ErrUnknownStep = errors.New("unknown step")

	// ErrResultType is returned by [Result] when a step result has a different type.
	ErrResultType = errors.New("unexpected result type")
)

// StepFunc computes the result of one step from the pipeline input.
type StepFunc[T any] func(ctx context.Context, input T) (any, error)

type step[T any] struct {
	name string
	fn   StepFunc[T]
}

// Pipeline is a sequential runner of named steps over an input of type T.
// It is not safe for concurrent use.
type Pipeline[T any] struct {
	steps []step[T]
	names map[string]struct{}
	after []func(elapsed time.Duration)

	// results is nil until Execute completes successfully.
	results map[string]any
	elapsed time.Duration
}

// New creates an empty [Pipeline].
func New[T any]() *Pipeline[T] {
	return &Pipeline[T]{names: make(map[string]struct{})}
}

// AddStep registers a step. Steps run in registration order; names must be unique.
func (p *Pipeline[T]) AddStep(name string, fn StepFunc[T]) error {
	if name == "" || fn == nil {
		return fmt.Errorf("%w: %q", ErrInvalidStep, name)
	}

	if _, ok := p.names[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateStep, name)
	}

	p.names[name] = struct{}{}
	p.steps = append(p.steps, step[T]{name: name, fn: fn})

	return nil
}

// After registers a callback invoked with the total elapsed time once all steps of
// [Pipeline.Execute] succeeded. Callbacks run in registration order.
func (p *Pipeline[T]) After(fn func(elapsed time.Duration)) {
	p.after = append(p.after, fn)
}

// Execute runs all steps with input. The first failing step aborts the run; its error is
// returned annotated with the step name and no [Pipeline.After] callback is invoked.
func (p *Pipeline[T]) Execute(ctx context.Context, input T) error {
	ctx, task := trace.NewTask(ctx, "Pipeline")
	defer task.End()

	p.results, p.elapsed = nil, 0

	results := make(map[string]any, len(p.steps))
	start := time.Now()

	for _, s := range p.steps {
		if err := ctx.Err(); err != nil {
			return err
		}

		r, err := s.run(ctx, input)
		if err != nil {
			return fmt.Errorf("step %q: %w", s.name, err)
		}

		results[s.name] = r
	}

	p.results, p.elapsed = results, time.Since(start)

	for _, fn := range p.after {
		fn(p.elapsed)
	}

	return nil
}

func (s step[T]) run(ctx context.Context, input T) (any, error) {
	defer trace.StartRegion(ctx, s.name).End()

	return s.fn(ctx, input)
}

// StepResult returns the result recorded for the named step by the last successful run.
func (p *Pipeline[T]) StepResult(name string) (any, error) {
	if p.results == nil {
		return nil, ErrNotExecuted
	}

	r, ok := p.results[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStep, name)
	}

	return r, nil
}

// Elapsed returns the total time of the last successful run.
func (p *Pipeline[T]) Elapsed() time.Duration {
	return p.elapsed
}

// Result returns the result of the named step as an R.
func Result[R, T any](p *Pipeline[T], name string) (R, error) {
	var zero R

	r, err := p.StepResult(name)
	if err != nil {
		return zero, err
	}

	v, ok := r.(R)
	if !ok {
		return zero, fmt.Errorf("step %q: %w %T, expected %T", name, ErrResultType, r, zero)
	}

	return v, nil
}
