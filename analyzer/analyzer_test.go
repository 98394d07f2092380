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


package analyzer_test

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/kr/pretty"

	. "fillmore-labs.com/fieldusage/analyzer"
	"fillmore-labs.com/fieldusage/classfile"
	"fillmore-labs.com/fieldusage/internal/archive"
	"fillmore-labs.com/fieldusage/pipeline"
)

const (
	shape  = "com/example/Shape"
	circle = "com/example/Circle"
	square = "com/example/Square"

	str   = "Ljava/lang/String;"
	outer = "Lcom/example/Outer;"
)

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	jar, err := archive.Load("testdata/shapes.txtar")
	if err != nil {
		t.Fatalf("Can't load jar: %v", err)
	}

	tests := []struct {
		name       string
		options    Option
		declared   int
		referenced int
		diff       []classfile.FieldKey
	}{
		{
			name:       "Default",
			declared:   8,
			referenced: 3,
			diff: []classfile.FieldKey{
				{Class: circle, Name: "radius", Desc: "D"},
				{Class: circle, Name: "this$0", Desc: outer},
				{Class: shape, Name: "id", Desc: "J"},
				{Class: shape, Name: "this$0", Desc: outer},
				{Class: square, Name: "name", Desc: str},
				{Class: square, Name: "this$0", Desc: outer},
			},
		},
		{
			name:       "SkipSynthetic",
			options:    WithSkipSynthetic(true),
			declared:   5,
			referenced: 3,
			diff: []classfile.FieldKey{
				{Class: circle, Name: "radius", Desc: "D"},
				{Class: shape, Name: "id", Desc: "J"},
				{Class: square, Name: "name", Desc: str},
			},
		},
		{
			name:       "ValidateOwner",
			options:    Options{WithValidateOwner(true), WithSkipSynthetic(true)},
			declared:   5,
			referenced: 2,
			diff: []classfile.FieldKey{
				{Class: circle, Name: "radius", Desc: "D"},
				{Class: shape, Name: "id", Desc: "J"},
				{Class: square, Name: "name", Desc: str},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := New(tt.options)

			var elapsed time.Duration
			calls := 0
			p.After(func(e time.Duration) {
				elapsed = e
				calls++
			})

			if err := p.Execute(t.Context(), jar); err != nil {
				t.Fatalf("Execute failed: %v", err)
			}

			if calls != 1 || elapsed != p.Elapsed() {
				t.Errorf("Got %d callbacks with %v, expected one with %v", calls, elapsed, p.Elapsed())
			}

			got, err := Identification(p)
			if err != nil {
				t.Fatalf("Can't get result: %v", err)
			}

			if got.Declared != tt.declared || got.Referenced != tt.referenced || !slices.Equal(got.Diff, tt.diff) {
				t.Errorf("Got %# v", pretty.Formatter(got))
				t.Errorf("Expected declared=%d referenced=%d diff=%v", tt.declared, tt.referenced, tt.diff)
			}
		})
	}
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	jar := classfile.Jar{
		"A": {Name: "A", Fields: []*classfile.Field{{Name: "x", Desc: "I", Access: classfile.AccPublic}}},
		"B": {Name: "B", SuperName: "A"},
	}

	got, err := Analyze(t.Context(), jar)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if got.Declared != 2 || got.Referenced != 0 || len(got.Diff) != 2 {
		t.Errorf("Got %# v", pretty.Formatter(got))
	}
}

func TestDuplicateIdentification(t *testing.T) {
	t.Parallel()

	p := New()

	err := p.AddStep(StepIdentification, func(context.Context, classfile.Jar) (any, error) { return nil, nil })
	if !errors.Is(err, pipeline.ErrDuplicateStep) {
		t.Errorf("Got error %v, expected %v", err, pipeline.ErrDuplicateStep)
	}
}
