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


package usage_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/kr/pretty"

	"fillmore-labs.com/fieldusage/classfile"
	"fillmore-labs.com/fieldusage/internal/config"
	. "fillmore-labs.com/fieldusage/internal/usage"
)

func key(class, name string) classfile.FieldKey {
	return classfile.FieldKey{Class: class, Name: name, Desc: "I"}
}

func field(name string, access classfile.AccessFlags) *classfile.Field {
	return &classfile.Field{Name: name, Desc: "I", Access: access}
}

func getfield(owner, name string) *classfile.Method {
	return &classfile.Method{
		Name: "m",
		Desc: "()I",
		Instructions: []classfile.Instruction{
			classfile.Insn{Op: classfile.OpAload0},
			classfile.FieldInsn{Op: classfile.OpGetfield, Owner: owner, Name: name, Desc: "I"},
			classfile.Insn{Op: classfile.OpIreturn},
		},
	}
}

// visitAll visits the jar in lexical class order.
func visitAll(t *testing.T, jar classfile.Jar, accept func(*classfile.Class) error) {
	t.Helper()

	for _, name := range jar.Names() {
		if err := accept(jar[name]); err != nil {
			t.Fatalf("Accept %s failed: %v", name, err)
		}
	}
}

func sorted(keys []classfile.FieldKey) []classfile.FieldKey {
	return slices.SortedFunc(slices.Values(keys), classfile.FieldKey.Compare)
}

func TestDeclaredFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		jar  classfile.Jar
		want []classfile.FieldKey
	}{
		{
			name: "own_private",
			jar: classfile.Jar{
				"A": {Name: "A", Fields: []*classfile.Field{field("x", classfile.AccPrivate)}},
			},
			want: []classfile.FieldKey{key("A", "x")},
		},
		{
			name: "inherited_public",
			jar: classfile.Jar{
				"A": {Name: "A", Fields: []*classfile.Field{field("x", classfile.AccPublic)}},
				"B": {Name: "B", SuperName: "A"},
			},
			want: []classfile.FieldKey{key("A", "x"), key("B", "x")},
		},
		{
			name: "inherited_private",
			jar: classfile.Jar{
				"A": {Name: "A", Fields: []*classfile.Field{field("x", classfile.AccPrivate)}},
				"B": {Name: "B", SuperName: "A"},
			},
			want: []classfile.FieldKey{key("A", "x")},
		},
		{
			name: "inherited_through_chain",
			jar: classfile.Jar{
				"A": {Name: "A", Fields: []*classfile.Field{field("x", classfile.AccProtected)}},
				"B": {Name: "B", SuperName: "A", Fields: []*classfile.Field{field("y", 0)}},
				"C": {Name: "C", SuperName: "B"},
			},
			want: []classfile.FieldKey{key("A", "x"), key("B", "x"), key("B", "y"), key("C", "x")},
		},
		{
			name: "external_super",
			jar: classfile.Jar{
				"B": {Name: "B", SuperName: "java/lang/Object", Fields: []*classfile.Field{field("y", classfile.AccPublic)}},
			},
			want: []classfile.FieldKey{key("B", "y")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := NewDeclaredFieldVisitor(tt.jar, config.DefaultBehavior())
			visitAll(t, tt.jar, v.Accept)

			if got := sorted(v.Fields()); !slices.Equal(got, tt.want) {
				t.Errorf("Got declared %v, expected %v", got, tt.want)
			}

			if got, want := v.Count(), len(tt.want); got != want {
				t.Errorf("Got count %d, expected %d", got, want)
			}
		})
	}
}

func TestReferencedFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		jar      classfile.Jar
		behavior config.Behaviors
		want     []classfile.FieldKey
	}{
		{
			// A <- B <- C, instruction names B: propagates to A, never down to C.
			name: "propagate_up",
			jar: classfile.Jar{
				"A": {Name: "A", Fields: []*classfile.Field{field("x", classfile.AccPublic)}},
				"B": {Name: "B", SuperName: "A"},
				"C": {Name: "C", SuperName: "B", Fields: []*classfile.Field{field("x", classfile.AccPublic)}},
				"D": {Name: "D", Methods: []*classfile.Method{getfield("B", "x")}},
			},
			want: []classfile.FieldKey{key("A", "x"), key("B", "x")},
		},
		{
			name: "stop_at_private",
			jar: classfile.Jar{
				"A": {Name: "A", Fields: []*classfile.Field{field("x", classfile.AccPublic)}},
				"B": {Name: "B", SuperName: "A", Fields: []*classfile.Field{field("x", classfile.AccPrivate)}},
				"C": {Name: "C", SuperName: "B", Methods: []*classfile.Method{getfield("C", "x")}},
			},
			want: []classfile.FieldKey{key("C", "x")},
		},
		{
			name: "stop_at_absent",
			jar: classfile.Jar{
				"A": {Name: "A", Fields: []*classfile.Field{field("x", classfile.AccPublic)}},
				"B": {Name: "B", SuperName: "A"},
				"C": {Name: "C", SuperName: "B", Methods: []*classfile.Method{getfield("C", "x")}},
			},
			want: []classfile.FieldKey{key("C", "x")},
		},
		{
			name: "external_owner",
			jar: classfile.Jar{
				"A": {Name: "A", Methods: []*classfile.Method{getfield("java/lang/System", "out")}},
			},
			want: nil,
		},
		{
			name: "phantom_recorded",
			jar: classfile.Jar{
				"A": {Name: "A", Fields: []*classfile.Field{field("x", classfile.AccPrivate)}},
				"B": {Name: "B", SuperName: "A", Methods: []*classfile.Method{getfield("B", "x")}},
			},
			want: []classfile.FieldKey{key("B", "x")},
		},
		{
			name: "phantom_validated",
			jar: classfile.Jar{
				"A": {Name: "A", Fields: []*classfile.Field{field("x", classfile.AccPrivate)}},
				"B": {Name: "B", SuperName: "A", Methods: []*classfile.Method{getfield("B", "x")}},
			},
			behavior: config.NewBitMask(config.ValidateOwner),
			want:     nil,
		},
		{
			name: "inherited_validated",
			jar: classfile.Jar{
				"A": {Name: "A", Fields: []*classfile.Field{field("x", classfile.AccProtected)}},
				"B": {Name: "B", SuperName: "A", Methods: []*classfile.Method{getfield("B", "x")}},
			},
			behavior: config.NewBitMask(config.ValidateOwner),
			want:     []classfile.FieldKey{key("A", "x"), key("B", "x")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v := NewReferencedFieldVisitor(tt.jar, tt.behavior)
			visitAll(t, tt.jar, v.Accept)

			if got := sorted(v.Fields()); !slices.Equal(got, tt.want) {
				t.Errorf("Got referenced %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestIdempotence(t *testing.T) {
	t.Parallel()

	jar := classfile.Jar{
		"A": {Name: "A", Fields: []*classfile.Field{field("x", classfile.AccPublic)}},
		"B": {Name: "B", SuperName: "A", Methods: []*classfile.Method{getfield("B", "x")}},
	}

	declared := NewDeclaredFieldVisitor(jar, config.DefaultBehavior())
	referenced := NewReferencedFieldVisitor(jar, config.DefaultBehavior())

	for range 2 {
		visitAll(t, jar, declared.Accept)
		visitAll(t, jar, referenced.Accept)
	}

	if got, want := declared.Count(), 2; got != want {
		t.Errorf("Got %d declared fields after two visits, expected %d", got, want)
	}

	if got, want := referenced.Count(), 2; got != want {
		t.Errorf("Got %d referenced fields after two visits, expected %d", got, want)
	}
}

func TestSkipSynthetic(t *testing.T) {
	t.Parallel()

	jar := classfile.Jar{
		"A": {Name: "A", Fields: []*classfile.Field{
			field("this$0", classfile.AccProtected|classfile.AccSynthetic),
			field("x", classfile.AccProtected),
		}},
		"A$1": {Name: "A$1", SuperName: "A"},
	}

	v := NewDeclaredFieldVisitor(jar, config.NewBitMask(config.SkipSynthetic))
	visitAll(t, jar, v.Accept)

	want := []classfile.FieldKey{key("A", "x"), key("A$1", "x")}
	if got := sorted(v.Fields()); !slices.Equal(got, want) {
		t.Errorf("Got declared %v, expected %v", got, want)
	}
}

func TestCycle(t *testing.T) {
	t.Parallel()

	jar := classfile.Jar{
		"A": {Name: "A", SuperName: "B"},
		"B": {Name: "B", SuperName: "A"},
	}

	_, err := Stage{}.Identify(t.Context(), jar)
	if !errors.Is(err, classfile.ErrStructural) {
		t.Errorf("Got error %v, expected %v", err, classfile.ErrStructural)
	}
}

func TestDifference(t *testing.T) {
	t.Parallel()

	declared := FieldSet{key("A", "x"): {}, key("A", "y"): {}, key("B", "x"): {}}
	referenced := FieldSet{key("A", "x"): {}, key("C", "z"): {}}

	diff := declared.Difference(referenced)

	for k := range declared.All() {
		if got, want := diff.Contains(k), !referenced.Contains(k); got != want {
			t.Errorf("Got %t for %v in difference, expected %t", got, k, want)
		}
	}

	for k := range diff.All() {
		if !declared.Contains(k) || referenced.Contains(k) {
			t.Errorf("Unexpected key %v in difference", k)
		}
	}

	if want := []classfile.FieldKey{key("A", "y"), key("B", "x")}; !slices.Equal(diff.Sorted(), want) {
		t.Errorf("Got difference %v, expected %v", diff.Sorted(), want)
	}

	s := make(FieldSet)
	if !s.Add(key("A", "x")) || s.Add(key("A", "x")) {
		t.Error("Add doesn't report new keys correctly")
	}
}

func TestIdentify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		jar      classfile.Jar
		behavior config.Behaviors
		want     Result
	}{
		{
			name: "unreferenced",
			jar: classfile.Jar{
				"A": {Name: "A", Fields: []*classfile.Field{field("x", classfile.AccPublic)}},
				"B": {Name: "B", SuperName: "A"},
			},
			want: Result{
				Declared:   2,
				Referenced: 0,
				Diff:       []classfile.FieldKey{key("A", "x"), key("B", "x")},
			},
		},
		{
			name: "referenced_through_subclass",
			jar: classfile.Jar{
				"A": {Name: "A", Fields: []*classfile.Field{field("x", classfile.AccPublic)}},
				"B": {Name: "B", SuperName: "A", Methods: []*classfile.Method{getfield("B", "x")}},
			},
			want: Result{Declared: 2, Referenced: 2},
		},
		{
			name: "private_phantom",
			jar: classfile.Jar{
				"A": {Name: "A", Fields: []*classfile.Field{field("x", classfile.AccPrivate)}},
				"B": {Name: "B", SuperName: "A", Methods: []*classfile.Method{getfield("B", "x")}},
			},
			want: Result{
				Declared:   1,
				Referenced: 1, // (B, x) only, never (A, x)
				Diff:       []classfile.FieldKey{key("A", "x")},
			},
		},
		{
			name: "private_validated",
			jar: classfile.Jar{
				"A": {Name: "A", Fields: []*classfile.Field{field("x", classfile.AccPrivate)}},
				"B": {Name: "B", SuperName: "A", Methods: []*classfile.Method{getfield("B", "x")}},
			},
			behavior: config.NewBitMask(config.ValidateOwner),
			want: Result{
				Declared:   1,
				Referenced: 0,
				Diff:       []classfile.FieldKey{key("A", "x")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Stage{Behavior: tt.behavior}.Identify(t.Context(), tt.jar)
			if err != nil {
				t.Fatalf("Identify failed: %v", err)
			}

			if got.Declared != tt.want.Declared || got.Referenced != tt.want.Referenced || !slices.Equal(got.Diff, tt.want.Diff) {
				t.Errorf("Got %# v, expected %# v", pretty.Formatter(got), pretty.Formatter(tt.want))
			}
		})
	}
}
