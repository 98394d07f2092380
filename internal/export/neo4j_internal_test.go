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


package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fillmore-labs.com/fieldusage/classfile"
)

func testJar() classfile.Jar {
	return classfile.Jar{
		"A": {Name: "A", SuperName: "java/lang/Object", Access: classfile.AccPublic},
		"B": {Name: "B", SuperName: "A"},
	}
}

func TestClassRows(t *testing.T) {
	t.Parallel()

	rows := classRows(testJar())
	require.Len(t, rows, 2)

	assert.Equal(t, map[string]any{"name": "A", "super": "java/lang/Object", "access": "public"}, rows[0])
	assert.Equal(t, map[string]any{"name": "B", "super": "A", "access": ""}, rows[1])
}

func TestExtendsRows(t *testing.T) {
	t.Parallel()

	rows := extendsRows(testJar())

	// java/lang/Object is outside the jar
	assert.Equal(t, []map[string]any{{"sub": "B", "super": "A"}}, rows)
}

func TestUnusedRows(t *testing.T) {
	t.Parallel()

	rows := unusedRows([]classfile.FieldKey{{Class: "B", Name: "x", Desc: "I"}})

	assert.Equal(t, []map[string]any{{"key": "B.x:I", "class": "B", "name": "x", "desc": "I"}}, rows)
	assert.Empty(t, unusedRows(nil))
}
