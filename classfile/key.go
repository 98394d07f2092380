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


package classfile

import (
	"cmp"
	"strings"
)

// FieldKey identifies a field by (class, name, descriptor).
// It is comparable and used directly as a map key.
type FieldKey struct {
	Class string
	Name  string
	Desc  string
}

// String renders the key as "Class.Name:Desc".
func (k FieldKey) String() string {
	var b strings.Builder
	b.Grow(len(k.Class) + len(k.Name) + len(k.Desc) + 2)

	b.WriteString(k.Class)
	b.WriteByte('.')
	b.WriteString(k.Name)
	b.WriteByte(':')
	b.WriteString(k.Desc)

	return b.String()
}

// Compare orders keys by class, then name, then descriptor.
func (k FieldKey) Compare(o FieldKey) int {
	return cmp.Or(
		strings.Compare(k.Class, o.Class),
		strings.Compare(k.Name, o.Name),
		strings.Compare(k.Desc, o.Desc),
	)
}
