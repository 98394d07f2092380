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

// Class is the structural model of one compiled class.
type Class struct {
	// Name is the internal name, e.g. "com/example/Foo".
	Name string

	// SuperName is the internal name of the superclass. It is empty for java/lang/Object
	// and may name a class that is not part of the [Jar].
	SuperName string

	Access  AccessFlags
	Fields  []*Field
	Methods []*Method
}

// Field looks up a field declared by this class. Inherited fields are not considered.
func (c *Class) Field(name, desc string) (*Field, bool) {
	for _, f := range c.Fields {
		if f.Name == name && f.Desc == desc {
			return f, true
		}
	}

	return nil, false
}

// Field is a field declaration. Name and Desc are unique within the declaring class.
type Field struct {
	Name   string
	Desc   string
	Access AccessFlags
}

// Key returns the identity of this field when attributed to class.
func (f *Field) Key(class string) FieldKey {
	return FieldKey{Class: class, Name: f.Name, Desc: f.Desc}
}

// Method is a method declaration with its decoded code.
type Method struct {
	Name         string
	Desc         string
	Access       AccessFlags
	Instructions []Instruction
}
