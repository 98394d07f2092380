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


package archive

import (
	"fmt"

	"fillmore-labs.com/fieldusage/classfile"
)

// classDoc is the YAML form of a class.
type classDoc struct {
	Super   string      `yaml:"super,omitempty"`
	Access  accessList  `yaml:"access,omitempty"`
	Fields  []fieldDoc  `yaml:"fields,omitempty"`
	Methods []methodDoc `yaml:"methods,omitempty"`
}

type fieldDoc struct {
	Name   string     `yaml:"name"`
	Desc   string     `yaml:"desc"`
	Access accessList `yaml:"access,omitempty"`
}

type methodDoc struct {
	Name   string     `yaml:"name"`
	Desc   string     `yaml:"desc"`
	Access accessList `yaml:"access,omitempty"`
	Code   []insnDoc  `yaml:"code,omitempty"`
}

type insnDoc struct {
	Op    string `yaml:"op"`
	Owner string `yaml:"owner,omitempty"`
	Name  string `yaml:"name,omitempty"`
	Desc  string `yaml:"desc,omitempty"`
	Type  string `yaml:"type,omitempty"`
}

// accessList holds access keywords like "public" or "static".
type accessList []string

func (l accessList) flags() (classfile.AccessFlags, error) {
	var flags classfile.AccessFlags

	for _, keyword := range l {
		f, err := classfile.ParseAccessFlag(keyword)
		if err != nil {
			return 0, err
		}

		flags |= f
	}

	return flags, nil
}

func (d classDoc) class(name string) (*classfile.Class, error) {
	access, err := d.Access.flags()
	if err != nil {
		return nil, err
	}

	c := &classfile.Class{
		Name:      name,
		SuperName: d.Super,
		Access:    access,
		Fields:    make([]*classfile.Field, 0, len(d.Fields)),
		Methods:   make([]*classfile.Method, 0, len(d.Methods)),
	}

	for i, fd := range d.Fields {
		f, err := fd.field()
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}

		c.Fields = append(c.Fields, f)
	}

	for i, md := range d.Methods {
		m, err := md.method()
		if err != nil {
			return nil, fmt.Errorf("method %d (%s%s): %w", i, md.Name, md.Desc, err)
		}

		c.Methods = append(c.Methods, m)
	}

	return c, nil
}

func (d fieldDoc) field() (*classfile.Field, error) {
	if d.Name == "" || d.Desc == "" {
		return nil, fmt.Errorf("%w: field name and descriptor", ErrIncomplete)
	}

	access, err := d.Access.flags()
	if err != nil {
		return nil, err
	}

	return &classfile.Field{Name: d.Name, Desc: d.Desc, Access: access}, nil
}

func (d methodDoc) method() (*classfile.Method, error) {
	if d.Name == "" || d.Desc == "" {
		return nil, fmt.Errorf("%w: method name and descriptor", ErrIncomplete)
	}

	access, err := d.Access.flags()
	if err != nil {
		return nil, err
	}

	m := &classfile.Method{
		Name:         d.Name,
		Desc:         d.Desc,
		Access:       access,
		Instructions: make([]classfile.Instruction, 0, len(d.Code)),
	}

	for i, id := range d.Code {
		insn, err := id.instruction()
		if err != nil {
			return nil, fmt.Errorf("instruction %d: %w", i, err)
		}

		m.Instructions = append(m.Instructions, insn)
	}

	return m, nil
}

func (d insnDoc) instruction() (classfile.Instruction, error) {
	op, ok := classfile.LookupOpcode(d.Op)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOpcode, d.Op)
	}

	switch {
	case op.IsFieldAccess():
		if d.Owner == "" || d.Name == "" || d.Desc == "" {
			return nil, fmt.Errorf("%w: %s needs owner, name and descriptor", ErrIncomplete, op)
		}

		return classfile.FieldInsn{Op: op, Owner: d.Owner, Name: d.Name, Desc: d.Desc}, nil

	case op.IsInvoke():
		return classfile.MethodInsn{Op: op, Owner: d.Owner, Name: d.Name, Desc: d.Desc}, nil

	case op.IsTypeOperand():
		if d.Type == "" {
			return nil, fmt.Errorf("%w: %s needs a type", ErrIncomplete, op)
		}

		return classfile.TypeInsn{Op: op, Type: d.Type}, nil

	default:
		return classfile.Insn{Op: op}, nil
	}
}
