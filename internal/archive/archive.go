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


// Package archive loads a [classfile.Jar] from a textual archive.
//
// The archive is a [txtar] file. Every member is one class: the member name is the
// internal class name, optionally with a ".yaml" suffix, and the body is a YAML document:
//
//	-- com/example/Point --
//	super: com/example/Shape
//	access: [public]
//	fields:
//	  - {name: x, desc: I, access: [protected]}
//	methods:
//	  - name: getX
//	    desc: ()I
//	    code:
//	      - {op: aload_0}
//	      - {op: getfield, owner: com/example/Point, name: x, desc: I}
//	      - {op: ireturn}
package archive

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/tools/txtar"
	"gopkg.in/yaml.v3"

	"fillmore-labs.com/fieldusage/classfile"
)

var (
	// ErrDuplicateClass is returned when two members define the same class.
	ErrDuplicateClass = errors.New("duplicate class")

	// ErrUnknownOpcode is returned for instruction mnemonics that are not modeled.
	ErrUnknownOpcode = errors.New("unknown opcode")

	// ErrIncomplete is returned for declarations or instructions missing a required attribute.
	ErrIncomplete = errors.New("incomplete declaration")
)

const suffix = ".yaml"

// Load reads the archive file at path.
func Load(path string) (classfile.Jar, error) {
	a, err := txtar.ParseFile(path)
	if err != nil {
		return nil, err
	}

	jar, err := ParseArchive(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return jar, nil
}

// Parse decodes archive data.
func Parse(data []byte) (classfile.Jar, error) {
	return ParseArchive(txtar.Parse(data))
}

// ParseArchive converts every member of a into a class.
func ParseArchive(a *txtar.Archive) (classfile.Jar, error) {
	jar := make(classfile.Jar, len(a.Files))

	for _, f := range a.Files {
		name := strings.TrimSuffix(f.Name, suffix)
		if name == "" {
			return nil, fmt.Errorf("member %q: %w: class name", f.Name, ErrIncomplete)
		}

		if _, ok := jar[name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateClass, name)
		}

		c, err := parseClass(name, f.Data)
		if err != nil {
			return nil, fmt.Errorf("class %s: %w", name, err)
		}

		jar[name] = c
	}

	return jar, nil
}

func parseClass(name string, data []byte) (*classfile.Class, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc classDoc
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	return doc.class(name)
}
