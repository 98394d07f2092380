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
	"errors"
	"fmt"
	"strings"
)

// AccessFlags is the access_flags bit set of a class, field or method.
type AccessFlags uint16

// Access flag bits as defined by the class-file format.
const (
	AccPublic     AccessFlags = 0x0001
	AccPrivate    AccessFlags = 0x0002
	AccProtected  AccessFlags = 0x0004
	AccStatic     AccessFlags = 0x0008
	AccFinal      AccessFlags = 0x0010
	AccSuper      AccessFlags = 0x0020
	AccVolatile   AccessFlags = 0x0040
	AccTransient  AccessFlags = 0x0080
	AccNative     AccessFlags = 0x0100
	AccInterface  AccessFlags = 0x0200
	AccAbstract   AccessFlags = 0x0400
	AccStrict     AccessFlags = 0x0800
	AccSynthetic  AccessFlags = 0x1000
	AccAnnotation AccessFlags = 0x2000
	AccEnum       AccessFlags = 0x4000
)

// ErrUnknownAccess is returned by [ParseAccessFlag] for unrecognized keywords.
var ErrUnknownAccess = errors.New("unknown access flag")

var accessNames = [...]struct {
	flag AccessFlags
	name string
}{
	// keep-sorted start
	{AccAbstract, "abstract"},
	{AccAnnotation, "annotation"},
	{AccEnum, "enum"},
	{AccFinal, "final"},
	{AccInterface, "interface"},
	{AccNative, "native"},
	{AccPrivate, "private"},
	{AccProtected, "protected"},
	{AccPublic, "public"},
	{AccStatic, "static"},
	{AccStrict, "strict"},
	{AccSuper, "super"},
	{AccSynthetic, "synthetic"},
	{AccTransient, "transient"},
	{AccVolatile, "volatile"},
	// keep-sorted end
}

// ParseAccessFlag returns the flag for a lower-case keyword like "public".
func ParseAccessFlag(keyword string) (AccessFlags, error) {
	for _, a := range accessNames {
		if a.name == keyword {
			return a.flag, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAccess, keyword)
}

// Has reports whether any bit of flag is set.
func (f AccessFlags) Has(flag AccessFlags) bool {
	return f&flag != 0
}

// VisibleToChildren reports whether a member with these flags is usable by a subclass,
// which is the case for public and protected members.
func (f AccessFlags) VisibleToChildren() bool {
	return f.Has(AccPublic | AccProtected)
}

// String returns the keywords of the set bits in alphabetical order, separated by spaces.
func (f AccessFlags) String() string {
	var names []string

	rest := f
	for _, a := range accessNames {
		if f.Has(a.flag) {
			names = append(names, a.name)
			rest &^= a.flag
		}
	}

	if rest != 0 {
		names = append(names, fmt.Sprintf("%#04x", uint16(rest)))
	}

	return strings.Join(names, " ")
}
