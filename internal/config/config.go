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


package config

// Behavior selects optional refinements of the field usage analysis.
type Behavior uint8

const (
	// ValidateOwner drops field references whose owner class neither declares
	// nor visibly inherits the referenced field.
	ValidateOwner Behavior = 1 << iota

	// SkipSynthetic excludes compiler-generated fields from the declared set.
	SkipSynthetic
)

// AllBehaviors lists every [Behavior] flag.
func AllBehaviors() []Behavior {
	return []Behavior{ValidateOwner, SkipSynthetic}
}

// String returns the command line name of a single flag.
func (b Behavior) String() string {
	switch b {
	case ValidateOwner:
		return "validate-owner"

	case SkipSynthetic:
		return "skip-synthetic"

	default:
		return "unknown"
	}
}

// Behaviors is the [BitMask] of enabled [Behavior] flags.
type Behaviors = BitMask[Behavior]

// DefaultBehavior returns the behavior matching the unrefined analysis: all refinements off.
func DefaultBehavior() Behaviors {
	return NewBitMask[Behavior]()
}
