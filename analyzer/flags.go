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


package analyzer

import (
	"flag"
	"log/slog"

	"fillmore-labs.com/fieldusage/internal/config"
)

// RegisterFlags binds the analyzer options to command line flags and returns an [Option]
// carrying the flags given on the command line once it has been parsed.
// A nil flag set value defaults to the program's command line.
func RegisterFlags(flags *flag.FlagSet) Option {
	if flags == nil {
		flags = flag.CommandLine
	}

	o := &flagOption{}

	flags.Var(o.value(config.ValidateOwner), config.ValidateOwner.String(),
		"ignore references to fields the owner class neither declares nor inherits")
	flags.Var(o.value(config.SkipSynthetic), config.SkipSynthetic.String(),
		"do not report compiler-generated fields")

	return o
}

// flagOption applies only the flags explicitly set, so it can override earlier options.
type flagOption struct {
	values   config.Behaviors
	explicit config.Behaviors
}

func (o *flagOption) value(flag config.Behavior) boolValue[config.Behavior, *config.Behaviors] {
	return boolValue[config.Behavior, *config.Behaviors]{flags: &o.values, explicit: &o.explicit, value: flag}
}

func (o *flagOption) apply(r *runOptions) {
	for _, b := range config.AllBehaviors() {
		if o.explicit.Enabled(b) {
			r.behavior.Set(b, o.values.Enabled(b))
		}
	}
}

func (o *flagOption) LogAttr() slog.Attr {
	var as []any

	for _, b := range config.AllBehaviors() {
		if o.explicit.Enabled(b) {
			as = append(as, slog.Bool(b.String(), o.values.Enabled(b)))
		}
	}

	return slog.Group("flags", as...)
}
