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
	"log/slog"

	"fillmore-labs.com/fieldusage/internal/config"
)

// Option configures specific behavior of the field usage analysis.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that also implements [Option].
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr implements [Option].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithValidateOwner drops field references whose owner class neither declares nor
// visibly inherits the field. By default such references are counted on the owner.
func WithValidateOwner(validate bool) Option {
	return behaviorOption{flag: config.ValidateOwner, value: validate}
}

// WithSkipSynthetic excludes compiler-generated fields from the declared fields.
func WithSkipSynthetic(skip bool) Option {
	return behaviorOption{flag: config.SkipSynthetic, value: skip}
}

type behaviorOption struct {
	flag  config.Behavior
	value bool
}

func (o behaviorOption) apply(r *runOptions) {
	r.behavior.Set(o.flag, o.value)
}

func (o behaviorOption) LogAttr() slog.Attr {
	return slog.Bool(o.flag.String(), o.value)
}
