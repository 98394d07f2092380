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


// Package settings reads the optional YAML settings file of the fieldusage command.
package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"fillmore-labs.com/fieldusage/analyzer"
)

// Settings represents the configuration file of a fieldusage run.
type Settings struct {
	// ValidateOwner drops references to fields the owner neither declares nor inherits.
	ValidateOwner *bool `yaml:"validate-owner,omitempty"`
	// SkipSynthetic excludes compiler-generated fields.
	SkipSynthetic *bool `yaml:"skip-synthetic,omitempty"`
	// Neo4j configures the optional graph export.
	Neo4j Neo4j `yaml:"neo4j,omitempty"`
}

// Neo4j holds the connection settings for the graph export.
type Neo4j struct {
	URI      string `yaml:"uri,omitempty"`
	User     string `yaml:"user,omitempty"`
	Password string `yaml:"password,omitempty"`
}

// Enabled reports whether an export target is configured.
func (n Neo4j) Enabled() bool {
	return n.URI != ""
}

// Load reads settings from the YAML file at path.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}

	s, err := Parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Parse decodes settings, rejecting unknown keys. Empty input yields zero settings.
func Parse(data []byte) (Settings, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Settings
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, err
	}

	return s, nil
}

// Options converts [Settings] into a list of [analyzer.Option].
// It applies settings only when explicitly set (non-nil).
func (s Settings) Options() []analyzer.Option {
	var opts []analyzer.Option

	opts = appendOption(opts, s.ValidateOwner, analyzer.WithValidateOwner)
	opts = appendOption(opts, s.SkipSynthetic, analyzer.WithSkipSynthetic)

	return opts
}

// appendOption appends a non-nil setting to an [analyzer.Option] list.
func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
