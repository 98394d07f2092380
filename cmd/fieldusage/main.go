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


// Command fieldusage reports fields of a jar that are declared but never referenced.
//
// Usage:
//
//	fieldusage [flags] jar.txtar
//
// The jar is a textual archive, see package archive for the format.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"fillmore-labs.com/fieldusage/analyzer"
	"fillmore-labs.com/fieldusage/internal/archive"
	"fillmore-labs.com/fieldusage/internal/settings"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

type cliFlags struct {
	verbose    bool
	list       bool
	configPath string
	neo4j      settings.Neo4j
	options    analyzer.Option
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fieldusage", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var f cliFlags

	fs.BoolVar(&f.verbose, "v", false, "log progress to stderr")
	fs.BoolVar(&f.list, "list", false, "list every field declared but not referenced")
	fs.StringVar(&f.configPath, "config", "", "path to a YAML settings file")
	fs.StringVar(&f.neo4j.URI, "neo4j-uri", "", "export the report to the Neo4j instance at this URI")
	fs.StringVar(&f.neo4j.User, "neo4j-user", "", "Neo4j user name")
	f.options = analyzer.RegisterFlags(fs)

	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: %s [flags] <jar.txtar>\n\n", fs.Name())
		_, _ = fmt.Fprintln(stderr, "Reports fields that are declared but never referenced.")
		_, _ = fmt.Fprintln(stderr)
		_, _ = fmt.Fprintln(stderr, "Flags:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 2
	}

	if fs.NArg() != 1 {
		_, _ = fmt.Fprintln(stderr, "error: exactly one jar argument is required")
		fs.Usage()

		return 2
	}

	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if err := analyze(ctx, logger, fs.Arg(0), f, stdout); err != nil {
		logger.Error("Field usage analysis failed", "error", err)

		return 1
	}

	return 0
}

func analyze(ctx context.Context, logger *slog.Logger, path string, f cliFlags, stdout io.Writer) error {
	var s settings.Settings
	if f.configPath != "" {
		var err error
		if s, err = settings.Load(f.configPath); err != nil {
			return err
		}
	}

	opts := analyzer.Options(append(s.Options(), f.options))
	logger.Debug("Configured analysis", "options", opts)

	jar, err := archive.Load(path)
	if err != nil {
		return err
	}

	logger.Debug("Loaded jar", "path", path, "classes", len(jar))

	p := analyzer.New(opts)
	p.After(func(elapsed time.Duration) {
		res, err := analyzer.Identification(p)
		if err != nil {
			logger.Error("Missing identification result", "error", err)

			return
		}

		_, _ = fmt.Fprintf(stdout, "Fields declared but not referenced: %d.\n", len(res.Diff))
		_, _ = fmt.Fprintf(stdout, "Fields referenced: %d/%d\n", res.Referenced, res.Declared)

		if f.list {
			for _, k := range res.Diff {
				_, _ = fmt.Fprintf(stdout, "  %s\n", k)
			}
		}

		_, _ = fmt.Fprintf(stdout, "Unused Field Pipeline completed in %.3fs\n", elapsed.Seconds())
	})

	if err := p.Execute(ctx, jar); err != nil {
		return err
	}

	logger.Debug("Analysis finished", "elapsed", p.Elapsed())

	target := mergeNeo4j(s.Neo4j, f.neo4j)
	if !target.Enabled() {
		return nil
	}

	res, err := analyzer.Identification(p)
	if err != nil {
		return err
	}

	return exportGraph(ctx, logger, target, jar, res)
}

// mergeNeo4j overrides settings with command line values. The password is taken from
// the NEO4J_PASSWORD environment variable when not configured.
func mergeNeo4j(s, cli settings.Neo4j) settings.Neo4j {
	if cli.URI != "" {
		s.URI = cli.URI
	}

	if cli.User != "" {
		s.User = cli.User
	}

	if s.User == "" {
		s.User = "neo4j"
	}

	if s.Password == "" {
		s.Password = os.Getenv("NEO4J_PASSWORD")
	}

	return s
}
