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


package main

import (
	"context"
	"log/slog"

	"fillmore-labs.com/fieldusage/analyzer"
	"fillmore-labs.com/fieldusage/classfile"
	"fillmore-labs.com/fieldusage/internal/export"
	"fillmore-labs.com/fieldusage/internal/settings"
)

func exportGraph(ctx context.Context, logger *slog.Logger, target settings.Neo4j, jar classfile.Jar, res analyzer.Result) (err error) {
	l, err := export.NewLoader(ctx, target.URI, target.User, target.Password)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := l.Close(ctx); err == nil {
			err = cerr
		}
	}()

	if err := l.Export(ctx, jar, res); err != nil {
		return err
	}

	logger.Info("Exported report", "uri", target.URI, "classes", len(jar), "unused", len(res.Diff))

	return nil
}
