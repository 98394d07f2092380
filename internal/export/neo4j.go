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


// Package export writes field usage reports into a Neo4j graph.
package export

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"fillmore-labs.com/fieldusage/classfile"
	"fillmore-labs.com/fieldusage/internal/usage"
)

// Loader writes classes and unused fields using batched UNWIND queries.
type Loader struct {
	driver neo4j.DriverWithContext
}

// NewLoader connects to the Neo4j instance at uri.
func NewLoader(ctx context.Context, uri, user, password string) (*Loader, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(user, password, ""))
	if err != nil {
		return nil, fmt.Errorf("can't create neo4j driver: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)

		return nil, fmt.Errorf("can't connect to %s: %w", uri, err)
	}

	return &Loader{driver: driver}, nil
}

// Close releases the driver resources.
func (l *Loader) Close(ctx context.Context) error {
	return l.driver.Close(ctx)
}

var indexes = [...]string{
	"CREATE INDEX jvm_class_name IF NOT EXISTS FOR (n:JvmClass) ON (n.name)",
	"CREATE INDEX unused_field_key IF NOT EXISTS FOR (n:UnusedField) ON (n.key)",
}

const (
	mergeClasses = `UNWIND $rows AS row
MERGE (c:JvmClass {name: row.name})
SET c.super = row.super, c.access = row.access`

	mergeExtends = `UNWIND $rows AS row
MATCH (c:JvmClass {name: row.sub}), (p:JvmClass {name: row.super})
MERGE (c)-[:EXTENDS]->(p)`

	mergeUnused = `UNWIND $rows AS row
MATCH (c:JvmClass {name: row.class})
MERGE (f:UnusedField {key: row.key})
SET f.name = row.name, f.desc = row.desc
MERGE (c)-[:DECLARES_UNUSED]->(f)`
)

// Export writes the classes of jar, their superclass relations and the unused fields of res.
func (l *Loader) Export(ctx context.Context, jar classfile.Jar, res usage.Result) error {
	for _, q := range indexes {
		if err := l.run(ctx, q, nil); err != nil {
			return err
		}
	}

	batches := [...]struct {
		cypher string
		rows   []map[string]any
	}{
		{mergeClasses, classRows(jar)},
		{mergeExtends, extendsRows(jar)},
		{mergeUnused, unusedRows(res.Diff)},
	}

	for _, b := range batches {
		if len(b.rows) == 0 {
			continue
		}

		if err := l.run(ctx, b.cypher, map[string]any{"rows": b.rows}); err != nil {
			return err
		}
	}

	return nil
}

func (l *Loader) run(ctx context.Context, cypher string, params map[string]any) error {
	if _, err := neo4j.ExecuteQuery(ctx, l.driver, cypher, params, neo4j.EagerResultTransformer); err != nil {
		return fmt.Errorf("neo4j: %w", err)
	}

	return nil
}

func classRows(jar classfile.Jar) []map[string]any {
	rows := make([]map[string]any, 0, len(jar))
	for _, name := range jar.Names() {
		c := jar[name]
		rows = append(rows, map[string]any{
			"name":   c.Name,
			"super":  c.SuperName,
			"access": c.Access.String(),
		})
	}

	return rows
}

// extendsRows lists superclass relations within jar.
func extendsRows(jar classfile.Jar) []map[string]any {
	var rows []map[string]any
	for _, name := range jar.Names() {
		c := jar[name]
		if _, ok := jar.Superclass(c); !ok {
			continue
		}

		rows = append(rows, map[string]any{"sub": c.Name, "super": c.SuperName})
	}

	return rows
}

func unusedRows(diff []classfile.FieldKey) []map[string]any {
	rows := make([]map[string]any, 0, len(diff))
	for _, k := range diff {
		rows = append(rows, map[string]any{
			"key":   k.String(),
			"class": k.Class,
			"name":  k.Name,
			"desc":  k.Desc,
		})
	}

	return rows
}
