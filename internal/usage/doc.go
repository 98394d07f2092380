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


// Package usage determines which declared fields of a jar are never referenced.
//
// Two visitors observe every class:
//
//   - [DeclaredFieldVisitor] records the own fields of a class and the public or
//     protected fields it inherits, attributed to the class itself.
//   - [ReferencedFieldVisitor] records the owner of every field instruction and
//     propagates the reference to ancestors declaring a visible field of the same
//     name and descriptor.
//
// [Stage.Identify] runs both and returns the set difference.
package usage
