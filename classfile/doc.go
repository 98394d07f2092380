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


// Package classfile holds the structural model of a closed set of compiled JVM classes.
//
// The model is produced by a class repository (see the archive loader) and treated as
// read-only by every analysis. A [Jar] maps internal class names to their [Class].
//
// # Inheritance
//
// Only single-superclass chains are modeled. A chain ends when the superclass name is
// empty or names a class outside the [Jar]; [Jar.Ancestors] walks it and reports a
// [*CycleError] when a class is reached twice.
package classfile
