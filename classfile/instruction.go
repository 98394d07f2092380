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

import "strconv"

// Instruction is a decoded bytecode instruction.
type Instruction interface {
	Opcode() Opcode
}

// FieldInsn accesses a field: getstatic, putstatic, getfield or putfield.
type FieldInsn struct {
	Op Opcode
	// Owner is the internal name of the class named by the instruction,
	// which is not necessarily the class declaring the field.
	Owner string
	Name  string
	Desc  string
}

// Opcode implements [Instruction].
func (i FieldInsn) Opcode() Opcode { return i.Op }

// Key returns the field identity as named by the instruction.
func (i FieldInsn) Key() FieldKey {
	return FieldKey{Class: i.Owner, Name: i.Name, Desc: i.Desc}
}

// MethodInsn invokes a method.
type MethodInsn struct {
	Op    Opcode
	Owner string
	Name  string
	Desc  string
}

// Opcode implements [Instruction].
func (i MethodInsn) Opcode() Opcode { return i.Op }

// TypeInsn takes a class operand: new, anewarray, checkcast or instanceof.
type TypeInsn struct {
	Op   Opcode
	Type string
}

// Opcode implements [Instruction].
func (i TypeInsn) Opcode() Opcode { return i.Op }

// Insn is any other instruction. Operands are not modeled.
type Insn struct {
	Op Opcode
}

// Opcode implements [Instruction].
func (i Insn) Opcode() Opcode { return i.Op }

// Opcode is a JVM instruction opcode.
type Opcode uint8

// Opcodes with a modeled mnemonic.
const (
	OpNop             Opcode = 0x00
	OpAconstNull      Opcode = 0x01
	OpIconstM1        Opcode = 0x02
	OpIconst0         Opcode = 0x03
	OpIconst1         Opcode = 0x04
	OpBipush          Opcode = 0x10
	OpSipush          Opcode = 0x11
	OpLdc             Opcode = 0x12
	OpIload           Opcode = 0x15
	OpAload           Opcode = 0x19
	OpAload0          Opcode = 0x2a
	OpAload1          Opcode = 0x2b
	OpIstore          Opcode = 0x36
	OpAstore          Opcode = 0x3a
	OpPop             Opcode = 0x57
	OpDup             Opcode = 0x59
	OpIadd            Opcode = 0x60
	OpIsub            Opcode = 0x64
	OpIfeq            Opcode = 0x99
	OpIfne            Opcode = 0x9a
	OpGoto            Opcode = 0xa7
	OpIreturn         Opcode = 0xac
	OpAreturn         Opcode = 0xb0
	OpReturn          Opcode = 0xb1
	OpGetstatic       Opcode = 0xb2
	OpPutstatic       Opcode = 0xb3
	OpGetfield        Opcode = 0xb4
	OpPutfield        Opcode = 0xb5
	OpInvokevirtual   Opcode = 0xb6
	OpInvokespecial   Opcode = 0xb7
	OpInvokestatic    Opcode = 0xb8
	OpInvokeinterface Opcode = 0xb9
	OpInvokedynamic   Opcode = 0xba
	OpNew             Opcode = 0xbb
	OpNewarray        Opcode = 0xbc
	OpAnewarray       Opcode = 0xbd
	OpArraylength     Opcode = 0xbe
	OpAthrow          Opcode = 0xbf
	OpCheckcast       Opcode = 0xc0
	OpInstanceof      Opcode = 0xc1
	OpMonitorenter    Opcode = 0xc2
	OpMonitorexit     Opcode = 0xc3
)

var mnemonics = map[Opcode]string{
	OpNop:             "nop",
	OpAconstNull:      "aconst_null",
	OpIconstM1:        "iconst_m1",
	OpIconst0:         "iconst_0",
	OpIconst1:         "iconst_1",
	OpBipush:          "bipush",
	OpSipush:          "sipush",
	OpLdc:             "ldc",
	OpIload:           "iload",
	OpAload:           "aload",
	OpAload0:          "aload_0",
	OpAload1:          "aload_1",
	OpIstore:          "istore",
	OpAstore:          "astore",
	OpPop:             "pop",
	OpDup:             "dup",
	OpIadd:            "iadd",
	OpIsub:            "isub",
	OpIfeq:            "ifeq",
	OpIfne:            "ifne",
	OpGoto:            "goto",
	OpIreturn:         "ireturn",
	OpAreturn:         "areturn",
	OpReturn:          "return",
	OpGetstatic:       "getstatic",
	OpPutstatic:       "putstatic",
	OpGetfield:        "getfield",
	OpPutfield:        "putfield",
	OpInvokevirtual:   "invokevirtual",
	OpInvokespecial:   "invokespecial",
	OpInvokestatic:    "invokestatic",
	OpInvokeinterface: "invokeinterface",
	OpInvokedynamic:   "invokedynamic",
	OpNew:             "new",
	OpNewarray:        "newarray",
	OpAnewarray:       "anewarray",
	OpArraylength:     "arraylength",
	OpAthrow:          "athrow",
	OpCheckcast:       "checkcast",
	OpInstanceof:      "instanceof",
	OpMonitorenter:    "monitorenter",
	OpMonitorexit:     "monitorexit",
}

var opcodes = func() map[string]Opcode {
	m := make(map[string]Opcode, len(mnemonics))
	for op, name := range mnemonics {
		m[name] = op
	}

	return m
}()

// LookupOpcode returns the opcode for a lower-case mnemonic.
func LookupOpcode(mnemonic string) (Opcode, bool) {
	op, ok := opcodes[mnemonic]

	return op, ok
}

// String returns the mnemonic, or the hexadecimal opcode when it is not modeled.
func (op Opcode) String() string {
	if name, ok := mnemonics[op]; ok {
		return name
	}

	return "Opcode(0x" + strconv.FormatUint(uint64(op), 16) + ")"
}

// IsFieldAccess reports whether op is getstatic, putstatic, getfield or putfield.
func (op Opcode) IsFieldAccess() bool {
	return op >= OpGetstatic && op <= OpPutfield
}

// IsInvoke reports whether op is one of the invoke instructions.
func (op Opcode) IsInvoke() bool {
	return op >= OpInvokevirtual && op <= OpInvokedynamic
}

// IsTypeOperand reports whether op takes a class operand.
func (op Opcode) IsTypeOperand() bool {
	switch op {
	case OpNew, OpAnewarray, OpCheckcast, OpInstanceof:
		return true

	default:
		return false
	}
}
