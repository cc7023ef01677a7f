/*
we32100 - Instruction disassembler.

Copyright 2026, the we32100 authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

// Package disassemble renders a decoded instruction as a textual
// mnemonic line.
package disassemble

import (
	"fmt"
	"strings"

	"github.com/dmd5620/we32100/cpu"
)

// Format renders a decoded instruction as "NAME op1,op2,...".
func Format(d *cpu.DecodedInstruction) string {
	var b strings.Builder
	b.WriteString(d.Mnemonic.Name)
	for i, op := range d.Operands {
		if i == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteByte(',')
		}
		b.WriteString(formatOperand(op))
	}
	return b.String()
}

func formatOperand(op cpu.Operand) string {
	switch op.Mode {
	case cpu.AddrRegister:
		return fmt.Sprintf("%%r%d", op.Register)
	case cpu.AddrRegisterDeferred:
		return fmt.Sprintf("*%%r%d", op.Register)
	case cpu.AddrFPShortOffset:
		return fmt.Sprintf("%d(%%fp)", int8(op.Embedded))
	case cpu.AddrAPShortOffset:
		return fmt.Sprintf("%d(%%ap)", int8(op.Embedded))
	case cpu.AddrWordDisplacement:
		return fmt.Sprintf("%d(%%r%d)", int32(op.Embedded), op.Register)
	case cpu.AddrWordDisplacementDeferred:
		return fmt.Sprintf("*%d(%%r%d)", int32(op.Embedded), op.Register)
	case cpu.AddrHalfwordDisplacement:
		return fmt.Sprintf("%d(%%r%d)", int16(op.Embedded), op.Register)
	case cpu.AddrHalfwordDisplacementDeferred:
		return fmt.Sprintf("*%d(%%r%d)", int16(op.Embedded), op.Register)
	case cpu.AddrByteDisplacement:
		return fmt.Sprintf("%d(%%r%d)", int8(op.Embedded), op.Register)
	case cpu.AddrByteDisplacementDeferred:
		return fmt.Sprintf("*%d(%%r%d)", int8(op.Embedded), op.Register)
	case cpu.AddrAbsolute:
		return fmt.Sprintf("&%#x", op.Embedded)
	case cpu.AddrAbsoluteDeferred:
		return fmt.Sprintf("*&%#x", op.Embedded)
	case cpu.AddrByteImmediate, cpu.AddrHalfwordImmediate, cpu.AddrWordImmediate:
		return fmt.Sprintf("&%#x", op.Embedded)
	case cpu.AddrPositiveLiteral:
		return fmt.Sprintf("&%d", op.Embedded)
	case cpu.AddrNegativeLiteral:
		return fmt.Sprintf("&%d", int8(op.Embedded))
	case cpu.AddrNone:
		return fmt.Sprintf("&%#x", op.Embedded)
	default:
		return "?"
	}
}
