/*
we32100 - CPU register file, reset sequence, and instruction step.

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

// Package cpu implements the WE32100 instruction decoder, operand
// evaluation engine, and a minimal execution core (reset plus the MOVW/
// MOVH/MOVB family).
package cpu

import "github.com/dmd5620/we32100/bus"

// Cpu holds the 16-register file. Registers are addressed by index
// throughout decode and execute, since several architectural registers
// (FP, AP, PSW, SP, PCBP, ISP, PC) are just aliased slots in the same
// array.
type Cpu struct {
	R [16]uint32
	IR *DecodedInstruction
}

// New returns a Cpu with all registers zeroed. Callers must call Reset
// before Step to establish the initial PCB/PSW/PC/SP per the reset
// sequence.
func New() *Cpu {
	return &Cpu{}
}

// Reset implements the WE32100's hardware reset sequence (Processor
// Reference Manual, Reset state description): switch to physical
// addressing, fetch the PCB pointer from 0x80, then PSW/PC/SP from the
// PCB it points to.
//
// Step 6 of the documented sequence calls for a further word fetch
// (PCB+12) to reload the PCB register itself when PSW.I is set. What the
// hardware and every known software implementation actually do instead
// is clear I and advance PCBP by 12 without refetching — preserved here
// rather than "fixed" to match the datasheet, since deviating would
// silently change reset's observable PCBP for ISC-driven restart paths.
func (c *Cpu) Reset(b *bus.Bus) error {
	pcbp, err := b.ReadWord(0x80, bus.AddressFetch)
	if err != nil {
		return busErr(err)
	}
	c.R[RPCBP] = pcbp

	psw, err := b.ReadWord(c.R[RPCBP], bus.AddressFetch)
	if err != nil {
		return busErr(err)
	}
	c.R[RPSW] = psw

	pc, err := b.ReadWord(c.R[RPCBP]+4, bus.AddressFetch)
	if err != nil {
		return busErr(err)
	}
	c.R[RPC] = pc

	sp, err := b.ReadWord(c.R[RPCBP]+8, bus.AddressFetch)
	if err != nil {
		return busErr(err)
	}
	c.R[RSP] = sp

	if c.R[RPSW]&FI != 0 {
		c.R[RPSW] &^= FI
		c.R[RPCBP] += 12
	}

	c.SetISC(3)
	return nil
}

// SetPC sets the program counter directly, e.g. for a debugger.
func (c *Cpu) SetPC(val uint32) { c.R[RPC] = val }

// SetCFlag, SetVFlag, SetZFlag, SetNFlag toggle one PSW condition code
// bit, leaving the rest of the PSW untouched.
func (c *Cpu) SetCFlag(set bool) { c.setFlag(FC, set) }
func (c *Cpu) SetVFlag(set bool) { c.setFlag(FV, set) }
func (c *Cpu) SetZFlag(set bool) { c.setFlag(FZ, set) }
func (c *Cpu) SetNFlag(set bool) { c.setFlag(FN, set) }

func (c *Cpu) setFlag(mask uint32, set bool) {
	if set {
		c.R[RPSW] |= mask
	} else {
		c.R[RPSW] &^= mask
	}
}

// SetISC overwrites the PSW's Internal State Code field.
func (c *Cpu) SetISC(val uint32) {
	c.R[RPSW] &^= FISC
	c.R[RPSW] |= (val & 0xf) << 3
}

// SetPrivLevel sets the PSW's Current privilege level (CM), saving the
// prior CM into the Previous level (PM) field first.
func (c *Cpu) SetPrivLevel(val uint32) {
	oldLevel := (c.R[RPSW] & FCM) >> 11
	c.R[RPSW] &^= FPM
	c.R[RPSW] |= (oldLevel & 3) << 9
	c.R[RPSW] &^= FCM
	c.R[RPSW] |= (val & 3) << 11
}

// Decode decodes the instruction at the current PC without advancing it
// or executing it.
func (c *Cpu) Decode(b *bus.Bus) (*DecodedInstruction, error) {
	return DecodeAt(b, c.R[RPC])
}

// Step decodes and executes one instruction, advancing PC past it first
// so a taken branch (not yet implemented) can simply overwrite PC during
// execution. Only MOVW, MOVH, and MOVB are executed; every other opcode
// decodes cleanly but raises IllegalOpcode on execution.
func (c *Cpu) Step(b *bus.Bus) error {
	instr, err := c.Decode(b)
	if err != nil {
		return err
	}
	c.IR = instr
	c.R[RPC] += uint32(instr.Bytes)

	switch instr.Mnemonic.Opcode {
	case 0x84, 0x86, 0x87: // MOVW, MOVH, MOVB
		val, err := c.ReadOp(b, instr.Operands[0])
		if err != nil {
			return err
		}
		return c.WriteOp(b, instr.Operands[1], val)
	default:
		return excErr(IllegalOpcode)
	}
}
