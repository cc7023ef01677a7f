/*
we32100 - Effective address computation and typed operand read/write.

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

package cpu

import "github.com/dmd5620/we32100/bus"

func signExtendByte(v uint8) uint32  { return uint32(int32(int8(v))) }
func signExtendHalf(v uint16) uint32 { return uint32(int32(int16(v))) }

// EffectiveAddress resolves a memory-referencing operand's address. It
// is only valid for the memory addressing modes; literal, immediate, and
// register modes have no address and return IllegalOpcode.
func (c *Cpu) EffectiveAddress(b *bus.Bus, op Operand) (uint32, error) {
	switch op.Mode {
	case AddrRegisterDeferred:
		if !op.HasRegister {
			return 0, excErr(IllegalOpcode)
		}
		return c.R[op.Register], nil

	case AddrAbsolute:
		return op.Embedded, nil

	case AddrAbsoluteDeferred:
		v, err := b.ReadWord(op.Embedded, bus.AddressFetch)
		return v, busErr(err)

	case AddrFPShortOffset:
		return c.R[RFP] + signExtendByte(uint8(op.Embedded)), nil

	case AddrAPShortOffset:
		return c.R[RAP] + signExtendByte(uint8(op.Embedded)), nil

	case AddrWordDisplacement:
		if !op.HasRegister {
			return 0, excErr(IllegalOpcode)
		}
		return c.R[op.Register] + op.Embedded, nil

	case AddrWordDisplacementDeferred:
		if !op.HasRegister {
			return 0, excErr(IllegalOpcode)
		}
		v, err := b.ReadWord(c.R[op.Register]+op.Embedded, bus.AddressFetch)
		return v, busErr(err)

	case AddrHalfwordDisplacement:
		if !op.HasRegister {
			return 0, excErr(IllegalOpcode)
		}
		return c.R[op.Register] + signExtendHalf(uint16(op.Embedded)), nil

	case AddrHalfwordDisplacementDeferred:
		if !op.HasRegister {
			return 0, excErr(IllegalOpcode)
		}
		v, err := b.ReadWord(c.R[op.Register]+signExtendHalf(uint16(op.Embedded)), bus.AddressFetch)
		return v, busErr(err)

	case AddrByteDisplacement:
		if !op.HasRegister {
			return 0, excErr(IllegalOpcode)
		}
		return c.R[op.Register] + signExtendByte(uint8(op.Embedded)), nil

	case AddrByteDisplacementDeferred:
		if !op.HasRegister {
			return 0, excErr(IllegalOpcode)
		}
		v, err := b.ReadWord(c.R[op.Register]+signExtendByte(uint8(op.Embedded)), bus.AddressFetch)
		return v, busErr(err)

	default:
		return 0, excErr(IllegalOpcode)
	}
}

// ReadOp reads the value an operand refers to, applying the width and
// sign/zero extension its (possibly expanded) data type calls for.
func (c *Cpu) ReadOp(b *bus.Bus, op Operand) (uint32, error) {
	switch op.Mode {
	case AddrRegister:
		if !op.HasRegister {
			return 0, excErr(IllegalOpcode)
		}
		r := c.R[op.Register]
		switch op.EffectiveDataType() {
		case DWord, DUWord:
			return r, nil
		case DHalf:
			return signExtendHalf(uint16(r)), nil
		case DUHalf:
			return uint32(uint16(r)), nil
		case DByte:
			return uint32(uint8(r)), nil
		case DSByte:
			return signExtendByte(uint8(r)), nil
		default:
			return 0, excErr(IllegalOpcode)
		}

	case AddrPositiveLiteral, AddrNegativeLiteral:
		return signExtendByte(uint8(op.Embedded)), nil

	case AddrWordImmediate:
		return op.Embedded, nil

	case AddrHalfwordImmediate:
		return signExtendHalf(uint16(op.Embedded)), nil

	case AddrByteImmediate:
		return signExtendByte(uint8(op.Embedded)), nil

	default:
		eff, err := c.EffectiveAddress(b, op)
		if err != nil {
			return 0, err
		}
		switch op.EffectiveDataType() {
		case DWord, DUWord:
			v, err := b.ReadWord(eff, bus.InstrFetch)
			return v, busErr(err)
		case DHalf:
			v, err := b.ReadHalf(eff, bus.InstrFetch)
			return signExtendHalf(v), busErr(err)
		case DUHalf:
			v, err := b.ReadHalf(eff, bus.InstrFetch)
			return uint32(v), busErr(err)
		case DByte:
			v, err := b.ReadByte(eff, bus.InstrFetch)
			return uint32(v), busErr(err)
		case DSByte:
			v, err := b.ReadByte(eff, bus.InstrFetch)
			return signExtendByte(v), busErr(err)
		default:
			return 0, excErr(IllegalOpcode)
		}
	}
}

// WriteOp stores val to the location an operand refers to. Memory
// destinations are written at the operand's (possibly expanded) width;
// a register destination receives the full 32-bit val, untruncated.
// Literal and immediate operands cannot be written to.
func (c *Cpu) WriteOp(b *bus.Bus, op Operand, val uint32) error {
	switch op.Mode {
	case AddrRegister:
		if !op.HasRegister {
			return excErr(IllegalOpcode)
		}
		c.R[op.Register] = val
		return nil

	case AddrNegativeLiteral, AddrPositiveLiteral, AddrByteImmediate, AddrHalfwordImmediate, AddrWordImmediate:
		return excErr(IllegalOpcode)

	default:
		eff, err := c.EffectiveAddress(b, op)
		if err != nil {
			return err
		}
		switch op.EffectiveDataType() {
		case DWord, DUWord:
			return busErr(b.WriteWord(eff, val))
		case DHalf, DUHalf:
			return busErr(b.WriteHalf(eff, uint16(val)))
		case DByte, DSByte:
			return busErr(b.WriteByte(eff, byte(val)))
		default:
			return excErr(IllegalOpcode)
		}
	}
}
