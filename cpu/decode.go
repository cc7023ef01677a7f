/*
we32100 - Operand descriptor decoding.

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

// decodeOperandLiteral handles OpLit operands: a fixed-width immediate
// with no descriptor byte, width taken straight from the mnemonic's
// data type.
func decodeOperandLiteral(b *bus.Bus, mn *Mnemonic, addr uint32) (Operand, error) {
	switch mn.DType {
	case DByte:
		v, err := b.ReadByte(addr, bus.OperandFetch)
		if err != nil {
			return Operand{}, busErr(err)
		}
		return Operand{Size: 1, Mode: AddrNone, DataType: DByte, Embedded: uint32(v)}, nil
	case DHalf:
		v, err := b.ReadHalfUnaligned(addr, bus.OperandFetch)
		if err != nil {
			return Operand{}, busErr(err)
		}
		return Operand{Size: 2, Mode: AddrNone, DataType: DHalf, Embedded: uint32(v)}, nil
	case DWord:
		v, err := b.ReadWordUnaligned(addr, bus.OperandFetch)
		if err != nil {
			return Operand{}, busErr(err)
		}
		return Operand{Size: 4, Mode: AddrNone, DataType: DWord, Embedded: v}, nil
	default:
		return Operand{}, excErr(IllegalOpcode)
	}
}

// decodeOperandDescriptor recursively decodes one m/r descriptor byte at
// addr, following the WE32100's operand addressing-mode encoding. recur
// is true only for the inner call made when m=14 (Expanded) replaces the
// data type and re-reads a second descriptor byte.
func decodeOperandDescriptor(b *bus.Bus, dtype Data, etype Data, hasEtype bool, addr uint32, recur bool) (Operand, error) {
	descriptor, err := b.ReadByte(addr, bus.OperandFetch)
	if err != nil {
		return Operand{}, busErr(err)
	}

	m := (descriptor & 0xf0) >> 4
	r := descriptor & 0x0f

	dsize := uint8(1)
	if recur {
		dsize = 2
	}

	mk := func(size uint8, mode AddrMode, reg int, hasReg bool, embedded uint32) Operand {
		return Operand{
			Size: size, Mode: mode, DataType: dtype, ExpandedType: etype, HasExpanded: hasEtype,
			Register: reg, HasRegister: hasReg, Embedded: embedded,
		}
	}

	switch m {
	case 0, 1, 2, 3:
		return mk(dsize, AddrPositiveLiteral, 0, false, uint32(descriptor)), nil

	case 4:
		if r == 15 {
			w, err := b.ReadWordUnaligned(addr+1, bus.OperandFetch)
			if err != nil {
				return Operand{}, busErr(err)
			}
			return mk(dsize+4, AddrWordImmediate, 0, false, w), nil
		}
		return mk(dsize, AddrRegister, int(r), true, 0), nil

	case 5:
		switch r {
		case 15:
			h, err := b.ReadHalfUnaligned(addr+1, bus.OperandFetch)
			if err != nil {
				return Operand{}, busErr(err)
			}
			return mk(dsize+2, AddrHalfwordImmediate, 0, false, uint32(h)), nil
		case 11:
			return Operand{}, excErr(IllegalOpcode)
		default:
			return mk(dsize, AddrRegisterDeferred, int(r), true, 0), nil
		}

	case 6:
		if r == 15 {
			by, err := b.ReadByte(addr+1, bus.OperandFetch)
			if err != nil {
				return Operand{}, busErr(err)
			}
			return mk(dsize+1, AddrByteImmediate, 0, false, uint32(by)), nil
		}
		return mk(dsize, AddrFPShortOffset, RFP, true, uint32(r)), nil

	case 7:
		if r == 15 {
			w, err := b.ReadWordUnaligned(addr+1, bus.OperandFetch)
			if err != nil {
				return Operand{}, busErr(err)
			}
			return mk(dsize+4, AddrAbsolute, 0, false, w), nil
		}
		return mk(dsize, AddrAPShortOffset, RAP, true, uint32(r)), nil

	case 8:
		if r == 11 {
			return Operand{}, excErr(IllegalOpcode)
		}
		disp, err := b.ReadWordUnaligned(addr+1, bus.OperandFetch)
		if err != nil {
			return Operand{}, busErr(err)
		}
		return mk(dsize+4, AddrWordDisplacement, int(r), true, disp), nil

	case 9:
		if r == 11 {
			return Operand{}, excErr(IllegalOpcode)
		}
		disp, err := b.ReadWordUnaligned(addr+1, bus.OperandFetch)
		if err != nil {
			return Operand{}, busErr(err)
		}
		return mk(dsize+4, AddrWordDisplacementDeferred, int(r), true, disp), nil

	case 10:
		if r == 11 {
			return Operand{}, excErr(IllegalOpcode)
		}
		disp, err := b.ReadHalfUnaligned(addr+1, bus.OperandFetch)
		if err != nil {
			return Operand{}, busErr(err)
		}
		return mk(dsize+2, AddrHalfwordDisplacement, int(r), true, uint32(disp)), nil

	case 11:
		if r == 11 {
			return Operand{}, excErr(IllegalOpcode)
		}
		disp, err := b.ReadHalfUnaligned(addr+1, bus.OperandFetch)
		if err != nil {
			return Operand{}, busErr(err)
		}
		return mk(dsize+2, AddrHalfwordDisplacementDeferred, int(r), true, uint32(disp)), nil

	case 12:
		if r == 11 {
			return Operand{}, excErr(IllegalOpcode)
		}
		disp, err := b.ReadByte(addr+1, bus.OperandFetch)
		if err != nil {
			return Operand{}, busErr(err)
		}
		return mk(dsize+1, AddrByteDisplacement, int(r), true, uint32(disp)), nil

	case 13:
		if r == 11 {
			return Operand{}, excErr(IllegalOpcode)
		}
		disp, err := b.ReadByte(addr+1, bus.OperandFetch)
		if err != nil {
			return Operand{}, busErr(err)
		}
		return mk(dsize+1, AddrByteDisplacementDeferred, int(r), true, uint32(disp)), nil

	case 14:
		switch r {
		case 0:
			return decodeOperandDescriptor(b, dtype, DUWord, true, addr+1, true)
		case 2:
			return decodeOperandDescriptor(b, dtype, DUHalf, true, addr+1, true)
		case 3:
			return decodeOperandDescriptor(b, dtype, DByte, true, addr+1, true)
		case 4:
			return decodeOperandDescriptor(b, dtype, DWord, true, addr+1, true)
		case 6:
			return decodeOperandDescriptor(b, dtype, DHalf, true, addr+1, true)
		case 7:
			return decodeOperandDescriptor(b, dtype, DSByte, true, addr+1, true)
		default:
			return Operand{}, excErr(IllegalOpcode)
		}

	case 15:
		return mk(1, AddrNegativeLiteral, 0, false, uint32(descriptor)), nil

	default:
		return Operand{}, excErr(IllegalOpcode)
	}
}

func decodeOperand(b *bus.Bus, mn *Mnemonic, ot OpType, etype Data, hasEtype bool, addr uint32) (Operand, error) {
	if ot == OpLit {
		return decodeOperandLiteral(b, mn, addr)
	}
	return decodeOperandDescriptor(b, mn.DType, etype, hasEtype, addr, false)
}

// DecodeAt decodes the instruction at addr without touching PC, so
// callers (disassemblers, tests) can decode arbitrary locations.
func DecodeAt(b *bus.Bus, addr uint32) (*DecodedInstruction, error) {
	b1, err := b.ReadByte(addr, bus.InstrFetch)
	if err != nil {
		return nil, busErr(err)
	}
	addr++

	var mn Mnemonic
	prefixLen := uint32(1)
	if b1 == 0x30 {
		b2, err := b.ReadByte(addr, bus.InstrFetch)
		if err != nil {
			return nil, busErr(err)
		}
		addr++
		m, ok := halfwordOpcodes[b2]
		if !ok {
			return nil, excErr(IllegalOpcode)
		}
		mn = m
		prefixLen = 2
	} else {
		mn = opcodes[b1]
	}

	operands := make([]Operand, 0, len(mn.Ops))
	var etype Data
	var hasEtype bool

	for _, ot := range mn.Ops {
		o, err := decodeOperand(b, &mn, ot, etype, hasEtype, addr)
		if err != nil {
			return nil, err
		}
		etype = o.ExpandedType
		hasEtype = o.HasExpanded
		addr += uint32(o.Size)
		operands = append(operands, o)
	}

	var total uint32
	for _, o := range operands {
		total += uint32(o.Size)
	}

	mnCopy := mn
	return &DecodedInstruction{
		Mnemonic: &mnCopy,
		Bytes:    uint8(total + prefixLen),
		Operands: operands,
	}, nil
}
