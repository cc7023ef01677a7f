/*
we32100 - Register file, PSW, and data-width definitions.

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

// Register file aliases. R0-R8 have no architectural role; R9-R15 do.
const (
	RFP  = 9
	RAP  = 10
	RPSW = 11
	RSP  = 12
	RPCBP = 13
	RISP = 14
	RPC  = 15
)

// PSW bitfields, per the WE32100 Processor Status Word layout.
const (
	FET  uint32 = 0x00000003
	FTM  uint32 = 0x00000004
	FISC uint32 = 0x00000078
	FI   uint32 = 0x00000080
	FR   uint32 = 0x00000100
	FPM  uint32 = 0x00000600
	FCM  uint32 = 0x00001800
	FIPL uint32 = 0x0001e000
	FTE  uint32 = 0x00020000
	FC   uint32 = 0x00040000
	FV   uint32 = 0x00080000
	FZ   uint32 = 0x00100000
	FN   uint32 = 0x00200000
	FOE  uint32 = 0x00400000
	FCD  uint32 = 0x00800000
	FQIE uint32 = 0x01000000
	FCFD uint32 = 0x02000000
)

// Data identifies the width and signedness an operand is read or written
// with.
type Data uint8

const (
	DNone Data = iota
	DByte
	DHalf
	DWord
	DSByte
	DUHalf
	DUWord
)

func (d Data) String() string {
	switch d {
	case DByte:
		return "Byte"
	case DHalf:
		return "Half"
	case DWord:
		return "Word"
	case DSByte:
		return "SByte"
	case DUHalf:
		return "UHalf"
	case DUWord:
		return "UWord"
	default:
		return "None"
	}
}

// AddrMode enumerates the 19 addressing modes an operand descriptor can
// decode to.
type AddrMode uint8

const (
	AddrNone AddrMode = iota
	AddrAbsolute
	AddrAbsoluteDeferred
	AddrByteDisplacement
	AddrByteDisplacementDeferred
	AddrHalfwordDisplacement
	AddrHalfwordDisplacementDeferred
	AddrWordDisplacement
	AddrWordDisplacementDeferred
	AddrAPShortOffset
	AddrFPShortOffset
	AddrByteImmediate
	AddrHalfwordImmediate
	AddrWordImmediate
	AddrPositiveLiteral
	AddrNegativeLiteral
	AddrRegister
	AddrRegisterDeferred
	AddrExpanded
)

// OpType is the role of an operand in a mnemonic's operand list.
type OpType uint8

const (
	OpLit OpType = iota
	OpSrc
	OpDest
)

// Operand is one decoded operand of an instruction.
type Operand struct {
	Size         uint8
	Mode         AddrMode
	DataType     Data
	ExpandedType Data
	HasExpanded  bool
	Register     int
	HasRegister  bool
	Embedded     uint32
}

// EffectiveDataType returns the operand's expanded type if an m=14
// prefix replaced it, else its natural mnemonic-driven type.
func (o Operand) EffectiveDataType() Data {
	if o.HasExpanded {
		return o.ExpandedType
	}
	return o.DataType
}

// Mnemonic describes one opcode's fixed shape: its numeric value, the
// data width literal/memory operands default to, its display name, and
// the ordered role of each operand it takes.
type Mnemonic struct {
	Opcode uint16
	DType  Data
	Name   string
	Ops    []OpType
}

// DecodedInstruction is the result of decoding one instruction at the PC.
type DecodedInstruction struct {
	Mnemonic *Mnemonic
	Bytes    uint8
	Operands []Operand
}
