/*
we32100 - Primary and half-word opcode tables.

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

// opcodes is the primary, one-byte-prefixed opcode table, all 256
// entries. Unassigned bytes decode to "???" with no operands; decoding
// one never raises, only executing it does.
var opcodes = [256]Mnemonic{
	0x00: {0x00, DNone, "halt", nil},
	0x01: {0x01, DNone, "???", nil},
	0x02: {0x02, DWord, "SPOPRD", []OpType{OpLit, OpSrc}},
	0x03: {0x03, DWord, "SPOPRD2", []OpType{OpLit, OpSrc, OpDest}},
	0x04: {0x04, DWord, "MOVAW", []OpType{OpSrc, OpDest}},
	0x05: {0x05, DNone, "???", nil},
	0x06: {0x06, DWord, "SPOPRT", []OpType{OpLit, OpSrc}},
	0x07: {0x07, DWord, "SPOPT2", []OpType{OpLit, OpSrc, OpDest}},
	0x08: {0x08, DNone, "RET", nil},
	0x09: {0x09, DNone, "???", nil},
	0x0A: {0x0A, DNone, "???", nil},
	0x0B: {0x0B, DNone, "???", nil},
	0x0C: {0x0C, DWord, "MOVTRW", []OpType{OpSrc, OpDest}},
	0x0D: {0x0D, DNone, "???", nil},
	0x0E: {0x0E, DNone, "???", nil},
	0x0F: {0x0F, DNone, "???", nil},
	0x10: {0x10, DWord, "SAVE", []OpType{OpSrc}},
	0x11: {0x11, DNone, "???", nil},
	0x12: {0x12, DNone, "???", nil},
	0x13: {0x13, DWord, "SPOPWD", []OpType{OpLit, OpDest}},
	0x14: {0x14, DByte, "EXTOP", nil},
	0x15: {0x15, DNone, "???", nil},
	0x16: {0x16, DNone, "???", nil},
	0x17: {0x17, DWord, "SPOPWT", []OpType{OpLit, OpDest}},
	0x18: {0x18, DNone, "RESTORE", []OpType{OpSrc}},
	0x19: {0x19, DNone, "???", nil},
	0x1A: {0x1A, DNone, "???", nil},
	0x1B: {0x1B, DNone, "???", nil},
	0x1C: {0x1C, DWord, "SWAPWI", []OpType{OpDest}},
	0x1D: {0x1D, DNone, "???", nil},
	0x1E: {0x1E, DHalf, "SWAPHI", []OpType{OpDest}},
	0x1F: {0x1F, DByte, "SWAPBI", []OpType{OpDest}},
	0x20: {0x20, DWord, "POPW", []OpType{OpSrc}},
	0x21: {0x21, DNone, "???", nil},
	0x22: {0x22, DWord, "SPOPRS", []OpType{OpLit, OpSrc}},
	0x23: {0x23, DWord, "SPOPS2", []OpType{OpLit, OpSrc, OpDest}},
	0x24: {0x24, DWord, "JMP", []OpType{OpDest}},
	0x25: {0x25, DNone, "???", nil},
	0x26: {0x26, DNone, "???", nil},
	0x27: {0x27, DNone, "CFLUSH", nil},
	0x28: {0x28, DWord, "TSTW", []OpType{OpSrc}},
	0x29: {0x29, DNone, "???", nil},
	0x2A: {0x2A, DHalf, "TSTH", []OpType{OpSrc}},
	0x2B: {0x2B, DByte, "TSTB", []OpType{OpSrc}},
	0x2C: {0x2C, DWord, "CALL", []OpType{OpSrc, OpDest}},
	0x2D: {0x2D, DNone, "???", nil},
	0x2E: {0x2E, DNone, "BPT", nil},
	0x2F: {0x2F, DNone, "WAIT", nil},
	0x30: {0x30, DNone, "???", nil},
	0x31: {0x31, DNone, "???", nil},
	0x32: {0x32, DWord, "SPOP", []OpType{OpLit}},
	0x33: {0x33, DWord, "SPOPWS", []OpType{OpLit, OpDest}},
	0x34: {0x34, DWord, "JSB", []OpType{OpDest}},
	0x35: {0x35, DNone, "???", nil},
	0x36: {0x36, DHalf, "BSBH", []OpType{OpLit}},
	0x37: {0x37, DByte, "BSBB", []OpType{OpLit}},
	0x38: {0x38, DWord, "BITW", []OpType{OpSrc, OpSrc}},
	0x39: {0x39, DNone, "???", nil},
	0x3A: {0x3A, DHalf, "BITH", []OpType{OpSrc, OpSrc}},
	0x3B: {0x3B, DByte, "BITB", []OpType{OpSrc, OpSrc}},
	0x3C: {0x3C, DWord, "CMPW", []OpType{OpSrc, OpSrc}},
	0x3D: {0x3D, DNone, "???", nil},
	0x3E: {0x3E, DHalf, "CMPH", []OpType{OpSrc, OpSrc}},
	0x3F: {0x3F, DByte, "CMPB", []OpType{OpSrc, OpSrc}},
	0x40: {0x40, DNone, "RGEQ", nil},
	0x41: {0x41, DNone, "???", nil},
	0x42: {0x42, DHalf, "BGEH", []OpType{OpLit}},
	0x43: {0x43, DByte, "BGEB", []OpType{OpLit}},
	0x44: {0x44, DNone, "RGTR", nil},
	0x45: {0x45, DNone, "???", nil},
	0x46: {0x46, DHalf, "BGH", []OpType{OpLit}},
	0x47: {0x47, DByte, "BGB", []OpType{OpLit}},
	0x48: {0x48, DNone, "RLSS", nil},
	0x49: {0x49, DNone, "???", nil},
	0x4A: {0x4A, DHalf, "BLH", []OpType{OpLit}},
	0x4B: {0x4B, DByte, "BLB", []OpType{OpLit}},
	0x4C: {0x4C, DNone, "RLEQ", nil},
	0x4D: {0x4D, DNone, "???", nil},
	0x4E: {0x4E, DHalf, "BLEH", []OpType{OpLit}},
	0x4F: {0x4F, DByte, "BLEB", []OpType{OpLit}},
	0x50: {0x50, DNone, "RGEQU", nil}, // a.k.a. RCC
	0x51: {0x51, DNone, "???", nil},
	0x52: {0x52, DHalf, "BGEUH", []OpType{OpLit}},
	0x53: {0x53, DByte, "BGEUB", []OpType{OpLit}},
	0x54: {0x54, DNone, "RGTRU", nil},
	0x55: {0x55, DNone, "???", nil},
	0x56: {0x56, DHalf, "BGUH", []OpType{OpLit}},
	0x57: {0x57, DByte, "BGUB", []OpType{OpLit}},
	0x58: {0x58, DNone, "RLSSU", nil}, // a.k.a. RCS
	0x59: {0x59, DNone, "???", nil},
	0x5A: {0x5A, DHalf, "BLUH", []OpType{OpLit}},
	0x5B: {0x5B, DByte, "BLUB", []OpType{OpLit}},
	0x5C: {0x5C, DNone, "RLEQU", nil},
	0x5D: {0x5D, DNone, "???", nil},
	0x5E: {0x5E, DHalf, "BLEUH", []OpType{OpLit}},
	0x5F: {0x5F, DByte, "BLEUB", []OpType{OpLit}},
	0x60: {0x60, DNone, "RVC", nil},
	0x61: {0x61, DNone, "???", nil},
	0x62: {0x62, DHalf, "BVCH", []OpType{OpLit}},
	0x63: {0x63, DByte, "BVCB", []OpType{OpLit}},
	0x64: {0x64, DNone, "RNEQU", nil},
	0x65: {0x65, DNone, "???", nil},
	0x66: {0x66, DHalf, "BNEH", []OpType{OpLit}},
	0x67: {0x67, DByte, "BNEB", []OpType{OpLit}},
	0x68: {0x68, DNone, "RVS", nil},
	0x69: {0x69, DNone, "???", nil},
	0x6A: {0x6A, DHalf, "BVSH", []OpType{OpLit}},
	0x6B: {0x6B, DByte, "BVSB", []OpType{OpLit}},
	0x6C: {0x6C, DNone, "REQLU", nil},
	0x6D: {0x6D, DNone, "???", nil},
	0x6E: {0x6E, DHalf, "BEH", []OpType{OpLit}},
	0x6F: {0x6F, DByte, "BEB", []OpType{OpLit}},
	0x70: {0x70, DNone, "NOP", nil},
	0x71: {0x71, DNone, "???", nil},
	0x72: {0x72, DNone, "NOP3", nil},
	0x73: {0x73, DNone, "NOP2", nil},
	0x74: {0x74, DNone, "RNEQ", nil},
	0x75: {0x75, DNone, "???", nil},
	0x76: {0x76, DHalf, "BNEH", []OpType{OpLit}},
	0x77: {0x77, DByte, "BNEB", []OpType{OpLit}},
	0x78: {0x78, DNone, "RSB", nil},
	0x79: {0x79, DNone, "???", nil},
	0x7A: {0x7A, DHalf, "BRH", []OpType{OpLit}},
	0x7B: {0x7B, DByte, "BRB", []OpType{OpLit}},
	0x7C: {0x7C, DNone, "REQL", nil},
	0x7D: {0x7D, DNone, "???", nil},
	0x7E: {0x7E, DHalf, "BEH", []OpType{OpLit}},
	0x7F: {0x7F, DByte, "BEB", []OpType{OpLit}},
	0x80: {0x80, DWord, "CLRW", []OpType{OpDest}},
	0x81: {0x81, DNone, "???", nil},
	0x82: {0x82, DHalf, "CLRH", []OpType{OpDest}},
	0x83: {0x83, DByte, "CLRB", []OpType{OpDest}},
	0x84: {0x84, DWord, "MOVW", []OpType{OpSrc, OpDest}},
	0x85: {0x85, DNone, "???", nil},
	0x86: {0x86, DHalf, "MOVH", []OpType{OpSrc, OpDest}},
	0x87: {0x87, DByte, "MOVB", []OpType{OpSrc, OpDest}},
	0x88: {0x88, DWord, "MCOMW", []OpType{OpSrc, OpDest}},
	0x89: {0x89, DNone, "???", nil},
	0x8A: {0x8A, DHalf, "MCOMH", []OpType{OpSrc, OpDest}},
	0x8B: {0x8B, DByte, "MCOMB", []OpType{OpSrc, OpDest}},
	0x8C: {0x8C, DWord, "MNEGW", []OpType{OpSrc, OpDest}},
	0x8D: {0x8D, DNone, "???", nil},
	0x8E: {0x8E, DHalf, "MNEGH", []OpType{OpSrc, OpDest}},
	0x8F: {0x8F, DByte, "MNEGB", []OpType{OpSrc, OpDest}},
	0x90: {0x90, DWord, "INCW", []OpType{OpDest}},
	0x91: {0x91, DNone, "???", nil},
	0x92: {0x92, DHalf, "INCH", []OpType{OpDest}},
	0x93: {0x93, DByte, "INCB", []OpType{OpDest}},
	0x94: {0x94, DWord, "DECW", []OpType{OpDest}},
	0x95: {0x95, DNone, "???", nil},
	0x96: {0x96, DHalf, "DECH", []OpType{OpDest}},
	0x97: {0x97, DByte, "DECB", []OpType{OpDest}},
	0x98: {0x98, DNone, "???", nil},
	0x99: {0x99, DNone, "???", nil},
	0x9A: {0x9A, DNone, "???", nil},
	0x9B: {0x9B, DNone, "???", nil},
	0x9C: {0x9C, DWord, "ADDW2", []OpType{OpSrc, OpDest}},
	0x9D: {0x9D, DNone, "???", nil},
	0x9E: {0x9E, DHalf, "ADDH2", []OpType{OpSrc, OpDest}},
	0x9F: {0x9F, DByte, "ADDB2", []OpType{OpSrc, OpDest}},
	0xA0: {0xA0, DWord, "PUSHW", []OpType{OpSrc}},
	0xA1: {0xA1, DNone, "???", nil},
	0xA2: {0xA2, DNone, "???", nil},
	0xA3: {0xA3, DNone, "???", nil},
	0xA4: {0xA4, DWord, "MODW2", []OpType{OpSrc, OpDest}},
	0xA5: {0xA5, DNone, "???", nil},
	0xA6: {0xA6, DHalf, "MODH2", []OpType{OpSrc, OpDest}},
	0xA7: {0xA7, DByte, "MODB2", []OpType{OpSrc, OpDest}},
	0xA8: {0xA8, DWord, "MULW2", []OpType{OpSrc, OpDest}},
	0xA9: {0xA9, DNone, "???", nil},
	0xAA: {0xAA, DHalf, "MULH2", []OpType{OpSrc, OpDest}},
	0xAB: {0xAB, DByte, "MULB2", []OpType{OpSrc, OpDest}},
	0xAC: {0xAC, DWord, "DIVW2", []OpType{OpSrc, OpDest}},
	0xAD: {0xAD, DNone, "???", nil},
	0xAE: {0xAE, DHalf, "DIVH2", []OpType{OpSrc, OpDest}},
	0xAF: {0xAF, DByte, "DIVB2", []OpType{OpSrc, OpDest}},
	0xB0: {0xB0, DWord, "ORW2", []OpType{OpSrc, OpDest}},
	0xB1: {0xB1, DNone, "???", nil},
	0xB2: {0xB2, DHalf, "ORH2", []OpType{OpSrc, OpDest}},
	0xB3: {0xB3, DByte, "ORB2", []OpType{OpSrc, OpDest}},
	0xB4: {0xB4, DWord, "XORW2", []OpType{OpSrc, OpDest}},
	0xB5: {0xB5, DNone, "???", nil},
	0xB6: {0xB6, DHalf, "XORH2", []OpType{OpSrc, OpDest}},
	0xB7: {0xB7, DByte, "XORB2", []OpType{OpSrc, OpDest}},
	0xB8: {0xB8, DWord, "ANDW2", []OpType{OpSrc, OpDest}},
	0xB9: {0xB9, DNone, "???", nil},
	0xBA: {0xBA, DHalf, "ANDH2", []OpType{OpSrc, OpDest}},
	0xBB: {0xBB, DByte, "ANDB2", []OpType{OpSrc, OpDest}},
	0xBC: {0xBC, DWord, "SUBW2", []OpType{OpSrc, OpDest}},
	0xBD: {0xBD, DNone, "???", nil},
	0xBE: {0xBE, DHalf, "SUBH2", []OpType{OpSrc, OpDest}},
	0xBF: {0xBF, DByte, "SUBB2", []OpType{OpSrc, OpDest}},
	0xC0: {0xC0, DWord, "ALSW3", []OpType{OpSrc, OpSrc, OpDest}},
	0xC1: {0xC1, DNone, "???", nil},
	0xC2: {0xC2, DNone, "???", nil},
	0xC3: {0xC3, DNone, "???", nil},
	0xC4: {0xC4, DWord, "ARSW3", []OpType{OpSrc, OpSrc, OpDest}},
	0xC5: {0xC5, DNone, "???", nil},
	0xC6: {0xC6, DHalf, "ARSH3", []OpType{OpSrc, OpSrc, OpDest}},
	0xC7: {0xC7, DByte, "ARSB3", []OpType{OpSrc, OpSrc, OpDest}},
	0xC8: {0xC8, DWord, "INSFW", []OpType{OpSrc, OpSrc, OpSrc, OpDest}},
	0xC9: {0xC9, DNone, "???", nil},
	0xCA: {0xCA, DHalf, "INSFH", []OpType{OpSrc, OpSrc, OpSrc, OpDest}},
	0xCB: {0xCB, DByte, "INSFB", []OpType{OpSrc, OpSrc, OpSrc, OpDest}},
	0xCC: {0xCC, DWord, "EXTFW", []OpType{OpSrc, OpSrc, OpSrc, OpDest}},
	0xCD: {0xCD, DNone, "???", nil},
	0xCE: {0xCE, DHalf, "EXTFH", []OpType{OpSrc, OpSrc, OpSrc, OpDest}},
	0xCF: {0xCF, DByte, "EXTFB", []OpType{OpSrc, OpSrc, OpSrc, OpDest}},
	0xD0: {0xD0, DWord, "LLSW3", []OpType{OpSrc, OpSrc, OpDest}},
	0xD1: {0xD1, DNone, "???", nil},
	0xD2: {0xD2, DHalf, "LLSH3", []OpType{OpSrc, OpSrc, OpDest}},
	0xD3: {0xD3, DByte, "LLSB3", []OpType{OpSrc, OpSrc, OpDest}},
	0xD4: {0xD4, DWord, "LRSW3", []OpType{OpSrc, OpSrc, OpDest}},
	0xD5: {0xD5, DNone, "???", nil},
	0xD6: {0xD6, DNone, "???", nil},
	0xD7: {0xD7, DNone, "???", nil},
	0xD8: {0xD8, DWord, "ROTW", []OpType{OpSrc, OpSrc, OpDest}},
	0xD9: {0xD9, DNone, "???", nil},
	0xDA: {0xDA, DNone, "???", nil},
	0xDB: {0xDB, DNone, "???", nil},
	0xDC: {0xDC, DWord, "ADDW3", []OpType{OpSrc, OpSrc, OpDest}},
	0xDD: {0xDD, DNone, "???", nil},
	0xDE: {0xDE, DHalf, "ADDH3", []OpType{OpSrc, OpSrc, OpDest}},
	0xDF: {0xDF, DByte, "ADDB3", []OpType{OpSrc, OpSrc, OpDest}},
	0xE0: {0xE0, DWord, "PUSHAW", []OpType{OpSrc}},
	0xE1: {0xE1, DNone, "???", nil},
	0xE2: {0xE2, DNone, "???", nil},
	0xE3: {0xE3, DNone, "???", nil},
	0xE4: {0xE4, DWord, "MODW3", []OpType{OpSrc, OpSrc, OpDest}},
	0xE5: {0xE5, DNone, "???", nil},
	0xE6: {0xE6, DHalf, "MODH3", []OpType{OpSrc, OpSrc, OpDest}},
	0xE7: {0xE7, DByte, "MODB3", []OpType{OpSrc, OpSrc, OpDest}},
	0xE8: {0xE8, DWord, "MULW3", []OpType{OpSrc, OpSrc, OpDest}},
	0xE9: {0xE9, DNone, "???", nil},
	0xEA: {0xEA, DHalf, "MULH3", []OpType{OpSrc, OpSrc, OpDest}},
	0xEB: {0xEB, DByte, "MULB3", []OpType{OpSrc, OpSrc, OpDest}},
	0xEC: {0xEC, DWord, "DIVW3", []OpType{OpSrc, OpSrc, OpDest}},
	0xED: {0xED, DNone, "???", nil},
	0xEE: {0xEE, DHalf, "DIVH3", []OpType{OpSrc, OpSrc, OpDest}},
	0xEF: {0xEF, DByte, "DIVB3", []OpType{OpSrc, OpSrc, OpDest}},
	0xF0: {0xF0, DWord, "ORW3", []OpType{OpSrc, OpSrc, OpDest}},
	0xF1: {0xF1, DNone, "???", nil},
	0xF2: {0xF2, DHalf, "ORH3", []OpType{OpSrc, OpSrc, OpDest}},
	0xF3: {0xF3, DByte, "ORB3", []OpType{OpSrc, OpSrc, OpDest}},
	0xF4: {0xF4, DWord, "XORW3", []OpType{OpSrc, OpSrc, OpDest}},
	0xF5: {0xF5, DNone, "???", nil},
	0xF6: {0xF6, DHalf, "XORH3", []OpType{OpSrc, OpSrc, OpDest}},
	0xF7: {0xF7, DByte, "XORB3", []OpType{OpSrc, OpSrc, OpDest}},
	0xF8: {0xF8, DWord, "ANDW3", []OpType{OpSrc, OpSrc, OpDest}},
	0xF9: {0xF9, DNone, "???", nil},
	0xFA: {0xFA, DHalf, "ANDH3", []OpType{OpSrc, OpSrc, OpDest}},
	0xFB: {0xFB, DByte, "ANDB3", []OpType{OpSrc, OpSrc, OpDest}},
	0xFC: {0xFC, DWord, "SUBW3", []OpType{OpSrc, OpSrc, OpDest}},
	0xFD: {0xFD, DNone, "???", nil},
	0xFE: {0xFE, DHalf, "SUBH3", []OpType{OpSrc, OpSrc, OpDest}},
	0xFF: {0xFF, DByte, "SUBB3", []OpType{OpSrc, OpSrc, OpDest}},
}

// halfwordOpcodes is the complete set of valid second bytes following a
// 0x30 prefix byte. A second byte outside this set is IllegalOpcode, per
// the decode contract: the 0x30 prefix always selects from this table,
// never from the primary 256-entry table directly.
var halfwordOpcodes = map[byte]Mnemonic{
	0x09: {0x09, DNone, "MVERNO", nil},
	0x0D: {0x0D, DNone, "ENBVJMP", nil},
	0x13: {0x13, DNone, "DISVJMP", nil},
	0x19: {0x19, DNone, "MOVBLW", nil},
	0x1F: {0x1F, DNone, "STREND", nil},
	0x2F: {0x2F, DNone, "INTACK", nil},
	0x3F: {0x3F, DNone, "STRCPY", nil},
	0x45: {0x45, DNone, "RETG", nil},
	0x61: {0x61, DNone, "GATE", nil},
	0xAC: {0xAC, DNone, "CALLPS", nil},
	0xC8: {0xC8, DNone, "RETPS", nil},
}
