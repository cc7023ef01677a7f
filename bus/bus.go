/*
we32100 - Bus capability and error types.

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

// Package bus defines the memory-mapped access capability shared by the
// CPU core and every peripheral device.
package bus

import "fmt"

// AccessCode tags the purpose of a bus access, so devices and the bus
// dispatcher can apply access-specific semantics (e.g. instruction fetch
// vs. operand fetch alignment traps).
type AccessCode uint8

const (
	InstrFetch AccessCode = iota
	OperandFetch
	AddressFetch
	Write
)

func (a AccessCode) String() string {
	switch a {
	case InstrFetch:
		return "InstrFetch"
	case OperandFetch:
		return "OperandFetch"
	case AddressFetch:
		return "AddressFetch"
	case Write:
		return "Write"
	default:
		return "Unknown"
	}
}

// ErrKind classifies a BusError.
type ErrKind uint8

const (
	Alignment ErrKind = iota
	NoDevice
	ReadOnly
	Range
)

// BusError reports a failed bus access.
type BusError struct {
	Kind   ErrKind
	Addr   uint32
	Access AccessCode
}

func (e *BusError) Error() string {
	var kind string
	switch e.Kind {
	case Alignment:
		kind = "alignment fault"
	case NoDevice:
		kind = "no device mapped"
	case ReadOnly:
		kind = "write to read-only device"
	case Range:
		kind = "address out of device range"
	default:
		kind = "bus fault"
	}
	return fmt.Sprintf("%s at %#x (%s)", kind, e.Addr, e.Access)
}

// Device is the capability interface every memory-mapped peripheral
// implements. Widths that don't apply to a device (e.g. an 8-bit register
// file seeing a word read) are the device's own responsibility to reject
// with a BusError.
type Device interface {
	ReadByte(addr uint32, access AccessCode) (byte, error)
	ReadHalf(addr uint32, access AccessCode) (uint16, error)
	ReadHalfUnaligned(addr uint32, access AccessCode) (uint16, error)
	ReadWord(addr uint32, access AccessCode) (uint32, error)
	ReadWordUnaligned(addr uint32, access AccessCode) (uint32, error)

	WriteByte(addr uint32, val byte) error
	WriteHalf(addr uint32, val uint16) error
	WriteHalfUnaligned(addr uint32, val uint16) error
	WriteWord(addr uint32, val uint32) error
	WriteWordUnaligned(addr uint32, val uint32) error
}

// Bus is the capability object passed explicitly into the decode and
// execute paths. It never exists as global state.
type Bus struct {
	ranges []mapping
}

type mapping struct {
	start, end uint32
	dev        Device
}

// New returns an empty bus with nothing mapped.
func New() *Bus {
	return &Bus{}
}

// Map registers dev to answer addresses in [start, end). Overlapping an
// existing mapping is a programming error and panics immediately, the
// same way a bad table entry would in the teacher's model registry.
func (b *Bus) Map(start, end uint32, dev Device) {
	for _, m := range b.ranges {
		if start < m.end && end > m.start {
			panic(fmt.Sprintf("bus: range [%#x,%#x) overlaps existing [%#x,%#x)", start, end, m.start, m.end))
		}
	}
	b.ranges = append(b.ranges, mapping{start: start, end: end, dev: dev})
}

func (b *Bus) find(addr uint32, access AccessCode) (Device, uint32, error) {
	for _, m := range b.ranges {
		if addr >= m.start && addr < m.end {
			return m.dev, addr - m.start, nil
		}
	}
	return nil, 0, &BusError{Kind: NoDevice, Addr: addr, Access: access}
}

func (b *Bus) ReadByte(addr uint32, access AccessCode) (byte, error) {
	dev, off, err := b.find(addr, access)
	if err != nil {
		return 0, err
	}
	return dev.ReadByte(off, access)
}

func (b *Bus) ReadHalf(addr uint32, access AccessCode) (uint16, error) {
	if addr&1 != 0 {
		return 0, &BusError{Kind: Alignment, Addr: addr, Access: access}
	}
	dev, off, err := b.find(addr, access)
	if err != nil {
		return 0, err
	}
	return dev.ReadHalf(off, access)
}

func (b *Bus) ReadHalfUnaligned(addr uint32, access AccessCode) (uint16, error) {
	dev, off, err := b.find(addr, access)
	if err != nil {
		return 0, err
	}
	return dev.ReadHalfUnaligned(off, access)
}

func (b *Bus) ReadWord(addr uint32, access AccessCode) (uint32, error) {
	if addr&3 != 0 {
		return 0, &BusError{Kind: Alignment, Addr: addr, Access: access}
	}
	dev, off, err := b.find(addr, access)
	if err != nil {
		return 0, err
	}
	return dev.ReadWord(off, access)
}

func (b *Bus) ReadWordUnaligned(addr uint32, access AccessCode) (uint32, error) {
	dev, off, err := b.find(addr, access)
	if err != nil {
		return 0, err
	}
	return dev.ReadWordUnaligned(off, access)
}

func (b *Bus) WriteByte(addr uint32, val byte) error {
	dev, off, err := b.find(addr, Write)
	if err != nil {
		return err
	}
	return dev.WriteByte(off, val)
}

func (b *Bus) WriteHalf(addr uint32, val uint16) error {
	if addr&1 != 0 {
		return &BusError{Kind: Alignment, Addr: addr, Access: Write}
	}
	dev, off, err := b.find(addr, Write)
	if err != nil {
		return err
	}
	return dev.WriteHalf(off, val)
}

func (b *Bus) WriteHalfUnaligned(addr uint32, val uint16) error {
	dev, off, err := b.find(addr, Write)
	if err != nil {
		return err
	}
	return dev.WriteHalfUnaligned(off, val)
}

func (b *Bus) WriteWord(addr uint32, val uint32) error {
	if addr&3 != 0 {
		return &BusError{Kind: Alignment, Addr: addr, Access: Write}
	}
	dev, off, err := b.find(addr, Write)
	if err != nil {
		return err
	}
	return dev.WriteWord(off, val)
}

func (b *Bus) WriteWordUnaligned(addr uint32, val uint32) error {
	dev, off, err := b.find(addr, Write)
	if err != nil {
		return err
	}
	return dev.WriteWordUnaligned(off, val)
}
