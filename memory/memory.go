/*
we32100 - Flat RAM and ROM bus devices.

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

// Package memory implements the two simplest bus.Device kinds: flat RAM
// and read-only ROM, both byte-addressable and little-endian, matching
// the WE32100's native byte order.
package memory

import "github.com/dmd5620/we32100/bus"

// RAM is a flat, writable byte array mounted somewhere on the bus.
type RAM struct {
	data []byte
}

// NewRAM allocates size bytes of zeroed RAM.
func NewRAM(size uint32) *RAM {
	return &RAM{data: make([]byte, size)}
}

// Bytes returns the backing store itself (not a copy), for a framebuffer
// extractor or other external reader of video RAM. Writes through the
// returned slice change RAM.
func (r *RAM) Bytes() []byte {
	return r.data
}

func (r *RAM) bounds(addr uint32, width uint32, access bus.AccessCode) error {
	if uint64(addr)+uint64(width) > uint64(len(r.data)) {
		return &bus.BusError{Kind: bus.Range, Addr: addr, Access: access}
	}
	return nil
}

func (r *RAM) ReadByte(addr uint32, access bus.AccessCode) (byte, error) {
	if err := r.bounds(addr, 1, access); err != nil {
		return 0, err
	}
	return r.data[addr], nil
}

func (r *RAM) ReadHalf(addr uint32, access bus.AccessCode) (uint16, error) {
	return r.ReadHalfUnaligned(addr, access)
}

func (r *RAM) ReadHalfUnaligned(addr uint32, access bus.AccessCode) (uint16, error) {
	if err := r.bounds(addr, 2, access); err != nil {
		return 0, err
	}
	return uint16(r.data[addr]) | uint16(r.data[addr+1])<<8, nil
}

func (r *RAM) ReadWord(addr uint32, access bus.AccessCode) (uint32, error) {
	return r.ReadWordUnaligned(addr, access)
}

func (r *RAM) ReadWordUnaligned(addr uint32, access bus.AccessCode) (uint32, error) {
	if err := r.bounds(addr, 4, access); err != nil {
		return 0, err
	}
	return uint32(r.data[addr]) | uint32(r.data[addr+1])<<8 |
		uint32(r.data[addr+2])<<16 | uint32(r.data[addr+3])<<24, nil
}

func (r *RAM) WriteByte(addr uint32, val byte) error {
	if err := r.bounds(addr, 1, bus.Write); err != nil {
		return err
	}
	r.data[addr] = val
	return nil
}

func (r *RAM) WriteHalf(addr uint32, val uint16) error {
	return r.WriteHalfUnaligned(addr, val)
}

func (r *RAM) WriteHalfUnaligned(addr uint32, val uint16) error {
	if err := r.bounds(addr, 2, bus.Write); err != nil {
		return err
	}
	r.data[addr] = byte(val)
	r.data[addr+1] = byte(val >> 8)
	return nil
}

func (r *RAM) WriteWord(addr uint32, val uint32) error {
	return r.WriteWordUnaligned(addr, val)
}

func (r *RAM) WriteWordUnaligned(addr uint32, val uint32) error {
	if err := r.bounds(addr, 4, bus.Write); err != nil {
		return err
	}
	r.data[addr] = byte(val)
	r.data[addr+1] = byte(val >> 8)
	r.data[addr+2] = byte(val >> 16)
	r.data[addr+3] = byte(val >> 24)
	return nil
}

// ROM is a read-only byte array loaded once at construction.
type ROM struct {
	data []byte
}

// NewROM copies img into a fresh, fixed-size ROM device.
func NewROM(img []byte) *ROM {
	data := make([]byte, len(img))
	copy(data, img)
	return &ROM{data: data}
}

func (r *ROM) bounds(addr uint32, width uint32, access bus.AccessCode) error {
	if uint64(addr)+uint64(width) > uint64(len(r.data)) {
		return &bus.BusError{Kind: bus.Range, Addr: addr, Access: access}
	}
	return nil
}

func (r *ROM) ReadByte(addr uint32, access bus.AccessCode) (byte, error) {
	if err := r.bounds(addr, 1, access); err != nil {
		return 0, err
	}
	return r.data[addr], nil
}

func (r *ROM) ReadHalf(addr uint32, access bus.AccessCode) (uint16, error) {
	return r.ReadHalfUnaligned(addr, access)
}

func (r *ROM) ReadHalfUnaligned(addr uint32, access bus.AccessCode) (uint16, error) {
	if err := r.bounds(addr, 2, access); err != nil {
		return 0, err
	}
	return uint16(r.data[addr]) | uint16(r.data[addr+1])<<8, nil
}

func (r *ROM) ReadWord(addr uint32, access bus.AccessCode) (uint32, error) {
	return r.ReadWordUnaligned(addr, access)
}

func (r *ROM) ReadWordUnaligned(addr uint32, access bus.AccessCode) (uint32, error) {
	if err := r.bounds(addr, 4, access); err != nil {
		return 0, err
	}
	return uint32(r.data[addr]) | uint32(r.data[addr+1])<<8 |
		uint32(r.data[addr+2])<<16 | uint32(r.data[addr+3])<<24, nil
}

func (r *ROM) WriteByte(addr uint32, _ byte) error {
	return &bus.BusError{Kind: bus.ReadOnly, Addr: addr, Access: bus.Write}
}

func (r *ROM) WriteHalf(addr uint32, _ uint16) error {
	return &bus.BusError{Kind: bus.ReadOnly, Addr: addr, Access: bus.Write}
}

func (r *ROM) WriteHalfUnaligned(addr uint32, val uint16) error {
	return r.WriteHalf(addr, val)
}

func (r *ROM) WriteWord(addr uint32, _ uint32) error {
	return &bus.BusError{Kind: bus.ReadOnly, Addr: addr, Access: bus.Write}
}

func (r *ROM) WriteWordUnaligned(addr uint32, val uint32) error {
	return r.WriteWord(addr, val)
}
