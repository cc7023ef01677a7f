package bus_test

import (
	"errors"
	"testing"

	"github.com/dmd5620/we32100/bus"
)

type fakeDev struct {
	mem      [16]byte
	readOnly bool
}

func (f *fakeDev) ReadByte(addr uint32, access bus.AccessCode) (byte, error) {
	if int(addr) >= len(f.mem) {
		return 0, &bus.BusError{Kind: bus.Range, Addr: addr, Access: access}
	}
	return f.mem[addr], nil
}
func (f *fakeDev) ReadHalf(addr uint32, access bus.AccessCode) (uint16, error) {
	b0, err := f.ReadByte(addr, access)
	if err != nil {
		return 0, err
	}
	b1, err := f.ReadByte(addr+1, access)
	if err != nil {
		return 0, err
	}
	return uint16(b0)<<8 | uint16(b1), nil
}
func (f *fakeDev) ReadHalfUnaligned(addr uint32, access bus.AccessCode) (uint16, error) {
	return f.ReadHalf(addr, access)
}
func (f *fakeDev) ReadWord(addr uint32, access bus.AccessCode) (uint32, error) {
	hi, err := f.ReadHalf(addr, access)
	if err != nil {
		return 0, err
	}
	lo, err := f.ReadHalf(addr+2, access)
	if err != nil {
		return 0, err
	}
	return uint32(hi)<<16 | uint32(lo), nil
}
func (f *fakeDev) ReadWordUnaligned(addr uint32, access bus.AccessCode) (uint32, error) {
	return f.ReadWord(addr, access)
}
func (f *fakeDev) WriteByte(addr uint32, val byte) error {
	if f.readOnly {
		return &bus.BusError{Kind: bus.ReadOnly, Addr: addr, Access: bus.Write}
	}
	if int(addr) >= len(f.mem) {
		return &bus.BusError{Kind: bus.Range, Addr: addr, Access: bus.Write}
	}
	f.mem[addr] = val
	return nil
}
func (f *fakeDev) WriteHalf(addr uint32, val uint16) error {
	if err := f.WriteByte(addr, byte(val>>8)); err != nil {
		return err
	}
	return f.WriteByte(addr+1, byte(val))
}
func (f *fakeDev) WriteHalfUnaligned(addr uint32, val uint16) error { return f.WriteHalf(addr, val) }
func (f *fakeDev) WriteWord(addr uint32, val uint32) error {
	if err := f.WriteHalf(addr, uint16(val>>16)); err != nil {
		return err
	}
	return f.WriteHalf(addr+2, uint16(val))
}
func (f *fakeDev) WriteWordUnaligned(addr uint32, val uint32) error { return f.WriteWord(addr, val) }

func TestUnmappedAddressIsNoDevice(t *testing.T) {
	b := bus.New()
	_, err := b.ReadByte(0x1000, bus.OperandFetch)
	var be *bus.BusError
	if !errors.As(err, &be) || be.Kind != bus.NoDevice {
		t.Fatalf("want NoDevice, got %v", err)
	}
}

func TestMisalignedWordReadIsAlignmentFault(t *testing.T) {
	b := bus.New()
	b.Map(0, 16, &fakeDev{})
	_, err := b.ReadWord(1, bus.OperandFetch)
	var be *bus.BusError
	if !errors.As(err, &be) || be.Kind != bus.Alignment {
		t.Fatalf("want Alignment, got %v", err)
	}
}

func TestUnalignedWordReadAcceptsOddAddress(t *testing.T) {
	b := bus.New()
	d := &fakeDev{}
	d.mem = [16]byte{0, 0xde, 0xad, 0xbe, 0xef, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	b.Map(0, 16, d)
	v, err := b.ReadWordUnaligned(1, bus.OperandFetch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0xdeadbeef {
		t.Fatalf("want 0xdeadbeef, got %#x", v)
	}
}

func TestOverlappingMapPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on overlapping map")
		}
	}()
	b := bus.New()
	b.Map(0, 16, &fakeDev{})
	b.Map(8, 24, &fakeDev{})
}

func TestWriteToReadOnlyDevice(t *testing.T) {
	b := bus.New()
	b.Map(0, 16, &fakeDev{readOnly: true})
	err := b.WriteByte(0, 0xff)
	var be *bus.BusError
	if !errors.As(err, &be) || be.Kind != bus.ReadOnly {
		t.Fatalf("want ReadOnly, got %v", err)
	}
}
