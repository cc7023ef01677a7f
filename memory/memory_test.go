package memory_test

import (
	"errors"
	"testing"

	"github.com/dmd5620/we32100/bus"
	"github.com/dmd5620/we32100/memory"
)

func TestRAMReadWriteWordRoundTrip(t *testing.T) {
	r := memory.NewRAM(16)
	if err := r.WriteWord(4, 0x01020304); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := r.ReadWord(4, bus.OperandFetch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0x01020304 {
		t.Fatalf("want 0x01020304, got %#x", v)
	}
	b, _ := r.ReadByte(4, bus.OperandFetch)
	if b != 0x04 {
		t.Fatalf("want little-endian low byte 0x04, got %#x", b)
	}
}

func TestRAMOutOfRangeIsBusError(t *testing.T) {
	r := memory.NewRAM(4)
	_, err := r.ReadByte(4, bus.OperandFetch)
	var be *bus.BusError
	if !errors.As(err, &be) || be.Kind != bus.Range {
		t.Fatalf("want Range, got %v", err)
	}
}

func TestROMIsReadOnly(t *testing.T) {
	rom := memory.NewROM([]byte{0xde, 0xad, 0xbe, 0xef})
	v, err := rom.ReadWord(0, bus.InstrFetch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0xefbeadde {
		t.Fatalf("want 0xefbeadde, got %#x", v)
	}
	err = rom.WriteByte(0, 1)
	var be *bus.BusError
	if !errors.As(err, &be) || be.Kind != bus.ReadOnly {
		t.Fatalf("want ReadOnly, got %v", err)
	}
}

func TestBusDispatchesByRange(t *testing.T) {
	b := bus.New()
	rom := memory.NewROM(make([]byte, 0x10000))
	ram := memory.NewRAM(0x10000)
	b.Map(0, 0x10000, rom)
	b.Map(0x10000, 0x20000, ram)

	if err := b.WriteByte(0x10000, 0x42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := b.ReadByte(0x10000, bus.OperandFetch)
	if err != nil || v != 0x42 {
		t.Fatalf("want 0x42, got %#x err %v", v, err)
	}

	err = b.WriteByte(0, 0x99)
	var be *bus.BusError
	if !errors.As(err, &be) || be.Kind != bus.ReadOnly {
		t.Fatalf("want ReadOnly on ROM range, got %v", err)
	}
}
