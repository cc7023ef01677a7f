package disassemble_test

import (
	"testing"

	"github.com/dmd5620/we32100/bus"
	"github.com/dmd5620/we32100/cpu"
	"github.com/dmd5620/we32100/disassemble"
	"github.com/dmd5620/we32100/memory"
)

func TestFormatMOVWRegisterToRegister(t *testing.T) {
	ram := memory.NewRAM(16)
	b := bus.New()
	b.Map(0, 16, ram)
	_ = ram.WriteByte(0, 0x84)
	_ = ram.WriteByte(1, 0x41)
	_ = ram.WriteByte(2, 0x42)

	d, err := cpu.DecodeAt(b, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := disassemble.Format(d)
	want := "MOVW %r1,%r2"
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestFormatUnassignedOpcode(t *testing.T) {
	ram := memory.NewRAM(16)
	b := bus.New()
	b.Map(0, 16, ram)
	_ = ram.WriteByte(0, 0x01)

	d, err := cpu.DecodeAt(b, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := disassemble.Format(d); got != "???" {
		t.Fatalf("want ???, got %q", got)
	}
}
