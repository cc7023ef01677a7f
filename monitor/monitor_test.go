package monitor

import (
	"testing"

	"github.com/dmd5620/we32100/bus"
	"github.com/dmd5620/we32100/cpu"
	"github.com/dmd5620/we32100/duart"
	"github.com/dmd5620/we32100/memory"
	"github.com/dmd5620/we32100/runner"
)

func newTestRunner(t *testing.T) *runner.Runner {
	t.Helper()
	ram := memory.NewRAM(0x1000)
	b := bus.New()
	b.Map(0, 0x1000, ram)
	_ = ram.WriteByte(0, 0x84)
	_ = ram.WriteByte(1, 0x41)
	_ = ram.WriteByte(2, 0x42)

	c := cpu.New()
	c.R[1] = 0x99
	c.SetPC(0)
	d := duart.New(nil)
	return runner.New(c, b, d, nil)
}

func TestProcessStepExecutesOneInstruction(t *testing.T) {
	r := newTestRunner(t)
	quit, err := process(r, "step")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quit {
		t.Fatalf("step must not quit the REPL")
	}
	if r.CPU.R[2] != 0x99 {
		t.Fatalf("want r2=0x99 after step, got %#x", r.CPU.R[2])
	}
}

func TestProcessQuit(t *testing.T) {
	r := newTestRunner(t)
	quit, err := process(r, "quit")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !quit {
		t.Fatalf("want quit=true")
	}
}

func TestProcessUnknownCommand(t *testing.T) {
	r := newTestRunner(t)
	_, err := process(r, "frobnicate")
	if err == nil {
		t.Fatalf("want an error for an unknown command")
	}
}

func TestProcessMemRequiresTwoArgs(t *testing.T) {
	r := newTestRunner(t)
	_, err := process(r, "mem 0x10")
	if err == nil {
		t.Fatalf("want an error when mem is missing its length argument")
	}
}

func TestProcessMemDumpsBytes(t *testing.T) {
	r := newTestRunner(t)
	_, err := process(r, "mem 0x0 3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProcessRunStopToggleRunning(t *testing.T) {
	r := newTestRunner(t)
	if _, err := process(r, "run"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.Running() {
		t.Fatalf("want running=true after run command")
	}
	if _, err := process(r, "stop"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Running() {
		t.Fatalf("want running=false after stop command")
	}
}
