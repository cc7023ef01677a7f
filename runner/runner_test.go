package runner_test

import (
	"time"

	"testing"

	"github.com/dmd5620/we32100/bus"
	"github.com/dmd5620/we32100/cpu"
	"github.com/dmd5620/we32100/duart"
	"github.com/dmd5620/we32100/memory"
	"github.com/dmd5620/we32100/runner"
)

func TestRunnerExecutesUntilHalt(t *testing.T) {
	ram := memory.NewRAM(0x1000)
	b := bus.New()
	b.Map(0, 0x1000, ram)
	// MOVW %r1,%r2 then an unassigned opcode to force a halt.
	_ = ram.WriteByte(0, 0x84)
	_ = ram.WriteByte(1, 0x41)
	_ = ram.WriteByte(2, 0x42)
	_ = ram.WriteByte(3, 0x01)

	c := cpu.New()
	c.R[1] = 7
	c.SetPC(0)
	d := duart.New(nil)

	r := runner.New(c, b, d, nil)
	r.SetRunning(true)
	r.Start()

	deadline := time.Now().Add(time.Second)
	for r.Running() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	r.Stop()

	if c.R[2] != 7 {
		t.Fatalf("want r2=7 after MOVW executed, got %#x", c.R[2])
	}
	if r.LastErr == nil {
		t.Fatalf("want LastErr set after hitting the unassigned opcode")
	}
}

func TestRunnerStaysHaltedWhenNeverSetRunning(t *testing.T) {
	ram := memory.NewRAM(0x10)
	b := bus.New()
	b.Map(0, 0x10, ram)
	c := cpu.New()
	d := duart.New(nil)

	r := runner.New(c, b, d, nil)
	r.Start()
	time.Sleep(5 * time.Millisecond)
	r.Stop()

	if r.Running() {
		t.Fatalf("want runner to remain halted when never started")
	}
}

func TestRunnerLatchesVerticalBlankInterrupt(t *testing.T) {
	ram := memory.NewRAM(0x10)
	b := bus.New()
	b.Map(0, 0x10, ram)
	c := cpu.New()
	d := duart.New(nil)

	r := runner.New(c, b, d, nil)
	r.Start()

	deadline := time.Now().Add(time.Second)
	var vec byte
	var ok bool
	for time.Now().Before(deadline) {
		vec, ok = r.PendingInterrupt()
		if ok {
			break
		}
		time.Sleep(time.Millisecond)
	}
	r.Stop()

	if !ok {
		t.Fatalf("want a vertical-blank interrupt to be latched within the run loop")
	}
	if vec&duart.MouseBlankInt == 0 {
		t.Fatalf("want MouseBlankInt set in the latched vector, got %#x", vec)
	}
}
