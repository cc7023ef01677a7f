/*
we32100 - Core emulator run loop.

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

// Package runner drives the fetch/execute/service loop: step the CPU,
// service the DUART, latch any pending interrupt vector, repeat.
package runner

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/dmd5620/we32100/bus"
	"github.com/dmd5620/we32100/cpu"
	"github.com/dmd5620/we32100/duart"
)

// Runner owns the CPU/bus/duart triple and runs them on a background
// goroutine until stopped or halted by an unrecoverable CPU error.
type Runner struct {
	wg      sync.WaitGroup
	done    chan struct{}
	mu      sync.Mutex
	running bool

	CPU   *cpu.Cpu
	Bus   *bus.Bus
	Duart *duart.Duart
	Host  *duart.HostLine

	LastErr          error
	pendingVector    byte
	hasPendingVector bool
}

// New builds a Runner over an already-wired bus/duart pair.
func New(c *cpu.Cpu, b *bus.Bus, d *duart.Duart, host *duart.HostLine) *Runner {
	return &Runner{
		done:  make(chan struct{}),
		CPU:   c,
		Bus:   b,
		Duart: d,
		Host:  host,
	}
}

// SetRunning toggles whether Start's loop executes CPU steps; when
// false the loop still services the DUART so wall-clock timers (the
// vertical blank, character delays) keep advancing.
func (r *Runner) SetRunning(running bool) {
	r.mu.Lock()
	r.running = running
	r.mu.Unlock()
}

// Running reports the current run/halt state.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

// PendingInterrupt returns the most recent interrupt vector latched by
// GetInterrupt, and whether one is outstanding.
func (r *Runner) PendingInterrupt() (byte, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pendingVector, r.hasPendingVector
}

// Start begins the loop on a background goroutine.
func (r *Runner) Start() {
	r.wg.Add(1)
	go r.loop()
}

// Stop signals the loop to exit and waits up to a second for it.
func (r *Runner) Stop() {
	close(r.done)
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		slog.Warn("runner: timed out waiting for core to stop")
	}
}

func (r *Runner) loop() {
	defer r.wg.Done()
	for {
		select {
		case <-r.done:
			return
		default:
		}

		if r.Running() {
			if err := r.CPU.Step(r.Bus); err != nil {
				r.mu.Lock()
				r.LastErr = err
				r.running = false
				r.mu.Unlock()
				var cerr *cpu.Error
				if errors.As(err, &cerr) {
					slog.Error("runner: cpu exception", "exception", cerr.Exception.String())
				} else {
					slog.Error("runner: cpu error", "error", err)
				}
			}
		}

		if r.Host != nil {
			r.Host.Drain(r.Duart)
		}
		r.Duart.Service()

		// GetInterrupt must run every round regardless of whether the
		// CPU stepped: the vertical-blank clock only advances inside
		// it. Delivery into the PSW/IPL machinery is not yet wired
		// into Cpu.Step, so the vector is only latched for inspection.
		vec, ok := r.Duart.GetInterrupt()
		r.mu.Lock()
		r.pendingVector, r.hasPendingVector = vec, ok
		r.mu.Unlock()

		time.Sleep(time.Microsecond)
	}
}
