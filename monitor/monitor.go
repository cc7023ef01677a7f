/*
we32100 - Interactive monitor/REPL.

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

// Package monitor implements a liner-based REPL for stepping the CPU,
// inspecting registers and memory, and controlling the run loop.
package monitor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/dmd5620/we32100/bus"
	"github.com/dmd5620/we32100/cpu"
	"github.com/dmd5620/we32100/disassemble"
	"github.com/dmd5620/we32100/runner"
)

var commandNames = []string{"step", "regs", "reset", "mem", "run", "stop", "quit", "help"}

// Run starts the console prompt loop, blocking until the user quits
// or the line reader is aborted (Ctrl-D/Ctrl-C).
func Run(r *runner.Runner) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(partial string) []string {
		var out []string
		for _, c := range commandNames {
			if strings.HasPrefix(c, partial) {
				out = append(out, c)
			}
		}
		return out
	})

	for {
		cmdline, err := line.Prompt("we32100> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				return
			}
			fmt.Println("error reading line:", err)
			return
		}
		line.AppendHistory(cmdline)

		quit, err := process(r, cmdline)
		if err != nil {
			fmt.Println("error:", err)
		}
		if quit {
			return
		}
	}
}

func process(r *runner.Runner, cmdline string) (bool, error) {
	fields := strings.Fields(cmdline)
	if len(fields) == 0 {
		return false, nil
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return true, nil

	case "help":
		fmt.Println("commands: step, regs, reset, mem <addr> <len>, run, stop, quit")
		return false, nil

	case "run":
		r.SetRunning(true)
		return false, nil

	case "stop":
		r.SetRunning(false)
		return false, nil

	case "reset":
		if err := r.CPU.Reset(r.Bus); err != nil {
			return false, err
		}
		fmt.Printf("pc=%#x sp=%#x\n", r.CPU.R[cpu.RPC], r.CPU.R[cpu.RSP])
		return false, nil

	case "step":
		instr, err := cpu.DecodeAt(r.Bus, r.CPU.R[cpu.RPC])
		if err != nil {
			return false, err
		}
		if err := r.CPU.Step(r.Bus); err != nil {
			return false, err
		}
		fmt.Println(disassemble.Format(instr))
		printRegs(r.CPU)
		return false, nil

	case "regs":
		printRegs(r.CPU)
		return false, nil

	case "mem":
		return false, dumpMem(r.Bus, fields[1:])

	default:
		return false, fmt.Errorf("unknown command %q", fields[0])
	}
}

func printRegs(c *cpu.Cpu) {
	for i := 0; i < 16; i++ {
		fmt.Printf("r%-2d=%#010x  ", i, c.R[i])
		if i%4 == 3 {
			fmt.Println()
		}
	}
}

func dumpMem(b *bus.Bus, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: mem <addr> <len>")
	}
	addr, err := strconv.ParseUint(strings.TrimPrefix(args[0], "0x"), 16, 32)
	if err != nil {
		return fmt.Errorf("invalid address %q: %w", args[0], err)
	}
	length, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid length %q: %w", args[1], err)
	}

	for i := 0; i < length; i++ {
		v, err := b.ReadByte(uint32(addr)+uint32(i), bus.OperandFetch)
		if err != nil {
			return err
		}
		if i%16 == 0 {
			if i != 0 {
				fmt.Println()
			}
			fmt.Printf("%#06x: ", uint32(addr)+uint32(i))
		}
		fmt.Printf("%02x ", v)
	}
	fmt.Println()
	return nil
}
