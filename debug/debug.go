/*
we32100 - Debug flag registry and gated trace output.

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

// Package debug tracks per-module trace flags and writes gated trace
// lines to a shared debug file.
package debug

import (
	"fmt"
	"os"
	"strings"
)

// Flag bits, one per module that can be traced. A module may OR
// several of these together when registering its enabled set.
const (
	Decode = 1 << iota
	Execute
	Bus
	Duart
	Monitor
)

var flagNames = map[string]int{
	"DECODE":  Decode,
	"EXECUTE": Execute,
	"BUS":     Bus,
	"DUART":   Duart,
	"MONITOR": Monitor,
}

var enabled = map[string]int{}

var logFile *os.File

// SetFile opens path for trace output, replacing any previously open
// file.
func SetFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("debug: unable to create trace file %s: %w", path, err)
	}
	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = f
	return nil
}

// Enable turns on flag for module (e.g. Enable("cpu", "EXECUTE")).
// The flag name is case-insensitive.
func Enable(module, flag string) error {
	bit, ok := flagNames[strings.ToUpper(flag)]
	if !ok {
		return fmt.Errorf("debug: unknown flag %q", flag)
	}
	enabled[module] |= bit
	return nil
}

// Enabled reports whether flag is set for module.
func Enabled(module string, flag int) bool {
	return enabled[module]&flag != 0
}

// Tracef writes a trace line for module if flag is enabled, a no-op
// otherwise (and when no trace file has been opened).
func Tracef(module string, flag int, format string, a ...interface{}) {
	if logFile == nil || !Enabled(module, flag) {
		return
	}
	fmt.Fprintf(logFile, module+": "+format+"\n", a...)
}
