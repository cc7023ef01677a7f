/*
we32100 - Configuration file parser.

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

// Package config loads a small line-oriented configuration file
// describing ROM images, RAM size, the DUART's host port, debug
// flags, and the trace log path.
//
// Format:
//
//	# comment, rest of line ignored
//	rom0 <path>
//	rom1 <path>
//	ramsize <N>K | <N>M
//	duart-port <port>
//	debug <module> <flag>[,<flag>...]
//	log <path>
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dmd5620/we32100/debug"
)

// Config holds every directive parsed from a file.
type Config struct {
	ROM0       string
	ROM1       string
	RAMSize    uint32
	DuartPort  string
	LogPath    string
	DebugFlags []DebugDirective
}

// DebugDirective records one "debug <module> <flags>" line.
type DebugDirective struct {
	Module string
	Flags  []string
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg := &Config{RAMSize: 1 << 20, DuartPort: "6100"}
	reader := bufio.NewReader(f)
	lineNo := 0
	for {
		line, err := reader.ReadString('\n')
		lineNo++
		if len(line) == 0 && err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if perr := cfg.parseLine(strings.TrimSpace(stripComment(line))); perr != nil {
			return nil, fmt.Errorf("config: line %d: %w", lineNo, perr)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
	}
	return cfg, nil
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}

func (cfg *Config) parseLine(line string) error {
	if line == "" {
		return nil
	}
	fields := strings.Fields(line)
	directive := strings.ToLower(fields[0])
	args := fields[1:]

	switch directive {
	case "rom0":
		if len(args) != 1 {
			return errors.New("rom0 requires exactly one path")
		}
		cfg.ROM0 = args[0]
	case "rom1":
		if len(args) != 1 {
			return errors.New("rom1 requires exactly one path")
		}
		cfg.ROM1 = args[0]
	case "ramsize":
		if len(args) != 1 {
			return errors.New("ramsize requires exactly one value")
		}
		size, err := parseSize(args[0])
		if err != nil {
			return err
		}
		cfg.RAMSize = size
	case "duart-port":
		if len(args) != 1 {
			return errors.New("duart-port requires exactly one value")
		}
		cfg.DuartPort = args[0]
	case "log":
		if len(args) != 1 {
			return errors.New("log requires exactly one path")
		}
		cfg.LogPath = args[0]
	case "debug":
		if len(args) < 2 {
			return errors.New("debug requires a module and at least one flag")
		}
		flags := strings.Split(strings.Join(args[1:], ""), ",")
		cfg.DebugFlags = append(cfg.DebugFlags, DebugDirective{Module: args[0], Flags: flags})
	default:
		return fmt.Errorf("unknown directive %q", fields[0])
	}
	return nil
}

func parseSize(s string) (uint32, error) {
	s = strings.ToUpper(s)
	mult := uint32(1)
	switch {
	case strings.HasSuffix(s, "K"):
		mult = 1 << 10
		s = s[:len(s)-1]
	case strings.HasSuffix(s, "M"):
		mult = 1 << 20
		s = s[:len(s)-1]
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	return uint32(n) * mult, nil
}

// ApplyDebug pushes every parsed debug directive into the debug
// package's flag registry.
func (cfg *Config) ApplyDebug() error {
	for _, d := range cfg.DebugFlags {
		for _, flag := range d.Flags {
			if err := debug.Enable(d.Module, flag); err != nil {
				return err
			}
		}
	}
	return nil
}
