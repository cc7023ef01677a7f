/*
we32100 - Main process.

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

package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	getopt "github.com/pborman/getopt/v2"

	"github.com/dmd5620/we32100/bus"
	"github.com/dmd5620/we32100/config"
	"github.com/dmd5620/we32100/cpu"
	"github.com/dmd5620/we32100/duart"
	"github.com/dmd5620/we32100/logger"
	"github.com/dmd5620/we32100/memory"
	"github.com/dmd5620/we32100/monitor"
	"github.com/dmd5620/we32100/runner"
)

func main() {
	optConfig := getopt.StringLong("config", 'c', "we32100.cfg", "Configuration file")
	optDebug := getopt.BoolLong("debug", 'd', "Echo log records to stderr")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	cfg, err := config.Load(*optConfig)
	if err != nil {
		slog.Error("loading configuration", "error", err)
		os.Exit(1)
	}

	var logFile *os.File
	if cfg.LogPath != "" {
		logFile, err = os.Create(cfg.LogPath)
		if err != nil {
			slog.Error("creating log file", "error", err)
			os.Exit(1)
		}
		defer logFile.Close()
	}
	log := logger.New(logFile, *optDebug)
	slog.SetDefault(log)

	if err := cfg.ApplyDebug(); err != nil {
		slog.Error("applying debug flags", "error", err)
		os.Exit(1)
	}

	slog.Info("we32100 started")

	b := bus.New()

	// The two ROM halves, when present, occupy [0, 0x10000) and
	// [0x10000, 0x20000) per spec; RAM of cfg.RAMSize bytes is mapped
	// starting right after the last ROM half that is present (or at 0
	// when neither is), so address 0x80 (the PCB pointer Reset depends
	// on) resolves to ROM0 when rom0 is configured and to RAM otherwise.
	ramBase := uint32(0)

	if cfg.ROM0 != "" {
		img, err := os.ReadFile(cfg.ROM0)
		if err != nil {
			slog.Error("reading rom0", "error", err)
			os.Exit(1)
		}
		rom := memory.NewROM(img)
		b.Map(0x0, 0x10000, rom)
		ramBase = 0x10000
	}
	if cfg.ROM1 != "" {
		img, err := os.ReadFile(cfg.ROM1)
		if err != nil {
			slog.Error("reading rom1", "error", err)
			os.Exit(1)
		}
		rom := memory.NewROM(img)
		b.Map(0x10000, 0x20000, rom)
		ramBase = 0x20000
	}

	ram := memory.NewRAM(cfg.RAMSize)
	b.Map(ramBase, ramBase+cfg.RAMSize, ram)

	var host *duart.HostLine
	txCallback := func(byte) {}
	if cfg.DuartPort != "" {
		host, err = duart.NewHostLine(":" + cfg.DuartPort)
		if err != nil {
			slog.Error("starting duart host line", "error", err)
			os.Exit(1)
		}
		txCallback = host.Transmit
	}

	d := duart.New(txCallback)
	b.Map(duart.StartAddr(), duart.EndAddr(), d)

	c := cpu.New()
	if err := c.Reset(b); err != nil {
		slog.Warn("initial reset failed, starting at PC 0", "error", err)
		c.SetPC(0)
	}

	r := runner.New(c, b, d, host)
	if host != nil {
		host.Start()
		defer host.Stop()
	}
	r.SetRunning(true)
	r.Start()
	defer r.Stop()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("received shutdown signal")
		r.Stop()
		os.Exit(0)
	}()

	monitor.Run(r)

	slog.Info("we32100 shutting down")
}
