/*
we32100 - DUART host serial line, bridged over TCP.

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

package duart

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"time"
)

// ErrAlreadyConnected names the condition of a second client attaching
// while one is already active; port0 only tolerates a single peer at a
// time. The accept loop does not return it: it closes the second
// connection and logs a warning.
var ErrAlreadyConnected = errors.New("duart: host line already connected")

// HostLine bridges a Duart's port 0 to a single TCP connection. Bytes
// read from the connection are pushed into the Duart's receiver via a
// buffered channel, drained once per Service tick; bytes the Duart
// transmits are written straight to the connection.
type HostLine struct {
	wg       sync.WaitGroup
	listener net.Listener
	shutdown chan struct{}
	rx       chan byte

	mu   sync.Mutex
	conn net.Conn
}

// NewHostLine opens a TCP listener on address (host:port or :port) and
// returns a HostLine ready to Start.
func NewHostLine(address string) (*HostLine, error) {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("duart: listen on %s: %w", address, err)
	}
	return &HostLine{
		listener: listener,
		shutdown: make(chan struct{}),
		rx:       make(chan byte, 256),
	}, nil
}

// Addr returns the listener's bound address.
func (h *HostLine) Addr() net.Addr {
	return h.listener.Addr()
}

// Start begins accepting connections in the background.
func (h *HostLine) Start() {
	h.wg.Add(1)
	go h.acceptLoop()
}

// Stop closes the listener and any active connection, waiting up to a
// second for the accept loop to exit.
func (h *HostLine) Stop() {
	close(h.shutdown)
	_ = h.listener.Close()

	h.mu.Lock()
	if h.conn != nil {
		_ = h.conn.Close()
	}
	h.mu.Unlock()

	done := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		slog.Warn("duart: timed out waiting for host line to close")
	}
}

func (h *HostLine) acceptLoop() {
	defer h.wg.Done()
	for {
		select {
		case <-h.shutdown:
			return
		default:
		}
		conn, err := h.listener.Accept()
		if err != nil {
			select {
			case <-h.shutdown:
				return
			default:
				continue
			}
		}

		h.mu.Lock()
		if h.conn != nil {
			h.mu.Unlock()
			slog.Warn("duart: rejecting second host line connection", "addr", conn.RemoteAddr())
			_ = conn.Close()
			continue
		}
		h.conn = conn
		h.mu.Unlock()

		h.wg.Add(1)
		go h.readLoop(conn)
	}
}

func (h *HostLine) readLoop(conn net.Conn) {
	defer h.wg.Done()
	defer func() {
		h.mu.Lock()
		if h.conn == conn {
			h.conn = nil
		}
		h.mu.Unlock()
		_ = conn.Close()
	}()

	buf := make([]byte, 256)
	for {
		n, err := conn.Read(buf)
		for i := 0; i < n; i++ {
			select {
			case h.rx <- buf[i]:
			case <-h.shutdown:
				return
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				slog.Warn("duart: host line read error", "error", err)
			}
			return
		}
	}
}

// Drain feeds every byte queued since the last call into d via RxChar,
// stopping at the first ErrReceiverNotReady (the byte is re-queued for
// the next tick). Intended to be called once per Service tick.
func (h *HostLine) Drain(d *Duart) {
	for {
		select {
		case b := <-h.rx:
			if err := d.RxChar(b); err != nil {
				h.rx <- b
				return
			}
		default:
			return
		}
	}
}

// Transmit is the callback handed to New; it writes a transmitted byte
// to the active connection, if any, silently dropping it otherwise
// (matching a real terminal with nothing plugged into its host port).
func (h *HostLine) Transmit(b byte) {
	h.mu.Lock()
	conn := h.conn
	h.mu.Unlock()
	if conn == nil {
		return
	}
	if _, err := conn.Write([]byte{b}); err != nil {
		slog.Warn("duart: host line write error", "error", err)
	}
}
