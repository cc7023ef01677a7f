/*
we32100 - Dual-port UART device (host serial + keyboard/mouse).

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

// Package duart implements the DMD 5620's dual-port serial controller:
// port 0 is the host serial line, port 1 is the keyboard. Timing is
// wall-clock based (time.Now()), not CPU-cycle based, matching the real
// part's independent UART clock.
package duart

import (
	"time"

	"github.com/dmd5620/we32100/bus"
)

const (
	startAddr uint32 = 0x200000
	endAddr   uint32 = 0x200040

	verticalBlankDelay = 16_666_666 * time.Nanosecond
)

// delayRatesA/B select the per-character delay by the 4-bit baud code in
// CSRx bits 7:4, depending on ACR bit 7.
var delayRatesA = [13]time.Duration{
	200000000, 90909096, 74074072, 50000000,
	33333336, 16666668, 8333334, 9523810,
	4166667, 2083333, 1388888, 1041666, 260416,
}

var delayRatesB = [13]time.Duration{
	133333344, 90909096, 74074072, 66666672,
	33333336, 16666668, 8333334, 5000000,
	4166667, 205338, 5555555, 1041666, 520833,
}

// Register offsets, relative to startAddr.
const (
	regMR12A   = 0x03
	regCSRA    = 0x07
	regCRA     = 0x0b
	regTHRA    = 0x0f
	regIPCRACR = 0x13
	regISRMask = 0x17
	regMR12B   = 0x23
	regCSRB    = 0x27
	regCRB     = 0x2b
	regTHRB    = 0x2f
	regIPOPCR  = 0x37
)

// Port configuration bits.
const (
	cnfETX byte = 0x01
	cnfERX byte = 0x02
)

// Status flags.
const (
	stsRXR byte = 0x01
	stsTXR byte = 0x04
	stsTXE byte = 0x08
	stsOER byte = 0x10
	stsPER byte = 0x20
	stsFER byte = 0x40
)

// Commands written to CRA/CRB.
const (
	cmdERX byte = 0x01
	cmdDRX byte = 0x02
	cmdETX byte = 0x04
	cmdDTX byte = 0x08
)

// Interrupt status register bits.
const (
	istsTAI byte = 0x01
	istsRAI byte = 0x02
	istsRBI byte = 0x20
	istsIPC byte = 0x80
)

// Interrupt vector bits.
const (
	KeyboardInt   byte = 0x04
	MouseBlankInt byte = 0x02
	TxInt         byte = 0x10
	RxInt         byte = 0x20
)

const (
	port0 = 0
	port1 = 1
)

// ErrReceiverNotReady is returned by RxChar when the port's receive
// shift register is still busy with the previous byte; the caller
// should retry the same byte later.
type ErrReceiverNotReady struct{}

func (ErrReceiverNotReady) Error() string { return "duart: receiver not ready" }

type port struct {
	mode      [2]byte
	stat      byte
	conf      byte
	rxData    byte
	txData    byte
	modePtr   int
	rxPending bool
	txPending bool
	charDelay time.Duration
	nextRx    time.Time
	nextTx    time.Time
}

// Duart is the dual-port serial controller mapped at [0x200000,
// 0x200040).
type Duart struct {
	ports       [2]port
	acr         byte
	ipcr        byte
	inprt       byte
	istat       byte
	imr         byte
	ivec        byte
	lastVblank  time.Time
	txCallback  func(byte)
}

// New returns a Duart with both ports reset to their documented
// power-on state. txCallback receives each byte transmitted from port 0
// (the host serial line), unless loopback mode is selected.
func New(txCallback func(byte)) *Duart {
	now := time.Now()
	d := &Duart{
		acr:        0,
		ipcr:       0x40,
		inprt:      0x0b,
		lastVblank: now,
		txCallback: txCallback,
	}
	for i := range d.ports {
		d.ports[i].charDelay = time.Millisecond
		d.ports[i].nextRx = now
		d.ports[i].nextTx = now
	}
	return d
}

// GetInterrupt advances the vertical blank clock if its deadline has
// passed and returns the current interrupt vector, or ok=false if no
// interrupt is pending.
func (d *Duart) GetInterrupt() (vec byte, ok bool) {
	if time.Now().After(d.lastVblank.Add(verticalBlankDelay)) {
		d.lastVblank = time.Now()
		d.VerticalBlank()
	}
	if d.ivec == 0 {
		return 0, false
	}
	return d.ivec, true
}

// Service drains any pending port-0 transmit whose deadline has passed,
// invoking the loopback path or the transmit callback as configured.
func (d *Duart) Service() {
	p := &d.ports[port0]
	if !p.txPending || time.Now().Before(p.nextTx) {
		return
	}

	c := p.txData
	p.conf |= cnfETX
	p.stat |= stsTXR | stsTXE
	d.istat |= istsTAI
	d.ivec |= TxInt
	p.txPending = false

	if (p.mode[1]>>6)&3 == 2 {
		p.rxData = c
		p.stat |= stsRXR
		d.istat |= istsRAI
		d.ivec |= RxInt
		return
	}
	if d.txCallback != nil {
		d.txCallback(c)
	}
}

// HandleKeyboard delivers one keyboard scan code on port 1.
func (d *Duart) HandleKeyboard(val byte) {
	p := &d.ports[port1]
	p.rxData = val
	p.stat |= stsRXR
	d.istat |= istsRBI
	d.ivec |= KeyboardInt
}

// VerticalBlank signals the 60Hz vertical retrace interrupt.
//
// The two branches below both end up setting ipcr's 0x40 bit: the
// source clears inprt's 0x04 bit on the "set" branch and re-sets ipcr's
// 0x40 bit redundantly on the "clear" branch. Kept verbatim rather than
// collapsed to a single unconditional `ipcr |= 0x40`, since the inprt
// side effect only happens on one branch.
func (d *Duart) VerticalBlank() {
	d.ivec |= MouseBlankInt
	d.ipcr |= 0x40
	d.istat |= istsIPC

	if d.inprt&0x04 == 0 {
		d.ipcr |= 0x40
	} else {
		d.inprt &^= 0x04
	}
}

// MouseDown signals a mouse button press. button is 0 (left), 1
// (middle), or 2 (right).
func (d *Duart) MouseDown(button byte) {
	d.ipcr = 0
	d.inprt |= 0x0b
	d.istat |= istsIPC
	d.ivec |= MouseBlankInt
	switch button {
	case 0:
		d.ipcr |= 0x80
		d.inprt &^= 0x08
	case 1:
		d.ipcr |= 0x20
		d.inprt &^= 0x02
	case 2:
		d.ipcr |= 0x10
		d.inprt &^= 0x01
	}
}

// MouseUp signals a mouse button release. Unlike MouseDown, it never
// clears an inprt bit.
func (d *Duart) MouseUp(button byte) {
	d.ipcr = 0
	d.inprt |= 0x0b
	d.istat |= istsIPC
	d.ivec |= MouseBlankInt
	switch button {
	case 0:
		d.ipcr |= 0x80
	case 1:
		d.ipcr |= 0x20
	case 2:
		d.ipcr |= 0x10
	}
}

// RxReady reports whether port 0 has an unread received byte.
func (d *Duart) RxReady() bool {
	return d.ports[port0].stat&stsRXR != 0
}

// RxChar delivers one byte to port 0's receiver. The real UART takes one
// character-time to shift a byte in: the first call for a given byte
// arms the deadline and returns ErrReceiverNotReady; the caller must
// call again with the same byte after the deadline passes.
func (d *Duart) RxChar(c byte) error {
	p := &d.ports[port0]

	if p.rxPending {
		if time.Now().After(p.nextRx) {
			if p.conf&cnfERX != 0 {
				p.rxPending = false
				p.rxData = c
				p.stat |= stsRXR
				d.istat |= istsRAI
				d.ivec |= RxInt
			} else {
				p.stat |= stsOER
			}
			return nil
		}
		return ErrReceiverNotReady{}
	}

	p.nextRx = time.Now().Add(p.charDelay)
	p.rxPending = true
	return ErrReceiverNotReady{}
}

func (d *Duart) handleCommand(cmd byte, portNum int) {
	if cmd == 0 {
		return
	}
	p := &d.ports[portNum]

	switch {
	case cmd&cmdDTX != 0:
		p.conf &^= cnfETX
		p.stat &^= stsTXR | stsTXE
		if portNum == port0 {
			d.ivec &^= TxInt
			d.istat &^= istsTAI
		}
	case cmd&cmdETX != 0:
		p.conf |= cnfETX
		p.stat |= stsTXR | stsTXE
		if portNum == port0 {
			d.istat |= istsTAI
			d.ivec |= TxInt
		}
	}

	switch {
	case cmd&cmdDRX != 0:
		p.conf &^= cnfERX
		p.stat &^= stsRXR
		if portNum == port0 {
			d.ivec &^= RxInt
			d.istat &^= istsRAI
		} else {
			d.ivec &^= KeyboardInt
			d.istat &^= istsRBI
		}
	case cmd&cmdERX != 0:
		p.conf |= cnfERX
		p.stat |= stsRXR
	}

	switch (cmd >> 4) & 7 {
	case 1:
		p.modePtr = 0
	case 2:
		p.stat |= stsRXR
		p.conf |= cnfERX
	case 3:
		p.stat |= stsTXR | stsTXE
		p.conf &^= cnfETX
	case 4:
		p.stat &^= stsFER | stsPER | stsOER
	}
}

// ReadByte implements bus.Device. addr is relative to the device's
// mapped base (0x200000).
func (d *Duart) ReadByte(addr uint32, _ bus.AccessCode) (byte, error) {
	switch byte(addr) {
	case regMR12A:
		p := &d.ports[port0]
		v := p.mode[p.modePtr]
		p.modePtr = (p.modePtr + 1) % 2
		return v, nil
	case regCSRA:
		return d.ports[port0].stat, nil
	case regTHRA:
		p := &d.ports[port0]
		p.stat &^= stsRXR
		d.istat &^= istsRAI
		d.ivec &^= RxInt
		return p.rxData, nil
	case regIPCRACR:
		result := d.ipcr
		d.ipcr &^= 0x0f
		d.ivec = 0
		d.istat &^= istsIPC
		return result, nil
	case regISRMask:
		return d.istat, nil
	case regMR12B:
		p := &d.ports[port1]
		v := p.mode[p.modePtr]
		p.modePtr = (p.modePtr + 1) % 2
		return v, nil
	case regCSRB:
		return d.ports[port1].stat, nil
	case regTHRB:
		p := &d.ports[port1]
		p.stat &^= stsRXR
		d.istat &^= istsRBI
		d.ivec &^= KeyboardInt
		return p.rxData, nil
	case regIPOPCR:
		return d.inprt, nil
	default:
		return 0, nil
	}
}

// WriteByte implements bus.Device.
func (d *Duart) WriteByte(addr uint32, val byte) error {
	switch byte(addr) {
	case regMR12A:
		p := &d.ports[port0]
		p.mode[p.modePtr] = val
		p.modePtr = (p.modePtr + 1) % 2
	case regCSRA:
		baudBits := (val >> 4) & 0xf
		var delay time.Duration
		if d.acr&0x80 == 0 {
			delay = delayRatesA[baudBits]
		} else {
			delay = delayRatesB[baudBits]
		}
		d.ports[port0].charDelay = delay
	case regCRA:
		d.handleCommand(val, port0)
	case regTHRA:
		p := &d.ports[port0]
		p.txData = val
		p.nextTx = time.Now().Add(p.charDelay)
		p.txPending = true
		p.stat &^= stsTXE | stsTXR
		d.ivec &^= TxInt
		d.istat &^= istsTAI
	case regIPCRACR:
		d.acr = val
	case regISRMask:
		d.imr = val
	case regMR12B:
		p := &d.ports[port1]
		p.mode[p.modePtr] = val
		p.modePtr = (p.modePtr + 1) % 2
	case regCRB:
		d.handleCommand(val, port1)
	case regTHRB:
		p := &d.ports[port1]
		p.txData = val
		if val == 0x02 {
			p.stat = stsRXR | stsPER
		}
	case regIPOPCR:
		// Output port control: not implemented, matches the reference
		// hardware's unused bits on this board revision.
	}
	return nil
}

// ReadHalf, ReadWord and their unaligned/write counterparts are not
// valid accesses on this device; the real DUART is byte-addressable
// only. They exist solely to satisfy bus.Device.
func (d *Duart) ReadHalf(addr uint32, access bus.AccessCode) (uint16, error) {
	return 0, &bus.BusError{Kind: bus.Alignment, Addr: addr + startAddr, Access: access}
}
func (d *Duart) ReadHalfUnaligned(addr uint32, access bus.AccessCode) (uint16, error) {
	return d.ReadHalf(addr, access)
}
func (d *Duart) ReadWord(addr uint32, access bus.AccessCode) (uint32, error) {
	return 0, &bus.BusError{Kind: bus.Alignment, Addr: addr + startAddr, Access: access}
}
func (d *Duart) ReadWordUnaligned(addr uint32, access bus.AccessCode) (uint32, error) {
	return d.ReadWord(addr, access)
}
func (d *Duart) WriteHalf(addr uint32, val uint16) error {
	return &bus.BusError{Kind: bus.Alignment, Addr: addr + startAddr, Access: bus.Write}
}
func (d *Duart) WriteHalfUnaligned(addr uint32, val uint16) error { return d.WriteHalf(addr, val) }
func (d *Duart) WriteWord(addr uint32, val uint32) error {
	return &bus.BusError{Kind: bus.Alignment, Addr: addr + startAddr, Access: bus.Write}
}
func (d *Duart) WriteWordUnaligned(addr uint32, val uint32) error { return d.WriteWord(addr, val) }

// StartAddr and EndAddr expose the device's documented bus range for
// main's bus.Map call.
func StartAddr() uint32 { return startAddr }
func EndAddr() uint32   { return endAddr }
