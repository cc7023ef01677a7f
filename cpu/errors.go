/*
we32100 - CPU exception and error types.

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

package cpu

import (
	"errors"
	"fmt"

	"github.com/dmd5620/we32100/bus"
)

// Exception identifies a processor exception raised by decode or execute,
// distinct from a bus fault.
type Exception uint8

const (
	IllegalOpcode Exception = iota
	PrivilegedOpcode
	ReservedOpcode
	IntegerOverflow
	IntegerZeroDivide
	ProcessException
)

func (e Exception) String() string {
	switch e {
	case IllegalOpcode:
		return "illegal opcode"
	case PrivilegedOpcode:
		return "privileged opcode"
	case ReservedOpcode:
		return "reserved opcode"
	case IntegerOverflow:
		return "integer overflow"
	case IntegerZeroDivide:
		return "integer zero divide"
	case ProcessException:
		return "process exception"
	default:
		return "unknown exception"
	}
}

// Error is what Decode, Step, and the evaluation engine return on
// failure. It either wraps a bus.BusError or carries an Exception; never
// both.
type Error struct {
	Exception Exception
	Bus       *bus.BusError
}

func (e *Error) Error() string {
	if e.Bus != nil {
		return fmt.Sprintf("cpu: %s", e.Bus.Error())
	}
	return fmt.Sprintf("cpu: %s", e.Exception)
}

func (e *Error) Unwrap() error {
	if e.Bus != nil {
		return e.Bus
	}
	return nil
}

func excErr(exc Exception) error {
	return &Error{Exception: exc}
}

func busErr(err error) error {
	if err == nil {
		return nil
	}
	var be *bus.BusError
	if errors.As(err, &be) {
		return &Error{Bus: be}
	}
	return err
}
