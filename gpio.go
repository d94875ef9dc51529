// Copyright (c) 2020 Peter Hagelund
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package gpio

import (
	"github.com/pkg/errors"
)

var (
	// ErrPinRange is returned when a pin number is outside the chip's GPIO range.
	ErrPinRange = errors.New("pin out of range")
	// ErrUnsupported is returned for a function, level or pull value the chip cannot encode.
	ErrUnsupported = errors.New("unsupported value")
	// ErrNotOutput is returned when driving a level on a pin that is not an output.
	ErrNotOutput = errors.New("pin is not an output")
	// ErrNotMapped is returned when the register window is missing or too small.
	ErrNotMapped = errors.New("register window not mapped")
)

// Function is the GPIO function select type.
type Function uint8

const (
	// FunctionInput is the plain input function.
	FunctionInput Function = iota
	// FunctionOutput is the plain output function.
	FunctionOutput
	// FunctionAlt0 is alternate function 0.
	FunctionAlt0
	// FunctionAlt1 is alternate function 1.
	FunctionAlt1
	// FunctionAlt2 is alternate function 2.
	FunctionAlt2
	// FunctionAlt3 is alternate function 3.
	FunctionAlt3
	// FunctionAlt4 is alternate function 4.
	FunctionAlt4
	// FunctionAlt5 is alternate function 5.
	FunctionAlt5
)

var functionNames = [...]string{"INPUT", "OUTPUT", "ALT0", "ALT1", "ALT2", "ALT3", "ALT4", "ALT5"}

func (f Function) String() string {
	if int(f) < len(functionNames) {
		return functionNames[f]
	}
	return "UNKNOWN"
}

// Alt returns the alternate function index (0-5) and true, or false for input and output.
func (f Function) Alt() (int, bool) {
	if f < FunctionAlt0 || f > FunctionAlt5 {
		return 0, false
	}
	return int(f - FunctionAlt0), true
}

// Pull is the GPIO pull up/down type.
type Pull uint8

const (
	// PullUnset means the pull state is not known.
	PullUnset Pull = iota
	// PullNone means no pull resistor.
	PullNone
	// PullDown means the pull down resistor is enabled.
	PullDown
	// PullUp means the pull up resistor is enabled.
	PullUp
)

var pullNames = [...]string{"UNSET", "NONE", "DOWN", "UP"}

func (p Pull) String() string {
	if int(p) < len(pullNames) {
		return pullNames[p]
	}
	return "UNKNOWN"
}

// Level is the GPIO drive level type.
type Level uint8

const (
	// LevelUnset means no level.
	LevelUnset Level = iota
	// LevelLow is a low (0) level.
	LevelLow
	// LevelHigh is a high (1) level.
	LevelHigh
)

// Bit returns 1 for LevelHigh and 0 otherwise.
func (l Level) Bit() int {
	if l == LevelHigh {
		return 1
	}
	return 0
}

// Chip is a GPIO controller bound to its register window.
type Chip interface {
	// Descriptor returns the static description of the chip.
	Descriptor() *Descriptor
	// Level reads the input level of a pin.
	Level(pin int) (Level, error)
	// Function reads the function select of a pin.
	Function(pin int) (Function, error)
	// Pull reads the pull state of a pin, PullUnset when the chip cannot report it.
	Pull(pin int) (Pull, error)
	// SetLevel drives an output pin high or low.
	SetLevel(pin int, level Level) error
	// SetFunction changes the function select of a pin.
	SetFunction(pin int, function Function) error
	// SetPull changes the pull state of a pin.
	SetPull(pin int, pull Pull) error
	// NextRegister returns the register after prev (-1 to start), or a negative value at the end.
	NextRegister(prev int) int
	// ReadRegister reads a raw register by number.
	ReadRegister(reg int) (uint32, error)
}
