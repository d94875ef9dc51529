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
	"time"

	"github.com/pkg/errors"
)

// pullSettle is the GPPUD setup and hold time.
const pullSettle = 10 * time.Microsecond

var settle = time.Sleep

// fselDecode maps the raw 3-bit function select field to a function.
var fselDecode = [8]Function{
	FunctionInput,
	FunctionOutput,
	FunctionAlt5,
	FunctionAlt4,
	FunctionAlt0,
	FunctionAlt1,
	FunctionAlt2,
	FunctionAlt3,
}

// fselEncode is the inverse of fselDecode.
var fselEncode = func() map[Function]uint32 {
	m := make(map[Function]uint32, len(fselDecode))
	for raw, function := range fselDecode {
		m[function] = uint32(raw)
	}
	return m
}()

// DecodeFunction converts a raw function select field to a function.
func DecodeFunction(raw uint32) (Function, error) {
	if raw >= uint32(len(fselDecode)) {
		return FunctionInput, errors.Wrapf(ErrUnsupported, "raw function select %d", raw)
	}
	return fselDecode[raw], nil
}

// EncodeFunction converts a function to its raw function select field.
func EncodeFunction(function Function) (uint32, error) {
	raw, ok := fselEncode[function]
	if !ok {
		return 0, errors.Wrapf(ErrUnsupported, "function %d", function)
	}
	return raw, nil
}

// classic is the GPIO block shared by the BCM2835, BCM2836 and BCM2837.
type classic struct {
	desc  *Descriptor
	regs  RegisterFile
	sleep func(time.Duration)
}

func (c *classic) Descriptor() *Descriptor {
	return c.desc
}

func (c *classic) check(pin int) error {
	if c.regs == nil {
		return ErrNotMapped
	}
	if pin < 0 || pin >= c.desc.GPIOCount {
		return errors.Wrapf(ErrPinRange, "gpio %d", pin)
	}
	return nil
}

func (c *classic) Level(pin int) (Level, error) {
	if err := c.check(pin); err != nil {
		return LevelUnset, err
	}
	if c.regs.Load(GpLev0+pin/32)&(1<<uint(pin%32)) == 0 {
		return LevelLow, nil
	}
	return LevelHigh, nil
}

func (c *classic) Function(pin int) (Function, error) {
	if err := c.check(pin); err != nil {
		return FunctionInput, err
	}
	shift := uint(pin%10) * 3
	return DecodeFunction((c.regs.Load(GpFsel0+pin/10) >> shift) & 7)
}

func (c *classic) Pull(pin int) (Pull, error) {
	if err := c.check(pin); err != nil {
		return PullUnset, err
	}
	// GPPUD is write only.
	return PullUnset, nil
}

func (c *classic) SetLevel(pin int, level Level) error {
	if err := c.check(pin); err != nil {
		return err
	}
	var reg int
	switch level {
	case LevelHigh:
		reg = GpSet0
	case LevelLow:
		reg = GpClr0
	default:
		return errors.Wrapf(ErrUnsupported, "level %d", level)
	}
	function, err := c.Function(pin)
	if err != nil {
		return err
	}
	if function != FunctionOutput {
		return errors.Wrapf(ErrNotOutput, "gpio %d is %s", pin, function)
	}
	c.regs.Store(reg+pin/32, 1<<uint(pin%32))
	return nil
}

func (c *classic) SetFunction(pin int, function Function) error {
	if err := c.check(pin); err != nil {
		return err
	}
	if alt, ok := function.Alt(); ok && alt >= c.desc.FunctionCount {
		return errors.Wrapf(ErrUnsupported, "function %s", function)
	}
	raw, err := EncodeFunction(function)
	if err != nil {
		return err
	}
	reg := GpFsel0 + pin/10
	shift := uint(pin%10) * 3
	value := c.regs.Load(reg)
	value &^= 7 << shift
	value |= raw << shift
	c.regs.Store(reg, value)
	return nil
}

func (c *classic) SetPull(pin int, pull Pull) error {
	if err := c.check(pin); err != nil {
		return err
	}
	var control uint32
	switch pull {
	case PullNone:
		control = 0
	case PullDown:
		control = 1
	case PullUp:
		control = 2
	default:
		return errors.Wrapf(ErrUnsupported, "pull %s", pull)
	}
	clock := GpPudClk0 + pin/32
	c.regs.Store(GpPud, control)
	c.sleep(pullSettle)
	c.regs.Store(clock, 1<<uint(pin%32))
	c.sleep(pullSettle)
	c.regs.Store(GpPud, 0)
	c.sleep(pullSettle)
	c.regs.Store(clock, 0)
	c.sleep(pullSettle)
	return nil
}

func (c *classic) NextRegister(prev int) int {
	switch {
	case prev < 0:
		return GpFsel0
	case prev >= GpPudClk1:
		return -1
	default:
		return prev + 1
	}
}

func (c *classic) ReadRegister(reg int) (uint32, error) {
	if c.regs == nil {
		return 0, ErrNotMapped
	}
	if reg < 0 || reg >= c.regs.Len() {
		return 0, errors.Wrapf(ErrNotMapped, "register %d", reg)
	}
	return c.regs.Load(reg), nil
}
