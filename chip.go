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

// ErrUnknownModel is returned for a chip revision code this package has no descriptor for.
var ErrUnknownModel = errors.New("unknown chip model")

// Model is the chip revision code.
type Model int

const (
	// ModelBCM2835 is the BCM2835 (Pi 1, Zero).
	ModelBCM2835 Model = iota
	// ModelBCM2836 is the BCM2836 (Pi 2).
	ModelBCM2836
	// ModelBCM2837 is the BCM2837 (Pi 3, Zero 2).
	ModelBCM2837
	// ModelBCM2711 is the BCM2711 (Pi 4, 400, CM4).
	ModelBCM2711
)

func (m Model) String() string {
	if d, err := DescriptorFor(m); err == nil {
		return d.Name
	}
	return "unknown"
}

// GpioOffset is the GPIO offset into the peripheral register space.
const GpioOffset int64 = 0x200000

// PageSize (4K) is the size of the mapped GPIO register window.
const PageSize int = 1 << 12

// Descriptor describes the GPIO register layout of one chip.
type Descriptor struct {
	// Name is the SoC name.
	Name string
	// Model is the chip revision code.
	Model Model
	// Base is the physical address of the GPIO register block.
	Base int64
	// Size is the length of the register window in bytes.
	Size int
	// GPIOCount is the number of pins, numbered 0 to GPIOCount-1.
	GPIOCount int
	// FunctionCount is the number of alternate functions per pin.
	FunctionCount int
}

var descriptors = [...]Descriptor{
	{Name: "BCM2835", Model: ModelBCM2835, Base: 0x20000000 + GpioOffset, Size: PageSize, GPIOCount: 54, FunctionCount: 6},
	{Name: "BCM2836", Model: ModelBCM2836, Base: 0x3f000000 + GpioOffset, Size: PageSize, GPIOCount: 54, FunctionCount: 6},
	{Name: "BCM2837", Model: ModelBCM2837, Base: 0x3f000000 + GpioOffset, Size: PageSize, GPIOCount: 54, FunctionCount: 6},
	{Name: "BCM2711", Model: ModelBCM2711, Base: 0xfe000000 + GpioOffset, Size: PageSize, GPIOCount: 54, FunctionCount: 6},
}

// DescriptorFor returns the descriptor for a chip revision code.
func DescriptorFor(model Model) (*Descriptor, error) {
	if model < 0 || int(model) >= len(descriptors) {
		return nil, errors.Wrapf(ErrUnknownModel, "model %d", int(model))
	}
	d := descriptors[model]
	return &d, nil
}

// Open binds the descriptor to a register window and returns the chip for its model.
func (d *Descriptor) Open(regs RegisterFile) (Chip, error) {
	if regs == nil {
		return nil, ErrNotMapped
	}
	c := &classic{desc: d, regs: regs, sleep: settle}
	var chip Chip = c
	last := GpPudClk1
	if d.Model == ModelBCM2711 {
		chip = &bcm2711{classic: c}
		last = GpPupPdn3
	}
	if regs.Len() <= last {
		return nil, errors.Wrapf(ErrNotMapped, "%s needs %d registers, window has %d", d.Name, last+1, regs.Len())
	}
	return chip, nil
}

// AltName returns the signal on alternate function alt of a pin, or "-" when none is assigned.
func (d *Descriptor) AltName(pin int, alt int) (string, error) {
	if pin < 0 || pin >= d.GPIOCount || pin >= len(altNames) {
		return "", errors.Wrapf(ErrPinRange, "gpio %d", pin)
	}
	if alt < 0 || alt >= d.FunctionCount {
		return "", errors.Wrapf(ErrUnsupported, "alt %d", alt)
	}
	return altNames[pin][alt], nil
}

// DefaultPull returns the power-on pull state of a pin.
func (d *Descriptor) DefaultPull(pin int) (Pull, error) {
	if pin < 0 || pin >= d.GPIOCount || pin >= len(defaultPulls) {
		return PullUnset, errors.Wrapf(ErrPinRange, "gpio %d", pin)
	}
	return defaultPulls[pin], nil
}

// FunctionName returns "INPUT", "OUTPUT" or the alternate function signal name of a pin.
func (d *Descriptor) FunctionName(pin int, function Function) (string, error) {
	if alt, ok := function.Alt(); ok {
		return d.AltName(pin, alt)
	}
	if pin < 0 || pin >= d.GPIOCount {
		return "", errors.Wrapf(ErrPinRange, "gpio %d", pin)
	}
	if function > FunctionAlt5 {
		return "", errors.Wrapf(ErrUnsupported, "function %d", function)
	}
	return function.String(), nil
}
