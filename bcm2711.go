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

// bcm2711 replaces the GPPUD clock protocol with directly readable
// 2-bit pull fields, 16 pins per register.
type bcm2711 struct {
	*classic
}

const (
	pupPdnNone uint32 = 0
	pupPdnUp   uint32 = 1
	pupPdnDown uint32 = 2
)

func (c *bcm2711) Pull(pin int) (Pull, error) {
	if err := c.check(pin); err != nil {
		return PullUnset, err
	}
	shift := uint(pin%16) * 2
	switch raw := (c.regs.Load(GpPupPdn0+pin/16) >> shift) & 3; raw {
	case pupPdnNone:
		return PullNone, nil
	case pupPdnUp:
		return PullUp, nil
	case pupPdnDown:
		return PullDown, nil
	default:
		return PullUnset, errors.Wrapf(ErrUnsupported, "gpio %d raw pull %d", pin, raw)
	}
}

func (c *bcm2711) SetPull(pin int, pull Pull) error {
	if err := c.check(pin); err != nil {
		return err
	}
	var raw uint32
	switch pull {
	case PullNone:
		raw = pupPdnNone
	case PullUp:
		raw = pupPdnUp
	case PullDown:
		raw = pupPdnDown
	default:
		return errors.Wrapf(ErrUnsupported, "pull %s", pull)
	}
	reg := GpPupPdn0 + pin/16
	shift := uint(pin%16) * 2
	value := c.regs.Load(reg)
	value &^= 3 << shift
	value |= raw << shift
	c.regs.Store(reg, value)
	return nil
}

func (c *bcm2711) NextRegister(prev int) int {
	switch {
	case prev < GpPudClk1:
		return c.classic.NextRegister(prev)
	case prev < GpPupPdn0:
		return GpPupPdn0
	case prev < GpPupPdn3:
		return prev + 1
	default:
		return -1
	}
}
