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
	"fmt"
	"testing"
	"time"
)

// simulator stands in for the GPIO block: GPSET/GPCLR drive GPLEV and
// a GPPUDCLK pulse latches the GPPUD control value into the pin.
type simulator struct {
	regs    [64]uint32
	latched [54]uint32
	events  []string
}

func (s *simulator) Len() int {
	return len(s.regs)
}

func (s *simulator) Load(reg int) uint32 {
	return s.regs[reg]
}

func (s *simulator) Store(reg int, value uint32) {
	s.events = append(s.events, fmt.Sprintf("%d=%#x", reg, value))
	switch reg {
	case GpSet0, GpSet1:
		s.regs[GpLev0+reg-GpSet0] |= value
	case GpClr0, GpClr1:
		s.regs[GpLev0+reg-GpClr0] &^= value
	case GpPudClk0, GpPudClk1:
		for bit := 0; bit < 32; bit++ {
			pin := (reg-GpPudClk0)*32 + bit
			if value&(1<<uint(bit)) != 0 && pin < len(s.latched) {
				s.latched[pin] = s.regs[GpPud]
			}
		}
		s.regs[reg] = value
	default:
		s.regs[reg] = value
	}
}

func (s *simulator) sleep(d time.Duration) {
	s.events = append(s.events, "sleep "+d.String())
}

func (s *simulator) reset() {
	s.events = nil
}

func openChip(t *testing.T, model Model) (Chip, *simulator) {
	t.Helper()
	desc, err := DescriptorFor(model)
	if err != nil {
		t.Fatalf("DescriptorFor(%d) failed: %v", model, err)
	}
	sim := &simulator{}
	chip, err := desc.Open(sim)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	switch c := chip.(type) {
	case *classic:
		c.sleep = sim.sleep
	case *bcm2711:
		c.sleep = sim.sleep
	}
	return chip, sim
}

var allModels = []Model{ModelBCM2835, ModelBCM2836, ModelBCM2837, ModelBCM2711}
