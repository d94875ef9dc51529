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
	"sync/atomic"
)

// Register numbers, in 32-bit words from the start of the GPIO block.
const (
	GpFsel0   int = 0
	GpSet0    int = 7
	GpSet1    int = 8
	GpClr0    int = 10
	GpClr1    int = 11
	GpLev0    int = 13
	GpLev1    int = 14
	GpPud     int = 37
	GpPudClk0 int = 38
	GpPudClk1 int = 39

	// GpPupPdn0 is the first of the four BCM2711 pull control registers.
	GpPupPdn0 int = 57
	// GpPupPdn3 is the last of the four BCM2711 pull control registers.
	GpPupPdn3 int = 60
)

var registerNames = map[int]string{
	0: "GPFSEL0", 1: "GPFSEL1", 2: "GPFSEL2", 3: "GPFSEL3", 4: "GPFSEL4", 5: "GPFSEL5",
	7: "GPSET0", 8: "GPSET1",
	10: "GPCLR0", 11: "GPCLR1",
	13: "GPLEV0", 14: "GPLEV1",
	16: "GPEDS0", 17: "GPEDS1",
	19: "GPREN0", 20: "GPREN1",
	22: "GPFEN0", 23: "GPFEN1",
	25: "GPHEN0", 26: "GPHEN1",
	28: "GPLEN0", 29: "GPLEN1",
	31: "GPAREN0", 32: "GPAREN1",
	34: "GPAFEN0", 35: "GPAFEN1",
	37: "GPPUD", 38: "GPPUDCLK0", 39: "GPPUDCLK1",
	57: "GPIO_PUP_PDN_CNTRL_REG0", 58: "GPIO_PUP_PDN_CNTRL_REG1",
	59: "GPIO_PUP_PDN_CNTRL_REG2", 60: "GPIO_PUP_PDN_CNTRL_REG3",
}

// RegisterName returns the datasheet name of a register, or "-" for a reserved slot.
func RegisterName(reg int) string {
	if name, ok := registerNames[reg]; ok {
		return name
	}
	return "-"
}

// RegisterFile is a block of 32-bit registers indexed from 0.
type RegisterFile interface {
	// Len returns the number of registers.
	Len() int
	// Load reads a register.
	Load(reg int) uint32
	// Store writes a register.
	Store(reg int, value uint32)
}

// Window is a RegisterFile backed by a slice, usually a mapped device.
type Window []uint32

func (w Window) Len() int {
	return len(w)
}

func (w Window) Load(reg int) uint32 {
	w.check(reg)
	return atomic.LoadUint32(&w[reg])
}

func (w Window) Store(reg int, value uint32) {
	w.check(reg)
	atomic.StoreUint32(&w[reg], value)
}

func (w Window) check(reg int) {
	if reg < 0 || reg >= len(w) {
		panic(fmt.Sprintf("gpio: register %d outside window of %d registers", reg, len(w)))
	}
}

// RegisterValue is one entry of a register dump.
type RegisterValue struct {
	Index int
	Value uint32
}

// Offset returns the byte offset of the register from the start of the block.
func (r RegisterValue) Offset() int {
	return r.Index * 4
}

// Dump reads every register the chip exposes, in ascending order.
func Dump(chip Chip) ([]RegisterValue, error) {
	var values []RegisterValue
	for reg := chip.NextRegister(-1); reg >= 0; reg = chip.NextRegister(reg) {
		value, err := chip.ReadRegister(reg)
		if err != nil {
			return values, err
		}
		values = append(values, RegisterValue{Index: reg, Value: value})
	}
	return values, nil
}
