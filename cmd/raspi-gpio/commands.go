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

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mgutz/ansi"
	"github.com/olekukonko/tablewriter"
	gpio "github.com/peterhagelund/go-gpio"
	"github.com/pkg/errors"
)

var banks = map[int]string{
	0:  "BANK0 (GPIO 0 to 27):",
	28: "BANK1 (GPIO 28 to 45):",
	46: "BANK2 (GPIO 46 to 53):",
}

func runGet(w io.Writer, chip gpio.Chip, pins []int, color bool) error {
	all := pins == nil
	if all {
		pins = allPins(chip.Descriptor().GPIOCount)
	}
	for _, pin := range pins {
		indent := ""
		if all {
			if bank, ok := banks[pin]; ok {
				fmt.Fprintln(w, bank)
			}
			indent = "  "
		}
		line, err := pinState(chip, pin, color)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, indent+line)
	}
	return nil
}

func pinState(chip gpio.Chip, pin int, color bool) (string, error) {
	level, err := chip.Level(pin)
	if err != nil {
		return "", err
	}
	function, err := chip.Function(pin)
	if err != nil {
		return "", err
	}
	raw, err := gpio.EncodeFunction(function)
	if err != nil {
		return "", err
	}
	name, err := chip.Descriptor().FunctionName(pin, function)
	if err != nil {
		return "", err
	}
	pull, err := chip.Pull(pin)
	if err != nil {
		return "", err
	}
	levelField := fmt.Sprintf("level=%d", level.Bit())
	if color {
		if level == gpio.LevelHigh {
			levelField = ansi.Color(levelField, "green+b")
		} else {
			levelField = ansi.Color(levelField, "red")
		}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "GPIO %d: %s fsel=%d", pin, levelField, raw)
	if alt, ok := function.Alt(); ok {
		fmt.Fprintf(&b, " alt=%d", alt)
	}
	fmt.Fprintf(&b, " func=%s", name)
	if pull != gpio.PullUnset {
		fmt.Fprintf(&b, " pull=%s", pull)
	}
	return b.String(), nil
}

type setOptions struct {
	function    gpio.Function
	hasFunction bool
	level       gpio.Level
	pull        gpio.Pull
}

func (o setOptions) empty() bool {
	return !o.hasFunction && o.level == gpio.LevelUnset && o.pull == gpio.PullUnset
}

var setFunctions = map[string]gpio.Function{
	"ip": gpio.FunctionInput,
	"op": gpio.FunctionOutput,
	"a0": gpio.FunctionAlt0,
	"a1": gpio.FunctionAlt1,
	"a2": gpio.FunctionAlt2,
	"a3": gpio.FunctionAlt3,
	"a4": gpio.FunctionAlt4,
	"a5": gpio.FunctionAlt5,
}

func parseSetOptions(args []string) (setOptions, error) {
	var opts setOptions
	for _, arg := range args {
		if function, ok := setFunctions[arg]; ok {
			opts.function, opts.hasFunction = function, true
			continue
		}
		switch arg {
		case "dh":
			opts.level = gpio.LevelHigh
		case "dl":
			opts.level = gpio.LevelLow
		case "pu":
			opts.pull = gpio.PullUp
		case "pd":
			opts.pull = gpio.PullDown
		case "pn":
			opts.pull = gpio.PullNone
		default:
			return opts, errors.Errorf("unknown argument %q", arg)
		}
	}
	return opts, nil
}

// runSet applies the function, then the drive level, then the pull to each pin.
func runSet(chip gpio.Chip, pins []int, opts setOptions) error {
	for _, pin := range pins {
		if opts.hasFunction {
			if err := chip.SetFunction(pin, opts.function); err != nil {
				return err
			}
		}
		if opts.level != gpio.LevelUnset {
			err := chip.SetLevel(pin, opts.level)
			if errors.Is(err, gpio.ErrNotOutput) {
				return errors.Errorf("can't set GPIO %d value, not an output", pin)
			}
			if err != nil {
				return err
			}
		}
		if opts.pull != gpio.PullUnset {
			if err := chip.SetPull(pin, opts.pull); err != nil {
				return err
			}
		}
	}
	return nil
}

func runFuncs(w io.Writer, desc *gpio.Descriptor, pins []int, table bool) error {
	if pins == nil {
		pins = allPins(desc.GPIOCount)
	}
	header := []string{"GPIO", "DEFAULT PULL"}
	for alt := 0; alt < desc.FunctionCount; alt++ {
		header = append(header, fmt.Sprintf("ALT%d", alt))
	}
	rows := make([][]string, 0, len(pins))
	for _, pin := range pins {
		pull, err := desc.DefaultPull(pin)
		if err != nil {
			return err
		}
		row := []string{fmt.Sprint(pin), pull.String()}
		for alt := 0; alt < desc.FunctionCount; alt++ {
			name, err := desc.AltName(pin, alt)
			if err != nil {
				return err
			}
			row = append(row, name)
		}
		rows = append(rows, row)
	}
	if table {
		t := tablewriter.NewWriter(w)
		t.SetHeader(header)
		t.AppendBulk(rows)
		t.Render()
		return nil
	}
	fmt.Fprintln(w, strings.Join(header, ", "))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, ", "))
	}
	return nil
}

func runRaw(w io.Writer, chip gpio.Chip) error {
	values, err := gpio.Dump(chip)
	if err != nil {
		return err
	}
	for _, r := range values {
		fmt.Fprintf(w, "%02x: %08x %s\n", r.Offset(), r.Value, gpio.RegisterName(r.Index))
	}
	return nil
}

func printHelp(w io.Writer) {
	const name = "raspi-gpio"
	fmt.Fprintf(w, `
WARNING! %[1]s set writes directly to the GPIO control registers
ignoring whatever else may be using them (such as Linux drivers) -
it is designed as a debug tool, only use it if you know what you
are doing and at your own risk!

The %[1]s tool is designed to help hack / debug BCM283x and BCM2711 GPIO.
Running %[1]s with the help argument prints this help.
%[1]s can get and print the state of a GPIO (or all GPIOs)
and can be used to set the function, pulls and value of a GPIO.
%[1]s uses /dev/gpiomem when available, otherwise it must be run as root.
Use:
  %[1]s [<options>] get [GPIO]
OR
  %[1]s [<options>] set <GPIO> [options]
OR
  %[1]s [<options>] funcs [GPIO]
OR
  %[1]s [<options>] raw
GPIO is a comma-separated list of pin numbers or ranges (without spaces),
e.g. 4 or 18-21 or 7,9-11
Note that omitting [GPIO] from %[1]s get prints all GPIOs.
%[1]s funcs will dump all the possible GPIO alt functions in CSV format
or if [GPIO] is specified the alternate funcs just for that specific GPIO.
%[1]s raw dumps the GPIO registers of the detected chip.
Valid [options] for %[1]s set are:
  ip      set GPIO as input
  op      set GPIO as output
  a0-a5   set GPIO to alternate function alt0-alt5
  pu      set GPIO in-pad pull up
  pd      set GPIO in-pad pull down
  pn      set GPIO pull none (no pull)
  dh      set GPIO to drive to high (1) level (only valid if set to be an output)
  dl      set GPIO to drive low (0) level (only valid if set to be an output)
Examples:
  %[1]s get              Prints state of all GPIOs one per line
  %[1]s get 20           Prints state of GPIO20
  %[1]s get 20,21        Prints state of GPIO20 and GPIO21
  %[1]s set 20 a5        Set GPIO20 to ALT5 function (GPCLK0)
  %[1]s set 20 pu        Enable GPIO20 ~50k in-pad pull up
  %[1]s set 20 pd        Enable GPIO20 ~50k in-pad pull down
  %[1]s set 20 op        Set GPIO20 to be an output
  %[1]s set 20 dl        Set GPIO20 to output low/zero (must already be set as an output)
  %[1]s set 20 ip pd     Set GPIO20 to input with pull down
  %[1]s set 35 a0 pu     Set GPIO35 to ALT0 function (SPI_CE1_N) with pull up
  %[1]s set 20 op pn dh  Set GPIO20 to output with no pull and driving high
`, name)
}
