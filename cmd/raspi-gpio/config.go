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
	"flag"
	"fmt"
	"io"
	"log"

	gpio "github.com/peterhagelund/go-gpio"
)

type config struct {
	gpioMem string
	mem     string
	root    string
	model   int
	table   bool
	color   bool
	verbose bool
	args    []string
	usage   func()
}

func parseConfig(name string, args []string, output io.Writer) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.gpioMem, "gpiomem", gpio.GpioMemPath, "GPIO-only memory device, empty to skip")
	fs.StringVar(&cfg.mem, "mem", gpio.MemPath, "Physical memory device used when gpiomem is unavailable (root only)")
	fs.StringVar(&cfg.root, "root", "/", "Filesystem root used to probe the board revision")
	fs.IntVar(&cfg.model, "model", -1, "Chip revision code (0=BCM2835, 1=BCM2836, 2=BCM2837, 3=BCM2711), -1 to probe")
	fs.BoolVar(&cfg.table, "table", false, "Render funcs as a table instead of CSV")
	fs.BoolVar(&cfg.color, "color", false, "Colour levels in get output")
	fs.BoolVar(&cfg.verbose, "v", false, "Enable verbose output")
	cfg.usage = func() {
		printHelp(output)
		fmt.Fprintln(output, "Options:")
		fs.PrintDefaults()
	}
	fs.Usage = cfg.usage
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.args = fs.Args()
	return cfg, nil
}

func (cfg *config) logf(format string, v ...interface{}) {
	if cfg.verbose {
		log.Printf(format, v...)
	}
}

func (cfg *config) mapOptions() gpio.MapOptions {
	return gpio.MapOptions{GpioMem: cfg.gpioMem, Mem: cfg.mem}
}
