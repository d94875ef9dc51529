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
	"os"

	gpio "github.com/peterhagelund/go-gpio"
	"github.com/pkg/errors"
)

type app struct {
	cfg *config
	out io.Writer
	// openChip maps the register window of desc; the returned func releases it.
	openChip func(desc *gpio.Descriptor) (gpio.Chip, func() error, error)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("raspi-gpio: ")
	cfg, err := parseConfig(os.Args[0], os.Args[1:], os.Stderr)
	if err == flag.ErrHelp {
		return
	}
	if err != nil {
		os.Exit(2)
	}
	a := &app{cfg: cfg, out: os.Stdout}
	a.openChip = a.mapChip
	if err := a.run(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

func (a *app) run() error {
	args := a.cfg.args
	if len(args) == 0 {
		fmt.Fprintln(a.out, `No arguments given - try "raspi-gpio help"`)
		return nil
	}
	command, args := args[0], args[1:]
	switch command {
	case "help":
		a.cfg.usage()
		return nil
	case "get", "funcs", "raw":
		limit := 1
		if command == "raw" {
			limit = 0
		}
		if len(args) > limit {
			return errors.New("too many arguments")
		}
	case "set":
		if len(args) == 0 {
			return errors.New("need GPIO number to set")
		}
	default:
		return errors.Errorf("unknown argument %q try \"raspi-gpio help\"", command)
	}

	var opts setOptions
	if command == "set" {
		var err error
		if opts, err = parseSetOptions(args[1:]); err != nil {
			return err
		}
		if opts.empty() {
			fmt.Fprintln(a.out, "Nothing to set")
			return nil
		}
	}

	desc, err := a.descriptor()
	if err != nil && command == "funcs" && a.cfg.model < 0 {
		a.cfg.logf("%v, using BCM2835 tables", err)
		desc, err = gpio.DescriptorFor(gpio.ModelBCM2835)
	}
	if err != nil {
		return err
	}
	var pins []int
	if len(args) > 0 {
		if pins, err = parsePins(args[0], desc.GPIOCount); err != nil {
			return err
		}
	}

	switch command {
	case "funcs":
		return runFuncs(a.out, desc, pins, a.cfg.table)
	case "set":
		return a.withChip(desc, func(chip gpio.Chip) error {
			return runSet(chip, pins, opts)
		})
	case "get":
		return a.withChip(desc, func(chip gpio.Chip) error {
			return runGet(a.out, chip, pins, a.cfg.color)
		})
	default:
		return a.withChip(desc, func(chip gpio.Chip) error {
			return runRaw(a.out, chip)
		})
	}
}

// descriptor selects the chip from -model or, failing that, the board revision.
func (a *app) descriptor() (*gpio.Descriptor, error) {
	if a.cfg.model >= 0 {
		return gpio.DescriptorFor(gpio.Model(a.cfg.model))
	}
	p := &gpio.Prober{Root: a.cfg.root}
	code, path, err := p.Revision()
	if err != nil {
		return nil, errors.Wrap(err, "can't detect chip, try -model")
	}
	model, err := gpio.ModelFromRevision(code)
	if err != nil {
		return nil, err
	}
	a.cfg.logf("revision %x from %s: %s", code, path, model)
	return gpio.DescriptorFor(model)
}

func (a *app) withChip(desc *gpio.Descriptor, f func(chip gpio.Chip) error) error {
	chip, release, err := a.openChip(desc)
	if err != nil {
		return err
	}
	err = f(chip)
	if cerr := release(); cerr != nil {
		if err == nil {
			return errors.Wrap(cerr, "release chip")
		}
		a.cfg.logf("release chip: %v", cerr)
	}
	return err
}

func (a *app) mapChip(desc *gpio.Descriptor) (gpio.Chip, func() error, error) {
	mem, err := gpio.Map(desc, a.cfg.mapOptions())
	if err != nil {
		return nil, nil, err
	}
	a.cfg.logf("mapped %s for %s at %#x", mem.Path(), desc.Name, desc.Base)
	chip, err := desc.Open(mem.Window())
	if err != nil {
		mem.Close()
		return nil, nil, err
	}
	return chip, mem.Close, nil
}
