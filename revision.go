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
	"bufio"
	"encoding/binary"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/u-root/u-root/pkg/dt"
)

// ErrNoRevision is returned when no board revision code can be found.
var ErrNoRevision = errors.New("board revision not found")

const (
	revisionPath = "proc/device-tree/system/linux,revision"
	fdtPath      = "sys/firmware/fdt"
	cpuinfoPath  = "proc/cpuinfo"
)

// newStyleRevision marks a revision code that carries a processor field.
const newStyleRevision uint32 = 1 << 23

// ModelFromRevision decodes the chip model from a board revision code.
func ModelFromRevision(code uint32) (Model, error) {
	if code&newStyleRevision == 0 {
		return ModelBCM2835, nil
	}
	model := Model((code >> 12) & 0xf)
	if _, err := DescriptorFor(model); err != nil {
		return 0, errors.Wrapf(ErrUnknownModel, "revision %x processor %d", code, int(model))
	}
	return model, nil
}

// Prober finds the board revision of the running system.
type Prober struct {
	// Root is the filesystem root, "/" on a live system.
	Root string
}

// Revision returns the board revision code and the file it was read from.
// Sources are tried in turn; when all fail the first real error is returned.
func (p *Prober) Revision() (uint32, string, error) {
	sources := []struct {
		path string
		read func(string) (uint32, error)
	}{
		{revisionPath, readRevisionCell},
		{fdtPath, readRevisionFDT},
		{cpuinfoPath, readRevisionCPUInfo},
	}
	var first error
	var firstPath string
	for _, source := range sources {
		path := filepath.Join(p.root(), source.path)
		code, err := source.read(path)
		if err == nil {
			return code, path, nil
		}
		if first == nil && !os.IsNotExist(errors.Cause(err)) && errors.Cause(err) != ErrNoRevision {
			first, firstPath = err, path
		}
	}
	if first != nil {
		return 0, firstPath, first
	}
	return 0, "", ErrNoRevision
}

// Model returns the chip model of the running system.
func (p *Prober) Model() (Model, error) {
	code, _, err := p.Revision()
	if err != nil {
		return 0, err
	}
	return ModelFromRevision(code)
}

func (p *Prober) root() string {
	if p.Root == "" {
		return "/"
	}
	return p.Root
}

func readRevisionCell(path string) (uint32, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	if len(data) != 4 {
		return 0, errors.Errorf("%s: expected 4 bytes, got %d", path, len(data))
	}
	return binary.BigEndian.Uint32(data), nil
}

func readRevisionFDT(path string) (uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	fdt, err := dt.ReadFDT(f)
	if err != nil {
		return 0, errors.Wrapf(err, "read %s", path)
	}
	return revisionFromFDT(fdt)
}

// revisionFromFDT finds the linux,revision property of the /system node.
func revisionFromFDT(fdt *dt.FDT) (uint32, error) {
	if fdt.RootNode == nil {
		return 0, ErrNoRevision
	}
	for _, n := range fdt.RootNode.Children {
		if n.Name != "system" {
			continue
		}
		p, ok := n.LookProperty("linux,revision")
		if !ok {
			break
		}
		code, err := p.AsU32()
		if err != nil {
			return 0, errors.Wrap(err, "linux,revision")
		}
		return code, nil
	}
	return 0, ErrNoRevision
}

func readRevisionCPUInfo(path string) (uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), ":")
		if !ok || strings.TrimSpace(key) != "Revision" {
			continue
		}
		code, err := strconv.ParseUint(strings.TrimSpace(value), 16, 32)
		if err != nil {
			return 0, errors.Wrapf(err, "%s: revision %q", path, value)
		}
		return uint32(code), nil
	}
	if err := scanner.Err(); err != nil {
		return 0, errors.Wrapf(err, "read %s", path)
	}
	return 0, ErrNoRevision
}
