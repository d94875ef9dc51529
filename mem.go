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
	"syscall"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// GpioMemPath is the GPIO-only memory device, usable without root.
const GpioMemPath = "/dev/gpiomem"

// MemPath is the physical memory device, root only.
const MemPath = "/dev/mem"

// MapOptions selects the device files used by Map.
type MapOptions struct {
	// GpioMem is the GPIO-only device, mapped at offset 0. Empty disables it.
	GpioMem string
	// Mem is the physical memory device, mapped at the chip base address. Empty disables it.
	Mem string
}

// DefaultMapOptions uses /dev/gpiomem, falling back to /dev/mem.
var DefaultMapOptions = MapOptions{GpioMem: GpioMemPath, Mem: MemPath}

// Memory is a mapped GPIO register window.
type Memory struct {
	path   string
	data   []byte
	window Window
}

// Map maps the GPIO register window of a chip.
func Map(desc *Descriptor, opts MapOptions) (*Memory, error) {
	if opts.GpioMem != "" {
		fd, err := unix.Open(opts.GpioMem, unix.O_RDWR|unix.O_SYNC|unix.O_CLOEXEC, 0)
		if err == nil {
			return mapFile(fd, opts.GpioMem, 0, desc.Size)
		}
		if opts.Mem == "" {
			return nil, errors.Wrapf(err, "open %s", opts.GpioMem)
		}
	}
	if opts.Mem == "" {
		return nil, errors.New("no memory device configured")
	}
	if unix.Geteuid() != 0 {
		return nil, errors.Errorf("must be root to use %s", opts.Mem)
	}
	fd, err := unix.Open(opts.Mem, unix.O_RDWR|unix.O_SYNC|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", opts.Mem)
	}
	return mapFile(fd, opts.Mem, desc.Base, desc.Size)
}

func mapFile(fd int, path string, offset int64, size int) (*Memory, error) {
	defer unix.Close(fd)
	data, err := unix.Mmap(fd, offset, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, errors.Wrapf(err, "mmap %s at %#x", path, offset)
	}
	return &Memory{
		path:   path,
		data:   data,
		window: Window(unsafe.Slice((*uint32)(unsafe.Pointer(&data[0])), len(data)/4)),
	}, nil
}

// Path returns the device file that was mapped.
func (m *Memory) Path() string {
	return m.path
}

// Window returns the mapped registers, nil once closed.
func (m *Memory) Window() Window {
	return m.window
}

// Close unmaps the register window.
func (m *Memory) Close() error {
	if m.data == nil {
		return syscall.EINVAL
	}
	if err := unix.Munmap(m.data); err != nil {
		return errors.Wrapf(err, "munmap %s", m.path)
	}
	m.data = nil
	m.window = nil
	return nil
}
