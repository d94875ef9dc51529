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
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/u-root/u-root/pkg/dt"
)

func TestModelFromRevision(t *testing.T) {
	tests := []struct {
		code  uint32
		model Model
	}{
		{0x000e, ModelBCM2835},    // Pi 1 B rev 2, old style
		{0x1000002, ModelBCM2835}, // old style with warranty bit
		{0x900093, ModelBCM2835},  // Zero
		{0xa01041, ModelBCM2836},  // Pi 2 B
		{0xa02082, ModelBCM2837},  // Pi 3 B
		{0xa020d3, ModelBCM2837},  // Pi 3 B+
		{0xc03114, ModelBCM2711},  // Pi 4 B
		{0xd04170, 0},             // Pi 5
	}
	for _, tt := range tests {
		model, err := ModelFromRevision(tt.code)
		if tt.code == 0xd04170 {
			if !errors.Is(err, ErrUnknownModel) {
				t.Errorf("Revision %x: expected ErrUnknownModel, got %v", tt.code, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Revision %x failed: %v", tt.code, err)
		}
		if model != tt.model {
			t.Errorf("Revision %x: expected %s, got %s", tt.code, tt.model, model)
		}
	}
}

func writeFile(t *testing.T, root, name string, data []byte) {
	t.Helper()
	path := filepath.Join(root, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
}

func TestProberDeviceTree(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, revisionPath, []byte{0x00, 0xc0, 0x31, 0x14})
	writeFile(t, root, cpuinfoPath, []byte("Revision\t: a02082\n"))
	p := &Prober{Root: root}
	code, path, err := p.Revision()
	if err != nil {
		t.Fatalf("Revision failed: %v", err)
	}
	if code != 0xc03114 {
		t.Errorf("Expected c03114, got %x", code)
	}
	if path != filepath.Join(root, revisionPath) {
		t.Errorf("Expected revision from device tree, got %s", path)
	}
	model, err := p.Model()
	if err != nil {
		t.Fatalf("Model failed: %v", err)
	}
	if model != ModelBCM2711 {
		t.Errorf("Expected BCM2711, got %s", model)
	}
}

func TestProberCPUInfo(t *testing.T) {
	root := t.TempDir()
	cpuinfo := "processor\t: 0\nmodel name\t: ARMv7 Processor rev 4 (v7l)\n\nHardware\t: BCM2835\nRevision\t: a02082\nSerial\t\t: 00000000\n"
	writeFile(t, root, cpuinfoPath, []byte(cpuinfo))
	p := &Prober{Root: root}
	model, err := p.Model()
	if err != nil {
		t.Fatalf("Model failed: %v", err)
	}
	if model != ModelBCM2837 {
		t.Errorf("Expected BCM2837, got %s", model)
	}
}

func TestProberNoRevision(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, cpuinfoPath, []byte("processor\t: 0\n"))
	p := &Prober{Root: root}
	if _, _, err := p.Revision(); !errors.Is(err, ErrNoRevision) {
		t.Errorf("Expected ErrNoRevision, got %v", err)
	}
	if _, err := (&Prober{Root: t.TempDir()}).Model(); !errors.Is(err, ErrNoRevision) {
		t.Errorf("Expected ErrNoRevision for empty root, got %v", err)
	}
}

func TestProberBadCell(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, revisionPath, []byte{0xc0, 0x31})
	if _, _, err := (&Prober{Root: root}).Revision(); err == nil {
		t.Error("Expected error for short revision cell")
	}
}

func TestProberSkipsBadFDT(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, fdtPath, []byte("not a device tree"))
	writeFile(t, root, cpuinfoPath, []byte("Revision\t: a02082\n"))
	code, path, err := (&Prober{Root: root}).Revision()
	if err != nil {
		t.Fatalf("Revision failed: %v", err)
	}
	if code != 0xa02082 {
		t.Errorf("Expected a02082, got %x", code)
	}
	if path != filepath.Join(root, cpuinfoPath) {
		t.Errorf("Expected revision from cpuinfo, got %s", path)
	}
}

func TestProberReportsFirstError(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, revisionPath, []byte{0xc0})
	writeFile(t, root, fdtPath, []byte("not a device tree"))
	_, path, err := (&Prober{Root: root}).Revision()
	if err == nil {
		t.Fatal("Expected error")
	}
	if path != filepath.Join(root, revisionPath) {
		t.Errorf("Expected error from device tree cell, got %s", path)
	}
}

// fdtBlob builds a flattened device tree with a /system/linux,revision cell.
func fdtBlob(code uint32) []byte {
	be32 := func(b *bytes.Buffer, v uint32) {
		binary.Write(b, binary.BigEndian, v)
	}
	name := func(b *bytes.Buffer, s string) {
		b.WriteString(s)
		b.WriteByte(0)
		for b.Len()%4 != 0 {
			b.WriteByte(0)
		}
	}
	var strs bytes.Buffer
	strs.WriteString("linux,revision\x00")
	var st bytes.Buffer
	be32(&st, 1) // begin node
	name(&st, "")
	be32(&st, 1)
	name(&st, "system")
	be32(&st, 3) // property
	be32(&st, 4)
	be32(&st, 0)
	be32(&st, code)
	be32(&st, 2) // end node
	be32(&st, 2)
	be32(&st, 9) // end
	const headerSize, rsvSize = 40, 16
	structOff := headerSize + rsvSize
	stringsOff := structOff + st.Len()
	var blob bytes.Buffer
	for _, v := range []int{0xd00dfeed, stringsOff + strs.Len(), structOff, stringsOff, headerSize, 17, 16, 0, strs.Len(), st.Len()} {
		be32(&blob, uint32(v))
	}
	blob.Write(make([]byte, rsvSize))
	blob.Write(st.Bytes())
	blob.Write(strs.Bytes())
	return blob.Bytes()
}

func TestProberFDTBlob(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, fdtPath, fdtBlob(0xc03114))
	code, path, err := (&Prober{Root: root}).Revision()
	if err != nil {
		t.Fatalf("Revision failed: %v", err)
	}
	if code != 0xc03114 {
		t.Errorf("Expected c03114, got %x", code)
	}
	if path != filepath.Join(root, fdtPath) {
		t.Errorf("Expected revision from FDT blob, got %s", path)
	}
}

func TestRevisionFromFDT(t *testing.T) {
	fdt := &dt.FDT{
		RootNode: &dt.Node{
			Name: "/",
			Children: []*dt.Node{
				{Name: "soc"},
				{
					Name: "system",
					Properties: []dt.Property{
						{Name: "linux,serial", Value: []byte{0, 0, 0, 0, 0, 0, 0, 1}},
						{Name: "linux,revision", Value: []byte{0x00, 0xa0, 0x20, 0x82}},
					},
				},
			},
		},
	}
	code, err := revisionFromFDT(fdt)
	if err != nil {
		t.Fatalf("revisionFromFDT failed: %v", err)
	}
	if code != 0xa02082 {
		t.Errorf("Expected a02082, got %x", code)
	}
	fdt.RootNode.Children = fdt.RootNode.Children[:1]
	if _, err := revisionFromFDT(fdt); !errors.Is(err, ErrNoRevision) {
		t.Errorf("Expected ErrNoRevision, got %v", err)
	}
}
