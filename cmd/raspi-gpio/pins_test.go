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
	"reflect"
	"testing"
)

func TestParsePins(t *testing.T) {
	tests := []struct {
		in   string
		pins []int
	}{
		{"4", []int{4}},
		{"0", []int{0}},
		{"53", []int{53}},
		{"18-21", []int{18, 19, 20, 21}},
		{"7,9-11", []int{7, 9, 10, 11}},
		{"11,2,9-10,2", []int{2, 9, 10, 11}},
		{"5-5", []int{5}},
	}
	for _, tt := range tests {
		pins, err := parsePins(tt.in, 54)
		if err != nil {
			t.Fatalf("parsePins(%q) failed: %v", tt.in, err)
		}
		if !reflect.DeepEqual(pins, tt.pins) {
			t.Errorf("parsePins(%q): expected %v, got %v", tt.in, tt.pins, pins)
		}
	}
}

func TestParsePinsErrors(t *testing.T) {
	for _, in := range []string{"", "54", "-1", "a", "3-", "-3", "5-2", "1,,2", "0-54", "4x"} {
		if pins, err := parsePins(in, 54); err == nil {
			t.Errorf("parsePins(%q): expected error, got %v", in, pins)
		}
	}
}
