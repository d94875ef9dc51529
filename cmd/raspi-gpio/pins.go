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
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// parsePins parses a list such as "2,4-7" into ascending, unique pin numbers below count.
func parsePins(s string, count int) ([]int, error) {
	seen := make(map[int]bool)
	for _, part := range strings.Split(s, ",") {
		first, last := part, part
		if i := strings.Index(part, "-"); i > 0 {
			first, last = part[:i], part[i+1:]
		}
		lo, err := parsePin(first, count)
		if err != nil {
			return nil, errors.Errorf("unknown GPIO %q", part)
		}
		hi, err := parsePin(last, count)
		if err != nil || hi < lo {
			return nil, errors.Errorf("unknown GPIO %q", part)
		}
		for pin := lo; pin <= hi; pin++ {
			seen[pin] = true
		}
	}
	pins := make([]int, 0, len(seen))
	for pin := range seen {
		pins = append(pins, pin)
	}
	sort.Ints(pins)
	return pins, nil
}

func parsePin(s string, count int) (int, error) {
	pin, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if pin < 0 || pin >= count {
		return 0, errors.Errorf("pin %d out of range", pin)
	}
	return pin, nil
}

func allPins(count int) []int {
	pins := make([]int, count)
	for i := range pins {
		pins[i] = i
	}
	return pins
}
