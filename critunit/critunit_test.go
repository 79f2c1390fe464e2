// Copyright 2026 The critcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package critunit

import (
	"math"
	"testing"
)

func TestParseTime(t *testing.T) {
	test := func(s string, want float64) {
		t.Helper()

		got, err := ParseTime(s)
		if err != nil {
			t.Errorf("for %q, unexpected error %v", s, err)
		} else if got != want {
			t.Errorf("for %q, got %v ns, want %v ns", s, got, want)
		}
	}

	test("1 ns", 1)
	test("72.624 µs", 72624)
	test("72.624 μs", 72624) // Greek mu
	test("72.624 us", 72624)
	test("72.624 Âµs", 72624) // UTF-8 read as Latin-1
	test("151.08 ms", 151.08e6)
	test("2 s", 2e9)
	test("0 ns", 0)
	test("2.0   µs", 2000) // any run of spaces between value and unit
}

func TestParseTimeErrors(t *testing.T) {
	test := func(s string) {
		t.Helper()

		got, err := ParseTime(s)
		if err == nil {
			t.Errorf("for %q, got %v ns, want error", s, got)
			return
		}
		if _, ok := err.(*ParseError); !ok {
			t.Errorf("for %q, got error of type %T, want *ParseError", s, err)
		}
	}

	test("")
	test("100")        // no unit
	test("100 parsec") // unknown unit
	test("fast µs")    // bad value
	test("1 2 µs")     // too many fields
}

func TestFormatNS(t *testing.T) {
	test := func(ns float64, want string) {
		t.Helper()

		got := FormatNS(ns)
		if got != want {
			t.Errorf("for %v, got %q, want %q", ns, got, want)
		}
	}

	test(0, "0.00 ns")
	test(999, "999.00 ns")
	test(1000, "1.00 µs")
	test(2000, "2.00 µs")
	test(1e6, "1.00 ms")
	test(151.08e6, "151.08 ms")
	test(2.5e9, "2.50 s")
}

// Formatting a duration and re-parsing it must reproduce the original
// value within the two-digit display precision.
func TestRoundTrip(t *testing.T) {
	test := func(ns float64) {
		t.Helper()

		got, err := ParseTime(FormatNS(ns))
		if err != nil {
			t.Errorf("for %v, re-parse failed: %v", ns, err)
			return
		}
		// Half a unit in the last printed digit.
		tol := ns / 100 / 2 * 1.0001
		if tol < 0.005 {
			tol = 0.005
		}
		if math.Abs(got-ns) > tol {
			t.Errorf("for %v ns, round-tripped to %v ns (formatted %q)", ns, got, FormatNS(ns))
		}
	}

	test(1)
	test(2000)
	test(1e6) // "1.00 ms" is exactly 1,000,000 ns
	test(72624)
	test(151.08e6)
	test(999.994e9)
}
