// Copyright 2026 The critcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package critfmt

import (
	"strings"
	"testing"
)

func TestReader(t *testing.T) {
	in := `Benchmarking decode/canada
decode/canada   time:   [1.0512 ms 1.0547 ms 1.0583 ms]
                change: [-1.2% +0.1% +1.4%] (p = 0.87 > 0.05)
encode/twitter  time:   [72.410 µs 72.624 µs 72.851 µs]
`
	r := NewReader(strings.NewReader(in), "test.txt")

	type entry struct {
		name string
		ns   float64
	}
	var got []entry
	for r.Scan() {
		name, ns := r.Entry()
		got = append(got, entry{name, ns})
	}
	if err := r.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []entry{
		{"decode/canada", 1.0547e6},
		{"encode/twitter", 72624},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d: %v", len(got), len(want), got)
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("entry %d: got %v, want %v", i, got[i], w)
		}
	}
}

// A line without a time-range bracket is not a timing entry and is
// skipped without error.
func TestReaderIgnoresNonTimingLines(t *testing.T) {
	in := `bar is being measured
bar finished in roughly a while
foo   time:   [1.0 µs 2.0 µs 3.0 µs]
`
	rep, err := ParseReport(strings.NewReader(in), "test.txt", "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := rep.Times["bar"]; ok {
		t.Errorf("bar should not have been extracted")
	}
	if ns := rep.Times["foo"]; ns != 2000 {
		t.Errorf("foo: got %v ns, want 2000 ns", ns)
	}
}

// If the same test appears twice, the last occurrence wins.
func TestReaderLastWriteWins(t *testing.T) {
	in := `foo   time:   [1.0 µs 2.0 µs 3.0 µs]
foo   time:   [2.0 µs 4.0 µs 6.0 µs]
`
	rep, err := ParseReport(strings.NewReader(in), "test.txt", "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ns := rep.Times["foo"]; ns != 4000 {
		t.Errorf("foo: got %v ns, want 4000 ns", ns)
	}
}

// An unrecognized unit inside a recognized timing line is corruption
// and must abort the parse rather than silently drop the entry.
func TestReaderMalformedTime(t *testing.T) {
	in := `foo   time:   [1.0 µs 2.0 µs 3.0 µs]
bar   time:   [1.0 qs 2.0 qs 3.0 qs]
baz   time:   [1.0 µs 2.0 µs 3.0 µs]
`
	_, err := ParseReport(strings.NewReader(in), "test.txt", "test")
	if err == nil {
		t.Fatal("want error for unknown unit, got nil")
	}
	serr, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("got error of type %T, want *SyntaxError", err)
	}
	if serr.File != "test.txt" || serr.Line != 2 {
		t.Errorf("error position: got %s:%d, want test.txt:2", serr.File, serr.Line)
	}
}

func TestReaderEmpty(t *testing.T) {
	rep, err := ParseReport(strings.NewReader("no timings here\n"), "test.txt", "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rep.Times) != 0 {
		t.Errorf("got %d entries, want 0", len(rep.Times))
	}
}
