// Copyright 2026 The critcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package allocstat

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
)

func testComparison(t *testing.T, weights *WeightTable) *Comparison {
	t.Helper()
	c := &Collection{Weights: weights}
	c.AddReport(report("default", map[string]float64{"foo": 2000, "bar": 1000}))
	c.AddReport(report("jemalloc", map[string]float64{"foo": 1000, "bar": 1000}))
	return mustCompare(t, c)
}

func TestFormatText(t *testing.T) {
	var buf bytes.Buffer
	FormatText(&buf, testComparison(t, nil))
	out := buf.String()

	for _, want := range []string{
		"name",
		"default",
		"jemalloc",
		"2.00 µs (  0.0%)",
		"1.00 µs (-50.0%)",
		"1.00 µs ( +0.0%)", // bar is unchanged
		"normalized",
		"2.0 s (  0.0%)",
		"1.5 s (-25.0%)",
		"geomean",
		"vs baseline",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\noutput:\n%s", want, out)
		}
	}
	if strings.Contains(out, "weighted") {
		t.Errorf("weighted row printed without a weight table\noutput:\n%s", out)
	}

	// Ranking: jemalloc is faster, so it lists first in the ranking
	// section.
	rank := out[strings.Index(out, "vs baseline"):]
	ji := strings.Index(rank, "jemalloc")
	di := strings.Index(rank, "default")
	if ji < 0 || di < 0 || ji > di {
		t.Errorf("ranking rows missing or misordered\noutput:\n%s", out)
	}
}

func TestFormatTextWeighted(t *testing.T) {
	var buf bytes.Buffer
	FormatText(&buf, testComparison(t, NewWeightTable(1, map[string]float64{"foo": 10})))
	out := buf.String()

	if !strings.Contains(out, "weighted") {
		t.Fatalf("output missing weighted row\noutput:\n%s", out)
	}
	// default: 2000*10+1000 = 21 µs; jemalloc: 1000*10+1000 = 11 µs.
	for _, want := range []string{
		"21.00 µs (  0.0%)",
		"11.00 µs (-47.6%)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\noutput:\n%s", want, out)
		}
	}
}

func TestFormatCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatCSV(&buf, testComparison(t, nil)); err != nil {
		t.Fatal(err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	header := rows[0]
	wantHeader := []string{"name", "default (ns)", "default (%)", "jemalloc (ns)", "jemalloc (%)"}
	for i, want := range wantHeader {
		if header[i] != want {
			t.Errorf("header[%d]: got %q, want %q", i, header[i], want)
		}
	}
	// Rows: bar, foo, normalized, geomean.
	if len(rows) != 5 {
		t.Fatalf("got %d rows, want 5", len(rows))
	}
	foo := rows[2]
	if foo[0] != "foo" || foo[1] != "2000" || foo[3] != "1000" || foo[4] != "-50" {
		t.Errorf("foo row: got %v", foo)
	}
}

func TestFormatHTML(t *testing.T) {
	var buf bytes.Buffer
	FormatHTML(&buf, testComparison(t, nil))
	out := buf.String()

	for _, want := range []string{
		"<table class='critcmp'>",
		"<th>default",
		"<th>jemalloc",
		"<td>foo",
		"(-50.0%)",
		"class='summary'",
		"<td>normalized",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\noutput:\n%s", want, out)
		}
	}
}

func TestChartSVG(t *testing.T) {
	var buf bytes.Buffer
	meta := Metadata{
		Source:    "https://github.com/example/simd-json",
		Commit:    "0123456789abcdef", // truncated to 12 chars at render time
		GitStatus: "Clean",
	}
	ChartSVG(&buf, testComparison(t, nil), meta)
	out := buf.String()

	for _, want := range []string{
		"<svg",
		"100% (baseline)",
		"75%", // jemalloc: 1.5/2.0 of baseline
		">default<",
		">jemalloc<",
		"Commit: 0123456789ab",
		"lower is better",
		"</svg>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\noutput:\n%s", want, out)
		}
	}
}

func TestMetadataLines(t *testing.T) {
	m := Metadata{CPU: "Apple M1", CPUCount: "8"}
	got := m.Lines()
	want := []string{"CPU: Apple M1", "CPUs: 8"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
