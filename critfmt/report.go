// Copyright 2026 The critcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package critfmt reads criterion benchmark report files.
//
// A criterion report is freeform text. The lines of interest look like
//
//	decode/canada    time:   [1.0512 ms 1.0547 ms 1.0583 ms]
//
// giving a [low, point, high] confidence interval for the benchmark's
// execution time. The middle value is the point estimate and is the
// only one retained here.
//
// The scan is deliberately permissive: lines that do not have this
// shape are ignored rather than rejected, since criterion output is
// interleaved with progress and analysis chatter. A line that does
// have this shape but whose point estimate cannot be converted is
// corruption, not absence of data, and aborts the parse.
package critfmt

// A Report holds the point-estimate durations extracted from one
// timing report.
type Report struct {
	// ID identifies the configuration the report was collected
	// under, typically the report file's base name with its
	// extension stripped.
	ID string

	// Times maps a test name to its point-estimate duration in
	// nanoseconds. Test names are unique within a report; if a
	// test appears more than once in the input, the last
	// occurrence wins.
	Times map[string]float64
}
