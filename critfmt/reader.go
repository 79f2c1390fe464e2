// Copyright 2026 The critcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package critfmt

import (
	"bufio"
	"fmt"
	"io"
	"regexp"

	"github.com/allocbench/critcmp/critunit"
)

// timeLine matches a criterion timing line. The first group is the
// test name, the second the point estimate with its unit. The low and
// high interval bounds are matched but not captured; only the point
// estimate participates in comparisons.
var timeLine = regexp.MustCompile(`(\S+)\s+time:\s+\[[\d.]+ \S+ ([\d.]+ \S+) [\d.]+ \S+\]`)

// A SyntaxError represents a malformed timing entry on a particular
// line of a report file.
type SyntaxError struct {
	File string
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
}

// A Reader extracts timing entries from a criterion report.
//
// Its API is modeled on bufio.Scanner: call Scan to advance to the
// next entry, Entry to retrieve it, and Err after Scan returns false.
type Reader struct {
	s    *bufio.Scanner
	file string
	line int

	name string
	ns   float64

	err error
}

// NewReader constructs a reader that extracts timing entries from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	if fileName == "" {
		fileName = "<unknown>"
	}
	return &Reader{s: bufio.NewScanner(r), file: fileName}
}

// Scan advances the reader to the next timing entry and reports
// whether one was found. Lines that are not timing entries are
// skipped. When Scan returns false, the caller should use Err to
// distinguish end of input from a malformed entry or I/O error.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	for r.s.Scan() {
		r.line++
		m := timeLine.FindStringSubmatch(r.s.Text())
		if m == nil {
			// Not a timing line.
			continue
		}
		ns, err := critunit.ParseTime(m[2])
		if err != nil {
			// The line was recognized as a timing entry, so a
			// value that fails to convert means the report is
			// corrupt. Dropping it silently would skew every
			// aggregate computed from this file.
			r.err = &SyntaxError{r.file, r.line, err.Error()}
			return false
		}
		r.name, r.ns = m[1], ns
		return true
	}
	if err := r.s.Err(); err != nil {
		r.err = fmt.Errorf("%s:%d: %w", r.file, r.line, err)
	}
	return false
}

// Entry returns the test name and point-estimate duration in
// nanoseconds of the entry that was just read by Scan.
func (r *Reader) Entry() (name string, ns float64) {
	return r.name, r.ns
}

// Err returns the error, if any, that stopped the Reader.
func (r *Reader) Err() error {
	return r.err
}

// ParseReport reads a whole criterion report from r and returns it as
// a Report with the given configuration id. fileName is used in error
// messages. If a test name occurs more than once, the last occurrence
// wins.
func ParseReport(r io.Reader, fileName, id string) (*Report, error) {
	rd := NewReader(r, fileName)
	rep := &Report{ID: id, Times: make(map[string]float64)}
	for rd.Scan() {
		name, ns := rd.Entry()
		rep.Times[name] = ns
	}
	if err := rd.Err(); err != nil {
		return nil, err
	}
	return rep, nil
}
