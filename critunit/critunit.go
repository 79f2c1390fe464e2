// Copyright 2026 The critcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package critunit parses and formats the time values that appear in
// criterion benchmark reports.
//
// Criterion prints times as a decimal value followed by a unit symbol,
// such as "72.624 µs" or "151.08 ms". All values are normalized to
// nanoseconds internally so that reports using different units remain
// comparable.
package critunit

import (
	"fmt"
	"strconv"
	"strings"
)

// multipliers maps a unit symbol to its value in nanoseconds.
//
// The microsecond symbol appears in several spellings depending on how
// a report was captured: the canonical U+00B5 micro sign, the Greek
// small mu, plain ASCII "us", and the mojibake form produced by
// reading UTF-8 output as Latin-1. All of them mean the same thing.
var multipliers = map[string]float64{
	"ns":  1,
	"µs":  1e3, // U+00B5 micro sign
	"μs":  1e3, // U+03BC Greek small mu
	"us":  1e3,
	"Âµs": 1e3, // "µs" read as Latin-1
	"ms":  1e6,
	"s":   1e9,
}

// A ParseError reports a time string that could not be parsed.
type ParseError struct {
	Time string // the offending time string
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing time %q: %s", e.Time, e.Msg)
}

// ParseTime parses a time string like "72.624 µs" and returns its
// value in nanoseconds.
//
// A string that does not consist of a decimal value followed by a unit
// symbol, or whose unit symbol is not recognized, is corruption rather
// than absence of data, so ParseTime returns a *ParseError rather than
// a zero value.
func ParseTime(s string) (float64, error) {
	f := strings.Fields(s)
	if len(f) != 2 {
		return 0, &ParseError{s, "want value followed by unit"}
	}
	val, err := strconv.ParseFloat(f[0], 64)
	if err != nil {
		return 0, &ParseError{s, "bad value " + strconv.Quote(f[0])}
	}
	mult, ok := multipliers[f[1]]
	if !ok {
		return 0, &ParseError{s, "unknown unit " + strconv.Quote(f[1])}
	}
	return val * mult, nil
}

// FormatNS formats a duration in nanoseconds using the largest unit in
// which the value is at least 1, with two digits after the decimal
// point. FormatNS and ParseTime round-trip within that precision:
// ParseTime(FormatNS(x)) differs from x by at most half a unit in the
// last printed digit.
func FormatNS(ns float64) string {
	switch {
	case ns >= 1e9:
		return fmt.Sprintf("%.2f s", ns/1e9)
	case ns >= 1e6:
		return fmt.Sprintf("%.2f ms", ns/1e6)
	case ns >= 1e3:
		return fmt.Sprintf("%.2f µs", ns/1e3)
	}
	return fmt.Sprintf("%.2f ns", ns)
}
