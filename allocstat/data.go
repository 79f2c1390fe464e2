// Copyright 2026 The critcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package allocstat compares criterion timing reports collected under
// different memory-allocator configurations.
//
// A Collection accumulates one Report per configuration. Compare sorts
// the reports into canonical order, chooses the first as the baseline,
// intersects the test names, and computes per-report aggregate scores.
// The canonical quantity is the per-test ratio of a report's duration
// to the baseline's; any scaling of ratio sums for presentation (such
// as "seconds of baseline work") is left to the output formatters.
package allocstat

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/aclements/go-moremath/stats"

	"github.com/allocbench/critcmp/critfmt"
)

// ErrNoCommonTests is returned by Compare when the loaded reports
// share no test names. Any table printed for a different-per-report
// test set would be misleading, so this terminates the run with no
// partial output.
var ErrNoCommonTests = errors.New("no common tests across all reports")

// A ZeroBaselineError is returned by Compare when the baseline has a
// zero duration for a common test. The ratio for such a test would be
// infinite, which must be surfaced rather than folded into a score.
type ZeroBaselineError struct {
	Test string
}

func (e *ZeroBaselineError) Error() string {
	return fmt.Sprintf("baseline duration for %s is zero", e.Test)
}

// A Collection accumulates timing reports to compare.
//
// Policies are explicit values rather than package state, so several
// collections with different policies can run in the same process
// without cross-talk.
type Collection struct {
	// Order is the canonical ordering policy.
	// The zero Order means DefaultOrder.
	Order Order

	// Weights is the weight table for the weighted aggregate.
	// A nil table weights every test equally.
	Weights *WeightTable

	reports []*critfmt.Report
}

// AddReport adds a parsed report to the collection.
func (c *Collection) AddReport(r *critfmt.Report) {
	c.reports = append(c.reports, r)
}

// AddFile parses a criterion report from r and adds it to the
// collection under the given configuration id.
func (c *Collection) AddFile(id string, r io.Reader) error {
	rep, err := critfmt.ParseReport(r, id, id)
	if err != nil {
		return err
	}
	c.AddReport(rep)
	return nil
}

// A Score holds the whole-run aggregates for one report, computed over
// the common tests only. All aggregates represent execution time, so
// lower is better.
type Score struct {
	// ID is the configuration identifier.
	ID string

	// RawSum is the sum of the report's durations, in nanoseconds.
	RawSum float64

	// WeightedSum is the sum of duration times test weight, in
	// weighted nanoseconds.
	WeightedSum float64

	// RatioSum is the sum over common tests of the report's
	// duration divided by the baseline's for the same test. For
	// the baseline itself it equals the number of common tests.
	RatioSum float64

	// RatioGeoMean is the geometric mean of the per-test ratios.
	RatioGeoMean float64
}

// A Comparison is the immutable result of comparing a collection of
// reports. It is computed once per run and consumed by the output
// formatters.
type Comparison struct {
	// Reports holds the loaded reports in canonical order.
	// Reports[0] is the baseline.
	Reports []*critfmt.Report

	// Tests is the set of test names present in every report,
	// sorted lexicographically.
	Tests []string

	// Scores holds the aggregate scores, parallel to Reports.
	Scores []*Score

	// Weighted records whether a weight table was configured, so
	// formatters know whether the weighted aggregate means
	// anything.
	Weighted bool
}

// Compare computes the comparison for the accumulated reports.
//
// It fails with ErrNoCommonTests if the reports share no test names
// and with a *ZeroBaselineError if the baseline reports a zero
// duration for a common test.
func (c *Collection) Compare() (*Comparison, error) {
	if len(c.reports) == 0 {
		return nil, errors.New("no reports to compare")
	}
	ord := c.Order
	if ord.isZero() {
		ord = DefaultOrder
	}

	reports := make([]*critfmt.Report, len(c.reports))
	copy(reports, c.reports)
	sort.SliceStable(reports, func(i, j int) bool {
		return ord.Less(reports[i].ID, reports[j].ID)
	})
	baseline := reports[0]

	var tests []string
	for name := range baseline.Times {
		common := true
		for _, r := range reports[1:] {
			if _, ok := r.Times[name]; !ok {
				common = false
				break
			}
		}
		if common {
			tests = append(tests, name)
		}
	}
	if len(tests) == 0 {
		return nil, ErrNoCommonTests
	}
	sort.Strings(tests)

	scores := make([]*Score, len(reports))
	ratios := make([]float64, len(tests))
	for i, r := range reports {
		s := &Score{ID: r.ID}
		for j, test := range tests {
			d := r.Times[test]
			base := baseline.Times[test]
			if base == 0 {
				return nil, &ZeroBaselineError{Test: test}
			}
			s.RawSum += d
			s.WeightedSum += d * c.Weights.Weight(test)
			ratios[j] = d / base
			s.RatioSum += ratios[j]
		}
		s.RatioGeoMean = stats.GeoMean(ratios)
		scores[i] = s
	}

	return &Comparison{
		Reports:  reports,
		Tests:    tests,
		Scores:   scores,
		Weighted: c.Weights != nil,
	}, nil
}

// Baseline returns the baseline report.
func (c *Comparison) Baseline() *critfmt.Report {
	return c.Reports[0]
}

// Ratio returns report i's duration for test divided by the
// baseline's duration for the same test. For i == 0 it is 1 by
// construction.
func (c *Comparison) Ratio(i int, test string) float64 {
	return c.Reports[i].Times[test] / c.Reports[0].Times[test]
}

// Ranking returns the report indices ordered ascending by RatioSum.
// All scores represent execution time, so the first index is the
// fastest configuration.
func (c *Comparison) Ranking() []int {
	idx := make([]int, len(c.Scores))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return c.Scores[idx[a]].RatioSum < c.Scores[idx[b]].RatioSum
	})
	return idx
}

// PctVsBaseline returns the percentage delta of s relative to base:
// (s-base)/base*100. Rounding is the caller's concern.
func PctVsBaseline(s, base float64) float64 {
	return (s - base) / base * 100
}
