// Copyright 2026 The critcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package allocstat

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/allocbench/critcmp/critunit"
)

// FormatText appends a fixed-width text formatting of the comparison
// to buf: one row per common test with each configuration's time and
// its delta against the baseline, summary rows for the aggregate
// scores, and a compact ranking.
func FormatText(buf *bytes.Buffer, c *Comparison) {
	writeGrid(buf, comparisonRows(c))
	buf.WriteByte('\n')
	writeGrid(buf, rankingRows(c))
}

// A textRow is a row of printed text columns.
type textRow struct {
	cols []string
}

func newTextRow(cols ...string) *textRow {
	return &textRow{cols: cols}
}

func (r *textRow) add(col string) {
	r.cols = append(r.cols, col)
}

// comparisonRows converts the comparison into a textual grid of
// cells: a header of configuration names, the per-test rows, and the
// summary rows.
func comparisonRows(c *Comparison) []*textRow {
	var rows []*textRow

	header := newTextRow("name")
	for _, r := range c.Reports {
		header.add(r.ID)
	}
	rows = append(rows, header)

	for _, test := range c.Tests {
		row := newTextRow(test)
		base := c.Reports[0].Times[test]
		for i, r := range c.Reports {
			ns := r.Times[test]
			row.add(critunit.FormatNS(ns) + " " + pctCell(ns, base, i == 0))
		}
		rows = append(rows, row)
	}

	// The ratio sums are presented as "seconds of baseline work":
	// each test contributes one second at baseline speed. This is a
	// display transform; the stored scores keep the raw ratios.
	baseScore := c.Scores[0]
	norm := newTextRow("normalized")
	for i, s := range c.Scores {
		norm.add(fmt.Sprintf("%.1f s %s", s.RatioSum, pctCell(s.RatioSum, baseScore.RatioSum, i == 0)))
	}
	rows = append(rows, norm)

	geomean := newTextRow("geomean")
	for _, s := range c.Scores {
		geomean.add(fmt.Sprintf("%.2f", s.RatioGeoMean))
	}
	rows = append(rows, geomean)

	if c.Weighted {
		weighted := newTextRow("weighted")
		for i, s := range c.Scores {
			weighted.add(critunit.FormatNS(s.WeightedSum) + " " + pctCell(s.WeightedSum, baseScore.WeightedSum, i == 0))
		}
		rows = append(rows, weighted)
	}

	return rows
}

// rankingRows converts the ranking into a textual grid: one row per
// configuration, fastest first.
func rankingRows(c *Comparison) []*textRow {
	rows := []*textRow{newTextRow("rank", "name", "total", "vs baseline")}
	baseScore := c.Scores[0]
	for rank, i := range c.Ranking() {
		s := c.Scores[i]
		vs := "baseline"
		if i != 0 {
			vs = fmt.Sprintf("%+.1f%%", PctVsBaseline(s.RatioSum, baseScore.RatioSum))
		}
		rows = append(rows, newTextRow(
			fmt.Sprintf("%d", rank+1),
			s.ID,
			fmt.Sprintf("%.1f s", s.RatioSum),
			vs,
		))
	}
	return rows
}

// pctCell formats the parenthesized delta column for a value against
// its baseline. The baseline's own cell is pinned to 0.0% rather than
// computed, so it cannot pick up a sign from rounding.
func pctCell(v, base float64, isBaseline bool) string {
	if isBaseline {
		return "(  0.0%)"
	}
	return fmt.Sprintf("(%+5.1f%%)", PctVsBaseline(v, base))
}

// writeGrid lays out rows as fixed-width columns: the first column is
// left-aligned, all others right-aligned, two spaces between columns.
func writeGrid(buf *bytes.Buffer, rows []*textRow) {
	var max []int
	for _, row := range rows {
		for len(max) < len(row.cols) {
			max = append(max, 0)
		}
		for i, s := range row.cols {
			if n := utf8.RuneCountInString(s); n > max[i] {
				max[i] = n
			}
		}
	}

	for _, row := range rows {
		for i, s := range row.cols {
			switch i {
			case 0:
				fmt.Fprintf(buf, "%-*s", max[i], s)
			default:
				pad := max[i] - utf8.RuneCountInString(s)
				fmt.Fprintf(buf, "  %*s%s", pad, "", s)
			}
		}
		fmt.Fprintf(buf, "\n")
	}
}
