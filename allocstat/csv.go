// Copyright 2026 The critcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package allocstat

import (
	"encoding/csv"
	"io"
	"strconv"
)

// FormatCSV writes the comparison to w in CSV form: for each
// configuration a duration column in nanoseconds and a percent-delta
// column, followed by the summary rows. Values are written at machine
// precision; CSV output is meant for further processing, not reading.
func FormatCSV(w io.Writer, c *Comparison) error {
	cw := csv.NewWriter(w)

	num := func(v float64) string {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	header := []string{"name"}
	for _, r := range c.Reports {
		header = append(header, r.ID+" (ns)", r.ID+" (%)")
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	writeRow := func(name string, value func(i int) float64, base float64) error {
		row := []string{name}
		for i := range c.Reports {
			v := value(i)
			row = append(row, num(v), num(PctVsBaseline(v, base)))
		}
		return cw.Write(row)
	}

	for _, test := range c.Tests {
		base := c.Reports[0].Times[test]
		err := writeRow(test, func(i int) float64 { return c.Reports[i].Times[test] }, base)
		if err != nil {
			return err
		}
	}

	baseScore := c.Scores[0]
	err := writeRow("normalized", func(i int) float64 { return c.Scores[i].RatioSum }, baseScore.RatioSum)
	if err != nil {
		return err
	}
	err = writeRow("geomean", func(i int) float64 { return c.Scores[i].RatioGeoMean }, baseScore.RatioGeoMean)
	if err != nil {
		return err
	}
	if c.Weighted {
		err = writeRow("weighted", func(i int) float64 { return c.Scores[i].WeightedSum }, baseScore.WeightedSum)
		if err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
