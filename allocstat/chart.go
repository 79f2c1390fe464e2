// Copyright 2026 The critcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package allocstat

import (
	"fmt"
	"image/color"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// barPalette is the bar color cycle, shared with the SVG emitter.
var barPalette = []color.RGBA{
	{0x42, 0x85, 0xf4, 0xff},
	{0xea, 0x43, 0x35, 0xff},
	{0xfb, 0xbc, 0x04, 0xff},
	{0x34, 0xa8, 0x53, 0xff},
	{0x93, 0x33, 0xea, 0xff},
	{0xff, 0x6b, 0x9d, 0xff},
	{0x00, 0xbc, 0xd4, 0xff},
}

// percentages returns each configuration's ratio sum as a percentage
// of the baseline's, so the baseline is exactly 100.
func percentages(c *Comparison) []float64 {
	base := c.Scores[0].RatioSum
	pcts := make([]float64, len(c.Scores))
	for i, s := range c.Scores {
		pcts[i] = s.RatioSum / base * 100
	}
	return pcts
}

// barLabel is the text above bar i: the baseline is called out, other
// bars get their whole-number percentage.
func barLabel(i int, pct float64) string {
	if i == 0 {
		return "100% (baseline)"
	}
	return fmt.Sprintf("%.0f%%", pct)
}

// Chart renders the comparison as a bar chart and saves it to path.
// The image format is chosen by the path's extension; see plot.Save.
// One bar per configuration, in canonical order, scaled so the
// baseline is 100%.
func Chart(c *Comparison, meta Metadata, path string) error {
	pcts := percentages(c)

	p := plot.New()
	p.Title.Text = meta.Title(c.Baseline().ID)
	p.Y.Label.Text = "% of baseline time"
	if lines := meta.Lines(); len(lines) > 0 {
		p.X.Label.Text = strings.Join(lines, "    ")
	}

	p.Add(plotter.NewGrid())

	maxPct := 0.0
	names := make([]string, len(c.Scores))
	for i, s := range c.Scores {
		names[i] = s.ID
		if pcts[i] > maxPct {
			maxPct = pcts[i]
		}

		bar, err := plotter.NewBarChart(plotter.Values{pcts[i]}, vg.Points(40))
		if err != nil {
			return err
		}
		bar.LineStyle.Width = vg.Length(0)
		bar.Color = barPalette[i%len(barPalette)]
		bar.XMin = float64(i)
		p.Add(bar)
	}
	p.NominalX(names...)

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    labelPoints(pcts),
		Labels: labelTexts(pcts),
	})
	if err != nil {
		return err
	}
	p.Add(labels)

	p.Y.Min = 0
	p.Y.Max = maxPct * 1.15 // headroom for the bar labels

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}

func labelPoints(pcts []float64) plotter.XYs {
	pts := make(plotter.XYs, len(pcts))
	for i, pct := range pcts {
		pts[i].X = float64(i)
		pts[i].Y = pct + 1
	}
	return pts
}

func labelTexts(pcts []float64) []string {
	texts := make([]string, len(pcts))
	for i, pct := range pcts {
		texts[i] = barLabel(i, pct)
	}
	return texts
}
