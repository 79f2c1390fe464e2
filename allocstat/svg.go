// Copyright 2026 The critcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package allocstat

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
)

// svgPalette mirrors barPalette as CSS colors.
var svgPalette = []string{
	"#4285f4", "#ea4335", "#fbbc04", "#34a853", "#9333ea", "#ff6b9d", "#00bcd4",
}

const svgCSS = `
    .bar { stroke: none; }
    .axis { stroke: #333; stroke-width: 1; }
    .grid { stroke: #ddd; stroke-width: 0.5; }
    .label { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Arial, sans-serif; font-size: 12px; fill: #333; }
    .value { font-family: monospace; font-size: 11px; fill: #999; }
    .title { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Arial, sans-serif; font-size: 16px; font-weight: 600; fill: #333; }
    .metadata { font-family: monospace; font-size: 10px; fill: #666; }
`

// ChartSVG writes the comparison as an SVG bar chart to w: one
// colored bar per configuration in canonical order, heights as a
// percentage of the baseline (lower is better), a grid every 20%,
// and the metadata lines centered below the chart.
func ChartSVG(w io.Writer, c *Comparison, meta Metadata) {
	const (
		width        = 800
		height       = 500
		marginTop    = 60
		marginBottom = 120 // space for names and metadata below
		marginLeft   = 80
		marginRight  = 40
	)
	chartW := width - marginLeft - marginRight
	chartH := height - marginTop - marginBottom

	pcts := percentages(c)
	maxPct := 0.0
	for _, pct := range pcts {
		if pct > maxPct {
			maxPct = pct
		}
	}
	scaleMax := maxPct * 1.1 // headroom above the tallest bar

	// Vertical position, in canvas coordinates, of a percentage value.
	yOf := func(pct float64) int {
		return marginTop + int(float64(chartH)*(1-pct/scaleMax))
	}

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Style("text/css", svgCSS)

	canvas.Text(width/2, 30, meta.Title(c.Baseline().ID), `class="title" text-anchor="middle"`)

	// Axes.
	canvas.Line(marginLeft, marginTop, marginLeft, marginTop+chartH, `class="axis"`)
	canvas.Line(marginLeft, marginTop+chartH, marginLeft+chartW, marginTop+chartH, `class="axis"`)

	// Grid lines and axis labels every 20%.
	for pct := 0.0; pct <= scaleMax; pct += 20 {
		y := yOf(pct)
		canvas.Line(marginLeft, y, marginLeft+chartW, y, `class="grid"`)
		canvas.Text(marginLeft-10, y+4, fmt.Sprintf("%.0f%%", pct), `class="label" text-anchor="end"`)
	}

	barW := float64(chartW) / float64(len(pcts))
	padding := barW * 0.2

	for i, pct := range pcts {
		x := float64(marginLeft) + float64(i)*barW + padding/2
		y := yOf(pct)
		mid := int(x + (barW-padding)/2)

		canvas.Rect(int(x), y, int(barW-padding), marginTop+chartH-y,
			fmt.Sprintf(`class="bar" fill="%s"`, svgPalette[i%len(svgPalette)]))
		canvas.Text(mid, y-5, barLabel(i, pct), `class="value" text-anchor="middle"`)
		canvas.Text(mid, marginTop+chartH+20, c.Scores[i].ID, `class="label" text-anchor="middle"`)
	}

	for i, line := range meta.Lines() {
		canvas.Text(width/2, marginTop+chartH+50+i*15, line, `class="metadata" text-anchor="middle"`)
	}

	canvas.End()
}
