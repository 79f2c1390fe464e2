// Copyright 2026 The critcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package allocstat

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/allocbench/critcmp/critunit"
)

var htmlTemplate = template.Must(template.New("").Parse(`
<table class='critcmp'>
<tr class='configs'><th>name{{range .Configs}}<th>{{.}}{{end}}
{{range .Rows -}}
<tr{{with .Class}} class='{{.}}'{{end}}><td>{{.Name}}{{range .Cells}}<td>{{.}}{{end}}
{{end -}}
</table>
`))

type htmlData struct {
	Configs []string
	Rows    []htmlRow
}

type htmlRow struct {
	Class string
	Name  string
	Cells []string
}

// FormatHTML appends an HTML table formatting of the comparison to
// buf. The caller supplies any surrounding document and styles.
func FormatHTML(buf *bytes.Buffer, c *Comparison) {
	data := htmlData{}
	for _, r := range c.Reports {
		data.Configs = append(data.Configs, r.ID)
	}

	for _, test := range c.Tests {
		row := htmlRow{Name: test}
		base := c.Reports[0].Times[test]
		for i, r := range c.Reports {
			ns := r.Times[test]
			row.Cells = append(row.Cells, critunit.FormatNS(ns)+" "+pctCell(ns, base, i == 0))
		}
		data.Rows = append(data.Rows, row)
	}

	baseScore := c.Scores[0]
	norm := htmlRow{Class: "summary", Name: "normalized"}
	for i, s := range c.Scores {
		norm.Cells = append(norm.Cells, fmt.Sprintf("%.1f s %s", s.RatioSum, pctCell(s.RatioSum, baseScore.RatioSum, i == 0)))
	}
	data.Rows = append(data.Rows, norm)

	geomean := htmlRow{Class: "summary", Name: "geomean"}
	for _, s := range c.Scores {
		geomean.Cells = append(geomean.Cells, fmt.Sprintf("%.2f", s.RatioGeoMean))
	}
	data.Rows = append(data.Rows, geomean)

	if c.Weighted {
		weighted := htmlRow{Class: "summary", Name: "weighted"}
		for i, s := range c.Scores {
			weighted.Cells = append(weighted.Cells, critunit.FormatNS(s.WeightedSum)+" "+pctCell(s.WeightedSum, baseScore.WeightedSum, i == 0))
		}
		data.Rows = append(data.Rows, weighted)
	}

	if err := htmlTemplate.Execute(buf, data); err != nil {
		// Only possible errors here are template not matching data structure.
		// Don't make caller check - it's our fault.
		panic(err)
	}
}
