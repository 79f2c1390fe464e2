// Copyright 2026 The critcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Critcmp compares criterion benchmark timing reports collected under
// different memory-allocator configurations.
//
// Usage:
//
//	critcmp [options] default.txt jemalloc.txt smalloc.txt ...
//
// Each input file should contain the output of one criterion benchmark
// run. The configuration a file describes is derived from its name:
// the base name with the extension stripped, so "results/jemalloc.txt"
// is the "jemalloc" configuration. A "label=path" argument overrides
// the derived name.
//
// Argument order does not matter. Configurations are always displayed
// in canonical order: "default" first, then the known allocators
// (jemalloc, snmalloc, mimalloc, rpmalloc) in that order, then unknown
// allocators by name, then "smalloc" last. The first configuration in
// canonical order is the baseline that all others are compared
// against.
//
// Only tests present in every report are compared. For each such test,
// critcmp prints every configuration's point-estimate time and its
// delta against the baseline, followed by aggregate rows and a compact
// ranking:
//
//	$ critcmp default.txt jemalloc.txt
//	name                      default           jemalloc
//	decode/canada    1.05 ms (  0.0%)   0.99 ms ( -6.1%)
//	encode/twitter  72.62 µs (  0.0%)  68.40 µs ( -5.8%)
//	normalized         2.0 s (  0.0%)     1.9 s ( -6.0%)
//	geomean                      1.00               0.94
//
//	rank      name  total  vs baseline
//	1     jemalloc  1.9 s        -6.0%
//	2      default  2.0 s     baseline
//
// The "normalized" row scales each test to one second of baseline
// work, so a configuration's total is directly comparable no matter
// how long individual tests run.
//
// With -weights, tests can be biased by a prefix-matched weight table
// (see allocstat.ParseWeights for the file format), adding a
// "weighted" aggregate row.
//
// With -graph, critcmp also writes a bar chart of the normalized
// totals, as SVG if the path ends in .svg and otherwise in whatever
// format the extension names (.png, .pdf, ...). The -commit,
// -git-status, -cpu, -os, -cpucount and -source strings are forwarded
// verbatim into the chart footer.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/allocbench/critcmp/allocstat"
	"github.com/allocbench/critcmp/critfmt"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: critcmp [options] file.txt...\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	os.Exit(2)
}

var (
	flagGraph   = flag.String("graph", "", "write a bar chart to `path` (SVG, or any format gonum/plot can save)")
	flagWeights = flag.String("weights", "", "load test weights from `file`")
	flagHTML    = flag.Bool("html", false, "print the table as HTML")
	flagCSV     = flag.Bool("csv", false, "print the table as CSV")

	flagCommit      = flag.String("commit", "", "source control `revision` the reports were built from")
	flagGitStatus   = flag.String("git-status", "", "working tree `status`, e.g. Clean")
	flagCPU         = flag.String("cpu", "", "CPU `description`")
	flagOS          = flag.String("os", "", "operating system `description`")
	flagCPUCount    = flag.String("cpucount", "", "number of `CPUs`")
	flagSource      = flag.String("source", "", "source `URL` of the benchmarked project")
	flagTitleSuffix = flag.String("title-suffix", "", "extra `text` for the chart title")
)

func main() {
	log.SetPrefix("critcmp: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
	}

	c := &allocstat.Collection{Order: allocstat.DefaultOrder}
	if *flagWeights != "" {
		w, err := loadWeights(*flagWeights)
		if err != nil {
			log.Fatal(err)
		}
		c.Weights = w
	}

	files := critfmt.Files{Paths: flag.Args(), AllowLabels: true}
	reports, err := files.Read()
	if err != nil {
		log.Fatal(err)
	}
	for _, r := range reports {
		c.AddReport(r)
	}

	cmp, err := c.Compare()
	if err != nil {
		log.Fatal(err)
	}

	var buf bytes.Buffer
	switch {
	case *flagHTML:
		buf.WriteString(htmlHeader)
		allocstat.FormatHTML(&buf, cmp)
		buf.WriteString(htmlFooter)
	case *flagCSV:
		if err := allocstat.FormatCSV(&buf, cmp); err != nil {
			log.Fatal(err)
		}
	default:
		allocstat.FormatText(&buf, cmp)
	}
	os.Stdout.Write(buf.Bytes())

	if *flagGraph != "" {
		meta := allocstat.Metadata{
			Source:      *flagSource,
			Commit:      *flagCommit,
			GitStatus:   *flagGitStatus,
			CPU:         *flagCPU,
			OS:          *flagOS,
			CPUCount:    *flagCPUCount,
			TitleSuffix: *flagTitleSuffix,
		}
		if err := writeGraph(cmp, meta, *flagGraph); err != nil {
			log.Fatal(err)
		}
	}
}

func loadWeights(path string) (*allocstat.WeightTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return allocstat.ParseWeights(f)
}

// writeGraph writes the chart artifact. SVG gets the hand-drawn
// renderer so the output matches the published charts; everything else
// goes through gonum/plot, which picks the format from the extension.
func writeGraph(cmp *allocstat.Comparison, meta allocstat.Metadata, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		allocstat.ChartSVG(f, cmp, meta)
		return f.Close()
	}
	return allocstat.Chart(cmp, meta, path)
}
