// Copyright 2026 The critcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package allocstat

// Metadata describes the environment a set of reports was collected
// in. All fields are free-form strings forwarded verbatim into chart
// and report footers; nothing is validated.
type Metadata struct {
	Source      string // URL of the benchmarked project
	Commit      string // source control revision
	GitStatus   string // working tree state, e.g. "Clean"
	CPU         string
	OS          string
	CPUCount    string
	TitleSuffix string // extra text appended to the chart title
}

// Title returns the chart title for a comparison against the named
// baseline.
func (m Metadata) Title(baseline string) string {
	title := "Time relative to " + baseline + " (lower is better)"
	if m.TitleSuffix != "" {
		title += " " + m.TitleSuffix
	}
	return title
}

// Lines renders the non-empty metadata fields as footer lines. The
// commit is truncated to 12 characters here, at render time only; the
// stored value keeps its full length.
func (m Metadata) Lines() []string {
	var lines []string
	if m.Source != "" {
		lines = append(lines, "Source: "+m.Source)
	}
	if m.Commit != "" {
		commit := m.Commit
		if len(commit) > 12 {
			commit = commit[:12]
		}
		lines = append(lines, "Commit: "+commit)
	}
	if m.GitStatus != "" {
		lines = append(lines, "Git status: "+m.GitStatus)
	}
	if m.CPU != "" {
		lines = append(lines, "CPU: "+m.CPU)
	}
	if m.OS != "" {
		lines = append(lines, "OS: "+m.OS)
	}
	if m.CPUCount != "" {
		lines = append(lines, "CPUs: "+m.CPUCount)
	}
	return lines
}
