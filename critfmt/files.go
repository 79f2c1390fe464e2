// Copyright 2026 The critcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package critfmt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// A Files reads timing reports from a sequence of input files.
//
// Each report's configuration ID is derived from its file name (see
// ConfigID). If AllowLabels is true, entries in Paths may be of the
// form label=path, and the label part is used as the ID instead.
//
// Reports are returned in argument order; canonical ordering and
// baseline selection are the comparison engine's concern, so callers
// may pass files in any order.
type Files struct {
	// Paths is the list of file names to read.
	Paths []string

	// AllowLabels indicates that label=path entries are allowed in
	// Paths. This is generally the desired behavior when the file
	// list comes from command-line arguments, as it lets users
	// override the derived configuration ID.
	AllowLabels bool
}

// ConfigID returns the configuration identifier derived from a report
// file path: the base name with any extension stripped. For example,
// "results/jemalloc.txt" yields "jemalloc".
func ConfigID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Read parses every file and returns the resulting reports.
//
// Two files that resolve to the same configuration ID are an error:
// they would claim to describe the same configuration twice and no
// meaningful comparison could include both.
func (f *Files) Read() ([]*Report, error) {
	reports := make([]*Report, 0, len(f.Paths))
	seen := make(map[string]string) // ID -> path it came from
	for _, p := range f.Paths {
		path, id := p, ""
		if i := strings.Index(p, "="); f.AllowLabels && i >= 0 {
			id, path = p[:i], p[i+1:]
		}
		if id == "" {
			id = ConfigID(path)
		}
		if prev, ok := seen[id]; ok {
			return nil, fmt.Errorf("duplicate configuration %q (%s and %s)", id, prev, path)
		}
		seen[id] = path

		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		rep, err := ParseReport(file, path, id)
		file.Close()
		if err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}
	return reports, nil
}
