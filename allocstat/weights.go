// Copyright 2026 The critcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package allocstat

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// A WeightTable maps test-name prefixes to importance multipliers,
// biasing aggregate scores toward tests judged more representative of
// real workloads. A nil *WeightTable weights every test equally at 1.
type WeightTable struct {
	// Default is the weight for tests no prefix rule matches.
	Default float64

	// rules are ordered longest prefix first so resolution can
	// take the first match.
	rules []weightRule
}

type weightRule struct {
	prefix string
	weight float64
}

// NewWeightTable returns a table with the given default weight and
// prefix rules. The table is immutable after construction.
func NewWeightTable(def float64, rules map[string]float64) *WeightTable {
	t := &WeightTable{Default: def}
	for p, w := range rules {
		t.rules = append(t.rules, weightRule{p, w})
	}
	sort.Slice(t.rules, func(i, j int) bool {
		a, b := t.rules[i], t.rules[j]
		if len(a.prefix) != len(b.prefix) {
			return len(a.prefix) > len(b.prefix)
		}
		return a.prefix < b.prefix
	})
	return t
}

// Weight resolves name to a weight by longest matching prefix, or
// Default if no prefix matches.
func (t *WeightTable) Weight(name string) float64 {
	if t == nil {
		return 1
	}
	for _, r := range t.rules {
		if strings.HasPrefix(name, r.prefix) {
			return r.weight
		}
	}
	return t.Default
}

// ParseWeights reads a weight table from r. Each line has the form
//
//	prefix=weight
//
// where weight is a decimal number. The special prefix "default" sets
// the fallback weight, which is otherwise 1. Blank lines and lines
// starting with "#" are ignored.
func ParseWeights(r io.Reader) (*WeightTable, error) {
	def := 1.0
	rules := make(map[string]float64)
	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		text := strings.TrimSpace(s.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		i := strings.LastIndex(text, "=")
		if i < 0 {
			return nil, fmt.Errorf("weights:%d: expected prefix=weight", line)
		}
		prefix := strings.TrimSpace(text[:i])
		w, err := strconv.ParseFloat(strings.TrimSpace(text[i+1:]), 64)
		if err != nil {
			return nil, fmt.Errorf("weights:%d: bad weight %q", line, text[i+1:])
		}
		if prefix == "default" {
			def = w
			continue
		}
		rules[prefix] = w
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return NewWeightTable(def, rules), nil
}
