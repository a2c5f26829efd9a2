// SPDX-License-Identifier: MIT
//
// File: labels.go
// Role: Auto-label sequences for AddNode("").

package core

import (
	"fmt"
	"strconv"
)

// alphabetSize is the number of uppercase Latin letters used by SpreadsheetLabel.
const alphabetSize = 26

// LabelFn maps a zero-based position in the auto-label sequence to a label.
// It must be pure and injective: distinct indices yield distinct labels.
type LabelFn func(idx int) string

// SpreadsheetLabel returns the spreadsheet-column name for idx:
// 0→"A", 25→"Z", 26→"AA", 27→"AB", 701→"ZZ", 702→"AAA".
//
// The first 26+26*26 labels are exactly the single letters followed by the
// letter pairs in nested order (first letter outer loop). Past "ZZ" the
// sequence keeps growing, so auto-labeling never runs out.
// Panics if idx < 0.
func SpreadsheetLabel(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("SpreadsheetLabel: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/alphabetSize - 1 {
		runes = append(runes, rune('A'+(i%alphabetSize)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixedLabel returns a LabelFn producing prefix + decimal index: "n0", "n1", ...
func PrefixedLabel(prefix string) LabelFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PrefixedLabel: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// unusedLabel scans the label sequence from the start and returns the first
// label not present in the node catalog. Caller holds mu.
// At most len(g.nodes)+1 candidates are probed.
func (g *Graph) unusedLabel() string {
	for idx := 0; ; idx++ {
		label := g.labelFn(idx)
		if _, taken := g.nodes[label]; !taken {
			return label
		}
	}
}
