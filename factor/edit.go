// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factor

import "fmt"

// Level editing. Every operation returns a new Factor and leaves the
// receiver untouched, so a failed edit cannot leave a column half
// modified.

// AddLevel returns a Factor whose levels are extended with label,
// appended after the existing levels. Observation codes are unchanged.
// It fails with ErrDuplicateLabel if label is already a level.
func (f *Factor) AddLevel(label string) (*Factor, error) {
	if f.levels.Has(label) {
		return nil, fmt.Errorf("level %q: %w", label, ErrDuplicateLabel)
	}
	levels, err := NewLevels(append(f.levels.Labels(), label), f.levels.ordered)
	if err != nil {
		return nil, err
	}
	return &Factor{levels, f.codes}, nil
}

// Relabel returns a Factor with observation i reassigned to label.
// The label must already be a declared level; Relabel fails with
// ErrUnknownLabel otherwise (AddLevel first). Relabel panics if i is
// out of range.
func (f *Factor) Relabel(i int, label string) (*Factor, error) {
	if i < 0 || i >= len(f.codes) {
		panic(fmt.Sprintf("factor: position %d out of range [0, %d)", i, len(f.codes)))
	}
	code, err := f.levels.Index(label)
	if err != nil {
		return nil, err
	}
	codes := append([]int(nil), f.codes...)
	codes[i] = code
	return &Factor{f.levels, codes}, nil
}

// DropLabel returns a Factor with every observation carrying label
// removed from the sequence. This discards data: the result is
// shorter than f. The level itself stays declared; use Compact to
// drop it. DropLabel fails with ErrUnknownLabel if label is not a
// level.
func (f *Factor) DropLabel(label string) (*Factor, error) {
	code, err := f.levels.Index(label)
	if err != nil {
		return nil, err
	}
	codes := make([]int, 0, len(f.codes))
	for _, c := range f.codes {
		if c != code {
			codes = append(codes, c)
		}
	}
	return &Factor{f.levels, codes}, nil
}

// Compact returns a Factor whose levels are reduced to those carried
// by at least one observation, preserving their relative order.
// Observation labels are unchanged; only codes are renumbered.
func (f *Factor) Compact() *Factor {
	used := make([]bool, f.levels.Len())
	for _, c := range f.codes {
		if c != Missing {
			used[c] = true
		}
	}
	var labels []string
	for i, u := range used {
		if u {
			labels = append(labels, f.levels.labels[i])
		}
	}
	if len(labels) == f.levels.Len() {
		return f
	}
	levels, err := NewLevels(labels, f.levels.ordered)
	if err != nil {
		panic(err)
	}
	return &Factor{levels, f.remap(levels)}
}

// Merge returns a Factor with every observation carrying one of the
// source labels relabeled to target. The source levels are removed. If
// target is not yet a level it is added at the position of the
// earliest source level; an existing target keeps its position. The
// relative order of untouched levels is preserved. Merge fails with
// ErrUnknownLabel if a source label is not a level.
func (f *Factor) Merge(target string, sources ...string) (*Factor, error) {
	removed := make(map[int]bool)
	insert := -1
	for _, s := range sources {
		p, err := f.levels.Index(s)
		if err != nil {
			return nil, err
		}
		if s != target {
			removed[p] = true
		}
		if insert == -1 || p < insert {
			insert = p
		}
	}
	if p, ok := f.levels.index[target]; ok {
		insert = p
	}

	var labels []string
	for p, l := range f.levels.labels {
		switch {
		case p == insert:
			labels = append(labels, target)
		case !removed[p]:
			labels = append(labels, l)
		}
	}
	if insert == -1 {
		// No sources and a new target: plain append.
		labels = append(labels, target)
	}

	levels, err := NewLevels(labels, f.levels.ordered)
	if err != nil {
		return nil, err
	}
	codes := make([]int, len(f.codes))
	for i, c := range f.codes {
		if c == Missing {
			codes[i] = Missing
			continue
		}
		l := f.levels.labels[c]
		if removed[c] {
			l = target
		}
		codes[i] = levels.index[l]
	}
	return &Factor{levels, codes}, nil
}
