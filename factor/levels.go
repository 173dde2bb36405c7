// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factor

import "fmt"

// Levels is an immutable ordered set of unique labels. The position of
// a label in a Levels is the code observations of that label are
// stored as, so two Levels with the same labels in different orders
// are not interchangeable.
//
// A Levels may additionally carry a total order over its labels, in
// which case the label sequence is the comparison order.
type Levels struct {
	labels  []string
	index   map[string]int
	ordered bool
}

// NewLevels returns a Levels with the given labels in the given order.
// If ordered is true, the label order is also a total order for
// Compare. It fails with ErrDuplicateLabel if labels repeat.
func NewLevels(labels []string, ordered bool) (*Levels, error) {
	l := &Levels{
		labels:  append([]string(nil), labels...),
		index:   make(map[string]int, len(labels)),
		ordered: ordered,
	}
	for i, label := range l.labels {
		if _, ok := l.index[label]; ok {
			return nil, fmt.Errorf("level %q: %w", label, ErrDuplicateLabel)
		}
		l.index[label] = i
	}
	return l, nil
}

// Len returns the number of levels.
func (l *Levels) Len() int {
	return len(l.labels)
}

// Labels returns a copy of the labels in level order.
func (l *Levels) Labels() []string {
	return append([]string(nil), l.labels...)
}

// Has reports whether label is a level.
func (l *Levels) Has(label string) bool {
	_, ok := l.index[label]
	return ok
}

// Ordered reports whether the levels carry a total order.
func (l *Levels) Ordered() bool {
	return l.ordered
}

// Index returns the code of label. It fails with ErrUnknownLabel if
// label is not a level.
func (l *Levels) Index(label string) (int, error) {
	i, ok := l.index[label]
	if !ok {
		return 0, fmt.Errorf("level %q: %w", label, ErrUnknownLabel)
	}
	return i, nil
}

// Compare returns -1, 0, or +1 depending on whether a sorts before,
// equal to, or after b in the level order. It fails with
// ErrUnorderedComparison if the levels are unordered and with
// ErrUnknownLabel if either label is not a level.
func (l *Levels) Compare(a, b string) (int, error) {
	if !l.ordered {
		return 0, fmt.Errorf("levels %v: %w", l.labels, ErrUnorderedComparison)
	}
	ai, err := l.Index(a)
	if err != nil {
		return 0, err
	}
	bi, err := l.Index(b)
	if err != nil {
		return 0, err
	}
	switch {
	case ai < bi:
		return -1, nil
	case ai > bi:
		return 1, nil
	}
	return 0, nil
}
