// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package factor provides immutable categorical columns ("factors")
// with explicit level management.
//
// A Factor couples a sequence of observations with a Levels, the
// ordered set of labels the observations may carry. Each observation
// is stored as a code, the position of its label in the Levels, or as
// the Missing marker. Codes are only meaningful relative to the
// specific Levels they were assigned against: reordering or merging
// levels produces a new Factor with renumbered codes.
//
// No operation mutates a Factor. Level editing (AddLevel, Relabel,
// DropLabel, Compact, Merge) and reordering (AsOrdered) return new
// Factors, so a Factor that has been handed out can always be read
// concurrently.
//
// The numeric bridge keeps the two ways of turning a factor back into
// numbers apart by name: Numbers parses the labels, recovering the
// original values of a factor built from numeric data, while
// NumericCodes returns the level positions. Treating codes as data is
// the classic factor mistake, so there is no operation that does both.
package factor

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
)

// Missing is the code of a missing observation.
const Missing = -1

// Factor is an immutable categorical column.
type Factor struct {
	levels *Levels
	codes  []int
}

type config struct {
	labels    map[string]string
	order     []string
	haveOrder bool
	ordered   bool
}

// An Option configures Factor construction.
type Option func(*config)

// Labels maps the string form of raw values to labels. Raw values
// with no mapping become missing observations, never an error. The
// mapping's values declare the level universe: labels that are mapped
// to but never observed are still levels.
func Labels(m map[string]string) Option {
	return func(c *config) {
		c.labels = m
	}
}

// Order fixes the level order. The given labels must cover every
// observed (or mapped-to) label; construction fails with
// ErrLevelMismatch otherwise. Labels that are declared here but never
// observed become empty levels rather than an error, since declaring
// them loses no data.
func Order(labels ...string) Option {
	return func(c *config) {
		c.order = labels
		c.haveOrder = true
	}
}

// Ordered is like Order but additionally marks the levels as carrying
// a total order. With no labels it keeps the inferred first-seen order
// and only sets the order flag.
func Ordered(labels ...string) Option {
	return func(c *config) {
		c.ordered = true
		if len(labels) > 0 {
			c.order = labels
			c.haveOrder = true
		}
	}
}

// New returns a Factor over the given string observations. An empty
// string is the missing marker. Levels default to the distinct
// observed labels in first-seen order; see Labels, Order, and Ordered.
func New(obs []string, opts ...Option) (*Factor, error) {
	vals := append([]string(nil), obs...)
	miss := make([]bool, len(obs))
	for i, v := range vals {
		if v == "" {
			miss[i] = true
		}
	}
	return build(vals, miss, opts)
}

// FromSlice returns a Factor over any slice of observations. Values
// are keyed by their string form: numbers format as strconv would
// print them, so a []int{18, 99, 54} yields labels "18", "99", "54".
// A NaN element, an empty string element, or a nil interface element
// is the missing marker. FromSlice panics if obs is not a slice.
func FromSlice(obs interface{}, opts ...Option) (*Factor, error) {
	rv := reflect.ValueOf(obs)
	if rv.Kind() != reflect.Slice {
		panic(fmt.Sprintf("factor: FromSlice called with non-slice %T", obs))
	}
	vals := make([]string, rv.Len())
	miss := make([]bool, rv.Len())
	for i := range vals {
		e := rv.Index(i)
		if e.Kind() == reflect.Interface {
			if e.IsNil() {
				miss[i] = true
				continue
			}
			e = e.Elem()
		}
		switch e.Kind() {
		case reflect.Float32, reflect.Float64:
			f := e.Float()
			if math.IsNaN(f) {
				miss[i] = true
				continue
			}
			vals[i] = strconv.FormatFloat(f, 'g', -1, 64)
		case reflect.String:
			s := e.String()
			if s == "" {
				miss[i] = true
				continue
			}
			vals[i] = s
		default:
			vals[i] = fmt.Sprint(e.Interface())
		}
	}
	return build(vals, miss, opts)
}

// build assembles a Factor from stringified raw values and a missing
// mask. It owns both slices.
func build(vals []string, miss []bool, opts []Option) (*Factor, error) {
	var c config
	for _, o := range opts {
		o(&c)
	}

	// Map raw values to labels.
	labels := make([]string, len(vals))
	for i, v := range vals {
		if miss[i] {
			continue
		}
		if c.labels != nil {
			l, ok := c.labels[v]
			if !ok {
				miss[i] = true
				continue
			}
			labels[i] = l
		} else {
			labels[i] = v
		}
	}

	// The level universe: observed labels in first-seen order, then
	// any mapped-to but unobserved labels in sorted order so that
	// inference is deterministic.
	var universe []string
	seen := make(map[string]bool)
	for i, l := range labels {
		if miss[i] || seen[l] {
			continue
		}
		seen[l] = true
		universe = append(universe, l)
	}
	if c.labels != nil {
		var rest []string
		for _, l := range c.labels {
			if !seen[l] {
				seen[l] = true
				rest = append(rest, l)
			}
		}
		sort.Strings(rest)
		universe = append(universe, rest...)
	}

	order := universe
	if c.haveOrder {
		if err := covers(c.order, universe); err != nil {
			return nil, err
		}
		order = c.order
	}

	levels, err := NewLevels(order, c.ordered)
	if err != nil {
		return nil, err
	}
	codes := make([]int, len(vals))
	for i := range codes {
		if miss[i] {
			codes[i] = Missing
			continue
		}
		codes[i] = levels.index[labels[i]]
	}
	return &Factor{levels, codes}, nil
}

// covers checks that order contains every label in want, with no
// duplicates.
func covers(order, want []string) error {
	set := make(map[string]bool, len(order))
	for _, l := range order {
		if set[l] {
			return fmt.Errorf("order %v repeats %q: %w", order, l, ErrLevelMismatch)
		}
		set[l] = true
	}
	for _, l := range want {
		if !set[l] {
			return fmt.Errorf("order %v is missing label %q: %w", order, l, ErrLevelMismatch)
		}
	}
	return nil
}

// Len returns the number of observations.
func (f *Factor) Len() int {
	return len(f.codes)
}

// Levels returns the level set of f.
func (f *Factor) Levels() *Levels {
	return f.levels
}

// Codes returns a copy of the observation codes. Each code is the
// observation's position in Levels, or Missing.
func (f *Factor) Codes() []int {
	return append([]int(nil), f.codes...)
}

// Labels returns a copy of the observations in decoded label form.
// Missing observations decode to the empty string; use Label to
// distinguish a missing observation from an empty label.
func (f *Factor) Labels() []string {
	out := make([]string, len(f.codes))
	for i, c := range f.codes {
		if c != Missing {
			out[i] = f.levels.labels[c]
		}
	}
	return out
}

// Label returns the label of observation i and whether the
// observation is present.
func (f *Factor) Label(i int) (string, bool) {
	c := f.codes[i]
	if c == Missing {
		return "", false
	}
	return f.levels.labels[c], true
}

// IsMissing reports whether observation i is missing.
func (f *Factor) IsMissing(i int) bool {
	return f.codes[i] == Missing
}

// Count returns the number of observations carrying label. It fails
// with ErrUnknownLabel if label is not a level.
func (f *Factor) Count(label string) (int, error) {
	code, err := f.levels.Index(label)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, c := range f.codes {
		if c == code {
			n++
		}
	}
	return n, nil
}

// AsOrdered returns a Factor with the same observations bound to an
// ordered Levels with the given label order. The order must be exactly
// a permutation of the existing label set; adding or dropping levels
// here fails with ErrLevelMismatch.
func (f *Factor) AsOrdered(order ...string) (*Factor, error) {
	if len(order) != f.levels.Len() {
		return nil, fmt.Errorf("order %v is not a permutation of %v: %w",
			order, f.levels.labels, ErrLevelMismatch)
	}
	if err := covers(order, f.levels.labels); err != nil {
		return nil, err
	}
	levels, err := NewLevels(order, true)
	if err != nil {
		return nil, err
	}
	return &Factor{levels, f.remap(levels)}, nil
}

// AsUnordered returns a Factor with the same observations and level
// order but without the total order flag.
func (f *Factor) AsUnordered() *Factor {
	if !f.levels.ordered {
		return f
	}
	levels, err := NewLevels(f.levels.labels, false)
	if err != nil {
		panic(err)
	}
	return &Factor{levels, f.codes}
}

// remap renumbers f's codes against levels, which must contain every
// label used by f.
func (f *Factor) remap(levels *Levels) []int {
	codes := make([]int, len(f.codes))
	for i, c := range f.codes {
		if c == Missing {
			codes[i] = Missing
			continue
		}
		codes[i] = levels.index[f.levels.labels[c]]
	}
	return codes
}
