// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tab computes descriptive statistics over factor columns.
//
// Results are go-gg tables, so they compose with the rest of the go-gg
// ecosystem and print with table.Fprint. Frequency and contingency
// tables follow the factor's level order and include empty levels;
// missing observations are excluded from every count.
package tab

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-factor/factor"
	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
)

// ErrLength indicates columns whose observation counts do not match.
var ErrLength = errors.New("column length mismatch")

// Column returns f's observations as a string column for a go-gg
// table. Missing observations become empty strings.
func Column(f *factor.Factor) []string {
	return f.Labels()
}

// Freq returns a frequency table of f with columns "level" and
// "count", one row per level in level order.
func Freq(f *factor.Factor) *table.Table {
	counts := make([]int, f.Levels().Len())
	for _, c := range f.Codes() {
		if c != factor.Missing {
			counts[c]++
		}
	}
	return new(table.Builder).
		Add("level", f.Levels().Labels()).
		Add("count", counts).
		Done()
}

// Prop returns a proportion table of f with columns "level" and
// "prop". Proportions are of the non-missing observations; with no
// non-missing observations every proportion is NaN.
func Prop(f *factor.Factor) *table.Table {
	counts := make([]int, f.Levels().Len())
	total := 0
	for _, c := range f.Codes() {
		if c != factor.Missing {
			counts[c]++
			total++
		}
	}
	props := make([]float64, len(counts))
	for i, n := range counts {
		props[i] = float64(n) / float64(total)
	}
	return new(table.Builder).
		Add("level", f.Levels().Labels()).
		Add("prop", props).
		Done()
}

// Crosstab returns the two-way contingency table of rows by cols: a
// "level" column with the row factor's levels plus one count column
// per column-factor level, both in level order. Observations missing
// in either factor are excluded. It fails with ErrLength if the
// factors have different lengths.
func Crosstab(rows, cols *factor.Factor) (*table.Table, error) {
	if rows.Len() != cols.Len() {
		return nil, fmt.Errorf("crosstab of %d rows by %d columns: %w",
			rows.Len(), cols.Len(), ErrLength)
	}
	nr, nc := rows.Levels().Len(), cols.Levels().Len()
	counts := make([][]int, nc)
	for j := range counts {
		counts[j] = make([]int, nr)
	}
	rcodes, ccodes := rows.Codes(), cols.Codes()
	for i := range rcodes {
		if rcodes[i] == factor.Missing || ccodes[i] == factor.Missing {
			continue
		}
		counts[ccodes[i]][rcodes[i]]++
	}
	b := new(table.Builder).Add("level", rows.Levels().Labels())
	for j, label := range cols.Levels().Labels() {
		b.Add(label, counts[j])
	}
	return b.Done(), nil
}

// Summary returns per-level descriptive statistics of values grouped
// by the factor by. The result has one row per level in level order
// and columns "level", "n", "mean name", "median name", and "stddev
// name". values may be any numeric slice. NaN values and values at
// missing observations are skipped; statistics of an empty level are
// NaN. It fails with ErrLength if values and by differ in length.
func Summary(by *factor.Factor, name string, values interface{}) (*table.Table, error) {
	var xs []float64
	slice.Convert(&xs, values)
	if len(xs) != by.Len() {
		return nil, fmt.Errorf("summary of %d values by %d observations: %w",
			len(xs), by.Len(), ErrLength)
	}

	groups := make([][]float64, by.Levels().Len())
	for i, c := range by.Codes() {
		if c == factor.Missing || math.IsNaN(xs[i]) {
			continue
		}
		groups[c] = append(groups[c], xs[i])
	}

	n := make([]int, len(groups))
	means := make([]float64, len(groups))
	medians := make([]float64, len(groups))
	stddevs := make([]float64, len(groups))
	for i, g := range groups {
		n[i] = len(g)
		if len(g) == 0 {
			means[i] = math.NaN()
			medians[i] = math.NaN()
			stddevs[i] = math.NaN()
			continue
		}
		sort.Float64s(g)
		s := stats.Sample{Xs: g, Sorted: true}
		means[i] = stats.Mean(g)
		medians[i] = s.Quantile(0.5)
		stddevs[i] = s.StdDev()
	}
	return new(table.Builder).
		Add("level", by.Levels().Labels()).
		Add("n", n).
		Add("mean "+name, means).
		Add("median "+name, medians).
		Add("stddev "+name, stddevs).
		Done(), nil
}

// Grouped adds f to t as a string column called name and groups t by
// it. It fails with ErrLength if f and t differ in length.
func Grouped(t *table.Table, f *factor.Factor, name string) (table.Grouping, error) {
	if t.Len() != f.Len() {
		return nil, fmt.Errorf("grouping %d rows by %d observations: %w",
			t.Len(), f.Len(), ErrLength)
	}
	nt := table.NewBuilder(t).Add(name, f.Labels()).Done()
	return table.GroupBy(nt, name), nil
}

// MeanBy returns g aggregated to the mean of column col for each
// distinct value of column by, as ggstat.Agg does: the result keeps
// the by column and names the aggregate "mean col". col may be any
// numeric column.
func MeanBy(g table.Grouping, by, col string) table.Grouping {
	g = table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		var xs []float64
		slice.Convert(&xs, t.MustColumn(col))
		return table.NewBuilder(t).Add(col, xs).Done()
	})
	return ggstat.Agg(by)(ggstat.AggMean(col)).F(g)
}
