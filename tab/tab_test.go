// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tab

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/aclements/go-factor/factor"
	"github.com/aclements/go-gg/table"
)

func de(x, y interface{}) bool {
	return reflect.DeepEqual(x, y)
}

// mustFactor returns an unwrapper for construction results, so tests
// can write mustFactor(t)(factor.New(...)).
func mustFactor(t *testing.T) func(*factor.Factor, error) *factor.Factor {
	return func(f *factor.Factor, err error) *factor.Factor {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return f
	}
}

func TestFreq(t *testing.T) {
	party := mustFactor(t)(factor.New(
		[]string{"Tory", "Labour", "Tory", "", "Labour", "Labour"},
		factor.Order("Tory", "Labour", "Green")))
	tbl := Freq(party)
	if v, w := tbl.MustColumn("level"), []string{"Tory", "Labour", "Green"}; !de(v, w) {
		t.Fatalf("levels should be %v; got %v", w, v)
	}
	// Empty levels are kept; missing observations are not counted.
	if v, w := tbl.MustColumn("count"), []int{2, 3, 0}; !de(v, w) {
		t.Fatalf("counts should be %v; got %v", w, v)
	}
}

func TestColumn(t *testing.T) {
	f := mustFactor(t)(factor.New([]string{"a", "", "b"}))
	if v, w := Column(f), []string{"a", "", "b"}; !de(v, w) {
		t.Fatalf("column should be %v; got %v", w, v)
	}
}

func TestProp(t *testing.T) {
	f := mustFactor(t)(factor.New([]string{"a", "a", "b", ""}))
	tbl := Prop(f)
	if v, w := tbl.MustColumn("prop"), []float64{2.0 / 3.0, 1.0 / 3.0}; !de(v, w) {
		t.Fatalf("props should be %v; got %v", w, v)
	}
}

func TestCrosstab(t *testing.T) {
	party := mustFactor(t)(factor.New(
		[]string{"Tory", "Labour", "Tory", "Labour", "Tory", ""}))
	sex := mustFactor(t)(factor.New(
		[]string{"male", "female", "female", "male", "male", "male"}))
	tbl, err := Crosstab(party, sex)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, w := tbl.Columns(), []string{"level", "male", "female"}; !de(v, w) {
		t.Fatalf("columns should be %v; got %v", w, v)
	}
	if v, w := tbl.MustColumn("level"), []string{"Tory", "Labour"}; !de(v, w) {
		t.Fatalf("levels should be %v; got %v", w, v)
	}
	if v, w := tbl.MustColumn("male"), []int{2, 1}; !de(v, w) {
		t.Fatalf("male counts should be %v; got %v", w, v)
	}
	if v, w := tbl.MustColumn("female"), []int{1, 1}; !de(v, w) {
		t.Fatalf("female counts should be %v; got %v", w, v)
	}

	short := mustFactor(t)(factor.New([]string{"male"}))
	_, err = Crosstab(party, short)
	if !errors.Is(err, ErrLength) {
		t.Fatalf("want ErrLength; got %v", err)
	}
}

func TestSummary(t *testing.T) {
	by := mustFactor(t)(factor.New(
		[]string{"a", "a", "b", "a", ""},
		factor.Order("a", "b", "z")))
	tbl, err := Summary(by, "age", []float64{1, 3, 5, 2, 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, w := tbl.MustColumn("n"), []int{3, 1, 0}; !de(v, w) {
		t.Fatalf("n should be %v; got %v", w, v)
	}
	means := tbl.MustColumn("mean age").([]float64)
	if means[0] != 2 || means[1] != 5 || !math.IsNaN(means[2]) {
		t.Fatalf("means should be [2 5 NaN]; got %v", means)
	}
	medians := tbl.MustColumn("median age").([]float64)
	if medians[0] != 2 || medians[1] != 5 || !math.IsNaN(medians[2]) {
		t.Fatalf("medians should be [2 5 NaN]; got %v", medians)
	}
}

func TestSummarySkipsNaN(t *testing.T) {
	by := mustFactor(t)(factor.New([]string{"a", "a", "a", "a"}))
	tbl, err := Summary(by, "v", []float64{1, math.NaN(), 3, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, w := tbl.MustColumn("n"), []int{3}; !de(v, w) {
		t.Fatalf("n should be %v; got %v", w, v)
	}
	if v := tbl.MustColumn("mean v").([]float64); v[0] != 2 {
		t.Fatalf("mean should be 2; got %v", v[0])
	}
}

func TestSummaryLength(t *testing.T) {
	by := mustFactor(t)(factor.New([]string{"a", "b"}))
	_, err := Summary(by, "v", []float64{1})
	if !errors.Is(err, ErrLength) {
		t.Fatalf("want ErrLength; got %v", err)
	}
}

func TestSummaryIntValues(t *testing.T) {
	by := mustFactor(t)(factor.New([]string{"a", "a", "b"}))
	tbl, err := Summary(by, "v", []int{1, 3, 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v := tbl.MustColumn("mean v").([]float64); v[0] != 2 || v[1] != 5 {
		t.Fatalf("means should be [2 5]; got %v", v)
	}
}

func TestGrouped(t *testing.T) {
	tbl := new(table.Builder).Add("v", []int{1, 2, 3}).Done()
	f := mustFactor(t)(factor.New([]string{"x", "y", "x"}))
	g, err := Grouped(tbl, f, "grp")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v := len(g.Tables()); v != 2 {
		t.Fatalf("should have 2 groups; got %v", v)
	}
	rows := 0
	for _, gid := range g.Tables() {
		sub := g.Table(gid)
		rows += sub.Len()
		grp := sub.MustColumn("grp").([]string)
		for _, l := range grp {
			if l != grp[0] {
				t.Fatalf("group %v is not uniform: %v", gid, grp)
			}
		}
	}
	if rows != 3 {
		t.Fatalf("groups should cover 3 rows; got %v", rows)
	}

	short := mustFactor(t)(factor.New([]string{"x"}))
	_, err = Grouped(tbl, short, "grp")
	if !errors.Is(err, ErrLength) {
		t.Fatalf("want ErrLength; got %v", err)
	}
}

func TestMeanBy(t *testing.T) {
	tbl := new(table.Builder).
		Add("x", []string{"a", "a", "b"}).
		Add("v", []int{1, 3, 5}).
		Done()
	out := MeanBy(tbl, "x", "v")
	ot := out.Table(out.Tables()[0])
	xs := ot.MustColumn("x").([]string)
	means := ot.MustColumn("mean v").([]float64)
	if len(xs) != 2 {
		t.Fatalf("should have 2 rows; got %v", len(xs))
	}
	want := map[string]float64{"a": 2, "b": 5}
	for i, x := range xs {
		if means[i] != want[x] {
			t.Fatalf("mean v of %q should be %v; got %v", x, want[x], means[i])
		}
	}
}
