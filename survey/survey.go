// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package survey generates a small synthetic survey sample for
// demonstrating factor handling and descriptive statistics.
//
// The sample imitates a political opinion poll: respondent age, sex,
// party preference, income band, and satisfaction, with income band
// and satisfaction as ordered factors. Generation is deterministic in
// (n, seed), so examples and tests can rely on exact output.
package survey

import (
	"math/rand"

	"github.com/aclements/go-factor/factor"
	"github.com/aclements/go-gg/table"
)

var (
	sexLevels   = []string{"male", "female"}
	partyLevels = []string{"Tory", "Labour", "LibDem", "Green", "other"}
	bandLevels  = []string{"low", "medium", "high", "very_high"}
)

// A Sample is a generated set of survey respondents. Its factor
// columns share the respondent order with Ages.
type Sample struct {
	ages   []float64
	sex    *factor.Factor
	party  *factor.Factor
	income *factor.Factor
	satis  *factor.Factor
}

// Gen returns a pseudo-random sample of n respondents. The same n and
// seed always produce the same sample. A few respondents decline the
// party question; those observations are missing.
func Gen(n int, seed int64) *Sample {
	rng := rand.New(rand.NewSource(seed))
	ages := make([]float64, n)
	sex := make([]string, n)
	party := make([]string, n)
	income := make([]string, n)
	satis := make([]string, n)
	for i := 0; i < n; i++ {
		ages[i] = float64(18 + rng.Intn(72))
		sex[i] = sexLevels[rng.Intn(len(sexLevels))]

		// Rough vote shares, with a 3% refusal rate.
		switch p := rng.Float64(); {
		case p < 0.03:
			// Declined; missing.
		case p < 0.37:
			party[i] = "Tory"
		case p < 0.71:
			party[i] = "Labour"
		case p < 0.83:
			party[i] = "LibDem"
		case p < 0.91:
			party[i] = "Green"
		default:
			party[i] = "other"
		}

		band := 0
		switch p := rng.Float64(); {
		case p < 0.30:
			band = 0
		case p < 0.70:
			band = 1
		case p < 0.90:
			band = 2
		default:
			band = 3
		}
		income[i] = bandLevels[band]

		// Satisfaction tracks income band, plus noise.
		s := band + rng.Intn(3) - 1
		if s < 0 {
			s = 0
		}
		if s > len(bandLevels)-1 {
			s = len(bandLevels) - 1
		}
		satis[i] = bandLevels[s]
	}
	return &Sample{
		ages:   ages,
		sex:    mustFactor(factor.New(sex, factor.Order(sexLevels...))),
		party:  mustFactor(factor.New(party, factor.Order(partyLevels...))),
		income: mustFactor(factor.New(income, factor.Ordered(bandLevels...))),
		satis:  mustFactor(factor.New(satis, factor.Ordered(bandLevels...))),
	}
}

// mustFactor unwraps factor construction that cannot fail on
// generated input.
func mustFactor(f *factor.Factor, err error) *factor.Factor {
	if err != nil {
		panic(err)
	}
	return f
}

// Len returns the number of respondents.
func (s *Sample) Len() int {
	return len(s.ages)
}

// Ages returns a copy of the respondent ages in years.
func (s *Sample) Ages() []float64 {
	return append([]float64(nil), s.ages...)
}

// Sex returns the sex column.
func (s *Sample) Sex() *factor.Factor {
	return s.sex
}

// Party returns the party preference column. Respondents who declined
// the question are missing.
func (s *Sample) Party() *factor.Factor {
	return s.party
}

// Income returns the income band column, ordered low to very_high.
func (s *Sample) Income() *factor.Factor {
	return s.income
}

// Satisfaction returns the satisfaction column, ordered low to
// very_high.
func (s *Sample) Satisfaction() *factor.Factor {
	return s.satis
}

// Table returns the sample as a go-gg table with columns age, sex,
// party, income, and satisfaction. Factor columns appear in label
// form; missing observations are empty strings.
func (s *Sample) Table() *table.Table {
	return new(table.Builder).
		Add("age", s.Ages()).
		Add("sex", s.sex.Labels()).
		Add("party", s.party.Labels()).
		Add("income", s.income.Labels()).
		Add("satisfaction", s.satis.Labels()).
		Done()
}
