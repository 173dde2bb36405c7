// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factor

import (
	"fmt"
	"math"
	"strconv"
)

// Numbers returns the observations in their original numeric domain by
// parsing each level's label as a number. Missing observations become
// NaN. It fails with ErrNonNumericLabel if any level does not parse;
// it never falls back to returning codes. For the level positions as
// numbers, call NumericCodes, which cannot be confused with this by
// accident.
func (f *Factor) Numbers() ([]float64, error) {
	parsed := make([]float64, f.levels.Len())
	for i, label := range f.levels.labels {
		v, err := strconv.ParseFloat(label, 64)
		if err != nil {
			return nil, fmt.Errorf("level %q: %w", label, ErrNonNumericLabel)
		}
		parsed[i] = v
	}
	nums := make([]float64, len(f.codes))
	for i, c := range f.codes {
		if c == Missing {
			nums[i] = math.NaN()
			continue
		}
		nums[i] = parsed[c]
	}
	return nums, nil
}

// NumericCodes returns the observation codes as float64s, with NaN for
// missing observations. These are level positions, not data values.
func (f *Factor) NumericCodes() []float64 {
	nums := make([]float64, len(f.codes))
	for i, c := range f.codes {
		if c == Missing {
			nums[i] = math.NaN()
			continue
		}
		nums[i] = float64(c)
	}
	return nums
}
