// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factor

import "fmt"

func Example() {
	votes, _ := FromSlice([]int{0, 1, 1, 0},
		Labels(map[string]string{"0": "Tory", "1": "Labour"}))
	fmt.Println(votes.Labels())
	fmt.Println(votes.Codes())
	// Output:
	// [Tory Labour Labour Tory]
	// [0 1 1 0]
}

func ExampleFactor_Merge() {
	band, _ := New(
		[]string{"low", "very_high", "medium", "high"},
		Ordered("low", "medium", "high", "very_high"))
	band, _ = band.Merge("high", "high", "very_high")
	fmt.Println(band.Levels().Labels())
	fmt.Println(band.Labels())
	// Output:
	// [low medium high]
	// [low high medium high]
}

func ExampleFactor_Numbers() {
	ages, _ := FromSlice([]int{18, 99, 54, 54})
	nums, _ := ages.Numbers()
	fmt.Println(nums)
	fmt.Println(ages.NumericCodes())
	// Output:
	// [18 99 54 54]
	// [0 1 2 2]
}
