// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package factor

import "errors"

// Errors reported by this package. Every failing operation returns an
// error wrapping one of these sentinels, so callers can test the kind
// with errors.Is while the message carries the offending label.
var (
	// ErrDuplicateLabel indicates a label that is already a level.
	ErrDuplicateLabel = errors.New("duplicate label")

	// ErrUnknownLabel indicates a label that is not a declared level.
	ErrUnknownLabel = errors.New("unknown label")

	// ErrUnorderedComparison indicates a comparison of labels from an
	// unordered level set.
	ErrUnorderedComparison = errors.New("compare of unordered levels")

	// ErrLevelMismatch indicates a level sequence that does not match
	// the column's label set.
	ErrLevelMismatch = errors.New("level mismatch")

	// ErrNonNumericLabel indicates a level that does not parse as a
	// number.
	ErrNonNumericLabel = errors.New("non-numeric label")
)
