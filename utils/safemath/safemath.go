// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package safemath implements overflow-checked arithmetic on the amounts
// this module moves around (spec.md §9 "Big integers": a fixed 64-bit
// integer suffices for wire values, checked addition/subtraction is enough
// to keep coin selection honest without widening to a bigint).
package safemath

import "errors"

var ErrOverflow = errors.New("overflow")

// Add64 returns a+b, erroring instead of wrapping on overflow.
func Add64(a, b uint64) (uint64, error) {
	sum := a + b
	if sum < a {
		return 0, ErrOverflow
	}
	return sum, nil
}

// Sub64 returns a-b, erroring instead of wrapping on underflow.
func Sub64(a, b uint64) (uint64, error) {
	if b > a {
		return 0, ErrOverflow
	}
	return a - b, nil
}
