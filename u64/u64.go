// Package u64 provides basic functions supporting unsigned 64-bit
// arithmetic with explicit overflow behavior. It has no dependency on any
// runtime: callers choose the overflow semantics by choosing the function.
package u64

import "errors"

// Max is the largest value representable in 64 unsigned bits.
const Max = 1<<64 - 1

// ErrNegative is returned by FromInt64 when the input is below zero.
var ErrNegative = errors.New("negative value for unsigned integer")

// Add returns x+y modulo 2^64. It is total: every operand pair has a
// result, and a sum exceeding Max silently discards the carry.
func Add(x, y uint64) uint64 {
	return x + y
}

// AddChecked returns x+y and whether the true sum exceeded Max. On
// overflow, sum holds the wrapped value.
func AddChecked(x, y uint64) (sum uint64, overflow bool) {
	return x + y, y > Max-x
}

// AddSat returns x+y, clamping to Max when the true sum would overflow.
func AddSat(x, y uint64) uint64 {
	if y > Max-x {
		return Max
	}
	return x + y
}

// FromInt64 converts a signed value to uint64, returning ErrNegative for
// inputs below zero instead of reinterpreting the sign bit. Use this when
// bridging a host whose numeric type is signed.
func FromInt64(v int64) (uint64, error) {
	if v < 0 {
		return 0, ErrNegative
	}
	return uint64(v), nil
}
