package u64_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spinsim/umath/u64"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name     string
		x, y     uint64
		expected uint64
	}{
		{name: "zero operands", x: 0, y: 0, expected: 0},
		{name: "zero identity", x: 0, y: 42, expected: 42},
		{name: "max plus zero", x: u64.Max, y: 0, expected: u64.Max},
		{name: "wraps to zero", x: u64.Max, y: 1, expected: 0},
		{name: "wraps past zero", x: u64.Max, y: 5, expected: 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, u64.Add(tc.x, tc.y))
			require.Equal(t, tc.expected, u64.Add(tc.y, tc.x))
		})
	}
}

func TestAddChecked(t *testing.T) {
	tests := []struct {
		name     string
		x, y     uint64
		sum      uint64
		overflow bool
	}{
		{name: "zero operands", x: 0, y: 0, sum: 0},
		{name: "no overflow", x: 1, y: 2, sum: 3},
		{name: "exactly max", x: 1 << 63, y: 1<<63 - 1, sum: u64.Max},
		{name: "one past max", x: u64.Max, y: 1, sum: 0, overflow: true},
		{name: "both large", x: u64.Max, y: u64.Max, sum: u64.Max - 1, overflow: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sum, overflow := u64.AddChecked(tc.x, tc.y)
			require.Equal(t, tc.sum, sum)
			require.Equal(t, tc.overflow, overflow)
		})
	}
}

func TestAddSat(t *testing.T) {
	require.Equal(t, uint64(3), u64.AddSat(1, 2))
	require.Equal(t, uint64(u64.Max), u64.AddSat(u64.Max, 0))
	require.Equal(t, uint64(u64.Max), u64.AddSat(u64.Max, 1))
	require.Equal(t, uint64(u64.Max), u64.AddSat(u64.Max, u64.Max))
}

func TestFromInt64(t *testing.T) {
	v, err := u64.FromInt64(0)
	require.NoError(t, err)
	require.Zero(t, v)

	v, err = u64.FromInt64(math.MaxInt64)
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxInt64), v)

	_, err = u64.FromInt64(-1)
	require.ErrorIs(t, err, u64.ErrNegative)

	_, err = u64.FromInt64(math.MinInt64)
	require.ErrorIs(t, err, u64.ErrNegative)
}
