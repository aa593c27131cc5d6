package rational_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/katalvlaran/rowreduce/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Supported covers every accepted Go input kind.
func TestNew_Supported(t *testing.T) {
	r := rational.MustNew("7/9")
	for _, tc := range []struct {
		name string
		in   any
		want string
	}{
		{"int", 3, "3"},
		{"int8", int8(-4), "-4"},
		{"int16", int16(5), "5"},
		{"int32", int32(-6), "-6"},
		{"int64", int64(math.MaxInt64), "9223372036854775807"},
		{"uint", uint(7), "7"},
		{"uint8", uint8(8), "8"},
		{"uint16", uint16(9), "9"},
		{"uint32", uint32(10), "10"},
		{"uint64", uint64(math.MaxUint64), "18446744073709551615"},
		{"float64 exact", 1.5, "3/2"},
		{"float64 decimal", 0.1, "1/10"},
		{"float64 third", 1.0 / 3.0, "1/3"},
		{"float32", float32(0.25), "1/4"},
		{"string int", "42", "42"},
		{"string frac", "-3/4", "-3/4"},
		{"string decimal", "1.25", "5/4"},
		{"string sci", "1e-3", "1/1000"},
		{"string spaced", "  2/4 ", "1/2"},
		{"big.Int", big.NewInt(-12), "-12"},
		{"big.Rat", big.NewRat(10, 4), "5/2"},
		{"Rat", r, "7/9"},
		{"*Rat", &r, "7/9"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := rational.New(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

// TestNew_Invalid ensures all non-finite or malformed inputs map to ErrInvalidValue.
func TestNew_Invalid(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   any
	}{
		{"NaN", math.NaN()},
		{"+Inf", math.Inf(1)},
		{"-Inf", math.Inf(-1)},
		{"float32 Inf", float32(math.Inf(1))},
		{"empty", ""},
		{"blank", "   "},
		{"garbage", "abc"},
		{"zero denominator", "1/0"},
		{"nil big.Int", (*big.Int)(nil)},
		{"nil big.Rat", (*big.Rat)(nil)},
		{"nil Rat", (*rational.Rat)(nil)},
		{"nil", nil},
		{"bool", true},
		{"complex", complex(1, 1)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := rational.New(tc.in)
			assert.ErrorIs(t, err, rational.ErrInvalidValue)
		})
	}
}

// TestNew_ExactInputsIgnoreLimit verifies the bound only applies to floats.
func TestNew_ExactInputsIgnoreLimit(t *testing.T) {
	r, err := rational.NewLimited("1/1234567", 10)
	require.NoError(t, err)
	assert.Equal(t, "1/1234567", r.String())

	r, err = rational.NewLimited(math.Pi, 1000)
	require.NoError(t, err)
	assert.Equal(t, "355/113", r.String())

	r, err = rational.NewLimited(-math.Pi, 1000)
	require.NoError(t, err)
	assert.Equal(t, "-355/113", r.String())
}

// TestNewLimited_BadLimit checks the denominator bound guard.
func TestNewLimited_BadLimit(t *testing.T) {
	_, err := rational.NewLimited(1, 0)
	assert.ErrorIs(t, err, rational.ErrBadDenominatorLimit)

	_, err = rational.One().LimitDenominator(-5)
	assert.ErrorIs(t, err, rational.ErrBadDenominatorLimit)
}

// TestLimitDenominator checks best rational approximations.
func TestLimitDenominator(t *testing.T) {
	for _, tc := range []struct {
		in     string
		maxDen int64
		want   string
	}{
		{"3141592653589793/1000000000000000", 10, "22/7"},
		{"3141592653589793/1000000000000000", 100, "311/99"},
		{"3141592653589793/1000000000000000", 1000, "355/113"},
		{"-3141592653589793/1000000000000000", 10, "-22/7"},
		{"4321/8765", 10000, "4321/8765"},
		{"1/3", 1, "0"},
		{"2/3", 1, "1"},
		{"0", 5, "0"},
	} {
		t.Run(tc.in, func(t *testing.T) {
			got, err := rational.MustNew(tc.in).LimitDenominator(tc.maxDen)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

// TestMustNew_Panics ensures MustNew surfaces construction errors as panics.
func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() { rational.MustNew("not a number") })
	assert.NotPanics(t, func() { rational.MustNew(0) })
}
