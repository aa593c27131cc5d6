// SPDX-License-Identifier: MIT
// Package rational: construction of Rat from arbitrary Go numeric input.
//
// Exactness policy:
//   - Integers, *big.Int, *big.Rat and Rat are taken as-is.
//   - Strings are parsed exactly by big.Rat.SetString ("3/4", "-1.25", "1e-3").
//   - Floats carry binary rounding error (0.1 is not 1/10), so they are first
//     converted exactly and then replaced by the closest fraction whose
//     denominator does not exceed the configured bound.

package rational

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// DefaultMaxDenominator bounds the denominator of fractions produced from
// float input. One million keeps every float literal with up to six decimal
// places exact (0.000001 → 1/1000000).
const DefaultMaxDenominator int64 = 1_000_000

// New converts v into a Rat in lowest terms.
// Floats are approximated with DefaultMaxDenominator; see NewLimited.
//
// Supported inputs:
//   - int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64
//   - float32, float64 (finite only)
//   - string: integer, "p/q", or decimal/scientific notation; whitespace is trimmed
//   - *big.Int, *big.Rat (non-nil), Rat, *Rat (non-nil)
//
// Errors:
//   - ErrInvalidValue for NaN/±Inf, malformed or zero-denominator strings,
//     nil pointers and unsupported types.
func New(v any) (Rat, error) {
	return NewLimited(v, DefaultMaxDenominator)
}

// NewLimited is New with an explicit denominator bound for float input.
// The bound does not apply to exact inputs.
//
// Errors:
//   - ErrBadDenominatorLimit if maxDen < 1.
//   - ErrInvalidValue as in New.
func NewLimited(v any, maxDen int64) (Rat, error) {
	if maxDen < 1 {
		return Rat{}, ErrBadDenominatorLimit
	}

	switch t := v.(type) {
	case Rat:
		return t, nil
	case *Rat:
		if t == nil {
			return Rat{}, fmt.Errorf("%w: nil *Rat", ErrInvalidValue)
		}
		return *t, nil
	case int:
		return FromInt64(int64(t)), nil
	case int8:
		return FromInt64(int64(t)), nil
	case int16:
		return FromInt64(int64(t)), nil
	case int32:
		return FromInt64(int64(t)), nil
	case int64:
		return FromInt64(t), nil
	case uint:
		return fromUint64(uint64(t)), nil
	case uint8:
		return fromUint64(uint64(t)), nil
	case uint16:
		return fromUint64(uint64(t)), nil
	case uint32:
		return fromUint64(uint64(t)), nil
	case uint64:
		return fromUint64(t), nil
	case float32:
		return fromFloat64(float64(t), maxDen)
	case float64:
		return fromFloat64(t, maxDen)
	case string:
		return fromString(t)
	case *big.Int:
		if t == nil {
			return Rat{}, fmt.Errorf("%w: nil *big.Int", ErrInvalidValue)
		}
		return wrap(new(big.Rat).SetInt(t)), nil
	case *big.Rat:
		if t == nil {
			return Rat{}, fmt.Errorf("%w: nil *big.Rat", ErrInvalidValue)
		}
		return wrap(new(big.Rat).Set(t)), nil
	default:
		return Rat{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidValue, v)
	}
}

// MustNew is like New but panics on error.
// Intended for literals in tests and examples.
func MustNew(v any) Rat {
	r, err := New(v)
	if err != nil {
		panic(err)
	}

	return r
}

func fromUint64(u uint64) Rat {
	return wrap(new(big.Rat).SetInt(new(big.Int).SetUint64(u)))
}

// fromFloat64 converts f exactly, then bounds the denominator.
func fromFloat64(f float64, maxDen int64) (Rat, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Rat{}, fmt.Errorf("%w: %v", ErrInvalidValue, f)
	}
	exact := new(big.Rat).SetFloat64(f) // non-nil for finite f

	return wrap(limitDenominator(exact, big.NewInt(maxDen))), nil
}

func fromString(s string) (Rat, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rat{}, fmt.Errorf("%w: empty string", ErrInvalidValue)
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rat{}, fmt.Errorf("%w: cannot parse %q", ErrInvalidValue, s)
	}

	return wrap(r), nil
}

// LimitDenominator returns the closest Rat to x whose denominator is at most
// maxDen. If x already satisfies the bound it is returned unchanged.
// When two candidates are equally close, the last full convergent wins.
//
// Errors:
//   - ErrBadDenominatorLimit if maxDen < 1.
//
// Complexity: O(log(den)) big-integer steps (continued fraction expansion).
func (x Rat) LimitDenominator(maxDen int64) (Rat, error) {
	if maxDen < 1 {
		return Rat{}, ErrBadDenominatorLimit
	}
	if x.v == nil {
		return Rat{}, nil
	}

	return wrap(limitDenominator(x.v, big.NewInt(maxDen))), nil
}

// limitDenominator walks the continued fraction of |x| until the next
// convergent's denominator would exceed maxDen, then picks the closer of the
// last convergent p1/q1 and the best semiconvergent (p0+k·p1)/(q0+k·q1).
// Always returns a fresh *big.Rat.
func limitDenominator(x *big.Rat, maxDen *big.Int) *big.Rat {
	if x.Denom().Cmp(maxDen) <= 0 {
		return new(big.Rat).Set(x)
	}

	target := new(big.Rat).Abs(x)
	n := new(big.Int).Set(target.Num())
	d := new(big.Int).Set(target.Denom())

	p0, q0 := big.NewInt(0), big.NewInt(1)
	p1, q1 := big.NewInt(1), big.NewInt(0)
	a, q2 := new(big.Int), new(big.Int)
	for {
		a.Quo(n, d) // n, d >= 0 so truncation is floor
		q2.Mul(a, q1)
		q2.Add(q2, q0)
		if q2.Cmp(maxDen) > 0 {
			break
		}
		p2 := new(big.Int).Mul(a, p1)
		p2.Add(p2, p0)
		p0, q0, p1, q1 = p1, q1, p2, new(big.Int).Set(q2)

		rem := new(big.Int).Mul(a, d)
		rem.Sub(n, rem)
		n, d = d, rem
	}

	// k = (maxDen - q0) / q1; q1 >= 1 because the first step always fits.
	k := new(big.Int).Sub(maxDen, q0)
	k.Quo(k, q1)

	semiP := new(big.Int).Mul(k, p1)
	semiP.Add(semiP, p0)
	semiQ := new(big.Int).Mul(k, q1)
	semiQ.Add(semiQ, q0)

	bound1 := new(big.Rat).SetFrac(semiP, semiQ)
	bound2 := new(big.Rat).SetFrac(p1, q1)

	dist1 := new(big.Rat).Sub(bound1, target)
	dist1.Abs(dist1)
	dist2 := new(big.Rat).Sub(bound2, target)
	dist2.Abs(dist2)

	best := bound1
	if dist2.Cmp(dist1) <= 0 {
		best = bound2
	}
	if x.Sign() < 0 {
		best.Neg(best)
	}

	return best
}
