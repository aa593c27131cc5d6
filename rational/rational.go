// SPDX-License-Identifier: MIT

package rational

import "math/big"

// ratZero backs the zero value Rat{}. It is shared and must never be mutated.
var ratZero = new(big.Rat)

// Rat is an immutable exact rational number.
// The wrapped *big.Rat is owned exclusively by this value: every method
// allocates a fresh result and never writes to its receiver or arguments,
// so Rat values may be copied and shared freely.
//
// The zero value is 0.
type Rat struct {
	v *big.Rat // nil means 0
}

// Zero returns 0.
func Zero() Rat { return Rat{} }

// One returns 1.
func One() Rat { return FromInt64(1) }

// FromInt64 returns n/1.
// Complexity: O(1).
func FromInt64(n int64) Rat {
	return Rat{v: new(big.Rat).SetInt64(n)}
}

// FromFrac returns num/den in lowest terms.
// Returns ErrDivisionByZero if den == 0.
func FromFrac(num, den int64) (Rat, error) {
	if den == 0 {
		return Rat{}, ErrDivisionByZero
	}

	return Rat{v: big.NewRat(num, den)}, nil
}

// wrap takes ownership of r.
func wrap(r *big.Rat) Rat { return Rat{v: r} }

// rat returns the backing value for read-only use.
func (x Rat) rat() *big.Rat {
	if x.v == nil {
		return ratZero
	}

	return x.v
}

// Add returns x + y.
func (x Rat) Add(y Rat) Rat {
	return wrap(new(big.Rat).Add(x.rat(), y.rat()))
}

// Sub returns x - y.
func (x Rat) Sub(y Rat) Rat {
	return wrap(new(big.Rat).Sub(x.rat(), y.rat()))
}

// Mul returns x * y.
func (x Rat) Mul(y Rat) Rat {
	return wrap(new(big.Rat).Mul(x.rat(), y.rat()))
}

// Neg returns -x.
func (x Rat) Neg() Rat {
	return wrap(new(big.Rat).Neg(x.rat()))
}

// Inv returns 1/x.
// Returns ErrDivisionByZero if x is zero.
func (x Rat) Inv() (Rat, error) {
	if x.IsZero() {
		return Rat{}, ErrDivisionByZero
	}

	return wrap(new(big.Rat).Inv(x.rat())), nil
}

// Quo returns x / y.
// Returns ErrDivisionByZero if y is zero.
func (x Rat) Quo(y Rat) (Rat, error) {
	if y.IsZero() {
		return Rat{}, ErrDivisionByZero
	}

	return wrap(new(big.Rat).Quo(x.rat(), y.rat())), nil
}

// IsZero reports whether x is exactly 0.
func (x Rat) IsZero() bool {
	return x.rat().Sign() == 0
}

// IsOne reports whether x is exactly 1.
func (x Rat) IsOne() bool {
	b := x.rat()

	return b.IsInt() && b.Num().IsInt64() && b.Num().Int64() == 1
}

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x Rat) Sign() int {
	return x.rat().Sign()
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Rat) Cmp(y Rat) int {
	return x.rat().Cmp(y.rat())
}

// Equal reports whether x and y denote the same number.
func (x Rat) Equal(y Rat) bool {
	return x.Cmp(y) == 0
}

// Num returns a copy of the numerator of x. It may be negative or zero.
func (x Rat) Num() *big.Int {
	return new(big.Int).Set(x.rat().Num())
}

// Denom returns a copy of the denominator of x. It is always > 0.
func (x Rat) Denom() *big.Int {
	if x.v == nil {
		return big.NewInt(1) // ratZero stays untouched
	}

	return new(big.Int).Set(x.rat().Denom())
}

// Big returns a copy of x as a *big.Rat. Mutating the result does not affect x.
func (x Rat) Big() *big.Rat {
	return new(big.Rat).Set(x.rat())
}

// String renders x as "a/b", or as "a" when the denominator is 1
// (e.g. "3/4", "-2", "0").
func (x Rat) String() string {
	return x.rat().RatString()
}
