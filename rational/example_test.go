package rational_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/rowreduce/rational"
)

// ExampleNew shows exact construction from mixed Go inputs.
func ExampleNew() {
	a, _ := rational.New("3/4")
	b, _ := rational.New(0.25) // float input is approximated to 1/4
	c, _ := rational.New(-2)

	fmt.Println(a.Add(b))
	fmt.Println(a.Mul(c))

	_, err := rational.New(math.NaN())
	fmt.Println(errors.Is(err, rational.ErrInvalidValue))

	// Output:
	// 1
	// -3/2
	// true
}

// ExampleRat_LimitDenominator approximates π with small denominators.
func ExampleRat_LimitDenominator() {
	pi := rational.MustNew("3.141592653589793")
	for _, d := range []int64{10, 100, 1000} {
		r, _ := pi.LimitDenominator(d)
		fmt.Println(d, r)
	}

	// Output:
	// 10 22/7
	// 100 311/99
	// 1000 355/113
}
