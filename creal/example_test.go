package creal_test

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/numring/creal"
)

// ExampleReal_Approx evaluates a lazy expression to a chosen precision.
func ExampleReal_Approx() {
	third := creal.FromRat(big.NewRat(1, 3))
	sum := third.Add(third).Add(third)
	fmt.Println(sum.Approx(8).Cmp(big.NewRat(1, 1)) == 0)
	// Output:
	// true
}
