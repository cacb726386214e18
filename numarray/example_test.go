package numarray_test

import (
	"fmt"

	"github.com/katalvlaran/lvlsq/numarray"
)

// ExampleInvalidate shows the poison-and-check primitive on one buffer:
// poisoned slots are detectably invalid until every one is rewritten.
func ExampleInvalidate() {
	xs := make([]float64, 3)

	numarray.Invalidate(xs)
	fmt.Println(numarray.ArrayValid(xs), numarray.FirstInvalid(xs))

	xs[0], xs[1], xs[2] = 1.0, 2.0, 3.0
	fmt.Println(numarray.ArrayValid(xs), numarray.FirstInvalid(xs))
	// Output:
	// false 0
	// true -1
}
