package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/graphrox/matrix"
)

// ExampleOccurrenceProportion aggregates a 4×4 adjacency into 2×2 blocks.
func ExampleOccurrenceProportion() {
	c := matrix.NewCoordinate()
	c.Insert(0, 1)
	c.Insert(0, 2)
	c.Insert(2, 3)

	bm, _ := matrix.OccurrenceProportion(c, 2)
	fmt.Print(bm)

	approx, _ := bm.Threshold(0.3, false)
	fmt.Print(approx)

	// Output:
	// [1.00, 0.25]
	// [0.25, 1.00]
	// [1, 0]
	// [0, 1]
}
