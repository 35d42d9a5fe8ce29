package visibility_test

import (
	"fmt"

	"chosenoffset.com/isovist/internal/core/visibility"
)

func ExampleCompute() {
	walls := []visibility.Segment{
		visibility.Seg(400, 300, 300, 400),
		visibility.Seg(400, 300, 400, 400),
		visibility.Seg(300, 400, 400, 400),
	}
	poly, err := visibility.Compute(walls, visibility.Pt(375, 375))
	if err != nil {
		fmt.Println(err)
		return
	}
	for i := 0; i < poly.Len(); i++ {
		a, b, id := poly.Edge(i)
		fmt.Printf("(%.0f, %.0f) -> (%.0f, %.0f) wall %d\n", a.X, a.Y, b.X, b.Y, id)
	}
	// Output:
	// (400, 400) -> (300, 400) wall 2
	// (300, 400) -> (400, 300) wall 0
	// (400, 300) -> (400, 400) wall 1
}
