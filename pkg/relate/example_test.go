package relate_test

import (
	"fmt"

	"github.com/matzehuels/rectangles/pkg/geometry"
	"github.com/matzehuels/rectangles/pkg/relate"
)

func ExampleIntersect() {
	a, _ := geometry.NewRect(0, 0, 4, 4)
	b, _ := geometry.NewRect(2, 2, 6, 6)

	res := relate.Intersect(a, b)
	fmt.Println(res.Kind, res.Area)
	// Output: area (2, 2) → (4, 4)
}

func ExampleContainment() {
	a, _ := geometry.NewRect(2, 2, 8, 8)
	b, _ := geometry.NewRect(0, 0, 10, 10)

	fmt.Println(relate.Containment(a, b))
	fmt.Println(relate.Containment(b, a))
	// Output:
	// a_in_b
	// b_in_a
}

func ExampleAdjacent() {
	a, _ := geometry.NewRect(0, 0, 4, 4)
	b, _ := geometry.NewRect(4, 0, 8, 4)

	adj := relate.Adjacent(a, b)
	fmt.Println(adj.Kind, adj.Segment)
	// Output: proper (4, 0) → (4, 4)
}
