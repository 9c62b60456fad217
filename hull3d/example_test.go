package hull3d_test

import (
	"fmt"
	"log"

	"github.com/sksmith/hull3d/hull3d"
)

func ExampleComputeConvexHull() {
	points := []hull3d.Point{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
		{0.1, 0.1, 0.1}, // interior, discarded
	}

	hull, err := hull3d.ComputeConvexHull(points, hull3d.WithSeed(42))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(hull.Stats())
	// Output: V=6, E=12, F=8, χ=2
}

func ExampleDCEL_Validate() {
	points := []hull3d.Point{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1},
	}

	hull, err := hull3d.ComputeConvexHull(points, hull3d.WithSeed(1))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(hull.Validate())
	// Output: <nil>
}
