package hull3d

import (
	"fmt"
	"math/rand"
	"testing"
)

// randomCloud samples n points from a standard normal distribution, which
// puts them in general position with probability one.
func randomCloud(n int, seed int64) []Point {
	rng := rand.New(rand.NewSource(seed))
	points := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		points = append(points, Point{
			rng.NormFloat64(),
			rng.NormFloat64(),
			rng.NormFloat64(),
		})
	}

	return points
}

// TestHullInvariantsOnRandomClouds checks the universal hull invariants
// across cloud sizes and seeds: structural DCEL validity, Euler's formula,
// outward winding, convexity, and containment of every input point.
func TestHullInvariantsOnRandomClouds(t *testing.T) {
	sizes := []int{10, 25, 60, 120}

	for _, size := range sizes {
		for seed := int64(1); seed <= 4; seed++ {
			name := fmt.Sprintf("n=%d/seed=%d", size, seed)
			t.Run(name, func(t *testing.T) {
				points := randomCloud(size, seed*1000+int64(size))

				hull, err := ComputeConvexHull(points, WithSeed(seed))
				if err != nil {
					t.Fatalf("ComputeConvexHull failed: %v", err)
				}

				if err := hull.Validate(); err != nil {
					t.Fatalf("invalid hull: %v", err)
				}

				if chi := hull.EulerCharacteristic(); chi != 2 {
					t.Errorf("Euler characteristic: got %d, expected 2", chi)
				}

				// Simplicial polytope: F = 2V - 4 and E = 3V - 6.
				v := len(hull.Vertices)
				if len(hull.Faces) != 2*v-4 {
					t.Errorf("face count: got %d, expected %d", len(hull.Faces), 2*v-4)
				}
				if hull.EdgeCount() != 3*v-6 {
					t.Errorf("edge count: got %d, expected %d", hull.EdgeCount(), 3*v-6)
				}

				for _, p := range points {
					if !hull.Contains(p) {
						t.Errorf("input point %v escapes the hull", p)
					}
				}
			})
		}
	}
}

// TestHullOfHullIsStable recomputes the hull of a hull's own vertex set
// and expects the same vertex and face counts.
func TestHullOfHullIsStable(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		points := randomCloud(80, seed)

		first, err := ComputeConvexHull(points, WithSeed(seed))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}

		vertices := make([]Point, 0, len(first.Vertices))
		for _, v := range first.Vertices {
			vertices = append(vertices, v.Position)
		}

		second, err := ComputeConvexHull(vertices, WithSeed(seed+100))
		if err != nil {
			t.Fatalf("seed %d, second pass: %v", seed, err)
		}

		if len(second.Vertices) != len(first.Vertices) {
			t.Errorf("seed %d: vertex count changed from %d to %d",
				seed, len(first.Vertices), len(second.Vertices))
		}
		if len(second.Faces) != len(first.Faces) {
			t.Errorf("seed %d: face count changed from %d to %d",
				seed, len(first.Faces), len(second.Faces))
		}
	}
}

// TestHullVerticesComeFromInput checks that every hull vertex position is
// one of the input points, bit for bit: construction never synthesizes
// coordinates.
func TestHullVerticesComeFromInput(t *testing.T) {
	points := randomCloud(50, 7)
	index := make(map[Point]struct{}, len(points))
	for _, p := range points {
		index[p] = struct{}{}
	}

	hull, err := ComputeConvexHull(points, WithSeed(7))
	if err != nil {
		t.Fatal(err)
	}

	for _, v := range hull.Vertices {
		if _, ok := index[v.Position]; !ok {
			t.Errorf("hull vertex %v is not an input point", v.Position)
		}
	}
}
