// Package hull3d computes three-dimensional convex hulls using randomized
// incremental construction over a doubly-connected edge list (DCEL).
//
// The algorithm builds an initial tetrahedron from four affinely independent
// points, then inserts the remaining points one at a time in random order.
// Each insertion finds the faces visible from the new point through a
// conflict graph, removes that visible cap, and stitches a fan of new
// triangles to the horizon, the closed cycle of edges separating visible
// from hidden faces. The expected running time is O(n log n).
//
// # Basic Usage
//
// The single entry point is ComputeConvexHull:
//
//	hull, err := hull3d.ComputeConvexHull(points)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Printf("Hull: %s\n", hull.Stats())
//
// Points are mgl64.Vec3 values (aliased as hull3d.Point). The input must
// contain at least four points that are not all coplanar; anything less
// yields a degenerate-input error.
//
// # Reproducibility
//
// The insertion order is randomized. Supply a fixed seed to make runs
// reproducible:
//
//	hull, err := hull3d.ComputeConvexHull(points, hull3d.WithSeed(42))
//
// The hull topology is independent of the seed; only internal identifiers
// differ between runs.
//
// # Reading the Result
//
// The returned DCEL exposes the hull's faces, half-edges and vertices. All
// faces are triangles wound counter-clockwise when viewed from outside, so
// the outward normal of a face is the cross product of two consecutive
// boundary edges:
//
//	for _, f := range hull.FaceList() {
//		fmt.Println(f.Vertices(), f.Normal())
//	}
//
// # Validation
//
// Every returned hull can be checked against the structural invariants of a
// convex polytope:
//
//	if err := hull.Validate(); err != nil {
//		log.Printf("invalid hull: %v", err)
//	}
//
// Validation covers triangularity, twin symmetry, face-cycle closure,
// Euler's formula (V - E + F = 2), outward winding and convexity.
//
// # Concurrency
//
// The library is single-threaded. A DCEL and the builder that produces it
// must be confined to one goroutine; concurrent access is undefined.
package hull3d
