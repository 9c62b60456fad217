package hull3d

import "fmt"

// extractHorizon returns the horizon of the visible region: the ordered
// closed cycle of half-edges separating the visible faces from the hidden
// ones. The returned edges belong to the surviving (hidden) faces, so they
// outlive the destruction of the visible cap and become the hinges for the
// new triangle fan.
//
// Because the current hull is convex, the faces visible from an external
// point form a topological disk, so the horizon is a simple closed polygon
// and the from-vertex adjacency collected below is a bijection on it. A
// cycle that cannot close means the DCEL invariants were violated, which
// is fatal.
func extractHorizon(visible map[*Face]struct{}) []*HalfEdge {
	// A visible face's half-edge whose twin lies in a hidden face marks
	// the boundary; the twin itself is the horizon edge.
	byFrom := make(map[*Vertex]*HalfEdge)

	var first *HalfEdge
	count := 0
	for f := range visible {
		for _, he := range f.HalfEdges() {
			if he.Twin == nil {
				panic(fmt.Sprintf("hull3d: half-edge %d has no twin during horizon extraction", he.ID))
			}
			if _, ok := visible[he.Twin.Face]; ok {
				continue
			}
			byFrom[he.Twin.From] = he.Twin
			if first == nil {
				first = he.Twin
			}
			count++
		}
	}

	if first == nil {
		panic("hull3d: visible region has no horizon")
	}

	horizon := make([]*HalfEdge, 0, count)
	horizon = append(horizon, first)
	for cursor := first.To; cursor != first.From; {
		next, ok := byFrom[cursor]
		if !ok {
			panic(fmt.Sprintf("hull3d: horizon does not close at vertex %d", cursor.ID))
		}
		horizon = append(horizon, next)
		cursor = next.To
	}

	if len(horizon) != count {
		panic(fmt.Sprintf("hull3d: horizon cycle covers %d of %d boundary edges", len(horizon), count))
	}

	return horizon
}
