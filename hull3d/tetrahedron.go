package hull3d

import "math/rand"

// maxShuffleAttempts bounds the re-permutation loop of the tetrahedron
// bootstrap. An input whose every leading four-point subset stays coplanar
// for this many uniform shuffles is reported as degenerate rather than
// looping forever.
const maxShuffleAttempts = 1024

// buildTetrahedron permutes points uniformly, finds a leading four-point
// subset that is affinely independent, and emits an oriented tetrahedron
// into the empty DCEL d. The returned slice is the successful permutation;
// the hull driver inserts the remaining points starting at index 4.
//
// The seed face is wound so that points[3] lies strictly inside the
// tetrahedron, which establishes the counter-clockwise-from-outside
// orientation for every face built afterwards.
func buildTetrahedron(d *DCEL, points []Point, rng *rand.Rand) ([]Point, error) {
	orientation := 0
	for attempt := 0; attempt < maxShuffleAttempts; attempt++ {
		rng.Shuffle(len(points), func(i, j int) {
			points[i], points[j] = points[j], points[i]
		})

		orientation = Sign4(points[0], points[1], points[2], points[3])
		if orientation != 0 {
			break
		}
	}
	if orientation == 0 {
		return nil, ErrCoplanarInput
	}

	v1 := d.AddVertex(points[0])
	v2 := d.AddVertex(points[1])
	v3 := d.AddVertex(points[2])
	v4 := d.AddVertex(points[3])

	h1 := d.AddHalfEdge()
	h2 := d.AddHalfEdge()
	h3 := d.AddHalfEdge()

	// The winding of the seed face depends on which side of it points[3]
	// lies. A positive determinant means points[3] is already below the
	// plane of (v1, v2, v3); a negative one requires the reversed cycle.
	if orientation == 1 {
		wireSeedEdge(h1, v1, v2, h2, h3)
		wireSeedEdge(h2, v2, v3, h3, h1)
		wireSeedEdge(h3, v3, v1, h1, h2)
	} else {
		wireSeedEdge(h1, v2, v1, h3, h2)
		wireSeedEdge(h2, v3, v2, h1, h3)
		wireSeedEdge(h3, v1, v3, h2, h1)
	}

	v1.cardinality = 2
	v2.cardinality = 2
	v3.cardinality = 2

	seed := d.AddFace()
	seed.Outer = h1
	h1.Face = seed
	h2.Face = seed
	h3.Face = seed

	addTetrahedronFace(d, v4, h1)
	addTetrahedronFace(d, v4, h2)
	addTetrahedronFace(d, v4, h3)

	return points, nil
}

// wireSeedEdge sets the endpoints and cycle neighbors of one seed-face
// half-edge and records it as an incident edge of its origin.
func wireSeedEdge(he *HalfEdge, from, to *Vertex, next, prev *HalfEdge) {
	he.From = from
	he.To = to
	he.Next = next
	he.Prev = prev
	from.Incident = he
}

// addTetrahedronFace closes one side of the tetrahedron: it builds the
// triangle spanning base's endpoints and the apex, glued twin-to-twin onto
// base. The twins toward sibling cap faces are reachable through the seed
// face once those siblings exist, so after the third call all six internal
// twin pairs are established.
func addTetrahedronFace(d *DCEL, apex *Vertex, base *HalfEdge) {
	from := base.From
	to := base.To

	he1 := d.AddHalfEdge()
	he1.From = to
	he1.To = from

	he2 := d.AddHalfEdge()
	he2.From = from
	he2.To = apex

	he3 := d.AddHalfEdge()
	he3.From = apex
	he3.To = to

	he1.Next = he2
	he1.Prev = he3
	he2.Next = he3
	he2.Prev = he1
	he3.Next = he1
	he3.Prev = he2

	to.Incident = he1
	from.Incident = he2
	apex.Incident = he3

	d.SetTwins(he1, base)

	// The sibling cap face over base.Prev, if built already, contributes
	// the twin of he2; likewise base.Next's cap face for he3.
	if base.Prev.Twin != nil {
		d.SetTwins(he2, base.Prev.Twin.Prev)
	}
	if base.Next.Twin != nil {
		d.SetTwins(he3, base.Next.Twin.Next)
	}

	from.IncrementCardinality()
	from.IncrementCardinality()
	to.IncrementCardinality()
	to.IncrementCardinality()
	apex.IncrementCardinality()
	apex.IncrementCardinality()

	f := d.AddFace()
	f.Outer = he1
	he1.Face = f
	he2.Face = f
	he3.Face = f
}
