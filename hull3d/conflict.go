package hull3d

// conflictGraph is the bidirectional incidence between outward faces of
// the current hull and candidate points that lie strictly above them.
// Candidates are identified by their index into the permuted point slice;
// faces by pointer identity. Both directions are kept in sync: a pair is
// either present in both indices or in neither.
//
// Per-key sets are allocated lazily so faces and points that never
// conflict cost nothing.
type conflictGraph struct {
	points []Point

	// visibleBy maps a face to the candidate indices in conflict with it.
	visibleBy map[*Face]map[int]struct{}
	// seenFrom maps a candidate index to the faces in conflict with it.
	seenFrom map[int]map[*Face]struct{}
}

func newConflictGraph(points []Point) *conflictGraph {
	return &conflictGraph{
		points:    points,
		visibleBy: make(map[*Face]map[int]struct{}),
		seenFrom:  make(map[int]map[*Face]struct{}),
	}
}

// seed records a conflict for every (face, candidate) pair of the initial
// tetrahedron where the candidate lies strictly above the face. Candidates
// start at index 4: the first four points are the tetrahedron itself.
func (cg *conflictGraph) seed(d *DCEL) {
	for _, f := range d.Faces {
		for i := 4; i < len(cg.points); i++ {
			if visible(f, cg.points[i]) {
				cg.addConflict(f, i)
			}
		}
	}
}

// addConflict inserts the pair into both indices.
func (cg *conflictGraph) addConflict(f *Face, candidate int) {
	faces, ok := cg.seenFrom[candidate]
	if !ok {
		faces = make(map[*Face]struct{})
		cg.seenFrom[candidate] = faces
	}
	faces[f] = struct{}{}

	candidates, ok := cg.visibleBy[f]
	if !ok {
		candidates = make(map[int]struct{})
		cg.visibleBy[f] = candidates
	}
	candidates[candidate] = struct{}{}
}

// facesVisibleFrom returns a copy of the set of faces in conflict with the
// candidate. Unknown candidates yield an empty set. The copy lets the
// driver delete faces from the graph while iterating the result.
func (cg *conflictGraph) facesVisibleFrom(candidate int) map[*Face]struct{} {
	out := make(map[*Face]struct{}, len(cg.seenFrom[candidate]))
	for f := range cg.seenFrom[candidate] {
		out[f] = struct{}{}
	}

	return out
}

// pointsVisibleFrom returns the candidate indices in conflict with f.
// Unknown faces yield nil, which reads as an empty set.
func (cg *conflictGraph) pointsVisibleFrom(f *Face) map[int]struct{} {
	return cg.visibleBy[f]
}

// deleteFace removes f from the forward index and from the face set of
// every candidate that saw it. Deleting an unknown face is a no-op.
func (cg *conflictGraph) deleteFace(f *Face) {
	for candidate := range cg.visibleBy[f] {
		delete(cg.seenFrom[candidate], f)
	}
	delete(cg.visibleBy, f)
}

// erasePoint removes the candidate from the reverse index and from the
// candidate set of every face that it saw. Erasing an unknown candidate is
// a no-op.
func (cg *conflictGraph) erasePoint(candidate int) {
	for f := range cg.seenFrom[candidate] {
		delete(cg.visibleBy[f], candidate)
	}
	delete(cg.seenFrom, candidate)
}

// joinPointsOverHorizon collects, for every horizon half-edge, the union
// of the candidates in conflict with its two incident faces. When the edge
// becomes the hinge of a new triangle, only candidates already in conflict
// with one of those two faces can possibly conflict with the new triangle,
// so the union is the complete envelope to retest. Must be called before
// the visible faces are deleted.
func (cg *conflictGraph) joinPointsOverHorizon(horizon []*HalfEdge) map[*HalfEdge]map[int]struct{} {
	candidates := make(map[*HalfEdge]map[int]struct{}, len(horizon))
	for _, he := range horizon {
		union := make(map[int]struct{})
		for c := range cg.pointsVisibleFrom(he.Face) {
			union[c] = struct{}{}
		}
		for c := range cg.pointsVisibleFrom(he.Twin.Face) {
			union[c] = struct{}{}
		}
		candidates[he] = union
	}

	return candidates
}

// recomputeForNewFaces tests every new face against the candidate envelope
// of the horizon edge it was built on, recording the conflicts that hold.
// newFaces[i] is the triangle hinged on horizon[i].
func (cg *conflictGraph) recomputeForNewFaces(newFaces []*Face, horizon []*HalfEdge, candidates map[*HalfEdge]map[int]struct{}) {
	for i, f := range newFaces {
		for c := range candidates[horizon[i]] {
			if visible(f, cg.points[c]) {
				cg.addConflict(f, c)
			}
		}
	}
}
