package hull3d

import (
	"math/rand"
	"time"
)

// Option configures the hull computation.
type Option func(*config)

type config struct {
	seed    int64
	seedSet bool
}

// WithSeed fixes the seed of the permutation RNG, making the run
// reproducible. Without it the seed is drawn from the wall clock.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.seedSet = true
	}
}

// ComputeConvexHull computes the convex hull of the given point cloud and
// returns it as a DCEL of triangular faces wound counter-clockwise as seen
// from outside. The input is copied and permuted internally; the caller's
// slice is left untouched.
//
// The input must contain at least four points, not all coplanar; otherwise
// an error wrapping ErrDegenerateInput is returned. Any structural failure
// beyond that is a programming error and panics.
func ComputeConvexHull(points []Point, opts ...Option) (*DCEL, error) {
	if len(points) < 4 {
		return nil, ErrTooFewPoints
	}

	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.seedSet {
		cfg.seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(cfg.seed))

	d := NewDCEL()

	permuted := make([]Point, len(points))
	copy(permuted, points)

	permuted, err := buildTetrahedron(d, permuted, rng)
	if err != nil {
		return nil, err
	}

	cg := newConflictGraph(permuted)
	cg.seed(d)

	for i := 4; i < len(permuted); i++ {
		insertPoint(d, cg, i)
	}

	return d, nil
}

// insertPoint performs one iteration of the incremental loop: it grows the
// hull to cover candidate i, or discards the candidate if the current hull
// already contains it.
func insertPoint(d *DCEL, cg *conflictGraph, candidate int) {
	visibleFaces := cg.facesVisibleFrom(candidate)
	if len(visibleFaces) == 0 {
		// The candidate sees no face: it lies inside the current hull.
		cg.erasePoint(candidate)
		return
	}

	horizon := extractHorizon(visibleFaces)
	candidates := cg.joinPointsOverHorizon(horizon)

	for f := range visibleFaces {
		cg.deleteFace(f)
	}
	destroyFaces(d, visibleFaces)

	apex := d.AddVertex(cg.points[candidate])
	newFaces := buildFan(d, apex, horizon)
	stitchFan(d, newFaces)

	cg.recomputeForNewFaces(newFaces, horizon, candidates)
	cg.erasePoint(candidate)
}

// destroyFaces removes the visible cap from the DCEL: every face record
// and its three half-edges. Endpoint cardinalities drop with each deleted
// half-edge and orphaned vertices disappear with them. The twins on the
// horizon keep pointing at the deleted edges until the new fan overwrites
// them.
func destroyFaces(d *DCEL, faces map[*Face]struct{}) {
	for f := range faces {
		for _, he := range f.HalfEdges() {
			d.DeleteHalfEdge(he)
		}
		d.DeleteFace(f)
	}
}

// buildFan creates one new triangle per horizon edge, each spanning the
// edge's endpoints and the apex. The triangle's boundary runs opposite to
// the horizon edge, so the two glue twin-to-twin; the edges toward the
// apex are stitched to the neighboring fan faces afterwards.
func buildFan(d *DCEL, apex *Vertex, horizon []*HalfEdge) []*Face {
	newFaces := make([]*Face, 0, len(horizon))

	for _, base := range horizon {
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

		newFaces = append(newFaces, f)
	}

	return newFaces
}

// stitchFan wires the twins between adjacent fan faces. The fan is in
// horizon order, so consecutive faces share exactly one edge: the one
// running from the shared horizon vertex to the apex. That edge is Prev of
// the earlier face's outer cycle and Next of the later one's.
func stitchFan(d *DCEL, newFaces []*Face) {
	n := len(newFaces)
	for i, f := range newFaces {
		d.SetTwins(f.Outer.Prev, newFaces[(i+1)%n].Outer.Next)
	}
}
