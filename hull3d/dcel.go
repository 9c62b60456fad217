// Package hull3d computes 3D convex hulls by randomized incremental
// construction. The hull is represented as a doubly-connected edge list
// (DCEL): every undirected edge is stored as a pair of oppositely directed
// half-edges, each belonging to exactly one triangular face.
//
// See ComputeConvexHull for the entry point and the package documentation
// at the module root for an overview.
package hull3d

import "fmt"

// Vertex is a corner of the hull. It stores its position, one arbitrary
// outgoing half-edge, and a cardinality counter: the number of half-edges
// for which this vertex is either endpoint. A vertex is removed from the
// DCEL when its cardinality drops to zero.
type Vertex struct {
	ID          int
	Position    Point
	Incident    *HalfEdge // one of the half-edges leaving this vertex
	cardinality int
}

// Cardinality returns the number of half-edges incident to the vertex,
// counting each direction once.
func (v *Vertex) Cardinality() int {
	return v.cardinality
}

// IncrementCardinality records one more half-edge incident to v.
func (v *Vertex) IncrementCardinality() {
	v.cardinality++
}

// DecrementCardinality records one fewer half-edge incident to v.
// Underflow is a programming error.
func (v *Vertex) DecrementCardinality() {
	if v.cardinality == 0 {
		panic(fmt.Sprintf("hull3d: cardinality underflow on vertex %d", v.ID))
	}
	v.cardinality--
}

// HalfEdge is a directed edge of the hull. Next and Prev walk the boundary
// cycle of Face counter-clockwise; Twin is the oppositely directed
// half-edge of the adjacent face. Twin may be nil only transiently while a
// face fan is being stitched.
type HalfEdge struct {
	ID   int
	From *Vertex
	To   *Vertex
	Next *HalfEdge
	Prev *HalfEdge
	Twin *HalfEdge
	Face *Face
}

// Face is a triangular face of the hull. Its boundary cycle is reached
// from Outer via Next and is wound counter-clockwise as seen from outside
// the hull.
type Face struct {
	ID    int
	Outer *HalfEdge
}

// HalfEdges returns the three boundary half-edges of f in cycle order,
// starting from Outer.
func (f *Face) HalfEdges() []*HalfEdge {
	he := f.Outer
	return []*HalfEdge{he, he.Next, he.Next.Next}
}

// Vertices returns the three corners of f in counter-clockwise order as
// seen from outside the hull.
func (f *Face) Vertices() []*Vertex {
	he := f.Outer
	return []*Vertex{he.From, he.Next.From, he.Next.Next.From}
}

// Normal returns the outward normal of f. It is not normalized; callers
// that need a unit vector can call Normalize on the result.
func (f *Face) Normal() Point {
	vs := f.Vertices()
	return vs[1].Position.Sub(vs[0].Position).Cross(vs[2].Position.Sub(vs[0].Position))
}

// Centroid returns the average position of the three corners of f.
func (f *Face) Centroid() Point {
	vs := f.Vertices()
	return vs[0].Position.Add(vs[1].Position).Add(vs[2].Position).Mul(1.0 / 3.0)
}

// Area returns the area of f.
func (f *Face) Area() float64 {
	return f.Normal().Len() * 0.5
}

// DCEL is the polyhedral mesh container. It owns all vertex, half-edge and
// face records; the conflict graph and the hull driver hold only pointers
// into it. A DCEL must be confined to a single goroutine.
type DCEL struct {
	Vertices  map[int]*Vertex
	HalfEdges map[int]*HalfEdge
	Faces     map[int]*Face
	nextID    int
}

// NewDCEL creates an empty DCEL.
func NewDCEL() *DCEL {
	return &DCEL{
		Vertices:  make(map[int]*Vertex),
		HalfEdges: make(map[int]*HalfEdge),
		Faces:     make(map[int]*Face),
	}
}

func (d *DCEL) getNextID() int {
	d.nextID++
	return d.nextID
}

// AddVertex creates a new vertex at the given position with zero
// cardinality and no incident half-edge.
func (d *DCEL) AddVertex(pos Point) *Vertex {
	v := &Vertex{ID: d.getNextID(), Position: pos}
	d.Vertices[v.ID] = v

	return v
}

// AddHalfEdge creates a new half-edge with all neighbor references unset.
func (d *DCEL) AddHalfEdge() *HalfEdge {
	he := &HalfEdge{ID: d.getNextID()}
	d.HalfEdges[he.ID] = he

	return he
}

// AddFace creates a new face with no outer half-edge.
func (d *DCEL) AddFace() *Face {
	f := &Face{ID: d.getNextID()}
	d.Faces[f.ID] = f

	return f
}

// SetTwins links h and t as each other's twin. Twins are always set
// symmetrically so that h.Twin.Twin == h holds at every observation point.
func (d *DCEL) SetTwins(h, t *HalfEdge) {
	h.Twin = t
	t.Twin = h
}

// DeleteHalfEdge removes he from the DCEL and decrements the cardinality
// of both endpoints. An endpoint whose cardinality reaches zero is deleted
// as well. The twin of he is left untouched; removing it is the caller's
// responsibility.
func (d *DCEL) DeleteHalfEdge(he *HalfEdge) {
	if _, ok := d.HalfEdges[he.ID]; !ok {
		panic(fmt.Sprintf("hull3d: delete of unknown half-edge %d", he.ID))
	}
	delete(d.HalfEdges, he.ID)

	for _, v := range []*Vertex{he.From, he.To} {
		if v == nil {
			continue
		}
		v.DecrementCardinality()
		if v.cardinality == 0 {
			d.DeleteVertex(v)
		}
	}
}

// DeleteFace removes the face record from the DCEL. Its half-edges are not
// removed; the caller deletes them separately.
func (d *DCEL) DeleteFace(f *Face) {
	if _, ok := d.Faces[f.ID]; !ok {
		panic(fmt.Sprintf("hull3d: delete of unknown face %d", f.ID))
	}
	delete(d.Faces, f.ID)
}

// DeleteVertex removes a vertex with zero cardinality from the DCEL.
func (d *DCEL) DeleteVertex(v *Vertex) {
	if v.cardinality != 0 {
		panic(fmt.Sprintf("hull3d: delete of vertex %d with cardinality %d", v.ID, v.cardinality))
	}
	delete(d.Vertices, v.ID)
}

// Reset clears all contents, returning the DCEL to its empty state.
func (d *DCEL) Reset() {
	d.Vertices = make(map[int]*Vertex)
	d.HalfEdges = make(map[int]*HalfEdge)
	d.Faces = make(map[int]*Face)
	d.nextID = 0
}

// FaceList returns all faces in unspecified order.
func (d *DCEL) FaceList() []*Face {
	faces := make([]*Face, 0, len(d.Faces))
	for _, f := range d.Faces {
		faces = append(faces, f)
	}

	return faces
}

// VertexList returns all vertices in unspecified order.
func (d *DCEL) VertexList() []*Vertex {
	vertices := make([]*Vertex, 0, len(d.Vertices))
	for _, v := range d.Vertices {
		vertices = append(vertices, v)
	}

	return vertices
}

// EdgeCount returns the number of undirected edges: each topological edge
// is stored as a pair of half-edges.
func (d *DCEL) EdgeCount() int {
	return len(d.HalfEdges) / 2
}

// EulerCharacteristic returns V - E + F, counting each half-edge pair as
// one edge. For every closed polyhedron this equals 2.
func (d *DCEL) EulerCharacteristic() int {
	return len(d.Vertices) - d.EdgeCount() + len(d.Faces)
}

// Centroid returns the average position of all vertices.
func (d *DCEL) Centroid() Point {
	if len(d.Vertices) == 0 {
		return Point{}
	}

	sum := Point{}
	for _, v := range d.Vertices {
		sum = sum.Add(v.Position)
	}

	return sum.Mul(1.0 / float64(len(d.Vertices)))
}
