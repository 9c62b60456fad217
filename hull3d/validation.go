package hull3d

import "fmt"

// ValidationError represents an error in hull validation.
type ValidationError struct {
	Type    string
	Message string
}

func (ve ValidationError) Error() string {
	return fmt.Sprintf("%s validation error: %s", ve.Type, ve.Message)
}

// convexityTolerance absorbs the floating-point drift accumulated across
// incremental construction when testing vertices against face planes.
const convexityTolerance = 1e-9

// ValidateTopology checks the structural DCEL invariants:
//   - every face boundary is a closed triangle (Next chain of length 3)
//   - Next/Prev are mutually inverse and stay within the face
//   - twins are symmetric and oppositely directed
//   - every vertex cardinality matches its actual incidence count
//   - Euler's formula V - E + F = 2 holds
func (d *DCEL) ValidateTopology() error {
	if euler := d.EulerCharacteristic(); euler != 2 {
		return ValidationError{
			Type:    "Topology",
			Message: fmt.Sprintf("invalid Euler characteristic: %d (expected 2)", euler),
		}
	}

	for _, f := range d.Faces {
		if f.Outer == nil {
			return ValidationError{
				Type:    "Topology",
				Message: fmt.Sprintf("face %d has no outer half-edge", f.ID),
			}
		}
		if f.Outer.Next.Next.Next != f.Outer {
			return ValidationError{
				Type:    "Topology",
				Message: fmt.Sprintf("face %d boundary is not a triangle", f.ID),
			}
		}
	}

	for _, he := range d.HalfEdges {
		if err := validateHalfEdge(he); err != nil {
			return err
		}
	}

	incidence := make(map[*Vertex]int, len(d.Vertices))
	for _, he := range d.HalfEdges {
		incidence[he.From]++
		incidence[he.To]++
	}
	for _, v := range d.Vertices {
		if incidence[v] != v.cardinality {
			return ValidationError{
				Type:    "Topology",
				Message: fmt.Sprintf("vertex %d cardinality %d, actual incidence %d", v.ID, v.cardinality, incidence[v]),
			}
		}
	}

	return nil
}

func validateHalfEdge(he *HalfEdge) error {
	if he.Next.Prev != he || he.Prev.Next != he {
		return ValidationError{
			Type:    "Topology",
			Message: fmt.Sprintf("half-edge %d Next/Prev are not mutually inverse", he.ID),
		}
	}
	if he.Next.Face != he.Face {
		return ValidationError{
			Type:    "Topology",
			Message: fmt.Sprintf("half-edge %d Next leaves its face", he.ID),
		}
	}
	if he.Next.From != he.To {
		return ValidationError{
			Type:    "Topology",
			Message: fmt.Sprintf("half-edge %d Next does not start at its head", he.ID),
		}
	}

	if he.Twin == nil {
		return ValidationError{
			Type:    "Topology",
			Message: fmt.Sprintf("half-edge %d has no twin", he.ID),
		}
	}
	if he.Twin.Twin != he {
		return ValidationError{
			Type:    "Topology",
			Message: fmt.Sprintf("half-edge %d twin is not symmetric", he.ID),
		}
	}
	if he.Twin.From != he.To || he.Twin.To != he.From {
		return ValidationError{
			Type:    "Topology",
			Message: fmt.Sprintf("half-edge %d twin is not oppositely directed", he.ID),
		}
	}

	return nil
}

// ValidateWinding checks that every face is wound counter-clockwise as
// seen from outside: its outward normal must not point back toward the
// hull centroid.
func (d *DCEL) ValidateWinding() error {
	centroid := d.Centroid()

	for _, f := range d.Faces {
		outward := f.Centroid().Sub(centroid)
		if f.Normal().Dot(outward) <= 0 {
			return ValidationError{
				Type:    "Winding",
				Message: fmt.Sprintf("face %d normal points inward", f.ID),
			}
		}
	}

	return nil
}

// ValidateConvexity checks that every vertex lies in the non-positive
// half-space of every face it is not incident to, within tolerance.
func (d *DCEL) ValidateConvexity() error {
	for _, f := range d.Faces {
		corners := f.Vertices()
		base := corners[0].Position
		normal := f.Normal()

		for _, v := range d.Vertices {
			if v == corners[0] || v == corners[1] || v == corners[2] {
				continue
			}
			if v.Position.Sub(base).Dot(normal) > convexityTolerance*normal.Len() {
				return ValidationError{
					Type:    "Convexity",
					Message: fmt.Sprintf("vertex %d lies above face %d", v.ID, f.ID),
				}
			}
		}
	}

	return nil
}

// ValidateGeometry checks for degenerate elements: zero-length edges and
// zero-area faces.
func (d *DCEL) ValidateGeometry() error {
	const minEdgeLength = 1e-12
	for _, he := range d.HalfEdges {
		if he.To.Position.Sub(he.From.Position).Len() < minEdgeLength {
			return ValidationError{
				Type:    "Geometry",
				Message: fmt.Sprintf("half-edge %d has degenerate length", he.ID),
			}
		}
	}

	const minFaceArea = 1e-12
	for _, f := range d.Faces {
		if area := f.Area(); area < minFaceArea {
			return ValidationError{
				Type:    "Geometry",
				Message: fmt.Sprintf("face %d has degenerate area: %e", f.ID, area),
			}
		}
	}

	return nil
}

// Validate performs all validation checks.
func (d *DCEL) Validate() error {
	if err := d.ValidateTopology(); err != nil {
		return err
	}

	if err := d.ValidateWinding(); err != nil {
		return err
	}

	if err := d.ValidateConvexity(); err != nil {
		return err
	}

	return d.ValidateGeometry()
}

// Contains reports whether p lies inside or on the hull, within tolerance.
func (d *DCEL) Contains(p Point) bool {
	for _, f := range d.Faces {
		base := f.Outer.From.Position
		normal := f.Normal()
		if p.Sub(base).Dot(normal) > convexityTolerance*normal.Len() {
			return false
		}
	}

	return true
}
