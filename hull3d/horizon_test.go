package hull3d

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestTetrahedron(t *testing.T) *DCEL {
	t.Helper()

	points := []Point{
		{0, 0, 0},
		{2, 0, 0},
		{0, 2, 0},
		{0, 0, 2},
	}

	d := NewDCEL()
	_, err := buildTetrahedron(d, points, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	return d
}

func TestExtractHorizonSingleFace(t *testing.T) {
	d := buildTestTetrahedron(t)

	// A point hovering just above one face sees exactly that face, so the
	// horizon is the face's own boundary, seen from the neighbors.
	var target *Face
	for _, f := range d.FaceList() {
		p := f.Centroid().Add(f.Normal().Normalize().Mul(0.05))
		count := 0
		for _, g := range d.FaceList() {
			if visible(g, p) {
				count++
				target = g
			}
		}
		require.Equal(t, 1, count, "hover point must see exactly one face")
		require.Same(t, f, target)

		horizon := extractHorizon(map[*Face]struct{}{f: {}})
		require.Len(t, horizon, 3)

		for i, he := range horizon {
			assert.Same(t, f, he.Twin.Face, "horizon twins bound the visible face")
			assert.NotEqual(t, f, he.Face, "horizon edges belong to surviving faces")
			assert.Same(t, he.To, horizon[(i+1)%3].From, "horizon must chain head to tail")
		}
	}
}

func TestExtractHorizonTwoFaces(t *testing.T) {
	d := buildTestTetrahedron(t)

	// A point far out over a shared edge of two faces sees both; the
	// horizon is then a four-edge cycle around the double cap.
	faces := d.FaceList()
	var pair [2]*Face
	found := false
	for _, f := range faces {
		for _, g := range faces {
			if f == g {
				continue
			}
			p := f.Centroid().Add(g.Centroid()).Mul(0.5)
			p = p.Add(f.Normal().Normalize().Add(g.Normal().Normalize()).Mul(2))
			count := 0
			for _, h := range faces {
				if visible(h, p) {
					count++
				}
			}
			if count == 2 && visible(f, p) && visible(g, p) {
				pair = [2]*Face{f, g}
				found = true
			}
		}
	}
	require.True(t, found, "no viewpoint seeing exactly two faces")

	visibleSet := map[*Face]struct{}{pair[0]: {}, pair[1]: {}}
	horizon := extractHorizon(visibleSet)
	require.Len(t, horizon, 4)

	for i, he := range horizon {
		_, isVisible := visibleSet[he.Twin.Face]
		assert.True(t, isVisible)
		_, isVisible = visibleSet[he.Face]
		assert.False(t, isVisible)
		assert.Same(t, he.To, horizon[(i+1)%4].From)
	}
}

func TestExtractHorizonPanicsOnBrokenCycle(t *testing.T) {
	d := buildTestTetrahedron(t)

	var f *Face
	for _, face := range d.FaceList() {
		f = face
		break
	}

	// Severing one twin makes the boundary walk impossible.
	broken := f.Outer.Twin
	f.Outer.Twin = nil
	defer func() {
		f.Outer.Twin = broken
		if recover() == nil {
			t.Error("Expected panic on missing twin during horizon extraction")
		}
	}()

	extractHorizon(map[*Face]struct{}{f: {}})
}
