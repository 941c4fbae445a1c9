package earclip

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polydraw/polydraw/geom"
)

// This contains no actual tests. It is just a helper for testing
// triangulation validity.

// Helper to check that a triangulation is valid. The rules are:
// 1. The set of points in the triangles must equal the set of points in the polygon.
// 2. The set of line segments in the polygon is a subset of the set of line segments in the triangles.
// 3. Every triangle is counterclockwise
// 4. No triangle has zero area
// 5. The sum of the areas of all triangles is equal to the area of the polygon.
//
// Rings produced by hole merging repeat their bridge vertices, so both point
// sets compare deduplicated values.

func AssertValidTriangulation(t *testing.T, polygon geom.Polygon, triangles []geom.Triangle) {
	if !polygon.IsCCW() {
		t.Fatal("Polygon is not counterclockwise")
	}

	polyPoints := make(map[geom.Point]struct{})
	for _, p := range polygon.Points {
		polyPoints[p] = struct{}{}
	}
	trianglePoints := make(map[geom.Point]struct{})
	for _, tri := range triangles {
		trianglePoints[tri.A] = struct{}{}
		trianglePoints[tri.B] = struct{}{}
		trianglePoints[tri.C] = struct{}{}
	}

	require.Equal(t, polyPoints, trianglePoints, "set of points in the triangles must equal the set of points in the polygon")

	var triangleArea float64
	triangleSegmentSet := make(normalizedSegmentSet)
	for _, tri := range triangles {
		// Check that the triangle is counterclockwise and has real area
		require.True(t, tri.IsCCW(), "clockwise or degenerate triangle: %v", tri)
		triangleArea += tri.Area()
		// Add all the segments to the set
		triangleSegmentSet.add(tri.A, tri.B)
		triangleSegmentSet.add(tri.B, tri.C)
		triangleSegmentSet.add(tri.C, tri.A)
	}

	// Check every segment in the polygon is in the set
	for i, p1 := range polygon.Points {
		p2 := polygon.Points[(i+1)%len(polygon.Points)]
		require.True(t, triangleSegmentSet.contains(p1, p2), "segment %v-%v of the polygon is not in the set of segments in the triangles", p1, p2)
	}

	// Check that the sum of the areas of all triangles is equal to the area of the polygon
	require.InDelta(t, polygon.Area(), triangleArea, geom.Epsilon, "sum of the areas of all triangles is equal to the area of the polygon")
}

// Used in the helper above, this is a "normalized" line segment, where the
// "lower" point (accounting for lexicographic adjustment) is always second
type normalizedSegment struct {
	lower, upper geom.Point
}

func pointBelow(a, b geom.Point) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

func newNormalizedSegment(a, b geom.Point) normalizedSegment {
	if pointBelow(a, b) {
		return normalizedSegment{a, b}
	}
	return normalizedSegment{b, a}
}

type normalizedSegmentSet map[normalizedSegment]struct{}

func (set normalizedSegmentSet) add(a, b geom.Point) {
	set[newNormalizedSegment(a, b)] = struct{}{}
}

func (set normalizedSegmentSet) contains(a, b geom.Point) bool {
	_, ok := set[newNormalizedSegment(a, b)]
	return ok
}
