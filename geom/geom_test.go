package geom

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointOps(t *testing.T) {
	a := Point{3, 4}
	b := Point{1, -2}

	assert.Equal(t, Point{4, 2}, a.Add(b))
	assert.Equal(t, Point{2, 6}, a.Sub(b))
	assert.Equal(t, Point{6, 8}, a.Mul(2))
	assert.InDelta(t, -5.0, a.Dot(b), Epsilon)
	assert.InDelta(t, -10.0, a.Cross(b), Epsilon)
	assert.Equal(t, Point{2, 1}, a.Lerp(b, 0.5))
	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(1, 1))
	assert.True(t, Equal(1, 1+Epsilon/2))
	assert.False(t, Equal(1, 1+Epsilon*2))
}

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		actualIndex := CircularIndex(i, n)
		expectedIndex := expectedIndexes[0]
		expectedIndexes = expectedIndexes[1:]
		assert.Equal(t, expectedIndex, actualIndex)
	}
}

func TestEdge(t *testing.T) {
	e := Edge{Start: Point{1, 1}, End: Point{4, 5}}
	assert.Equal(t, Point{3, 4}, e.Delta())
	assert.False(t, e.IsZeroLength())
	assert.True(t, Edge{Start: Point{2, 2}, End: Point{2, 2}}.IsZeroLength())
}

func TestTriangleSignedArea(t *testing.T) {
	for cwI := 0; cwI < 2; cwI++ {
		t.Run(fmt.Sprintf("with %s triangles", []string{"CCW", "CW"}[cwI]), func(t *testing.T) {
			tri := Triangle{A: Point{0, -1}, B: Point{1, 0}, C: Point{0, 1}}
			// Clockwise triangles have negative area, so sign is -1 for CW
			sign := 1 - 2*float64(cwI)
			if cwI == 1 {
				tri.A, tri.B = tri.B, tri.A
			}
			assertArea := func(expected float64) {
				assert.InDelta(t, sign*expected, tri.SignedArea(), Epsilon)
			}
			assertArea(1)

			// Stretch the triangle out
			tri.A.Y *= 2
			tri.B.Y *= 2
			tri.C.Y *= 2
			assertArea(2)

			// Rotate the triangle repeatedly by a weird angle
			angle := math.Pi / 7
			for i := 0; i < 14; i++ {
				tri.A = rotated(tri.A, angle)
				tri.B = rotated(tri.B, angle)
				tri.C = rotated(tri.C, angle)
				assertArea(2)
			}

			// Translate the triangle and do the whole rotation thing again
			offset := Point{5, 3}
			tri.A = tri.A.Add(offset)
			tri.B = tri.B.Add(offset)
			tri.C = tri.C.Add(offset)

			for i := 0; i < 14; i++ {
				tri.A = rotated(tri.A, angle)
				tri.B = rotated(tri.B, angle)
				tri.C = rotated(tri.C, angle)
				assertArea(2)
			}
		})
	}
}

func TestTriangleContainsPoint(t *testing.T) {
	tri := Triangle{A: Point{0, 0}, B: Point{4, 0}, C: Point{0, 4}}

	t.Run("interior", func(t *testing.T) {
		assert.True(t, tri.ContainsPoint(Point{1, 1}))
	})

	t.Run("exterior", func(t *testing.T) {
		assert.False(t, tri.ContainsPoint(Point{3, 3}))
		assert.False(t, tri.ContainsPoint(Point{-1, 1}))
		assert.False(t, tri.ContainsPoint(Point{1, -1}))
	})

	t.Run("boundary counts as contained", func(t *testing.T) {
		assert.True(t, tri.ContainsPoint(Point{2, 0}), "edge midpoint")
		assert.True(t, tri.ContainsPoint(Point{2, 2}), "hypotenuse midpoint")
		assert.True(t, tri.ContainsPoint(Point{0, 0}), "vertex")
	})

	t.Run("degenerate triangle contains nothing", func(t *testing.T) {
		flat := Triangle{A: Point{0, 0}, B: Point{2, 0}, C: Point{4, 0}}
		assert.False(t, flat.ContainsPoint(Point{2, 0}))
		assert.False(t, flat.ContainsPoint(Point{1, 1}))
	})
}

func TestTriangleOrientation(t *testing.T) {
	ccw := Triangle{A: Point{0, 0}, B: Point{1, 0}, C: Point{0, 1}}
	assert.True(t, ccw.IsCCW())
	cw := Triangle{A: ccw.B, B: ccw.A, C: ccw.C}
	assert.False(t, cw.IsCCW())
	assert.InDelta(t, ccw.Area(), cw.Area(), Epsilon)
}

// Helpers

func rotated(p Point, angle float64) Point {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}
