package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(size float64) Polygon {
	return Polygon{Points: []Point{{0, 0}, {size, 0}, {size, size}, {0, size}}}
}

func TestPolygonSignedArea(t *testing.T) {
	sq := square(4)
	assert.InDelta(t, 16.0, sq.SignedArea(), Epsilon)
	assert.True(t, sq.IsCCW())
	assert.False(t, sq.IsCW())

	rev := sq.Reverse()
	assert.InDelta(t, -16.0, rev.SignedArea(), Epsilon)
	assert.True(t, rev.IsCW())
	assert.InDelta(t, 16.0, rev.Area(), Epsilon)
}

func TestPolygonReverse(t *testing.T) {
	poly := Polygon{Points: []Point{{0, 0}, {2, 0}, {1, 3}}}
	back := poly.Reverse().Reverse()
	assert.Equal(t, poly.Points, back.Points)
	// Reverse must not share backing storage with the original
	rev := poly.Reverse()
	rev.Points[0] = Point{99, 99}
	assert.Equal(t, Point{0, 0}, poly.Points[0])
}

func TestPolygonFirstIndexes(t *testing.T) {
	// A ring with a repeated bridge vertex, like the output of a hole merge
	poly := Polygon{Points: []Point{{0, 0}, {4, 0}, {2, 2}, {4, 0}, {4, 4}}}
	first := poly.FirstIndexes()
	require.Len(t, first, 4)
	assert.Equal(t, 0, first[Point{0, 0}])
	assert.Equal(t, 1, first[Point{4, 0}], "first occurrence wins")
	assert.Equal(t, 2, first[Point{2, 2}])
	assert.Equal(t, 4, first[Point{4, 4}])
}

func TestPolygonEdgeAt(t *testing.T) {
	poly := Polygon{Points: []Point{{0, 0}, {1, 0}, {0, 1}}}
	assert.Equal(t, Edge{Start: Point{0, 0}, End: Point{1, 0}}, poly.EdgeAt(0))
	assert.Equal(t, Edge{Start: Point{0, 1}, End: Point{0, 0}}, poly.EdgeAt(2), "last edge wraps to the first point")
}

func TestPolygonContainsPointEvenOdd(t *testing.T) {
	t.Run("square", func(t *testing.T) {
		sq := square(4)
		assert.True(t, sq.ContainsPointEvenOdd(Point{2, 2}))
		assert.False(t, sq.ContainsPointEvenOdd(Point{5, 2}))
		assert.False(t, sq.ContainsPointEvenOdd(Point{-1, 2}))
		assert.False(t, sq.ContainsPointEvenOdd(Point{2, -1}))
	})

	t.Run("concave C-shape", func(t *testing.T) {
		// The cavity opens to the right:
		/*
			┌────────┐
			│  ┌─────┘
			│  └─────┐
			└────────┘
		*/
		c := Polygon{Points: []Point{
			{0, 0}, {8, 0}, {8, 2}, {3, 2}, {3, 6}, {8, 6}, {8, 8}, {0, 8},
		}}
		assert.True(t, c.ContainsPointEvenOdd(Point{1, 4}), "spine")
		assert.True(t, c.ContainsPointEvenOdd(Point{6, 1}), "lower arm")
		assert.True(t, c.ContainsPointEvenOdd(Point{6, 7}), "upper arm")
		assert.False(t, c.ContainsPointEvenOdd(Point{6, 4}), "cavity")
	})
}

func TestPolygonBoundingBox(t *testing.T) {
	poly := Polygon{Points: []Point{{3, -1}, {-2, 4}, {7, 2}}}
	min, max := poly.BoundingBox()
	assert.Equal(t, Point{-2, -1}, min)
	assert.Equal(t, Point{7, 4}, max)
}
