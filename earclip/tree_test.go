package earclip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polydraw/polydraw/geom"
)

func centeredSquare(half float64) geom.Polygon {
	return poly(-half, -half, half, -half, half, half, -half, half)
}

func meshArea(triangles []geom.Triangle) float64 {
	var total float64
	for _, tri := range triangles {
		total += tri.Area()
	}
	return total
}

func TestBuildTreeDisjoint(t *testing.T) {
	a := poly(0, 0, 2, 0, 2, 2, 0, 2)
	b := poly(10, 10, 12, 10, 12, 12, 10, 12)
	roots := BuildTree([]geom.Polygon{a, b})
	require.Len(t, roots, 2)
	assert.Empty(t, roots[0].Children)
	assert.Empty(t, roots[1].Children)
}

func TestBuildTreeNestingChain(t *testing.T) {
	big := centeredSquare(6)
	mid := centeredSquare(4)
	small := centeredSquare(2)

	// Shuffled on purpose; nesting comes from containment, not input order
	roots := BuildTree([]geom.Polygon{small, big, mid})
	require.Len(t, roots, 1)
	require.Equal(t, big.Points, roots[0].Outer.Points)
	require.Len(t, roots[0].Children, 1)
	require.Equal(t, mid.Points, roots[0].Children[0].Outer.Points)
	require.Len(t, roots[0].Children[0].Children, 1)
	assert.Equal(t, small.Points, roots[0].Children[0].Children[0].Outer.Points)
}

func TestBuildTreeSiblingHoles(t *testing.T) {
	outer := centeredSquare(5)
	left := poly(-3, -1, -1, -1, -1, 1, -3, 1)
	right := poly(1, -1, 3, -1, 3, 1, 1, 1)
	roots := BuildTree([]geom.Polygon{outer, left, right})
	require.Len(t, roots, 1)
	assert.Len(t, roots[0].Children, 2)
}

func TestBuildTreeEmptyRing(t *testing.T) {
	roots := BuildTree([]geom.Polygon{{}, centeredSquare(2)})
	assert.Len(t, roots, 2, "an empty ring can neither contain nor be contained")
}

func TestBuildTreeDuplicateRings(t *testing.T) {
	sq := poly(0, 0, 4, 0, 4, 4, 0, 4)
	roots := BuildTree([]geom.Polygon{sq, sq})
	// Mutual containment must not loop; list order breaks the tie
	require.Len(t, roots, 1)
	require.Len(t, roots[0].Children, 1)

	// The duplicate is then rejected as a hole, leaving the plain square mesh
	assert.Len(t, Tree(roots[0]), 2)
}

func TestTreeNilRoot(t *testing.T) {
	assert.Nil(t, Tree(nil))
}

func TestTreeLeaf(t *testing.T) {
	triangles := Tree(&geom.PolygonTree{Outer: centeredSquare(5)})
	assert.Len(t, triangles, 2)
	assert.InDelta(t, 100.0, meshArea(triangles), geom.Epsilon)
}

func TestTreeHole(t *testing.T) {
	root := &geom.PolygonTree{
		Outer:    centeredSquare(5),
		Children: []*geom.PolygonTree{{Outer: centeredSquare(2)}},
	}
	triangles := Tree(root)
	require.Len(t, triangles, 8)
	assert.InDelta(t, 84.0, meshArea(triangles), geom.Epsilon)
}

func TestTreeIslandInHole(t *testing.T) {
	island := &geom.PolygonTree{Outer: centeredSquare(2)}
	hole := &geom.PolygonTree{Outer: centeredSquare(4), Children: []*geom.PolygonTree{island}}
	root := &geom.PolygonTree{Outer: centeredSquare(6), Children: []*geom.PolygonTree{hole}}

	triangles := Tree(root)
	dbgDrawMesh(triangles, 50)
	// Ring of 144-64 plus a solid 16 island
	require.Len(t, triangles, 10)
	assert.InDelta(t, 96.0, meshArea(triangles), geom.Epsilon)
}

func TestTreeBrokenStructure(t *testing.T) {
	catchGeometryError := func(fn func()) (err error) {
		defer func() {
			err = geom.HandlePanicRecover(recover())
		}()
		fn()
		return nil
	}

	t.Run("nil child", func(t *testing.T) {
		root := &geom.PolygonTree{Outer: centeredSquare(5), Children: []*geom.PolygonTree{nil}}
		err := catchGeometryError(func() { Tree(root) })
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nil node")
	})

	t.Run("cycle", func(t *testing.T) {
		a := &geom.PolygonTree{Outer: centeredSquare(5)}
		b := &geom.PolygonTree{Outer: centeredSquare(2)}
		a.Children = []*geom.PolygonTree{b}
		b.Children = []*geom.PolygonTree{a}
		err := catchGeometryError(func() { Tree(a) })
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cycle")
	})
}
