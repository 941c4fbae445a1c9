package earclip

import (
	"math"

	"github.com/polydraw/polydraw/geom"
)

// Tree triangulates a nesting tree of rings breadth-first. A node's
// immediate children are holes in its interior: the node is fused with them
// into one pseudo-simple ring and triangulated in a single pass. Children of
// holes are solid again and are queued as independent roots of their own,
// so alternating solid and hole layers nest to any depth.
//
// The tree must be a tree. A nil node or a node reachable twice is a broken
// structure, not bad geometry, and panics with a GeometryError.
func Tree(root *geom.PolygonTree) []geom.Triangle {
	if root == nil {
		return nil
	}

	var triangles []geom.Triangle
	visited := make(map[*geom.PolygonTree]bool)
	queue := []*geom.PolygonTree{root}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if node == nil {
			geom.Fatalf("nil node in polygon tree")
		}
		if visited[node] {
			geom.Fatalf("polygon tree contains a cycle at %s", node.DbgName())
		}
		visited[node] = true

		if len(node.Children) == 0 {
			triangles = append(triangles, Simple(node.Outer)...)
			continue
		}

		geom.Logger().Debug("fusing holes into ring", "node", node)
		holes := make([]geom.Polygon, 0, len(node.Children))
		for _, child := range node.Children {
			if child == nil {
				geom.Fatalf("nil node in polygon tree")
			}
			holes = append(holes, child.Outer)
			queue = append(queue, child.Children...)
		}
		triangles = append(triangles, Simple(CombineToPseudoSimple(node.Outer, holes))...)
	}
	return triangles
}

// BuildTree arranges a flat list of rings into a nesting forest. A ring's
// parent is the smallest-area ring whose interior contains its first vertex;
// rings contained by nothing become roots. Containment uses the even-odd
// rule on a single vertex, so the input is assumed properly nested: each
// ring is either strictly inside another or disjoint from it, never
// partially overlapping.
//
// Winding is ignored here. Depth in the resulting forest is what decides
// solid versus hole when the forest is triangulated.
func BuildTree(rings []geom.Polygon) []*geom.PolygonTree {
	nodes := make([]*geom.PolygonTree, len(rings))
	areas := make([]float64, len(rings))
	for i, r := range rings {
		nodes[i] = &geom.PolygonTree{Outer: r}
		areas[i] = math.Abs(r.SignedArea())
	}

	var roots []*geom.PolygonTree
	for i, r := range rings {
		if len(r.Points) == 0 {
			roots = append(roots, nodes[i])
			continue
		}

		parent := -1
		for j, c := range rings {
			if j == i || len(c.Points) == 0 {
				continue
			}
			// Only a ring of larger area can contain this one. Equal areas
			// (duplicate rings) fall back to list order, which keeps mutual
			// containment from forming a cycle.
			if areas[j] < areas[i] || (areas[j] == areas[i] && j > i) {
				continue
			}
			if !c.ContainsPointEvenOdd(r.Points[0]) {
				continue
			}
			if parent < 0 || areas[j] < areas[parent] {
				parent = j
			}
		}

		if parent < 0 {
			roots = append(roots, nodes[i])
		} else {
			nodes[parent].Children = append(nodes[parent].Children, nodes[i])
		}
	}
	return roots
}
