package geom

// Polygon is an ordered vertex ring. Insertion order is traversal order, and
// winding (clockwise or counterclockwise) is significant; algorithms that
// need a particular winding normalize it themselves, possibly by calling
// Reverse. A polygon needs at least three points to be meaningful, but the
// type does not enforce that; operations on smaller rings return empty
// results.
type Polygon struct {
	Points []Point
}

// FirstIndexes returns a map from each distinct point to the index of its
// first occurrence in the ring. Merged shapes (for example a ring fused with
// its holes over zero-area bridges) repeat vertices, and re-triangulation
// uses this to fold the duplicates back onto one index.
func (poly Polygon) FirstIndexes() map[Point]int {
	m := make(map[Point]int, len(poly.Points))
	for i, p := range poly.Points {
		if _, seen := m[p]; !seen {
			m[p] = i
		}
	}
	return m
}

// SignedArea computes the shoelace sum over the ring's edges. Positive means
// counterclockwise, negative clockwise, zero degenerate.
func (poly Polygon) SignedArea() float64 {
	var sum float64
	n := len(poly.Points)
	for i, p := range poly.Points {
		q := poly.Points[CircularIndex(i+1, n)]
		sum += p.Cross(q)
	}
	return sum / 2
}

// Area returns the unsigned area of the ring.
func (poly Polygon) Area() float64 {
	a := poly.SignedArea()
	if a < 0 {
		return -a
	}
	return a
}

// IsCCW reports whether the ring winds counterclockwise.
func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

// IsCW reports whether the ring winds clockwise. Note that a degenerate ring
// is neither clockwise nor counterclockwise.
func (poly Polygon) IsCW() bool {
	return poly.SignedArea() < 0
}

// Reverse returns a copy of the polygon with the traversal order flipped.
func (poly Polygon) Reverse() Polygon {
	reversed := Polygon{Points: make([]Point, 0, len(poly.Points))}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		reversed.Points = append(reversed.Points, poly.Points[i])
	}
	return reversed
}

// EdgeAt returns the directed edge from vertex i to vertex i+1, wrapping at
// the end of the ring.
func (poly Polygon) EdgeAt(i int) Edge {
	n := len(poly.Points)
	return Edge{poly.Points[CircularIndex(i, n)], poly.Points[CircularIndex(i+1, n)]}
}

// ContainsPointEvenOdd applies the even-odd rule: p is inside iff a ray cast
// from it crosses the boundary an odd number of times.
func (poly Polygon) ContainsPointEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// CrossingCount counts boundary crossings of a +x ray from p. Exposed
// because hole nesting and the rasterizer's reference checks both want the
// raw count.
func (poly Polygon) CrossingCount(p Point) int {
	count := 0
	n := len(poly.Points)
	for i, a := range poly.Points {
		b := poly.Points[CircularIndex(i+1, n)]
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue // edge does not straddle the ray's y
		}
		// x where the edge crosses the horizontal through p
		t := (p.Y - a.Y) / (b.Y - a.Y)
		if a.X+t*(b.X-a.X) > p.X {
			count++
		}
	}
	return count
}

// BoundingBox returns the ring's axis-aligned extent. An empty polygon
// returns two zero points.
func (poly Polygon) BoundingBox() (min, max Point) {
	if len(poly.Points) == 0 {
		return Point{}, Point{}
	}
	min = poly.Points[0]
	max = poly.Points[0]
	for _, p := range poly.Points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}

// PolygonTree models nesting: the outer ring of a shape and the shapes
// directly inside it. A child of a solid ring is a hole; a child of a hole
// is a solid island, and so on down. Trees are built by the caller (or by
// the triangulator's BuildTree helper) and consumed top-down.
type PolygonTree struct {
	Outer    Polygon
	Children []*PolygonTree
}
