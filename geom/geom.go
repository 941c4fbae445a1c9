// Package geom provides the shared 2D primitives for polygon triangulation,
// clipping, and rasterization: points, edges, triangles, polygons, and
// polygon trees.
package geom

// Point is a 2D coordinate pair. Points are plain comparable values: two
// points are the same point exactly when their coordinates are equal, and a
// Point can be used directly as a map key. Algorithms that merge shapes rely
// on this for vertex deduplication, so points must never be perturbed once
// they enter a polygon; copying is always safe, rounding is not.
type Point struct {
	X, Y float64
}

// Add returns the vector sum p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns the vector difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Dot returns the dot product of p and q as vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the scalar 2D cross product of p and q as vectors. Its sign
// tells which side of p the vector q lies on: positive means q is
// counterclockwise from p.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Lerp interpolates between p and q; t=0 gives p, t=1 gives q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// Edge is a directed segment from Start to End. Direction matters: clipping
// uses it to decide which side of the edge is inside.
type Edge struct {
	Start, End Point
}

// Delta returns the edge vector End - Start.
func (e Edge) Delta() Point {
	return e.End.Sub(e.Start)
}

// IsZeroLength reports whether the edge's endpoints coincide exactly.
func (e Edge) IsZeroLength() bool {
	return e.Start == e.End
}

// Triangle is an ordered vertex triple. The order establishes a winding for
// downstream consumers, but only the signed area methods promise anything
// about which way it goes.
type Triangle struct {
	A, B, C Point
}

// SignedArea is positive for counterclockwise triangles and negative for
// clockwise ones.
func (t Triangle) SignedArea() float64 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)) / 2
}

// Area returns the unsigned area.
func (t Triangle) Area() float64 {
	a := t.SignedArea()
	if a < 0 {
		return -a
	}
	return a
}

// IsCCW reports whether the triangle winds counterclockwise.
func (t Triangle) IsCCW() bool {
	return t.SignedArea() > 0
}

// ContainsPoint reports whether p lies inside the triangle or on its
// boundary. The test is barycentric with an Epsilon slack on every
// coordinate, so points within tolerance of an edge still count as
// contained. A degenerate (zero-area) triangle contains nothing.
func (t Triangle) ContainsPoint(p Point) bool {
	d := (t.B.Y-t.C.Y)*(t.A.X-t.C.X) + (t.C.X-t.B.X)*(t.A.Y-t.C.Y)
	if d > -Epsilon && d < Epsilon {
		return false
	}
	alpha := ((t.B.Y-t.C.Y)*(p.X-t.C.X) + (t.C.X-t.B.X)*(p.Y-t.C.Y)) / d
	beta := ((t.C.Y-t.A.Y)*(p.X-t.C.X) + (t.A.X-t.C.X)*(p.Y-t.C.Y)) / d
	gamma := 1 - alpha - beta
	return alpha >= -Epsilon && beta >= -Epsilon && gamma >= -Epsilon
}
