// A 2D polygon engine for Go: triangulation, window clipping, and raster
// filling.
//
// This package is the friendly surface over three algorithm packages. It
// converts sets of simple polygons, which may be non-convex, disjoint, and
// nested (holes, and islands inside holes), into triangles containing only
// the original points; clips subject polygons against convex or concave
// windows; and fills regions of an RGBA8 pixel buffer, either outward from
// a seed pixel or from polygon geometry scanline by scanline.
package polydraw

import (
	"log/slog"

	"github.com/polydraw/polydraw/clip"
	"github.com/polydraw/polydraw/earclip"
	"github.com/polydraw/polydraw/geom"
	"github.com/polydraw/polydraw/raster"
)

type Point = geom.Point
type Edge = geom.Edge
type Triangle = geom.Triangle
type Polygon = geom.Polygon
type PolygonTree = geom.PolygonTree

type Algorithm = clip.Algorithm
type Strategy = raster.Strategy
type FillRule = raster.FillRule

type Pixmap = raster.Pixmap
type Color = raster.Color

const (
	SutherlandHodgman = clip.SutherlandHodgman
	CyrusBeck         = clip.CyrusBeck

	Stack     = raster.Stack
	Recursive = raster.Recursive
	Scanline  = raster.Scanline

	EvenOdd = raster.EvenOdd
	Winding = raster.Winding
)

// NewPixmap creates a transparent RGBA8 pixel buffer.
func NewPixmap(width, height int) *Pixmap {
	return raster.NewPixmap(width, height)
}

// SetLogger configures diagnostic logging for every polydraw package. The
// default discards everything. Pass nil to restore the default.
func SetLogger(l *slog.Logger) {
	geom.SetLogger(l)
}

// Triangulate converts a set of rings into triangles whose vertices all
// come from the input.
//
// The rings must be simple and non-intersecting, but their winding and
// order don't matter: nesting is reconstructed geometrically, so a ring
// directly inside another is a hole in it, a ring inside a hole is solid
// again, and so on. Rings with fewer than 3 points contribute nothing.
func Triangulate(polygons ...Polygon) (result []Triangle, err error) {
	defer func() {
		if recovered := geom.HandlePanicRecover(recover()); recovered != nil {
			result = nil
			err = recovered
		}
	}()
	for _, root := range earclip.BuildTree(polygons) {
		result = append(result, earclip.Tree(root)...)
	}
	return result, nil
}

// TriangulateTree triangulates an explicitly constructed nesting tree,
// for callers that already know the containment structure and don't want
// it re-derived. Children of a ring are holes in it; their children are
// solid islands.
func TriangulateTree(tree *PolygonTree) (result []Triangle, err error) {
	defer func() {
		if recovered := geom.HandlePanicRecover(recover()); recovered != nil {
			result = nil
			err = recovered
		}
	}()
	return earclip.Tree(tree), nil
}

// Clip cuts the subject polygon down to the window and returns the
// surviving pieces: at most one for a convex window, possibly several for a
// concave window (which is decomposed into triangles and clipped piecewise;
// pieces are not unioned and may duplicate coverage along shared triangle
// edges). An empty result means the subject lies entirely outside the
// window.
func Clip(subject, window Polygon, opts ...Option) (result []Polygon, err error) {
	defer func() {
		if recovered := geom.HandlePanicRecover(recover()); recovered != nil {
			result = nil
			err = recovered
		}
	}()
	o := buildOptions(opts)
	return clip.Window(subject, window, o.algorithm), nil
}

// SeedFill flood-fills the 4-connected region of target-colored pixels
// around (x, y) with the fill color.
func SeedFill(pm *Pixmap, x, y int, target, fill Color, opts ...Option) (err error) {
	defer func() {
		if recovered := geom.HandlePanicRecover(recover()); recovered != nil {
			err = recovered
		}
	}()
	o := buildOptions(opts)
	return raster.SeedFill(pm, x, y, target, fill, o.strategy)
}

// FillPolygon rasterizes the polygon's interior into the pixel buffer under
// the configured fill rule.
func FillPolygon(pm *Pixmap, poly Polygon, c Color, opts ...Option) (err error) {
	defer func() {
		if recovered := geom.HandlePanicRecover(recover()); recovered != nil {
			err = recovered
		}
	}()
	o := buildOptions(opts)
	return raster.FillPolygon(pm, poly, c, o.fillRule)
}
