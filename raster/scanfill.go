package raster

import (
	"fmt"
	"math"
	"sort"

	"github.com/pkg/errors"

	"github.com/polydraw/polydraw/geom"
)

// FillRule selects how FillPolygon decides which side of the boundary is
// inside.
type FillRule int

const (
	// EvenOdd treats a pixel as inside when a ray from it crosses the
	// boundary an odd number of times.
	EvenOdd FillRule = iota
	// Winding treats a pixel as inside while the signed, direction-aware
	// crossing count is nonzero.
	Winding
)

func (r FillRule) String() string {
	switch r {
	case EvenOdd:
		return "even-odd"
	case Winding:
		return "winding"
	}
	return fmt.Sprintf("rule(%d)", int(r))
}

// ParseFillRule maps the command-line names onto the enum.
func ParseFillRule(s string) (FillRule, error) {
	switch s {
	case "even-odd":
		return EvenOdd, nil
	case "winding":
		return Winding, nil
	}
	return 0, errors.Errorf("unknown fill rule %q", s)
}

// ErrUnsupportedFillRule is returned by FillPolygon for a FillRule value it
// does not know. It exists so an unknown rule is a visible failure instead
// of a silent even-odd fill.
var ErrUnsupportedFillRule = errors.New("unsupported fill rule")

// activeEdge is one non-horizontal polygon side in scanline form. yMin and
// yMax are the rounded scan rows of its endpoints; x is recomputed from
// xAtYMin on every scanline rather than accumulated, so long edges don't
// drift.
type activeEdge struct {
	yMin     int
	yMax     int
	xAtYMin  float64
	invSlope float64
	x        float64
	winding  int8 // -1 when the original side pointed up (toward smaller y)
}

// FillPolygon rasterizes the polygon's interior with a scanline active-edge
// table. Vertices round to the nearest integer pixel, sides horizontal
// after rounding carry no crossings and are dropped, and each scanline
// fills between boundary crossings sorted by x: under EvenOdd between
// successive crossing pairs, under Winding wherever the running signed
// count of edge directions is nonzero.
//
// Spans are half-open on the right, and an edge's crossings stop at the row
// before its yMax, giving a boundary accurate to within one pixel. Fewer
// than 3 vertices fills nothing. An unknown rule returns
// ErrUnsupportedFillRule.
func FillPolygon(pm *Pixmap, poly geom.Polygon, c Color, rule FillRule) error {
	if rule != EvenOdd && rule != Winding {
		return errors.Wrapf(ErrUnsupportedFillRule, "rule %d", int(rule))
	}
	if len(poly.Points) < 3 {
		return nil
	}

	edges := buildEdgeTable(poly)
	if len(edges) == 0 {
		return nil
	}
	sort.Slice(edges, func(i, j int) bool {
		return edges[i].yMin < edges[j].yMin
	})

	minY := edges[0].yMin
	maxY := edges[0].yMax
	for _, e := range edges[1:] {
		if e.yMax > maxY {
			maxY = e.yMax
		}
	}
	if minY < 0 {
		minY = 0
	}
	if maxY > pm.height-1 {
		maxY = pm.height - 1
	}

	var active []activeEdge
	next := 0
	for y := minY; y <= maxY; y++ {
		// Activate edges reaching this row. The comparison is <=, not ==,
		// so edges starting above a clamped minY still activate.
		for next < len(edges) && edges[next].yMin <= y {
			active = append(active, edges[next])
			next++
		}
		// Retire edges ending at this row before filling it.
		keep := active[:0]
		for _, e := range active {
			if e.yMax > y {
				keep = append(keep, e)
			}
		}
		active = keep

		for i := range active {
			active[i].x = active[i].xAtYMin + active[i].invSlope*float64(y-active[i].yMin)
		}
		sort.Slice(active, func(i, j int) bool {
			return active[i].x < active[j].x
		})

		if rule == EvenOdd {
			for i := 0; i+1 < len(active); i += 2 {
				fillSpan(pm, active[i].x, active[i+1].x, y, c)
			}
		} else {
			count := 0
			for i := 0; i+1 < len(active); i++ {
				count += int(active[i].winding)
				if count != 0 {
					fillSpan(pm, active[i].x, active[i+1].x, y, c)
				}
			}
		}
	}
	return nil
}

// buildEdgeTable rounds the polygon onto the pixel grid and produces one
// activeEdge per non-horizontal side, normalized so yMin <= yMax with the
// winding flipped when the side had to be reversed.
func buildEdgeTable(poly geom.Polygon) []activeEdge {
	var edges []activeEdge
	for i := range poly.Points {
		e := poly.EdgeAt(i)
		x0 := int(math.Round(e.Start.X))
		y0 := int(math.Round(e.Start.Y))
		x1 := int(math.Round(e.End.X))
		y1 := int(math.Round(e.End.Y))
		if y0 == y1 {
			continue
		}
		var w int8 = 1
		if y0 > y1 {
			x0, x1 = x1, x0
			y0, y1 = y1, y0
			w = -1
		}
		edges = append(edges, activeEdge{
			yMin:     y0,
			yMax:     y1,
			xAtYMin:  float64(x0),
			invSlope: float64(x1-x0) / float64(y1-y0),
			x:        float64(x0),
			winding:  w,
		})
	}
	return edges
}

// fillSpan paints pixels with centers in [x0, x1): ceil(x0) through
// ceil(x1)-1. The right-open convention keeps abutting spans from painting
// their shared boundary twice.
func fillSpan(pm *Pixmap, x0, x1 float64, y int, c Color) {
	end := int(math.Ceil(x1)) - 1
	for x := int(math.Ceil(x0)); x <= end; x++ {
		pm.SetPixel(x, y, c)
	}
}
