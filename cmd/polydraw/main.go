// Demo driver for the polydraw geometry engine.
//
// Input on stdin is newline separated points in the form "x y", with each
// ring separated by an extra newline. Rings should be simple and
// non-intersecting; nesting decides which rings are holes. None of these
// requirements are validated.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/polydraw/polydraw"
	"github.com/polydraw/polydraw/clip"
	"github.com/polydraw/polydraw/raster"
)

var (
	app     = kingpin.New("polydraw", "Triangulate, clip, and fill 2D polygons.")
	verbose = app.Flag("verbose", "Log diagnostics to stderr.").Short('v').Bool()

	triangulateCmd   = app.Command("triangulate", "Triangulate stdin rings into triangles.")
	triangulateOut   = triangulateCmd.Flag("out", "Render the triangulation to this PNG.").String()
	triangulateScale = triangulateCmd.Flag("scale", "Pixels per input unit when rendering.").Default("10").Float64()

	clipCmd        = app.Command("clip", "Clip stdin rings against a window polygon.")
	clipWindowFile = clipCmd.Flag("window-file", "File holding the window ring, same format as stdin.").Required().String()
	clipAlgorithm  = clipCmd.Flag("algorithm", "Clipping algorithm: sutherland-hodgman or cyrus-beck.").Default("sutherland-hodgman").String()

	fillCmd      = app.Command("fill", "Rasterize stdin rings into a PNG.")
	fillWidth    = fillCmd.Flag("width", "Buffer width in pixels.").Default("256").Int()
	fillHeight   = fillCmd.Flag("height", "Buffer height in pixels.").Default("256").Int()
	fillSeed     = fillCmd.Flag("seed", "Seed pixel as X,Y; strokes the rings and seed-fills from there instead of scanline-filling.").String()
	fillStrategy = fillCmd.Flag("strategy", "Seed fill strategy: stack, recursive, or scanline.").Default("stack").String()
	fillRule     = fillCmd.Flag("rule", "Scanline fill rule: even-odd or winding.").Default("even-odd").String()
	fillColor    = fillCmd.Flag("color", "Fill color as RRGGBB or RRGGBBAA hex.").Default("00ff00").String()
	fillOut      = fillCmd.Flag("out", "Output PNG path.").Required().String()
)

func main() {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))
	if *verbose {
		polydraw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var err error
	switch cmd {
	case triangulateCmd.FullCommand():
		err = runTriangulate()
	case clipCmd.FullCommand():
		err = runClip()
	case fillCmd.FullCommand():
		err = runFill()
	}
	if err != nil {
		app.Fatalf("%v", err)
	}
}

func runTriangulate() error {
	rings := readPolygons(os.Stdin)
	triangles, err := polydraw.Triangulate(rings...)
	if err != nil {
		return err
	}
	fmt.Printf("Read %d polygons, produced %d triangles\n", len(rings), len(triangles))
	if *triangulateOut == "" {
		return nil
	}
	return renderTriangles(triangles, *triangulateScale, *triangulateOut)
}

func runClip() error {
	algo, err := clip.ParseAlgorithm(*clipAlgorithm)
	if err != nil {
		return err
	}
	f, err := os.Open(*clipWindowFile)
	if err != nil {
		return err
	}
	defer f.Close()
	windows := readPolygons(f)
	if len(windows) == 0 {
		return errors.Errorf("no window ring in %s", *clipWindowFile)
	}

	for _, subject := range readPolygons(os.Stdin) {
		pieces, err := polydraw.Clip(subject, windows[0], polydraw.WithAlgorithm(algo))
		if err != nil {
			return err
		}
		writePolygons(os.Stdout, pieces)
	}
	return nil
}

func runFill() error {
	c, err := raster.ParseColor(*fillColor)
	if err != nil {
		return err
	}
	rings := readPolygons(os.Stdin)
	if len(rings) == 0 {
		return errors.New("no polygon on stdin")
	}

	var pm *raster.Pixmap
	if *fillSeed == "" {
		rule, err := raster.ParseFillRule(*fillRule)
		if err != nil {
			return err
		}
		pm = raster.NewPixmap(*fillWidth, *fillHeight)
		for _, ring := range rings {
			if err := polydraw.FillPolygon(pm, ring, c, polydraw.WithFillRule(rule)); err != nil {
				return err
			}
		}
	} else {
		pm, err = seedFillRings(rings, c)
		if err != nil {
			return err
		}
	}
	return pm.SavePNG(*fillOut)
}

// seedFillRings strokes the rings onto a white background so the seed fill
// has a boundary to run up against, then floods from the seed pixel. The
// stroke is antialiased, so its fringe pixels aren't pure white and stop
// the fill just like the line itself.
func seedFillRings(rings []polydraw.Polygon, c raster.Color) (*raster.Pixmap, error) {
	strategy, err := raster.ParseStrategy(*fillStrategy)
	if err != nil {
		return nil, err
	}
	sx, sy, err := parseSeed(*fillSeed)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(*fillWidth, *fillHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	for _, ring := range rings {
		if len(ring.Points) == 0 {
			continue
		}
		dc.MoveTo(ring.Points[0].X, ring.Points[0].Y)
		for _, p := range ring.Points[1:] {
			dc.LineTo(p.X, p.Y)
		}
		dc.ClosePath()
	}
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	dc.Stroke()

	pm := raster.FromImage(dc.Image())
	if err := polydraw.SeedFill(pm, sx, sy, raster.White, c, polydraw.WithStrategy(strategy)); err != nil {
		return nil, err
	}
	return pm, nil
}

func parseSeed(s string) (int, int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, errors.Errorf("seed %q: want X,Y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, errors.Wrapf(err, "seed %q", s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, errors.Wrapf(err, "seed %q", s)
	}
	return x, y, nil
}

const renderPadding = 20

func renderTriangles(triangles []polydraw.Triangle, scale float64, path string) error {
	if len(triangles) == 0 {
		return errors.New("nothing to render")
	}
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, t := range triangles {
		for _, p := range []polydraw.Point{t.A, t.B, t.C} {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}

	width := int(scale*(maxX-minX)) + renderPadding*2
	height := int(scale*(maxY-minY)) + renderPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.Clear()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(renderPadding, renderPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	for _, t := range triangles {
		c.MoveTo(t.A.X, t.A.Y)
		c.LineTo(t.B.X, t.B.Y)
		c.LineTo(t.C.X, t.C.Y)
		c.ClosePath()
	}
	c.SetRGBA(0.2, 0.6, 0.2, 0.8)
	c.FillPreserve()
	c.SetRGB(0, 0, 0)
	c.SetLineWidth(1)
	c.Stroke()

	return c.SavePNG(path)
}

func readPolygons(in io.Reader) []polydraw.Polygon {
	polygons := []polydraw.Polygon{}
	scanner := bufio.NewScanner(in)
	points := []polydraw.Point{}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// A blank line ends the current ring, if it collected any points.
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, polydraw.Polygon{Points: points})
				points = []polydraw.Point{}
			}
			continue
		}

		points = append(points, parsePoint(line))
	}

	// Trailing ring without a closing blank line
	if len(points) > 0 {
		polygons = append(polygons, polydraw.Polygon{Points: points})
	}
	return polygons
}

func parsePoint(line string) polydraw.Point {
	parts := strings.Fields(line)
	x, _ := strconv.ParseFloat(parts[0], 64)
	y, _ := strconv.ParseFloat(parts[1], 64)
	return polydraw.Point{X: x, Y: y}
}

func writePolygons(w io.Writer, polygons []polydraw.Polygon) {
	for _, poly := range polygons {
		for _, p := range poly.Points {
			fmt.Fprintf(w, "%g %g\n", p.X, p.Y)
		}
		fmt.Fprintln(w)
	}
}
