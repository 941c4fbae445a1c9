package polydraw

import (
	"github.com/polydraw/polydraw/clip"
	"github.com/polydraw/polydraw/raster"
)

// Option configures a single call. There is deliberately no package-level
// selection state: every call receives its algorithm, strategy, and rule
// explicitly, and two concurrent calls with different options don't
// interact.
//
// Example:
//
//	pieces, err := polydraw.Clip(subject, window,
//		polydraw.WithAlgorithm(polydraw.CyrusBeck))
type Option func(*options)

type options struct {
	algorithm clip.Algorithm
	strategy  raster.Strategy
	fillRule  raster.FillRule
}

func defaultOptions() options {
	return options{
		algorithm: clip.SutherlandHodgman,
		strategy:  raster.Stack,
		fillRule:  raster.EvenOdd,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithAlgorithm selects the clipping algorithm for a Clip call. The default
// is SutherlandHodgman.
func WithAlgorithm(a Algorithm) Option {
	return func(o *options) {
		o.algorithm = a
	}
}

// WithStrategy selects the traversal strategy for a SeedFill call. The
// default is Stack, which all regions are safe on; Recursive exists for
// small-region parity and Scanline for run-heavy regions.
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithFillRule selects the inside test for a FillPolygon call. The default
// is EvenOdd.
func WithFillRule(r FillRule) Option {
	return func(o *options) {
		o.fillRule = r
	}
}
