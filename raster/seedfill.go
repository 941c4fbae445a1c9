package raster

import (
	"fmt"

	"github.com/pkg/errors"
)

// Strategy selects how SeedFill traverses the region. All strategies fill
// the same pixel set; they differ in traversal mechanics and cost.
type Strategy int

const (
	// Stack is the canonical strategy: an explicit LIFO, bounded by memory
	// rather than call depth.
	Stack Strategy = iota
	// Recursive matches Stack pixel for pixel but recurses, so its depth
	// scales with the filled area. Kept for parity testing on small regions.
	Recursive
	// Scanline coalesces horizontal runs, seeding once per run instead of
	// once per pixel.
	Scanline
)

func (s Strategy) String() string {
	switch s {
	case Stack:
		return "stack"
	case Recursive:
		return "recursive"
	case Scanline:
		return "scanline"
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// ParseStrategy maps the command-line names onto the enum.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "stack":
		return Stack, nil
	case "recursive":
		return Recursive, nil
	case "scanline":
		return Scanline, nil
	}
	return 0, errors.Errorf("unknown seed fill strategy %q", s)
}

// ErrUnknownStrategy is returned by SeedFill for a Strategy value it does
// not know.
var ErrUnknownStrategy = errors.New("unknown seed fill strategy")

type coord struct {
	x, y int
}

// SeedFill flood-fills the 4-connected region of target-colored pixels
// around the seed, replacing them with fill. A pixel participates iff its
// color equals target byte-for-byte and is not already fill; with target ==
// fill that condition never holds and the call is a no-op. Seeds outside the
// buffer, or on a pixel that doesn't match target, fill nothing.
func SeedFill(pm *Pixmap, x, y int, target, fill Color, strategy Strategy) error {
	switch strategy {
	case Recursive:
		fillRecursive(pm, x, y, target, fill)
	case Stack:
		fillStack(pm, x, y, target, fill)
	case Scanline:
		fillScanline(pm, x, y, target, fill)
	default:
		return errors.Wrapf(ErrUnknownStrategy, "strategy %d", int(strategy))
	}
	return nil
}

func fillable(c, target, fill Color) bool {
	return c == target && c != fill
}

// fillRecursive is the classic 4-connected recursion. The color check is the
// only visited-set: a pixel stops the recursion once it no longer matches
// target, which it can't after being set to fill.
func fillRecursive(pm *Pixmap, x, y int, target, fill Color) {
	if x < 0 || x >= pm.width || y < 0 || y >= pm.height {
		return
	}
	if !fillable(pm.GetPixel(x, y), target, fill) {
		return
	}
	pm.SetPixel(x, y, fill)
	fillRecursive(pm, x+1, y, target, fill)
	fillRecursive(pm, x-1, y, target, fill)
	fillRecursive(pm, x, y+1, target, fill)
	fillRecursive(pm, x, y-1, target, fill)
}

// fillStack runs the same traversal with an explicit LIFO. Neighbors are
// pushed unconditionally whenever the popped pixel matches; bounds are
// checked on pop, not push.
func fillStack(pm *Pixmap, x, y int, target, fill Color) {
	stack := []coord{{x, y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.x < 0 || p.x >= pm.width || p.y < 0 || p.y >= pm.height {
			continue
		}
		if !fillable(pm.GetPixel(p.x, p.y), target, fill) {
			continue
		}
		pm.SetPixel(p.x, p.y, fill)
		stack = append(stack,
			coord{p.x + 1, p.y},
			coord{p.x - 1, p.y},
			coord{p.x, p.y + 1},
			coord{p.x, p.y - 1},
		)
	}
}

// fillScanline pops one seed per horizontal run instead of one per pixel.
// The seed's row is expanded left and right to the maximal matching run and
// filled in one pass; the rows above and below are then scanned across the
// run's span, pushing one new seed per maximal matching sub-run found there.
func fillScanline(pm *Pixmap, x, y int, target, fill Color) {
	stack := []coord{{x, y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.x < 0 || p.x >= pm.width || p.y < 0 || p.y >= pm.height {
			continue
		}
		if !fillable(pm.GetPixel(p.x, p.y), target, fill) {
			continue
		}

		left := p.x
		for left > 0 && fillable(pm.GetPixel(left-1, p.y), target, fill) {
			left--
		}
		right := p.x
		for right < pm.width-1 && fillable(pm.GetPixel(right+1, p.y), target, fill) {
			right++
		}
		for i := left; i <= right; i++ {
			pm.SetPixel(i, p.y, fill)
		}

		for _, row := range [2]int{p.y - 1, p.y + 1} {
			if row < 0 || row >= pm.height {
				continue
			}
			inRun := false
			for i := left; i <= right; i++ {
				if fillable(pm.GetPixel(i, row), target, fill) {
					if !inRun {
						stack = append(stack, coord{i, row})
						inRun = true
					}
				} else {
					inRun = false
				}
			}
		}
	}
}
