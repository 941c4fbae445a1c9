// Package raster fills regions of an RGBA8 pixel buffer: seed (flood) fills
// driven by pixel color, and scanline polygon fills driven by geometry.
package raster

import (
	"image/color"
	"strings"

	"github.com/pkg/errors"
)

// Color is one RGBA8 pixel value, non-premultiplied. Seed fills compare
// colors by exact byte equality, so two colors match iff all four channels
// match.
type Color struct {
	R, G, B, A uint8
}

var (
	Transparent = Color{}
	Black       = Color{A: 255}
	White       = Color{R: 255, G: 255, B: 255, A: 255}
	Red         = Color{R: 255, A: 255}
	Green       = Color{G: 255, A: 255}
	Blue        = Color{B: 255, A: 255}
)

// FromColor converts any color.Color to its 8-bit non-premultiplied form.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// NRGBA returns the standard-library form of the color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// ParseColor parses "RRGGBB" or "RRGGBBAA" hex, with an optional leading
// '#'. Alpha defaults to opaque.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, errors.Errorf("color %q: want RRGGBB or RRGGBBAA", s)
	}
	var bytes [4]uint8
	bytes[3] = 255
	for i := 0; i < len(hex)/2; i++ {
		hi := hexNibble(hex[i*2])
		lo := hexNibble(hex[i*2+1])
		if hi < 0 || lo < 0 {
			return Color{}, errors.Errorf("color %q: bad hex digit", s)
		}
		bytes[i] = uint8(hi<<4 | lo)
	}
	return Color{R: bytes[0], G: bytes[1], B: bytes[2], A: bytes[3]}, nil
}

func hexNibble(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	}
	return -1
}
