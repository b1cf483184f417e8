// Package palette holds the colour arithmetic applied to configured
// RGB triplets before rendering.
package palette

import "image/color"

// Per-channel offsets applied to each triplet so the emitted colours
// never match the common "pure" palette values bit for bit.
const (
	BackgroundOffset = 1
	FrameOffset      = 2
	TextOffset       = 1
)

// RGB is a raw channel triplet straight from the config; values may
// sit outside 0..255 until nudged.
type RGB [3]int

// FromSlice builds a triplet from a 3-element channel slice.
func FromSlice(s []int) RGB {
	return RGB{s[0], s[1], s[2]}
}

// Nudge returns a copy with offset added to each channel, each
// clamped independently to 0..255.
func (c RGB) Nudge(offset int) RGB {
	var out RGB
	for i, ch := range c {
		out[i] = clamp(ch+offset, 0, 255)
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Color converts the triplet to an opaque colour for drawing.
func (c RGB) Color() color.RGBA {
	return color.RGBA{R: uint8(c[0]), G: uint8(c[1]), B: uint8(c[2]), A: 255}
}
