// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "image/color"

// Pixel is a single premultiplied pixel in 0-255 range.
type Pixel struct {
	R, G, B, A uint8
}

// RGBA implements color.Color. Pixel values are premultiplied, like color.RGBA.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: p.A}.RGBA()
}

// Diff returns the per-channel absolute difference between p and q.
func (p Pixel) Diff(q Pixel) Pixel {
	return Pixel{
		R: absDiff(p.R, q.R),
		G: absDiff(p.G, q.G),
		B: absDiff(p.B, q.B),
		A: absDiff(p.A, q.A),
	}
}

// MaxChannel returns the largest of the four channel values.
func (p Pixel) MaxChannel() uint8 {
	return max(p.R, p.G, p.B, p.A)
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
