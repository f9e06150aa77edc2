// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package compare computes pixel-wise differences between shared surfaces.
package compare

import (
	"fmt"

	"github.com/gogpu/reftest/surface"
)

// emphasis scales per-channel differences in the visualization so that
// small deviations are visible to the eye.
const emphasis = 4

// Diff is the result of comparing two surfaces of equal size.
type Diff struct {
	// NumPixelsChanged is the number of pixels that are not byte-identical.
	NumPixelsChanged int

	// MaxDiff is the largest per-channel absolute difference seen.
	MaxDiff uint8

	// Surface visualizes the difference: opaque black where pixels match,
	// emphasized per-channel difference where they do not.
	Surface *surface.Shared
}

// String returns a one-line summary of the diff.
func (d *Diff) String() string {
	return fmt.Sprintf("%d pixels changed with maximum difference of %d", d.NumPixelsChanged, d.MaxDiff)
}

// BufferDiff is either a Diff or a report that the surfaces are not comparable.
type BufferDiff struct {
	// DifferentSizes is true when the surfaces have different dimensions.
	// Diff is nil in that case.
	DifferentSizes bool

	Diff *Diff
}

// Surfaces compares a and b pixel by pixel.
// The visualization surface is tagged with a's color type.
func Surfaces(a, b *surface.Shared) BufferDiff {
	if a.Size() != b.Size() {
		return BufferDiff{DifferentSizes: true}
	}

	w, h := a.Width(), a.Height()
	vis, err := surface.NewImageSurface(surface.FormatARGB32, w, h)
	if err != nil {
		// Shared surfaces always have positive dimensions.
		panic(err)
	}

	d := &Diff{}
	for y := range h {
		for x := range w {
			pa, pb := a.Pixel(x, y), b.Pixel(x, y)
			if pa == pb {
				_ = vis.SetPixel(x, y, surface.Pixel{A: 0xff})
				continue
			}

			d.NumPixelsChanged++
			delta := pa.Diff(pb)
			d.MaxDiff = max(d.MaxDiff, delta.MaxChannel())
			_ = vis.SetPixel(x, y, emphasize(delta))
		}
	}

	d.Surface, err = surface.Wrap(vis, a.Type())
	if err != nil {
		panic(err)
	}
	return BufferDiff{Diff: d}
}

// emphasize turns a per-channel difference into an opaque visualization
// pixel. Alpha differences are folded into the color channels.
func emphasize(delta surface.Pixel) surface.Pixel {
	return surface.Pixel{
		R: scale(max(delta.R, delta.A)),
		G: scale(max(delta.G, delta.A)),
		B: scale(max(delta.B, delta.A)),
		A: 0xff,
	}
}

func scale(v uint8) uint8 {
	if v == 0 {
		return 0
	}
	return uint8(min(int(v)*emphasis, 0xff))
}
