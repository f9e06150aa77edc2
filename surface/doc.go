// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface provides the pixel buffers consumed by gg's reference
// image tests.
//
// # Surface Types
//
//   - ImageSurface: mutable buffer in FormatARGB32 (premultiplied) or
//     FormatRGB24 (opaque), with PNG decoding and encoding.
//   - Shared: an immutable ARGB32 surface tagged with a color Type. This is
//     what comparisons operate on.
//
// Pixel bytes are laid out in R, G, B, A order so that every surface can be
// viewed as an *image.RGBA and composited with golang.org/x/image/draw.
//
// # Usage
//
//	s, err := surface.NewImageSurface(surface.FormatARGB32, 64, 64)
//	if err != nil {
//	    return err
//	}
//	s.Fill(surface.Pixel{R: 255, A: 255})
//
//	shared, err := surface.Wrap(s, surface.TypeSRGB)
package surface
