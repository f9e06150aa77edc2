// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// ReadPNG decodes a PNG image into a surface in its native layout:
// FormatRGB24 when every decoded pixel is opaque, FormatARGB32 otherwise.
func ReadPNG(r io.Reader) (*ImageSurface, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("surface: decode PNG: %w", err)
	}

	format := FormatARGB32
	if isOpaque(img) {
		format = FormatRGB24
	}

	return fromStdImage(img, format)
}

// WritePNG encodes the surface as PNG to the given writer.
func (s *ImageSurface) WritePNG(w io.Writer) error {
	if err := png.Encode(w, s.Image()); err != nil {
		return fmt.Errorf("surface: encode PNG: %w", err)
	}
	return nil
}

// fromStdImage copies img into a new surface of the given format.
// Non-premultiplied sources are premultiplied by the draw conversion.
func fromStdImage(img image.Image, format Format) (*ImageSurface, error) {
	bounds := img.Bounds()
	s, err := NewImageSurface(format, bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	dst := s.Image()
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return s, nil
}

func isOpaque(img image.Image) bool {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return true
	}
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	return false
}
