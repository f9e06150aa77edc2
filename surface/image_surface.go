// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"image"

	"golang.org/x/image/draw"
)

// Common errors for surface operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("surface: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized or not
	// acceptable for the requested operation.
	ErrInvalidFormat = errors.New("surface: invalid format")

	// ErrOutOfBounds is returned when pixel coordinates are outside the surface.
	ErrOutOfBounds = errors.New("surface: coordinates out of bounds")
)

// ImageSurface is a mutable in-memory pixel buffer.
//
// Pixel data is stored row by row with 4 bytes per pixel in R, G, B, A order.
// For FormatRGB24 the alpha byte is kept at 255 so that the buffer can be
// viewed as an *image.RGBA without conversion.
//
// ImageSurface is not safe for concurrent modification.
type ImageSurface struct {
	data   []byte
	width  int
	height int
	stride int
	format Format
}

// NewImageSurface creates a surface with the given format and dimensions.
// ARGB32 surfaces start fully transparent, RGB24 surfaces start opaque black.
func NewImageSurface(format Format, width, height int) (*ImageSurface, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	stride := format.RowBytes(width)
	s := &ImageSurface{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}
	if !format.HasAlpha() {
		for i := 3; i < len(s.data); i += 4 {
			s.data[i] = 0xff
		}
	}
	return s, nil
}

// Width returns the surface width in pixels.
func (s *ImageSurface) Width() int {
	return s.width
}

// Height returns the surface height in pixels.
func (s *ImageSurface) Height() int {
	return s.height
}

// Stride returns the number of bytes per row.
func (s *ImageSurface) Stride() int {
	return s.stride
}

// Format returns the pixel format.
func (s *ImageSurface) Format() Format {
	return s.format
}

// Data returns the raw pixel data slice.
// Writers must keep the alpha bytes of RGB24 surfaces at 255.
func (s *ImageSurface) Data() []byte {
	return s.data
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (s *ImageSurface) PixelOffset(x, y int) int {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return -1
	}
	return y*s.stride + x*s.format.BytesPerPixel()
}

// Pixel returns the pixel at (x, y).
// Returns the zero Pixel if coordinates are out of bounds.
func (s *ImageSurface) Pixel(x, y int) Pixel {
	off := s.PixelOffset(x, y)
	if off < 0 {
		return Pixel{}
	}
	p := Pixel{R: s.data[off], G: s.data[off+1], B: s.data[off+2], A: s.data[off+3]}
	if !s.format.HasAlpha() {
		p.A = 0xff
	}
	return p
}

// SetPixel sets the pixel at (x, y). The pixel must be premultiplied.
// For RGB24 surfaces the alpha channel is forced to opaque.
func (s *ImageSurface) SetPixel(x, y int, p Pixel) error {
	off := s.PixelOffset(x, y)
	if off < 0 {
		return ErrOutOfBounds
	}
	if !s.format.HasAlpha() {
		p.A = 0xff
	}
	s.data[off] = p.R
	s.data[off+1] = p.G
	s.data[off+2] = p.B
	s.data[off+3] = p.A
	return nil
}

// Fill sets every pixel to p.
func (s *ImageSurface) Fill(p Pixel) {
	for y := range s.height {
		for x := range s.width {
			_ = s.SetPixel(x, y, p)
		}
	}
}

// Clone creates a deep copy of the surface.
func (s *ImageSurface) Clone() *ImageSurface {
	data := make([]byte, len(s.data))
	copy(data, s.data)
	return &ImageSurface{
		data:   data,
		width:  s.width,
		height: s.height,
		stride: s.stride,
		format: s.format,
	}
}

// Image returns an *image.RGBA view sharing the surface memory, suitable
// as a compositing destination. Drawing into it modifies the surface.
func (s *ImageSurface) Image() draw.Image {
	return &image.RGBA{
		Pix:    s.data,
		Stride: s.stride,
		Rect:   image.Rect(0, 0, s.width, s.height),
	}
}
