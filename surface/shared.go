// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image"
	"image/color"
)

// Type is the color interpretation of a shared surface's pixels.
type Type uint8

const (
	// TypeSRGB marks pixels as sRGB-encoded.
	TypeSRGB Type = iota

	// TypeLinearRGB marks pixels as linear RGB.
	TypeLinearRGB

	// TypeAlphaOnly marks surfaces whose color channels carry no information.
	TypeAlphaOnly
)

// String returns a string representation of the type.
func (t Type) String() string {
	switch t {
	case TypeSRGB:
		return "sRGB"
	case TypeLinearRGB:
		return "LinearRGB"
	case TypeAlphaOnly:
		return "AlphaOnly"
	default:
		return "Unknown"
	}
}

// Shared is an immutable ARGB32 surface tagged with a color Type.
//
// Once wrapped, the pixel data is never modified, so a Shared surface is
// safe for concurrent read access.
type Shared struct {
	surf *ImageSurface
	typ  Type
}

// Wrap takes ownership of s and returns it as a shared surface.
// The caller must not modify s afterwards.
// Returns ErrInvalidFormat unless s is FormatARGB32.
func Wrap(s *ImageSurface, t Type) (*Shared, error) {
	if s == nil || s.format != FormatARGB32 {
		return nil, ErrInvalidFormat
	}
	return &Shared{surf: s, typ: t}, nil
}

// FromImage copies any image into a new shared surface.
func FromImage(img image.Image, t Type) (*Shared, error) {
	s, err := fromStdImage(img, FormatARGB32)
	if err != nil {
		return nil, err
	}
	return &Shared{surf: s, typ: t}, nil
}

// Width returns the surface width in pixels.
func (s *Shared) Width() int { return s.surf.width }

// Height returns the surface height in pixels.
func (s *Shared) Height() int { return s.surf.height }

// Size returns the dimensions as an image.Point.
func (s *Shared) Size() image.Point {
	return image.Pt(s.surf.width, s.surf.height)
}

// Type returns the color type the surface was wrapped with.
func (s *Shared) Type() Type { return s.typ }

// Pixel returns the premultiplied pixel at (x, y).
func (s *Shared) Pixel(x, y int) Pixel {
	return s.surf.Pixel(x, y)
}

// IntoImageSurface returns a mutable copy of the pixel data.
func (s *Shared) IntoImageSurface() *ImageSurface {
	return s.surf.Clone()
}

// ToImage returns a copy of the pixel data as an *image.RGBA.
func (s *Shared) ToImage() *image.RGBA {
	return s.IntoImageSurface().Image().(*image.RGBA)
}

// At implements the image.Image interface.
func (s *Shared) At(x, y int) color.Color {
	return s.surf.Pixel(x, y)
}

// Bounds implements the image.Image interface.
func (s *Shared) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.surf.width, s.surf.height)
}

// ColorModel implements the image.Image interface.
func (s *Shared) ColorModel() color.Model {
	return color.RGBAModel
}
