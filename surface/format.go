// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

// Format represents a pixel storage format.
//
// Both formats use 4 bytes per pixel in R, G, B, A order, which is the
// layout of *image.RGBA. They differ only in how the fourth byte is treated.
type Format uint8

const (
	// FormatARGB32 is 32-bit color with premultiplied alpha.
	// This is the canonical layout for comparisons.
	FormatARGB32 Format = iota

	// FormatRGB24 is 24-bit color stored in a 32-bit slot.
	// The alpha byte is ignored and always read back as opaque.
	FormatRGB24

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// HasAlpha indicates if the format has a meaningful alpha channel.
	HasAlpha bool

	// IsPremultiplied indicates if alpha is premultiplied.
	IsPremultiplied bool
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatARGB32: {
		BytesPerPixel:   4,
		HasAlpha:        true,
		IsPremultiplied: true,
	},
	FormatRGB24: {
		BytesPerPixel:   4,
		HasAlpha:        false,
		IsPremultiplied: false,
	},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// HasAlpha returns true if this format has an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Info().HasAlpha
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatARGB32:
		return "ARGB32"
	case FormatRGB24:
		return "RGB24"
	default:
		return "Unknown"
	}
}
