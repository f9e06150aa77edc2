// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestWrap(t *testing.T) {
	argb, _ := NewImageSurface(FormatARGB32, 2, 2)
	rgb, _ := NewImageSurface(FormatRGB24, 2, 2)

	s, err := Wrap(argb, TypeLinearRGB)
	if err != nil {
		t.Fatalf("Wrap(ARGB32) error = %v", err)
	}
	if s.Type() != TypeLinearRGB {
		t.Errorf("Type() = %v, want %v", s.Type(), TypeLinearRGB)
	}
	if s.Size() != image.Pt(2, 2) {
		t.Errorf("Size() = %v, want (2,2)", s.Size())
	}

	if _, err := Wrap(rgb, TypeSRGB); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Wrap(RGB24) error = %v, want %v", err, ErrInvalidFormat)
	}
	if _, err := Wrap(nil, TypeSRGB); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Wrap(nil) error = %v, want %v", err, ErrInvalidFormat)
	}
}

func TestShared_IntoImageSurfaceCopies(t *testing.T) {
	base, _ := NewImageSurface(FormatARGB32, 2, 2)
	base.Fill(Pixel{B: 200, A: 255})
	s, _ := Wrap(base, TypeSRGB)

	out := s.IntoImageSurface()
	_ = out.SetPixel(0, 0, Pixel{})

	if got := s.Pixel(0, 0); got != (Pixel{B: 200, A: 255}) {
		t.Errorf("shared surface modified through copy: %v", got)
	}
}

func TestFromImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 13, 12))
	src.SetRGBA(10, 10, color.RGBA{R: 1, G: 2, B: 3, A: 255})

	s, err := FromImage(src, TypeSRGB)
	if err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}
	if s.Width() != 3 || s.Height() != 2 {
		t.Errorf("Dimensions = (%d, %d), want (3, 2)", s.Width(), s.Height())
	}
	if got := s.Pixel(0, 0); got != (Pixel{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("Pixel(0, 0) = %v, want origin-shifted source pixel", got)
	}

	if _, err := FromImage(image.NewRGBA(image.Rectangle{}), TypeSRGB); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("FromImage(empty) error = %v, want %v", err, ErrInvalidDimensions)
	}
}

func TestShared_ImageInterface(t *testing.T) {
	base, _ := NewImageSurface(FormatARGB32, 4, 4)
	_ = base.SetPixel(3, 1, Pixel{R: 80, G: 40, A: 128})
	s, _ := Wrap(base, TypeSRGB)

	var img image.Image = s
	if img.Bounds() != image.Rect(0, 0, 4, 4) {
		t.Errorf("Bounds() = %v", img.Bounds())
	}
	got := color.RGBAModel.Convert(img.At(3, 1)).(color.RGBA)
	if got != (color.RGBA{R: 80, G: 40, A: 128}) {
		t.Errorf("At(3, 1) = %v", got)
	}

	rgba := s.ToImage()
	if rgba.RGBAAt(3, 1) != got {
		t.Errorf("ToImage().RGBAAt(3, 1) = %v, want %v", rgba.RGBAAt(3, 1), got)
	}
}

func TestPixel_Diff(t *testing.T) {
	a := Pixel{R: 10, G: 200, B: 0, A: 255}
	b := Pixel{R: 13, G: 190, B: 0, A: 250}

	d := a.Diff(b)
	if d != (Pixel{R: 3, G: 10, B: 0, A: 5}) {
		t.Errorf("Diff() = %v", d)
	}
	if d != b.Diff(a) {
		t.Error("Diff() should be symmetric")
	}
	if d.MaxChannel() != 10 {
		t.Errorf("MaxChannel() = %d, want 10", d.MaxChannel())
	}
}
