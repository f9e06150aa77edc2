// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package reftest

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	"github.com/gogpu/reftest/surface"
)

// ErrLoadPNG is returned for any failure to load a reference image.
var ErrLoadPNG = errors.New("reftest: could not load PNG")

// LoadPNGAsARGB loads the PNG at path into a FormatARGB32 surface.
//
// The PNG is decoded in its native layout (which may be RGB24) and then
// painted over a transparent ARGB32 surface of the same size, so every
// reference image ends up in the layout used by comparisons.
func LoadPNGAsARGB(path string) (*surface.ImageSurface, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadPNG, err)
	}
	defer func() { _ = f.Close() }()

	png, err := surface.ReadPNG(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadPNG, path, err)
	}

	argb, err := surface.NewImageSurface(surface.FormatARGB32, png.Width(), png.Height())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadPNG, path, err)
	}

	dst := argb.Image()
	draw.Draw(dst, dst.Bounds(), png.Image(), image.Point{}, draw.Over)

	return argb, nil
}
