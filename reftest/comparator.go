// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package reftest

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/reftest/compare"
	"github.com/gogpu/reftest/surface"
)

// noiseFloor is the largest difference that is never reported. It is
// independent of the tolerance even though both default to 2.
const noiseFloor uint8 = 2

// Artifact suffixes.
const (
	suffixOut  = "out"
	suffixDiff = "diff"
)

// Verdict classifies a comparison.
type Verdict uint8

const (
	// Indistinguishable means the maximum difference is within the noise floor.
	Indistinguishable Verdict = iota

	// Distinguishable means the difference is visible but within tolerance.
	// Artifacts are written.
	Distinguishable

	// Inacceptable means the difference exceeds the tolerance.
	// Artifacts are written and the comparison fails.
	Inacceptable
)

// String returns a string representation of the verdict.
func (v Verdict) String() string {
	switch v {
	case Indistinguishable:
		return "indistinguishable"
	case Distinguishable:
		return "distinguishable"
	case Inacceptable:
		return "inacceptable"
	default:
		return "unknown"
	}
}

// Result is the outcome of a comparison.
type Result struct {
	Diff    *compare.Diff
	Verdict Verdict

	// Artifacts lists the files written, output first, then diff.
	Artifacts []string
}

// Passed reports whether the difference is within tolerance.
func (r *Result) Passed() bool {
	return r.Verdict != Inacceptable
}

// Comparator compares rendered surfaces against references and writes
// artifacts for visible differences.
//
// A Comparator is safe for concurrent use.
type Comparator struct {
	tolerance    uint8
	toleranceSet bool
	outputDir    string
	logger       *slog.Logger
	stdout       io.Writer
}

// NewComparator creates a Comparator. Unless WithTolerance is given, the
// tolerance is TolerableDifference, which panics on a malformed
// EnvTolerance.
func NewComparator(opts ...Option) *Comparator {
	c := &Comparator{stdout: os.Stdout}
	for _, opt := range opts {
		opt(c)
	}
	if !c.toleranceSet {
		c.tolerance = TolerableDifference()
	}
	return c
}

// Tolerance returns the maximum acceptable per-channel difference.
func (c *Comparator) Tolerance() uint8 {
	return c.tolerance
}

// CompareFile loads the PNG at referencePath as an sRGB surface and
// compares output against it. See Compare.
func (c *Comparator) CompareFile(output *surface.Shared, outputBaseName, referencePath string) (*Result, error) {
	png, err := LoadPNGAsARGB(referencePath)
	if err != nil {
		return nil, err
	}
	reference, err := surface.Wrap(png, surface.TypeSRGB)
	if err != nil {
		return nil, err
	}
	return c.Compare(output, reference, outputBaseName)
}

// Compare diffs output against reference.
//
// If the difference is visible, a summary line is printed and
// {outputBaseName}-out.png and {outputBaseName}-diff.png are written to the
// output directory, whether or not the result passes. An error is returned
// only if artifacts could not be written.
//
// Compare panics if the surfaces differ in size: callers must only compare
// surfaces of equal dimensions.
func (c *Comparator) Compare(output, reference *surface.Shared, outputBaseName string) (*Result, error) {
	return c.evaluateDiff(compare.Surfaces(output, reference), output, outputBaseName)
}

func (c *Comparator) evaluateDiff(bd compare.BufferDiff, output *surface.Shared, outputBaseName string) (*Result, error) {
	if bd.DifferentSizes {
		panic("reftest: surfaces should be of the same size")
	}

	d := bd.Diff
	res := &Result{Diff: d, Verdict: Indistinguishable}
	c.log().Debug("reftest: compared surfaces",
		"name", outputBaseName,
		"changed", d.NumPixelsChanged,
		"max_diff", d.MaxDiff,
		"tolerance", c.tolerance)

	if !distinguishable(d) {
		return res, nil
	}
	res.Verdict = Distinguishable

	fmt.Fprintf(c.stdout, "%s: %s\n", outputBaseName, d)

	for _, a := range []struct {
		surf   *surface.Shared
		suffix string
	}{
		{output, suffixOut},
		{d.Surface, suffixDiff},
	} {
		path, err := c.writeToFile(a.surf, outputBaseName, a.suffix)
		if err != nil {
			return res, err
		}
		res.Artifacts = append(res.Artifacts, path)
	}

	if c.inacceptable(d) {
		res.Verdict = Inacceptable
	}
	return res, nil
}

func distinguishable(d *compare.Diff) bool {
	return d.MaxDiff > noiseFloor
}

func (c *Comparator) inacceptable(d *compare.Diff) bool {
	return d.MaxDiff > c.tolerance
}

// writeToFile writes s as {outputBaseName}-{suffix}.png in the output
// directory and returns the path.
func (c *Comparator) writeToFile(s *surface.Shared, outputBaseName, suffix string) (string, error) {
	dir, err := c.resolveOutputDir()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, fmt.Sprintf("%s-%s.png", outputBaseName, suffix))
	fmt.Fprintf(c.stdout, "%s: %s\n", suffix, path)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("reftest: create artifact: %w", err)
	}
	if err := s.IntoImageSurface().WritePNG(f); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("reftest: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("reftest: write %s: %w", path, err)
	}

	c.log().Info("reftest: wrote artifact", "path", path)
	return path, nil
}

func (c *Comparator) resolveOutputDir() (string, error) {
	if c.outputDir == "" {
		return OutputDir()
	}
	if err := ensureDir(c.outputDir); err != nil {
		return "", err
	}
	return c.outputDir, nil
}

func (c *Comparator) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return Logger()
}
