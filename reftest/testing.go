// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package reftest

import "github.com/gogpu/reftest/surface"

// TB is the subset of testing.TB used by the assertion helpers.
// *testing.T and *testing.B satisfy it.
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
}

// CompareToFile compares output to the reference PNG at referencePath and
// fails the test if they are too different. See CompareToSurface.
func CompareToFile(t TB, output *surface.Shared, outputBaseName, referencePath string) {
	t.Helper()
	NewComparator().AssertFile(t, output, outputBaseName, referencePath)
}

// CompareToSurface compares two surfaces and fails the test if they are too
// different.
//
// If outputBaseName is "foo" and the surfaces differ visibly, foo-out.png
// with the output and foo-diff.png with a visual diff are written to
// OutputDir, even when the difference is within TolerableDifference.
func CompareToSurface(t TB, output, reference *surface.Shared, outputBaseName string) {
	t.Helper()
	NewComparator().AssertSurface(t, output, reference, outputBaseName)
}

// AssertFile is CompareFile with failures reported through t.
func (c *Comparator) AssertFile(t TB, output *surface.Shared, outputBaseName, referencePath string) {
	t.Helper()
	res, err := c.CompareFile(output, outputBaseName, referencePath)
	c.assert(t, res, err, outputBaseName)
}

// AssertSurface is Compare with failures reported through t.
func (c *Comparator) AssertSurface(t TB, output, reference *surface.Shared, outputBaseName string) {
	t.Helper()
	res, err := c.Compare(output, reference, outputBaseName)
	c.assert(t, res, err, outputBaseName)
}

func (c *Comparator) assert(t TB, res *Result, err error, outputBaseName string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: %v", outputBaseName, err)
		return
	}
	if !res.Passed() {
		t.Fatalf("%s: surfaces are too different (%s, tolerance %d)", outputBaseName, res.Diff, c.tolerance)
	}
}
