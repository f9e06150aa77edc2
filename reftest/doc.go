// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package reftest compares rendered surfaces against reference images in
// gg's test suite.
//
// A test renders into a surface and calls CompareToFile with a reference
// PNG, or CompareToSurface with a second surface:
//
//	func TestCircle(t *testing.T) {
//	    out := renderCircle()
//	    reftest.CompareToFile(t, out, "circle", "testdata/circle.png")
//	}
//
// Differences up to 2 per channel are treated as rounding noise and ignored.
// Larger differences print a summary and write circle-out.png and
// circle-diff.png to OutputDir. The test fails only when the difference also
// exceeds TolerableDifference.
//
// # Environment
//
//   - GG_TEST_TOLERANCE: tolerance in [0, 255], default 2. Read once per
//     process; a malformed value panics.
//   - GG_TEST_OUTPUT_DIR: artifact directory. Defaults to gg-test-output in
//     os.TempDir.
//
// Comparator exposes the same evaluation with explicit configuration and
// error returns, for tools that run outside go test.
package reftest
