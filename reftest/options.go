// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package reftest

import (
	"io"
	"log/slog"
)

// Option configures a Comparator during creation.
//
// Example:
//
//	// Tolerance and output directory from the environment
//	c := reftest.NewComparator()
//
//	// Fixed tolerance, artifacts next to the test
//	c := reftest.NewComparator(reftest.WithTolerance(8), reftest.WithOutputDir("testdata/out"))
type Option func(*Comparator)

// WithTolerance sets the maximum acceptable per-channel difference.
// Without it the comparator uses TolerableDifference.
func WithTolerance(tol uint8) Option {
	return func(c *Comparator) {
		c.tolerance = tol
		c.toleranceSet = true
	}
}

// WithOutputDir writes artifacts to dir instead of resolving OutputDir on
// every write. The directory is created if needed.
func WithOutputDir(dir string) Option {
	return func(c *Comparator) {
		c.outputDir = dir
	}
}

// WithLogger sets the logger for this comparator. Nil means the package
// Logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Comparator) {
		c.logger = l
	}
}

// WithStdout redirects the human-readable summary and artifact lines.
// The default is os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(c *Comparator) {
		c.stdout = w
	}
}
