// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package reftest

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvOutputDir names the directory that receives comparison artifacts.
const EnvOutputDir = "GG_TEST_OUTPUT_DIR"

// outputSubdir is joined to os.TempDir when EnvOutputDir is not set.
const outputSubdir = "gg-test-output"

// OutputDir returns the directory for test artifacts, creating it and any
// missing parents. The location is EnvOutputDir if set and non-empty, else
// a fixed subdirectory of os.TempDir. It is resolved on every call.
func OutputDir() (string, error) {
	return outputDir(os.LookupEnv)
}

func outputDir(lookup func(string) (string, bool)) (string, error) {
	path, ok := lookup(EnvOutputDir)
	if !ok || path == "" {
		path = filepath.Join(os.TempDir(), outputSubdir)
	}
	if err := ensureDir(path); err != nil {
		return "", err
	}
	return path, nil
}

// ensureDir creates path if needed. An existing directory is not an error,
// so concurrent callers may race on the same path.
func ensureDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("reftest: could not create output directory: %w", err)
	}
	Logger().Debug("reftest: output directory ready", "path", path)
	return nil
}
