package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/reftest/reftest"
)

func writeGray(t *testing.T, dir, name string, w, h int, v uint8) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	ref := writeGray(t, dir, "ref.png", 40, 30, 100)
	same := writeGray(t, dir, "same.png", 40, 30, 101)
	off := writeGray(t, dir, "off.png", 40, 30, 104)

	tests := []struct {
		name        string
		args        []string
		wantCode    int
		wantStdout  string
		wantOutDir  []string
		emptyOutDir bool
	}{
		{
			name:        "indistinguishable",
			args:        []string{same, ref},
			wantCode:    exitPass,
			wantStdout:  "indistinguishable, 1,200 of 1,200 pixels changed, maximum difference 1 (tolerance 2)",
			emptyOutDir: true,
		},
		{
			name:       "too different",
			args:       []string{"-tolerance", "3", off, ref},
			wantCode:   exitFail,
			wantStdout: "inacceptable, 1,200 of 1,200 pixels changed, maximum difference 4 (tolerance 3)",
			wantOutDir: []string{"off-diff.png", "off-out.png"},
		},
		{
			name:       "within tolerance",
			args:       []string{"-tolerance", "4", "-name", "custom", off, ref},
			wantCode:   exitPass,
			wantStdout: "distinguishable",
			wantOutDir: []string{"custom-diff.png", "custom-out.png"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outDir := filepath.Join(t.TempDir(), "artifacts")
			args := append([]string{"-env", "", "-out", outDir}, tt.args...)

			var stdout, stderr bytes.Buffer
			code := run(args, &stdout, &stderr)
			require.Equal(t, tt.wantCode, code, stderr.String())
			assert.Contains(t, stdout.String(), tt.wantStdout)

			entries, _ := os.ReadDir(outDir)
			var names []string
			for _, e := range entries {
				names = append(names, e.Name())
			}
			if tt.emptyOutDir {
				assert.Empty(t, names)
			} else {
				assert.Equal(t, tt.wantOutDir, names)
			}
		})
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	ref := writeGray(t, dir, "ref.png", 10, 10, 0)
	small := writeGray(t, dir, "small.png", 10, 11, 0)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no args", nil, "usage: refdiff"},
		{"bad tolerance", []string{"-tolerance", "300", ref, ref}, "between 0 and 255"},
		{"missing file", []string{filepath.Join(dir, "nope.png"), ref}, "could not load PNG"},
		{"size mismatch", []string{small, ref}, "image sizes differ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(append([]string{"-env", ""}, tt.args...), &stdout, &stderr)
			assert.Equal(t, exitError, code)
			assert.Contains(t, stderr.String(), tt.wantErr)
		})
	}
}

func TestRun_DotEnv(t *testing.T) {
	dir := t.TempDir()
	ref := writeGray(t, dir, "ref.png", 4, 4, 10)
	off := writeGray(t, dir, "off.png", 4, 4, 20)
	outDir := filepath.Join(dir, "from-env")

	envFile := filepath.Join(dir, "refdiff.env")
	content := reftest.EnvTolerance + "=50\n" + reftest.EnvOutputDir + "=" + outDir + "\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	// godotenv sets process variables; register them so they are restored.
	t.Setenv(reftest.EnvTolerance, "")
	t.Setenv(reftest.EnvOutputDir, "")
	require.NoError(t, os.Unsetenv(reftest.EnvTolerance))
	require.NoError(t, os.Unsetenv(reftest.EnvOutputDir))

	var stdout, stderr bytes.Buffer
	code := run([]string{"-env", envFile, off, ref}, &stdout, &stderr)
	require.Equal(t, exitPass, code, stderr.String())
	assert.True(t, strings.Contains(stdout.String(), "(tolerance 50)"), stdout.String())
	assert.FileExists(t, filepath.Join(outDir, "off-out.png"))
}
