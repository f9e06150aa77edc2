// Command refdiff compares a rendered PNG against a reference PNG using the
// same rules as gg's reference image tests.
//
// Usage:
//
//	refdiff [flags] OUTPUT.png REFERENCE.png
//
// Exit status is 0 when the images are within tolerance, 1 when they are too
// different and 2 on usage or I/O errors.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/reftest/reftest"
	"github.com/gogpu/reftest/surface"
)

const (
	exitPass  = 0
	exitFail  = 1
	exitError = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("refdiff", flag.ContinueOnError)
	flags.SetOutput(stderr)
	var (
		tolerance = flags.String("tolerance", "", "maximum per-channel difference (default $"+reftest.EnvTolerance+" or 2)")
		outDir    = flags.String("out", "", "artifact directory (default $"+reftest.EnvOutputDir+" or a temp subdirectory)")
		name      = flags.String("name", "", "artifact base name (default: output file name without extension)")
		envFile   = flags.String("env", ".env", "dotenv file to load if present")
		verbose   = flags.Bool("v", false, "log comparison details to stderr")
	)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "usage: refdiff [flags] OUTPUT.png REFERENCE.png")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return exitError
	}
	if flags.NArg() != 2 {
		flags.Usage()
		return exitError
	}
	outputPath, referencePath := flags.Arg(0), flags.Arg(1)

	if err := loadEnv(*envFile); err != nil {
		fmt.Fprintf(stderr, "refdiff: %v\n", err)
		return exitError
	}

	tol, err := resolveTolerance(*tolerance)
	if err != nil {
		fmt.Fprintf(stderr, "refdiff: %v\n", err)
		return exitError
	}

	opts := []reftest.Option{reftest.WithTolerance(tol), reftest.WithStdout(stdout)}
	if *outDir != "" {
		opts = append(opts, reftest.WithOutputDir(*outDir))
	}
	if *verbose {
		opts = append(opts, reftest.WithLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))))
	}
	c := reftest.NewComparator(opts...)

	base := *name
	if base == "" {
		base = strings.TrimSuffix(filepath.Base(outputPath), filepath.Ext(outputPath))
	}

	res, err := compareFiles(c, outputPath, referencePath, base)
	if err != nil {
		fmt.Fprintf(stderr, "refdiff: %v\n", err)
		return exitError
	}

	printVerdict(stdout, res, c.Tolerance(), outputPath)
	if !res.Passed() {
		return exitFail
	}
	return exitPass
}

// loadEnv loads path into the environment without overriding variables that
// are already set. A missing file is not an error.
func loadEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func resolveTolerance(flagValue string) (uint8, error) {
	if flagValue != "" {
		return reftest.ParseTolerance(flagValue)
	}
	if v, ok := os.LookupEnv(reftest.EnvTolerance); ok {
		return reftest.ParseTolerance(v)
	}
	return reftest.DefaultTolerance, nil
}

func compareFiles(c *reftest.Comparator, outputPath, referencePath, base string) (*reftest.Result, error) {
	png, err := reftest.LoadPNGAsARGB(outputPath)
	if err != nil {
		return nil, err
	}
	output, err := surface.Wrap(png, surface.TypeSRGB)
	if err != nil {
		return nil, err
	}

	// Different sizes are a caller bug for tests but plain user input here.
	refPNG, err := reftest.LoadPNGAsARGB(referencePath)
	if err != nil {
		return nil, err
	}
	if refPNG.Width() != output.Width() || refPNG.Height() != output.Height() {
		return nil, fmt.Errorf("image sizes differ: %s is %dx%d, %s is %dx%d",
			outputPath, output.Width(), output.Height(),
			referencePath, refPNG.Width(), refPNG.Height())
	}
	reference, err := surface.Wrap(refPNG, surface.TypeSRGB)
	if err != nil {
		return nil, err
	}

	return c.Compare(output, reference, base)
}

func printVerdict(w io.Writer, res *reftest.Result, tolerance uint8, outputPath string) {
	p := message.NewPrinter(language.English)
	total := res.Diff.Surface.Width() * res.Diff.Surface.Height()
	line := p.Sprintf("%s: %s, %d of %d pixels changed, maximum difference %d (tolerance %d)",
		outputPath, res.Verdict, res.Diff.NumPixelsChanged, total, res.Diff.MaxDiff, tolerance)

	var c *color.Color
	switch res.Verdict {
	case reftest.Indistinguishable:
		c = color.New(color.FgGreen)
	case reftest.Distinguishable:
		c = color.New(color.FgYellow)
	default:
		c = color.New(color.FgRed, color.Bold)
	}
	_, _ = c.Fprintln(w, line)
}
