// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package reftest

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"sync"
)

// EnvTolerance overrides DefaultTolerance. It must hold an integer in [0, 255].
const EnvTolerance = "GG_TEST_TOLERANCE"

// DefaultTolerance is the maximum per-channel difference accepted when
// EnvTolerance is not set.
const DefaultTolerance uint8 = 2

// ErrInvalidTolerance is returned for a malformed EnvTolerance value.
var ErrInvalidTolerance = errors.New("reftest: invalid tolerance")

var tolerance = sync.OnceValues(func() (uint8, error) {
	return toleranceFromEnv(os.LookupEnv)
})

// TolerableDifference returns the process-wide tolerance.
//
// The environment is read on the first call only; the value is fixed for the
// life of the process. A malformed EnvTolerance panics, on the first and on
// every later call.
func TolerableDifference() uint8 {
	v, err := tolerance()
	if err != nil {
		panic(err)
	}
	return v
}

func toleranceFromEnv(lookup func(string) (string, bool)) (uint8, error) {
	s, ok := lookup(EnvTolerance)
	if !ok {
		return DefaultTolerance, nil
	}
	return ParseTolerance(s)
}

// ParseTolerance parses a decimal tolerance in [0, 255] as accepted in
// EnvTolerance. Errors wrap ErrInvalidTolerance.
func ParseTolerance(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: can not parse %s=%q as a number", ErrInvalidTolerance, EnvTolerance, s)
	}
	if v > math.MaxUint8 {
		return 0, fmt.Errorf("%w: %s should be between 0 and 255, got %d", ErrInvalidTolerance, EnvTolerance, v)
	}
	return uint8(v), nil
}
