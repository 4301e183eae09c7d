// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors MUST return these sentinels (possibly with call-site
// context added via fmt.Errorf("...: %w", Err...)) and tests MUST check them
// via errors.Is. No function in this package panics on user input.

package matrix

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the root of the validation error family. Every more
// specific sentinel below wraps it, so errors.Is(err, ErrInvalidInput)
// matches any malformed-matrix condition.
var ErrInvalidInput = errors.New("matrix: invalid input")

var (
	// ErrTooFewEntities - a distance matrix needs at least two entities.
	ErrTooFewEntities = fmt.Errorf("%w: fewer than 2 entities", ErrInvalidInput)

	// ErrBadShape - the cell grid is not N×N for N labels.
	ErrBadShape = fmt.Errorf("%w: shape does not match label count", ErrInvalidInput)

	// ErrDuplicateLabel - the same label appears more than once.
	ErrDuplicateLabel = fmt.Errorf("%w: duplicate label", ErrInvalidInput)

	// ErrEmptyLabel - a label is the empty string.
	ErrEmptyLabel = fmt.Errorf("%w: empty label", ErrInvalidInput)

	// ErrNaNInf - a NaN or ±Inf value was encountered; distances must be finite.
	ErrNaNInf = fmt.Errorf("%w: NaN or Inf distance", ErrInvalidInput)

	// ErrNegative - a distance is negative; distances must be >= 0.
	ErrNegative = fmt.Errorf("%w: negative distance", ErrInvalidInput)

	// ErrNonZeroDiagonal - a diagonal entry deviates from zero beyond epsilon.
	ErrNonZeroDiagonal = fmt.Errorf("%w: diagonal not zero within eps", ErrInvalidInput)

	// ErrAsymmetry - d[i][j] and d[j][i] differ beyond epsilon.
	ErrAsymmetry = fmt.Errorf("%w: not symmetric within eps", ErrInvalidInput)

	// ErrOutOfRange - an index passed to At/Label is outside [0, N).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadEpsilon - epsilon must be finite and non-negative.
	ErrBadEpsilon = errors.New("matrix: epsilon must be finite, non-negative")
)
