package math

import (
	"errors"

	"go.uber.org/zap"
)

var (
	// ErrSingularMatrix is returned by strict inversion when the determinant is zero.
	ErrSingularMatrix = errors.New("matrix is singular, determinant is 0")
	// ErrInvalidEulerOrder is returned when decoding an unknown rotation order.
	ErrInvalidEulerOrder = errors.New("invalid euler order")
	// ErrDegenerateScale is returned by DecomposeChecked when a scale axis is zero.
	ErrDegenerateScale = errors.New("matrix has a zero or non-finite scale axis")
)

var log = zap.NewNop()

// SetLogger routes package diagnostics (e.g. permissive inversion of a
// singular matrix) to l. Passing nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	log = l
}
