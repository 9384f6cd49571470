package imaging

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ErrShapeMismatch is returned when two fields that must share dimensions
// do not.
var ErrShapeMismatch = errors.New("shape mismatch")

// MSE returns the mean squared error between a and b:
//
//	(1/(M·N)) · Σ (a[i,j] - b[i,j])²
//
// Both fields must have the same shape; otherwise the returned error wraps
// ErrShapeMismatch. The MSE of two empty fields is 0.
func MSE(a, b *Field) (float64, error) {
	if !a.SameShape(b) {
		return 0, fmt.Errorf("%w: %dx%d vs %dx%d", ErrShapeMismatch, a.Width, a.Height, b.Width, b.Height)
	}
	if a.Len() == 0 {
		return 0, nil
	}

	diff := make([]float64, a.Len())
	floats.SubTo(diff, a.Pix, b.Pix)
	return floats.Dot(diff, diff) / float64(a.Len()), nil
}
