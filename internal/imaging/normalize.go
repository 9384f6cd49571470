package imaging

import (
	"gonum.org/v1/gonum/floats"
)

// Normalize rescales f into [0,1] and returns the result as a new field.
//
// The global minimum is subtracted from every sample; if the shifted maximum
// is exactly zero the field is left all-zero, otherwise every sample is
// divided by that maximum. The output minimum is therefore exactly 0 and the
// maximum exactly 1 unless the input was constant. f is not modified.
func Normalize(f *Field) *Field {
	out := f.Clone()
	if out.Len() == 0 {
		return out
	}

	floats.AddConst(-floats.Min(out.Pix), out.Pix)

	peak := floats.Max(out.Pix)
	if peak == 0 {
		return out
	}
	for i, v := range out.Pix {
		out.Pix[i] = v / peak
	}
	return out
}
