package imaging

import (
	"fmt"
	"math"
	"strings"
)

// Method identifies one of the gradient edge operators.
//
// Methods are ordered; Methods lists them in report order and per-method
// results are kept in [NumMethods]T arrays indexed by Method.
type Method int

const (
	Roberts Method = iota
	Prewitt
	Sobel
	FreiChen

	// NumMethods is the number of supported operators.
	NumMethods = int(FreiChen) + 1
)

// Methods lists every operator in report order.
var Methods = [NumMethods]Method{Roberts, Prewitt, Sobel, FreiChen}

var methodNames = [NumMethods]string{"roberts", "prewitt", "sobel", "freichen"}

// String returns the lower-case method name used in output filenames,
// e.g. "freichen".
func (m Method) String() string {
	if m < 0 || int(m) >= NumMethods {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodNames[m]
}

// Title returns the capitalized method name shown in reports, e.g. "Freichen".
func (m Method) Title() string {
	s := m.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// MarshalText encodes the method as its lower-case name.
func (m Method) MarshalText() ([]byte, error) {
	if m < 0 || int(m) >= NumMethods {
		return nil, fmt.Errorf("invalid method %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText decodes a lower-case (or mixed-case) method name.
func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMethod returns the method with the given name. Matching ignores case.
func ParseMethod(name string) (Method, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range methodNames {
		if n == name {
			return Method(i), nil
		}
	}
	return 0, fmt.Errorf("unknown edge method: %q", name)
}

// Operator maps an intensity field to a normalized gradient-magnitude field
// of the same shape.
type Operator func(*Field) *Field

// Operator returns the gradient operator implementing m.
func (m Method) Operator() Operator {
	switch m {
	case Roberts:
		return RobertsEdge
	case Prewitt:
		return PrewittEdge
	case Sobel:
		return SobelEdge
	case FreiChen:
		return FreiChenEdge
	}
	return nil
}

// Detect runs the operator for m on img.
func Detect(m Method, img *Field) (*Field, error) {
	op := m.Operator()
	if op == nil {
		return nil, fmt.Errorf("unknown edge method %d", int(m))
	}
	return op(img), nil
}

var (
	robertsPosDiag = Kernel{
		{1, 0},
		{0, -1},
	}
	robertsNegDiag = Kernel{
		{0, 1},
		{-1, 0},
	}

	derivative      = []float64{1, 0, -1}
	prewittSmoothed = []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}
	sobelSmoothed   = []float64{1.0 / 4, 2.0 / 4, 1.0 / 4}

	// Horizontal kernels; the vertical ones are their transposes.
	prewittH = outer(derivative, prewittSmoothed)
	sobelH   = outer(derivative, sobelSmoothed)

	freiChenH = Kernel{
		{1, math.Sqrt2, 1},
		{0, 0, 0},
		{-1, -math.Sqrt2, -1},
	}
)

// RobertsEdge computes the Roberts cross gradient magnitude of img,
// sqrt((pos² + neg²) / 2), normalized to [0,1].
func RobertsEdge(img *Field) *Field {
	return Normalize(combine(
		Convolve(img, robertsPosDiag),
		Convolve(img, robertsNegDiag),
		math.Sqrt2,
	))
}

// PrewittEdge computes the Prewitt gradient magnitude of img,
// sqrt((h² + v²) / 2), normalized to [0,1].
func PrewittEdge(img *Field) *Field {
	return Normalize(combine(
		Convolve(img, prewittH),
		Convolve(img, prewittH.Transpose()),
		math.Sqrt2,
	))
}

// SobelEdge computes the Sobel gradient magnitude of img,
// sqrt((h² + v²) / 2), normalized to [0,1].
func SobelEdge(img *Field) *Field {
	return Normalize(combine(
		Convolve(img, sobelH),
		Convolve(img, sobelH.Transpose()),
		math.Sqrt2,
	))
}

// FreiChenEdge computes the Frei-Chen gradient magnitude of img, normalized
// to [0,1].
//
// # Algorithm
//
//  1. Kernels: horizontal rows [1, √2, 1], [0, 0, 0], [-1, -√2, -1];
//     vertical is the transpose.
//
//  2. Convolve img with both kernels using reflect boundary handling.
//
//  3. magnitude = hypot(respX, respY)
//
//  4. Normalize to [0,1]. Zero and constant inputs give an all-zero field.
//
// Only the two gradient masks of the Frei-Chen basis are used.
func FreiChenEdge(img *Field) *Field {
	return Normalize(freiChenMagnitude(img))
}

// freiChenMagnitude returns the raw (unnormalized) Frei-Chen magnitude.
func freiChenMagnitude(img *Field) *Field {
	return combine(
		Convolve(img, freiChenH),
		Convolve(img, freiChenH.Transpose()),
		1,
	)
}

// combine returns hypot(a, b) / scale elementwise. a and b share a shape.
func combine(a, b *Field, scale float64) *Field {
	out := NewField(a.Width, a.Height)
	for i := range out.Pix {
		out.Pix[i] = math.Hypot(a.Pix[i], b.Pix[i]) / scale
	}
	return out
}
