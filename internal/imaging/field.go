package imaging

import "fmt"

// Field is a 2-D array of float64 samples stored in row-major order.
//
// Intensity images, raw gradient magnitudes and normalized gradient fields all
// use this type. Pix[y*Width+x] holds the sample at column x, row y.
type Field struct {
	Width  int
	Height int
	Pix    []float64
}

// NewField allocates a zero-valued field of the given dimensions.
func NewField(width, height int) *Field {
	if width < 0 || height < 0 {
		width, height = 0, 0
	}
	return &Field{
		Width:  width,
		Height: height,
		Pix:    make([]float64, width*height),
	}
}

// FieldFromRows builds a field from a slice of equal-length rows.
//
// Returns an error if the rows are ragged.
func FieldFromRows(rows [][]float64) (*Field, error) {
	if len(rows) == 0 {
		return NewField(0, 0), nil
	}
	width := len(rows[0])
	f := NewField(width, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d columns, want %d", y, len(row), width)
		}
		copy(f.Pix[y*width:(y+1)*width], row)
	}
	return f, nil
}

// At returns the sample at column x, row y.
func (f *Field) At(x, y int) float64 {
	return f.Pix[y*f.Width+x]
}

// Set stores v at column x, row y.
func (f *Field) Set(x, y int, v float64) {
	f.Pix[y*f.Width+x] = v
}

// Clone returns a deep copy of f.
func (f *Field) Clone() *Field {
	c := NewField(f.Width, f.Height)
	copy(c.Pix, f.Pix)
	return c
}

// SameShape reports whether f and g have identical dimensions.
func (f *Field) SameShape(g *Field) bool {
	return f.Width == g.Width && f.Height == g.Height && len(f.Pix) == len(g.Pix)
}

// Len returns the number of samples.
func (f *Field) Len() int {
	return len(f.Pix)
}

func (f *Field) String() string {
	return fmt.Sprintf("Field(%dx%d)", f.Width, f.Height)
}
