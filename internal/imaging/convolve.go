package imaging

import (
	"github.com/anthonynsimon/bild/parallel"
)

// Kernel is a small dense convolution kernel indexed as Kernel[row][col].
type Kernel [][]float64

// Transpose returns a new kernel with rows and columns swapped.
func (k Kernel) Transpose() Kernel {
	if len(k) == 0 {
		return Kernel{}
	}
	t := make(Kernel, len(k[0]))
	for i := range t {
		t[i] = make([]float64, len(k))
		for j := range k {
			t[i][j] = k[j][i]
		}
	}
	return t
}

// outer builds a kernel from a column vector and a row vector.
func outer(col, row []float64) Kernel {
	k := make(Kernel, len(col))
	for j, c := range col {
		k[j] = make([]float64, len(row))
		for i, r := range row {
			k[j][i] = c * r
		}
	}
	return k
}

// Convolve returns the convolution of src with k using reflect boundary
// handling.
//
// The kernel is flipped (true convolution, not correlation) and anchored at
// index len/2 along each axis, so for a 3x3 kernel:
//
//	out[y][x] = Σ k[j][i] * src[y+1-j][x+1-i]
//
// and for a 2x2 kernel the anchor sits at index 1, i.e. the samples used are
// src[y..y+1][x..x+1].
//
// Out-of-range samples mirror the edge with the edge sample repeated
// (d c b a | a b c d | d c b a). Rows are split across CPUs; every worker
// writes to its own rows of the output only.
func Convolve(src *Field, k Kernel) *Field {
	dst := NewField(src.Width, src.Height)
	if src.Len() == 0 || len(k) == 0 || len(k[0]) == 0 {
		return dst
	}

	cy := len(k) / 2
	cx := len(k[0]) / 2
	width, height := src.Width, src.Height

	parallel.Line(height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < width; x++ {
				var sum float64
				for j, row := range k {
					py := reflect(y+cy-j, height)
					for i, w := range row {
						if w == 0 {
							continue
						}
						px := reflect(x+cx-i, width)
						sum += w * src.Pix[py*width+px]
					}
				}
				dst.Pix[y*width+x] = sum
			}
		}
	})

	return dst
}

// reflect maps an index onto [0, n) by mirroring about the array edges with
// the edge sample repeated.
func reflect(i, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * n
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - i - 1
	}
	return i
}
