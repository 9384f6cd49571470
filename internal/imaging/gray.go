package imaging

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Luminance weights applied to the R, G and B channels when a color image is
// reduced to a single intensity channel (ITU-R BT.709).
const (
	LumaR = 0.2125
	LumaG = 0.7154
	LumaB = 0.0721
)

// ToIntensity converts a decoded image into an intensity field in [0,1].
//
// # Conversion Rules
//
//   - *image.Gray: raw 8-bit values are divided by 255 when any value
//     exceeds 1; otherwise they are taken as already normalized.
//   - *image.Gray16: values are divided by 65535.
//   - Any other color model: each pixel is un-premultiplied to float RGB in
//     [0,1] and reduced with the BT.709 luminance weights. Fully transparent
//     pixels are black.
//
// The returned field has the same width and height as img.Bounds().
func ToIntensity(img image.Image) *Field {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	f := NewField(width, height)

	switch src := img.(type) {
	case *image.Gray:
		var peak uint8
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				v := src.GrayAt(x+bounds.Min.X, y+bounds.Min.Y).Y
				if v > peak {
					peak = v
				}
				f.Pix[y*width+x] = float64(v)
			}
		}
		if peak > 1 {
			for i := range f.Pix {
				f.Pix[i] /= 255
			}
		}

	case *image.Gray16:
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				f.Pix[y*width+x] = float64(src.Gray16At(x+bounds.Min.X, y+bounds.Min.Y).Y) / 65535
			}
		}

	default:
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				c, ok := colorful.MakeColor(img.At(x+bounds.Min.X, y+bounds.Min.Y))
				if !ok {
					continue
				}
				f.Pix[y*width+x] = clamp01(LumaR*c.R + LumaG*c.G + LumaB*c.B)
			}
		}
	}

	return f
}

// ToGray8 converts a normalized field to an 8-bit grayscale image.
//
// Each sample is scaled by 255 and rounded to the nearest integer; values
// outside [0,1] are clamped first.
func ToGray8(f *Field) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, f.Width, f.Height))
	for i, v := range f.Pix {
		img.Pix[i] = uint8(math.RoundToEven(clamp01(v) * 255))
	}
	return img
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
