package imaging

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestToIntensity_Gray8(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 1))
	img.Pix = []uint8{0, 51, 255}

	f := ToIntensity(img)

	want := []float64{0, 0.2, 1}
	for i := range want {
		if math.Abs(f.Pix[i]-want[i]) > 1e-12 {
			t.Errorf("Pix[%d]: got %v, want %v", i, f.Pix[i], want[i])
		}
	}
}

func TestToIntensity_Gray8AlreadyUnit(t *testing.T) {
	// Samples no larger than 1 are taken as already normalized.
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	img.Pix = []uint8{0, 1, 1, 0}

	f := ToIntensity(img)

	want := []float64{0, 1, 1, 0}
	for i := range want {
		if f.Pix[i] != want[i] {
			t.Errorf("Pix[%d]: got %v, want %v", i, f.Pix[i], want[i])
		}
	}
}

func TestToIntensity_Gray16(t *testing.T) {
	img := image.NewGray16(image.Rect(0, 0, 2, 1))
	img.SetGray16(0, 0, color.Gray16{Y: 0})
	img.SetGray16(1, 0, color.Gray16{Y: 65535})

	f := ToIntensity(img)

	if f.Pix[0] != 0 || f.Pix[1] != 1 {
		t.Errorf("got %v, want [0 1]", f.Pix)
	}
}

func TestToIntensity_Color(t *testing.T) {
	tests := []struct {
		name  string
		color color.Color
		want  float64
	}{
		{"black", color.RGBA{0, 0, 0, 255}, 0},
		{"white", color.RGBA{255, 255, 255, 255}, 1},
		{"red", color.RGBA{255, 0, 0, 255}, LumaR},
		{"green", color.RGBA{0, 255, 0, 255}, LumaG},
		{"blue", color.RGBA{0, 0, 255, 255}, LumaB},
		{"transparent", color.RGBA{0, 0, 0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, 2, 2))
			for y := 0; y < 2; y++ {
				for x := 0; x < 2; x++ {
					img.Set(x, y, tt.color)
				}
			}

			f := ToIntensity(img)

			for i, v := range f.Pix {
				if math.Abs(v-tt.want) > 1e-9 {
					t.Errorf("Pix[%d]: got %v, want %v", i, v, tt.want)
				}
				if v < 0 || v > 1 {
					t.Errorf("Pix[%d]: %v outside [0,1]", i, v)
				}
			}
		})
	}
}

func TestToIntensity_OffsetBounds(t *testing.T) {
	full := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := range full.Pix {
		full.Pix[i] = uint8(i * 10)
	}
	sub := full.SubImage(image.Rect(1, 1, 3, 3)).(*image.Gray)

	f := ToIntensity(sub)

	if f.Width != 2 || f.Height != 2 {
		t.Fatalf("shape: got %v, want 2x2", f)
	}
	// Top-left of the sub-image is (1,1) of the full image: index 5.
	if want := 50.0 / 255; math.Abs(f.At(0, 0)-want) > 1e-12 {
		t.Errorf("At(0,0): got %v, want %v", f.At(0, 0), want)
	}
}

func TestToGray8(t *testing.T) {
	f := mustField(t, [][]float64{
		{0, 0.5, 1},
		{-0.3, 1.7, 0.2},
	})

	img := ToGray8(f)

	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("bounds: got %v, want 3x2", img.Bounds())
	}
	want := []uint8{0, 128, 255, 0, 255, 51}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Errorf("Pix[%d]: got %d, want %d", i, img.Pix[i], want[i])
		}
	}
}

func TestToGray8_RoundTrip(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 16, 16))
	for i := range img.Pix {
		img.Pix[i] = uint8(i)
	}

	got := ToGray8(ToIntensity(img))

	for i := range img.Pix {
		if got.Pix[i] != img.Pix[i] {
			t.Fatalf("Pix[%d]: got %d, want %d", i, got.Pix[i], img.Pix[i])
		}
	}
}
