package edge

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestGaussianBlur_SigmaZeroIsIdentity(t *testing.T) {
	src := grayStepRaster(8, 8, 4)

	out, err := GaussianBlur(src, 0)
	if err != nil {
		t.Fatalf("GaussianBlur failed: %v", err)
	}
	if !bytes.Equal(out.Pix, src.Pix) {
		t.Error("sigma 0 must return the input unchanged")
	}
	out.Pix[0] = 99
	if src.Pix[0] == 99 {
		t.Error("identity output must not alias the input buffer")
	}
}

func TestGaussianBlur_UniformStaysUniform(t *testing.T) {
	src := grayRaster(10, 10, 128)

	out, err := GaussianBlur(src, 1.5)
	if err != nil {
		t.Fatalf("GaussianBlur failed: %v", err)
	}
	for i, v := range out.Pix {
		if v != 128 {
			t.Fatalf("pixel %d: got %d, want 128 (normalized kernel on uniform input)", i, v)
		}
	}
}

func TestGaussianBlur_SpreadsBrightSpot(t *testing.T) {
	src := grayRaster(11, 11, 0)
	src.Pix[5*11+5] = 255

	out, err := GaussianBlur(src, 1.0)
	if err != nil {
		t.Fatalf("GaussianBlur failed: %v", err)
	}
	if out.Pix[5*11+5] >= 255 {
		t.Error("center of bright spot should be reduced after blur")
	}
	// A sigma-1 kernel has enough weight one pixel out to register.
	if out.Pix[5*11+4] == 0 || out.Pix[5*11+6] == 0 || out.Pix[4*11+5] == 0 || out.Pix[6*11+5] == 0 {
		t.Error("immediate neighbors should receive brightness from the blur")
	}
}

func TestGaussianBlur_InvalidInputs(t *testing.T) {
	if _, err := GaussianBlur(grayRaster(4, 4, 0), -0.5); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("negative sigma: got %v, want ErrInvalidParameter", err)
	}
	if _, err := GaussianBlur(colorRaster(4, 4, 1, 2, 3), 1.0); !errors.Is(err, ErrInvalidChannelCount) {
		t.Errorf("3-channel input: got %v, want ErrInvalidChannelCount", err)
	}
}

func TestGaussianWeights(t *testing.T) {
	tests := []struct {
		sigma    float64
		wantSize int
	}{
		{0.1, 3}, // floored at 3
		{0.5, 5}, // radius floor(2.0) = 2
		{1.0, 9}, // radius 4
		{2.5, 21},
	}

	for _, tt := range tests {
		w := gaussianWeights(tt.sigma)
		if len(w) != tt.wantSize {
			t.Errorf("sigma %v: kernel size got %d, want %d", tt.sigma, len(w), tt.wantSize)
		}

		var sum float64
		for _, v := range w {
			sum += v
		}
		if math.Abs(sum-1.0) > 1e-12 {
			t.Errorf("sigma %v: weights sum to %v, want 1.0", tt.sigma, sum)
		}

		// Symmetric and peaked at the center.
		mid := len(w) / 2
		for i := 0; i < mid; i++ {
			if math.Abs(w[i]-w[len(w)-1-i]) > 1e-12 {
				t.Errorf("sigma %v: weights not symmetric at %d", tt.sigma, i)
			}
			if w[i] > w[mid] {
				t.Errorf("sigma %v: weight %d exceeds the center weight", tt.sigma, i)
			}
		}
	}
}
