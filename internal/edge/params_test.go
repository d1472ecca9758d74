package edge

import (
	"errors"
	"testing"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in      string
		want    Algorithm
		wantErr bool
	}{
		{"canny", AlgorithmCanny, false},
		{"sobel", AlgorithmSobel, false},
		{"laplacian", AlgorithmLaplacian, false},
		{"Canny", 0, true},
		{"prewitt", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidParameter) {
					t.Errorf("got %v, want ErrInvalidParameter", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			if got.String() != tt.in {
				t.Errorf("String(): got %q, want %q", got.String(), tt.in)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"x", DirectionX, false},
		{"y", DirectionY, false},
		{"combined", DirectionCombined, false},
		{"", DirectionCombined, false}, // empty selects the default
		{"xy", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("ParseDirection(%q): got %v, want ErrInvalidParameter", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseDirection(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseDirection(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParams_Validation(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr error
	}{
		{"canny defaults", DefaultCannyParams(), nil},
		{"canny sigma zero", CannyParams{Sigma: 0, MinVal: 0, MaxVal: 255, ApertureSize: 3}, nil},
		{"canny sigma at max", CannyParams{Sigma: MaxSigma, MinVal: 50, MaxVal: 150, ApertureSize: 7}, nil},
		{"canny sigma negative", CannyParams{Sigma: -1, MinVal: 50, MaxVal: 150, ApertureSize: 3}, ErrInvalidParameter},
		{"canny sigma too large", CannyParams{Sigma: 5.1, MinVal: 50, MaxVal: 150, ApertureSize: 3}, ErrInvalidParameter},
		{"canny minVal negative", CannyParams{Sigma: 1, MinVal: -1, MaxVal: 150, ApertureSize: 3}, ErrInvalidParameter},
		{"canny maxVal over 255", CannyParams{Sigma: 1, MinVal: 50, MaxVal: 256, ApertureSize: 3}, ErrInvalidParameter},
		{"canny threshold order", CannyParams{Sigma: 1, MinVal: 151, MaxVal: 150, ApertureSize: 3}, ErrInvalidThresholdOrder},
		{"canny aperture 9", CannyParams{Sigma: 1, MinVal: 50, MaxVal: 150, ApertureSize: 9}, ErrInvalidParameter},
		{"canny aperture 1", CannyParams{Sigma: 1, MinVal: 50, MaxVal: 150, ApertureSize: 1}, ErrInvalidParameter},
		{"sobel defaults", DefaultSobelParams(), nil},
		{"sobel ksize 7", SobelParams{Direction: DirectionX, KSize: 7}, nil},
		{"sobel ksize 1", SobelParams{Direction: DirectionX, KSize: 1}, ErrInvalidParameter},
		{"sobel ksize even", SobelParams{Direction: DirectionY, KSize: 4}, ErrInvalidParameter},
		{"sobel bad direction", SobelParams{Direction: Direction(42), KSize: 3}, ErrInvalidParameter},
		{"laplacian defaults", DefaultLaplacianParams(), nil},
		{"laplacian ksize 1", LaplacianParams{KSize: 1}, nil},
		{"laplacian ksize 9", LaplacianParams{KSize: 9}, ErrInvalidParameter},
		{"laplacian ksize zero", LaplacianParams{KSize: 0}, ErrInvalidParameter},
	}

	src := stepRaster(10, 10, 5)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Detect(src, tt.params)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDetect_NilParams(t *testing.T) {
	if _, err := Detect(stepRaster(4, 4, 2), nil); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("nil params: got %v, want ErrInvalidParameter", err)
	}
}

func TestDetect_FailFast(t *testing.T) {
	// Validation failures must be reported before any pixel is touched, even
	// on a raster that would itself fail later stages.
	bad := &Raster{Width: 3, Height: 3, Channels: 3, Pix: make([]uint8, 5)}
	if _, err := Detect(bad, DefaultCannyParams()); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("malformed raster: got %v, want ErrInvalidParameter", err)
	}
}

func TestDetect_GrayscaleInputRejected(t *testing.T) {
	if _, err := Detect(grayRaster(4, 4, 0), DefaultSobelParams()); !errors.Is(err, ErrInvalidChannelCount) {
		t.Errorf("1-channel input: got %v, want ErrInvalidChannelCount", err)
	}
}

func TestParamsAlgorithmTags(t *testing.T) {
	if got := DefaultCannyParams().Algorithm(); got != AlgorithmCanny {
		t.Errorf("canny tag: got %v", got)
	}
	if got := DefaultSobelParams().Algorithm(); got != AlgorithmSobel {
		t.Errorf("sobel tag: got %v", got)
	}
	if got := DefaultLaplacianParams().Algorithm(); got != AlgorithmLaplacian {
		t.Errorf("laplacian tag: got %v", got)
	}
}
