package tile

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestFitDimensions(t *testing.T) {
	tests := []struct {
		name                 string
		srcW, srcH           int
		dstW, dstH           int
		expectedW, expectedH int
	}{
		{"wide into square", 400, 200, 300, 300, 300, 150},
		{"wide into tall", 400, 200, 100, 300, 100, 50},
		{"wide into short", 400, 200, 500, 100, 200, 100},
		{"square into square", 100, 100, 300, 300, 300, 300},
		{"tall into square", 200, 400, 300, 300, 150, 300},
		{"exact match", 300, 150, 300, 150, 300, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := FitDimensions(tt.srcW, tt.srcH, tt.dstW, tt.dstH)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if w != tt.expectedW || h != tt.expectedH {
				t.Errorf("expected %dx%d, got %dx%d", tt.expectedW, tt.expectedH, w, h)
			}
		})
	}
}

func TestFitDimensions_NeverExceedsTarget(t *testing.T) {
	sizes := []int{1, 7, 99, 100, 333, 1024}
	for _, srcW := range sizes {
		for _, srcH := range sizes {
			for _, dstW := range sizes {
				for _, dstH := range sizes {
					w, h, err := FitDimensions(srcW, srcH, dstW, dstH)
					if err != nil {
						t.Fatalf("unexpected error for %dx%d into %dx%d: %v", srcW, srcH, dstW, dstH, err)
					}
					if w > dstW || h > dstH {
						t.Errorf("fit of %dx%d into %dx%d exceeds target: %dx%d", srcW, srcH, dstW, dstH, w, h)
					}
				}
			}
		}
	}
}

func TestFitDimensions_ZeroTarget(t *testing.T) {
	_, _, err := FitDimensions(400, 200, 300, 0)
	if !errors.Is(err, ErrDimension) {
		t.Errorf("expected ErrDimension for zero target height, got %v", err)
	}

	_, _, err = FitDimensions(400, 200, 0, 300)
	if !errors.Is(err, ErrDimension) {
		t.Errorf("expected ErrDimension for zero target width, got %v", err)
	}
}

func TestFitDimensions_ZeroSource(t *testing.T) {
	_, _, err := FitDimensions(0, 200, 300, 300)
	if !errors.Is(err, ErrDimension) {
		t.Errorf("expected ErrDimension for zero source width, got %v", err)
	}
}

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestResizeToFit(t *testing.T) {
	src := solidImage(400, 200, color.RGBA{R: 255, A: 255})

	resized, err := ResizeToFit(src, 300, 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bounds := resized.Bounds()
	if bounds.Dx() != 300 || bounds.Dy() != 150 {
		t.Errorf("expected 300x150, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestResizeToFit_ZeroTarget(t *testing.T) {
	src := solidImage(400, 200, color.RGBA{R: 255, A: 255})
	_, err := ResizeToFit(src, 300, 0)
	if !errors.Is(err, ErrDimension) {
		t.Errorf("expected ErrDimension, got %v", err)
	}
}

func TestCenterOnBacking(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	src := solidImage(100, 100, red)

	out := CenterOnBacking(src, 300, 200, white)

	bounds := out.Bounds()
	if bounds.Dx() != 300 || bounds.Dy() != 200 {
		t.Fatalf("expected exact slot dimensions 300x200, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	// Center pixel comes from the source image.
	if got := out.RGBAAt(150, 100); got != red {
		t.Errorf("center pixel: expected %v, got %v", red, got)
	}

	// Corners are backing color.
	corners := []image.Point{{0, 0}, {299, 0}, {0, 199}, {299, 199}}
	for _, p := range corners {
		if got := out.RGBAAt(p.X, p.Y); got != white {
			t.Errorf("corner %v: expected backing %v, got %v", p, white, got)
		}
	}
}

func TestCenterOnBacking_ExactFit(t *testing.T) {
	blue := color.RGBA{B: 255, A: 255}
	src := solidImage(50, 50, blue)

	out := CenterOnBacking(src, 50, 50, color.White)

	if got := out.RGBAAt(0, 0); got != blue {
		t.Errorf("expected image to cover full slot, got %v at origin", got)
	}
}

func TestCenterOnBacking_OddOffset(t *testing.T) {
	// 301-100=201, offset 100 (floor of 100.5).
	src := solidImage(100, 100, color.RGBA{G: 255, A: 255})
	out := CenterOnBacking(src, 301, 200, color.White)

	if got := out.RGBAAt(100, 50); (got != color.RGBA{G: 255, A: 255}) {
		t.Errorf("expected image pixel at floored offset, got %v", got)
	}
	if got := out.RGBAAt(99, 50); (got != color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("expected backing just before offset, got %v", got)
	}
}
