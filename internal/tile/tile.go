// Package tile fits photos into fixed-size slots: proportional resize plus
// centered compositing onto a backing canvas.
package tile

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ErrDimension is returned when a fit target or source dimension is zero or
// negative. Callers should treat it as fatal for that operation.
var ErrDimension = errors.New("invalid dimension")

// FitDimensions computes the largest size that fits within (dstW, dstH) while
// preserving the source aspect ratio. The result never exceeds the target on
// either axis; the unconstrained axis may come out strictly smaller due to
// integer truncation.
func FitDimensions(srcW, srcH, dstW, dstH int) (int, int, error) {
	if srcW <= 0 || srcH <= 0 {
		return 0, 0, fmt.Errorf("%w: source %dx%d", ErrDimension, srcW, srcH)
	}
	if dstW <= 0 || dstH <= 0 {
		return 0, 0, fmt.Errorf("%w: target %dx%d", ErrDimension, dstW, dstH)
	}

	srcRatio := float64(srcW) / float64(srcH)
	dstRatio := float64(dstW) / float64(dstH)

	if srcRatio > dstRatio {
		// Source is relatively wider, constrain by width.
		return dstW, int(float64(dstW) / srcRatio), nil
	}
	return int(float64(dstH) * srcRatio), dstH, nil
}

// ResizeToFit scales img to the largest size fitting within (dstW, dstH)
// while keeping its aspect ratio. CatmullRom is used for resampling; cheaper
// kernels alias visibly when downscaling for print.
func ResizeToFit(img image.Image, dstW, dstH int) (image.Image, error) {
	bounds := img.Bounds()
	w, h, err := FitDimensions(bounds.Dx(), bounds.Dy(), dstW, dstH)
	if err != nil {
		return nil, err
	}
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("%w: fit of %dx%d into %dx%d collapses to %dx%d",
			ErrDimension, bounds.Dx(), bounds.Dy(), dstW, dstH, w, h)
	}

	resized := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)
	return resized, nil
}

// CenterOnBacking places img centered on a freshly allocated backing canvas
// of exactly (slotW, slotH) filled with bg. The image must already fit within
// the slot; no resizing happens here. Inputs with alpha are composited over
// the backing color, which also normalizes every tile to an opaque RGBA
// raster.
func CenterOnBacking(img image.Image, slotW, slotH int, bg color.Color) *image.RGBA {
	backing := image.NewRGBA(image.Rect(0, 0, slotW, slotH))
	draw.Draw(backing, backing.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	offsetX := (slotW - w) / 2
	offsetY := (slotH - h) / 2
	target := image.Rect(offsetX, offsetY, offsetX+w, offsetY+h)
	draw.Draw(backing, target, img, img.Bounds().Min, draw.Over)

	return backing
}
