// Package units converts physical print measurements to pixel counts.
package units

// CmPerInch is the exact definition of the inch.
const CmPerInch = 2.54

// CmToPixels converts a length in centimeters to a pixel count at the given
// resolution. The result is truncated toward zero, so it can be up to one
// pixel short of the mathematically exact value. Negative or zero lengths are
// passed through unchanged; callers are responsible for rejecting nonsensical
// configurations.
func CmToPixels(cm float64, dpi int) int {
	inches := cm / CmPerInch
	return int(inches * float64(dpi))
}

// MmToCm converts millimeters to centimeters.
func MmToCm(mm int) float64 {
	return float64(mm) / 10.0
}
