// Package layout models page geometry and computes how many same-size photo
// slots fit on a page.
package layout

import "fmt"

// PhysicalSize is a print size in centimeters. It is a value type used as a
// grouping key; both dimensions must be strictly positive to be valid.
type PhysicalSize struct {
	WidthCm  float64
	HeightCm float64
}

// Valid reports whether both dimensions are strictly positive.
func (s PhysicalSize) Valid() bool {
	return s.WidthCm > 0 && s.HeightCm > 0
}

func (s PhysicalSize) String() string {
	return fmt.Sprintf("%g×%gcm", s.WidthCm, s.HeightCm)
}

// PageSpec is the physical page a collage is rendered onto.
type PageSpec struct {
	Name     string
	WidthCm  float64
	HeightCm float64
}

// GridPlan is the slot grid that fits a given slot size on a page.
type GridPlan struct {
	Cols int
	Rows int
}

// Capacity returns the number of slots per page.
func (g GridPlan) Capacity() int {
	return g.Cols * g.Rows
}

// PlanGrid computes the maximum grid of slot-sized cells that fits on the
// page. Each slot needs slot+margin of pitch except the last one on an axis,
// so one margin is added back to the available span before dividing. Counts
// are clamped to zero whenever the pitch or the available span is not
// positive, so undersized pages yield capacity 0 rather than a negative
// count.
func PlanGrid(page PageSpec, slot PhysicalSize, marginCm float64) GridPlan {
	return GridPlan{
		Cols: axisCount(page.WidthCm, slot.WidthCm, marginCm),
		Rows: axisCount(page.HeightCm, slot.HeightCm, marginCm),
	}
}

func axisCount(pageCm, slotCm, marginCm float64) int {
	available := pageCm - 2*marginCm
	pitch := slotCm + marginCm
	if pitch <= 0 || available <= 0 {
		return 0
	}
	n := int((available + marginCm) / pitch)
	if n < 0 {
		return 0
	}
	return n
}
