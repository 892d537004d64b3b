package layout

import "testing"

func TestPlanGrid_A4_10x15(t *testing.T) {
	page := PageSpec{Name: "a4", WidthCm: 21.0, HeightCm: 29.7}
	slot := PhysicalSize{WidthCm: 10, HeightCm: 15}
	margin := 0.2

	plan := PlanGrid(page, slot, margin)

	// cols slots must fit in the available width: cols*(10+0.2) - 0.2 <= 20.6
	availW := page.WidthCm - 2*margin
	if used := float64(plan.Cols)*(slot.WidthCm+margin) - margin; used > availW+1e-9 {
		t.Errorf("cols=%d overflows available width: used %.2f > %.2f", plan.Cols, used, availW)
	}
	availH := page.HeightCm - 2*margin
	if used := float64(plan.Rows)*(slot.HeightCm+margin) - margin; used > availH+1e-9 {
		t.Errorf("rows=%d overflows available height: used %.2f > %.2f", plan.Rows, used, availH)
	}

	// One more slot on either axis must not fit.
	if extra := float64(plan.Cols+1)*(slot.WidthCm+margin) - margin; extra <= availW {
		t.Errorf("cols=%d is not maximal: %d slots would still fit", plan.Cols, plan.Cols+1)
	}
	if extra := float64(plan.Rows+1)*(slot.HeightCm+margin) - margin; extra <= availH {
		t.Errorf("rows=%d is not maximal: %d slots would still fit", plan.Rows, plan.Rows+1)
	}

	if plan.Cols != 2 || plan.Rows != 1 {
		t.Errorf("expected 2×1 grid for 10×15cm on a4, got %d×%d", plan.Cols, plan.Rows)
	}
	if plan.Capacity() != 2 {
		t.Errorf("expected capacity 2, got %d", plan.Capacity())
	}
}

func TestPlanGrid_SlotLargerThanPage(t *testing.T) {
	page := PageSpec{Name: "a4", WidthCm: 21.0, HeightCm: 29.7}
	slot := PhysicalSize{WidthCm: 25, HeightCm: 10}

	plan := PlanGrid(page, slot, 0.2)

	if plan.Cols != 0 {
		t.Errorf("expected 0 cols for oversized slot, got %d", plan.Cols)
	}
	if plan.Capacity() != 0 {
		t.Errorf("expected capacity 0, got %d", plan.Capacity())
	}
}

func TestPlanGrid_ZeroMargin(t *testing.T) {
	page := PageSpec{WidthCm: 20, HeightCm: 30}
	slot := PhysicalSize{WidthCm: 10, HeightCm: 10}

	plan := PlanGrid(page, slot, 0)

	if plan.Cols != 2 || plan.Rows != 3 {
		t.Errorf("expected 2×3, got %d×%d", plan.Cols, plan.Rows)
	}
}

func TestPlanGrid_TinyPageClampsToZero(t *testing.T) {
	// Page smaller than twice the margin: available span goes negative.
	page := PageSpec{WidthCm: 0.3, HeightCm: 0.3}
	slot := PhysicalSize{WidthCm: 10, HeightCm: 10}

	plan := PlanGrid(page, slot, 0.2)

	if plan.Cols != 0 || plan.Rows != 0 {
		t.Errorf("expected 0×0 for tiny page, got %d×%d", plan.Cols, plan.Rows)
	}
}

func TestPlanGrid_ExactFit(t *testing.T) {
	// 2*(10+0.5) - 0.5 = 20.5 available exactly.
	page := PageSpec{WidthCm: 21.5, HeightCm: 21.5}
	slot := PhysicalSize{WidthCm: 10, HeightCm: 10}

	plan := PlanGrid(page, slot, 0.5)

	if plan.Cols != 2 || plan.Rows != 2 {
		t.Errorf("expected 2×2 exact fit, got %d×%d", plan.Cols, plan.Rows)
	}
}

func TestPhysicalSize_Valid(t *testing.T) {
	tests := []struct {
		size  PhysicalSize
		valid bool
	}{
		{PhysicalSize{10, 15}, true},
		{PhysicalSize{0, 15}, false},
		{PhysicalSize{10, 0}, false},
		{PhysicalSize{-1, 15}, false},
	}
	for _, tt := range tests {
		if got := tt.size.Valid(); got != tt.valid {
			t.Errorf("%v.Valid(): expected %v, got %v", tt.size, tt.valid, got)
		}
	}
}

func TestPhysicalSize_String(t *testing.T) {
	s := PhysicalSize{WidthCm: 10, HeightCm: 15}
	if got := s.String(); got != "10×15cm" {
		t.Errorf("expected '10×15cm', got '%s'", got)
	}
}
