package geometry

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		name       string
		v, lo, hi  float64
		want       float64
	}{
		{"inside", 5, 0, 10, 5},
		{"below", -3, 0, 10, 0},
		{"above", 42, 0, 10, 10},
		{"at lower bound", 0, 0, 10, 0},
		{"at upper bound", 10, 0, 10, 10},
		{"degenerate interval lo wins", 5, 8, 2, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestClampInt(t *testing.T) {
	if got := ClampInt(7, 1, 5); got != 5 {
		t.Errorf("ClampInt(7, 1, 5) = %d, want 5", got)
	}
	if got := ClampInt(-2, 0, 5); got != 0 {
		t.Errorf("ClampInt(-2, 0, 5) = %d, want 0", got)
	}
	if got := ClampInt(3, 0, 5); got != 3 {
		t.Errorf("ClampInt(3, 0, 5) = %d, want 3", got)
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		v    float64
		want int
	}{
		{0, 0},
		{0.4, 0},
		{0.5, 1},
		{1.49, 1},
		{-0.4, 0},
		{-0.5, -1},
		{-1.5, -2},
	}
	for _, tt := range tests {
		if got := Round(tt.v); got != tt.want {
			t.Errorf("Round(%v) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestUnitConversions(t *testing.T) {
	if got := InchesToPx(11); got != 1056 {
		t.Errorf("InchesToPx(11) = %v, want 1056", got)
	}
	if got := PxToInches(96); got != 1 {
		t.Errorf("PxToInches(96) = %v, want 1", got)
	}
	if got := PxToPoints(96); got != 72 {
		t.Errorf("PxToPoints(96) = %v, want 72", got)
	}
	if got := PointsToPx(72); got != 96 {
		t.Errorf("PointsToPx(72) = %v, want 96", got)
	}
}

func TestFormatInches(t *testing.T) {
	tests := []struct {
		px   float64
		want string
	}{
		{0, "0.00in"},
		{48, "0.50in"},
		{50, "0.52in"},
		{96, "1.00in"},
		{-24, "-0.25in"},
	}
	for _, tt := range tests {
		if got := FormatInches(tt.px); got != tt.want {
			t.Errorf("FormatInches(%v) = %q, want %q", tt.px, got, tt.want)
		}
	}
}
