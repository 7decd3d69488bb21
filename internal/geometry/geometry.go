package geometry

import (
	"fmt"
	"math"
)

// PxPerInch is the logical pixel density of the page surface. Page geometry
// is computed at 96dpi regardless of the device pixel ratio so that on-screen
// and printed page boundaries line up.
const PxPerInch = 96.0

// Clamp restricts v to the interval [lo, hi]. If lo > hi the interval is
// degenerate and lo wins.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// ClampInt restricts v to the interval [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Round rounds to the nearest integer pixel, halves away from zero.
func Round(v float64) int {
	return int(math.Round(v))
}

// PxToInches converts device pixels to inches at the logical density.
func PxToInches(px float64) float64 {
	return px / PxPerInch
}

// InchesToPx converts inches to device pixels at the logical density.
func InchesToPx(in float64) float64 {
	return in * PxPerInch
}

// PxToPoints converts device pixels to PDF points (72 per inch).
func PxToPoints(px float64) float64 {
	return px * 72.0 / PxPerInch
}

// PointsToPx converts PDF points to device pixels.
func PointsToPx(pt float64) float64 {
	return pt * PxPerInch / 72.0
}

// FormatInches renders a pixel measurement as an inch string for tooltips,
// e.g. 50px -> "0.52in". The value is rounded to two decimals.
func FormatInches(px float64) string {
	return fmt.Sprintf("%.2fin", PxToInches(px))
}
