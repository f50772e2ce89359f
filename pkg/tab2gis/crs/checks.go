package crs

import (
	"math"

	"github.com/paulmach/orb"
)

const (
	maxLongitude = 180.0
	maxLatitude  = 90.0
)

// CheckCoordinates compares the magnitude of the coordinates with the kind
// of CRS and returns advisory warnings. It never fails.
func CheckCoordinates(d *Descriptor, coords []orb.Point) []string {
	var warnings []string

	if len(coords) == 0 {
		return append(warnings, "No coordinates provided for CRS validation.")
	}

	b := orb.MultiPoint(coords).Bound()
	maxAbsX := math.Max(math.Abs(b.Min[0]), math.Abs(b.Max[0]))
	maxAbsY := math.Max(math.Abs(b.Min[1]), math.Abs(b.Max[1]))

	if d.IsProjected() && maxAbsX < maxLongitude && maxAbsY < maxLatitude {
		warnings = append(warnings,
			"Projected CRS selected, but coordinate values appear to be geographic (degrees).")
	}
	if d.IsGeographic() && (maxAbsX > maxLongitude || maxAbsY > maxLatitude) {
		warnings = append(warnings,
			"Geographic CRS selected, but coordinate values exceed degree ranges.")
	}

	return warnings
}
