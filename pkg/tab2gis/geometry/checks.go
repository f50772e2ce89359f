package geometry

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/ukaji3/tab2gis-go/pkg/tab2gis/models"
)

// Checker runs non-blocking geometric sanity checks on figures.
type Checker struct {
	// MinArea is the area, in CRS units, at or below which a figure is
	// reported. Zero only reports degenerate figures.
	MinArea float64
}

// Check returns warning messages for f. Figures with three or more
// vertices are closed as a side effect.
func (c Checker) Check(f *models.Figure) []string {
	var warnings []string

	if len(f.Vertices) < 3 {
		return append(warnings, fmt.Sprintf("Figure '%s' has fewer than 3 vertices.", f.Name))
	}

	f.Close()
	ring := orb.Ring(f.Vertices)

	if area := Area(ring); area <= c.MinArea {
		warnings = append(warnings,
			fmt.Sprintf("Figure '%s' has zero or negligible area (area=%g).", f.Name, area))
	}
	if err := Validate(ring); err != nil {
		warnings = append(warnings,
			fmt.Sprintf("Figure '%s' has invalid geometry: %v", f.Name, err))
	}

	return warnings
}

// Area returns the planar area enclosed by ring.
func Area(ring orb.Ring) float64 {
	return math.Abs(planar.Area(ring))
}
