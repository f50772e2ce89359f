package geometry

import "github.com/paulmach/orb"

// Validate checks that ring is a valid polygon boundary: finite, closed,
// simple and with at least two distinct points. Consecutive repeated
// points are allowed.
func Validate(ring orb.Ring) error {
	return ValidatePolygon(orb.Polygon{ring})
}

// ValidatePolygon checks the rings of p and how they relate to each other.
func ValidatePolygon(p orb.Polygon) error {
	return toPolygon(p).Validate()
}
