// Package crs holds the user-supplied coordinate reference system and the
// coordinate-magnitude consistency checks run against it.
//
// No transformation is ever performed: a Descriptor only records the
// identity of the system and whether it is geographic or projected.
package crs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNoCRS indicates neither an EPSG code nor a definition was given.
	ErrNoCRS = errors.New("a CRS is required: give either an EPSG code or a definition string")
	// ErrAmbiguousCRS indicates both an EPSG code and a definition were given.
	ErrAmbiguousCRS = errors.New("EPSG code and CRS definition are mutually exclusive")
	// ErrInvalidCRS indicates the CRS could not be resolved.
	ErrInvalidCRS = errors.New("invalid CRS definition")
)

// Kind classifies a coordinate reference system.
type Kind int

const (
	// KindGeographic is a latitude/longitude system measured in degrees.
	KindGeographic Kind = iota + 1
	// KindProjected is a planar system measured in linear units.
	KindProjected
)

func (k Kind) String() string {
	switch k {
	case KindGeographic:
		return "geographic"
	case KindProjected:
		return "projected"
	default:
		return "unknown"
	}
}

// Descriptor is a resolved, immutable CRS identity.
type Descriptor struct {
	epsg       int
	definition string
	kind       Kind
}

// New resolves a CRS from exactly one of an EPSG code or a definition
// string (EPSG:n, PROJ string or WKT).
func New(epsg int, definition string) (*Descriptor, error) {
	definition = strings.TrimSpace(definition)

	switch {
	case epsg == 0 && definition == "":
		return nil, ErrNoCRS
	case epsg != 0 && definition != "":
		return nil, ErrAmbiguousCRS
	case epsg != 0:
		return FromEPSG(epsg)
	default:
		return FromDefinition(definition)
	}
}

// FromEPSG resolves an EPSG code using the built-in registry.
func FromEPSG(code int) (*Descriptor, error) {
	kind, ok := classifyEPSG(code)
	if !ok && geocentricEPSG[code] {
		return nil, fmt.Errorf("%w: EPSG:%d is geocentric", ErrInvalidCRS, code)
	}
	if !ok {
		return nil, fmt.Errorf("%w: unknown EPSG code %d", ErrInvalidCRS, code)
	}
	return &Descriptor{epsg: code, kind: kind}, nil
}

// FromDefinition resolves an "EPSG:n" reference, a PROJ string or WKT.
func FromDefinition(def string) (*Descriptor, error) {
	def = strings.TrimSpace(def)
	if def == "" {
		return nil, ErrNoCRS
	}

	upper := strings.ToUpper(def)
	if strings.HasPrefix(upper, "EPSG:") {
		code, err := strconv.Atoi(strings.TrimSpace(def[len("EPSG:"):]))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCRS, def)
		}
		return FromEPSG(code)
	}

	kind, err := classifyDefinition(def)
	if err != nil {
		return nil, err
	}
	return &Descriptor{definition: def, kind: kind}, nil
}

// EPSG returns the EPSG code, or 0 when the CRS came from a definition.
func (d *Descriptor) EPSG() int { return d.epsg }

// Definition returns the definition string, or "" for EPSG-based CRSs.
func (d *Descriptor) Definition() string { return d.definition }

// Kind returns the geographic/projected classification.
func (d *Descriptor) Kind() Kind { return d.kind }

// IsGeographic reports whether coordinates are expected in degrees.
func (d *Descriptor) IsGeographic() bool { return d.kind == KindGeographic }

// IsProjected reports whether coordinates are expected in linear units.
func (d *Descriptor) IsProjected() bool { return d.kind == KindProjected }

// SRID returns the spatial reference id to tag exported geometries with,
// 0 when unknown.
func (d *Descriptor) SRID() int { return d.epsg }

// String returns a short human-readable description.
func (d *Descriptor) String() string {
	if d.epsg != 0 {
		return fmt.Sprintf("EPSG:%d", d.epsg)
	}
	return "PROJ: " + d.definition
}
