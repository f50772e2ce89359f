package crs

import (
	"fmt"
	"strings"
)

// geographicEPSG lists geographic 2D codes outside the 4000-4999 block.
var geographicEPSG = map[int]bool{
	4326: true, // WGS 84
	4269: true, // NAD83
	4258: true, // ETRS89
	4674: true, // SIRGAS 2000
	4190: true, // POSGAR 98
	4248: true, // PSAD56
	4618: true, // SAD69
	6318: true, // NAD83(2011)
	7844: true, // GDA2020
	9000: true, // ITRF2014 geographic
}

// geocentricEPSG lists the earth-centred XYZ systems inside the 4000-4999
// block. Their coordinates are not plane figures.
var geocentricEPSG = func() map[int]bool {
	m := map[int]bool{
		4328: true, // WGS 84 (geocentric, deprecated)
		4340: true, 4342: true, 4344: true, 4346: true, 4348: true, 4354: true,
		4465: true, 4468: true, 4473: true, 4479: true, 4481: true, 4556: true,
		4882: true, 4884: true, 4886: true, 4888: true, 4890: true, 4892: true,
		4894: true, 4896: true, 4897: true, 4899: true, 4906: true, 4922: true,
	}
	for code := 4330; code <= 4338; code++ {
		m[code] = true
	}
	for code := 4910; code <= 4920; code++ {
		m[code] = true // ITRF88 to ITRF2005
	}
	for code := 4926; code <= 4998; code += 2 {
		m[code] = true // paired with the odd geographic 3D codes, 4978 is WGS 84
	}
	return m
}()

// classifyEPSG maps a code to its kind. EPSG reserves 1024-32767 for its
// own codes; anything else is rejected, as are geocentric codes. Codes that are not geographic are
// treated as projected (UTM zones, national grids, web mercator).
func classifyEPSG(code int) (Kind, bool) {
	switch {
	case code < 1024 || code > 32767:
		return 0, false
	case geocentricEPSG[code]:
		return 0, false
	case geographicEPSG[code]:
		return KindGeographic, true
	case code >= 4000 && code <= 4999:
		return KindGeographic, true
	default:
		return KindProjected, true
	}
}

var geographicProj = map[string]bool{
	"longlat": true,
	"latlong": true,
	"lonlat":  true,
	"latlon":  true,
}

// classifyDefinition inspects a PROJ string or a WKT definition.
func classifyDefinition(def string) (Kind, error) {
	if strings.Contains(def, "+proj=") {
		for _, field := range strings.Fields(def) {
			name, value, ok := strings.Cut(field, "=")
			if !ok || name != "+proj" {
				continue
			}
			if value == "" {
				break
			}
			if geographicProj[strings.ToLower(value)] {
				return KindGeographic, nil
			}
			return KindProjected, nil
		}
		return 0, fmt.Errorf("%w: PROJ string without a projection: %q", ErrInvalidCRS, def)
	}

	upper := strings.ToUpper(strings.TrimSpace(def))
	for _, prefix := range []string{"PROJCS[", "PROJCRS[", "PROJECTEDCRS["} {
		if strings.HasPrefix(upper, prefix) {
			return KindProjected, nil
		}
	}
	for _, prefix := range []string{"GEOGCS[", "GEOGCRS[", "GEODCRS[", "GEOGRAPHICCRS["} {
		if strings.HasPrefix(upper, prefix) {
			return KindGeographic, nil
		}
	}

	return 0, fmt.Errorf("%w: unrecognized definition %q", ErrInvalidCRS, def)
}
