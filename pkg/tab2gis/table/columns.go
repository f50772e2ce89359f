package table

// Role is the semantic meaning of a column.
type Role int

const (
	// RoleX is the X coordinate (easting).
	RoleX Role = iota + 1
	// RoleY is the Y coordinate (northing).
	RoleY
	// RoleVertex is the per-row vertex ordering key.
	RoleVertex
	// RoleComponent is the figure grouping column.
	RoleComponent
)

func (r Role) String() string {
	switch r {
	case RoleX:
		return "X (Easting)"
	case RoleY:
		return "Y (Northing)"
	case RoleVertex:
		return "vertex"
	case RoleComponent:
		return "component"
	default:
		return "unknown"
	}
}

// synonyms maps a normalized header to the role it denotes.
var synonyms = map[string]Role{
	"X":       RoleX,
	"E":       RoleX,
	"EAST":    RoleX,
	"ESTE":    RoleX,
	"COORDX":  RoleX,
	"COORD_X": RoleX,
	"X_COORD": RoleX,

	"Y":       RoleY,
	"N":       RoleY,
	"NORTH":   RoleY,
	"NORTE":   RoleY,
	"COORDY":  RoleY,
	"COORD_Y": RoleY,
	"Y_COORD": RoleY,

	"VERTICE":  RoleVertex,
	"VERTEX":   RoleVertex,
	"VERTICES": RoleVertex,
	"VERT":     RoleVertex,
	"V":        RoleVertex,
	"PUNTO":    RoleVertex,
	"POINT":    RoleVertex,
	"PT":       RoleVertex,
}

// RoleOf returns the role a header name denotes, or 0.
func RoleOf(column string) Role {
	return synonyms[Normalize(column)]
}

// Candidates returns the columns whose normalized name denotes role, in
// column order.
func Candidates(columns []string, role Role) []string {
	var found []string
	for _, c := range columns {
		if RoleOf(c) == role {
			found = append(found, c)
		}
	}
	return found
}

// FindColumn resolves exactly one column for role.
func FindColumn(columns []string, role Role) (string, error) {
	found := Candidates(columns, role)
	if len(found) != 1 {
		return "", NewColumnError(role, found)
	}
	return found[0], nil
}

// FindXY resolves the X and Y coordinate columns.
func FindXY(columns []string) (x, y string, err error) {
	if x, err = FindColumn(columns, RoleX); err != nil {
		return "", "", err
	}
	if y, err = FindColumn(columns, RoleY); err != nil {
		return "", "", err
	}
	return x, y, nil
}
