package models

// Table is one rectangular block of rows read from a source file.
type Table struct {
	// Source is the input file base name without extension.
	Source string `json:"source"`
	// Name is the display name (sheet name, table index or file name).
	Name string `json:"name"`
	// Columns lists header names in source order.
	Columns []string `json:"columns"`
	// Rows holds data rows in source order, header excluded.
	Rows []Row `json:"rows,omitempty"`
}

// HasColumn reports whether name is one of the table's headers.
func (t Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}
