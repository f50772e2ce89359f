// Package models defines data structures shared by the readers, the
// interpretation pipeline and the exporters.
package models

import "strings"

// Row represents a single source row keyed by header name.
type Row struct {
	// R is the source row index (1-based) when known, 0 otherwise.
	R int `json:"r"`
	// C maps the original column name to the cell value. Values are
	// int64, float64, string or nil.
	C map[string]interface{} `json:"c"`
}

// Get returns the cell stored under column, or nil.
func (r Row) Get(column string) interface{} {
	if r.C == nil {
		return nil
	}
	return r.C[column]
}

// IsEmpty reports whether every cell of the row is missing or blank.
func (r Row) IsEmpty() bool {
	for _, v := range r.C {
		if !IsBlank(v) {
			return false
		}
	}
	return true
}

// IsBlank reports whether a cell value is missing or whitespace-only text.
func IsBlank(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	default:
		return false
	}
}
