package table

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrColumnNotFound indicates no column matches a required role.
	ErrColumnNotFound = errors.New("column not found")
	// ErrAmbiguousColumn indicates more than one column matches a role.
	ErrAmbiguousColumn = errors.New("ambiguous column")
	// ErrStructureNotDetected indicates neither a grouping column nor a
	// usable vertex-index column is available.
	ErrStructureNotDetected = errors.New("no figure structure detected")
)

// ColumnError reports a failed column-role resolution. Err is either
// ErrColumnNotFound or ErrAmbiguousColumn.
type ColumnError struct {
	Role       Role
	Candidates []string
	Err        error
}

func (e *ColumnError) Error() string {
	if errors.Is(e.Err, ErrAmbiguousColumn) {
		return fmt.Sprintf("multiple %s column candidates detected: %s",
			e.Role, strings.Join(e.Candidates, ", "))
	}
	return fmt.Sprintf("no %s column detected", e.Role)
}

func (e *ColumnError) Unwrap() error {
	return e.Err
}

// NewColumnError creates a ColumnError for role from its candidates.
func NewColumnError(role Role, candidates []string) *ColumnError {
	err := ErrColumnNotFound
	if len(candidates) > 1 {
		err = ErrAmbiguousColumn
	}
	return &ColumnError{Role: role, Candidates: candidates, Err: err}
}
