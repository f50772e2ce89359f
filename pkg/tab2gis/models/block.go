package models

// Block is a contiguous run of rows interpreted as one figure.
type Block struct {
	// ID is the synthetic sequential identifier ("T1", "T2", ...).
	ID string `json:"id"`
	// Name is the human-readable figure name. Names may repeat.
	Name string `json:"name"`
	// Columns are the headers shared by the rows.
	Columns []string `json:"columns"`
	// Rows holds the block's rows in source order.
	Rows []Row `json:"rows"`
}
