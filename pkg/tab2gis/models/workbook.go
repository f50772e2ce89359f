package models

// Workbook is the set of tables read from one input file.
type Workbook struct {
	// BookName is the input file name (no path).
	BookName string `json:"book_name"`
	// Tables holds one entry per sheet or detected table, in source order.
	Tables []Table `json:"tables"`
}
