package statement

// RawRow is one financial statement line item as read from the upload.
// Prior and Current are already coerced to numbers: any cell that does not
// parse becomes 0. Malformed numeric input is treated as absence, not as an
// error, so a partially hand-edited workbook still analyzes.
type RawRow struct {
	Label   string  `json:"label"`
	Prior   float64 `json:"prior"`
	Current float64 `json:"current"`
}
