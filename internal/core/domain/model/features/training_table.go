package features

// BuildStats describes what happened while a training table was assembled.
type BuildStats struct {
	// Orders is the number of rows of the orders table.
	Orders int
	// InvalidTimestamps counts orders skipped because a date did not parse.
	InvalidTimestamps int
	// IncompleteGeocodes counts seller-customer pairs without coordinates.
	IncompleteGeocodes int
	// DroppedRows counts delivery-time rows that did not survive the joins or had missing values.
	DroppedRows int
	// Rows is the number of rows in the result.
	Rows int
}

// TrainingTable is the assembled, NA-free training data set.
type TrainingTable struct {
	Rows            []OrderFeatureRow
	IncludeDistance bool
	Stats           BuildStats
}

// Columns returns the column names of this table in output order.
func (t TrainingTable) Columns() []string {
	return TrainingColumns(t.IncludeDistance)
}

// OrderIDs returns the order identifiers in row order.
func (t TrainingTable) OrderIDs() []string {
	ids := make([]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		ids = append(ids, r.OrderID)
	}
	return ids
}
