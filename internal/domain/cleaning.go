package domain

// ColumnCount pairs a column name with a per-column count.
type ColumnCount struct {
	Column string `json:"column"`
	Count  int    `json:"count"`
}

// MoneySummary holds the basic statistics of the money column.
type MoneySummary struct {
	Median float64 `json:"median"`
	Mean   float64 `json:"mean"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// CleaningSummary is the outcome of the extraction/cleaning stage.
type CleaningSummary struct {
	RunID      string `json:"run_id"`
	Dataset    string `json:"dataset"`
	SourcePath string `json:"source_path"`
	OutputPath string `json:"output_path"`

	Rows int `json:"rows"`
	// DuplicateRows counts rows identical to an earlier row. They are reported
	// but still written to the output file.
	DuplicateRows  int           `json:"duplicate_rows"`
	MissingValues  []ColumnCount `json:"missing_values"`
	DistinctValues []ColumnCount `json:"distinct_values"`
	Money          MoneySummary  `json:"money"`

	// Preview holds the header and the first rows of the written projection.
	Preview [][]string `json:"preview"`
}
