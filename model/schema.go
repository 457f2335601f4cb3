package model

// ColumnType is the statistical type inferred for a column from its
// sampled values.
type ColumnType string

const (
	ColumnNumeric     ColumnType = "numeric"
	ColumnCategorical ColumnType = "categorical"
	ColumnText        ColumnType = "text"
	ColumnDatetime    ColumnType = "datetime"
	ColumnBoolean     ColumnType = "boolean"
	ColumnUnknown     ColumnType = "unknown"
)

// TaskType is the machine-learning task inferred for a dataset.
type TaskType string

const (
	TaskClassification TaskType = "classification"
	TaskRegression     TaskType = "regression"
	TaskUnknown        TaskType = "unknown"
)

// ColumnProfile summarizes one column of the sampled data.
// NullCount never exceeds the sampled row count.
type ColumnProfile struct {
	Name        string     `json:"name"`
	Type        ColumnType `json:"type"`
	NullCount   int        `json:"nullCount"`
	UniqueCount int        `json:"uniqueCount"`
	// SampleValues holds up to 5 distinct values in first-seen order.
	SampleValues []string `json:"sampleValues"`
}

// MissingValueStats is computed over the sampled rows only.
type MissingValueStats struct {
	TotalMissing   int     `json:"totalMissing"`
	PercentMissing float64 `json:"percentMissing"`
}

// DatasetSchema is the column-level statistical profile of a dataset.
// It is created fresh on every profiling call and never mutated after
// construction; the engine does not persist it.
type DatasetSchema struct {
	Columns                []ColumnProfile   `json:"columns"`
	RowCount               int               `json:"rowCount"`
	ColumnCount            int               `json:"columnCount"`
	MissingValueStats      MissingValueStats `json:"missingValueStats"`
	InferredTaskType       TaskType          `json:"inferredTaskType"`
	TaskTypeConfidence     float64           `json:"taskTypeConfidence"`
	TargetColumnSuggestion *string           `json:"targetColumnSuggestion,omitempty"`
}
