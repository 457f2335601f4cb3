package profiler

import (
	"strings"

	"mlforge/model"
)

// Column names conventionally used for training targets.
var (
	targetExactNames = []string{
		"target", "label", "class", "y",
		"outcome", "result", "prediction", "category",
	}
	targetSuffixes = []string{
		"_target", "_label", "_class", "_y", "_outcome", "_result",
	}
	targetPrefixes = []string{"is_", "has_"}
)

// SuggestTargetColumn scans the columns in their original order and
// returns the first whose name matches a known target convention,
// case-insensitively. When no name matches, the last categorical or
// boolean column is used; nil means no plausible target.
func SuggestTargetColumn(columns []model.ColumnProfile) *model.ColumnProfile {
	for i := range columns {
		if isTargetName(columns[i].Name) {
			return &columns[i]
		}
	}
	for i := len(columns) - 1; i >= 0; i-- {
		t := columns[i].Type
		if t == model.ColumnCategorical || t == model.ColumnBoolean {
			return &columns[i]
		}
	}
	return nil
}

func isTargetName(name string) bool {
	lower := strings.ToLower(name)
	for _, exact := range targetExactNames {
		if lower == exact {
			return true
		}
	}
	for _, suffix := range targetSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	for _, prefix := range targetPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// InferTaskType derives the task type and a confidence in [0,1] from
// the suggested target column.
func InferTaskType(target *model.ColumnProfile) (model.TaskType, float64) {
	if target == nil {
		return model.TaskUnknown, 0.0
	}
	switch target.Type {
	case model.ColumnCategorical, model.ColumnBoolean:
		if target.UniqueCount <= 5 {
			return model.TaskClassification, 0.95
		}
		return model.TaskClassification, 0.85
	case model.ColumnNumeric:
		// Low-cardinality numeric targets are usually encoded classes.
		if target.UniqueCount <= 10 {
			return model.TaskClassification, 0.75
		}
		return model.TaskRegression, 0.85
	default:
		return model.TaskUnknown, 0.3
	}
}
