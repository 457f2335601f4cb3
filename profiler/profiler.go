// Package profiler turns delimited text into a column-level statistical
// profile (a DatasetSchema), including a target-column suggestion and an
// inferred task type. Profiling is deterministic: identical input bytes
// always yield an identical schema.
package profiler

import (
	"strings"

	"mlforge/logutils"
	"mlforge/model"
	"mlforge/result"
)

const (
	// sampleCap bounds how many data rows feed the statistics,
	// regardless of total file size.
	sampleCap = 1000
	// maxSampleValues bounds ColumnProfile.SampleValues.
	maxSampleValues = 5
)

// Profiler parses delimited text. The zero delimiter is not valid; use
// New or NewWithDelimiter.
type Profiler struct {
	delimiter rune
}

// New returns a comma-delimited profiler.
func New() *Profiler {
	return &Profiler{delimiter: ','}
}

// NewWithDelimiter returns a profiler splitting on d, e.g. '\t' for TSV.
func NewWithDelimiter(d rune) *Profiler {
	return &Profiler{delimiter: d}
}

// ParseLine splits a line on the delimiter while honoring quoted
// fields. Every quote character toggles the in-quotes flag; escaped
// quotes ("") inside a quoted field are not supported.
func (p *Profiler) ParseLine(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == p.delimiter && !inQuotes:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	fields = append(fields, cur.String())
	return fields
}

// Profile builds a DatasetSchema from raw file content. The first
// non-empty line is the header; at most the first 1000 data lines after
// it feed the statistics. Content with fewer than 2 non-empty lines is
// rejected as an input error.
func (p *Profiler) Profile(content string) (*model.DatasetSchema, error) {
	lines := splitLines(content)
	if len(lines) < 2 {
		return nil, result.Input(
			"dataset must contain a header line and at least one data line",
			"export the data as delimited text with a header row",
			"check that the file is not empty or truncated",
		)
	}

	header := p.ParseLine(lines[0])
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	data := lines[1:]
	if len(data) > sampleCap {
		data = data[:sampleCap]
	}

	columns := make([][]string, len(header))
	for i := range columns {
		columns[i] = make([]string, 0, len(data))
	}
	ragged := 0
	for _, line := range data {
		fields := p.ParseLine(line)
		if len(fields) > len(header) {
			ragged++
		}
		for i := range header {
			value := ""
			if i < len(fields) {
				value = strings.TrimSpace(fields[i])
			}
			columns[i] = append(columns[i], value)
		}
	}
	if ragged > 0 {
		logutils.Log.WithFields(logutils.Fields{"rows": ragged}).
			Warn("rows with more fields than the header, extras ignored")
	}

	rowCount := len(data)
	profiles := make([]model.ColumnProfile, 0, len(header))
	totalMissing := 0
	for i, name := range header {
		cp := profileColumn(name, columns[i])
		totalMissing += cp.NullCount
		profiles = append(profiles, cp)
	}

	percentMissing := 0.0
	if cells := rowCount * len(header); cells > 0 {
		percentMissing = float64(totalMissing) / float64(cells) * 100
	}

	schema := &model.DatasetSchema{
		Columns:     profiles,
		RowCount:    rowCount,
		ColumnCount: len(header),
		MissingValueStats: model.MissingValueStats{
			TotalMissing:   totalMissing,
			PercentMissing: percentMissing,
		},
	}

	target := SuggestTargetColumn(profiles)
	schema.InferredTaskType, schema.TaskTypeConfidence = InferTaskType(target)
	if target != nil {
		name := target.Name
		schema.TargetColumnSuggestion = &name
	}
	return schema, nil
}

// splitLines returns the non-empty lines, with trailing CR stripped.
func splitLines(content string) []string {
	raw := strings.Split(content, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// profileColumn computes the per-column statistics. Uniqueness is
// counted over case-insensitive trimmed non-null values; sample values
// keep their original case in first-seen order.
func profileColumn(name string, values []string) model.ColumnProfile {
	nullCount := 0
	seen := make(map[string]struct{}, len(values))
	samples := make([]string, 0, maxSampleValues)
	for _, v := range values {
		if v == "" {
			nullCount++
			continue
		}
		key := strings.ToLower(v)
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			if len(samples) < maxSampleValues {
				samples = append(samples, v)
			}
		}
	}
	return model.ColumnProfile{
		Name:         name,
		Type:         inferColumnType(values),
		NullCount:    nullCount,
		UniqueCount:  len(seen),
		SampleValues: samples,
	}
}
