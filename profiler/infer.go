package profiler

import (
	"regexp"
	"strings"

	"mlforge/model"
)

var numericPattern = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

var booleanValues = map[string]struct{}{
	"true": {}, "false": {},
	"yes": {}, "no": {},
	"0": {}, "1": {},
	"t": {}, "f": {},
	"y": {}, "n": {},
}

// ISO-like dates plus slash/dash day-month orderings.
var datetimePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}([T ]\d{2}:\d{2}(:\d{2})?(\.\d+)?(Z|[+-]\d{2}:?\d{2})?)?$`),
	regexp.MustCompile(`^\d{4}/\d{1,2}/\d{1,2}$`),
	regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{2,4}$`),
	regexp.MustCompile(`^\d{1,2}-\d{1,2}-\d{2,4}$`),
}

// columnStats aggregates the predicate counts for one column. All
// ratios are computed over the non-empty values only.
type columnStats struct {
	nonEmpty int
	numeric  int
	boolean  int
	datetime int
	unique   int
}

func (s columnStats) ratio(count int) float64 {
	if s.nonEmpty == 0 {
		return 0
	}
	return float64(count) / float64(s.nonEmpty)
}

// typeRule pairs a predicate with the type it assigns. Rules are
// evaluated in order and the first match wins, so precedence is data,
// not control flow. The order is load-bearing: an all-"0"/"1" column is
// numeric, never boolean.
type typeRule struct {
	columnType model.ColumnType
	matches    func(s columnStats) bool
}

var typeRules = []typeRule{
	{model.ColumnNumeric, func(s columnStats) bool { return s.ratio(s.numeric) > 0.8 }},
	{model.ColumnBoolean, func(s columnStats) bool { return s.ratio(s.boolean) > 0.9 }},
	{model.ColumnDatetime, func(s columnStats) bool { return s.ratio(s.datetime) > 0.7 }},
	{model.ColumnCategorical, func(s columnStats) bool {
		return (s.unique <= 10 && s.nonEmpty > 20) || s.ratio(s.unique) < 0.1
	}},
}

// inferColumnType assigns a type from the sampled values, falling back
// to text when no rule matches and unknown when the column has no
// non-empty values.
func inferColumnType(values []string) model.ColumnType {
	stats := gatherStats(values)
	if stats.nonEmpty == 0 {
		return model.ColumnUnknown
	}
	for _, rule := range typeRules {
		if rule.matches(stats) {
			return rule.columnType
		}
	}
	return model.ColumnText
}

func gatherStats(values []string) columnStats {
	var s columnStats
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		s.nonEmpty++
		if numericPattern.MatchString(v) {
			s.numeric++
		}
		if _, ok := booleanValues[strings.ToLower(v)]; ok {
			s.boolean++
		}
		for _, p := range datetimePatterns {
			if p.MatchString(v) {
				s.datetime++
				break
			}
		}
		seen[strings.ToLower(v)] = struct{}{}
	}
	s.unique = len(seen)
	return s
}
