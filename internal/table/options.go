package table

import (
	"encoding/json"

	"griddle/internal/domain"
	"griddle/internal/logutil"
)

// Options configures a Table instance.
type Options struct {
	Columns      []domain.Column
	PageSize     int
	Sortable     bool
	Selectable   bool
	Filterable   bool
	EmptyMessage string
}

// DefaultOptions returns the baseline configuration: ten rows per page,
// every interactive affordance off.
func DefaultOptions() Options {
	return Options{
		PageSize:     10,
		EmptyMessage: "No data available",
	}
}

// normalized returns a copy with invalid zero values replaced by
// defaults, so the pipeline never sees a page size below 1.
func (o Options) normalized() Options {
	if o.PageSize <= 0 {
		o.PageSize = 10
	}
	if o.EmptyMessage == "" {
		o.EmptyMessage = "No data available"
	}
	return o
}

// ParseColumns decodes a JSON column schema. A malformed schema
// degrades to an empty column list with a warning.
func ParseColumns(raw string) []domain.Column {
	if raw == "" {
		return nil
	}

	var cols []domain.Column
	if err := json.Unmarshal([]byte(raw), &cols); err != nil {
		logutil.Warnf("invalid column schema, ignoring: %v", err)
		return nil
	}
	return cols
}
