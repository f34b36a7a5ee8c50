package table

import (
	"strings"

	"github.com/spf13/cast"

	"griddle/internal/domain"
)

// applyFilter returns the global indices of rows matching the query, in
// raw order. An empty query matches every row.
func applyFilter(rows []domain.Row, query string, columns []domain.Column) []int {
	matched := make([]int, 0, len(rows))
	if query == "" {
		for i := range rows {
			matched = append(matched, i)
		}
		return matched
	}

	needle := strings.ToLower(query)
	fields := filterFields(columns)
	for i, row := range rows {
		if rowMatches(row, needle, fields) {
			matched = append(matched, i)
		}
	}
	return matched
}

// rowMatches reports whether any candidate field contains the needle.
// Absent fields read as the empty string.
func rowMatches(row domain.Row, needle string, fields []string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(cast.ToString(row[f])), needle) {
			return true
		}
	}
	return false
}

// filterFields returns the fields the filter consults: every column not
// explicitly opted out. When a schema opts out every column, all fields
// are searched instead.
func filterFields(columns []domain.Column) []string {
	fields := make([]string, 0, len(columns))
	for _, c := range columns {
		if c.IsFilterable() {
			fields = append(fields, c.Field)
		}
	}
	if len(fields) == 0 {
		for _, c := range columns {
			fields = append(fields, c.Field)
		}
	}
	return fields
}
