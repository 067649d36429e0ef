package sqlite

import (
	"fmt"
	"strings"
	"time"

	"github.com/IIPisarenko/ITOG/internal/core/domain"
	"github.com/IIPisarenko/ITOG/internal/core/listing"
)

// datetimeFields are text columns holding domain.OrderDateLayout values.
var datetimeFields = map[string]bool{
	"order_date": true,
}

// normalizeDateTime rewrites user input like "2025-11-24" or
// "2025-11-24T14:00" into the stored layout so string comparison in SQLite
// orders correctly. Unparseable input is passed through unchanged.
func normalizeDateTime(value string) string {
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		domain.OrderDateLayout,
		"2006-01-02 15:04",
		"2006-01-02",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, value); err == nil {
			return t.UTC().Format(domain.OrderDateLayout)
		}
	}

	return value
}

// buildFilterClause builds a SQL condition from a QueryFilter. Field names
// must have been validated against the repository's allowed list.
func buildFilterClause(f listing.QueryFilter) (string, []any) {
	value := f.Value
	if datetimeFields[f.Field] {
		if strVal, ok := value.(string); ok {
			value = normalizeDateTime(strVal)
		}
	}

	switch f.Operator {
	case listing.OpEq:
		return fmt.Sprintf("%s = ?", f.Field), []any{value}
	case listing.OpNe:
		return fmt.Sprintf("%s != ?", f.Field), []any{value}
	case listing.OpGt:
		return fmt.Sprintf("%s > ?", f.Field), []any{value}
	case listing.OpGte:
		return fmt.Sprintf("%s >= ?", f.Field), []any{value}
	case listing.OpLt:
		return fmt.Sprintf("%s < ?", f.Field), []any{value}
	case listing.OpLte:
		return fmt.Sprintf("%s <= ?", f.Field), []any{value}
	case listing.OpLike:
		return fmt.Sprintf("%s LIKE ?", f.Field), []any{value}
	case listing.OpIsNull:
		return fmt.Sprintf("%s IS NULL", f.Field), nil
	case listing.OpIsNotNull:
		return fmt.Sprintf("%s IS NOT NULL", f.Field), nil
	case listing.OpIn, listing.OpNin:
		values, ok := f.Value.([]string)
		if !ok || len(values) == 0 {
			return "", nil
		}
		placeholders := make([]string, len(values))
		args := make([]any, len(values))
		for i, v := range values {
			placeholders[i] = "?"
			args[i] = v
		}
		not := ""
		if f.Operator == listing.OpNin {
			not = "NOT "
		}
		return fmt.Sprintf("%s %sIN (%s)", f.Field, not, strings.Join(placeholders, ", ")), args
	default:
		return "", nil
	}
}

// applyFilters appends " AND <cond>" for every filter to a query that
// already has a WHERE clause.
func applyFilters(query string, args []any, filters []listing.QueryFilter) (string, []any) {
	for _, f := range filters {
		clause, filterArgs := buildFilterClause(f)
		if clause != "" {
			query += " AND " + clause
			args = append(args, filterArgs...)
		}
	}
	return query, args
}

func applyOrdering(query string, orders []listing.OrderClause, defaultOrder string) string {
	if len(orders) > 0 {
		clauses := make([]string, 0, len(orders))
		for _, o := range orders {
			direction := "ASC"
			if o.Direction == listing.Desc {
				direction = "DESC"
			}
			clauses = append(clauses, fmt.Sprintf("%s %s", o.Field, direction))
		}
		return query + " ORDER BY " + strings.Join(clauses, ", ")
	}
	return query + " ORDER BY " + defaultOrder
}

func applyPagination(query string, args []any, page, perPage int) (string, []any) {
	if perPage > 0 {
		query += " LIMIT ?"
		args = append(args, perPage)

		if page > 1 {
			query += " OFFSET ?"
			args = append(args, (page-1)*perPage)
		}
	}
	return query, args
}
