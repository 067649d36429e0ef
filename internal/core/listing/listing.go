// Package listing holds the small filter language used by the list commands:
// "field|value", "field|op|value" and "field|isnull" conditions, plus
// "field|asc|desc" ordering and page/per-page pagination.
package listing

import (
	"fmt"
	"strings"
)

// ListFilter contains common filtering/pagination options for list queries
type ListFilter struct {
	Filters []QueryFilter
	Order   []OrderClause
	Page    int
	PerPage int
}

// Operator is a filter comparison operator
type Operator string

const (
	OpEq        Operator = "eq"
	OpNe        Operator = "ne"
	OpGt        Operator = "gt"
	OpGte       Operator = "gte"
	OpLt        Operator = "lt"
	OpLte       Operator = "lte"
	OpLike      Operator = "like"
	OpIn        Operator = "in"
	OpNin       Operator = "nin"
	OpIsNull    Operator = "isnull"
	OpIsNotNull Operator = "isnotnull"
)

// QueryFilter represents a single filter condition
type QueryFilter struct {
	Field    string
	Operator Operator
	Value    any // string, or []string for in/nin
}

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

type OrderClause struct {
	Field     string
	Direction Direction
}

var validOperators = map[string]Operator{
	"eq":        OpEq,
	"ne":        OpNe,
	"gt":        OpGt,
	"gte":       OpGte,
	"lt":        OpLt,
	"lte":       OpLte,
	"like":      OpLike,
	"in":        OpIn,
	"nin":       OpNin,
	"isnull":    OpIsNull,
	"isnotnull": OpIsNotNull,
}

// ParseQuery parses filter conditions.
// Supports formats:
//   - field|value (defaults to eq operator)
//   - field|isnull or field|isnotnull (null checks)
//   - field|operator|value (explicit operator)
//
// Multiple conditions are separated by ';'. Values of in/nin are
// comma-separated lists.
func ParseQuery(queryStr string) ([]QueryFilter, error) {
	if queryStr == "" {
		return nil, nil
	}

	var filters []QueryFilter

	for _, cond := range strings.Split(queryStr, ";") {
		cond = strings.TrimSpace(cond)
		if cond == "" {
			continue
		}

		parts := strings.Split(cond, "|")

		switch len(parts) {
		case 2:
			potentialOp := strings.ToLower(parts[1])
			if potentialOp == string(OpIsNull) || potentialOp == string(OpIsNotNull) {
				filters = append(filters, QueryFilter{
					Field:    parts[0],
					Operator: Operator(potentialOp),
				})
			} else {
				filters = append(filters, QueryFilter{
					Field:    parts[0],
					Operator: OpEq,
					Value:    parts[1],
				})
			}

		case 3:
			opStr := strings.ToLower(parts[1])
			op, valid := validOperators[opStr]
			if !valid {
				return nil, fmt.Errorf("invalid operator: %s", opStr)
			}

			var value any
			if op == OpIn || op == OpNin {
				value = strings.Split(parts[2], ",")
			} else {
				value = parts[2]
			}

			filters = append(filters, QueryFilter{
				Field:    parts[0],
				Operator: op,
				Value:    value,
			})

		default:
			return nil, fmt.Errorf("invalid query format: %s (expected field|value or field|operator|value)", cond)
		}
	}

	return filters, nil
}

// ParseOrder parses "field|direction" clauses separated by ','.
func ParseOrder(orderStr string) ([]OrderClause, error) {
	if orderStr == "" {
		return nil, nil
	}

	var orders []OrderClause

	for _, pair := range strings.Split(orderStr, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		parts := strings.Split(pair, "|")
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid order format: %s (expected field|direction)", pair)
		}

		direction := strings.ToLower(parts[1])
		if direction != string(Asc) && direction != string(Desc) {
			return nil, fmt.Errorf("invalid order direction: %s (expected asc or desc)", direction)
		}

		orders = append(orders, OrderClause{
			Field:     parts[0],
			Direction: Direction(direction),
		})
	}

	return orders, nil
}

// Validate checks every filter and order field against allowed and rejects
// negative pagination values.
func (f ListFilter) Validate(allowed []string) error {
	if err := ValidateFilterFields(f.Filters, allowed); err != nil {
		return err
	}
	if err := ValidateOrderFields(f.Order, allowed); err != nil {
		return err
	}
	if f.Page < 0 || f.PerPage < 0 {
		return fmt.Errorf("page and per_page must not be negative")
	}
	return nil
}

// ValidateFilterFields validates that all filter fields are in the allowed set
func ValidateFilterFields(filters []QueryFilter, allowedFields []string) error {
	allowed := toSet(allowedFields)
	for _, filter := range filters {
		if !allowed[filter.Field] {
			return fmt.Errorf("invalid query field: %s (valid fields: %s)", filter.Field, strings.Join(allowedFields, ", "))
		}
	}
	return nil
}

// ValidateOrderFields validates that all order fields are in the allowed set
func ValidateOrderFields(orders []OrderClause, allowedFields []string) error {
	allowed := toSet(allowedFields)
	for _, order := range orders {
		if !allowed[order.Field] {
			return fmt.Errorf("invalid order field: %s (valid fields: %s)", order.Field, strings.Join(allowedFields, ", "))
		}
	}
	return nil
}

func toSet(fields []string) map[string]bool {
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}
