package query

import "fmt"

// Direction is the sort direction for an Order clause
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// Order is a single (field, direction) sort pair.
// Multi-key ordering is intentionally out of scope; the documented
// contract is one sort key per query.
type Order struct {
	Field     string    `json:"field"`
	Direction Direction `json:"direction"`
}

// Query is the declarative request consumed by the executor.
//
//   - Fields: field names to project. Empty means all schema fields.
//   - Conditions: field name -> set of acceptable values. A record
//     matches only if it satisfies every condition (conjunction).
//   - Order: optional single sort pair.
//   - Limit: page size. Zero means no pagination.
//   - Page: 1-based page number, meaningful only with Limit.
type Query struct {
	Fields     []string                 `json:"fields,omitempty"`
	Conditions map[string][]interface{} `json:"conditions,omitempty"`
	Order      *Order                   `json:"order,omitempty"`
	Limit      int                      `json:"limit,omitempty"`
	Page       int                      `json:"page,omitempty"`
}

// Validate checks the descriptor's own invariants, independent of any
// schema. Field existence is checked separately against the schema.
func (q *Query) Validate() error {
	if q.Limit < 0 {
		return fmt.Errorf("limit must be positive, got %d", q.Limit)
	}
	if q.Page < 0 {
		return fmt.Errorf("page must be positive, got %d", q.Page)
	}
	if q.Page > 0 && q.Limit == 0 {
		return fmt.Errorf("page is meaningful only together with limit")
	}
	if q.Order != nil {
		switch q.Order.Direction {
		case Asc, Desc:
		case "":
			q.Order.Direction = Asc
		default:
			return fmt.Errorf("unsupported sort direction %q", q.Order.Direction)
		}
		if q.Order.Field == "" {
			return fmt.Errorf("order requires a field name")
		}
	}
	return nil
}
