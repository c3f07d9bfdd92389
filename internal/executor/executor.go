package executor

import (
	"fmt"

	"github.com/flatquery/flatquery/internal/domain/data"
	"github.com/flatquery/flatquery/internal/domain/errors"
	"github.com/flatquery/flatquery/internal/domain/schema"
	"github.com/flatquery/flatquery/internal/query"
	"github.com/flatquery/flatquery/internal/query/operations/filter"
	"github.com/flatquery/flatquery/internal/query/operations/pagination"
	"github.com/flatquery/flatquery/internal/query/operations/projection"
	"github.com/flatquery/flatquery/internal/query/operations/sorting"
	"github.com/flatquery/flatquery/internal/query/validation"
)

// LineSource yields raw delimited lines in source order.
// Next returns the line, its 1-based number and whether a line was
// read; after Next reports false, Err tells whether iteration stopped
// on an I/O error rather than end of input.
type LineSource interface {
	Next() (line string, lineNo int, ok bool)
	Err() error
}

// Result is the materialized output of one query execution.
// Columns lists the projected fields in schema order.
type Result struct {
	Columns []string      `json:"columns,omitempty"`
	Records []data.Record `json:"records"`
	Message string        `json:"message,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// Execute runs the query pipeline against one line source:
// validate field names, parse and filter in a single pass, sort,
// paginate, project. The source is read start to finish before sorting
// because ordering and pagination need the full filtered set.
//
// The first malformed line aborts the whole execution; a query that
// matches nothing returns an empty Result, not an error. All failures
// are wrapped in a QueryError.
func Execute(sch *schema.Schema, source LineSource, q query.Query, delimiter string) (*Result, error) {
	if err := q.Validate(); err != nil {
		return nil, &errors.QueryError{Err: err}
	}

	// Fail fast: no I/O happens on the source when a requested,
	// ordering or condition field is not part of the schema.
	if err := validation.Query(&q, sch); err != nil {
		return nil, &errors.QueryError{Err: err}
	}

	var kept []data.Record
	for {
		line, lineNo, ok := source.Next()
		if !ok {
			break
		}
		record, err := data.ParseRecord(line, sch, delimiter, lineNo)
		if err != nil {
			return nil, &errors.QueryError{Err: err}
		}
		if filter.Matches(record, q.Conditions) {
			kept = append(kept, record)
		}
	}
	if err := source.Err(); err != nil {
		return nil, &errors.QueryError{Err: err}
	}

	if q.Order != nil {
		kept = sorting.Apply(kept, q.Order.Field, q.Order.Direction)
	}

	kept = pagination.Apply(kept, q.Limit, q.Page)

	// Projection runs after filtering and sorting so that conditions
	// and the order field may reference fields the caller did not ask
	// for, as in {fields: [name], conditions: {id: [...]}}.
	records := make([]data.Record, len(kept))
	for i, record := range kept {
		records[i] = projection.ProjectRecord(record, q.Fields)
	}

	return &Result{
		Columns: projection.Columns(q.Fields, sch),
		Records: records,
		Message: fmt.Sprintf("Returned %d records", len(records)),
	}, nil
}
