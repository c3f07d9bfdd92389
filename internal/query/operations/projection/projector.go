package projection

import (
	"github.com/flatquery/flatquery/internal/domain/data"
	"github.com/flatquery/flatquery/internal/domain/schema"
)

// ProjectRecord applies projection to a single record.
// Returns a new record containing only the requested fields.
// If fields is empty, returns a copy of the entire record.
func ProjectRecord(record data.Record, fields []string) data.Record {
	if len(fields) == 0 {
		return record.Copy()
	}

	projected := make(data.Record, len(fields))
	for _, field := range fields {
		value, exists := record[field]
		if !exists {
			// Unknown fields are rejected by validation before any
			// record is built, so this only guards partial records.
			continue
		}
		projected[field] = value
	}
	return projected
}

// Columns returns the result header for a projection: the requested
// fields in schema order, or all schema fields when none are requested.
func Columns(fields []string, sch *schema.Schema) []string {
	return sch.Ordered(fields)
}
