package validation

import (
	"sort"

	"github.com/flatquery/flatquery/internal/domain/errors"
	"github.com/flatquery/flatquery/internal/domain/schema"
	"github.com/flatquery/flatquery/internal/query"
)

// Fields checks that every requested field exists in the schema.
// The first unknown field, in request order, is reported in the error.
func Fields(requested []string, sch *schema.Schema) error {
	for _, f := range requested {
		if !sch.Has(f) {
			return errors.NewUnknownField(f)
		}
	}
	return nil
}

// Conditions checks that every condition key exists in the schema.
// Map iteration order is not deterministic, so keys are sorted before
// the check; the reported field is stable for the same inputs.
func Conditions(conditions map[string][]interface{}, sch *schema.Schema) error {
	keys := make([]string, 0, len(conditions))
	for k := range conditions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return Fields(keys, sch)
}

// Query validates an entire query descriptor against the schema:
// projected fields first, then the order field, then condition keys.
// Runs before any line is read from the source.
func Query(q *query.Query, sch *schema.Schema) error {
	if err := Fields(q.Fields, sch); err != nil {
		return err
	}
	if q.Order != nil {
		if err := Fields([]string{q.Order.Field}, sch); err != nil {
			return err
		}
	}
	return Conditions(q.Conditions, sch)
}
