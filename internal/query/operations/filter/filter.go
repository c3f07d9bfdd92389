package filter

import (
	"fmt"
	"strconv"

	"github.com/flatquery/flatquery/internal/domain/data"
)

// Matches reports whether the record satisfies every condition: for
// each condition key, the record's value must be a member of the
// allowed set. Empty conditions match every record.
//
// Conditions combine as a conjunction: one failing condition rejects
// the record, and a record is emitted at most once.
func Matches(record data.Record, conditions map[string][]interface{}) bool {
	for field, allowed := range conditions {
		value, exists := record[field]
		if !exists {
			return false
		}
		if !member(value, allowed) {
			return false
		}
	}
	return true
}

// member reports whether value equals any element of the allowed set.
func member(value interface{}, allowed []interface{}) bool {
	for _, candidate := range allowed {
		if equal(value, candidate) {
			return true
		}
	}
	return false
}

// equal compares two scalar values. Parsed records hold string tokens
// while condition values may arrive as JSON numbers, so values that
// both normalize to a number compare numerically; everything else
// compares as strings.
func equal(a, b interface{}) bool {
	if n1, ok := normalizeToFloat(a); ok {
		if n2, ok := normalizeToFloat(b); ok {
			return n1 == n2
		}
	}
	return fmt.Sprintf("%v", a) == fmt.Sprintf("%v", b)
}

func normalizeToFloat(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case float64:
		return val, true
	case string:
		f, err := strconv.ParseFloat(val, 64)
		return f, err == nil
	}
	return 0, false
}
