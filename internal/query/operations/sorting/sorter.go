package sorting

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/flatquery/flatquery/internal/domain/data"
	"github.com/flatquery/flatquery/internal/query"
)

// Apply orders records by a single field. When both values parse as
// numbers they compare numerically, otherwise byte-wise as strings.
// DESC is the exact reversal of the ASC comparator, so ties still
// compare equal under both directions.
//
// The sort is stable: records with equal keys keep their pre-sort
// relative order, which makes pagination deterministic.
func Apply(records []data.Record, field string, direction query.Direction) []data.Record {
	sort.SliceStable(records, func(i, j int) bool {
		cmp := Compare(records[i][field], records[j][field])
		if direction == query.Desc {
			return cmp > 0
		}
		return cmp < 0
	})
	return records
}

// Compare returns -1, 0 or 1 ordering a before, equal to or after b
// under the numeric-or-lexicographic rule.
func Compare(a, b interface{}) int {
	if n1, ok := toFloat(a); ok {
		if n2, ok := toFloat(b); ok {
			switch {
			case n1 < n2:
				return -1
			case n1 > n2:
				return 1
			default:
				return 0
			}
		}
	}

	s1 := fmt.Sprintf("%v", a)
	s2 := fmt.Sprintf("%v", b)
	switch {
	case s1 < s2:
		return -1
	case s1 > s2:
		return 1
	default:
		return 0
	}
}

func toFloat(v interface{}) (float64, bool) {
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
