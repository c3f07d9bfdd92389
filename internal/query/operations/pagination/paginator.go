package pagination

import (
	"math"

	"github.com/flatquery/flatquery/internal/domain/data"
)

// Apply slices the already filtered and sorted records by page and
// limit. It performs no filtering or sorting itself.
//
// Without a limit the input is returned unchanged. With a limit, page
// defaults to 1 when absent or non-positive; the window
// [offset, offset+limit) is clamped to the input length and an offset
// past the end yields an empty slice, not an error.
func Apply(records []data.Record, limit, page int) []data.Record {
	if limit <= 0 {
		return records
	}
	if page <= 0 {
		page = 1
	}

	// (page-1)*limit can overflow for huge values arriving over the
	// wire; an offset that large is past the end of any input either way.
	if page-1 > math.MaxInt/limit {
		return []data.Record{}
	}

	offset := (page - 1) * limit
	if offset >= len(records) {
		return []data.Record{}
	}

	end := offset + limit
	if end > len(records) {
		end = len(records)
	}
	return records[offset:end]
}
