package data

// Record represents a single decoded row.
// Key = field name, Value = cell value (string or numeric scalar).
type Record map[string]interface{}

// Copy creates a shallow copy of the record to prevent mutation.
// Values are scalars, so a shallow copy is a full copy.
func (r Record) Copy() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
