package schema

import "fmt"

// Schema is the ordered list of field names for one table.
// The order defines the positional mapping from line tokens to fields.
type Schema struct {
	Table  string
	Fields []string
}

// New builds a Schema and checks its invariants: at least one field,
// no duplicate names.
func New(table string, fields []string) (*Schema, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("schema for %q must declare at least one field", table)
	}

	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f == "" {
			return nil, fmt.Errorf("schema for %q contains an empty field name", table)
		}
		if _, dup := seen[f]; dup {
			return nil, fmt.Errorf("schema for %q declares field %q twice", table, f)
		}
		seen[f] = struct{}{}
	}

	out := make([]string, len(fields))
	copy(out, fields)
	return &Schema{Table: table, Fields: out}, nil
}

// Has reports whether the schema declares the given field.
func (s *Schema) Has(field string) bool {
	for _, f := range s.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// Arity returns the number of declared fields.
func (s *Schema) Arity() int {
	return len(s.Fields)
}

// Ordered returns the subset of requested fields in schema order.
// An empty request means all fields.
func (s *Schema) Ordered(requested []string) []string {
	if len(requested) == 0 {
		out := make([]string, len(s.Fields))
		copy(out, s.Fields)
		return out
	}

	want := make(map[string]struct{}, len(requested))
	for _, f := range requested {
		want[f] = struct{}{}
	}

	var out []string
	for _, f := range s.Fields {
		if _, ok := want[f]; ok {
			out = append(out, f)
		}
	}
	return out
}
