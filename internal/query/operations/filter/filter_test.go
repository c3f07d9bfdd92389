package filter_test

import (
	"testing"

	"github.com/flatquery/flatquery/internal/domain/data"
	"github.com/flatquery/flatquery/internal/query/operations/filter"
)

// TestMatches_EmptyConditions tests that no conditions match everything
func TestMatches_EmptyConditions(t *testing.T) {
	record := data.Record{"id": "1", "name": "Alice"}

	if !filter.Matches(record, nil) {
		t.Error("nil conditions should match every record")
	}
	if !filter.Matches(record, map[string][]interface{}{}) {
		t.Error("empty conditions should match every record")
	}
}

// TestMatches_Membership tests the value-set membership rule
func TestMatches_Membership(t *testing.T) {
	record := data.Record{"id": "2", "name": "Bob"}

	if !filter.Matches(record, map[string][]interface{}{"id": {"2", "3"}}) {
		t.Error("record with id=2 should match id in {2,3}")
	}
	if filter.Matches(record, map[string][]interface{}{"id": {"4", "5"}}) {
		t.Error("record with id=2 should not match id in {4,5}")
	}
}

// TestMatches_Conjunction tests that ALL conditions must hold, not any
func TestMatches_Conjunction(t *testing.T) {
	record := data.Record{"id": "2", "name": "Bob", "city": "Kisumu"}

	conditions := map[string][]interface{}{
		"id":   {"2"},
		"city": {"Kisumu"},
	}
	if !filter.Matches(record, conditions) {
		t.Error("record satisfying every condition should match")
	}

	conditions["city"] = []interface{}{"Nairobi"}
	if filter.Matches(record, conditions) {
		t.Error("one failing condition must reject the record even when others hold")
	}
}

// TestMatches_NumericEquality tests that string tokens match numeric
// condition values
func TestMatches_NumericEquality(t *testing.T) {
	record := data.Record{"id": "2", "score": "3.50"}

	if !filter.Matches(record, map[string][]interface{}{"id": {2, 3}}) {
		t.Error("token \"2\" should match numeric condition value 2")
	}
	if !filter.Matches(record, map[string][]interface{}{"score": {3.5}}) {
		t.Error("token \"3.50\" should match numeric condition value 3.5")
	}
	if filter.Matches(record, map[string][]interface{}{"id": {20}}) {
		t.Error("token \"2\" should not match 20")
	}
}

// TestMatches_MissingField tests that a record lacking a condition key
// does not match
func TestMatches_MissingField(t *testing.T) {
	record := data.Record{"id": "1"}

	if filter.Matches(record, map[string][]interface{}{"name": {"Alice"}}) {
		t.Error("record without the conditioned field should not match")
	}
}
