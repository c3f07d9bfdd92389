package testutil

import (
	"testing"

	"github.com/flatquery/flatquery/internal/domain/data"
)

// AssertRecordCount checks if the result has the expected number of records
func AssertRecordCount(t *testing.T, actual, expected int, context string) {
	t.Helper()
	if actual != expected {
		t.Errorf("%s: expected %d records, got %d", context, expected, actual)
	}
}

// AssertFieldCount checks if a record has the expected number of fields
func AssertFieldCount(t *testing.T, record data.Record, expected int, context string) {
	t.Helper()
	if len(record) != expected {
		t.Errorf("%s: expected %d fields, got %d", context, expected, len(record))
	}
}

// AssertFieldExists checks if a field exists in a record
func AssertFieldExists(t *testing.T, record data.Record, field, context string) {
	t.Helper()
	if _, exists := record[field]; !exists {
		t.Errorf("%s: expected field '%s' to exist", context, field)
	}
}

// AssertFieldNotExists checks if a field does not exist in a record
func AssertFieldNotExists(t *testing.T, record data.Record, field, context string) {
	t.Helper()
	if _, exists := record[field]; exists {
		t.Errorf("%s: did not expect field '%s' to exist", context, field)
	}
}

// AssertFieldValue checks a field's value in a record
func AssertFieldValue(t *testing.T, record data.Record, field string, expected interface{}, context string) {
	t.Helper()
	actual, exists := record[field]
	if !exists {
		t.Errorf("%s: expected field '%s' to exist", context, field)
		return
	}
	if actual != expected {
		t.Errorf("%s: field '%s': expected %v, got %v", context, field, expected, actual)
	}
}

// AssertNoError checks that an error is nil
func AssertNoError(t *testing.T, err error, context string) {
	t.Helper()
	if err != nil {
		t.Errorf("%s: expected no error, got: %v", context, err)
	}
}

// AssertError checks that an error is not nil
func AssertError(t *testing.T, err error, context string) {
	t.Helper()
	if err == nil {
		t.Errorf("%s: expected an error, got nil", context)
	}
}
