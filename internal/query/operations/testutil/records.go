package testutil

import (
	"testing"

	"github.com/flatquery/flatquery/internal/domain/schema"
)

// MustSchema builds a schema or fails the test
func MustSchema(t *testing.T, table string, fields ...string) *schema.Schema {
	t.Helper()
	sch, err := schema.New(table, fields)
	if err != nil {
		t.Fatalf("building schema for %s: %v", table, err)
	}
	return sch
}
