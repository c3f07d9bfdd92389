package data_test

import (
	stderrors "errors"
	"testing"

	"github.com/flatquery/flatquery/internal/domain/data"
	"github.com/flatquery/flatquery/internal/domain/errors"
	"github.com/flatquery/flatquery/internal/domain/schema"
)

func mustSchema(t *testing.T, fields ...string) *schema.Schema {
	t.Helper()
	sch, err := schema.New("users", fields)
	if err != nil {
		t.Fatalf("building schema: %v", err)
	}
	return sch
}

// TestParseRecord_PositionalMapping tests that tokens map to fields in schema order
func TestParseRecord_PositionalMapping(t *testing.T) {
	sch := mustSchema(t, "id", "name", "city")

	record, err := data.ParseRecord("1,Alice,Nairobi", sch, ",", 1)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if record["id"] != "1" || record["name"] != "Alice" || record["city"] != "Nairobi" {
		t.Errorf("unexpected record: %v", record)
	}
	if len(record) != 3 {
		t.Errorf("expected 3 fields, got %d", len(record))
	}
}

// TestParseRecord_CustomDelimiter tests parsing with a non-comma delimiter
func TestParseRecord_CustomDelimiter(t *testing.T) {
	sch := mustSchema(t, "id", "name")

	record, err := data.ParseRecord("7|Grace", sch, "|", 3)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if record["id"] != "7" || record["name"] != "Grace" {
		t.Errorf("unexpected record: %v", record)
	}
}

// TestParseRecord_TokenCountMismatch tests that arity mismatches fail,
// with the line number reported verbatim
func TestParseRecord_TokenCountMismatch(t *testing.T) {
	sch := mustSchema(t, "id", "name")

	cases := []struct {
		line   string
		lineNo int
		tokens int
	}{
		{"4", 4, 1},
		{"5,Eve,extra", 9, 3},
		{"", 2, 1},
	}

	for _, tc := range cases {
		_, err := data.ParseRecord(tc.line, sch, ",", tc.lineNo)
		if err == nil {
			t.Errorf("line %q: expected an error, got nil", tc.line)
			continue
		}

		var malformed *errors.MalformedRecordError
		if !stderrors.As(err, &malformed) {
			t.Errorf("line %q: expected MalformedRecordError, got %T", tc.line, err)
			continue
		}
		if malformed.Line != tc.lineNo {
			t.Errorf("line %q: expected line number %d, got %d", tc.line, tc.lineNo, malformed.Line)
		}
		if malformed.Tokens != tc.tokens {
			t.Errorf("line %q: expected %d tokens, got %d", tc.line, tc.tokens, malformed.Tokens)
		}
	}
}

// TestRecord_Copy tests that copies do not share mutations
func TestRecord_Copy(t *testing.T) {
	original := data.Record{"id": "1", "name": "Alice"}
	clone := original.Copy()

	clone["name"] = "Mallory"
	if original["name"] != "Alice" {
		t.Errorf("copy mutated the original record")
	}
}
