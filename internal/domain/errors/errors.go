package errors

import "fmt"

// ConfigurationError reports an invalid storage configuration
// (bad path, unreadable directory, unsupported access mode).
type ConfigurationError struct {
	Setting string // which setting is wrong ("path", "mode", ...)
	Value   string // the offending value
	Reason  string // human-readable explanation
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid storage configuration: %s=%q - %s", e.Setting, e.Value, e.Reason)
}

// EmptySchemaError reports a schema document that declares no fields
// for the requested table.
type EmptySchemaError struct {
	Table string
}

func (e *EmptySchemaError) Error() string {
	return fmt.Sprintf("no fields declared for table %q", e.Table)
}

// UnknownFieldError reports a requested, ordering or condition field
// that is not part of the table schema. Raised before any line is read.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q", e.Field)
}

// MalformedRecordError reports a line whose token count does not match
// the schema arity. Line numbers are 1-based and count data lines only.
type MalformedRecordError struct {
	Line   int
	Tokens int
	Fields int
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record at line %d: got %d tokens, schema has %d fields", e.Line, e.Tokens, e.Fields)
}

// QueryError is the umbrella for failures surfaced while executing a
// query. It wraps the typed cause so callers can errors.As into it.
type QueryError struct {
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query failed: %v", e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

func NewConfigurationError(setting, value, reason string) *ConfigurationError {
	return &ConfigurationError{Setting: setting, Value: value, Reason: reason}
}

func NewUnknownField(field string) *UnknownFieldError {
	return &UnknownFieldError{Field: field}
}

func NewMalformedRecord(line, tokens, fields int) *MalformedRecordError {
	return &MalformedRecordError{Line: line, Tokens: tokens, Fields: fields}
}
