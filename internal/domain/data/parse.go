package data

import (
	"strings"

	"github.com/flatquery/flatquery/internal/domain/errors"
	"github.com/flatquery/flatquery/internal/domain/schema"
)

// ParseRecord decodes one raw delimited line into a Record by zipping
// the tokens positionally with the schema fields.
// The token count must equal the schema arity: no silent truncation or
// padding. lineNo is reported verbatim in the error.
func ParseRecord(line string, sch *schema.Schema, delimiter string, lineNo int) (Record, error) {
	tokens := strings.Split(line, delimiter)
	if len(tokens) != sch.Arity() {
		return nil, errors.NewMalformedRecord(lineNo, len(tokens), sch.Arity())
	}

	record := make(Record, len(tokens))
	for i, field := range sch.Fields {
		record[field] = tokens[i]
	}
	return record, nil
}
