package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/flatquery/flatquery/internal/domain/data"
	"github.com/flatquery/flatquery/internal/domain/errors"
	"github.com/flatquery/flatquery/internal/domain/schema"
)

// Access modes supported by the store. Queries only need read; append
// additionally allows adding records to the end of a data file.
const (
	ModeRead       = "read"
	ModeReadAppend = "read-append"
)

// Store locates flat delimited data files in one directory.
// Each table is a data file at {path}/{table}.{extension} with a
// companion schema document at {path}/{table}.schema.json.
type Store struct {
	path      string
	extension string
	delimiter string
	mode      string
	logger    *slog.Logger
}

// Options configures a Store.
type Options struct {
	Path      string
	Extension string // data file extension without the dot, e.g. "csv"
	Delimiter string
	Mode      string // ModeRead or ModeReadAppend
}

// schemaDocument is the on-disk shape of a table schema
type schemaDocument struct {
	Table  string   `json:"table"`
	Fields []string `json:"fields"`
}

// NewStore validates the storage configuration and returns a Store.
// The path must be an existing, readable directory and the mode one of
// the supported access modes; anything else is a ConfigurationError.
func NewStore(opts Options, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	info, err := os.Stat(opts.Path)
	if err != nil {
		return nil, errors.NewConfigurationError("path", opts.Path, "not accessible")
	}
	if !info.IsDir() {
		return nil, errors.NewConfigurationError("path", opts.Path, "not a directory")
	}

	switch opts.Mode {
	case ModeRead, ModeReadAppend:
	default:
		return nil, errors.NewConfigurationError("mode", opts.Mode, "unsupported access mode")
	}

	if opts.Extension == "" {
		opts.Extension = "csv"
	}
	if opts.Delimiter == "" {
		opts.Delimiter = ","
	}

	return &Store{
		path:      opts.Path,
		extension: opts.Extension,
		delimiter: opts.Delimiter,
		mode:      opts.Mode,
		logger:    logger,
	}, nil
}

// Delimiter returns the configured field delimiter
func (s *Store) Delimiter() string {
	return s.delimiter
}

// Tables enumerates the table names in the storage directory, one per
// data file with the configured extension.
func (s *Store) Tables() ([]string, error) {
	entries, err := os.ReadDir(s.path)
	if err != nil {
		return nil, fmt.Errorf("listing tables: %w", err)
	}

	suffix := "." + s.extension
	var tables []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		tables = append(tables, strings.TrimSuffix(entry.Name(), suffix))
	}
	return tables, nil
}

// Schema loads and validates the schema document for a table
func (s *Store) Schema(table string) (*schema.Schema, error) {
	docPath := filepath.Join(s.path, table+".schema.json")

	raw, err := os.ReadFile(docPath)
	if err != nil {
		return nil, fmt.Errorf("reading schema for table %q: %w", table, err)
	}

	var doc schemaDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decoding schema for table %q: %w", table, err)
	}
	if len(doc.Fields) == 0 {
		return nil, &errors.EmptySchemaError{Table: table}
	}

	sch, err := schema.New(table, doc.Fields)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("schema loaded",
		slog.String("table", table),
		slog.Int("fields", sch.Arity()),
	)
	return sch, nil
}

// Open opens the data file of a table as a line source.
// The caller owns the source and must close it on all exit paths.
func (s *Store) Open(table string) (*FileLineSource, error) {
	dataPath := filepath.Join(s.path, table+"."+s.extension)

	f, err := os.Open(dataPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("table not found: %s", table)
		}
		return nil, fmt.Errorf("opening table %q: %w", table, err)
	}
	return newFileLineSource(f), nil
}

// Append serializes the record in schema order and appends one line to
// the table's data file. Only allowed under the read-append mode.
func (s *Store) Append(table string, sch *schema.Schema, record data.Record) error {
	if s.mode != ModeReadAppend {
		return errors.NewConfigurationError("mode", s.mode, "store is not writable")
	}

	tokens := make([]string, 0, sch.Arity())
	for _, field := range sch.Fields {
		value, exists := record[field]
		if !exists {
			return fmt.Errorf("record is missing field %q declared by table %q", field, table)
		}
		token := fmt.Sprintf("%v", value)
		if strings.Contains(token, s.delimiter) || strings.ContainsAny(token, "\r\n") {
			return fmt.Errorf("value for field %q contains the delimiter or a line break", field)
		}
		tokens = append(tokens, token)
	}

	dataPath := filepath.Join(s.path, table+"."+s.extension)
	f, err := os.OpenFile(dataPath, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("table not found: %s", table)
		}
		return fmt.Errorf("opening table %q for append: %w", table, err)
	}
	defer f.Close()

	if _, err := f.WriteString(strings.Join(tokens, s.delimiter) + "\n"); err != nil {
		return fmt.Errorf("appending to table %q: %w", table, err)
	}

	s.logger.Info("record appended",
		slog.String("table", table),
	)
	return nil
}
