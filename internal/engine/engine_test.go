package engine_test

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/flatquery/flatquery/internal/domain/data"
	"github.com/flatquery/flatquery/internal/domain/errors"
	"github.com/flatquery/flatquery/internal/engine"
	"github.com/flatquery/flatquery/internal/query"
	"github.com/flatquery/flatquery/internal/storage"
)

// recordingObserver collects events for assertions
type recordingObserver struct {
	events []engine.Event
}

func (ro *recordingObserver) OnEvent(event engine.Event) {
	ro.events = append(ro.events, event)
}

func (ro *recordingObserver) types() []engine.EventType {
	out := make([]engine.EventType, len(ro.events))
	for i, e := range ro.events {
		out[i] = e.Type
	}
	return out
}

func newTestEngine(t *testing.T, mode string) *engine.Engine {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"users.schema.json": `{"table":"users","fields":["id","name"]}`,
		"users.csv":         "1,Alice\n2,Bob\n3,Carol\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}

	store, err := storage.NewStore(storage.Options{
		Path: dir, Extension: "csv", Delimiter: ",", Mode: mode,
	}, nil)
	if err != nil {
		t.Fatalf("building store: %v", err)
	}
	return engine.New(store)
}

// TestEngine_QueryEndToEnd tests a full query through storage and pipeline
func TestEngine_QueryEndToEnd(t *testing.T) {
	eng := newTestEngine(t, storage.ModeRead)

	result, err := eng.Query("users", query.Query{
		Fields:     []string{"name"},
		Conditions: map[string][]interface{}{"id": {2, 3}},
		Order:      &query.Order{Field: "name", Direction: query.Asc},
		Limit:      1,
	})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(result.Records) != 1 || result.Records[0]["name"] != "Bob" {
		t.Errorf("unexpected result: %+v", result.Records)
	}
}

// TestEngine_ObserverLifecycle tests the event sequence on success and error
func TestEngine_ObserverLifecycle(t *testing.T) {
	eng := newTestEngine(t, storage.ModeRead)
	observer := &recordingObserver{}
	eng.AddObserver(observer)

	if _, err := eng.Query("users", query.Query{}); err != nil {
		t.Fatalf("query failed: %v", err)
	}

	want := []engine.EventType{
		engine.EventQueryStart,
		engine.EventSchemaLoaded,
		engine.EventExecStart,
		engine.EventExecEnd,
	}
	got := observer.types()
	if len(got) != len(want) {
		t.Fatalf("expected events %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected events %v, got %v", want, got)
		}
	}

	// All events of one execution share the session's query id
	id := observer.events[0].QueryID
	if id == "" {
		t.Error("expected a non-empty query id")
	}
	for _, e := range observer.events {
		if e.QueryID != id {
			t.Errorf("expected all events to carry query id %s, got %s", id, e.QueryID)
		}
	}

	// A failing query ends with a query_error event
	observer.events = nil
	_, err := eng.Query("users", query.Query{Fields: []string{"nope"}})
	if err == nil {
		t.Fatal("expected an error for an unknown field")
	}
	got = observer.types()
	if got[len(got)-1] != engine.EventQueryError {
		t.Errorf("expected trailing query_error event, got %v", got)
	}
}

// TestEngine_RemoveObserver tests that removed observers stop receiving events
func TestEngine_RemoveObserver(t *testing.T) {
	eng := newTestEngine(t, storage.ModeRead)
	observer := &recordingObserver{}
	eng.AddObserver(observer)
	eng.RemoveObserver(observer)

	if _, err := eng.Query("users", query.Query{}); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(observer.events) != 0 {
		t.Errorf("removed observer still received %d events", len(observer.events))
	}
}

// TestEngine_UnknownFieldSurfacesTyped tests error propagation to callers
func TestEngine_UnknownFieldSurfacesTyped(t *testing.T) {
	eng := newTestEngine(t, storage.ModeRead)

	_, err := eng.Query("users", query.Query{Order: &query.Order{Field: "ghost"}})
	var unknown *errors.UnknownFieldError
	if !stderrors.As(err, &unknown) {
		t.Fatalf("expected UnknownFieldError, got %v", err)
	}
	if unknown.Field != "ghost" {
		t.Errorf("expected field 'ghost', got %q", unknown.Field)
	}
}

// TestEngine_DescribeAndTables tests the metadata surfaces
func TestEngine_DescribeAndTables(t *testing.T) {
	eng := newTestEngine(t, storage.ModeRead)

	tables, err := eng.Tables()
	if err != nil || len(tables) != 1 || tables[0] != "users" {
		t.Errorf("expected [users], got %v (%v)", tables, err)
	}

	info, err := eng.Describe("users")
	if err != nil {
		t.Fatalf("describe failed: %v", err)
	}
	if info.Name != "users" || len(info.Fields) != 2 {
		t.Errorf("unexpected table info: %+v", info)
	}
}

// TestEngine_AppendThenQuery tests the append collaborator path
func TestEngine_AppendThenQuery(t *testing.T) {
	eng := newTestEngine(t, storage.ModeReadAppend)

	if err := eng.Append("users", data.Record{"id": "4", "name": "Dan"}); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	result, err := eng.Query("users", query.Query{
		Conditions: map[string][]interface{}{"id": {4}},
	})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(result.Records) != 1 || result.Records[0]["name"] != "Dan" {
		t.Errorf("expected the appended record back, got %+v", result.Records)
	}
}
