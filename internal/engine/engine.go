package engine

import (
	"time"

	"github.com/flatquery/flatquery/internal/domain/data"
	"github.com/flatquery/flatquery/internal/domain/session"
	"github.com/flatquery/flatquery/internal/executor"
	"github.com/flatquery/flatquery/internal/query"
	"github.com/flatquery/flatquery/internal/storage"
)

// Engine is the main entry point for the query system. It binds the
// storage collaborator to the execution pipeline and emits lifecycle
// events to registered observers. Cross-cutting behavior (logging,
// metrics) is attached by observer composition, never by embedding.
type Engine struct {
	store     *storage.Store
	observers []Observer // Observers for lifecycle events
}

// TableInfo describes one table's schema metadata
type TableInfo struct {
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

// New creates a new Engine instance
func New(store *storage.Store) *Engine {
	return &Engine{
		store:     store,
		observers: make([]Observer, 0),
	}
}

// Query executes one query against a table and returns the result.
// The line source is scoped to this call and released on every exit
// path, normal return or error.
func (e *Engine) Query(table string, q query.Query) (*executor.Result, error) {
	sess := session.New(table)
	defer sess.Close()

	e.notify(Event{Type: EventQueryStart, QueryID: sess.ID, Table: table, Data: q})

	sch, err := e.store.Schema(table)
	if err != nil {
		e.notify(Event{Type: EventQueryError, QueryID: sess.ID, Table: table, Data: err.Error()})
		return nil, err
	}
	e.notify(Event{Type: EventSchemaLoaded, QueryID: sess.ID, Table: table, Data: sch.Arity()})

	source, err := e.store.Open(table)
	if err != nil {
		e.notify(Event{Type: EventQueryError, QueryID: sess.ID, Table: table, Data: err.Error()})
		return nil, err
	}
	defer source.Close()

	e.notify(Event{Type: EventExecStart, QueryID: sess.ID, Table: table})
	result, err := executor.Execute(sch, source, q, e.store.Delimiter())
	if err != nil {
		e.notify(Event{Type: EventQueryError, QueryID: sess.ID, Table: table, Data: err.Error()})
		return nil, err
	}
	e.notify(Event{Type: EventExecEnd, QueryID: sess.ID, Table: table, Data: map[string]interface{}{
		"records_returned": len(result.Records),
		"duration":         sess.Elapsed(),
	}})

	return result, nil
}

// Tables returns the list of tables known to the store
func (e *Engine) Tables() ([]string, error) {
	return e.store.Tables()
}

// Describe returns schema metadata for one table
func (e *Engine) Describe(table string) (*TableInfo, error) {
	sch, err := e.store.Schema(table)
	if err != nil {
		return nil, err
	}
	return &TableInfo{Name: sch.Table, Fields: sch.Fields}, nil
}

// Append validates the record against the table schema and appends it
// to the table's data file. Requires a store in read-append mode.
func (e *Engine) Append(table string, record data.Record) error {
	sch, err := e.store.Schema(table)
	if err != nil {
		return err
	}
	return e.store.Append(table, sch, record)
}

// AddObserver registers an observer to receive lifecycle events
func (e *Engine) AddObserver(observer Observer) {
	e.observers = append(e.observers, observer)
}

// RemoveObserver unregisters an observer
func (e *Engine) RemoveObserver(observer Observer) {
	for i, o := range e.observers {
		if o == observer {
			e.observers = append(e.observers[:i], e.observers[i+1:]...)
			return
		}
	}
}

// notify sends an event to all registered observers
func (e *Engine) notify(event Event) {
	event.Timestamp = time.Now()
	for _, observer := range e.observers {
		observer.OnEvent(event)
	}
}
