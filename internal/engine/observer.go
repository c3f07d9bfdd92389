package engine

import "time"

// EventType represents different lifecycle phases in query execution
type EventType string

const (
	EventQueryStart   EventType = "query_start"
	EventSchemaLoaded EventType = "schema_loaded"
	EventExecStart    EventType = "exec_start"
	EventExecEnd      EventType = "exec_end"
	EventQueryError   EventType = "query_error"
)

// Event represents a lifecycle event in query execution
type Event struct {
	Type      EventType   // Type of event
	QueryID   string      // Session ID for tracing
	Table     string      // Table the query runs against
	Timestamp time.Time   // When the event occurred
	Data      interface{} // Phase-specific data (field count, rows, duration, error)
}

// Observer interface for event subscribers
// Observers receive events at major execution phases
type Observer interface {
	OnEvent(event Event)
}
