package network

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"

	"github.com/flatquery/flatquery/internal/engine"
	"github.com/flatquery/flatquery/internal/executor"
	"github.com/flatquery/flatquery/internal/query"
	"github.com/flatquery/flatquery/internal/storage"
)

// Request is one query sent over the wire
type Request struct {
	Table string      `json:"table"`
	Query query.Query `json:"query"`
}

// Start starts the TCP query server
func Start(port int, store *storage.Store) error {
	addr := fmt.Sprintf(":%d", port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		slog.Error("Failed to bind to port", "port", port, "error", err)
		return err
	}
	defer listener.Close()

	slog.Info("Running on port", "port", port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			slog.Error("Failed to accept connection", "error", err)
			continue
		}
		go handleConnection(conn, store)
	}
}

func handleConnection(conn net.Conn, store *storage.Store) {
	defer conn.Close()

	queryEngine := engine.New(store)

	// Register observers for lifecycle tracing and metrics
	queryEngine.AddObserver(engine.NewLoggingObserver())
	queryEngine.AddObserver(engine.NewMetricsObserver())

	// Use Decoder instead of Scanner for network streams
	decoder := json.NewDecoder(conn)
	encoder := json.NewEncoder(conn)

	for {
		var req Request
		// Decode directly from the connection
		if err := decoder.Decode(&req); err != nil {
			if err == io.EOF {
				return // Connection closed gracefully
			}
			slog.Error("decode error", "error", err)

			// Send error back to client
			errResult := &executor.Result{
				Error: fmt.Sprintf("Invalid request format: %v", err),
			}
			_ = encoder.Encode(errResult)
			return
		}

		result, err := queryEngine.Query(req.Table, req.Query)
		if err != nil {
			// Return error as a Result object
			errResult := &executor.Result{
				Error: err.Error(),
			}
			if err := encoder.Encode(errResult); err != nil {
				slog.Error("encode error", "error", err)
				return
			}
			continue
		}

		if err := encoder.Encode(result); err != nil {
			slog.Error("encode error", "error", err)
			return
		}
	}
}
