package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/flatquery/flatquery/internal/config"
	"github.com/flatquery/flatquery/internal/engine"
	"github.com/flatquery/flatquery/internal/logging"
	"github.com/flatquery/flatquery/internal/network"
	"github.com/flatquery/flatquery/internal/query"
	"github.com/flatquery/flatquery/internal/storage"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:   "flatquery",
	Short: "Query flat delimited files like tables",
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "directory containing flatquery.yaml")
	rootCmd.AddCommand(serveCmd, queryCmd, tablesCmd, describeCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads configuration and builds the store and engine shared by
// every command
func setup() (*config.Config, *engine.Engine, *storage.Store, func(), error) {
	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	logger, closeFn := logging.SetupLogger(cfg.Logging.SeqURL)
	slog.SetDefault(logger)

	store, err := storage.NewStore(storage.Options{
		Path:      cfg.Storage.Path,
		Extension: cfg.Storage.Extension,
		Delimiter: cfg.Storage.Delimiter,
		Mode:      cfg.Storage.Mode,
	}, logger)
	if err != nil {
		closeFn()
		return nil, nil, nil, nil, err
	}

	eng := engine.New(store)
	eng.AddObserver(engine.NewLoggingObserver())
	eng.AddObserver(engine.NewMetricsObserver())

	return cfg, eng, store, closeFn, nil
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the TCP query server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, store, closeFn, err := setup()
		if err != nil {
			return err
		}
		defer closeFn()

		go func() {
			addr := fmt.Sprintf(":%d", cfg.Server.MetricsPort)
			http.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(addr, nil); err != nil {
				slog.Error("metrics endpoint failed", "error", err)
			}
		}()

		return network.Start(cfg.Server.Port, store)
	},
}

var queryCmd = &cobra.Command{
	Use:   "query <table> <descriptor-json>",
	Short: "Run one query described as JSON",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, eng, _, closeFn, err := setup()
		if err != nil {
			return err
		}
		defer closeFn()

		var q query.Query
		if err := json.Unmarshal([]byte(args[1]), &q); err != nil {
			return fmt.Errorf("invalid query descriptor: %w", err)
		}

		result, err := eng.Query(args[0], q)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the tables in the storage directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, eng, _, closeFn, err := setup()
		if err != nil {
			return err
		}
		defer closeFn()

		tables, err := eng.Tables()
		if err != nil {
			return err
		}
		for _, table := range tables {
			fmt.Println(table)
		}
		return nil
	},
}

var describeCmd = &cobra.Command{
	Use:   "describe <table>",
	Short: "Show a table's schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, eng, _, closeFn, err := setup()
		if err != nil {
			return err
		}
		defer closeFn()

		info, err := eng.Describe(args[0])
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	},
}
