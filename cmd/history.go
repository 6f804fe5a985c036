package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vitalscan/vitalscan/internal/contract"
	"github.com/vitalscan/vitalscan/internal/iohistory"
	"github.com/vitalscan/vitalscan/internal/outwriter"
	"github.com/vitalscan/vitalscan/schema"
)

// historySetup loads minimal configuration needed for history operations.
// This avoids provider client construction for storage-only commands.
func historySetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get history-related config values
	backend := schema.DatabaseBackend(viper.GetString("history-backend"))
	connStr := viper.GetString("history-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	kv, err := iohistory.NewKeyValueStore(backend, connStr)
	if err != nil {
		return fmt.Errorf("failed to initialize history storage: %w", err)
	}
	kvStore = kv
	historyStore = iohistory.NewHistoryStore(kv)

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr
	cfg.Output = schema.OutputMode(viper.GetString("output"))
	cfg.OutputFile = viper.GetString("output-file")
	cfg.Width = viper.GetInt("width")
	colors, err := contract.ParseBoolString(viper.GetString("color"))
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// historyCmd lists and manages the analysis history.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the durable analysis history",
	Long: `List and manage the bounded history of past analyses.

The history keeps the most recent 50 analyses, newest first. It is
persisted as a whole snapshot to the configured storage backend.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show storage statistics and connection info
  clear   - Remove the entire history
  export  - Write the history to a CSV or Parquet file
  migrate - Run storage schema migrations

Examples:
  # List past analyses
  vitalscan history

  # Export as CSV
  vitalscan history export --output-file vitals.csv`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := outwriter.WriteHistory(historyStore.Load(), cfg); err != nil {
			contract.LogFatal("Failed to write history", err)
		}
	},
}

// historyClearCmd removes the persisted history.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the entire analysis history",
	Long: `Delete the persisted analysis history from the configured backend.

This removes the whole snapshot; the next analysis starts a fresh history.

Examples:
  # Clear the default SQLite-backed history
  vitalscan history clear

  # Clear a MySQL-backed history (set connection string via env variable)
  VITALSCAN_HISTORY_BACKEND=mysql VITALSCAN_HISTORY_DB_CONNECT="..." vitalscan history clear`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := historyStore.Clear(); err != nil {
			contract.LogFatal("Failed to clear history", err)
		}
		fmt.Println("History cleared successfully.")
	},
}

// historyStatusCmd shows history storage status.
var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display history storage statistics and connection details",
	Long: `Show detailed information about the history storage backend.

Displays:
- Backend type and connection status
- Record count against the history limit
- Snapshot size in bytes
- Newest and oldest record timestamps

Examples:
  # Check history storage status
  vitalscan history status`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := historyStore.Status()
		if err != nil {
			contract.LogFatal("Failed to get history status", err)
		}
		iohistory.PrintStorageStatus(status)
	},
}

// historyExportCmd writes the history to a portable file.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the analysis history to CSV or Parquet",
	Long: `Write every history record to a portable tabular file.

CSV exports carry the fixed column order:
  Date,URL,Strategy,Score,LCP,FID,CLS,TTFB,FCP,INP
with every field quoted. An empty history produces no file at all.

Parquet exports can be used with Spark, Pandas, DuckDB and other
Parquet-compatible tools.

Examples:
  # Export as CSV to an auto-named file
  vitalscan history export

  # Export as Parquet
  vitalscan history export --format parquet --output-file vitals.parquet`,
	PreRunE: historySetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		format := schema.ExportFormat(viper.GetString("format"))
		if _, ok := schema.ValidExportFormats[format]; !ok {
			return fmt.Errorf("invalid export format '%s'. must be csv or parquet", format)
		}
		return iohistory.ExecuteHistoryExport(historyStore, format, cfg.OutputFile)
	},
}

// historyMigrateCmd runs storage schema migrations.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run history storage schema migrations",
	Long: `Apply versioned schema migrations to the history storage backend.

Use --target-version to migrate to a specific version, or leave it at the
default (-1) to migrate to the latest.

Examples:
  # Migrate to the latest schema
  vitalscan history migrate

  # Roll back to the initial state
  vitalscan history migrate --target-version 0`,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		// Migration opens its own connection; only config loading here.
		if err := loadConfigFile(); err != nil {
			return err
		}
		backend := schema.DatabaseBackend(viper.GetString("history-backend"))
		connStr := viper.GetString("history-db-connect")
		if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
			return err
		}
		cfg.HistoryBackend = backend
		cfg.HistoryDBConnect = connStr
		return nil
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return iohistory.MigrateHistory(cfg.HistoryBackend, cfg.HistoryDBConnect, viper.GetInt("target-version"))
	},
}
