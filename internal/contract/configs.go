package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/vitalscan/vitalscan/schema"
)

// Default values for configuration.
const (
	DefaultTimeout = 60 * time.Second
	MaxWorkers     = 16
)

// DefaultWorkers is the default number of concurrent analyses.
var DefaultWorkers = min(runtime.GOMAXPROCS(0), 4)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// historyDBFileName is the name of the default SQLite database file.
const historyDBFileName = ".vitalscan_history.db"

// GetHistoryDBFilePath returns the default SQLite DB path for history storage.
func GetHistoryDBFilePath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, historyDBFileName)
}

// ConfigRawInput holds the raw, unvalidated configuration from all sources
// (file, env, flags). Viper unmarshals into this struct.
type ConfigRawInput struct {
	APIKey           string `mapstructure:"api-key"`
	Strategy         string `mapstructure:"strategy"`
	TimeoutStr       string `mapstructure:"timeout"`
	Workers          int    `mapstructure:"workers"`
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`
	Color            string `mapstructure:"color"`
	Width            int    `mapstructure:"width"`
}

// Config holds the runtime configuration for analysis and history commands.
// This struct remains the "final, validated" config.
type Config struct {
	APIKey     string
	Strategy   schema.Strategy
	Timeout    time.Duration
	Workers    int
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	UseColors bool // Enable colored rating labels in table output
}

// Clone returns a copy of the config for per-request overrides.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate validates the raw input and populates cfg.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.APIKey = input.APIKey
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	// --- Strategy ---
	cfg.Strategy = schema.Strategy(strings.ToLower(input.Strategy))
	if _, ok := schema.ValidStrategies[cfg.Strategy]; !ok {
		return fmt.Errorf("invalid strategy '%s'. must be mobile or desktop", input.Strategy)
	}

	// --- Timeout ---
	if input.TimeoutStr == "" {
		cfg.Timeout = DefaultTimeout
	} else {
		timeout, err := time.ParseDuration(input.TimeoutStr)
		if err != nil {
			return fmt.Errorf("invalid timeout '%s': %w", input.TimeoutStr, err)
		}
		if timeout <= 0 {
			return fmt.Errorf("timeout must be positive, got '%s'", input.TimeoutStr)
		}
		cfg.Timeout = timeout
	}

	// --- Workers ---
	cfg.Workers = input.Workers
	if cfg.Workers < 1 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.Workers > MaxWorkers {
		cfg.Workers = MaxWorkers
	}

	// --- Output mode ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output mode '%s'. must be text, csv, or json", input.Output)
	}

	// --- Color flag ---
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- History backend ---
	return validateBackendConfig(cfg, input)
}

// validateBackendConfig validates the history storage backend configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.HistoryBackend = schema.DatabaseBackend(strings.ToLower(input.HistoryBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.HistoryBackend]; !ok {
		return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", input.HistoryBackend)
	}
	cfg.HistoryDBConnect = input.HistoryDBConnect
	return ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect)
}

// ValidateDatabaseConnectionString performs basic sanity checks on the
// connection string for the configured backend.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// ParseBoolString interprets the yes/no style boolean flags.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "yes", "true", "1", "on":
		return true, nil
	case "no", "false", "0", "off":
		return false, nil
	default:
		return false, fmt.Errorf("expected yes/no/true/false/1/0, got %q", s)
	}
}
