package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override job file settings.
const (
	EnvLogLevel    = "GRIDPATH_LOG_LEVEL"
	EnvLogFormat   = "GRIDPATH_LOG_FORMAT"
	EnvMetricsFile = "GRIDPATH_METRICS_FILE"
	EnvWorkers     = "GRIDPATH_WORKERS"
)

// ApplyEnv loads envFiles (without overwriting variables already set) and
// copies GRIDPATH_* overrides into f. Missing env files are ignored.
func ApplyEnv(f *File, envFiles ...string) error {
	for _, name := range envFiles {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: load %s: %w", name, err)
		}
	}

	f.Log.Level = getEnvWithDefault(EnvLogLevel, f.Log.Level)
	f.Log.Format = getEnvWithDefault(EnvLogFormat, f.Log.Format)
	f.Metrics.File = getEnvWithDefault(EnvMetricsFile, f.Metrics.File)
	if v, ok := os.LookupEnv(EnvWorkers); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, EnvWorkers, v)
		}
		f.Workers = n
	}

	return nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return defaultValue
}
