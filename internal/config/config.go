package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/yosuke-furukawa/json5/encoding/json5"
)

const (
	DirName         = "jobboard"
	FileName        = "config.json"
	DefaultDatabase = "JobConnect.db"

	defaultImportTimeoutSeconds = 30
)

// Config is the board's persisted settings.
type Config struct {
	// Database is the SQLite file backing the board.
	Database string `json:"database"`
	// ImportTimeoutSeconds bounds the page fetch made by `import <url>`.
	ImportTimeoutSeconds int `json:"import_timeout_seconds"`
}

func DefaultConfig() Config {
	return Config{Database: DefaultDatabase, ImportTimeoutSeconds: defaultImportTimeoutSeconds}
}

func (c Config) ImportTimeout() time.Duration {
	return time.Duration(c.ImportTimeoutSeconds) * time.Second
}

// LoadDotEnv loads .env from the working directory. Variables already set in
// the environment keep their values. A missing file is not an error.
func LoadDotEnv() error {
	err := godotenv.Load()
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Dir is the directory holding config.json: JOBBOARD_CONFIG_DIR, or
// jobboard under the user config directory.
func Dir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv("JOBBOARD_CONFIG_DIR")); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, DirName), nil
}

// Load layers config.json and then JOBBOARD_DB and JOBBOARD_IMPORT_TIMEOUT
// over the defaults.
func Load() (Config, error) {
	cfg := DefaultConfig()
	dir, err := Dir()
	if err != nil {
		return cfg, err
	}
	if err := cfg.readFile(filepath.Join(dir, FileName)); err != nil {
		return cfg, err
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}

	if strings.TrimSpace(cfg.Database) == "" {
		cfg.Database = DefaultDatabase
	}
	if cfg.ImportTimeoutSeconds <= 0 {
		cfg.ImportTimeoutSeconds = defaultImportTimeoutSeconds
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil
	case err != nil:
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json5.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if db := strings.TrimSpace(os.Getenv("JOBBOARD_DB")); db != "" {
		c.Database = db
	}
	if raw := strings.TrimSpace(os.Getenv("JOBBOARD_IMPORT_TIMEOUT")); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("JOBBOARD_IMPORT_TIMEOUT: %w", err)
		}
		c.ImportTimeoutSeconds = seconds
	}
	return nil
}

// Init writes config.json with the defaults unless it already exists, and
// reports its path and whether it was created.
func Init() (string, bool, error) {
	dir, err := Dir()
	if err != nil {
		return "", false, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", false, err
	}

	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return path, false, err
	}

	data, err := json.MarshalIndent(DefaultConfig(), "", "  ")
	if err != nil {
		return path, false, err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return path, false, err
	}
	return path, true, nil
}
