// ABOUTME: Configuration management with storage backend selection
// ABOUTME: Handles settings, date locale, and the kv backend factory function

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/harper/moodlog/internal/kv"
	"github.com/harper/moodlog/internal/timeutil"
)

// Config stores moodlog configuration.
type Config struct {
	// Backend selects the kv backend: "sqlite" (default), "file", "charm" or "memory".
	// Charm fetches encryption keys from the charm server and needs the network.
	Backend string `json:"backend,omitempty" validate:"omitempty,backend"`

	// DataDir is the root directory for data storage.
	// SQLite puts moodlog.db here, the file backend puts moodlog.yaml here,
	// and charm uses it as CHARM_DATA_DIR unless that is already set.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/moodlog.
	DataDir string `json:"data_dir,omitempty"`

	// DateLocale picks the display format for new entry dates. Defaults to "tr".
	DateLocale string `json:"date_locale,omitempty" validate:"omitempty,locale"`
}

// GetBackend returns the configured backend, defaulting to sqlite.
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return DefaultBackend
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return defaultDataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetDateLocale returns the configured locale, defaulting to Turkish.
func (c *Config) GetDateLocale() string {
	if c.DateLocale == "" {
		return timeutil.DefaultLocale
	}
	return c.DateLocale
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("backend", func(fl validator.FieldLevel) bool {
		return IsValidBackend(fl.Field().String())
	})
	_ = v.RegisterValidation("locale", func(fl validator.FieldLevel) bool {
		return timeutil.SupportedLocale(fl.Field().String())
	})
	return v
}

// Validate checks backend and locale values.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, formatFieldError(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "backend":
		return fmt.Sprintf("unknown backend: %q (valid: %s)", fe.Value(), strings.Join(Backends, ", "))
	case "locale":
		return fmt.Sprintf("unsupported date locale: %q (valid: %s)", fe.Value(), strings.Join(timeutil.Locales(), ", "))
	default:
		return fmt.Sprintf("%s is invalid", strings.ToLower(fe.Field()))
	}
}

// IsValidBackend reports whether name is a known backend.
func IsValidBackend(name string) bool {
	for _, b := range Backends {
		if b == name {
			return true
		}
	}
	return false
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenKV creates a kv.Store implementation based on the configured backend.
func (c *Config) OpenKV() (kv.Store, error) {
	backend := c.GetBackend()
	dataDir := c.GetDataDir()

	switch backend {
	case BackendCharm:
		if os.Getenv("CHARM_DATA_DIR") == "" {
			if err := os.Setenv("CHARM_DATA_DIR", filepath.Join(dataDir, "charm")); err != nil {
				return nil, fmt.Errorf("set charm data dir: %w", err)
			}
		}
		return kv.NewCharmStore(kv.DefaultCharmDBName), nil
	case BackendSQLite:
		return kv.NewSQLiteStore(filepath.Join(dataDir, DefaultDBFilename))
	case BackendFile:
		return kv.NewFileStore(filepath.Join(dataDir, kv.DefaultFileName))
	case BackendMemory:
		return kv.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "moodlog", "config.json")
}

// Exists reports whether a config file has been written.
func Exists() bool {
	_, err := os.Stat(GetConfigPath())
	return err == nil
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := defaultFirstRunConfig()
			if saveErr := cfg.Save(); saveErr != nil {
				fmt.Fprintf(os.Stderr, "warning: could not save default config: %v\n", saveErr)
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return kv.AtomicWrite(GetConfigPath(), data)
}

// defaultDataDir returns the standard XDG data directory for moodlog.
func defaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "moodlog")
}

// defaultFirstRunConfig returns the config written on first run. SQLite keeps
// everything on this machine; charm needs an account and is opt-in.
func defaultFirstRunConfig() *Config {
	return &Config{Backend: DefaultBackend}
}
