// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/tidwall/jsonc"

	"github.com/einarsolbakken/juleroerbord/internal/gate"
	"github.com/einarsolbakken/juleroerbord/internal/storage"
	"github.com/einarsolbakken/juleroerbord/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete juleroerbord configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	// Gate holds the access code and its timings.
	Gate GateConfig `toml:"gate" json:"gate"`

	// Storage selects where the granted flag is persisted.
	Storage StorageConfig `toml:"storage" json:"storage"`

	UI UIConfig `toml:"ui" json:"ui"`

	// Content points at an optional invitation file.
	Content ContentConfig `toml:"content" json:"content"`

	Log LogConfig `toml:"log" json:"log"`

	// source is the file the config was loaded from, if any.
	source string
}

// GateConfig configures the access gate.
type GateConfig struct {
	// Secret is the party code. Matching ignores case.
	Secret string `toml:"secret" json:"secret"`
	// RevealDelayMs is the reveal animation length. Valid range: 2500-2800.
	RevealDelayMs int `toml:"reveal_delay_ms" json:"reveal_delay_ms"`
	// ErrorDurationMs is how long "Feil kode!" stays visible.
	ErrorDurationMs int `toml:"error_duration_ms" json:"error_duration_ms"`
	// ShakeDurationMs is how long the gate shakes after a wrong code.
	ShakeDurationMs int `toml:"shake_duration_ms" json:"shake_duration_ms"`
	// TrimInput strips surrounding whitespace before comparing codes.
	TrimInput bool `toml:"trim_input" json:"trim_input"`
}

// StorageConfig configures flag persistence.
type StorageConfig struct {
	// Backend is "file", "sqlite" or "memory".
	Backend string `toml:"backend" json:"backend"`
	// Path is the flag file or database (empty = inside the config dir).
	Path string `toml:"path" json:"path"`
	// FlagKey is the key of the granted flag.
	FlagKey string `toml:"flag_key" json:"flag_key"`
}

// UIConfig contains terminal UI preferences.
type UIConfig struct {
	// Theme is "dark", "light" or "auto".
	Theme string `toml:"theme" json:"theme"`
	// Snow toggles the snowfall background.
	Snow bool `toml:"snow" json:"snow"`
	// SnowDensity is the number of flakes per 1000 cells.
	SnowDensity int `toml:"snow_density" json:"snow_density"`
	// ReduceMotion disables snow, shake and the reveal animation frames.
	ReduceMotion bool `toml:"reduce_motion" json:"reduce_motion"`
}

// ContentConfig locates the invitation content.
type ContentConfig struct {
	// Path is a .toml, .yaml or .json invitation file (empty = built-in).
	Path string `toml:"path" json:"path"`
	// Watch reloads the content file when it changes.
	Watch bool `toml:"watch" json:"watch"`
}

// LogConfig configures the structured log file.
type LogConfig struct {
	// Level is "debug", "info", "warn" or "error".
	Level string `toml:"level" json:"level"`
	// Path is the log file (empty = ~/.juleroerbord/juleroerbord.log).
	Path string `toml:"path" json:"path"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// CurrentVersion is written into new config files.
const CurrentVersion = "1"

// Default returns a Config with the stock party settings.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,

		Gate: GateConfig{
			Secret:          gate.DefaultSecret,
			RevealDelayMs:   int(gate.DefaultRevealDelay / time.Millisecond),
			ErrorDurationMs: int(gate.DefaultErrorDuration / time.Millisecond),
			ShakeDurationMs: int(gate.DefaultShakeDuration / time.Millisecond),
			TrimInput:       false,
		},

		Storage: StorageConfig{
			Backend: storage.BackendFile,
			FlagKey: gate.DefaultFlagKey,
		},

		UI: UIConfig{
			Theme:       "auto",
			Snow:        true,
			SnowDensity: 12,
		},

		Log: LogConfig{
			Level: "info",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the juleroerbord data directory. JULEROERBORD_HOME
// overrides the default ~/.juleroerbord.
func ConfigDir() (string, error) {
	if dir := os.Getenv("JULEROERBORD_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".juleroerbord"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0700)
}

// ensurePrivatePermissions tightens a config file to 0600. The secret is
// a party code, but the file is still nobody else's business.
func ensurePrivatePermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if mode := info.Mode().Perm(); mode != 0600 {
		if err := os.Chmod(path, 0600); err != nil {
			return fmt.Errorf("failed to fix permissions (was %o): %w", mode, err)
		}
	}
	return nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config directory. TOML wins over
// JSON; with neither present the defaults are used. Environment overrides
// are applied last.
func Load() (*Config, error) {
	tomlPath, err := ConfigPathTOML()
	if err != nil {
		return nil, err
	}
	if _, statErr := os.Stat(tomlPath); statErr == nil {
		return LoadFromPath(tomlPath)
	}

	jsonPath, err := ConfigPathJSON()
	if err != nil {
		return nil, err
	}
	if _, statErr := os.Stat(jsonPath); statErr == nil {
		return LoadFromPath(jsonPath)
	}

	cfg := Default()
	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromPath loads configuration from a specific file. Files ending in
// .json are parsed as JSON (comments allowed); anything else as TOML.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}
	cfg.source = path

	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// finish runs the shared tail of every load.
func (c *Config) finish() error {
	if err := c.ApplyEnvOverrides(); err != nil {
		return fmt.Errorf("invalid environment override: %w", err)
	}
	if err := c.Migrate(); err != nil {
		return fmt.Errorf("config migration failed: %w", err)
	}
	c.SetDefaults()
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadTOML decodes a TOML file over cfg. Keys missing from the file keep
// their current values.
func LoadTOML(cfg *Config, path string) error {
	if err := ensurePrivatePermissions(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not ensure private permissions on %s: %v\n", path, err)
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON decodes a JSON file over cfg. Comments and trailing commas are
// accepted.
func LoadJSON(cfg *Config, path string) error {
	if err := ensurePrivatePermissions(path); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not ensure private permissions on %s: %v\n", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// Source returns the file the config was loaded from, or "" for defaults.
func (c *Config) Source() string {
	return c.source
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save writes the config back to the file it came from, or to the default
// TOML file when it was built from defaults.
func Save(cfg *Config) error {
	path := cfg.source
	if path == "" {
		p, err := ConfigPathTOML()
		if err != nil {
			return err
		}
		path = p
	}
	if strings.HasSuffix(path, ".json") {
		return SaveJSON(cfg, path)
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes cfg as TOML with mode 0600.
func SaveTOML(cfg *Config, path string) error {
	var b strings.Builder
	b.WriteString("# juleroerbord configuration file\n")
	b.WriteString("# Generated by juleroerbord - edit with care\n")
	b.WriteString("\n")

	if err := toml.NewEncoder(&b).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, []byte(b.String()), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveJSON writes cfg as indented JSON with mode 0600.
func SaveJSON(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Reveal delay bounds in milliseconds.
const (
	MinRevealDelayMs = 2500
	MaxRevealDelayMs = 2800
)

var (
	validThemes    = []string{"dark", "light", "auto"}
	validLogLevels = []string{"debug", "info", "warn", "error"}
)

// Validate checks every field and returns all problems at once.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if c.Gate.Secret == "" {
		errs = append(errs, ValidationError{Field: "gate.secret", Message: "must not be empty"})
	}
	if c.Gate.RevealDelayMs < MinRevealDelayMs || c.Gate.RevealDelayMs > MaxRevealDelayMs {
		errs = append(errs, ValidationError{
			Field:   "gate.reveal_delay_ms",
			Message: fmt.Sprintf("must be between %d and %d, got %d", MinRevealDelayMs, MaxRevealDelayMs, c.Gate.RevealDelayMs),
		})
	}
	if c.Gate.ErrorDurationMs < 500 || c.Gate.ErrorDurationMs > 10000 {
		errs = append(errs, ValidationError{
			Field:   "gate.error_duration_ms",
			Message: fmt.Sprintf("must be between 500 and 10000, got %d", c.Gate.ErrorDurationMs),
		})
	}
	if c.Gate.ShakeDurationMs < 100 || c.Gate.ShakeDurationMs > 2000 {
		errs = append(errs, ValidationError{
			Field:   "gate.shake_duration_ms",
			Message: fmt.Sprintf("must be between 100 and 2000, got %d", c.Gate.ShakeDurationMs),
		})
	}

	if !contains(storage.Backends(), c.Storage.Backend) {
		errs = append(errs, ValidationError{
			Field:   "storage.backend",
			Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(storage.Backends(), ", "), c.Storage.Backend),
		})
	}
	if c.Storage.FlagKey == "" {
		errs = append(errs, ValidationError{Field: "storage.flag_key", Message: "must not be empty"})
	}

	if !contains(validThemes, c.UI.Theme) {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(validThemes, ", "), c.UI.Theme),
		})
	}
	if c.UI.SnowDensity < 0 || c.UI.SnowDensity > 200 {
		errs = append(errs, ValidationError{
			Field:   "ui.snow_density",
			Message: fmt.Sprintf("must be between 0 and 200, got %d", c.UI.SnowDensity),
		})
	}

	if c.Content.Path != "" {
		switch strings.ToLower(filepath.Ext(c.Content.Path)) {
		case ".toml", ".yaml", ".yml", ".json":
		default:
			errs = append(errs, ValidationError{
				Field:   "content.path",
				Message: "must end in .toml, .yaml, .yml or .json",
			})
		}
	}

	if !contains(validLogLevels, c.Log.Level) {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(validLogLevels, ", "), c.Log.Level),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// SetDefaults fills zero-valued fields with their defaults. Booleans are
// left alone since false is a legitimate setting.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}

	if c.Gate.Secret == "" {
		c.Gate.Secret = defaults.Gate.Secret
	}
	if c.Gate.RevealDelayMs == 0 {
		c.Gate.RevealDelayMs = defaults.Gate.RevealDelayMs
	}
	if c.Gate.ErrorDurationMs == 0 {
		c.Gate.ErrorDurationMs = defaults.Gate.ErrorDurationMs
	}
	if c.Gate.ShakeDurationMs == 0 {
		c.Gate.ShakeDurationMs = defaults.Gate.ShakeDurationMs
	}

	if c.Storage.Backend == "" {
		c.Storage.Backend = defaults.Storage.Backend
	}
	if c.Storage.FlagKey == "" {
		c.Storage.FlagKey = defaults.Storage.FlagKey
	}

	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}

	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}

// Migrate normalizes older or sloppier spellings.
func (c *Config) Migrate() error {
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	switch c.Storage.Backend {
	case "json":
		c.Storage.Backend = storage.BackendFile
	case "sqlite3", "db":
		c.Storage.Backend = storage.BackendSQLite
	}

	c.UI.Theme = strings.ToLower(strings.TrimSpace(c.UI.Theme))

	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "warning" {
		c.Log.Level = "warn"
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// envOverrides lists the supported environment variables. Empty or zero
// values and nil pointers mean "not set".
type envOverrides struct {
	Secret         string        `env:"JULEROERBORD_SECRET"`
	RevealDelay    time.Duration `env:"JULEROERBORD_REVEAL_DELAY"`
	StorageBackend string        `env:"JULEROERBORD_STORAGE"`
	StoragePath    string        `env:"JULEROERBORD_STORAGE_PATH"`
	Theme          string        `env:"JULEROERBORD_THEME"`
	NoSnow         *bool         `env:"JULEROERBORD_NO_SNOW"`
	ReduceMotion   *bool         `env:"JULEROERBORD_REDUCE_MOTION"`
	ContentPath    string        `env:"JULEROERBORD_CONTENT"`
	LogLevel       string        `env:"JULEROERBORD_LOG_LEVEL"`
}

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - JULEROERBORD_SECRET: overrides gate.secret
//   - JULEROERBORD_REVEAL_DELAY: overrides gate.reveal_delay_ms (Go duration, e.g. "2.6s")
//   - JULEROERBORD_STORAGE: overrides storage.backend
//   - JULEROERBORD_STORAGE_PATH: overrides storage.path
//   - JULEROERBORD_THEME: overrides ui.theme
//   - JULEROERBORD_NO_SNOW: boolean; true turns snow off, false turns it on
//   - JULEROERBORD_REDUCE_MOTION: boolean; overrides ui.reduce_motion
//   - JULEROERBORD_CONTENT: overrides content.path
//   - JULEROERBORD_LOG_LEVEL: overrides log.level
func (c *Config) ApplyEnvOverrides() error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if o.Secret != "" {
		c.Gate.Secret = o.Secret
	}
	if o.RevealDelay > 0 {
		c.Gate.RevealDelayMs = int(o.RevealDelay / time.Millisecond)
	}
	if o.StorageBackend != "" {
		c.Storage.Backend = o.StorageBackend
	}
	if o.StoragePath != "" {
		c.Storage.Path = o.StoragePath
	}
	if o.Theme != "" {
		c.UI.Theme = o.Theme
	}
	if o.NoSnow != nil {
		c.UI.Snow = !*o.NoSnow
	}
	if o.ReduceMotion != nil {
		c.UI.ReduceMotion = *o.ReduceMotion
	}
	if o.ContentPath != "" {
		c.Content.Path = o.ContentPath
	}
	if o.LogLevel != "" {
		c.Log.Level = o.LogLevel
	}
	return nil
}

// =============================================================================
// DERIVED SETTINGS
// =============================================================================

// GateConfig converts the gate and storage sections into a gate.Config.
func (c *Config) GateConfig() gate.Config {
	return gate.Config{
		Secret:        c.Gate.Secret,
		RevealDelay:   time.Duration(c.Gate.RevealDelayMs) * time.Millisecond,
		ErrorDuration: time.Duration(c.Gate.ErrorDurationMs) * time.Millisecond,
		ShakeDuration: time.Duration(c.Gate.ShakeDurationMs) * time.Millisecond,
		TrimInput:     c.Gate.TrimInput,
		FlagKey:       c.Storage.FlagKey,
	}
}

// StoragePath resolves the flag store location for the configured backend.
func (c *Config) StoragePath() (string, error) {
	if c.Storage.Path != "" {
		return c.Storage.Path, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return storage.DefaultPath(c.Storage.Backend, dir), nil
}

// LogPath resolves the log file location.
func (c *Config) LogPath() (string, error) {
	if c.Log.Path != "" {
		return c.Log.Path, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "juleroerbord.log"), nil
}

// SnowEnabled reports whether the snowfall should run.
func (c *Config) SnowEnabled() bool {
	return c.UI.Snow && !c.UI.ReduceMotion && c.UI.SnowDensity > 0
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g., "gate.secret").
func (c *Config) Get(key string) (interface{}, error) {
	field, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	return field.Interface(), nil
}

// Set sets a configuration value using dot notation. String values are
// converted to the field's type.
func (c *Config) Set(key string, value interface{}) error {
	field, err := c.lookup(key)
	if err != nil {
		return err
	}
	if !field.CanSet() {
		return fmt.Errorf("cannot set field: %s", key)
	}
	return setFieldValue(field, value)
}

// lookup walks key through the config struct.
func (c *Config) lookup(key string) (reflect.Value, error) {
	if key == "" {
		return reflect.Value{}, errors.New("empty key")
	}
	parts := strings.Split(key, ".")

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)
		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})
		// Unexported fields such as source are not addressable by key.
		if !field.IsValid() || !field.CanSet() {
			return reflect.Value{}, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}

		if i == len(parts)-1 {
			if field.Kind() == reflect.Struct {
				return reflect.Value{}, fmt.Errorf("field '%s' is a section, not a value", key)
			}
			return field, nil
		}

		if field.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i+1], "."))
		}
		v = field
	}

	return reflect.Value{}, fmt.Errorf("invalid key: %s", key)
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go field equivalent.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		if len(part) > 0 {
			result.WriteString(strings.ToUpper(string(part[0])))
			result.WriteString(strings.ToLower(part[1:]))
		}
	}
	return result.String()
}

// setFieldValue sets a reflect.Value from an interface{} value with type conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %v", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Bool:
			boolVal, err := strconv.ParseBool(strings.ToLower(strVal))
			if err != nil {
				if strings.EqualFold(strVal, "yes") {
					boolVal = true
				} else if strings.EqualFold(strVal, "no") {
					boolVal = false
				} else {
					return fmt.Errorf("invalid boolean value: %q", strVal)
				}
			}
			field.SetBool(boolVal)
			return nil
		}
	}

	val := reflect.ValueOf(value)
	if !val.IsValid() {
		return fmt.Errorf("cannot assign nil to %s", field.Type())
	}
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}
	if val.Type().ConvertibleTo(field.Type()) && val.Kind() != reflect.String {
		field.Set(val.Convert(field.Type()))
		return nil
	}

	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// GetAllKeys returns all configuration keys in dot notation.
func GetAllKeys() []string {
	return []string{
		"version",
		"gate.secret",
		"gate.reveal_delay_ms",
		"gate.error_duration_ms",
		"gate.shake_duration_ms",
		"gate.trim_input",
		"storage.backend",
		"storage.path",
		"storage.flag_key",
		"ui.theme",
		"ui.snow",
		"ui.snow_density",
		"ui.reduce_motion",
		"content.path",
		"content.watch",
		"log.level",
		"log.path",
	}
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// String renders the config as JSON with the secret masked, so that
// `config show` and log lines do not spoil the code.
func (c *Config) String() string {
	safe := c.Clone()
	if safe.Gate.Secret != "" {
		safe.Gate.Secret = "[REDACTED]"
	}
	data, _ := json.MarshalIndent(safe, "", "  ")
	return string(data)
}
