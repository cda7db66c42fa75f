package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dshills/hecto/internal/config/loader"
)

// Config provides unified access to the hecto configuration.
// Values are resolved from four layers, highest priority last:
// built-in defaults, the config file, HECTO_* environment variables,
// and explicit overrides set with Set.
type Config struct {
	mu sync.RWMutex

	defaults  map[string]any
	file      map[string]any
	env       map[string]any
	overrides map[string]any

	// merged caches the result of merging all layers.
	merged map[string]any

	// configFile is the file loaded by Load. Empty means search defaults.
	configFile string
	envPrefix  string
	fs         loader.FileSystem

	// loadedFrom is the file actually read, or empty if none existed.
	loadedFrom string
}

// Option configures a Config instance.
type Option func(*Config)

// WithConfigFile sets the configuration file to load.
// The format is chosen from the file extension.
func WithConfigFile(path string) Option {
	return func(c *Config) {
		c.configFile = path
	}
}

// WithEnvPrefix sets the environment variable prefix. An empty prefix
// disables the environment layer.
func WithEnvPrefix(prefix string) Option {
	return func(c *Config) {
		c.envPrefix = prefix
	}
}

// WithFileSystem sets the file system used to read config files.
func WithFileSystem(fsys loader.FileSystem) Option {
	return func(c *Config) {
		c.fs = fsys
	}
}

// New creates a new Config holding only the built-in defaults.
// Call Load to read the file and environment layers.
func New(opts ...Option) *Config {
	c := &Config{
		defaults:  defaultConfig(),
		overrides: make(map[string]any),
		envPrefix: loader.DefaultEnvPrefix,
		fs:        loader.DefaultFS(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.rebuild()
	return c
}

// Load loads configuration from the config file and the environment.
// A missing config file is not an error.
func (c *Config) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	file, from, err := c.loadFile()
	if err != nil {
		return err
	}

	var env map[string]any
	if c.envPrefix != "" {
		env, err = loader.NewEnvLoader(c.envPrefix).Load()
		if err != nil {
			return fmt.Errorf("loading environment: %w", err)
		}
	}

	c.file = file
	c.env = env
	c.loadedFrom = from
	c.rebuild()
	return nil
}

// loadFile reads the configured file, or the first default candidate that
// exists.
func (c *Config) loadFile() (map[string]any, string, error) {
	candidates := []string{c.configFile}
	if c.configFile == "" {
		candidates = DefaultConfigPaths()
	}

	for _, path := range candidates {
		l, err := loader.ForPathWithFS(c.fs, path)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
		}
		data, err := l.Load()
		if err != nil {
			return nil, "", err
		}
		if data != nil {
			return data, path, nil
		}
	}
	return nil, "", nil
}

// LoadedFrom returns the path of the config file read by Load, or ""
// if no file was found.
func (c *Config) LoadedFrom() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadedFrom
}

// rebuild merges all layers into the cache. Caller must hold mu.
func (c *Config) rebuild() {
	merged := make(map[string]any)
	for _, layer := range []map[string]any{c.defaults, c.file, c.env, c.overrides} {
		merged = loader.DeepMerge(merged, cloneMap(layer))
	}
	c.merged = merged
}

// Get returns the value at the given path from the merged configuration.
func (c *Config) Get(path string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return getPath(c.merged, path)
}

// GetString returns a string value at the given path.
func (c *Config) GetString(path string) (string, error) {
	v, ok := c.Get(path)
	if !ok {
		return "", ErrSettingNotFound
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Path: path, Expected: "string", Actual: typeName(v)}
	}
	return s, nil
}

// GetInt returns an integer value at the given path.
func (c *Config) GetInt(path string) (int, error) {
	v, ok := c.Get(path)
	if !ok {
		return 0, ErrSettingNotFound
	}
	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case float64:
		return int(val), nil
	default:
		return 0, &TypeError{Path: path, Expected: "int", Actual: typeName(v)}
	}
}

// GetBool returns a boolean value at the given path.
func (c *Config) GetBool(path string) (bool, error) {
	v, ok := c.Get(path)
	if !ok {
		return false, ErrSettingNotFound
	}
	b, ok := v.(bool)
	if !ok {
		return false, &TypeError{Path: path, Expected: "bool", Actual: typeName(v)}
	}
	return b, nil
}

// GetDuration returns a duration at the given path. Strings are parsed
// with time.ParseDuration; bare numbers are seconds.
func (c *Config) GetDuration(path string) (time.Duration, error) {
	v, ok := c.Get(path)
	if !ok {
		return 0, ErrSettingNotFound
	}
	switch val := v.(type) {
	case time.Duration:
		return val, nil
	case string:
		d, err := time.ParseDuration(val)
		if err != nil {
			return 0, &TypeError{Path: path, Expected: "duration", Actual: fmt.Sprintf("string %q", val)}
		}
		return d, nil
	case int:
		return time.Duration(val) * time.Second, nil
	case int64:
		return time.Duration(val) * time.Second, nil
	case float64:
		return time.Duration(val * float64(time.Second)), nil
	default:
		return 0, &TypeError{Path: path, Expected: "duration", Actual: typeName(v)}
	}
}

// Set sets a value at the given path in the override layer.
func (c *Config) Set(path string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := setPath(c.overrides, path, value); err != nil {
		return fmt.Errorf("setting %s: %w", path, err)
	}
	c.rebuild()
	return nil
}

// Merged returns a copy of the merged configuration.
func (c *Config) Merged() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneMap(c.merged)
}

// Validate checks every known setting and returns all problems joined.
func (c *Config) Validate() error {
	var errs []error
	for _, check := range validators {
		if err := check(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// DefaultConfigPaths returns the config files searched when no file is
// given, in order: config.toml, then config.yaml, under the user config dir.
func DefaultConfigPaths() []string {
	dir := defaultUserConfigDir()
	return []string{
		filepath.Join(dir, "config.toml"),
		filepath.Join(dir, "config.yaml"),
	}
}

// defaultUserConfigDir returns the default user configuration directory.
func defaultUserConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "hecto")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "hecto")
}

// defaultConfig returns the default configuration values.
func defaultConfig() map[string]any {
	return map[string]any{
		"editor": map[string]any{
			"theme":          "default",
			"quitTimes":      3,
			"messageTimeout": "5s",
			"showWelcome":    true,
		},
		"search": map[string]any{
			"centerOnMatch": true,
		},
		"highlight": map[string]any{
			"enabled":     true,
			"checkpoints": true,
			"chroma":      true,
		},
		"log": map[string]any{
			"level": "info",
			"file":  "",
		},
		"watch": map[string]any{
			"enabled":  true,
			"debounce": "100ms",
		},
	}
}

// getPath retrieves a value from a nested map using a dot-separated path.
func getPath(m map[string]any, path string) (any, bool) {
	parts := splitPath(path)
	if len(parts) == 0 {
		return nil, false
	}

	current := any(m)
	for _, part := range parts {
		cm, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = cm[part]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// setPath sets a value in a nested map using a dot-separated path.
func setPath(m map[string]any, path string, value any) error {
	parts := splitPath(path)
	if len(parts) == 0 {
		return ErrInvalidPath
	}

	current := m
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part]
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		nextMap, ok := next.(map[string]any)
		if !ok {
			return ErrInvalidPath
		}
		current = nextMap
	}

	current[parts[len(parts)-1]] = value
	return nil
}

// splitPath splits a dot-separated path into parts, dropping empty parts.
func splitPath(path string) []string {
	var parts []string
	for _, part := range strings.Split(path, ".") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

// cloneMap deep-copies nested maps so layers never share storage.
func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		if nested, ok := v.(map[string]any); ok {
			out[k] = cloneMap(nested)
			continue
		}
		out[k] = v
	}
	return out
}

// typeName returns the type name for error messages.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	switch v.(type) {
	case string:
		return "string"
	case int, int64:
		return "int"
	case float64:
		return "float64"
	case bool:
		return "bool"
	case time.Duration:
		return "duration"
	case []any:
		return "[]any"
	case map[string]any:
		return "map"
	default:
		return fmt.Sprintf("%T", v)
	}
}
