package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Section accessor methods return snapshot structs. Mutating the returned
// struct does not modify the underlying configuration. Use Config.Set()
// to update configuration values.

// EditorConfig provides type-safe access to editor settings.
type EditorConfig struct {
	// Theme is the color theme name.
	Theme string

	// QuitTimes is how many times quit must be pressed to discard
	// unsaved changes.
	QuitTimes int

	// MessageTimeout is how long a status message stays visible.
	MessageTimeout time.Duration

	// ShowWelcome shows the welcome message when no file is opened.
	ShowWelcome bool
}

// SearchConfig provides type-safe access to search settings.
type SearchConfig struct {
	// CenterOnMatch scrolls a found match to the middle of the view.
	CenterOnMatch bool
}

// HighlightConfig provides type-safe access to highlighting settings.
type HighlightConfig struct {
	// Enabled turns syntax highlighting on.
	Enabled bool

	// Checkpoints caches lexer state per line so edits rescan less.
	Checkpoints bool

	// Chroma enables chroma lexers for languages without a native highlighter.
	Chroma bool
}

// LogConfig provides type-safe access to logging settings.
type LogConfig struct {
	// Level is the minimum log level.
	Level string

	// File is the log file path. Empty disables logging.
	File string
}

// WatchConfig provides type-safe access to file watching settings.
type WatchConfig struct {
	// Enabled watches the open file for external changes.
	Enabled bool

	// Debounce coalesces bursts of file events.
	Debounce time.Duration
}

// Editor returns the editor configuration section.
func (c *Config) Editor() EditorConfig {
	return EditorConfig{
		Theme:          c.stringOr("editor.theme", "default"),
		QuitTimes:      c.intOr("editor.quitTimes", 3),
		MessageTimeout: c.durationOr("editor.messageTimeout", 5*time.Second),
		ShowWelcome:    c.boolOr("editor.showWelcome", true),
	}
}

// Search returns the search configuration section.
func (c *Config) Search() SearchConfig {
	return SearchConfig{
		CenterOnMatch: c.boolOr("search.centerOnMatch", true),
	}
}

// Highlight returns the highlighting configuration section.
func (c *Config) Highlight() HighlightConfig {
	return HighlightConfig{
		Enabled:     c.boolOr("highlight.enabled", true),
		Checkpoints: c.boolOr("highlight.checkpoints", true),
		Chroma:      c.boolOr("highlight.chroma", true),
	}
}

// Log returns the logging configuration section.
func (c *Config) Log() LogConfig {
	return LogConfig{
		Level: c.stringOr("log.level", "info"),
		File:  c.stringOr("log.file", ""),
	}
}

// Watch returns the file watching configuration section.
func (c *Config) Watch() WatchConfig {
	return WatchConfig{
		Enabled:  c.boolOr("watch.enabled", true),
		Debounce: c.durationOr("watch.debounce", 100*time.Millisecond),
	}
}

func (c *Config) stringOr(path, def string) string {
	if v, err := c.GetString(path); err == nil {
		return v
	}
	return def
}

func (c *Config) intOr(path string, def int) int {
	if v, err := c.GetInt(path); err == nil {
		return v
	}
	return def
}

func (c *Config) boolOr(path string, def bool) bool {
	if v, err := c.GetBool(path); err == nil {
		return v
	}
	return def
}

func (c *Config) durationOr(path string, def time.Duration) time.Duration {
	if v, err := c.GetDuration(path); err == nil {
		return v
	}
	return def
}

// LogLevels lists the accepted values of log.level.
var LogLevels = []string{"debug", "info", "warn", "error"}

// validators check one setting each. A nil result means the setting is
// valid or absent.
var validators = []func(*Config) error{
	checkString("editor.theme", nil),
	checkIntMin("editor.quitTimes", 1),
	checkPositiveDuration("editor.messageTimeout"),
	checkBool("editor.showWelcome"),
	checkBool("search.centerOnMatch"),
	checkBool("highlight.enabled"),
	checkBool("highlight.checkpoints"),
	checkBool("highlight.chroma"),
	checkString("log.level", LogLevels),
	checkString("log.file", nil),
	checkBool("watch.enabled"),
	checkPositiveDuration("watch.debounce"),
}

func checkString(path string, allowed []string) func(*Config) error {
	return func(c *Config) error {
		v, err := c.GetString(path)
		if err != nil {
			return typeCheck(c, path, err)
		}
		if allowed != nil && !slices.Contains(allowed, v) {
			return &ValidationError{Path: path, Message: "must be one of " + strings.Join(allowed, ", "), Value: v, Code: ErrCodeInvalidEnum}
		}
		return nil
	}
}

func checkBool(path string) func(*Config) error {
	return func(c *Config) error {
		_, err := c.GetBool(path)
		return typeCheck(c, path, err)
	}
}

func checkIntMin(path string, minimum int) func(*Config) error {
	return func(c *Config) error {
		v, err := c.GetInt(path)
		if err != nil {
			return typeCheck(c, path, err)
		}
		if v < minimum {
			return &ValidationError{Path: path, Message: fmt.Sprintf("must be at least %d", minimum), Value: v, Code: ErrCodeOutOfRange}
		}
		return nil
	}
}

func checkPositiveDuration(path string) func(*Config) error {
	return func(c *Config) error {
		d, err := c.GetDuration(path)
		if err != nil {
			return typeCheck(c, path, err)
		}
		if d <= 0 {
			return &ValidationError{Path: path, Message: "must be positive", Value: d, Code: ErrCodeOutOfRange}
		}
		return nil
	}
}

// typeCheck converts an accessor error into a validation error.
// Missing settings are valid.
func typeCheck(c *Config, path string, err error) error {
	if err == nil || errors.Is(err, ErrSettingNotFound) {
		return nil
	}
	v, _ := c.Get(path)
	return &ValidationError{Path: path, Message: err.Error(), Value: v, Code: ErrCodeTypeMismatch}
}
