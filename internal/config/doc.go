// Package config provides the configuration system for hecto.
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Overrides (Set, flags)  │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← HECTO_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← ~/.config/hecto/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Sub-packages
//
//   - loader: Configuration file loading (TOML, YAML, environment variables)
//
// # Basic Usage
//
//	cfg := config.New(config.WithConfigFile(path))
//	if err := cfg.Load(ctx); err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//
//	editor := cfg.Editor()
//	fmt.Println(editor.Theme, editor.QuitTimes)
//
// # Configuration Files
//
// TOML is the primary format; YAML is accepted for files ending in
// .yaml or .yml:
//
//	# ~/.config/hecto/config.toml
//	[editor]
//	theme = "dracula"
//	quitTimes = 3
//	messageTimeout = "5s"
//
//	[search]
//	centerOnMatch = true
//
//	[log]
//	level = "debug"
//	file = "/tmp/hecto.log"
//
// Environment variables map onto settings by section and camelCased name:
// HECTO_EDITOR_QUIT_TIMES sets editor.quitTimes. HECTO_THEME, HECTO_LOG_LEVEL
// and HECTO_LOG_FILE are shorthands.
package config
