package domain

import (
	"bytes"
	_ "embed"
	"path/filepath"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string      `toml:"-"`
	Storage  StorageConfig `toml:"storage"`
	Log      LogConfig     `toml:"log"`
	Parser   ParserConfig  `toml:"parser"`
	UI       UIConfig      `toml:"ui"`
}

// Storage backends.
const (
	BackendFile   = "file"   // Line-oriented text file (default)
	BackendGit    = "git"    // Text document stored as a blob under a git ref
	BackendSQLite = "sqlite" // One row per task
)

// StorageConfig holds settings from the [storage] section.
type StorageConfig struct {
	Backend   string `toml:"backend,omitempty"`   // file (default), git or sqlite
	Path      string `toml:"path,omitempty"`      // File or database path; unused by git
	Namespace string `toml:"namespace,omitempty"` // Git ref namespace (default: "duke")
	Autosave  bool   `toml:"autosave,omitempty"`  // Persist after every mutation
}

// LogConfig holds settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error
	Dir   string `toml:"dir,omitempty"`   // Log directory; empty disables file logging
}

// ParserConfig holds settings from the [parser] section.
type ParserConfig struct {
	Lenient     bool `toml:"lenient,omitempty"`      // Ignore extra tokens after list/help/bye
	LegacyIndex bool `toml:"legacy_index,omitempty"` // Accept only single-digit indexes
}

// UIConfig holds settings from the [ui] section.
type UIConfig struct {
	Plain bool `toml:"plain,omitempty"` // Line REPL instead of the full-screen UI
}

// Default configuration values.
const (
	DefaultLogLevel     = "info"
	DefaultNamespace    = "duke"
	DefaultStoragePath  = "data/duke.txt"
	ConfigFileName      = "config.toml"
	LocalConfigFileName = ".duke.toml"
	AppDirName          = "duke"
)

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend:   BackendFile,
			Path:      DefaultStoragePath,
			Namespace: DefaultNamespace,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// GlobalConfigDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// LocalConfigPath returns the config path inside a working directory.
func LocalConfigPath(dir string) string {
	return filepath.Join(dir, LocalConfigFileName)
}

// GlobalLogPath returns the path to the log file inside dir.
func GlobalLogPath(dir string) string {
	return filepath.Join(dir, "duke.log")
}

// RenderConfigTemplate renders the commented config template with cfg's values.
func RenderConfigTemplate(cfg *Config) string {
	tmpl := template.Must(template.New("config").Parse(configTemplateContent))
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		return configTemplateContent
	}
	return buf.String()
}
