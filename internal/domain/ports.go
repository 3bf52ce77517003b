package domain

// TaskStore persists the whole task list.
// Implementations read and overwrite the complete list in one call.
type TaskStore interface {
	// Load returns the stored tasks in order.
	// A store that has never been written returns an empty slice and no error.
	Load() ([]Task, error)

	// Save replaces the stored tasks with tasks.
	Save(tasks []Task) error
}

// Display presents responses to the user.
type Display interface {
	// Show presents a normal response.
	Show(msg string)

	// ShowError presents an error message.
	ShowError(msg string)
}

// Logger provides structured logging to files.
type Logger interface {
	// Info logs an info message.
	Info(category, msg string)
	// Debug logs a debug message.
	Debug(category, msg string)
	// Warn logs a warning message.
	Warn(category, msg string)
	// Error logs an error message.
	Error(category, msg string)
}

// ConfigLoader loads configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (global + local).
	Load() (*Config, error)
}

// ConfigInfo holds information about a config file.
type ConfigInfo struct {
	Path    string // File path
	Content string // File content (empty if not exists)
	Exists  bool   // Whether the file exists
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetLocalConfigInfo returns information about the working-directory config file.
	GetLocalConfigInfo() ConfigInfo
	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo
	// InitLocalConfig creates a working-directory config file with the default template.
	InitLocalConfig(cfg *Config) error
	// InitGlobalConfig creates a global config file with the default template.
	InitGlobalConfig(cfg *Config) error
}
