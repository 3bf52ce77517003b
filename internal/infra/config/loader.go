// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/duke/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	localDir      string // Working directory holding .duke.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/duke)
}

// NewLoader creates a new Loader.
func NewLoader(localDir string) *Loader {
	return &Loader{
		localDir:      localDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(localDir, globalConfDir string) *Loader {
	return &Loader{
		localDir:      localDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration.
// Merge order: default <- global <- local (later takes precedence).
func (l *Loader) Load() (*domain.Config, error) {
	global, err := l.globalLayer()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	local, err := l.localLayer()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	base := domain.NewDefaultConfig()
	if global != nil {
		global.applyTo(base)
	}
	if local != nil {
		local.applyTo(base)
	}
	return base, nil
}

// LoadGlobal returns defaults overlaid with only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	layer, err := l.globalLayer()
	if err != nil {
		return nil, err
	}
	base := domain.NewDefaultConfig()
	layer.applyTo(base)
	return base, nil
}

// LoadLocal returns defaults overlaid with only the local configuration.
func (l *Loader) LoadLocal() (*domain.Config, error) {
	layer, err := l.localLayer()
	if err != nil {
		return nil, err
	}
	base := domain.NewDefaultConfig()
	layer.applyTo(base)
	return base, nil
}

func (l *Loader) globalLayer() (*layer, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

func (l *Loader) localLayer() (*layer, error) {
	return loadFile(domain.LocalConfigPath(l.localDir))
}

// layer is one parsed config file. Nil fields were not set in the file,
// so an explicit false can override a true from a lower layer.
type layer struct {
	backend     *string
	path        *string
	namespace   *string
	autosave    *bool
	logLevel    *string
	logDir      *string
	lenient     *bool
	legacyIndex *bool
	plain       *bool
	warnings    []string
}

// loadFile loads a configuration layer from a file.
func loadFile(path string) (*layer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRaw(raw), nil
}

// convertRaw converts the raw map to a layer and collects warnings.
func convertRaw(raw map[string]any) *layer {
	res := &layer{}
	var w warnings

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			w.add("unknown section: %s", section)
			continue
		}
		switch section {
		case "storage":
			for k, v := range m {
				switch k {
				case "backend":
					res.backend = w.str(section, k, v)
				case "path":
					res.path = w.str(section, k, v)
				case "namespace":
					res.namespace = w.str(section, k, v)
				case "autosave":
					res.autosave = w.boolean(section, k, v)
				default:
					w.add("unknown key in [%s]: %s", section, k)
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					res.logLevel = w.str(section, k, v)
				case "dir":
					res.logDir = w.str(section, k, v)
				default:
					w.add("unknown key in [%s]: %s", section, k)
				}
			}
		case "parser":
			for k, v := range m {
				switch k {
				case "lenient":
					res.lenient = w.boolean(section, k, v)
				case "legacy_index":
					res.legacyIndex = w.boolean(section, k, v)
				default:
					w.add("unknown key in [%s]: %s", section, k)
				}
			}
		case "ui":
			for k, v := range m {
				switch k {
				case "plain":
					res.plain = w.boolean(section, k, v)
				default:
					w.add("unknown key in [%s]: %s", section, k)
				}
			}
		default:
			w.add("unknown section: %s", section)
		}
	}

	sort.Strings(w)
	res.warnings = w
	return res
}

// applyTo overlays the set fields of l onto cfg.
func (l *layer) applyTo(cfg *domain.Config) {
	setString(&cfg.Storage.Backend, l.backend)
	setString(&cfg.Storage.Path, l.path)
	setString(&cfg.Storage.Namespace, l.namespace)
	setBool(&cfg.Storage.Autosave, l.autosave)
	setString(&cfg.Log.Level, l.logLevel)
	setString(&cfg.Log.Dir, l.logDir)
	setBool(&cfg.Parser.Lenient, l.lenient)
	setBool(&cfg.Parser.LegacyIndex, l.legacyIndex)
	setBool(&cfg.UI.Plain, l.plain)
	cfg.Warnings = append(cfg.Warnings, l.warnings...)
}

func setString(dst *string, v *string) {
	if v != nil && *v != "" {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

type warnings []string

func (w *warnings) add(format string, args ...any) {
	*w = append(*w, fmt.Sprintf(format, args...))
}

func (w *warnings) str(section, key string, v any) *string {
	s, ok := v.(string)
	if !ok {
		w.add("invalid value for [%s].%s: expected string", section, key)
		return nil
	}
	return &s
}

func (w *warnings) boolean(section, key string, v any) *bool {
	b, ok := v.(bool)
	if !ok {
		w.add("invalid value for [%s].%s: expected boolean", section, key)
		return nil
	}
	return &b
}
