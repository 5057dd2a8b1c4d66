package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	xdg "github.com/bnema/docklayout/internal/config"
	"github.com/spf13/viper"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644

	schemaFileName = "config.schema.json"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	file           string
	ensureXDG      bool
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
}

// NewManager creates a manager for $XDG_CONFIG_HOME/docklayout/config.toml.
func NewManager() (*Manager, error) {
	configFile, err := xdg.GetConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return newManager(configFile, true)
}

// NewManagerForFile creates a manager bound to an explicit config file.
func NewManagerForFile(path string) (*Manager, error) {
	return newManager(path, false)
}

func newManager(configFile string, ensureXDG bool) (*Manager, error) {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("toml")

	// DOCKLAYOUT_LAYOUT_PATH, DOCKLAYOUT_DATABASE_PATH, ... via AutomaticEnv.
	v.SetEnvPrefix("DOCKLAYOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short names shared with logging.NewFromEnv.
	if err := v.BindEnv("logging.level", "DOCKLAYOUT_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind DOCKLAYOUT_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "DOCKLAYOUT_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind DOCKLAYOUT_LOG_FORMAT: %w", err)
	}
	if err := v.BindEnv("layout.path", "DOCKLAYOUT_LAYOUT", "DOCKLAYOUT_LAYOUT_PATH"); err != nil {
		return nil, fmt.Errorf("failed to bind DOCKLAYOUT_LAYOUT: %w", err)
	}

	return &Manager{
		viper:     v,
		file:      configFile,
		ensureXDG: ensureXDG,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing file is created with the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ensureXDG {
		if err := xdg.EnsureDirectories(); err != nil {
			return fmt.Errorf("failed to ensure directories: %w", err)
		}
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := ensurePaths(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if _, err := os.Stat(m.file); errors.Is(err, fs.ErrNotExist) {
		if createErr := m.createDefaultConfig(); createErr != nil {
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				m.file,
				createErr,
			)
		}
	}

	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.file, err)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.file,
			err,
		)
	}
	return config, nil
}

// ensurePaths fills empty locations with their XDG defaults.
func ensurePaths(config *Config) error {
	if config.Layout.Path == "" {
		path, err := xdg.GetDefaultLayoutFile()
		if err != nil {
			return fmt.Errorf("failed to get layout path: %w", err)
		}
		config.Layout.Path = path
	}
	if config.Database.Path == "" {
		path, err := xdg.GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = path
	}
	if config.Logging.File.Dir == "" {
		dir, err := xdg.GetLogDir()
		if err != nil {
			return fmt.Errorf("failed to get log directory: %w", err)
		}
		config.Logging.File.Dir = dir
	}
	return nil
}

func normalizeConfig(config *Config) {
	config.Layout.Path = strings.TrimSpace(config.Layout.Path)
	config.Database.Path = strings.TrimSpace(config.Database.Path)
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))

	switch ColorScheme(strings.ToLower(string(config.Appearance.ColorScheme))) {
	case ColorSchemeDark:
		config.Appearance.ColorScheme = ColorSchemeDark
	case ColorSchemeLight:
		config.Appearance.ColorScheme = ColorSchemeLight
	default:
		config.Appearance.ColorScheme = ColorSchemeAuto
	}
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	configCopy := *m.config
	return &configCopy
}

// Save validates cfg and writes it to the config file.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := WriteConfigOrdered(cfg, m.file); err != nil {
		return err
	}

	if m.watching {
		m.skipNextReload = true
		m.config = cfg
		return nil
	}
	return m.reload()
}

// GetConfigFile returns the file the manager reads.
func (m *Manager) GetConfigFile() string {
	return m.file
}

func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(filepath.Dir(m.file), dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), m.file); err != nil {
		return err
	}

	schema, err := xdg.MarshalSchema(Schema())
	if err != nil {
		return err
	}
	schemaPath := filepath.Join(filepath.Dir(m.file), schemaFileName)
	if err := os.WriteFile(schemaPath, schema, filePerm); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("layout.path", defaults.Layout.Path)
	m.viper.SetDefault("layout.min_panel_size", defaults.Layout.MinPanelSize)
	m.viper.SetDefault("layout.autosave", defaults.Layout.Autosave)

	m.viper.SetDefault("validation.max_depth", defaults.Validation.MaxDepth)
	m.viper.SetDefault("validation.max_nodes", defaults.Validation.MaxNodes)

	m.viper.SetDefault("performance.slow_warn_ms", defaults.Performance.SlowWarnMs)
	m.viper.SetDefault("performance.slow_debug_ms", defaults.Performance.SlowDebugMs)

	m.viper.SetDefault("database.path", defaults.Database.Path)

	m.setLoggingDefaults(defaults)
	m.setAppearanceDefaults(defaults)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file.enabled", defaults.Logging.File.Enabled)
	m.viper.SetDefault("logging.file.dir", defaults.Logging.File.Dir)
	m.viper.SetDefault("logging.file.max_size_mb", defaults.Logging.File.MaxSizeMB)
	m.viper.SetDefault("logging.file.max_backups", defaults.Logging.File.MaxBackups)
	m.viper.SetDefault("logging.file.max_age_days", defaults.Logging.File.MaxAgeDays)
	m.viper.SetDefault("logging.file.compress", defaults.Logging.File.Compress)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	m.viper.SetDefault("appearance.color_scheme", string(defaults.Appearance.ColorScheme))
	m.setPaletteDefaults("appearance.dark_palette", defaults.Appearance.DarkPalette)
	m.setPaletteDefaults("appearance.light_palette", defaults.Appearance.LightPalette)
}

func (m *Manager) setPaletteDefaults(prefix string, p PaletteConfig) {
	m.viper.SetDefault(prefix+".accent", p.Accent)
	m.viper.SetDefault(prefix+".text", p.Text)
	m.viper.SetDefault(prefix+".muted", p.Muted)
	m.viper.SetDefault(prefix+".border", p.Border)
	m.viper.SetDefault(prefix+".container", p.Container)
	m.viper.SetDefault(prefix+".error", p.Error)
}
