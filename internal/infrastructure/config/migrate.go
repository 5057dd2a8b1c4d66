package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/bnema/docklayout/internal/application/port"
	"github.com/bnema/docklayout/internal/logging"
)

// pathKeys are filled from XDG at load time and never reported as missing.
var pathKeys = map[string]bool{
	"layout.path":      true,
	"database.path":    true,
	"logging.file.dir": true,
}

// Migrator implements port.ConfigMigrator for one config file.
type Migrator struct {
	file         string
	defaultViper *viper.Viper
}

var _ port.ConfigMigrator = (*Migrator)(nil)

// NewMigrator creates a Migrator for the given config file.
func NewMigrator(file string) *Migrator {
	return &Migrator{file: file, defaultViper: defaultsViper()}
}

func defaultsViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("toml")
	m := &Manager{viper: v}
	m.setDefaults()
	return v
}

// ConfigFile returns the file being migrated.
func (m *Migrator) ConfigFile() string {
	return m.file
}

// DetectChanges compares the file's keys against the defaults.
func (m *Migrator) DetectChanges(ctx context.Context) ([]port.KeyChange, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	userKeys, err := readFlatKeys(m.file)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var changes []port.KeyChange
	for _, key := range m.defaultKeys() {
		if _, ok := userKeys[key]; ok || pathKeys[key] {
			continue
		}
		changes = append(changes, port.KeyChange{
			Type:  port.KeyChangeAdded,
			Key:   key,
			Value: formatValue(m.defaultViper.Get(key)),
		})
	}

	defaults := make(map[string]bool)
	for _, key := range m.defaultViper.AllKeys() {
		defaults[key] = true
	}
	for key, value := range userKeys {
		if defaults[key] {
			continue
		}
		changes = append(changes, port.KeyChange{
			Type:  port.KeyChangeRemoved,
			Key:   key,
			Value: formatValue(value),
		})
	}

	sort.Slice(changes, func(i, j int) bool {
		if changes[i].Type != changes[j].Type {
			return changes[i].Type < changes[j].Type
		}
		return changes[i].Key < changes[j].Key
	})

	logging.FromContext(ctx).Debug().
		Str("file", m.file).
		Int("changes", len(changes)).
		Msg("config changes detected")
	return changes, nil
}

// Migrate merges the file over the defaults and writes the result back in
// canonical order.
func (m *Migrator) Migrate(ctx context.Context) ([]string, error) {
	changes, err := m.DetectChanges(ctx)
	if err != nil || len(changes) == 0 {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(m.file)
	v.SetConfigType("toml")
	(&Manager{viper: v}).setDefaults()
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := WriteConfigOrdered(cfg, m.file); err != nil {
		return nil, err
	}

	applied := make([]string, 0, len(changes))
	for _, change := range changes {
		switch change.Type {
		case port.KeyChangeAdded:
			applied = append(applied, change.Key)
		case port.KeyChangeRemoved:
			applied = append(applied, "(dropped: "+change.Key+")")
		}
	}
	return applied, nil
}

func (m *Migrator) defaultKeys() []string {
	keys := m.defaultViper.AllKeys()
	sort.Strings(keys)
	return keys
}

func readFlatKeys(file string) (map[string]any, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	result := make(map[string]any)
	flatten(raw, "", result)
	return result, nil
}

func flatten(data map[string]any, prefix string, result map[string]any) {
	for k, v := range data {
		key := strings.ToLower(k)
		if prefix != "" {
			key = prefix + "." + key
		}
		if nested, ok := v.(map[string]any); ok {
			flatten(nested, key, result)
			continue
		}
		result[key] = v
	}
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		if v == "" {
			return `""`
		}
		const maxStringLen = 50
		if len(v) > maxStringLen {
			return fmt.Sprintf("%q...", v[:maxStringLen-3])
		}
		return fmt.Sprintf("%q", v)
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice:
		return fmt.Sprintf("[%d items]", rv.Len())
	case reflect.Map:
		return fmt.Sprintf("{%d entries}", rv.Len())
	default:
		return fmt.Sprintf("%v", value)
	}
}
