package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"griddle/internal/domain"
	"griddle/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version  int           `toml:"version"`
	DataFile string        `toml:"data_file"` // file opened when no path is given on the command line
	Table    TableSettings `toml:"table"`
	UI       UISettings    `toml:"ui"`
}

// TableSettings configures the table engine
type TableSettings struct {
	PageSize     int             `toml:"page_size"`
	Sortable     bool            `toml:"sortable"`
	Selectable   bool            `toml:"selectable"`
	Filterable   bool            `toml:"filterable"`
	EmptyMessage string          `toml:"empty_message"`
	Columns      []domain.Column `toml:"columns"` // empty means infer from the data file
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowRowNumbers bool `toml:"show_row_numbers"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	griddleDir := filepath.Join(configDir, "griddle")
	os.MkdirAll(griddleDir, 0755)

	return &configService{
		filePath: filepath.Join(griddleDir, "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from file
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		// Return default config if file doesn't exist
		cfg := DefaultConfig()

		if cs.bus != nil {
			cs.bus.Publish(eventbus.ConfigLoadedEvent{
				Path:     cs.filePath,
				DataFile: cfg.DataFile,
			})
		}

		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:     cs.filePath,
			DataFile: cfg.DataFile,
		})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.normalize()

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// normalize fills in anything a hand-edited file left zero or invalid.
func (c *Config) normalize() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Table.PageSize <= 0 {
		c.Table.PageSize = 10
	}
	if c.Table.EmptyMessage == "" {
		c.Table.EmptyMessage = "No data available"
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Table: TableSettings{
			PageSize:     10,
			Sortable:     true,
			Selectable:   true,
			Filterable:   true,
			EmptyMessage: "No data available",
		},
		UI: UISettings{
			ShowRowNumbers: true,
		},
	}
}
