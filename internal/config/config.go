package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"eligible/internal/domain"
	"eligible/internal/eventbus"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the per-directory configuration file name
const FileName = ".eligible.toml"

var (
	// ErrConfigNotFound indicates that no configuration file exists at a path.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidConfig indicates that a configuration failed validation.
	ErrInvalidConfig = errors.New("invalid config")
)

// Config represents the application configuration
type Config struct {
	Version int            `toml:"version"`
	List    ListSettings   `toml:"list"`
	Grid    GridSettings   `toml:"grid"`
	History HistorySetting `toml:"history"`
	UI      UISettings     `toml:"ui"`
}

// ListSettings configures the listbox demo
type ListSettings struct {
	Items           []string `toml:"items"`
	Disabled        []string `toml:"disabled"` // item keys
	Loops           bool     `toml:"loops"`
	Multiselectable bool     `toml:"multiselectable"`
}

// GridSettings configures the grid demo
type GridSettings struct {
	Rows            int     `toml:"rows"`
	Columns         int     `toml:"columns"`
	Disabled        [][]int `toml:"disabled"` // [row, column] pairs
	Loops           bool    `toml:"loops"`
	Multiselectable bool    `toml:"multiselectable"`
}

// HistorySetting configures undo/redo
type HistorySetting struct {
	Capacity int `toml:"capacity"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	StartInGrid bool `toml:"start_in_grid"`
	PageSize    int  `toml:"page_size"`
}

// DisabledCells returns the configured disabled grid cells
func (g GridSettings) DisabledCells() []domain.Coords {
	cells := make([]domain.Coords, 0, len(g.Disabled))
	for _, pair := range g.Disabled {
		cells = append(cells, domain.Coords{Row: pair[0], Column: pair[1]})
	}
	return cells
}

// Validate checks the configuration for values the demo cannot use
func (c *Config) Validate() error {
	if c.Grid.Rows < 0 || c.Grid.Columns < 0 {
		return fmt.Errorf("%w: grid dimensions must not be negative", ErrInvalidConfig)
	}
	for _, pair := range c.Grid.Disabled {
		if len(pair) != 2 {
			return fmt.Errorf("%w: disabled grid cell %v must be [row, column]", ErrInvalidConfig, pair)
		}
	}
	seen := make(map[string]bool, len(c.List.Items))
	for _, item := range c.List.Items {
		if seen[item] {
			return fmt.Errorf("%w: duplicate list item %q", ErrInvalidConfig, item)
		}
		seen[item] = true
	}
	if c.History.Capacity < 0 {
		return fmt.Errorf("%w: history capacity must not be negative", ErrInvalidConfig)
	}
	return nil
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

// NewConfigService creates a config service reading FileName in dir
func NewConfigService(dir string) ConfigService {
	return &configService{
		filePath: filepath.Join(dir, FileName),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(dir string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(dir).(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration, falling back to defaults when the file is missing
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, ErrConfigNotFound) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(domain.ConfigLoadedEvent{Path: cs.filePath})
	}

	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(domain.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Fill in settings older files may not carry
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if cfg.History.Capacity == 0 {
		cfg.History.Capacity = DefaultConfig().History.Capacity
	}
	if cfg.UI.PageSize == 0 {
		cfg.UI.PageSize = DefaultConfig().UI.PageSize
	}

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := config.Validate(); err != nil {
		return err
	}

	// Ensure config directory exists
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

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		List: ListSettings{
			Items: []string{
				"apple", "banana", "cherry", "damson", "elderberry",
				"fig", "grape", "huckleberry", "kiwi", "lime",
			},
			Disabled:        []string{"cherry", "huckleberry"},
			Loops:           true,
			Multiselectable: true,
		},
		Grid: GridSettings{
			Rows:     6,
			Columns:  8,
			Disabled: [][]int{{0, 1}, {2, 2}, {2, 3}, {4, 0}},
			Loops:    false,
		},
		History: HistorySetting{
			Capacity: 100,
		},
		UI: UISettings{
			PageSize: 5,
		},
	}
}
