package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eligible/internal/domain"
	"eligible/internal/eventbus"
)

func TestLoadFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	bus := eventbus.New()
	var loaded []string
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		loaded = append(loaded, e.(domain.ConfigLoadedEvent).Path)
	})

	cfg, err := NewConfigServiceWithBus(dir, bus).Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, []string{filepath.Join(dir, FileName)}, loaded)
}

func TestLoadFromPathMissing(t *testing.T) {
	_, err := NewConfigService(t.TempDir()).LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	svc := NewConfigService(dir)

	cfg := DefaultConfig()
	cfg.List.Items = []string{"one", "two"}
	cfg.List.Disabled = []string{"two"}
	cfg.Grid.Rows = 2
	cfg.Grid.Disabled = [][]int{{1, 1}}
	cfg.UI.StartInGrid = true
	require.NoError(t, svc.Save(cfg))

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
	assert.Equal(t, []domain.Coords{{Row: 1, Column: 1}}, loaded.Grid.DisabledCells())
}

func TestSaveCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", FileName)
	require.NoError(t, NewConfigService("").SaveToPath(DefaultConfig(), path))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestLoadFillsMissingSettings(t *testing.T) {
	dir := t.TempDir()
	content := `
[list]
items = ["a", "b"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644))

	cfg, err := NewConfigService(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, []string{"a", "b"}, cfg.List.Items)
	assert.Empty(t, cfg.List.Disabled, "defaults never leak into a partial file")
	assert.Equal(t, DefaultConfig().History.Capacity, cfg.History.Capacity)
	assert.Equal(t, DefaultConfig().UI.PageSize, cfg.UI.PageSize)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"duplicate items", "[list]\nitems = [\"a\", \"a\"]\n"},
		{"negative rows", "[grid]\nrows = -1\n"},
		{"malformed disabled cell", "[grid]\nrows = 2\ncolumns = 2\ndisabled = [[1]]\n"},
		{"negative capacity", "[history]\ncapacity = -5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(tt.content), 0644))

			_, err := NewConfigService(dir).Load()
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("[list\n"), 0644))

	_, err := NewConfigService(dir).Load()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrConfigNotFound)
}

func TestSaveRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Grid.Columns = -1

	err := NewConfigService(t.TempDir()).Save(cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSavePublishes(t *testing.T) {
	dir := t.TempDir()
	bus := eventbus.New()
	saved := 0
	bus.Subscribe(eventbus.EventConfigSaved, func(eventbus.DomainEvent) { saved++ })

	require.NoError(t, NewConfigServiceWithBus(dir, bus).Save(DefaultConfig()))
	assert.Equal(t, 1, saved)
}
