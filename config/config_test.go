package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kastheco/dashshell/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.Initialize(false)
	defer log.Close()
	os.Exit(m.Run())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 768.0, cfg.Layout.Breakpoint)
	assert.Equal(t, 1024.0, cfg.Layout.ExpandedThreshold)
	assert.Equal(t, 260.0, cfg.Layout.SidebarExpanded)
	assert.Equal(t, 72.0, cfg.Layout.SidebarCompact)
	assert.Equal(t, 72.0, cfg.Layout.HeaderHeight)
	assert.Equal(t, SpringConfig{Tension: 100, Friction: 10}, cfg.Animation.WidthSpring)
	assert.Equal(t, SpringConfig{Tension: 80, Friction: 12}, cfg.Animation.DrawerSpring)
	assert.Equal(t, 200*time.Millisecond, cfg.Animation.FadeIn())
	assert.Equal(t, 150*time.Millisecond, cfg.Animation.FadeOut())
	assert.Equal(t, 3*time.Second, cfg.Animation.CloseTimeout())
	assert.Equal(t, time.Second/60, cfg.Animation.FrameInterval())
	assert.True(t, cfg.IsTelemetryEnabled())
	assert.Empty(t, cfg.JournalPath)
}

func TestLoadConfigFrom(t *testing.T) {
	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ConfigFileName)
		content := `
telemetry_enabled = false
journal_path = "/tmp/dash.db"

[layout]
points_per_cell = 10

[animation.drawer_spring]
tension = 40
friction = 7

[theme]
system = "dark"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := LoadConfigFrom(path)
		require.NoError(t, err)
		assert.Equal(t, 10.0, cfg.Layout.PointsPerCell)
		assert.Equal(t, 768.0, cfg.Layout.Breakpoint)
		assert.Equal(t, SpringConfig{Tension: 40, Friction: 7}, cfg.Animation.DrawerSpring)
		assert.Equal(t, SpringConfig{Tension: 100, Friction: 10}, cfg.Animation.WidthSpring)
		assert.Equal(t, "dark", cfg.Theme.System)
		assert.False(t, cfg.IsTelemetryEnabled())
		assert.Equal(t, "/tmp/dash.db", cfg.JournalPath)
	})

	t.Run("returns error on missing file", func(t *testing.T) {
		_, err := LoadConfigFrom("/nonexistent/config.toml")
		assert.Error(t, err)
	})

	t.Run("returns error on malformed toml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ConfigFileName)
		require.NoError(t, os.WriteFile(path, []byte("[layout\nbreakpoint = "), 0o644))
		_, err := LoadConfigFrom(path)
		assert.Error(t, err)
	})

	t.Run("rejects invalid geometry", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ConfigFileName)
		require.NoError(t, os.WriteFile(path, []byte("[layout]\nexpanded_threshold = 500\n"), 0o644))
		_, err := LoadConfigFrom(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expanded_threshold")
	})
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero breakpoint", func(c *Config) { c.Layout.Breakpoint = 0 }},
		{"compact wider than expanded", func(c *Config) { c.Layout.SidebarCompact = 300 }},
		{"zero points per cell", func(c *Config) { c.Layout.PointsPerCell = 0 }},
		{"negative fade", func(c *Config) { c.Animation.FadeOutMs = -1 }},
		{"unknown theme", func(c *Config) { c.Theme.System = "sepia" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DASHSHELL_CONFIG_DIR", dir)

	t.Run("missing file yields defaults", func(t *testing.T) {
		assert.Equal(t, DefaultConfig(), LoadConfig())
	})

	t.Run("save then load round trips", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Profile.Name = "Ada"
		cfg.Animation.FPS = 30
		require.NoError(t, SaveConfig(cfg))

		loaded := LoadConfig()
		assert.Equal(t, "Ada", loaded.Profile.Name)
		assert.Equal(t, time.Second/30, loaded.Animation.FrameInterval())
	})

	t.Run("broken file yields defaults", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("not = [toml"), 0o644))
		assert.Equal(t, DefaultConfig(), LoadConfig())
	})
}

func TestGetConfigDir(t *testing.T) {
	t.Setenv("DASHSHELL_CONFIG_DIR", "")
	t.Setenv("HOME", "/home/tester")
	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", ".config", "dashshell"), dir)
}
