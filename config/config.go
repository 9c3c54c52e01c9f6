package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kastheco/dashshell/log"
)

const ConfigFileName = "config.toml"

// GetConfigDir returns the XDG-style configuration directory,
// ~/.config/dashshell. It is not created here.
func GetConfigDir() (string, error) {
	if dir := os.Getenv("DASHSHELL_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "dashshell"), nil
}

// LayoutConfig holds the sidebar geometry in layout points. Terminal cells
// are converted to points with PointsPerCell and PointsPerRow.
type LayoutConfig struct {
	Breakpoint        float64 `toml:"breakpoint" json:"breakpoint"`
	ExpandedThreshold float64 `toml:"expanded_threshold" json:"expanded_threshold"`
	SidebarExpanded   float64 `toml:"sidebar_expanded" json:"sidebar_expanded"`
	SidebarCompact    float64 `toml:"sidebar_compact" json:"sidebar_compact"`
	HeaderHeight      float64 `toml:"header_height" json:"header_height"`
	PointsPerCell     float64 `toml:"points_per_cell" json:"points_per_cell"`
	PointsPerRow      float64 `toml:"points_per_row" json:"points_per_row"`
}

// SpringConfig is a tension/friction pair.
type SpringConfig struct {
	Tension  float64 `toml:"tension" json:"tension"`
	Friction float64 `toml:"friction" json:"friction"`
}

// AnimationConfig holds the curves the sidebar animates with.
type AnimationConfig struct {
	WidthSpring    SpringConfig `toml:"width_spring" json:"width_spring"`
	DrawerSpring   SpringConfig `toml:"drawer_spring" json:"drawer_spring"`
	FadeInMs       int          `toml:"fade_in_ms" json:"fade_in_ms"`
	FadeOutMs      int          `toml:"fade_out_ms" json:"fade_out_ms"`
	CloseTimeoutMs int          `toml:"close_timeout_ms" json:"close_timeout_ms"`
	FPS            int          `toml:"fps" json:"fps"`
}

// FadeIn, FadeOut and CloseTimeout convert the millisecond fields.
func (a AnimationConfig) FadeIn() time.Duration {
	return time.Duration(a.FadeInMs) * time.Millisecond
}

func (a AnimationConfig) FadeOut() time.Duration {
	return time.Duration(a.FadeOutMs) * time.Millisecond
}

func (a AnimationConfig) CloseTimeout() time.Duration {
	return time.Duration(a.CloseTimeoutMs) * time.Millisecond
}

// FrameInterval is the tick period while something animates.
func (a AnimationConfig) FrameInterval() time.Duration {
	fps := a.FPS
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}

// ThemeConfig controls where the system theme signal comes from.
type ThemeConfig struct {
	// System is "auto" (ask the terminal), "dark" or "light".
	System string `toml:"system" json:"system"`
}

// ProfileConfig fills the profile and storage section of the sidebar.
type ProfileConfig struct {
	Name          string  `toml:"name" json:"name"`
	Role          string  `toml:"role" json:"role"`
	StorageUsedGB float64 `toml:"storage_used_gb" json:"storage_used_gb"`
	StorageCapGB  float64 `toml:"storage_cap_gb" json:"storage_cap_gb"`
}

// Config represents the application configuration.
type Config struct {
	Layout    LayoutConfig    `toml:"layout" json:"layout"`
	Animation AnimationConfig `toml:"animation" json:"animation"`
	Theme     ThemeConfig     `toml:"theme" json:"theme"`
	Profile   ProfileConfig   `toml:"profile" json:"profile"`
	// TelemetryEnabled controls whether crash reporting via Sentry is active.
	// Defaults to true when not set; a DSN is still required.
	TelemetryEnabled *bool  `toml:"telemetry_enabled,omitempty" json:"telemetry_enabled,omitempty"`
	SentryDSN        string `toml:"sentry_dsn,omitempty" json:"sentry_dsn,omitempty"`
	// JournalPath is the SQLite file interaction events are journaled to.
	// Empty disables the journal.
	JournalPath string `toml:"journal_path,omitempty" json:"journal_path,omitempty"`
	// Verbose turns on info-level logging.
	Verbose bool `toml:"verbose,omitempty" json:"verbose,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			Breakpoint:        768,
			ExpandedThreshold: 1024,
			SidebarExpanded:   260,
			SidebarCompact:    72,
			HeaderHeight:      72,
			PointsPerCell:     8,
			PointsPerRow:      18,
		},
		Animation: AnimationConfig{
			WidthSpring:    SpringConfig{Tension: 100, Friction: 10},
			DrawerSpring:   SpringConfig{Tension: 80, Friction: 12},
			FadeInMs:       200,
			FadeOutMs:      150,
			CloseTimeoutMs: 3000,
			FPS:            60,
		},
		Theme: ThemeConfig{System: "auto"},
		Profile: ProfileConfig{
			Name:          "Paulo Morales",
			Role:          "Admin",
			StorageUsedGB: 18.2,
			StorageCapGB:  20,
		},
	}
}

// IsTelemetryEnabled returns whether Sentry telemetry is enabled.
// Defaults to true when the field is not set.
func (c *Config) IsTelemetryEnabled() bool {
	if c.TelemetryEnabled == nil {
		return true
	}
	return *c.TelemetryEnabled
}

// Validate checks the invariants the sidebar relies on.
func (c *Config) Validate() error {
	l := c.Layout
	switch {
	case l.Breakpoint <= 0:
		return fmt.Errorf("layout.breakpoint must be positive, got %v", l.Breakpoint)
	case l.ExpandedThreshold < l.Breakpoint:
		return fmt.Errorf("layout.expanded_threshold (%v) must not be below layout.breakpoint (%v)",
			l.ExpandedThreshold, l.Breakpoint)
	case l.SidebarCompact <= 0 || l.SidebarExpanded < l.SidebarCompact:
		return fmt.Errorf("layout.sidebar_compact (%v) must be positive and not exceed layout.sidebar_expanded (%v)",
			l.SidebarCompact, l.SidebarExpanded)
	case l.PointsPerCell <= 0 || l.PointsPerRow <= 0:
		return fmt.Errorf("layout.points_per_cell and layout.points_per_row must be positive")
	}
	a := c.Animation
	if a.FadeInMs < 0 || a.FadeOutMs < 0 || a.CloseTimeoutMs < 0 {
		return fmt.Errorf("animation durations must not be negative")
	}
	switch c.Theme.System {
	case "", "auto", "dark", "light":
	default:
		return fmt.Errorf("theme.system must be auto, dark or light, got %q", c.Theme.System)
	}
	return nil
}

// LoadConfigFrom reads the TOML file at path over the defaults. Keys absent
// from the file keep their default values.
func LoadConfigFrom(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadConfig loads the user's config.toml. A missing file yields the
// defaults; a broken one is logged and also yields the defaults.
func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	if _, err := os.Stat(configPath); err != nil {
		if !os.IsNotExist(err) {
			log.WarningLog.Printf("failed to stat config file: %v", err)
		}
		return DefaultConfig()
	}

	cfg, err := LoadConfigFrom(configPath)
	if err != nil {
		log.ErrorLog.Printf("failed to load config, using defaults: %v", err)
		return DefaultConfig()
	}
	return cfg
}

// Encode renders cfg as TOML.
func Encode(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveConfig writes cfg to the config directory, creating it if needed.
func SaveConfig(cfg *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := Encode(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(configDir, ConfigFileName), data, 0o644)
}
