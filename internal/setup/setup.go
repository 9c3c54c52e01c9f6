package setup

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/kastheco/dashshell/config"
	"github.com/kastheco/dashshell/ui"
	"github.com/kastheco/dashshell/ui/overlay"
)

// Options holds the CLI flags for dash setup.
type Options struct {
	Clean bool // ignore existing config, start with factory defaults
}

// values is the flat, string-typed view of the config the form edits.
type values struct {
	Name        string
	Role        string
	StorageUsed string
	StorageCap  string
	Theme       string
	Telemetry   bool
	Journal     bool
	JournalPath string
}

func fromConfig(cfg *config.Config) values {
	return values{
		Name:        cfg.Profile.Name,
		Role:        cfg.Profile.Role,
		StorageUsed: formatFloat(cfg.Profile.StorageUsedGB),
		StorageCap:  formatFloat(cfg.Profile.StorageCapGB),
		Theme:       themeOrAuto(cfg.Theme.System),
		Telemetry:   cfg.IsTelemetryEnabled(),
		Journal:     cfg.JournalPath != "",
		JournalPath: cfg.JournalPath,
	}
}

// apply writes v into cfg and validates the result.
func (v values) apply(cfg *config.Config) error {
	used, err := parseGB(v.StorageUsed)
	if err != nil {
		return fmt.Errorf("storage used: %w", err)
	}
	capGB, err := parseGB(v.StorageCap)
	if err != nil {
		return fmt.Errorf("storage capacity: %w", err)
	}

	cfg.Profile.Name = strings.TrimSpace(v.Name)
	cfg.Profile.Role = strings.TrimSpace(v.Role)
	cfg.Profile.StorageUsedGB = used
	cfg.Profile.StorageCapGB = capGB
	cfg.Theme.System = v.Theme
	telemetry := v.Telemetry
	cfg.TelemetryEnabled = &telemetry
	cfg.JournalPath = ""
	if v.Journal {
		cfg.JournalPath = strings.TrimSpace(v.JournalPath)
	}
	return cfg.Validate()
}

func parseGB(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if f < 0 {
		return 0, fmt.Errorf("must not be negative")
	}
	return f, nil
}

func validateGB(s string) error {
	_, err := parseGB(s)
	return err
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func themeOrAuto(s string) string {
	if s == "" {
		return "auto"
	}
	return s
}

// defaultJournalPath puts the journal next to config.toml.
func defaultJournalPath() string {
	dir, err := config.GetConfigDir()
	if err != nil {
		return "journal.db"
	}
	return filepath.Join(dir, "journal.db")
}

// Run walks the user through the dashboard settings and writes
// config.toml.
func Run(opts Options) error {
	cfg := config.DefaultConfig()
	if !opts.Clean {
		cfg = config.LoadConfig()
	}

	v := fromConfig(cfg)
	if v.JournalPath == "" {
		v.JournalPath = defaultJournalPath()
	}

	theme := overlay.ThemeDashboard(ui.PaletteFor(cfg.Theme.System == "dark").FormPalette())

	profile := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Profile").
				Description("Shown at the bottom of the sidebar."),
			huh.NewInput().
				Title("Name").
				Value(&v.Name),
			huh.NewInput().
				Title("Role").
				Value(&v.Role),
			huh.NewInput().
				Title("Storage used (GB)").
				Validate(validateGB).
				Value(&v.StorageUsed),
			huh.NewInput().
				Title("Storage capacity (GB)").
				Validate(validateGB).
				Value(&v.StorageCap),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Description("auto follows the terminal background").
				Options(
					huh.NewOption("auto", "auto"),
					huh.NewOption("light", "light"),
					huh.NewOption("dark", "dark"),
				).
				Value(&v.Theme),
			huh.NewConfirm().
				Title("Send crash reports").
				Value(&v.Telemetry),
			huh.NewConfirm().
				Title("Keep an interaction journal").
				Value(&v.Journal),
		),
	).WithTheme(theme)

	if err := profile.Run(); err != nil {
		return err
	}

	if v.Journal {
		journal := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Journal file").
					Value(&v.JournalPath),
			),
		).WithTheme(theme)
		if err := journal.Run(); err != nil {
			return err
		}
	}

	if err := v.apply(cfg); err != nil {
		return err
	}
	if err := config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	dir, _ := config.GetConfigDir()
	fmt.Printf("Wrote %s\n", filepath.Join(dir, config.ConfigFileName))
	return nil
}
