package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kastheco/dashshell/app"
	"github.com/kastheco/dashshell/config"
	"github.com/kastheco/dashshell/config/journal"
	sentrypkg "github.com/kastheco/dashshell/internal/sentry"
	"github.com/kastheco/dashshell/internal/setup"
	"github.com/kastheco/dashshell/log"
	"github.com/kastheco/dashshell/sidebar"
	"github.com/kastheco/dashshell/theme"
	"github.com/kastheco/dashshell/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	version     = "0.1.0"
	themeFlag   string
	journalFlag string
	rootCmd     = &cobra.Command{
		Use:   "dash",
		Short: "dash - a responsive dashboard shell with an animated sidebar",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cfg := config.LoadConfig()
			if err := sentrypkg.Init(sentrypkg.Options{
				Version:     version,
				DSN:         cfg.SentryDSN,
				Enabled:     cfg.IsTelemetryEnabled(),
				Environment: "tty",
			}); err != nil {
				// Non-fatal: sentry failure should not prevent startup
				_ = err
			}
			defer sentrypkg.Flush()
			defer sentrypkg.RecoverPanic()

			log.Initialize(cfg.Verbose)
			defer log.Close()

			provider := newThemeProvider(cfg)

			journalPath := cfg.JournalPath
			if journalFlag != "" {
				journalPath = journalFlag
			}
			j, journalErr := journal.Open(journalPath)
			if journalErr != nil {
				log.ErrorLog.Printf("journal disabled: %v", journalErr)
				j = journal.NopLogger()
			}
			defer j.Close()

			if cols, rows, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
				points := ui.Metrics{PointsPerCell: cfg.Layout.PointsPerCell, PointsPerRow: cfg.Layout.PointsPerRow}.Points(cols)
				layout := sidebar.Resolve(points, app.SidebarTokens(cfg.Layout))
				sentrypkg.SetLayout(points, layout.String(), provider.IsDark())
				log.InfoLog.Printf("starting at %dx%d (%s)", cols, rows, layout)
			}

			return app.Run(ctx, cfg, app.Options{
				Theme:      provider,
				Journal:    j,
				Session:    uuid.NewString(),
				JournalErr: journalErr,
			})
		},
	}

	snapshotWidth  int
	snapshotHeight int
	snapshotDrawer bool
	snapshotCmd    = &cobra.Command{
		Use:   "snapshot",
		Short: "Render a single settled frame to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			if err := sentrypkg.Init(sentrypkg.Options{
				Version:     version,
				DSN:         cfg.SentryDSN,
				Enabled:     cfg.IsTelemetryEnabled(),
				Environment: "snapshot",
			}); err != nil {
				_ = err
			}
			defer sentrypkg.Flush()

			log.Initialize(false)
			defer log.Close()

			width, height := snapshotSize(snapshotWidth, snapshotHeight)
			view, err := app.Snapshot(context.Background(), cfg, app.Options{Theme: newThemeProvider(cfg)},
				width, height, snapshotDrawer)
			if err != nil {
				return err
			}
			fmt.Println(view)
			return nil
		},
	}

	journalSession string
	journalKinds   []string
	journalLimit   int
	journalSince   time.Duration
	journalCmd     = &cobra.Command{
		Use:   "journal",
		Short: "Print recorded sidebar interaction events",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()

			cfg := config.LoadConfig()
			path := cfg.JournalPath
			if journalFlag != "" {
				path = journalFlag
			}
			if path == "" {
				return fmt.Errorf("no journal configured: set journal_path in %s or pass --journal", config.ConfigFileName)
			}

			j, err := journal.Open(path)
			if err != nil {
				return err
			}
			defer j.Close()

			events, err := j.Query(journalFilter(journalSession, journalKinds, journalLimit, journalSince, time.Now()))
			if err != nil {
				return fmt.Errorf("failed to query journal: %w", err)
			}
			for _, e := range events {
				fmt.Println(formatEvent(e))
			}
			return nil
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()

			cfg := config.LoadConfig()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Printf("Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)
			fmt.Printf("Log: %s\n", log.FileName)
			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of dash",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("dash version %s\n", version)
		},
	}
)

// newThemeProvider seeds the provider from --theme, falling back to the
// config hint.
func newThemeProvider(cfg *config.Config) *theme.Provider {
	hint := cfg.Theme.System
	if themeFlag != "" {
		hint = themeFlag
	}
	p := theme.NewProvider()
	theme.DetectSystem(p, hint)
	return p
}

// snapshotSize fills unset dimensions from the terminal, then from a
// 120x40 default.
func snapshotSize(width, height int) (int, int) {
	if width > 0 && height > 0 {
		return width, height
	}
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		cols, rows = 120, 40
	}
	if width <= 0 {
		width = cols
	}
	if height <= 0 {
		height = rows
	}
	return width, height
}

func journalFilter(session string, kinds []string, limit int, since time.Duration, now time.Time) journal.QueryFilter {
	f := journal.QueryFilter{Session: session, Limit: limit}
	for _, k := range kinds {
		f.Kinds = append(f.Kinds, journal.EventKind(k))
	}
	if since > 0 {
		f.After = now.Add(-since)
	}
	return f
}

func formatEvent(e journal.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %-18s", e.Timestamp.Local().Format("2006-01-02 15:04:05.000"), e.Kind)
	if e.From != "" || e.To != "" {
		fmt.Fprintf(&b, "  %s -> %s", e.From, e.To)
	}
	if e.Item >= 0 {
		fmt.Fprintf(&b, "  item=%d", e.Item)
	}
	if e.Width > 0 {
		fmt.Fprintf(&b, "  width=%.0fpt", e.Width)
	}
	if e.Message != "" {
		fmt.Fprintf(&b, "  %s", e.Message)
	}
	return b.String()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "",
		"Override the system theme: auto, light or dark")
	rootCmd.PersistentFlags().StringVar(&journalFlag, "journal", "",
		"Journal file to use instead of journal_path from the config")

	snapshotCmd.Flags().IntVar(&snapshotWidth, "width", 0, "Width in columns (defaults to the terminal)")
	snapshotCmd.Flags().IntVar(&snapshotHeight, "height", 0, "Height in rows (defaults to the terminal)")
	snapshotCmd.Flags().BoolVar(&snapshotDrawer, "drawer", false, "Open the mobile drawer before rendering")

	journalCmd.Flags().StringVar(&journalSession, "session", "", "Only events from this session")
	journalCmd.Flags().StringSliceVar(&journalKinds, "kind", nil, "Only events of these kinds (repeatable)")
	journalCmd.Flags().IntVarP(&journalLimit, "limit", "n", 50, "Maximum number of events")
	journalCmd.Flags().DurationVar(&journalSince, "since", 0, "Only events newer than this (e.g. 1h)")

	var cleanFlag bool
	setupCmd := &cobra.Command{
		Use:     "setup",
		Aliases: []string{"init"},
		Short:   "Configure the profile, theme and journal",
		Long: `Run an interactive wizard to:
  1. Set the profile and storage figures shown in the sidebar
  2. Pick the theme source and crash reporting
  3. Write ~/.config/dashshell/config.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return setup.Run(setup.Options{Clean: cleanFlag})
		},
	}
	setupCmd.Flags().BoolVar(&cleanFlag, "clean", false, "Ignore existing config, start with factory defaults")

	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(setupCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
