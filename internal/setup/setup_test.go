package setup

import (
	"testing"

	"github.com/kastheco/dashshell/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	v := fromConfig(cfg)

	assert.Equal(t, "Paulo Morales", v.Name)
	assert.Equal(t, "Admin", v.Role)
	assert.Equal(t, "18.2", v.StorageUsed)
	assert.Equal(t, "20", v.StorageCap)
	assert.Equal(t, "auto", v.Theme)
	assert.True(t, v.Telemetry)
	assert.False(t, v.Journal)
}

func TestApply(t *testing.T) {
	cfg := config.DefaultConfig()
	v := values{
		Name:        "  Ada Lovelace ",
		Role:        "Owner",
		StorageUsed: "3.5",
		StorageCap:  "100",
		Theme:       "dark",
		Telemetry:   false,
		Journal:     true,
		JournalPath: "/tmp/j.db",
	}
	require.NoError(t, v.apply(cfg))

	assert.Equal(t, "Ada Lovelace", cfg.Profile.Name)
	assert.Equal(t, "Owner", cfg.Profile.Role)
	assert.InDelta(t, 3.5, cfg.Profile.StorageUsedGB, 1e-9)
	assert.InDelta(t, 100, cfg.Profile.StorageCapGB, 1e-9)
	assert.Equal(t, "dark", cfg.Theme.System)
	assert.False(t, cfg.IsTelemetryEnabled())
	assert.Equal(t, "/tmp/j.db", cfg.JournalPath)
}

func TestApply_JournalOffClearsPath(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.JournalPath = "/tmp/old.db"
	v := fromConfig(cfg)
	v.Journal = false
	require.NoError(t, v.apply(cfg))
	assert.Empty(t, cfg.JournalPath)
}

func TestApply_RejectsBadNumbers(t *testing.T) {
	cfg := config.DefaultConfig()
	v := fromConfig(cfg)
	v.StorageCap = "lots"
	assert.Error(t, v.apply(cfg))

	v = fromConfig(cfg)
	v.StorageUsed = "-1"
	assert.Error(t, v.apply(cfg))
}

func TestApply_RejectsBadTheme(t *testing.T) {
	cfg := config.DefaultConfig()
	v := fromConfig(cfg)
	v.Theme = "sepia"
	assert.Error(t, v.apply(cfg))
}

func TestValidateGB(t *testing.T) {
	assert.NoError(t, validateGB("0"))
	assert.NoError(t, validateGB(" 12.5 "))
	assert.Error(t, validateGB(""))
	assert.Error(t, validateGB("abc"))
}

func TestDefaultJournalPath(t *testing.T) {
	t.Setenv("DASHSHELL_CONFIG_DIR", "/tmp/dashcfg")
	assert.Equal(t, "/tmp/dashcfg/journal.db", defaultJournalPath())
}
