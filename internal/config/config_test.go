package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/perfreport/internal/report"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, report.DefaultSuccessMarker, cfg.SuccessMarker)
	assert.Equal(t, report.DefaultAnchorHeading, cfg.AnchorHeading)
	assert.False(t, cfg.Lock)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, ".perfreport/history.db", cfg.History.DBPath)
	assert.Equal(t, 20, cfg.History.Limit)
}

func TestLoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `success_marker: "PASS"
lock: true
history:
  enabled: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "PASS", cfg.SuccessMarker)
	assert.True(t, cfg.Lock)
	assert.False(t, cfg.History.Enabled)
	// Absent keys keep their defaults
	assert.Equal(t, report.DefaultAnchorHeading, cfg.AnchorHeading)
	assert.Equal(t, ".perfreport/history.db", cfg.History.DBPath)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("success_marker: [unclosed"), 0644))

	_, err := LoadConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoadConfig_EmptyMarkerRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`success_marker: ""`), 0644))

	_, err := LoadConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "success_marker")
}

func TestValidate_LimitFallsBackToDefault(t *testing.T) {
	cfg := DefaultConfig()
	cfg.History.Limit = -5

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 20, cfg.History.Limit)
}
