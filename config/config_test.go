package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/skill-orbit/orbit"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, orbit.DefaultConfig(), cfg.Orbit())
	assert.Equal(t, 30*time.Millisecond, cfg.TickInterval)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skill-orbit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
tick_interval: 50ms
step: 0.6
sensitivity: 0.5
mute: true
catalog: /tmp/catalog.yaml
`), 0o644))

	// Env wins over file
	t.Setenv(EnvPrefix+"SENSITIVITY", "0.8")
	t.Setenv(EnvPrefix+"FOCUS_SCALE", "2")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 50*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, 0.6, cfg.Step)
	assert.Equal(t, 0.8, cfg.Sensitivity)
	assert.Equal(t, 2.0, cfg.FocusScale)
	assert.True(t, cfg.Mute)
	assert.Equal(t, "/tmp/catalog.yaml", cfg.CatalogPath)

	// Untouched fields keep defaults
	assert.Equal(t, Default().FrameInterval, cfg.FrameInterval)
}

func TestLoadEnvDuration(t *testing.T) {
	t.Setenv(EnvPrefix+"TICK_INTERVAL", "10ms")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 10*time.Millisecond, cfg.TickInterval)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("step: [1, 2"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)

	t.Setenv(EnvPrefix+"STEP", "fast")
	_, err = Load("")
	assert.ErrorContains(t, err, "parse env")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Volume = 1.5
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)

	cfg = Default()
	cfg.FrameInterval = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)

	cfg = Default()
	cfg.TickInterval = -time.Second
	err := cfg.Validate()
	assert.ErrorIs(t, err, ErrInvalid)
	assert.ErrorIs(t, err, orbit.ErrInvalidConfig)
}
