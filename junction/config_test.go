package junction_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osmstreets/intersectgeom/junction"
)

func TestDefaultConfig(t *testing.T) {
	cfg := junction.DefaultConfig()
	assert.Equal(t, 30.0, cfg.RampMaxAngleDegrees)
	assert.Equal(t, 0.5, cfg.RampMaxGapMeters)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ramp_max_angle_degrees: 45\n"), 0o644))

	cfg, err := junction.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 45.0, cfg.RampMaxAngleDegrees)
	assert.Equal(t, 0.5, cfg.RampMaxGapMeters)
}

func TestLoadConfigRejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not_a_real_field: 1\n"), 0o644))

	_, err := junction.LoadConfig(path)
	assert.Error(t, err)
}
