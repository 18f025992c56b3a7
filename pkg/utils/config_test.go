package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "nocturne", config.App.Name)
	assert.False(t, config.App.Debug)
	assert.Equal(t, "logs/", config.App.LogPath)
	assert.Equal(t, int64(1), config.Seed.Value)
	assert.Equal(t, "eclipse", config.Demo.Venue)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("DEBUG", "true")
	t.Setenv("SEED", "99")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, config.App.Debug)
	assert.Equal(t, int64(99), config.Seed.Value)
}
