package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 20, cfg.MazeWidth)
	assert.Equal(t, 20, cfg.MazeHeight)
	assert.Equal(t, 3, cfg.MaxHealth)
	assert.Equal(t, 2.5, cfg.MonsterSpeed)
	assert.Equal(t, 10.0, cfg.VisionRange)
	assert.Equal(t, 3*time.Second, cfg.CooldownDuration)
	assert.Equal(t, 15.0, cfg.ProjectileSpeed)
	assert.NoError(t, cfg.Validate())
}

func TestValidateRejectsTinyMazes(t *testing.T) {
	for _, dims := range [][2]int{{1, 10}, {10, 1}, {0, 0}, {-5, 20}} {
		cfg := Default()
		cfg.MazeWidth = dims[0]
		cfg.MazeHeight = dims[1]
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidDimensions, "dims %v", dims)
	}
}

func TestClampRestoresDefaults(t *testing.T) {
	cfg := Default()
	cfg.PlayerSpeed = -3
	cfg.MaxHealth = 0
	cfg.HysteresisFactor = 0.5
	cfg.ProjectileLifetime = -time.Second
	cfg.PlayerRadius = 0.9

	cfg.Clamp(Default())

	def := Default()
	assert.Equal(t, def.PlayerSpeed, cfg.PlayerSpeed)
	assert.Equal(t, def.MaxHealth, cfg.MaxHealth)
	assert.Equal(t, def.HysteresisFactor, cfg.HysteresisFactor)
	assert.Equal(t, def.ProjectileLifetime, cfg.ProjectileLifetime)
	assert.Equal(t, def.PlayerRadius, cfg.PlayerRadius)
}

func TestClampKeepsSaneValues(t *testing.T) {
	cfg := Default()
	cfg.MonsterSpeed = 4.5
	cfg.VisionRange = 6

	cfg.Clamp(Default())

	assert.Equal(t, 4.5, cfg.MonsterSpeed)
	assert.Equal(t, 6.0, cfg.VisionRange)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CUBEMAZE_WIDTH", "12")
	t.Setenv("CUBEMAZE_MONSTER_SPEED", "4")
	t.Setenv("CUBEMAZE_COOLDOWN_SECONDS", "1.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.MazeWidth)
	assert.Equal(t, 4.0, cfg.MonsterSpeed)
	assert.Equal(t, 1500*time.Millisecond, cfg.CooldownDuration)
}

func TestLoadIgnoresMalformedOverrides(t *testing.T) {
	t.Setenv("CUBEMAZE_WIDTH", "many")
	t.Setenv("CUBEMAZE_PLAYER_SPEED", "fast")

	cfg, err := Load()
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.MazeWidth, cfg.MazeWidth)
	assert.Equal(t, def.PlayerSpeed, cfg.PlayerSpeed)
}

func TestLoadRejectsBadDimensions(t *testing.T) {
	t.Setenv("CUBEMAZE_WIDTH", "1")

	_, err := Load()
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}
