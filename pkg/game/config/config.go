// Package config holds the game's tuning parameters as one immutable
// structure, validated once before a session starts. Values come from
// built-in defaults, optionally overridden by environment variables (a
// .env file is honored when present).
package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Configuration errors.
var (
	ErrInvalidDimensions = errors.New("maze width and height must be at least 2")
)

// Config is the configuration surface for one game session. It is read
// once at session start and never mutated afterwards.
type Config struct {
	// Maze
	MazeWidth  int
	MazeHeight int

	// Player
	PlayerSpeed    float64       // cells per second
	PlayerRadius   float64       // collision radius, cells
	MaxHealth      int           // hits the player can take
	Damage         int           // health lost per projectile hit
	InvulnDuration time.Duration // damage immunity after a hit

	// Monster
	MonsterSpeed     float64
	MonsterRadius    float64
	VisionRange      float64       // engage distance, cells
	HysteresisFactor float64       // disengage at VisionRange * factor
	GracePeriod      time.Duration // out-of-range time before disengage
	AttackRange      float64
	WindUpDuration   time.Duration
	CooldownDuration time.Duration

	// Patrol (sine wave around the spawn point)
	PatrolAmplitude float64
	PatrolFrequency float64

	// Projectiles
	ProjectileSpeed    float64
	ProjectileRadius   float64
	ProjectileLifetime time.Duration
}

// Default returns the built-in tuning values.
func Default() Config {
	return Config{
		MazeWidth:  20,
		MazeHeight: 20,

		PlayerSpeed:    8,
		PlayerRadius:   0.3,
		MaxHealth:      3,
		Damage:         1,
		InvulnDuration: time.Second,

		MonsterSpeed:     2.5,
		MonsterRadius:    0.4,
		VisionRange:      10,
		HysteresisFactor: 1.5,
		GracePeriod:      time.Second,
		AttackRange:      10,
		WindUpDuration:   time.Second,
		CooldownDuration: 3 * time.Second,

		PatrolAmplitude: 8,
		PatrolFrequency: 1,

		ProjectileSpeed:    15,
		ProjectileRadius:   0.25,
		ProjectileLifetime: 2 * time.Second,
	}
}

// Load builds a config from defaults plus environment overrides. A .env
// file in the working directory is loaded first if present.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("[CONFIG] no .env file loaded: %v", err)
	}

	cfg := Default()
	def := Default()

	cfg.MazeWidth = envInt("CUBEMAZE_WIDTH", cfg.MazeWidth)
	cfg.MazeHeight = envInt("CUBEMAZE_HEIGHT", cfg.MazeHeight)
	cfg.PlayerSpeed = envFloat("CUBEMAZE_PLAYER_SPEED", cfg.PlayerSpeed)
	cfg.MaxHealth = envInt("CUBEMAZE_MAX_HEALTH", cfg.MaxHealth)
	cfg.Damage = envInt("CUBEMAZE_DAMAGE", cfg.Damage)
	cfg.InvulnDuration = envSeconds("CUBEMAZE_INVULN_SECONDS", cfg.InvulnDuration)
	cfg.MonsterSpeed = envFloat("CUBEMAZE_MONSTER_SPEED", cfg.MonsterSpeed)
	cfg.VisionRange = envFloat("CUBEMAZE_VISION_RANGE", cfg.VisionRange)
	cfg.AttackRange = envFloat("CUBEMAZE_ATTACK_RANGE", cfg.AttackRange)
	cfg.WindUpDuration = envSeconds("CUBEMAZE_WINDUP_SECONDS", cfg.WindUpDuration)
	cfg.CooldownDuration = envSeconds("CUBEMAZE_COOLDOWN_SECONDS", cfg.CooldownDuration)
	cfg.PatrolAmplitude = envFloat("CUBEMAZE_PATROL_AMPLITUDE", cfg.PatrolAmplitude)
	cfg.PatrolFrequency = envFloat("CUBEMAZE_PATROL_FREQUENCY", cfg.PatrolFrequency)
	cfg.ProjectileSpeed = envFloat("CUBEMAZE_PROJECTILE_SPEED", cfg.ProjectileSpeed)
	cfg.ProjectileLifetime = envSeconds("CUBEMAZE_PROJECTILE_LIFETIME", cfg.ProjectileLifetime)

	cfg.Clamp(def)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations that cannot produce a playable session.
// Only maze dimensions are hard errors; every other out-of-range value
// has a safe default and is handled by Clamp.
func (c *Config) Validate() error {
	if c.MazeWidth < 2 || c.MazeHeight < 2 {
		return ErrInvalidDimensions
	}
	return nil
}

// Clamp replaces out-of-range tuning values with the corresponding
// defaults, so a bad override degrades to stock behavior instead of
// producing a broken session.
func (c *Config) Clamp(def Config) {
	if c.PlayerSpeed <= 0 {
		c.PlayerSpeed = def.PlayerSpeed
	}
	if c.PlayerRadius <= 0 || c.PlayerRadius >= 0.5 {
		c.PlayerRadius = def.PlayerRadius
	}
	if c.MaxHealth <= 0 {
		c.MaxHealth = def.MaxHealth
	}
	if c.Damage <= 0 {
		c.Damage = def.Damage
	}
	if c.InvulnDuration < 0 {
		c.InvulnDuration = def.InvulnDuration
	}
	if c.MonsterSpeed <= 0 {
		c.MonsterSpeed = def.MonsterSpeed
	}
	if c.MonsterRadius <= 0 || c.MonsterRadius >= 0.5 {
		c.MonsterRadius = def.MonsterRadius
	}
	if c.VisionRange <= 0 {
		c.VisionRange = def.VisionRange
	}
	if c.HysteresisFactor < 1 {
		c.HysteresisFactor = def.HysteresisFactor
	}
	if c.GracePeriod < 0 {
		c.GracePeriod = def.GracePeriod
	}
	if c.AttackRange <= 0 {
		c.AttackRange = def.AttackRange
	}
	if c.WindUpDuration <= 0 {
		c.WindUpDuration = def.WindUpDuration
	}
	if c.CooldownDuration <= 0 {
		c.CooldownDuration = def.CooldownDuration
	}
	if c.PatrolAmplitude < 0 {
		c.PatrolAmplitude = def.PatrolAmplitude
	}
	if c.PatrolFrequency <= 0 {
		c.PatrolFrequency = def.PatrolFrequency
	}
	if c.ProjectileSpeed <= 0 {
		c.ProjectileSpeed = def.ProjectileSpeed
	}
	if c.ProjectileRadius <= 0 {
		c.ProjectileRadius = def.ProjectileRadius
	}
	if c.ProjectileLifetime <= 0 {
		c.ProjectileLifetime = def.ProjectileLifetime
	}
}

// envInt retrieves an integer environment variable or the fallback.
func envInt(key string, fallback int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[CONFIG] %s must be an integer, keeping %d: %v", key, fallback, err)
		return fallback
	}
	return value
}

// envFloat retrieves a float environment variable or the fallback.
func envFloat(key string, fallback float64) float64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("[CONFIG] %s must be a number, keeping %v: %v", key, fallback, err)
		return fallback
	}
	return value
}

// envSeconds retrieves a duration expressed in seconds, or the fallback.
func envSeconds(key string, fallback time.Duration) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("[CONFIG] %s must be seconds, keeping %v: %v", key, fallback, err)
		return fallback
	}
	return time.Duration(value * float64(time.Second))
}
