package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds game configuration constants.
// All durations are in ticks, all distances in pixels.
type Config struct {
	// ScreenWidth is the play area width in pixels
	ScreenWidth int `yaml:"screen_width"`

	// ScreenHeight is the play area height in pixels
	ScreenHeight int `yaml:"screen_height"`

	// StartingLives is the number of lives at the start of a session
	StartingLives int `yaml:"starting_lives"`

	// OpeningDuration is how long the intro runs before the game is ready
	OpeningDuration int `yaml:"opening_duration"`

	// HazardSpawnRate is the initial number of ticks between hazard spawns
	HazardSpawnRate int `yaml:"hazard_spawn_rate"`

	// MinHazardSpawnRate is the floor the difficulty ramp never goes below
	MinHazardSpawnRate int `yaml:"min_hazard_spawn_rate"`

	// DifficultyInterval is the number of ticks between difficulty steps
	DifficultyInterval int `yaml:"difficulty_interval"`

	// DifficultyStep is how much each difficulty step lowers HazardSpawnRate
	DifficultyStep int `yaml:"difficulty_step"`

	// BuffSpawnRate is the number of ticks between buff spawns
	BuffSpawnRate int `yaml:"buff_spawn_rate"`

	// HazardKindAWeight is the probability that a spawned hazard is a bottle
	HazardKindAWeight float64 `yaml:"hazard_kind_a_weight"`

	// HazardPoints is awarded for each hazard destroyed by a bubble or a shielded dolphin
	HazardPoints int `yaml:"hazard_points"`

	// BuffPoints is awarded for each collected buff
	BuffPoints int `yaml:"buff_points"`

	// SpeedMultiplier is the initial global fall speed multiplier
	SpeedMultiplier float64 `yaml:"speed_multiplier"`

	// MinSpeedMultiplier and MaxSpeedMultiplier bound AdjustSpeed
	MinSpeedMultiplier float64 `yaml:"min_speed_multiplier"`
	MaxSpeedMultiplier float64 `yaml:"max_speed_multiplier"`

	// BurstParticles is the number of particles in a destruction burst
	BurstParticles int `yaml:"burst_particles"`

	// BurstOnEscape also shows a burst where a hazard leaves the screen
	BurstOnEscape bool `yaml:"burst_on_escape"`

	// Player tuning
	PlayerSpeed          float64 `yaml:"player_speed"`
	PlayerBottomOffset   float64 `yaml:"player_bottom_offset"`
	ShootCooldown        int     `yaml:"shoot_cooldown"`
	ShieldDuration       int     `yaml:"shield_duration"`
	SpeedBoostDuration   int     `yaml:"speed_boost_duration"`
	SpeedBoostMultiplier float64 `yaml:"speed_boost_multiplier"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:          800,
		ScreenHeight:         600,
		StartingLives:        3,
		OpeningDuration:      180, // 3 seconds at 60 TPS
		HazardSpawnRate:      70,
		MinHazardSpawnRate:   35,
		DifficultyInterval:   600,
		DifficultyStep:       5,
		BuffSpawnRate:        600,
		HazardKindAWeight:    0.7,
		HazardPoints:         10,
		BuffPoints:           5,
		SpeedMultiplier:      1.0,
		MinSpeedMultiplier:   0.2,
		MaxSpeedMultiplier:   3.0,
		BurstParticles:       15,
		BurstOnEscape:        true,
		PlayerSpeed:          6,
		PlayerBottomOffset:   100,
		ShootCooldown:        20,
		ShieldDuration:       300,
		SpeedBoostDuration:   300,
		SpeedBoostMultiplier: 1.8,
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig, so a file only has to
// name the values it changes.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration can drive a session
func (c Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	case c.StartingLives <= 0:
		return fmt.Errorf("starting_lives must be positive, got %d", c.StartingLives)
	case c.HazardSpawnRate <= 0 || c.BuffSpawnRate <= 0:
		return fmt.Errorf("spawn rates must be positive")
	case c.MinHazardSpawnRate <= 0 || c.MinHazardSpawnRate > c.HazardSpawnRate:
		return fmt.Errorf("min_hazard_spawn_rate must be in (0, %d], got %d", c.HazardSpawnRate, c.MinHazardSpawnRate)
	case c.DifficultyInterval <= 0 || c.DifficultyStep < 0:
		return fmt.Errorf("difficulty_interval must be positive and difficulty_step non-negative")
	case c.HazardKindAWeight < 0 || c.HazardKindAWeight > 1:
		return fmt.Errorf("hazard_kind_a_weight must be in [0, 1], got %g", c.HazardKindAWeight)
	case c.MinSpeedMultiplier < 0 || c.MinSpeedMultiplier > c.MaxSpeedMultiplier:
		return fmt.Errorf("speed multiplier bounds are inverted: [%g, %g]", c.MinSpeedMultiplier, c.MaxSpeedMultiplier)
	case c.SpeedMultiplier < c.MinSpeedMultiplier || c.SpeedMultiplier > c.MaxSpeedMultiplier:
		return fmt.Errorf("speed_multiplier %g outside [%g, %g]", c.SpeedMultiplier, c.MinSpeedMultiplier, c.MaxSpeedMultiplier)
	case c.ScreenWidth < int(playerWidth):
		return fmt.Errorf("screen_width must be at least the dolphin width %g, got %d", playerWidth, c.ScreenWidth)
	case c.PlayerSpeed < 0:
		return fmt.Errorf("player_speed must not be negative, got %g", c.PlayerSpeed)
	case c.SpeedBoostMultiplier <= 0:
		return fmt.Errorf("speed_boost_multiplier must be positive, got %g", c.SpeedBoostMultiplier)
	case c.ShootCooldown < 0 || c.ShieldDuration <= 0 || c.SpeedBoostDuration <= 0:
		return fmt.Errorf("player timers must be positive")
	case c.OpeningDuration < 0 || c.BurstParticles < 0:
		return fmt.Errorf("opening_duration and burst_particles must not be negative")
	}
	return nil
}

// PlayerStartX returns the horizontal start position of the dolphin
func (c Config) PlayerStartX() float64 {
	return float64(c.ScreenWidth) / 2
}

// PlayerStartY returns the vertical position of the dolphin
func (c Config) PlayerStartY() float64 {
	return float64(c.ScreenHeight) - c.PlayerBottomOffset
}
