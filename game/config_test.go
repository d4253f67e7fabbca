package game

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ocean.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "starting_lives: 5\nhazard_kind_a_weight: 0.5\nburst_on_escape: false\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.StartingLives != 5 {
		t.Fatalf("starting lives = %d, want 5", cfg.StartingLives)
	}
	if cfg.HazardKindAWeight != 0.5 {
		t.Fatalf("kind weight = %f, want 0.5", cfg.HazardKindAWeight)
	}
	if cfg.BurstOnEscape {
		t.Fatalf("burst on escape still set")
	}
	if cfg.ScreenWidth != 800 || cfg.HazardSpawnRate != 70 {
		t.Fatalf("defaults lost: width=%d spawn=%d", cfg.ScreenWidth, cfg.HazardSpawnRate)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad yaml", "screen_width: [1, 2"},
		{"zero lives", "starting_lives: 0"},
		{"weight above one", "hazard_kind_a_weight: 1.5"},
		{"floor above rate", "min_hazard_spawn_rate: 100"},
		{"speed outside bounds", "speed_multiplier: 4"},
		{"narrower than dolphin", "screen_width: 40"},
		{"negative player speed", "player_speed: -1"},
		{"zero boost", "speed_boost_multiplier: 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, tt.body)); err == nil {
				t.Fatalf("LoadConfig accepted %q", tt.body)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("LoadConfig accepted a missing file")
	}
}

func TestPlayerStartPosition(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.PlayerStartX() != 400 || cfg.PlayerStartY() != 500 {
		t.Fatalf("start = (%f, %f), want (400, 500)", cfg.PlayerStartX(), cfg.PlayerStartY())
	}
}

func TestValidateAcceptsDolphinWideScreen(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ScreenWidth = int(playerWidth)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}
