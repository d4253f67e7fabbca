package pilot

import (
	"testing"

	"github.com/rs/zerolog"

	"oceandefender/game"
)

func newPlayingSession(t *testing.T) *game.Session {
	t.Helper()
	cfg := game.DefaultConfig()
	cfg.HazardSpawnRate = 1 << 30
	cfg.MinHazardSpawnRate = 1 << 30
	cfg.BuffSpawnRate = 1 << 30

	s := game.NewSession(cfg, game.NewRand(1), zerolog.Nop())
	s.Start()
	return s
}
