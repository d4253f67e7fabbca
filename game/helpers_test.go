package game

import (
	"testing"

	"github.com/rs/zerolog"
)

// sequenceRand replays a fixed list of values, cycling when it runs out
type sequenceRand struct {
	values []float64
	next   int
}

func (r *sequenceRand) Float64() float64 {
	v := r.values[r.next%len(r.values)]
	r.next++
	return v
}

// quietConfig never spawns on its own so tests control every entity
func quietConfig() Config {
	cfg := DefaultConfig()
	cfg.HazardSpawnRate = 1 << 30
	cfg.MinHazardSpawnRate = 1 << 30
	cfg.BuffSpawnRate = 1 << 30
	cfg.OpeningDuration = 3
	return cfg
}

func newTestSession(t *testing.T, cfg Config) *Session {
	t.Helper()
	return NewSession(cfg, NewRand(1), zerolog.Nop())
}

func newPlayingSession(t *testing.T, cfg Config) *Session {
	t.Helper()
	s := newTestSession(t, cfg)
	s.Start()
	if s.State() != StatePlaying {
		t.Fatalf("state after Start = %v, want %v", s.State(), StatePlaying)
	}
	return s
}

// placeHazard spawns a hazard and moves it to x, y
func placeHazard(s *Session, kind HazardKind, x, y float64) {
	h := s.SpawnHazard(kind)
	h.X = x
	h.Y = y
}
