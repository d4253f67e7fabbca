package game

import (
	"image/color"
	"math"
	"slices"

	"github.com/rs/zerolog"
)

// maxPendingEvents caps the event queue when nobody drains it
const maxPendingEvents = 256

// Session owns the complete simulation state of one game: the state machine,
// every entity, spawning, difficulty and scoring. It is not safe for concurrent
// use; the frontend drives it from a single goroutine.
type Session struct {
	config Config
	rng    Rand
	log    zerolog.Logger

	state        State
	openingTimer int
	tick         int

	score           int
	lives           int
	speedMultiplier float64

	hazardSpawnRate  int
	hazardSpawnTimer int
	buffSpawnTimer   int
	difficultyTimer  int
	difficultyLevel  int
	hazardsDestroyed int
	hazardsEscaped   int
	buffsCollected   int
	projectilesFired int

	player      *Player
	projectiles []Projectile
	hazards     []Hazard
	buffs       []Buff
	bursts      []Burst

	events     []Event
	collisions *CollisionSystem
}

// Stats summarises a session for logs and the headless runner
type Stats struct {
	Score            int
	Lives            int
	Ticks            int
	DifficultyLevel  int
	HazardSpawnRate  int
	HazardsDestroyed int
	HazardsEscaped   int
	BuffsCollected   int
	ProjectilesFired int
}

// NewSession creates a session in the opening state
func NewSession(config Config, rng Rand, logger zerolog.Logger) *Session {
	s := &Session{
		config: config,
		rng:    rng,
		log:    logger.With().Str("component", "session").Logger(),
		player: NewPlayer(config),
	}
	s.collisions = NewCollisionSystem(s)
	s.resetWorld()
	s.state = StateOpening
	return s
}

// resetWorld restores score, lives, timers and entities to their starting values
func (s *Session) resetWorld() {
	s.openingTimer = 0
	s.tick = 0
	s.score = 0
	s.lives = s.config.StartingLives
	s.speedMultiplier = s.config.SpeedMultiplier
	s.hazardSpawnRate = s.config.HazardSpawnRate
	s.hazardSpawnTimer = 0
	s.buffSpawnTimer = 0
	s.difficultyTimer = 0
	s.difficultyLevel = 0
	s.hazardsDestroyed = 0
	s.hazardsEscaped = 0
	s.buffsCollected = 0
	s.projectilesFired = 0

	s.player.Reset(s.config.PlayerStartX(), s.config.PlayerStartY())
	s.projectiles = s.projectiles[:0]
	s.hazards = s.hazards[:0]
	s.buffs = s.buffs[:0]
	s.bursts = s.bursts[:0]
}

// Update advances the session by one tick. Only the opening and playing
// states change anything.
func (s *Session) Update() {
	if !s.state.Simulating() {
		return
	}
	switch s.state {
	case StateOpening:
		s.updateOpening()
	case StatePlaying:
		s.updatePlaying()
	}
}

func (s *Session) updateOpening() {
	s.openingTimer++
	if s.openingTimer >= s.config.OpeningDuration {
		s.setState(StateReady)
	}
}

func (s *Session) updatePlaying() {
	s.tick++

	s.player.Update()
	s.updateProjectiles()
	s.updateHazards()
	s.updateBuffs()
	s.updateBursts()

	// An escape can end the game mid-tick
	if s.state == StatePlaying {
		s.updateSpawning()
		s.updateDifficulty()
		s.collisions.CheckCollisions()
	}

	s.prune()
}

func (s *Session) updateProjectiles() {
	for i := range s.projectiles {
		s.projectiles[i].Update()
	}
}

func (s *Session) updateHazards() {
	height := float64(s.config.ScreenHeight)
	for i := range s.hazards {
		h := &s.hazards[i]
		if !h.Active {
			continue
		}
		h.Update(s.speedMultiplier)
		if !h.OffScreen(height) {
			continue
		}

		h.Active = false
		if s.state != StatePlaying {
			continue
		}
		s.hazardsEscaped++
		if s.config.BurstOnEscape {
			s.addBurst(h.X, height, h.Color)
		}
		s.emit(Event{Type: EventHazardEscaped, X: h.X, Y: height, Hazard: h.Kind})
		s.loseLife("escape")
	}
}

func (s *Session) updateBuffs() {
	height := float64(s.config.ScreenHeight)
	for i := range s.buffs {
		b := &s.buffs[i]
		if !b.Active {
			continue
		}
		b.Update(s.speedMultiplier)
		if b.OffScreen(height) {
			b.Active = false
		}
	}
}

func (s *Session) updateBursts() {
	for i := range s.bursts {
		s.bursts[i].Update()
	}
}

func (s *Session) updateSpawning() {
	s.hazardSpawnTimer++
	if s.hazardSpawnTimer >= s.hazardSpawnRate {
		s.hazardSpawnTimer = 0
		s.SpawnHazard(RandomHazardKind(s.rng, s.config.HazardKindAWeight))
	}

	s.buffSpawnTimer++
	if s.buffSpawnTimer >= s.config.BuffSpawnRate {
		s.buffSpawnTimer = 0
		s.SpawnBuff(RandomBuffKind(s.rng))
	}
}

func (s *Session) updateDifficulty() {
	s.difficultyTimer++
	if s.difficultyTimer < s.config.DifficultyInterval {
		return
	}
	s.difficultyTimer = 0
	if s.hazardSpawnRate <= s.config.MinHazardSpawnRate {
		return
	}

	s.hazardSpawnRate = max(s.hazardSpawnRate-s.config.DifficultyStep, s.config.MinHazardSpawnRate)
	s.difficultyLevel++
	s.log.Debug().
		Int("level", s.difficultyLevel).
		Int("spawn_rate", s.hazardSpawnRate).
		Msg("difficulty increased")
}

// prune drops every entity that went inactive this tick
func (s *Session) prune() {
	s.projectiles = slices.DeleteFunc(s.projectiles, func(p Projectile) bool { return !p.Active })
	s.hazards = slices.DeleteFunc(s.hazards, func(h Hazard) bool { return !h.Active })
	s.buffs = slices.DeleteFunc(s.buffs, func(b Buff) bool { return !b.Active })
	s.bursts = slices.DeleteFunc(s.bursts, func(b Burst) bool { return !b.Active() })
}

func (s *Session) loseLife(cause string) {
	if s.lives > 0 {
		s.lives--
	}
	s.log.Debug().Str("cause", cause).Int("lives", s.lives).Msg("life lost")
	if s.lives == 0 {
		s.gameOver()
	}
}

func (s *Session) gameOver() {
	s.player.Kill()
	s.setState(StateGameOver)
	s.log.Info().
		Int("score", s.score).
		Int("ticks", s.tick).
		Int("destroyed", s.hazardsDestroyed).
		Msg("game over")
}

func (s *Session) setState(to State) {
	from := s.state
	if from == to {
		return
	}
	s.state = to
	s.emit(Event{Type: EventStateChanged, From: from, To: to})
	s.log.Debug().Stringer("from", from).Stringer("to", to).Msg("state changed")
}

func (s *Session) addBurst(x, y float64, base color.RGBA) {
	if s.config.BurstParticles == 0 {
		return
	}
	s.bursts = append(s.bursts, NewBurst(s.rng, x, y, base, s.config.BurstParticles))
}

func (s *Session) emit(e Event) {
	switch e.Type {
	case EventHazardDestroyed:
		s.hazardsDestroyed++
	case EventBuffCollected:
		s.buffsCollected++
	case EventShot:
		s.projectilesFired++
	}
	if len(s.events) >= maxPendingEvents {
		s.events = s.events[1:]
	}
	s.events = append(s.events, e)
}

// Start begins play. From the opening it skips the intro, from game over it restarts.
func (s *Session) Start() {
	switch s.state {
	case StateOpening, StateReady:
		s.setState(StatePlaying)
		s.log.Info().Int("lives", s.lives).Msg("game started")
	case StateGameOver:
		s.Restart()
	}
}

// TogglePause switches between playing and paused. Other states ignore it.
func (s *Session) TogglePause() {
	switch s.state {
	case StatePlaying:
		s.setState(StatePaused)
	case StatePaused:
		s.setState(StatePlaying)
	}
}

// Reset returns to the ready state with a fresh world
func (s *Session) Reset() {
	s.resetWorld()
	s.setState(StateReady)
}

// Restart resets the world and immediately starts playing
func (s *Session) Restart() {
	s.Reset()
	s.Start()
}

// AdjustSpeed changes the fall speed multiplier, clamped to the configured bounds
func (s *Session) AdjustSpeed(delta float64) {
	next := math.Round((s.speedMultiplier+delta)*100) / 100
	s.speedMultiplier = clamp(next, s.config.MinSpeedMultiplier, s.config.MaxSpeedMultiplier)
}

// SetMoveIntent records the held directions for the next tick
func (s *Session) SetMoveIntent(left, right bool) {
	s.player.SetMoveIntent(left, right)
}

// Shoot fires a bubble if the game is running and the weapon is ready
func (s *Session) Shoot() bool {
	if s.state != StatePlaying {
		return false
	}
	p, ok := s.player.Shoot()
	if !ok {
		return false
	}
	s.projectiles = append(s.projectiles, p)
	s.emit(Event{Type: EventShot, X: p.X, Y: p.Y})
	return true
}

// SpawnHazard adds a hazard of the given kind at a random position above the screen.
// The returned pointer is valid until the next spawn.
func (s *Session) SpawnHazard(kind HazardKind) *Hazard {
	s.hazards = append(s.hazards, NewHazard(s.rng, float64(s.config.ScreenWidth), kind))
	return &s.hazards[len(s.hazards)-1]
}

// SpawnBuff adds a buff of the given kind at a random position above the screen.
// The returned pointer is valid until the next spawn.
func (s *Session) SpawnBuff(kind BuffKind) *Buff {
	s.buffs = append(s.buffs, NewBuff(s.rng, float64(s.config.ScreenWidth), kind))
	return &s.buffs[len(s.buffs)-1]
}

// DrainEvents returns the events emitted since the last call and clears the queue
func (s *Session) DrainEvents() []Event {
	events := s.events
	s.events = nil
	return events
}

// Events returns the pending events without clearing them
func (s *Session) Events() []Event { return s.events }

// State returns the current state
func (s *Session) State() State {
	return s.state
}

// StateName returns the display name of the current state
func (s *Session) StateName() string {
	return s.state.String()
}

func (s *Session) Score() int {
	return s.score
}

func (s *Session) Lives() int {
	return s.lives
}

func (s *Session) SpeedMultiplier() float64 {
	return s.speedMultiplier
}

// Tick returns the number of ticks played since the last reset
func (s *Session) Tick() int {
	return s.tick
}

// HazardSpawnRate returns the current ticks between hazard spawns
func (s *Session) HazardSpawnRate() int {
	return s.hazardSpawnRate
}

func (s *Session) DifficultyLevel() int {
	return s.difficultyLevel
}

func (s *Session) Config() Config {
	return s.config
}

func (s *Session) Player() *Player {
	return s.player
}

// Projectiles, Hazards, Buffs and Bursts expose the live entity slices.
// Callers outside the package must treat them as read-only.
func (s *Session) Projectiles() []Projectile {
	return s.projectiles
}

func (s *Session) Hazards() []Hazard {
	return s.hazards
}

func (s *Session) Buffs() []Buff {
	return s.buffs
}

func (s *Session) Bursts() []Burst {
	return s.bursts
}

// OpeningProgress returns how far the intro has run, from 0 to 1
func (s *Session) OpeningProgress() float64 {
	if s.state != StateOpening {
		return 1
	}
	if s.config.OpeningDuration <= 0 {
		return 1
	}
	return math.Min(float64(s.openingTimer)/float64(s.config.OpeningDuration), 1)
}

// Stats returns counters for the current session
func (s *Session) Stats() Stats {
	return Stats{
		Score:            s.score,
		Lives:            s.lives,
		Ticks:            s.tick,
		DifficultyLevel:  s.difficultyLevel,
		HazardSpawnRate:  s.hazardSpawnRate,
		HazardsDestroyed: s.hazardsDestroyed,
		HazardsEscaped:   s.hazardsEscaped,
		BuffsCollected:   s.buffsCollected,
		ProjectilesFired: s.projectilesFired,
	}
}
