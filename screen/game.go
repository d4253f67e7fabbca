// Package screen is the ebiten frontend: input, rendering, sound and
// profiling around a game.Session.
package screen

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"oceandefender/game"
	"oceandefender/pilot"
)

// speedStep is how much one press of +/- changes the fall speed
const speedStep = 0.2

// fpsDropThreshold triggers a profile capture when profiling is enabled
const fpsDropThreshold = 55.0

// Options configure the frontend
type Options struct {
	Autopilot bool
	Pilot     pilot.Pilot // used when the autopilot is on; nil means the built-in one
	Mute      bool
	Profiler  *Profiler
}

// Game implements ebiten.Game around a session
type Game struct {
	session  *game.Session
	input    InputProvider
	pilot    pilot.Pilot
	renderer *Renderer
	backdrop *Backdrop
	sound    *Sound
	monitor  *FPSMonitor
	log      zerolog.Logger

	autopilot bool
}

// NewGame creates the frontend for a session
func NewGame(s *game.Session, rng game.Rand, opts Options, logger zerolog.Logger) *Game {
	cfg := s.Config()
	p := opts.Pilot
	if p == nil {
		p = pilot.NewAutopilot()
	}

	return &Game{
		session:   s,
		input:     NewKeyboardInput(),
		pilot:     p,
		renderer:  NewRenderer(cfg.ScreenWidth, cfg.ScreenHeight),
		backdrop:  NewBackdrop(float64(cfg.ScreenWidth), float64(cfg.ScreenHeight), rng),
		sound:     NewSound(opts.Mute),
		monitor:   NewFPSMonitor(opts.Profiler, fpsDropThreshold, logger),
		log:       logger.With().Str("component", "screen").Logger(),
		autopilot: opts.Autopilot,
	}
}

// Update handles input, advances the session and plays sounds for its events
func (g *Game) Update() error {
	cmds := g.input.Poll()
	g.handleToggles(cmds)
	g.handleCommands(cmds)

	if g.autopilot {
		pilot.Apply(g.session, g.pilot.Decide(g.session))
	} else {
		g.session.SetMoveIntent(cmds.Left, cmds.Right)
		if cmds.Shoot {
			g.session.Shoot()
		}
	}

	g.session.Update()
	g.backdrop.Update()

	for _, e := range g.session.DrainEvents() {
		g.sound.Play(e)
		if e.Type == game.EventStateChanged {
			g.log.Debug().Stringer("from", e.From).Stringer("to", e.To).Msg("state")
		}
	}

	g.monitor.Sample(ebiten.ActualFPS(), g.entityCount())
	return nil
}

func (g *Game) handleToggles(cmds Commands) {
	if cmds.ToggleAutopilot {
		g.autopilot = !g.autopilot
		g.session.SetMoveIntent(false, false)
		g.log.Info().Bool("enabled", g.autopilot).Msg("autopilot toggled")
	}
	if cmds.ToggleMute {
		g.sound.Muted = !g.sound.Muted
	}
	if cmds.ToggleHitboxes {
		debug := GetDebugState()
		debug.ShowHitboxes = !debug.ShowHitboxes
		debug.ShowFPS = debug.ShowHitboxes
	}
}

func (g *Game) handleCommands(cmds Commands) {
	s := g.session
	switch {
	case cmds.Start:
		s.Start()
	case cmds.Pause:
		s.TogglePause()
	case cmds.Reset:
		s.Reset()
	}

	if cmds.SpeedUp {
		s.AdjustSpeed(speedStep)
	}
	if cmds.SpeedDown {
		s.AdjustSpeed(-speedStep)
	}
}

func (g *Game) entityCount() int {
	s := g.session
	return len(s.Projectiles()) + len(s.Hazards()) + len(s.Buffs()) + len(s.Bursts())
}

// Draw renders the current frame
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.session, g.backdrop, Status{
		Autopilot: g.autopilot,
		Muted:     g.sound.Muted,
		FPS:       g.monitor.FPS(),
	})
}

// Layout returns the fixed play area size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.session.Config()
	return cfg.ScreenWidth, cfg.ScreenHeight
}
