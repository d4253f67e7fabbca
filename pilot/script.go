package pilot

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/dop251/goja"
	"github.com/rs/zerolog"

	"oceandefender/game"
)

const (
	// DefaultScriptInterval is how many ticks a script decision is reused
	DefaultScriptInterval = 3

	// DefaultScriptTimeout bounds a single decide call
	DefaultScriptTimeout = 50 * time.Millisecond
)

// Context is passed to scripts as the argument of decide
type Context struct {
	Tick            int     `json:"tick"`
	Score           int     `json:"score"`
	Lives           int     `json:"lives"`
	SpeedMultiplier float64 `json:"speedMultiplier"`
	ScreenWidth     int     `json:"screenWidth"`
	ScreenHeight    int     `json:"screenHeight"`

	Player  PlayerInfo   `json:"player"`
	Hazards []HazardInfo `json:"hazards"`
	Buffs   []BuffInfo   `json:"buffs"`
}

// PlayerInfo describes the dolphin
type PlayerInfo struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	NoseX      float64 `json:"noseX"`
	NoseY      float64 `json:"noseY"`
	Facing     float64 `json:"facing"`
	CanShoot   bool    `json:"canShoot"`
	Shield     bool    `json:"shield"`
	SpeedBoost bool    `json:"speedBoost"`
}

// HazardInfo describes one piece of falling trash
type HazardInfo struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Speed    float64 `json:"speed"` // effective fall speed per tick
	Distance float64 `json:"distance"`
	Kind     string  `json:"kind"`
}

// BuffInfo describes one falling buff
type BuffInfo struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Distance float64 `json:"distance"`
	Kind     string  `json:"kind"`
}

// BuildContext snapshots the session for a script
func BuildContext(s *game.Session) Context {
	cfg := s.Config()
	p := s.Player()

	ctx := Context{
		Tick:            s.Tick(),
		Score:           s.Score(),
		Lives:           s.Lives(),
		SpeedMultiplier: s.SpeedMultiplier(),
		ScreenWidth:     cfg.ScreenWidth,
		ScreenHeight:    cfg.ScreenHeight,
		Player: PlayerInfo{
			X:          p.X,
			Y:          p.Y,
			NoseX:      p.NoseX(),
			NoseY:      p.NoseY(),
			Facing:     p.Facing,
			CanShoot:   p.CanShoot(),
			Shield:     p.HasShield(),
			SpeedBoost: p.HasSpeedBoost(),
		},
		Hazards: make([]HazardInfo, 0, len(s.Hazards())),
		Buffs:   make([]BuffInfo, 0, len(s.Buffs())),
	}

	for _, h := range s.Hazards() {
		if !h.Active {
			continue
		}
		ctx.Hazards = append(ctx.Hazards, HazardInfo{
			X:        h.X,
			Y:        h.Y,
			Width:    h.Width,
			Height:   h.Height,
			Speed:    h.Speed * s.SpeedMultiplier(),
			Distance: math.Hypot(h.X-p.X, h.Y-p.Y),
			Kind:     h.Kind.String(),
		})
	}
	for _, b := range s.Buffs() {
		if !b.Active {
			continue
		}
		ctx.Buffs = append(ctx.Buffs, BuffInfo{
			X:        b.X,
			Y:        b.Y,
			Distance: math.Hypot(b.X-p.X, b.Y-p.Y),
			Kind:     b.Kind.String(),
		})
	}
	return ctx
}

// ScriptRunner executes JavaScript pilot scripts with goja. Each call gets a
// fresh runtime so scripts cannot keep state between decisions.
type ScriptRunner struct {
	mu      sync.Mutex
	program *goja.Program
	timeout time.Duration
}

// NewScriptRunner compiles a script and checks that it defines decide
func NewScriptRunner(code string, timeout time.Duration) (*ScriptRunner, error) {
	if err := ValidateScript(code); err != nil {
		return nil, err
	}
	program, err := goja.Compile("pilot.js", code, false)
	if err != nil {
		return nil, fmt.Errorf("script parse error: %w", err)
	}
	return &ScriptRunner{program: program, timeout: timeout}, nil
}

// Execute runs decide(ctx) and converts its result into a Decision
func (r *ScriptRunner) Execute(ctx Context) (Decision, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	vm := goja.New()
	if r.timeout > 0 {
		timer := time.AfterFunc(r.timeout, func() {
			vm.Interrupt("decide timed out")
		})
		defer timer.Stop()
	}

	ctxJSON, err := json.Marshal(ctx)
	if err != nil {
		return Decision{}, fmt.Errorf("failed to serialize context: %w", err)
	}
	ctxObj, err := vm.RunString(fmt.Sprintf("(%s)", ctxJSON))
	if err != nil {
		return Decision{}, fmt.Errorf("failed to parse context: %w", err)
	}

	if _, err := vm.RunProgram(r.program); err != nil {
		return Decision{}, fmt.Errorf("script execution failed: %w", err)
	}

	decide, ok := goja.AssertFunction(vm.Get("decide"))
	if !ok {
		return Decision{}, errors.New("script must define a 'decide' function")
	}

	result, err := decide(goja.Undefined(), ctxObj)
	if err != nil {
		return Decision{}, fmt.Errorf("decide function failed: %w", err)
	}
	if result == nil || goja.IsUndefined(result) || goja.IsNull(result) {
		return Decision{}, errors.New("decide returned no decision")
	}

	resultJSON, err := json.Marshal(result.Export())
	if err != nil {
		return Decision{}, fmt.Errorf("failed to serialize result: %w", err)
	}

	var decision Decision
	if err := json.Unmarshal(resultJSON, &decision); err != nil {
		return Decision{}, fmt.Errorf("failed to parse script result: %w (result: %s)", err, resultJSON)
	}
	return decision, nil
}

// ValidateScript checks that code is valid JavaScript defining a decide function
func ValidateScript(code string) error {
	vm := goja.New()

	if _, err := vm.RunString(code); err != nil {
		return fmt.Errorf("script parse error: %w", err)
	}

	decide := vm.Get("decide")
	if decide == nil || goja.IsUndefined(decide) {
		return errors.New("script must define a 'decide' function")
	}
	if _, ok := goja.AssertFunction(decide); !ok {
		return errors.New("'decide' must be a function")
	}
	return nil
}

// ScriptPilot asks a script for a decision every Interval ticks and reuses
// the last one in between. When the script fails, the autopilot decides instead.
type ScriptPilot struct {
	Interval int

	runner   *ScriptRunner
	fallback *Autopilot
	log      zerolog.Logger

	last     Decision
	ticks    int
	failures int
}

// NewScriptPilot compiles code and returns a pilot that runs it
func NewScriptPilot(code string, logger zerolog.Logger) (*ScriptPilot, error) {
	runner, err := NewScriptRunner(code, DefaultScriptTimeout)
	if err != nil {
		return nil, err
	}
	return &ScriptPilot{
		Interval: DefaultScriptInterval,
		runner:   runner,
		fallback: NewAutopilot(),
		log:      logger.With().Str("component", "script_pilot").Logger(),
	}, nil
}

// Decide implements Pilot
func (p *ScriptPilot) Decide(s *game.Session) Decision {
	interval := max(p.Interval, 1)
	run := p.ticks%interval == 0
	p.ticks++
	if !run {
		return p.last
	}

	decision, err := p.runner.Execute(BuildContext(s))
	if err != nil {
		p.failures++
		p.log.Warn().Err(err).Int("failures", p.failures).Msg("script failed, using autopilot")
		decision = p.fallback.Decide(s)
	}
	p.last = decision
	return decision
}

// Failures returns how many script calls have failed
func (p *ScriptPilot) Failures() int {
	return p.failures
}
