package pilot

import (
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestValidateScript(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr string
	}{
		{"valid", "function decide(ctx) { return {}; }", ""},
		{"syntax", "function decide(ctx) {", "parse error"},
		{"missing", "var x = 1;", "must define"},
		{"not a function", "var decide = 3;", "must be a function"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScript(tt.code)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("ValidateScript() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("ValidateScript() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestScriptPilotReadsContext(t *testing.T) {
	s := newPlayingSession(t)
	code := `function decide(ctx) {
		return { left: ctx.player.x > 100, right: false, shoot: ctx.player.canShoot && ctx.lives === 3 };
	}`

	p, err := NewScriptPilot(code, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewScriptPilot: %v", err)
	}

	d := p.Decide(s)
	if !d.Left || d.Right || !d.Shoot {
		t.Fatalf("decision = %+v, want left and shoot", d)
	}
	if p.Failures() != 0 {
		t.Fatalf("failures = %d, want 0", p.Failures())
	}
}

func TestScriptPilotReusesDecision(t *testing.T) {
	s := newPlayingSession(t)
	p, err := NewScriptPilot(`function decide(ctx) { return { left: ctx.tick === 0 }; }`, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewScriptPilot: %v", err)
	}

	for i := 0; i < DefaultScriptInterval; i++ {
		if d := p.Decide(s); !d.Left {
			t.Fatalf("decision %d = %+v, want the tick 0 decision", i, d)
		}
		s.Update()
	}
	if d := p.Decide(s); d.Left {
		t.Fatalf("decision after interval = %+v, want a fresh one", d)
	}
}

func TestScriptPilotFallsBackOnError(t *testing.T) {
	s := newPlayingSession(t)
	h := s.SpawnHazard(0)
	h.X, h.Y = s.Player().X+200, 100

	p, err := NewScriptPilot(`function decide(ctx) { throw new Error("boom"); }`, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewScriptPilot: %v", err)
	}

	got := p.Decide(s)
	want := NewAutopilot().Decide(s)
	if got != want {
		t.Fatalf("fallback decision = %+v, want %+v", got, want)
	}
	if p.Failures() != 1 {
		t.Fatalf("failures = %d, want 1", p.Failures())
	}
}

func TestScriptRunnerTimeout(t *testing.T) {
	r, err := NewScriptRunner(`function decide(ctx) { while (true) {} }`, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("NewScriptRunner: %v", err)
	}

	if _, err := r.Execute(Context{}); err == nil {
		t.Fatalf("Execute() returned without error on an endless script")
	}
}

func TestScriptRunnerRejectsEmptyResult(t *testing.T) {
	r, err := NewScriptRunner(`function decide(ctx) {}`, 0)
	if err != nil {
		t.Fatalf("NewScriptRunner: %v", err)
	}
	if _, err := r.Execute(Context{}); err == nil {
		t.Fatalf("Execute() accepted an undefined result")
	}
}

func TestBuildContext(t *testing.T) {
	s := newPlayingSession(t)
	s.SpawnHazard(0)
	s.SpawnBuff(1)

	ctx := BuildContext(s)
	if len(ctx.Hazards) != 1 || len(ctx.Buffs) != 1 {
		t.Fatalf("context has %d hazards and %d buffs, want 1 and 1", len(ctx.Hazards), len(ctx.Buffs))
	}
	if ctx.Hazards[0].Kind != "plastic bottle" || ctx.Buffs[0].Kind != "speed" {
		t.Fatalf("kinds = %q, %q", ctx.Hazards[0].Kind, ctx.Buffs[0].Kind)
	}
	if ctx.Lives != 3 || ctx.ScreenWidth != 800 {
		t.Fatalf("context = %+v", ctx)
	}
}

func TestExampleScriptIsValid(t *testing.T) {
	if err := ValidateScript(ExampleScript); err != nil {
		t.Fatalf("ValidateScript(ExampleScript) = %v", err)
	}

	s := newPlayingSession(t)
	h := s.SpawnHazard(0)
	h.X, h.Y = s.Player().NoseX(), 100

	p, err := NewScriptPilot(ExampleScript, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewScriptPilot: %v", err)
	}
	if d := p.Decide(s); !d.Shoot {
		t.Fatalf("decision = %+v, want shoot", d)
	}
}

func TestLoadScript(t *testing.T) {
	code, err := LoadScript("example")
	if err != nil || code != ExampleScript {
		t.Fatalf("LoadScript(example) = %q, %v", code, err)
	}
	if _, err := LoadScript("does-not-exist.js"); err == nil {
		t.Fatalf("LoadScript accepted a missing file")
	}
}
