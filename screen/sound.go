package screen

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"oceandefender/game"
)

const (
	sampleRate = 44100
	beepVolume = 0.3
)

// Sound plays short synthesized beeps for session events
type Sound struct {
	ctx     *audio.Context
	players map[game.EventType]*audio.Player
	over    *audio.Player
	Muted   bool
}

type beep struct {
	freq     float64
	duration float64 // seconds
}

var eventBeeps = map[game.EventType]beep{
	game.EventShot:            {950, 0.05},
	game.EventHazardDestroyed: {620, 0.08},
	game.EventHazardEscaped:   {220, 0.15},
	game.EventPlayerHit:       {150, 0.2},
	game.EventShieldBroken:    {420, 0.12},
	game.EventBuffCollected:   {1250, 0.1},
}

// NewSound synthesizes every beep up front
func NewSound(muted bool) *Sound {
	ctx := audio.NewContext(sampleRate)
	s := &Sound{
		ctx:     ctx,
		players: make(map[game.EventType]*audio.Player, len(eventBeeps)),
		over:    ctx.NewPlayerFromBytes(synthBeep(110, 0.5)),
		Muted:   muted,
	}
	for t, b := range eventBeeps {
		s.players[t] = ctx.NewPlayerFromBytes(synthBeep(b.freq, b.duration))
	}
	return s
}

// Play plays the beep for an event, if there is one
func (s *Sound) Play(e game.Event) {
	if s == nil || s.Muted {
		return
	}

	p := s.players[e.Type]
	if e.Type == game.EventStateChanged && e.To == game.StateGameOver {
		p = s.over
	}
	if p == nil {
		return
	}
	if err := p.SetPosition(0); err != nil {
		return
	}
	p.Play()
}

// synthBeep renders a sine tone as 16-bit little endian stereo PCM with a
// linear fade out to avoid clicks
func synthBeep(freq, duration float64) []byte {
	n := int(sampleRate * duration)
	pcm := make([]byte, n*4)
	for i := 0; i < n; i++ {
		fade := 1 - float64(i)/float64(n)
		v := math.Sin(2*math.Pi*freq*float64(i)/sampleRate) * beepVolume * fade
		sample := int16(v * math.MaxInt16)

		pcm[4*i] = byte(sample)
		pcm[4*i+1] = byte(sample >> 8)
		pcm[4*i+2] = byte(sample)
		pcm[4*i+3] = byte(sample >> 8)
	}
	return pcm
}
