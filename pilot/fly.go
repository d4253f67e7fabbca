package pilot

import (
	"context"

	"oceandefender/game"
)

// Fly starts the session and lets p play it until game over, maxTicks ticks
// or cancellation, whichever comes first. maxTicks <= 0 means no tick limit.
func Fly(ctx context.Context, s *game.Session, p Pilot, maxTicks int) (game.Stats, error) {
	s.Start()
	for s.State() == game.StatePlaying {
		if maxTicks > 0 && s.Tick() >= maxTicks {
			break
		}
		if s.Tick()%60 == 0 {
			if err := ctx.Err(); err != nil {
				return s.Stats(), err
			}
		}

		Apply(s, p.Decide(s))
		s.Update()
		s.DrainEvents()
	}
	return s.Stats(), nil
}
