package game

// Hit pairs the indices of two colliding entities
type Hit struct {
	A, B int
}

// ScanProjectileHazards finds bubble/trash collisions without mutating anything.
// Each bubble destroys at most one hazard and each hazard is taken by at most one
// bubble; the first match in iteration order wins.
func ScanProjectileHazards(projectiles []Projectile, hazards []Hazard) []Hit {
	var hits []Hit
	taken := make([]bool, len(hazards))

	for pi := range projectiles {
		projectile := &projectiles[pi]
		if !projectile.Active {
			continue
		}
		bounds := projectile.Bounds()

		for hi := range hazards {
			hazard := &hazards[hi]
			if !hazard.Active || taken[hi] {
				continue
			}
			if CircleRectOverlap(bounds, hazard.Bounds()) {
				taken[hi] = true
				hits = append(hits, Hit{A: pi, B: hi})
				break
			}
		}
	}
	return hits
}

// ScanPlayerHazards returns the first hazard touching the dolphin
func ScanPlayerHazards(player *Player, hazards []Hazard) (int, bool) {
	if player == nil || !player.Alive {
		return 0, false
	}
	bounds := player.Bounds()
	for i := range hazards {
		if !hazards[i].Active {
			continue
		}
		if CircleRectOverlap(bounds, hazards[i].Bounds()) {
			return i, true
		}
	}
	return 0, false
}

// ScanPlayerBuffs returns every buff touching the dolphin
func ScanPlayerBuffs(player *Player, buffs []Buff) []int {
	if player == nil || !player.Alive {
		return nil
	}
	var collected []int
	bounds := player.Bounds()
	for i := range buffs {
		if !buffs[i].Active {
			continue
		}
		if CirclesOverlap(bounds, buffs[i].Bounds()) {
			collected = append(collected, i)
		}
	}
	return collected
}

// CollisionSystem resolves collisions for a session. Every pass first scans
// read-only for matches, then applies the consequences.
type CollisionSystem struct {
	session *Session
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(session *Session) *CollisionSystem {
	return &CollisionSystem{session: session}
}

// CheckCollisions runs all collision passes for the current tick
func (c *CollisionSystem) CheckCollisions() {
	s := c.session

	c.applyProjectileHits(ScanProjectileHazards(s.projectiles, s.hazards))

	if s.state != StatePlaying {
		return
	}
	if i, ok := ScanPlayerHazards(s.player, s.hazards); ok {
		c.applyPlayerHit(i)
	}

	if s.state != StatePlaying {
		return
	}
	c.applyBuffPickups(ScanPlayerBuffs(s.player, s.buffs))
}

func (c *CollisionSystem) applyProjectileHits(hits []Hit) {
	s := c.session
	for _, hit := range hits {
		projectile := &s.projectiles[hit.A]
		hazard := &s.hazards[hit.B]
		if !projectile.Active || !hazard.Active {
			continue
		}
		projectile.Active = false
		hazard.Active = false

		s.score += s.config.HazardPoints
		s.addBurst(hazard.X, hazard.Y, hazard.Color)
		s.emit(Event{Type: EventHazardDestroyed, X: hazard.X, Y: hazard.Y, Hazard: hazard.Kind})
	}
}

func (c *CollisionSystem) applyPlayerHit(i int) {
	s := c.session
	hazard := &s.hazards[i]
	if !hazard.Active {
		return
	}
	hazard.Active = false
	s.addBurst(hazard.X, hazard.Y, hazard.Color)

	if s.player.ConsumeShield() {
		s.score += s.config.HazardPoints
		s.emit(Event{Type: EventShieldBroken, X: s.player.X, Y: s.player.Y})
		s.emit(Event{Type: EventHazardDestroyed, X: hazard.X, Y: hazard.Y, Hazard: hazard.Kind})
		s.log.Debug().Stringer("hazard", hazard.Kind).Msg("shield absorbed hit")
		return
	}

	s.emit(Event{Type: EventPlayerHit, X: s.player.X, Y: s.player.Y, Hazard: hazard.Kind})
	s.loseLife("collision")
}

func (c *CollisionSystem) applyBuffPickups(indices []int) {
	s := c.session
	for _, i := range indices {
		buff := &s.buffs[i]
		if !buff.Active {
			continue
		}
		buff.Active = false
		s.player.ApplyBuff(buff.Kind)

		s.score += s.config.BuffPoints
		s.addBurst(buff.X, buff.Y, buff.Color)
		s.emit(Event{Type: EventBuffCollected, X: buff.X, Y: buff.Y, Buff: buff.Kind})
	}
}
