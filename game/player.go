package game

const (
	playerWidth          = 60.0
	playerHeight         = 30.0
	playerRadius         = 20.0
	playerNoseOffsetX    = 20.0
	playerNoseOffsetY    = -15.0
	playerTailSwingSpeed = 0.3
	playerBodyWaveSpeed  = 0.15
)

// BuffTimer tracks one temporary player enhancement
type BuffTimer struct {
	Active   bool
	Elapsed  int
	Duration int
}

// Start (re)activates the buff from zero. Collecting the same buff again
// refreshes the duration rather than stacking it.
func (b *BuffTimer) Start() {
	b.Active = true
	b.Elapsed = 0
}

// Stop deactivates the buff and clears its timer
func (b *BuffTimer) Stop() {
	b.Active = false
	b.Elapsed = 0
}

// Tick advances an active buff and stops it when it reaches its duration
func (b *BuffTimer) Tick() {
	if !b.Active {
		return
	}
	b.Elapsed++
	if b.Elapsed >= b.Duration {
		b.Stop()
	}
}

// Remaining returns the ticks left on an active buff
func (b BuffTimer) Remaining() int {
	if !b.Active {
		return 0
	}
	return b.Duration - b.Elapsed
}

// Player is the dolphin controlled by the user
type Player struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	Facing        float64 // 1 = right, -1 = left
	Alive         bool

	MoveLeft  bool
	MoveRight bool

	Shield     BuffTimer
	SpeedBoost BuffTimer

	// Ticks until the next bubble can be fired
	Cooldown    int
	CooldownMax int

	// Animation phases for the renderer
	TailSwing float64
	BodyWave  float64

	screenWidth     float64
	boostMultiplier float64
}

// NewPlayer creates a dolphin at the configured start position
func NewPlayer(config Config) *Player {
	p := &Player{
		Width:           playerWidth,
		Height:          playerHeight,
		Speed:           config.PlayerSpeed,
		CooldownMax:     config.ShootCooldown,
		Shield:          BuffTimer{Duration: config.ShieldDuration},
		SpeedBoost:      BuffTimer{Duration: config.SpeedBoostDuration},
		screenWidth:     float64(config.ScreenWidth),
		boostMultiplier: config.SpeedBoostMultiplier,
	}
	p.Reset(config.PlayerStartX(), config.PlayerStartY())
	return p
}

// Reset puts the dolphin back at a position with no buffs and a ready weapon
func (p *Player) Reset(x, y float64) {
	p.X = x
	p.Y = y
	p.Facing = 1
	p.Alive = true
	p.MoveLeft = false
	p.MoveRight = false
	p.Shield.Stop()
	p.SpeedBoost.Stop()
	p.Cooldown = 0
	p.TailSwing = 0
	p.BodyWave = 0
}

// SetMoveIntent records which directions are held. Movement happens in Update.
func (p *Player) SetMoveIntent(left, right bool) {
	p.MoveLeft = left
	p.MoveRight = right
}

// EffectiveSpeed returns the current horizontal speed including the speed boost
func (p *Player) EffectiveSpeed() float64 {
	if p.SpeedBoost.Active {
		return p.Speed * p.boostMultiplier
	}
	return p.Speed
}

// Update applies movement, animation and timers for one tick
func (p *Player) Update() {
	speed := p.EffectiveSpeed()
	if p.MoveLeft {
		p.X -= speed
		p.Facing = -1
	}
	if p.MoveRight {
		p.X += speed
		p.Facing = 1
	}
	halfWidth := p.Width / 2
	p.X = clamp(p.X, halfWidth, p.screenWidth-halfWidth)

	p.TailSwing += playerTailSwingSpeed
	p.BodyWave += playerBodyWaveSpeed

	p.Shield.Tick()
	p.SpeedBoost.Tick()

	if p.Cooldown > 0 {
		p.Cooldown--
	}
}

// CanShoot reports whether a bubble can be fired this tick
func (p *Player) CanShoot() bool {
	return p.Alive && p.Cooldown == 0
}

// Shoot fires a bubble from the dolphin's nose if the weapon is ready
func (p *Player) Shoot() (Projectile, bool) {
	if !p.CanShoot() {
		return Projectile{}, false
	}
	p.Cooldown = p.CooldownMax
	return NewProjectile(p.NoseX(), p.NoseY()), true
}

// NoseX returns where a bubble fired now would start horizontally
func (p *Player) NoseX() float64 {
	return p.X + p.Facing*playerNoseOffsetX
}

// NoseY returns where a bubble fired now would start vertically
func (p *Player) NoseY() float64 {
	return p.Y + playerNoseOffsetY
}

// ApplyShield activates or refreshes the shield
func (p *Player) ApplyShield() {
	p.Shield.Start()
}

// ApplySpeedBoost activates or refreshes the speed boost
func (p *Player) ApplySpeedBoost() {
	p.SpeedBoost.Start()
}

// ApplyBuff applies the effect of a collected buff
func (p *Player) ApplyBuff(kind BuffKind) {
	switch kind {
	case BuffKindShield:
		p.ApplyShield()
	case BuffKindSpeed:
		p.ApplySpeedBoost()
	}
}

// HasShield reports whether the shield is up
func (p *Player) HasShield() bool {
	return p.Shield.Active
}

// HasSpeedBoost reports whether the speed boost is active
func (p *Player) HasSpeedBoost() bool {
	return p.SpeedBoost.Active
}

// ConsumeShield drops an active shield and reports whether one absorbed the hit
func (p *Player) ConsumeShield() bool {
	if !p.Shield.Active {
		return false
	}
	p.Shield.Stop()
	return true
}

// Kill marks the dolphin as dead
func (p *Player) Kill() {
	p.Alive = false
}

// Bounds returns the collision circle
func (p *Player) Bounds() Circle {
	return Circle{X: p.X, Y: p.Y, Radius: playerRadius}
}
