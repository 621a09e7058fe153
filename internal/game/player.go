package game

import "math"

const (
	playerMaxHealth   = 100
	playerStartAmmo   = 24
	playerEyeHeight   = 0.5
	fireCooldownTicks = 18 // engine ticks between trigger pulls
)

// Player is the controlled actor.
type Player struct {
	X, Z    float64
	Heading float64 // radians in the X/Z plane, 0 = +X
	Health  int
	Ammo    int

	fireCooldown int // engine ticks
}

// NewPlayer places the player at the centre of tile (x, z) facing along
// heading.
func NewPlayer(x, z int, heading float64) *Player {
	return &Player{
		X:       TileCenter(x),
		Z:       TileCenter(z),
		Heading: heading,
		Health:  playerMaxHealth,
		Ammo:    playerStartAmmo,
	}
}

// Forward returns the flattened view basis vector.
func (p *Player) Forward() (float64, float64) {
	return math.Cos(p.Heading), math.Sin(p.Heading)
}

// Right returns the flattened strafe basis vector.
func (p *Player) Right() (float64, float64) {
	return -math.Sin(p.Heading), math.Cos(p.Heading)
}

// FacingTile returns the tile one step ahead of the player along the nearest
// cardinal of the view direction, with that cardinal step. This is the tile
// "use" operates on.
func (p *Player) FacingTile() (x, z, dirX, dirZ int) {
	fx, fz := p.Forward()
	if math.Abs(fx) >= math.Abs(fz) {
		dirX = 1
		if fx < 0 {
			dirX = -1
		}
	} else {
		dirZ = 1
		if fz < 0 {
			dirZ = -1
		}
	}
	return TileAt(p.X) + dirX, TileAt(p.Z) + dirZ, dirX, dirZ
}

// InputState is the per-tick player intent fed into the simulation by the
// host shell (or a scripted scenario).
type InputState struct {
	Forward float64 // -1..1 along the view direction
	Strafe  float64 // -1..1 along the right vector
	Turn    float64 // radians this tick
	Use     bool    // interact with the faced tile
	Fire    bool    // pull the trigger
}

// playerMove resolves the player's desired displacement against the grid and
// statics. The 4-corner footprint is tested per axis, X first then Z, so the
// player slides along walls instead of sticking to them. Out-of-bounds tiles
// are always solid.
func (s *Sim) playerMove(in InputState, dt float64) {
	p := s.Player
	if p == nil {
		return
	}
	p.Heading = normalizeAngle(p.Heading + in.Turn)

	fx, fz := p.Forward()
	rx, rz := p.Right()
	step := s.Config.PlayerSpeed * dt
	dx := (fx*in.Forward + rx*in.Strafe) * step
	dz := (fz*in.Forward + rz*in.Strafe) * step

	if dx != 0 && s.footprintClear(p.X+dx, p.Z) {
		p.X += dx
	}
	if dz != 0 && s.footprintClear(p.X, p.Z+dz) {
		p.Z += dz
	}
}

// footprintClear tests the four corners of the player footprint at (x, z)
// against grid and static solidity.
func (s *Sim) footprintClear(x, z float64) bool {
	r := s.Config.PlayerRadius
	for _, c := range [4][2]float64{{r, r}, {r, -r}, {-r, r}, {-r, -r}} {
		tx := TileAt(x + c[0])
		tz := TileAt(z + c[1])
		if s.Grid.Solid(tx, tz) || s.Statics.Solid(tx, tz) {
			return false
		}
	}
	return true
}

// playerUse handles the interact intent: doors first, then secret walls.
func (s *Sim) playerUse() {
	p := s.Player
	if p == nil {
		return
	}
	x, z, dirX, dirZ := p.FacingTile()
	if !s.Grid.InBounds(x, z) {
		return
	}
	switch s.Grid.Tile(x, z) {
	case TileDoorClosed, TileDoorOpen:
		s.UseDoor(x, z)
	case TileWall:
		s.TryPushwall(x, z, dirX, dirZ)
	}
}

// playerFire resolves one hitscan shot along the view direction: the ray's
// wall distance caps the reach, and the nearest live enemy inside the
// angular window and in front of that wall takes the damage roll.
func (s *Sim) playerFire() {
	p := s.Player
	if p == nil || p.fireCooldown > 0 || p.Ammo <= 0 {
		return
	}
	p.fireCooldown = fireCooldownTicks
	p.Ammo--
	s.Events.Emit(Event{Kind: EventPlayerShoot, X: p.X, Z: p.Z, Actor: -1})

	fx, fz := p.Forward()
	hit := Hitscan(s.Grid, Vec3{X: p.X, Y: playerEyeHeight, Z: p.Z}, Vec3{X: fx, Z: fz}, s.Config.SightRange)
	reach := s.Config.SightRange
	if hit.Kind == HitWall {
		reach = hit.Dist
	}

	var target *Enemy
	bestDist := reach
	for _, e := range s.Enemies {
		if e.Dead {
			continue
		}
		dx := e.X - p.X
		dz := e.Z - p.Z
		dist := math.Hypot(dx, dz)
		if dist < rayEpsilon || dist >= bestDist {
			continue
		}
		// Angular window scales with range: a body half-width of 0.3 tiles.
		off := normalizeAngle(math.Atan2(dz, dx) - p.Heading)
		if math.Abs(off) > math.Atan2(0.3, dist) {
			continue
		}
		target = e
		bestDist = dist
	}
	if target == nil {
		return
	}

	span := s.Config.DamageMax - s.Config.DamageMin + 1
	damage := s.Config.DamageMin + s.rng.Intn(span)
	target.Health -= damage
	if target.Health <= 0 {
		s.killEnemy(target)
	}
}

// killEnemy retires a dead enemy: it stops moving, drops its tile claims on
// the next occupancy rebuild, and alerts the collaborators.
func (s *Sim) killEnemy(e *Enemy) {
	e.Health = 0
	e.Dead = true
	e.Moving = false
	e.FlashTics = 0
	s.Events.Emit(Event{Kind: EventEnemyDeath, X: e.X, Z: e.Z, Actor: e.ID})
}

// normalizeAngle wraps an angle to [-pi, pi].
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
