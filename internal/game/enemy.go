package game

import "math"

// EnemyState is the high-level behaviour state of one enemy actor.
type EnemyState uint8

const (
	EnemyStand EnemyState = iota // unaware, holding position
	EnemyChase                   // alerted, hunting the player
)

func (es EnemyState) String() string {
	switch es {
	case EnemyStand:
		return "stand"
	case EnemyChase:
		return "chase"
	default:
		return "unknown"
	}
}

// Enemy is one hostile actor. Position is tracked both as a world point (for
// sliding and sight lines) and as the claimed tile (for occupancy); the tile
// only advances when a slide completes.
type Enemy struct {
	ID     int
	X, Z   float64
	TileX  int
	TileZ  int
	Health int
	Dead   bool

	State EnemyState
	Dir8  int // quantised facing, 0 = +X, counter-clockwise in 45° steps

	// Last accepted step direction, for the reversal-avoidance rule.
	// (0,0) means no recorded step.
	LastStepX int
	LastStepZ int

	Cooldown  int // tics until the shoot gate may pass again
	FlashTics int // remaining shoot-animation tics; enemy is busy while > 0

	Moving  bool // mid-slide toward MoveTo
	MoveToX int
	MoveToZ int
}

// NewEnemy spawns a standing enemy at the centre of tile (x, z).
func NewEnemy(id, x, z int) *Enemy {
	return &Enemy{
		ID:     id,
		X:      TileCenter(x),
		Z:      TileCenter(z),
		TileX:  x,
		TileZ:  z,
		Health: 25,
		State:  EnemyStand,
	}
}

// faceToward points the enemy's 8-way facing along (dx, dz).
func (e *Enemy) faceToward(dx, dz float64) {
	if math.Abs(dx) < rayEpsilon && math.Abs(dz) < rayEpsilon {
		return
	}
	oct := int(math.Round(math.Atan2(dz, dx) / (math.Pi / 4)))
	e.Dir8 = ((oct % 8) + 8) % 8
}

// aiTic runs one 70 Hz decision tic for every enemy. The occupancy set is
// rebuilt first so decisions in this tic see every actor's current and
// reserved tiles; the flood-fill area map is computed once and shared by all
// enemies in the tic.
func (s *Sim) aiTic() {
	s.rebuildOccupancy()
	area := BuildAreaMap(s.Grid)
	for _, e := range s.Enemies {
		s.enemyThink(e, area)
	}
}

// rebuildOccupancy rescans every live enemy's tile claims. O(n) in actor
// count and deliberately non-incremental.
func (s *Sim) rebuildOccupancy() {
	s.Occupancy.Reset()
	for _, e := range s.Enemies {
		if e.Dead {
			continue
		}
		s.Occupancy.Claim(e.TileX, e.TileZ)
		// A slide in flight owns its destination regardless of the claim
		// policy; ClaimEarly only governs the claim at decision time.
		if e.Moving {
			s.Occupancy.Claim(e.MoveToX, e.MoveToZ)
		}
	}
}

// enemyThink is the per-enemy decision tic: perception, the shoot gate, then
// chase-step selection. Enemies that are mid-slide or mid-shoot-animation
// skip the whole tic.
func (s *Sim) enemyThink(e *Enemy, area *AreaMap) {
	if e.Dead || e.Moving || e.FlashTics > 0 {
		return
	}
	p := s.Player
	if p == nil {
		return
	}

	if e.Cooldown > 0 {
		e.Cooldown--
	}

	ptx, ptz := TileAt(p.X), TileAt(p.Z)
	sameRegion := area.SameRegion(e.TileX, e.TileZ, ptx, ptz)

	if e.State == EnemyStand {
		if sameRegion && LineOfSight(s.Grid, e.X, e.Z, p.X, p.Z, s.Config.SightRange) {
			e.State = EnemyChase
			s.Events.Emit(Event{Kind: EventEnemyAlert, X: e.X, Z: e.Z, Actor: e.ID})
		}
		return
	}
	if e.State != EnemyChase {
		return
	}

	// Shoot gate.
	dist := chebyshev(e.TileX, e.TileZ, ptx, ptz)
	if sameRegion && dist <= s.Config.ShootRange && e.Cooldown == 0 &&
		LineOfSight(s.Grid, e.X, e.Z, p.X, p.Z, s.Config.SightRange) {
		s.enemyShoot(e, dist)
		return
	}

	// Chase step.
	dx, dz, action := s.selectChaseStep(e, ptx, ptz)
	switch action {
	case stepMove:
		destX, destZ := e.TileX+dx, e.TileZ+dz
		if s.Config.ClaimEarly {
			s.Occupancy.Claim(destX, destZ)
		}
		e.Moving = true
		e.MoveToX = destX
		e.MoveToZ = destZ
		e.LastStepX, e.LastStepZ = dx, dz
		e.faceToward(float64(dx), float64(dz))
	case stepOpenDoor:
		s.UseDoor(e.TileX+dx, e.TileZ+dz)
		e.LastStepX, e.LastStepZ = dx, dz
		e.faceToward(float64(dx), float64(dz))
	default:
		e.LastStepX, e.LastStepZ = 0, 0
	}
}

// enemyShoot resolves one enemy shot: face the player, roll the distance-band
// hit chance, roll damage on a hit, start the flash animation and re-arm the
// cooldown. The RNG is the sim's injected generator, so scenario tests can
// drive exact outcomes.
func (s *Sim) enemyShoot(e *Enemy, dist int) {
	p := s.Player
	e.faceToward(p.X-e.X, p.Z-e.Z)
	e.FlashTics = s.Config.ShootFlashTics
	e.Cooldown = s.Config.ShootCooldownTics
	s.Events.Emit(Event{Kind: EventEnemyShoot, X: e.X, Z: e.Z, Actor: e.ID})

	damage := 0
	if s.rng.Float64() < hitChanceForDistance(dist) {
		span := s.Config.DamageMax - s.Config.DamageMin + 1
		damage = s.Config.DamageMin + s.rng.Intn(span)
	}
	if damage > 0 {
		p.Health -= damage
		if p.Health < 0 {
			p.Health = 0
		}
		s.Events.Emit(Event{Kind: EventEnemyHitPlayer, X: e.X, Z: e.Z, Actor: e.ID, Damage: damage})
	}
}

// stepAction is the outcome of chase-step selection.
type stepAction uint8

const (
	stepNone     stepAction = iota // no acceptable tile; idle in place
	stepMove                       // slide one tile along the step
	stepOpenDoor                   // step hit a closed door; open it, don't move
)

// selectChaseStep picks the enemy's next tile step toward the player tile
// (ptx, ptz). Candidate order is fixed and fully deterministic: the two
// greedy axis steps (larger-delta axis first), then the four cardinals in
// east, south, west, north order. The exact reverse of the last step is
// skipped in the main pass and retried alone as the final fallback, so an
// enemy only doubles back when nothing else is open.
func (s *Sim) selectChaseStep(e *Enemy, ptx, ptz int) (int, int, stepAction) {
	dx := ptx - e.TileX
	dz := ptz - e.TileZ

	var candidates [6][2]int
	n := 0
	primary := [2]int{sign(dx), 0}
	secondary := [2]int{0, sign(dz)}
	if abs(dz) > abs(dx) {
		primary, secondary = secondary, primary
	}
	if primary[0] != 0 || primary[1] != 0 {
		candidates[n] = primary
		n++
	}
	if secondary[0] != 0 || secondary[1] != 0 {
		candidates[n] = secondary
		n++
	}
	for _, c := range cardinalSteps {
		candidates[n] = c
		n++
	}

	revX, revZ := -e.LastStepX, -e.LastStepZ
	haveReverse := revX != 0 || revZ != 0

	for _, c := range candidates[:n] {
		if haveReverse && c[0] == revX && c[1] == revZ {
			continue
		}
		if action := s.tryStep(e, c[0], c[1], ptx, ptz); action != stepNone {
			return c[0], c[1], action
		}
	}
	// Last resort: the exact reverse, under the same acceptance rules.
	if haveReverse {
		if action := s.tryStep(e, revX, revZ, ptx, ptz); action != stepNone {
			return revX, revZ, action
		}
	}
	return 0, 0, stepNone
}

// tryStep checks a single candidate step under the shared acceptance rules:
// never onto the player's own tile, never onto a claimed or statically solid
// tile; empty floor and open doors are walkable, a closed door converts the
// step into an open-door action, anything else (including out of bounds)
// rejects.
func (s *Sim) tryStep(e *Enemy, dx, dz, ptx, ptz int) stepAction {
	destX, destZ := e.TileX+dx, e.TileZ+dz
	if destX == ptx && destZ == ptz {
		return stepNone
	}
	if s.Occupancy.Occupied(destX, destZ) || s.Statics.Solid(destX, destZ) {
		return stepNone
	}
	if !s.Grid.InBounds(destX, destZ) {
		return stepNone
	}
	switch s.Grid.Tile(destX, destZ) {
	case TileEmpty, TileDoorOpen:
		return stepMove
	case TileDoorClosed:
		return stepOpenDoor
	default:
		return stepNone
	}
}

// aiMoveTic is the 70 Hz animation/movement system, run after decisions: it
// advances every mid-slide enemy toward its target tile at a fixed rate and
// counts shoot-flash animations down. Movement is flat — the direction vector
// has no Y component.
func (s *Sim) aiMoveTic() {
	step := s.Config.EnemySpeed * ticDuration
	for _, e := range s.Enemies {
		if e.Dead {
			continue
		}
		if e.FlashTics > 0 {
			e.FlashTics--
		}
		if !e.Moving {
			continue
		}
		tx := TileCenter(e.MoveToX)
		tz := TileCenter(e.MoveToZ)
		dx := tx - e.X
		dz := tz - e.Z
		dist := math.Hypot(dx, dz)
		if dist <= step {
			e.X = tx
			e.Z = tz
			e.TileX = e.MoveToX
			e.TileZ = e.MoveToZ
			e.Moving = false
			continue
		}
		e.X += dx / dist * step
		e.Z += dz / dist * step
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
