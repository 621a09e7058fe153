package game

import "math/rand"

// Sim is the whole simulation state for one level, passed by reference into
// every system. All mutation happens single-threaded inside Step in a fixed
// order; there is no locking because there is no concurrency. The order is
// load-bearing: occupancy is rebuilt before AI decisions consume it, AI
// decisions run before AI movement, and the door tic runs after movement so
// the doorway-occupied check sees settled positions.
type Sim struct {
	Config Config

	Grid      *Grid
	Statics   *Blockmap
	Occupancy *Occupancy
	Doors     []*Door
	Pushwall  Pushwall
	Enemies   []*Enemy
	Player    *Player
	Events    EventQueue

	doorIndex     map[TileKey]*Door
	secretMarkers map[TileKey]bool

	rng *rand.Rand

	aiAccum   ticAccum
	doorAccum ticAccum
	pwAccum   ticAccum

	Tick int // engine ticks stepped since level start
}

// NewSim builds a simulation from pre-parsed level data. Hit and damage rolls
// come from the seeded generator and nothing else, so identical seeds and
// inputs replay identically.
func NewSim(level *LevelData, cfg Config, seed int64) *Sim {
	s := &Sim{
		Config:        cfg,
		Occupancy:     NewOccupancy(),
		doorIndex:     make(map[TileKey]*Door),
		secretMarkers: make(map[TileKey]bool),
		rng:           rand.New(rand.NewSource(seed)),
	}
	s.loadLevel(level)
	return s
}

// Step advances the simulation by one engine tick of dt seconds: player
// intent first, then the 70 Hz subsystems, each draining its own tic
// accumulator. Events emitted during the step stay readable until the next
// Step call resets the queue.
func (s *Sim) Step(in InputState, dt float64) {
	s.Events.Reset()
	s.Tick++

	if p := s.Player; p != nil {
		if p.fireCooldown > 0 {
			p.fireCooldown--
		}
		s.playerMove(in, dt)
		if in.Use {
			s.playerUse()
		}
		if in.Fire {
			s.playerFire()
		}
	}

	for n := s.aiAccum.steps(dt); n > 0; n-- {
		s.aiTic()
		s.aiMoveTic()
	}
	for n := s.doorAccum.steps(dt); n > 0; n-- {
		s.doorTic()
	}
	for n := s.pwAccum.steps(dt); n > 0; n-- {
		s.pushwallTic()
	}
}

// EnemyByID returns the enemy with the given id, or nil.
func (s *Sim) EnemyByID(id int) *Enemy {
	for _, e := range s.Enemies {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// LiveEnemies counts enemies still standing.
func (s *Sim) LiveEnemies() int {
	n := 0
	for _, e := range s.Enemies {
		if !e.Dead {
			n++
		}
	}
	return n
}

// SecretMarked reports whether (x, z) still holds an unconsumed secret-wall
// marker.
func (s *Sim) SecretMarked(x, z int) bool {
	return s.secretMarkers[TileKey{x, z}]
}
