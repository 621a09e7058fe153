package game

import "fmt"

// TestSim is a headless simulation harness used by tests and the batch
// runner. It mirrors the game shell's update loop but has no Ebiten
// dependency, supports deterministic seeding, and records structured state
// changes into a SimLog.
type TestSim struct {
	Sim    *Sim
	SimLog *SimLog

	rows    []string
	level   *LevelData
	cfg     Config
	seed    int64
	verbose bool

	input InputState
}

// SimOption is a builder function applied to a TestSim during construction.
type SimOption func(*TestSim)

// WithMap sets the level from an ASCII sketch (see ParseLevel).
func WithMap(rows ...string) SimOption {
	return func(ts *TestSim) { ts.rows = rows }
}

// WithLevel sets the level from pre-parsed plane data.
func WithLevel(level *LevelData) SimOption {
	return func(ts *TestSim) { ts.level = level }
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return func(ts *TestSim) { ts.seed = seed }
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SimOption {
	return func(ts *TestSim) { ts.verbose = v }
}

// WithConfig adjusts the simulation config before the level loads.
func WithConfig(mut func(*Config)) SimOption {
	return func(ts *TestSim) { mut(&ts.cfg) }
}

// NewTestSim constructs a headless simulation. Defaults: Level1, seed 1,
// standard config, quiet log.
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		cfg:  DefaultConfig(),
		seed: 1,
	}
	for _, o := range opts {
		o(ts)
	}
	level := ts.level
	if level == nil && ts.rows != nil {
		level = ParseLevel(ts.rows)
	}
	if level == nil {
		level = Level1()
	}
	ts.Sim = NewSim(level, ts.cfg, ts.seed)
	ts.SimLog = NewSimLog(ts.verbose)
	return ts
}

// SetInput installs the input intent applied on every subsequent tick.
func (ts *TestSim) SetInput(in InputState) {
	ts.input = in
}

// RunTicks advances the simulation n engine ticks at the engine rate.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.stepOnce(1.0 / engineTPS)
	}
}

// RunTics advances the simulation n steps of exactly one 70 Hz tic each, so
// tic-accurate door/pushwall/AI assertions line up one to one.
func (ts *TestSim) RunTics(n int) {
	for i := 0; i < n; i++ {
		ts.stepOnce(ticDuration)
	}
}

// RunUntil advances up to maxTicks engine ticks, stopping early when the
// predicate is satisfied. Returns the tick at which it held, or -1.
func (ts *TestSim) RunUntil(predicate func(*Sim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.stepOnce(1.0 / engineTPS)
		if predicate(ts.Sim) {
			return ts.Sim.Tick
		}
	}
	return -1
}

// stepOnce runs one engine tick and logs observable changes.
func (ts *TestSim) stepOnce(dt float64) {
	s := ts.Sim

	prevStates := make(map[int]EnemyState, len(s.Enemies))
	prevDead := make(map[int]bool, len(s.Enemies))
	prevTiles := make(map[int]TileKey, len(s.Enemies))
	for _, e := range s.Enemies {
		prevStates[e.ID] = e.State
		prevDead[e.ID] = e.Dead
		prevTiles[e.ID] = TileKey{e.TileX, e.TileZ}
	}
	prevPushwall := s.Pushwall.Active

	s.Step(ts.input, dt)
	tick := s.Tick

	for _, ev := range s.Events.Events() {
		label := "--"
		if ev.Actor >= 0 {
			label = fmt.Sprintf("E%d", ev.Actor)
		}
		detail := fmt.Sprintf("at (%.1f,%.1f)", ev.X, ev.Z)
		if ev.Kind == EventEnemyHitPlayer {
			detail = fmt.Sprintf("%s damage %d", detail, ev.Damage)
		}
		ts.SimLog.Add(tick, label, "event", ev.Kind.String(), detail, float64(ev.Damage))
	}

	for _, e := range s.Enemies {
		label := fmt.Sprintf("E%d", e.ID)
		if e.State != prevStates[e.ID] {
			ts.SimLog.Add(tick, label, "state", "change",
				fmt.Sprintf("%s → %s", prevStates[e.ID], e.State), 0)
		}
		if e.Dead && !prevDead[e.ID] {
			ts.SimLog.Add(tick, label, "state", "death", "killed", 0)
		}
		if now := (TileKey{e.TileX, e.TileZ}); now != prevTiles[e.ID] {
			ts.SimLog.Add(tick, label, "move", "arrive",
				fmt.Sprintf("(%d,%d) → (%d,%d)", prevTiles[e.ID].X, prevTiles[e.ID].Z, now.X, now.Z), 0)
		}
		ts.SimLog.AddVerbose(tick, label, "move", "position",
			fmt.Sprintf("(%.2f,%.2f)", e.X, e.Z), 0)
	}

	if s.Pushwall.Active != prevPushwall {
		if s.Pushwall.Active {
			ts.SimLog.Add(tick, "--", "pushwall", "start",
				fmt.Sprintf("base (%d,%d) dir (%d,%d)", s.Pushwall.BaseX, s.Pushwall.BaseZ,
					s.Pushwall.DirX, s.Pushwall.DirZ), 0)
		} else {
			ts.SimLog.Add(tick, "--", "pushwall", "stop", "inactive", 0)
		}
	}

	if p := s.Player; p != nil {
		ts.SimLog.AddVerbose(tick, "P", "move", "position",
			fmt.Sprintf("(%.2f,%.2f)", p.X, p.Z), 0)
	}
}
