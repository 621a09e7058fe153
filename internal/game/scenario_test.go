package game

import (
	"math"
	"testing"
)

// dumpLog prints the full SimLog to t.Log so it appears in `go test -v` output.
func dumpLog(t *testing.T, ts *TestSim) {
	t.Helper()
	entries := ts.SimLog.Entries()
	if len(entries) == 0 {
		t.Log("(no log entries)")
		return
	}
	for _, e := range entries {
		t.Log(e.String())
	}
}

// dumpSummary prints the scenario summary block.
func dumpSummary(t *testing.T, ts *TestSim) {
	t.Helper()
	t.Log(ts.SimLog.Summary(ts.Sim))
}

// --- Scenario: Idle Level ---

func TestScenario_IdleLevelStaysQuiet(t *testing.T) {
	t.Log("=== TestScenario_IdleLevelStaysQuiet ===")
	t.Log("--- Setup: built-in level 1, no player input ---")

	ts := NewTestSim(WithLevel(Level1()), WithSeed(42))
	ts.RunTicks(600)
	dumpLog(t, ts)
	dumpSummary(t, ts)

	// Every guard room is behind a closed door, so nobody should notice the
	// player standing still at the start tile.
	if n := ts.SimLog.CountCategory("event", "enemy-alert"); n != 0 {
		t.Errorf("enemy-alert events = %d, want 0 while all doors are closed", n)
	}
	for _, e := range ts.Sim.Enemies {
		if e.State != EnemyStand {
			t.Errorf("E%d state = %s, want stand", e.ID, e.State)
		}
	}
	if ts.Sim.Player.Health != playerMaxHealth {
		t.Errorf("player health = %d, want untouched", ts.Sim.Player.Health)
	}
}

// --- Scenario: Corridor Ambush ---

// The player walks up to a closed door, opens it, and the guard on the far
// side alerts exactly once and engages.
func TestScenario_CorridorAmbush(t *testing.T) {
	t.Log("=== TestScenario_CorridorAmbush ===")
	t.Log("--- Setup: corridor, one door, one guard beyond it ---")

	ts := NewTestSim(
		WithMap(
			"#######",
			"#P.D.E#",
			"#######",
		),
		WithSeed(7),
	)
	s := ts.Sim
	e := s.Enemies[0]

	ts.RunTicks(60)
	if e.State != EnemyStand {
		t.Fatal("guard must stay unaware behind the closed door")
	}

	// Walk to the tile in front of the door.
	ts.SetInput(InputState{Forward: 1})
	if tick := ts.RunUntil(func(s *Sim) bool { return TileAt(s.Player.X) == 2 }, 120); tick < 0 {
		t.Fatal("player never reached the door")
	}
	ts.SetInput(InputState{Use: true})
	ts.RunTicks(1)
	ts.SetInput(InputState{})

	if s.Grid.Tile(3, 1) != TileDoorOpen {
		t.Fatal("door must open on use")
	}

	if tick := ts.RunUntil(func(s *Sim) bool { return e.State == EnemyChase }, 30); tick < 0 {
		t.Fatal("guard must alert once the door opens")
	}
	ts.RunTicks(300)
	dumpLog(t, ts)
	dumpSummary(t, ts)

	if n := ts.SimLog.CountCategory("event", "enemy-alert"); n != 1 {
		t.Errorf("enemy-alert events = %d, want exactly 1", n)
	}
	if n := ts.SimLog.CountCategory("event", "enemy-shoot"); n < 2 {
		t.Errorf("enemy-shoot events = %d, want a sustained engagement", n)
	}
	// Opening the door joined the regions, so the guard fights rather than
	// idling in its own room.
	area := BuildAreaMap(s.Grid)
	if !area.SameRegion(e.TileX, e.TileZ, TileAt(s.Player.X), TileAt(s.Player.Z)) {
		t.Error("guard and player must share a region through the open door")
	}
}

// --- Scenario: Secret Hunt ---

// The player pushes the secret wall in level 1 and walks into the revealed
// passage.
func TestScenario_SecretPassageOpens(t *testing.T) {
	t.Log("=== TestScenario_SecretPassageOpens ===")

	ts := NewTestSim(WithLevel(Level1()), WithSeed(3))
	s := ts.Sim

	if !s.SecretMarked(16, 6) {
		t.Fatal("setup: level 1 must carry its secret marker")
	}
	if !s.TryPushwall(16, 6, 0, 1) {
		t.Fatal("the secret wall must accept a push into the clear passage")
	}
	ts.RunTics(300)

	if s.Pushwall.Active {
		t.Fatal("slide must have completed")
	}
	if s.Grid.Tile(16, 6) != TileEmpty || s.Grid.Tile(16, 7) != TileEmpty {
		t.Error("the vacated tiles must be open floor")
	}
	if s.Grid.Tile(16, 8) != TileWall {
		t.Error("the wall must stand two tiles south of its origin")
	}
	area := BuildAreaMap(s.Grid)
	if !area.SameRegion(16, 5, 16, 7) {
		t.Error("the revealed passage must connect the rooms")
	}
	dumpSummary(t, ts)
}

// --- Invariants ---

// claimedTiles gathers every live enemy's tile plus mid-slide destinations.
func claimedTiles(s *Sim) []TileKey {
	var keys []TileKey
	for _, e := range s.Enemies {
		if e.Dead {
			continue
		}
		keys = append(keys, TileKey{e.TileX, e.TileZ})
		if e.Moving {
			keys = append(keys, TileKey{e.MoveToX, e.MoveToZ})
		}
	}
	return keys
}

// Four guards converge on a surrounded player; at no point may two live
// enemies stand on, or slide toward, the same tile.
func TestInvariant_TileExclusivity(t *testing.T) {
	ts := NewTestSim(
		WithMap(
			"#########",
			"#E.....E#",
			"#...P...#",
			"#E.....E#",
			"#########",
		),
		WithSeed(11),
	)

	for tick := 0; tick < 600; tick++ {
		ts.RunTicks(1)
		seen := map[TileKey]int{}
		for _, k := range claimedTiles(ts.Sim) {
			seen[k]++
			if seen[k] > 1 {
				dumpLog(t, ts)
				t.Fatalf("tick %d: tile (%d,%d) claimed twice", ts.Sim.Tick, k.X, k.Z)
			}
		}
	}
}

// The player's footprint must never end a tick inside a solid tile, no
// matter how it is steered.
func TestInvariant_PlayerNeverInsideWall(t *testing.T) {
	ts := NewTestSim(WithLevel(Level2()), WithSeed(5))
	s := ts.Sim

	headings := []float64{0, math.Pi / 3, math.Pi, -math.Pi / 2, 2.5}
	for i, h := range headings {
		s.Player.Heading = h
		ts.SetInput(InputState{Forward: 1, Strafe: float64(i%3) - 1})
		for tick := 0; tick < 120; tick++ {
			ts.RunTicks(1)
			p := s.Player
			r := s.Config.PlayerRadius
			for _, c := range [4][2]float64{{r, r}, {r, -r}, {-r, r}, {-r, -r}} {
				tx, tz := TileAt(p.X+c[0]), TileAt(p.Z+c[1])
				if s.Grid.Solid(tx, tz) {
					t.Fatalf("heading %v: corner in solid tile (%d,%d) at (%v,%v)",
						h, tx, tz, p.X, p.Z)
				}
			}
		}
	}
}

// Doors that an actor is standing in must stay open across a long run.
func TestInvariant_DoorSafety(t *testing.T) {
	level := ParseLevel([]string{
		"#######",
		"#..D..#",
		"#######",
	})
	level.Plane1[1*7+3] = thingEnemy

	ts := NewTestSim(WithLevel(level))
	s := ts.Sim
	s.UseDoor(3, 1)

	for i := 0; i < 40; i++ {
		ts.RunTics(50)
		if s.Grid.Tile(3, 1) != TileDoorOpen {
			t.Fatalf("door closed on its occupant after %d tics", (i+1)*50)
		}
	}
}
