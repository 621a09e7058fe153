package game

import "testing"

func TestDoor_UseOpensAndAutoCloses(t *testing.T) {
	ts := NewTestSim(WithMap(
		"#####",
		"#PD.#",
		"#####",
	))
	s := ts.Sim

	ts.SetInput(InputState{Use: true})
	ts.RunTicks(1)
	ts.SetInput(InputState{})

	if s.Grid.Tile(2, 1) != TileDoorOpen {
		t.Fatal("use must open the faced door")
	}
	if n := ts.SimLog.CountCategory("event", "door-open"); n != 1 {
		t.Fatalf("door-open events = %d, want 1", n)
	}

	// The opening tick already ran one 70 Hz door tic, so 298 more leave one
	// tic on the timer.
	ts.RunTics(298)
	if s.Grid.Tile(2, 1) != TileDoorOpen {
		t.Fatal("door closed early")
	}
	ts.RunTics(1)
	if s.Grid.Tile(2, 1) != TileDoorClosed {
		t.Fatal("door must auto-close when the timer expires")
	}
	if n := ts.SimLog.CountCategory("event", "door-close"); n != 1 {
		t.Fatalf("door-close events = %d, want 1", n)
	}
	if d := s.doorAt(2, 1); d.WantOpen {
		t.Fatal("WantOpen must clear on close")
	}
}

func TestDoor_RepeatUseIsSilentAndRestartsTimer(t *testing.T) {
	ts := NewTestSim(WithMap(
		"#####",
		"#PD.#",
		"#####",
	))
	s := ts.Sim

	ts.SetInput(InputState{Use: true})
	ts.RunTicks(1)
	ts.RunTics(100)
	ts.RunTicks(1) // second use against the already-open door
	ts.SetInput(InputState{})

	if n := ts.SimLog.CountCategory("event", "door-open"); n != 1 {
		t.Fatalf("door-open events = %d, want 1 (re-use must be silent)", n)
	}
	d := s.doorAt(2, 1)
	if d.OpenTimer < s.Config.DoorOpenTics-2 {
		t.Fatalf("OpenTimer = %d, want restarted near %d", d.OpenTimer, s.Config.DoorOpenTics)
	}
}

func TestDoor_NeverClosesOnOccupant(t *testing.T) {
	// An enemy parked on the door tile keeps the expiring door open on a
	// retry grace, indefinitely.
	level := ParseLevel([]string{
		"#####",
		"#.D.#",
		"#####",
	})
	level.Plane1[1*5+2] = thingEnemy

	ts := NewTestSim(WithLevel(level))
	s := ts.Sim
	if len(s.Enemies) != 1 || s.Enemies[0].TileX != 2 || s.Enemies[0].TileZ != 1 {
		t.Fatal("setup: enemy must stand on the door tile")
	}

	s.UseDoor(2, 1)
	ts.RunTics(1000)
	if s.Grid.Tile(2, 1) != TileDoorOpen {
		t.Fatal("door must not close on an occupant")
	}
	d := s.doorAt(2, 1)
	if d.OpenTimer <= 0 || d.OpenTimer > s.Config.DoorOpenTics {
		t.Fatalf("OpenTimer = %d, want a live retry countdown", d.OpenTimer)
	}

	// Once the doorway clears, the next expiry closes it.
	s.Enemies[0].Dead = true
	ts.RunTics(s.Config.DoorRetryTics + 1)
	if s.Grid.Tile(2, 1) != TileDoorClosed {
		t.Fatal("door must close after the occupant is gone")
	}
}

func TestDoor_MidSlideDestinationCountsAsOccupied(t *testing.T) {
	level := ParseLevel([]string{
		"#####",
		"#.D.#",
		"#####",
	})
	level.Plane1[1*5+1] = thingEnemy

	ts := NewTestSim(WithLevel(level))
	s := ts.Sim
	e := s.Enemies[0]
	e.Moving = true
	e.MoveToX, e.MoveToZ = 2, 1

	if !s.doorwayOccupied(2, 1) {
		t.Fatal("slide destination must count as occupying the doorway")
	}
}

func TestDoor_UseOnNonDoorTileIsNoop(t *testing.T) {
	ts := NewTestSim(WithMap(
		"#####",
		"#P..#",
		"#####",
	))
	ts.Sim.UseDoor(2, 1)
	if n := len(ts.Sim.Events.Events()); n != 0 {
		t.Fatalf("events = %d, want none for a use on plain floor", n)
	}
}

func TestDoor_EventsCarryNoActorLabel(t *testing.T) {
	ts := NewTestSim(WithMap(
		"#####",
		"#PD.#",
		"#####",
	))
	s := ts.Sim

	ts.SetInput(InputState{Use: true})
	ts.RunTicks(1)

	found := false
	for _, ev := range s.Events.Events() {
		if ev.Kind != EventDoorOpen {
			continue
		}
		found = true
		if ev.Actor != -1 {
			t.Fatalf("door-open Actor = %d, want -1", ev.Actor)
		}
	}
	if !found {
		t.Fatal("no door-open event emitted")
	}

	entries := ts.SimLog.Filter("event", "door-open")
	if len(entries) != 1 {
		t.Fatalf("door-open log entries = %d, want 1", len(entries))
	}
	if entries[0].Actor != "--" {
		t.Fatalf("door-open logged for actor %q, want --", entries[0].Actor)
	}
}
