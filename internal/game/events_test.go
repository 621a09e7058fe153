package game

import "testing"

func TestEventQueue_DrainedEachTick(t *testing.T) {
	ts := NewTestSim(WithMap(
		"#####",
		"#PD.#",
		"#####",
	))
	s := ts.Sim

	ts.SetInput(InputState{Use: true})
	ts.RunTicks(1)
	if n := s.Events.Count(EventDoorOpen); n != 1 {
		t.Fatalf("door-open events pending = %d, want 1", n)
	}

	// The next tick produces nothing new, so a queue that carries events
	// across ticks would still hold the door-open.
	ts.SetInput(InputState{})
	ts.RunTicks(1)
	if n := len(s.Events.Events()); n != 0 {
		t.Fatalf("stale events after next tick = %d, want 0", n)
	}

	// The log keeps the history the queue drops.
	if n := ts.SimLog.CountCategory("event", "door-open"); n != 1 {
		t.Fatalf("door-open log entries = %d, want 1", n)
	}
}
