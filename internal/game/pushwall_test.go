package game

import "testing"

func TestPushwall_FullSlide(t *testing.T) {
	ts := NewTestSim(WithMap(
		"######",
		"#PS..#",
		"######",
	))
	s := ts.Sim
	wallCode := s.Grid.Plane0(2, 1)

	ts.SetInput(InputState{Use: true})
	ts.RunTicks(1)
	ts.SetInput(InputState{})

	if !s.Pushwall.Active {
		t.Fatal("use against a marked wall must start the slide")
	}
	if s.SecretMarked(2, 1) {
		t.Fatal("marker must be consumed on activation")
	}
	if n := ts.SimLog.CountCategory("event", "pushwall-activate"); n != 1 {
		t.Fatalf("pushwall-activate events = %d, want 1", n)
	}
	if !s.Statics.Solid(2, 1) || !s.Statics.Solid(3, 1) {
		t.Fatal("base and next tile must be statically blocked while sliding")
	}

	// The activation tick ran one 70 Hz tic, so the counter sits at 2; 126
	// more reach the first whole-tile boundary at 128.
	ts.RunTics(126)
	if s.Grid.Tile(2, 1) != TileEmpty || s.Grid.Plane0(2, 1) != 0 {
		t.Fatal("departed tile must open at the first boundary")
	}
	if s.Pushwall.BaseX != 3 {
		t.Fatalf("BaseX = %d, want 3 after first boundary", s.Pushwall.BaseX)
	}
	if !s.Statics.Solid(3, 1) || !s.Statics.Solid(4, 1) {
		t.Fatal("moving buffer must track the slider")
	}

	ts.RunTics(128)
	if s.Pushwall.Active {
		t.Fatal("slide must finish at the second boundary")
	}
	if s.Grid.Tile(4, 1) != TileWall {
		t.Fatal("wall must re-solidify two tiles from its origin")
	}
	if got := s.Grid.Plane0(4, 1); got != wallCode {
		t.Fatalf("restored wall code = %d, want %d", got, wallCode)
	}
	if s.Grid.Tile(3, 1) != TileEmpty {
		t.Fatal("intermediate tile must be open after completion")
	}
	if s.Statics.Solid(2, 1) || s.Statics.Solid(3, 1) {
		t.Fatal("static blocking must clear after completion")
	}
}

func TestPushwall_Offset(t *testing.T) {
	pw := Pushwall{Active: true}
	cases := []struct {
		counter int
		want    float64
	}{
		{1, 0},
		{2, 1.0 / 64},
		{64, 0.5},
		{127, 63.0 / 64},
		{128, 0},
		{130, 1.0 / 64},
	}
	for _, tc := range cases {
		pw.Counter = tc.counter
		if got := pw.Offset(); got != tc.want {
			t.Errorf("Offset(counter=%d) = %v, want %v", tc.counter, got, tc.want)
		}
	}
	if (&Pushwall{}).Offset() != 0 {
		t.Error("inactive pushwall must report zero offset")
	}
}

func TestPushwall_BlockedPathRefuses(t *testing.T) {
	ts := NewTestSim(WithMap(
		"#####",
		"#PS##",
		"#####",
	))
	s := ts.Sim

	ts.SetInput(InputState{Use: true})
	ts.RunTicks(1)

	if s.Pushwall.Active {
		t.Fatal("blocked path must refuse activation")
	}
	if !s.SecretMarked(2, 1) {
		t.Fatal("refused push must keep the marker")
	}
	if n := ts.SimLog.CountCategory("event", "pushwall-no-way"); n != 1 {
		t.Fatalf("pushwall-no-way events = %d, want 1", n)
	}
	if s.Grid.Tile(2, 1) != TileWall {
		t.Fatal("refused push must leave the wall in place")
	}
}

func TestPushwall_SingleSliderSystemWide(t *testing.T) {
	ts := NewTestSim(WithMap(
		"#######",
		"#S...S#",
		"#.....#",
		"#.....#",
		"#######",
	))
	s := ts.Sim

	if !s.TryPushwall(1, 1, 0, 1) {
		t.Fatal("first activation must succeed")
	}
	if s.TryPushwall(5, 1, 0, 1) {
		t.Fatal("second slider must be rejected while one is active")
	}
	if n := s.Events.Count(EventPushwallNoWay); n != 1 {
		t.Fatalf("no-way events = %d, want 1", n)
	}
	if !s.SecretMarked(5, 1) {
		t.Fatal("rejected wall must keep its marker")
	}
}

func TestPushwall_ConsumedMarkerIsInert(t *testing.T) {
	ts := NewTestSim(WithMap(
		"######",
		"#PS..#",
		"######",
	))
	s := ts.Sim

	ts.SetInput(InputState{Use: true})
	ts.RunTicks(1)
	ts.SetInput(InputState{})
	ts.RunTics(300) // well past completion

	if s.TryPushwall(4, 1, 1, 0) {
		t.Fatal("a wall without a marker must not push")
	}
	if n := s.Events.Count(EventPushwallNoWay); n != 0 {
		t.Fatal("unmarked wall must fail silently")
	}
}

func TestPushwall_OccupiedPathRefuses(t *testing.T) {
	level := ParseLevel([]string{
		"######",
		"#PS..#",
		"######",
	})
	level.Plane1[1*6+4] = thingEnemy

	ts := NewTestSim(WithLevel(level))
	s := ts.Sim
	s.rebuildOccupancy()

	if s.TryPushwall(2, 1, 1, 0) {
		t.Fatal("an enemy two tiles ahead must refuse the push")
	}
	if !s.SecretMarked(2, 1) {
		t.Fatal("refused push must keep the marker")
	}
}

func TestPushwall_EventsCarryNoActorLabel(t *testing.T) {
	ts := NewTestSim(WithMap(
		"######",
		"#PS..#",
		"######",
	))
	s := ts.Sim

	ts.SetInput(InputState{Use: true})
	ts.RunTicks(1)

	found := false
	for _, ev := range s.Events.Events() {
		if ev.Kind != EventPushwallActivate {
			continue
		}
		found = true
		if ev.Actor != -1 {
			t.Fatalf("pushwall-activate Actor = %d, want -1", ev.Actor)
		}
	}
	if !found {
		t.Fatal("no pushwall-activate event emitted")
	}

	entries := ts.SimLog.Filter("event", "pushwall-activate")
	if len(entries) != 1 {
		t.Fatalf("pushwall-activate log entries = %d, want 1", len(entries))
	}
	if entries[0].Actor != "--" {
		t.Fatalf("pushwall-activate logged for actor %q, want --", entries[0].Actor)
	}
}

func TestPushwall_DecorationBlockedPathRefuses(t *testing.T) {
	ts := NewTestSim(WithMap(
		"######",
		"#PS.o#",
		"######",
	))
	s := ts.Sim

	ts.SetInput(InputState{Use: true})
	ts.RunTicks(1)

	if s.Pushwall.Active {
		t.Fatal("a decoration two tiles ahead must refuse activation")
	}
	if !s.SecretMarked(2, 1) {
		t.Fatal("refused push must keep the marker")
	}
	if n := ts.SimLog.CountCategory("event", "pushwall-no-way"); n != 1 {
		t.Fatalf("pushwall-no-way events = %d, want 1", n)
	}
	if !s.Statics.Solid(4, 1) {
		t.Fatal("decoration solidity must survive the refused push")
	}
}

func TestPushwall_MidSlideDestinationBlocksActivation(t *testing.T) {
	ts := NewTestSim(
		WithMap(
			"######",
			"#PS..#",
			"#..E.#",
			"######",
		),
		WithConfig(func(c *Config) { c.ClaimEarly = false }),
	)
	s := ts.Sim

	// The enemy is sliding into the push path; even without early claims at
	// decision time the rebuild must reserve the slide destination.
	e := s.Enemies[0]
	e.Moving = true
	e.MoveToX, e.MoveToZ = 3, 1
	s.rebuildOccupancy()

	if s.TryPushwall(2, 1, 1, 0) {
		t.Fatal("push into a tile an enemy is sliding into must refuse")
	}
	if !s.SecretMarked(2, 1) {
		t.Fatal("refused push must keep the marker")
	}
	if n := s.Events.Count(EventPushwallNoWay); n != 1 {
		t.Fatalf("pushwall-no-way events = %d, want 1", n)
	}
}
