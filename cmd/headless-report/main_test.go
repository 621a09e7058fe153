package main

import (
	"testing"

	"github.com/tkalvik/ironspear/internal/game"
)

func TestTurretInput_FiresAtVisibleEnemy(t *testing.T) {
	ts := game.NewTestSim(game.WithMap(
		"#####",
		"#P.E#",
		"#####",
	))

	in := turretInput(ts.Sim)
	if !in.Fire {
		t.Fatal("aligned visible enemy must trigger fire")
	}
	if in.Turn != 0 {
		t.Fatalf("Turn = %v, want 0 for a dead-ahead target", in.Turn)
	}
}

func TestTurretInput_IdlesWithoutTargets(t *testing.T) {
	ts := game.NewTestSim(game.WithMap(
		"#####",
		"#P#E#",
		"#####",
	))

	if in := turretInput(ts.Sim); in != (game.InputState{}) {
		t.Fatalf("input = %+v, want zero with no visible enemy", in)
	}
}

func TestCollectStats_CountsKills(t *testing.T) {
	ts := game.NewTestSim(game.WithMap(
		"#####",
		"#P.E#",
		"#####",
	))
	ts.SetInput(game.InputState{Fire: true})
	ts.RunTicks(120)

	st := collectStats(1, 1, ts)
	if st.enemiesKilled != 1 {
		t.Fatalf("enemiesKilled = %d, want 1", st.enemiesKilled)
	}
	if st.playerShots < 2 {
		t.Fatalf("playerShots = %d, want several", st.playerShots)
	}
	if st.firstDeathTick < 0 {
		t.Fatal("first death tick must be recorded")
	}
}
