package main

import (
	"flag"
	"fmt"
	"math"

	"github.com/tkalvik/ironspear/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64

	firstAlertTick  int
	firstShotTick   int
	firstDeathTick  int
	playerDeadTick  int
	enemyShots      int
	enemyHits       int
	damageTaken     int
	playerShots     int
	enemiesKilled   int
	doorOpens       int
	pushwallStarted bool
	finalHealth     int
	finalAmmo       int
	liveEnemies     int
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var scenario string
	var level int
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 3600, "engine ticks per run (60/s)")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&scenario, "scenario", "turret", "scenario name (turret, hold)")
	flag.IntVar(&level, "level", 1, "built-in level number (1 or 2)")
	flag.BoolVar(&verbose, "v", false, "print the full event log per run")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if scenario != "turret" && scenario != "hold" {
		fmt.Printf("error: unsupported scenario %q (supported: turret, hold)\n", scenario)
		return
	}
	levelData := game.Level1()
	if level == 2 {
		levelData = game.Level2()
	} else if level != 1 {
		fmt.Printf("error: unknown level %d\n", level)
		return
	}

	fmt.Printf("=== Headless Combat Report ===\n")
	fmt.Printf("scenario=%s level=%d runs=%d ticks=%d seed_base=%d seed_step=%d\n\n",
		scenario, level, runs, ticks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runScenario(i+1, seed, ticks, scenario, levelData, verbose)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

func runScenario(runIndex int, seed int64, ticks int, scenario string, level *game.LevelData, verbose bool) runStats {
	ts := game.NewTestSim(
		game.WithLevel(level),
		game.WithSeed(seed),
	)

	for i := 0; i < ticks; i++ {
		if scenario == "turret" {
			ts.SetInput(turretInput(ts.Sim))
		}
		ts.RunTicks(1)
		if ts.Sim.Player.Health <= 0 {
			break
		}
	}

	if verbose {
		fmt.Println(ts.SimLog.Format())
	}
	return collectStats(runIndex, seed, ts)
}

// turretInput aims the player at the nearest visible enemy and fires once
// roughly aligned. The player never moves, so runs differ only by seed.
func turretInput(s *game.Sim) game.InputState {
	p := s.Player
	var target *game.Enemy
	best := math.Inf(1)
	for _, e := range s.Enemies {
		if e.Dead {
			continue
		}
		if !game.LineOfSight(s.Grid, p.X, p.Z, e.X, e.Z, s.Config.SightRange) {
			continue
		}
		d := math.Hypot(e.X-p.X, e.Z-p.Z)
		if d < best {
			best = d
			target = e
		}
	}
	if target == nil {
		return game.InputState{}
	}

	want := math.Atan2(target.Z-p.Z, target.X-p.X)
	diff := math.Mod(want-p.Heading, 2*math.Pi)
	if diff > math.Pi {
		diff -= 2 * math.Pi
	}
	if diff < -math.Pi {
		diff += 2 * math.Pi
	}

	const maxTurn = 0.08
	in := game.InputState{Turn: diff}
	if in.Turn > maxTurn {
		in.Turn = maxTurn
	}
	if in.Turn < -maxTurn {
		in.Turn = -maxTurn
	}
	in.Fire = math.Abs(diff) < 0.1
	return in
}

func collectStats(runIndex int, seed int64, ts *game.TestSim) runStats {
	st := runStats{
		runIndex:       runIndex,
		seed:           seed,
		firstAlertTick: -1,
		firstShotTick:  -1,
		firstDeathTick: -1,
		playerDeadTick: -1,
	}

	firstOf := func(category, key string) int {
		entries := ts.SimLog.Filter(category, key)
		if len(entries) == 0 {
			return -1
		}
		return entries[0].Tick
	}
	st.firstAlertTick = firstOf("event", game.EventEnemyAlert.String())
	st.firstShotTick = firstOf("event", game.EventEnemyShoot.String())
	st.firstDeathTick = firstOf("state", "death")

	st.enemyShots = ts.SimLog.CountCategory("event", game.EventEnemyShoot.String())
	st.enemyHits = ts.SimLog.CountCategory("event", game.EventEnemyHitPlayer.String())
	st.playerShots = ts.SimLog.CountCategory("event", game.EventPlayerShoot.String())
	st.enemiesKilled = ts.SimLog.CountCategory("state", "death")
	st.doorOpens = ts.SimLog.CountCategory("event", game.EventDoorOpen.String())
	st.pushwallStarted = ts.SimLog.CountCategory("pushwall", "start") > 0

	for _, e := range ts.SimLog.Filter("event", game.EventEnemyHitPlayer.String()) {
		st.damageTaken += int(e.NumVal)
	}

	st.finalHealth = ts.Sim.Player.Health
	st.finalAmmo = ts.Sim.Player.Ammo
	st.liveEnemies = ts.Sim.LiveEnemies()
	if st.finalHealth <= 0 {
		st.playerDeadTick = ts.Sim.Tick
	}
	return st
}

func printRun(st runStats) {
	fmt.Printf("--- run %d (seed %d) ---\n", st.runIndex, st.seed)
	fmt.Printf("  first: alert=%s shot=%s kill=%s\n",
		tickStr(st.firstAlertTick), tickStr(st.firstShotTick), tickStr(st.firstDeathTick))
	fmt.Printf("  enemy: shots=%d hits=%d damage=%d\n", st.enemyShots, st.enemyHits, st.damageTaken)
	fmt.Printf("  player: shots=%d kills=%d hp=%d ammo=%d\n",
		st.playerShots, st.enemiesKilled, st.finalHealth, st.finalAmmo)
	fmt.Printf("  doors opened=%d pushwall=%v live_enemies=%d", st.doorOpens, st.pushwallStarted, st.liveEnemies)
	if st.playerDeadTick >= 0 {
		fmt.Printf(" player_died_tick=%d", st.playerDeadTick)
	}
	fmt.Printf("\n\n")
}

func printAggregate(all []runStats) {
	if len(all) == 0 {
		return
	}
	var shots, hits, damage, kills, deaths int
	var alertSum, alertCount int
	for _, st := range all {
		shots += st.enemyShots
		hits += st.enemyHits
		damage += st.damageTaken
		kills += st.enemiesKilled
		if st.playerDeadTick >= 0 {
			deaths++
		}
		if st.firstAlertTick >= 0 {
			alertSum += st.firstAlertTick
			alertCount++
		}
	}

	fmt.Printf("=== aggregate over %d runs ===\n", len(all))
	if alertCount > 0 {
		fmt.Printf("  avg first alert tick: %.1f\n", float64(alertSum)/float64(alertCount))
	}
	hitRate := 0.0
	if shots > 0 {
		hitRate = float64(hits) / float64(shots)
	}
	fmt.Printf("  enemy shots=%d hits=%d hit_rate=%.2f avg_damage=%.1f\n",
		shots, hits, hitRate, float64(damage)/float64(len(all)))
	fmt.Printf("  enemies killed=%d player deaths=%d/%d\n", kills, deaths, len(all))
}

func tickStr(t int) string {
	if t < 0 {
		return "never"
	}
	return fmt.Sprintf("%d", t)
}
