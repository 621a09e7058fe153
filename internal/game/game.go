package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	screenWidth  = 960
	screenHeight = 600
	turnSpeed    = 2.4 // radians per second at full deflection
)

// Game is the ebiten shell around a Sim: it polls the keyboard into an
// InputState, steps the sim at a controllable speed, and draws the
// first-person view plus HUD and minimap.
type Game struct {
	sim      *Sim
	renderer *Renderer
	audio    *AudioSink

	showMinimap bool
	showHUD     bool
	prevKeys    map[ebiten.Key]bool
	useLatched  bool // pending use press for the next sim step

	// Simulation speed control.
	simSpeed  float64 // multiplier: 0=paused, 0.5, 1, 2, 4
	tickAccum float64 // fractional tick accumulator for sub-1x speeds

	levelIndex int
}

// New builds a Game running Level1 with the default config.
func New() *Game {
	g := &Game{
		showHUD:     true,
		showMinimap: true,
		prevKeys:    make(map[ebiten.Key]bool),
		simSpeed:    1,
	}
	g.loadLevelIndex(0)
	g.renderer = NewRenderer(screenWidth, screenHeight)
	if sink, err := NewAudioSink(); err == nil {
		g.audio = sink
	}
	return g
}

func (g *Game) loadLevelIndex(i int) {
	levels := []*LevelData{Level1(), Level2()}
	g.levelIndex = i % len(levels)
	g.sim = NewSim(levels[g.levelIndex], DefaultConfig(), int64(1+g.levelIndex))
}

func (g *Game) Update() error {
	g.handleInput()

	if g.simSpeed <= 0 {
		return nil
	}

	// For speeds > 1 run multiple sim steps per frame.
	// For speeds < 1 accumulate fractions.
	g.tickAccum += g.simSpeed
	for g.tickAccum >= 1.0 {
		g.tickAccum -= 1.0
		g.simStep()
	}
	return nil
}

// simStep runs one 60 Hz engine step: poll movement keys, advance the sim,
// then feed the resulting events to the audio sink.
func (g *Game) simStep() {
	in := g.pollMovement()
	g.sim.Step(in, 1.0/engineTPS)
	if g.audio != nil {
		for _, ev := range g.sim.Events.Events() {
			g.audio.Play(ev, g.sim.Player.X, g.sim.Player.Z, g.sim.Player.Heading)
		}
	}
}

// pollMovement reads the continuously-held movement keys. Edge-triggered
// keys (use, fire, debug toggles) are handled in handleInput instead so a
// held key does not repeat every step.
func (g *Game) pollMovement() InputState {
	var in InputState
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.Forward += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.Forward -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		in.Strafe += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		in.Strafe -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.Turn += turnSpeed / engineTPS
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.Turn -= turnSpeed / engineTPS
	}
	in.Fire = ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyControl)
	in.Use = g.useLatched
	g.useLatched = false
	return in
}

// handleInput processes edge-triggered keypresses.
func (g *Game) handleInput() {
	currentKeys := map[ebiten.Key]bool{}
	pressed := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !g.prevKeys[k]
	}

	// E: use (open door / push wall). Latched so the next sim step sees it
	// exactly once even at sub-1x speed.
	if pressed(ebiten.KeyE) {
		g.useLatched = true
	}

	// M: toggle minimap, H: toggle HUD.
	if pressed(ebiten.KeyM) {
		g.showMinimap = !g.showMinimap
	}
	if pressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}

	// L: cycle level.
	if pressed(ebiten.KeyL) {
		g.loadLevelIndex(g.levelIndex + 1)
	}

	// C: copy a debug report of the current sim state to the clipboard.
	if pressed(ebiten.KeyC) {
		_ = CopyDebugReport(g.sim)
	}

	// Sim speed controls: P=pause/resume, ,=slower, .=faster.
	speeds := []float64{0, 0.5, 1, 2, 4}
	if pressed(ebiten.KeyP) {
		if g.simSpeed > 0 {
			g.simSpeed = 0
		} else {
			g.simSpeed = 1
		}
	}
	if pressed(ebiten.KeyComma) {
		for i, s := range speeds {
			if s >= g.simSpeed && i > 0 {
				g.simSpeed = speeds[i-1]
				break
			}
		}
	}
	if pressed(ebiten.KeyPeriod) {
		for i, s := range speeds {
			if s <= g.simSpeed && i < len(speeds)-1 {
				if speeds[i+1] > g.simSpeed {
					g.simSpeed = speeds[i+1]
					break
				}
			}
		}
	}

	g.prevKeys = currentKeys
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.DrawWorld(screen, g.sim)
	if g.showMinimap {
		g.renderer.DrawMinimap(screen, g.sim)
	}
	if g.showHUD {
		drawHUD(screen, g.sim, g.simSpeed)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
