package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	hudTextColor   = color.RGBA{R: 230, G: 230, B: 220, A: 255}
	hudLegendColor = color.RGBA{R: 150, G: 150, B: 145, A: 255}
	hudAlertColor  = color.RGBA{R: 240, G: 80, B: 80, A: 255}
)

// drawHUD prints player vitals and the key legend along the bottom of the
// screen.
func drawHUD(screen *ebiten.Image, s *Sim, simSpeed float64) {
	h := screen.Bounds().Dy()
	face := basicfont.Face7x13

	status := fmt.Sprintf("HP %3d   AMMO %2d   ENEMIES %d   TICK %d",
		s.Player.Health, s.Player.Ammo, s.LiveEnemies(), s.Tick)
	if simSpeed == 0 {
		status += "   [PAUSED]"
	} else if simSpeed != 1 {
		status += fmt.Sprintf("   [x%g]", simSpeed)
	}
	col := hudTextColor
	if s.Player.Health <= 0 {
		status += "   ** DEAD **"
		col = hudAlertColor
	}
	text.Draw(screen, status, face, 8, h-26, col)

	legend := strings.Join([]string{
		"WASD move", "arrows turn", "SPACE fire", "E use",
		"M map", "L level", "P pause", ",/. speed", "C report",
	}, "  |  ")
	text.Draw(screen, legend, face, 8, h-8, hudLegendColor)
}
