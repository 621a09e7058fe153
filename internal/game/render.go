package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	renderMaxDist = 64.0
	fovPlane      = 0.66 // camera plane half-width; ~66 degree horizontal FOV
	minimapTile   = 7    // pixels per tile on the minimap
)

var (
	ceilingColor   = color.RGBA{R: 48, G: 48, B: 56, A: 255}
	floorColor     = color.RGBA{R: 96, G: 88, B: 72, A: 255}
	doorColor      = color.RGBA{R: 60, G: 110, B: 170, A: 255}
	enemyColor     = color.RGBA{R: 70, G: 120, B: 60, A: 255}
	enemyFlashCol  = color.RGBA{R: 255, G: 220, B: 120, A: 255}
	playerFlashCol = color.RGBA{R: 255, G: 240, B: 180, A: 90}
)

// wallColor picks a base colour from the plane-0 wall code so distinct wall
// types read differently, the way distinct textures would.
func wallColor(code uint16) color.RGBA {
	switch code % 4 {
	case 0:
		return color.RGBA{R: 140, G: 140, B: 150, A: 255}
	case 1:
		return color.RGBA{R: 150, G: 120, B: 90, A: 255}
	case 2:
		return color.RGBA{R: 110, G: 130, B: 110, A: 255}
	default:
		return color.RGBA{R: 130, G: 110, B: 130, A: 255}
	}
}

// Renderer draws the first-person view with a per-column grid ray cast. It
// keeps a per-column depth buffer so enemy billboards occlude correctly
// behind walls.
type Renderer struct {
	width  int
	height int
	depth  []float64
}

func NewRenderer(w, h int) *Renderer {
	return &Renderer{width: w, height: h, depth: make([]float64, w)}
}

// DrawWorld renders ceiling, floor, walls and enemies from the player's
// point of view.
func (r *Renderer) DrawWorld(screen *ebiten.Image, s *Sim) {
	half := float32(r.height) / 2
	vector.DrawFilledRect(screen, 0, 0, float32(r.width), half, ceilingColor, false)
	vector.DrawFilledRect(screen, 0, half, float32(r.width), half, floorColor, false)

	p := s.Player
	dirX := math.Cos(p.Heading)
	dirZ := math.Sin(p.Heading)
	planeX := -dirZ * fovPlane
	planeZ := dirX * fovPlane

	for x := 0; x < r.width; x++ {
		// cameraX spans -1..1 across the screen; the un-normalised ray
		// direction makes the hit parameter a perpendicular distance, which
		// avoids fisheye.
		cameraX := 2*float64(x)/float64(r.width) - 1
		rd := Vec3{X: dirX + planeX*cameraX, Z: dirZ + planeZ*cameraX}
		hit := Hitscan(s.Grid, Vec3{X: p.X, Y: playerEyeHeight, Z: p.Z}, rd, renderMaxDist)
		r.depth[x] = math.Inf(1)

		dist := math.Inf(1)
		var col color.RGBA
		zFace := false
		if hit.Kind == HitWall {
			dist = hit.Dist
			col = wallColor(hit.WallCode)
			if s.Grid.Tile(hit.TileX, hit.TileZ) == TileDoorClosed {
				col = doorColor
			}
			zFace = hit.Normal.Z != 0
			// The slider's own base tile is drawn from the slab cast below,
			// which carries the fractional offset the grid cannot express.
			if s.Pushwall.Active && hit.TileX == s.Pushwall.BaseX && hit.TileZ == s.Pushwall.BaseZ {
				dist = math.Inf(1)
			}
		}
		if pd, pz, ok := pushwallFaceDist(&s.Pushwall, p.X, p.Z, rd.X, rd.Z); ok && pd < dist {
			dist = pd
			col = wallColor(s.Pushwall.Code)
			zFace = pz
		}
		if math.IsInf(dist, 1) {
			continue
		}
		r.depth[x] = dist

		lineHeight := float64(r.height) / dist
		drawStart := float32(-lineHeight/2 + float64(r.height)/2)
		drawEnd := float32(lineHeight/2 + float64(r.height)/2)
		if drawStart < 0 {
			drawStart = 0
		}
		if drawEnd > float32(r.height) {
			drawEnd = float32(r.height)
		}

		// Darken z-facing sides for a cheap lighting cue, plus distance fade.
		shade := 1.0
		if zFace {
			shade = 0.72
		}
		shade *= 1 - math.Min(dist/renderMaxDist, 0.6)
		col.R = uint8(float64(col.R) * shade)
		col.G = uint8(float64(col.G) * shade)
		col.B = uint8(float64(col.B) * shade)
		vector.DrawFilledRect(screen, float32(x), drawStart, 1, drawEnd-drawStart, col, false)
	}

	r.drawEnemies(screen, s, dirX, dirZ, planeX, planeZ)

	if s.Player.fireCooldown > fireCooldownTicks-4 {
		// Brief muzzle flash wash at the bottom of the view.
		vector.DrawFilledRect(screen, 0, float32(r.height)*0.8, float32(r.width), float32(r.height)*0.2, playerFlashCol, false)
	}
}

// pushwallFaceDist intersects a view ray with the active slider's slab at
// its fractional world position, base plus Offset along the push direction.
// The ray direction is un-normalised like the column rays, so the returned
// distance is perpendicular and comparable with Hitscan results. The second
// return reports a z-facing side for shading.
func pushwallFaceDist(pw *Pushwall, ox, oz, rdX, rdZ float64) (float64, bool, bool) {
	if !pw.Active {
		return 0, false, false
	}
	off := pw.Offset()
	cx := float64(pw.BaseX) + float64(pw.DirX)*off
	cz := float64(pw.BaseZ) + float64(pw.DirZ)*off

	tMin, tMax := 0.0, math.Inf(1)
	zFace := false
	for axis := 0; axis < 2; axis++ {
		o, d, c := ox, rdX, cx
		if axis == 1 {
			o, d, c = oz, rdZ, cz
		}
		if math.Abs(d) < rayEpsilon {
			if o < c-0.5 || o > c+0.5 {
				return 0, false, false
			}
			continue
		}
		t0 := (c - 0.5 - o) / d
		t1 := (c + 0.5 - o) / d
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
			zFace = axis == 1
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMin > tMax {
			return 0, false, false
		}
	}
	if tMin <= 0 {
		return 0, false, false
	}
	return tMin, zFace, true
}

// drawEnemies projects live enemies as camera-facing billboards, far to
// near, column-clipped against the wall depth buffer.
func (r *Renderer) drawEnemies(screen *ebiten.Image, s *Sim, dirX, dirZ, planeX, planeZ float64) {
	p := s.Player
	type spr struct {
		e    *Enemy
		dist float64
	}
	var sprites []spr
	for _, e := range s.Enemies {
		if e.Dead {
			continue
		}
		dx := e.X - p.X
		dz := e.Z - p.Z
		sprites = append(sprites, spr{e, dx*dx + dz*dz})
	}
	for i := 1; i < len(sprites); i++ {
		for j := i; j > 0 && sprites[j].dist > sprites[j-1].dist; j-- {
			sprites[j], sprites[j-1] = sprites[j-1], sprites[j]
		}
	}

	invDet := 1.0 / (planeX*dirZ - dirX*planeZ)
	for _, sp := range sprites {
		relX := sp.e.X - p.X
		relZ := sp.e.Z - p.Z
		// Camera-space transform: transX is lateral offset, transZ is depth.
		transX := invDet * (dirZ*relX - dirX*relZ)
		transZ := invDet * (-planeZ*relX + planeX*relZ)
		if transZ <= 0.05 {
			continue
		}
		screenX := int(float64(r.width) / 2 * (1 + transX/transZ))
		size := int(float64(r.height) / transZ * 0.6)
		if size < 1 {
			continue
		}
		top := r.height/2 - size/2 + size/4
		col := enemyColor
		if sp.e.FlashTics > 0 {
			col = enemyFlashCol
		}
		for x := screenX - size/2; x < screenX+size/2; x++ {
			if x < 0 || x >= r.width {
				continue
			}
			if transZ >= r.depth[x] {
				continue
			}
			vector.DrawFilledRect(screen, float32(x), float32(top), 1, float32(size), col, false)
		}
	}
}

// DrawMinimap draws a top-down overview in the top-left corner: walls,
// doors, the active pushwall, enemies and the player heading.
func (r *Renderer) DrawMinimap(screen *ebiten.Image, s *Sim) {
	const pad = 8
	w := float32(s.Grid.Width * minimapTile)
	h := float32(s.Grid.Height * minimapTile)
	vector.DrawFilledRect(screen, pad-2, pad-2, w+4, h+4, color.RGBA{A: 170}, false)

	for z := 0; z < s.Grid.Height; z++ {
		for x := 0; x < s.Grid.Width; x++ {
			var c color.RGBA
			switch s.Grid.Tile(x, z) {
			case TileWall:
				c = color.RGBA{R: 150, G: 150, B: 150, A: 255}
			case TileDoorClosed:
				c = color.RGBA{R: 60, G: 110, B: 170, A: 255}
			case TileDoorOpen:
				c = color.RGBA{R: 30, G: 55, B: 85, A: 255}
			default:
				continue
			}
			vector.DrawFilledRect(screen,
				pad+float32(x*minimapTile), pad+float32(z*minimapTile),
				minimapTile-1, minimapTile-1, c, false)
		}
	}

	if s.Pushwall.Active {
		vector.DrawFilledRect(screen,
			pad+float32(s.Pushwall.BaseX*minimapTile), pad+float32(s.Pushwall.BaseZ*minimapTile),
			minimapTile-1, minimapTile-1, color.RGBA{R: 200, G: 160, B: 60, A: 255}, false)
	}

	for _, e := range s.Enemies {
		if e.Dead {
			continue
		}
		ex := pad + float32((e.X+0.5)*minimapTile)
		ez := pad + float32((e.Z+0.5)*minimapTile)
		vector.DrawFilledCircle(screen, ex, ez, 2.5, color.RGBA{R: 220, G: 60, B: 60, A: 255}, false)
	}

	px := pad + float32((s.Player.X+0.5)*minimapTile)
	pz := pad + float32((s.Player.Z+0.5)*minimapTile)
	vector.DrawFilledCircle(screen, px, pz, 3, color.RGBA{R: 80, G: 220, B: 80, A: 255}, false)
	hx := px + float32(math.Cos(s.Player.Heading))*8
	hz := pz + float32(math.Sin(s.Player.Heading))*8
	vector.StrokeLine(screen, px, pz, hx, hz, 1.5, color.RGBA{R: 80, G: 220, B: 80, A: 255}, false)
}
