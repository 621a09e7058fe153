package game

import "math"

// Plane-0 structural codes. Anything in the wall band is rendered with the
// texture the code selects; door codes become door tiles and keep their code
// for the frame texture.
const (
	codeFloor   uint16 = 0
	codeWallMin uint16 = 1
	codeWallMax uint16 = 89
	codeDoor    uint16 = 90
)

// Plane-1 thing codes.
const (
	thingNone        uint16 = 0
	thingPlayerEast  uint16 = 10
	thingPlayerSouth uint16 = 11
	thingPlayerWest  uint16 = 12
	thingPlayerNorth uint16 = 13
	thingEnemy       uint16 = 20
	thingDecoSolid   uint16 = 30 // blocking scenery
	thingDecoFloor   uint16 = 31 // non-blocking scenery
	thingSecret      uint16 = 98 // pushwall marker, placed over a wall cell
)

// LevelData is the pre-parsed level description handed to the simulation:
// two row-major integer planes, exactly as a map loader would produce them.
// Plane0 carries structural codes, Plane1 carries things.
type LevelData struct {
	Width  int
	Height int
	Plane0 []uint16
	Plane1 []uint16
}

// loadLevel builds the grid, statics, doors, secret markers, enemies and the
// player from level planes. Called once from NewSim; the resulting grid is
// mutated in place for the rest of the level's life.
func (s *Sim) loadLevel(level *LevelData) {
	g := NewGrid(level.Width, level.Height)
	s.Grid = g
	s.Statics = NewBlockmap(level.Width, level.Height)

	for z := 0; z < level.Height; z++ {
		for x := 0; x < level.Width; x++ {
			code := level.Plane0[z*level.Width+x]
			g.SetPlane0(x, z, code)
			switch {
			case code == codeFloor:
				g.SetTile(x, z, TileEmpty)
			case code >= codeDoor:
				g.SetTile(x, z, TileDoorClosed)
				d := &Door{X: x, Z: z}
				s.Doors = append(s.Doors, d)
				s.doorIndex[TileKey{x, z}] = d
			default:
				g.SetTile(x, z, TileWall)
			}
		}
	}

	nextID := 0
	for z := 0; z < level.Height; z++ {
		for x := 0; x < level.Width; x++ {
			switch level.Plane1[z*level.Width+x] {
			case thingNone, thingDecoFloor:
			case thingPlayerEast:
				s.Player = NewPlayer(x, z, 0)
			case thingPlayerSouth:
				s.Player = NewPlayer(x, z, math.Pi/2)
			case thingPlayerWest:
				s.Player = NewPlayer(x, z, math.Pi)
			case thingPlayerNorth:
				s.Player = NewPlayer(x, z, -math.Pi/2)
			case thingEnemy:
				s.Enemies = append(s.Enemies, NewEnemy(nextID, x, z))
				nextID++
			case thingDecoSolid:
				s.Statics.SetSolid(x, z, true)
			case thingSecret:
				s.secretMarkers[TileKey{x, z}] = true
			}
		}
	}
}

// ParseLevel builds LevelData from an ASCII sketch, one rune per tile:
//
//	#  wall            .  floor
//	D  door            S  secret wall (pushwall)
//	P  player start    E  standing enemy
//	o  blocking decoration
//
// Rows are z, columns are x. The sketch form keeps test maps and the built-in
// levels readable; a real map loader would hand the planes over directly.
func ParseLevel(rows []string) *LevelData {
	h := len(rows)
	w := 0
	for _, r := range rows {
		if len(r) > w {
			w = len(r)
		}
	}
	level := &LevelData{
		Width:  w,
		Height: h,
		Plane0: make([]uint16, w*h),
		Plane1: make([]uint16, w*h),
	}
	for z, row := range rows {
		for x := 0; x < w; x++ {
			c := byte('#')
			if x < len(row) {
				c = row[x]
			}
			i := z*w + x
			switch c {
			case '#':
				level.Plane0[i] = codeWallMin
			case 'S':
				level.Plane0[i] = codeWallMin + 1
				level.Plane1[i] = thingSecret
			case 'D':
				level.Plane0[i] = codeDoor
			case 'P':
				level.Plane1[i] = thingPlayerEast
			case 'E':
				level.Plane1[i] = thingEnemy
			case 'o':
				level.Plane1[i] = thingDecoSolid
			}
		}
	}
	return level
}

// Level1 is the built-in first map: an entry corridor behind a door, a guard
// room, and a secret passage to a supply closet.
func Level1() *LevelData {
	return ParseLevel([]string{
		"####################",
		"#P.......#.........#",
		"#........D......E..#",
		"#........#.........#",
		"####D#####.....E...#",
		"#........#.........#",
		"#..o.....#######S###",
		"#........D.........#",
		"#...E....#.....E...#",
		"#........#.........#",
		"####################",
	})
}

// Level2 is the built-in second map: tighter rooms and more guards.
func Level2() *LevelData {
	return ParseLevel([]string{
		"######################",
		"#P...#....E...#......#",
		"#....D........D...E..#",
		"#....#....o...#......#",
		"###D#######D##########",
		"#...E.#.....#....E...#",
		"#.....S.....D........#",
		"#..o..#..E..#....o...#",
		"######################",
	})
}
