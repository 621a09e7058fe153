package game

// Tile identifies the structural state of one map cell.
type Tile uint8

const (
	TileEmpty      Tile = iota // open floor
	TileWall                   // solid wall
	TileDoorClosed             // door, blocks movement and sight
	TileDoorOpen               // door, passable
)

func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileWall:
		return "wall"
	case TileDoorClosed:
		return "door-closed"
	case TileDoorOpen:
		return "door-open"
	default:
		return "unknown"
	}
}

// BlocksMove returns true if the tile cannot be walked through.
func (t Tile) BlocksMove() bool {
	return t == TileWall || t == TileDoorClosed
}

// BlocksSight returns true if the tile stops a sight line.
func (t Tile) BlocksSight() bool {
	return t == TileWall || t == TileDoorClosed
}

// Grid is the authoritative per-cell map representation: the structural tile
// state plus the original plane-0 wall code for each cell. Wall codes are kept
// so pushwalls can restore their texture at the destination tile and so the
// renderer can pick wall faces.
//
// Accessors do no bounds checking; callers must check InBounds first.
// Out-of-bounds cells are treated as solid by every consumer, never as empty.
type Grid struct {
	Width  int
	Height int
	tiles  []Tile   // row-major: index = z*Width + x
	plane0 []uint16 // original wall codes, same indexing
}

// NewGrid creates an all-empty grid. Built once at level load and mutated in
// place by door, pushwall and level-switch logic; never resized.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		tiles:  make([]Tile, width*height),
		plane0: make([]uint16, width*height),
	}
}

// InBounds returns true if (x, z) is a valid cell.
func (g *Grid) InBounds(x, z int) bool {
	return x >= 0 && x < g.Width && z >= 0 && z < g.Height
}

// Tile returns the tile at (x, z). Caller must bounds-check.
func (g *Grid) Tile(x, z int) Tile {
	return g.tiles[z*g.Width+x]
}

// SetTile overwrites the tile at (x, z). Caller must bounds-check.
func (g *Grid) SetTile(x, z int, t Tile) {
	g.tiles[z*g.Width+x] = t
}

// Plane0 returns the original wall code at (x, z). Caller must bounds-check.
func (g *Grid) Plane0(x, z int) uint16 {
	return g.plane0[z*g.Width+x]
}

// SetPlane0 overwrites the wall code at (x, z). Caller must bounds-check.
func (g *Grid) SetPlane0(x, z int, code uint16) {
	g.plane0[z*g.Width+x] = code
}

// Solid reports whether (x, z) blocks movement, treating out-of-bounds as
// solid. This is the bounds-checked query most consumers want.
func (g *Grid) Solid(x, z int) bool {
	if !g.InBounds(x, z) {
		return true
	}
	return g.Tile(x, z).BlocksMove()
}

// Opaque reports whether (x, z) blocks sight, treating out-of-bounds as
// opaque.
func (g *Grid) Opaque(x, z int) bool {
	if !g.InBounds(x, z) {
		return true
	}
	return g.Tile(x, z).BlocksSight()
}

// Passable reports whether (x, z) can be entered on foot considering only the
// structural tile (doors count when open). Out-of-bounds is impassable.
func (g *Grid) Passable(x, z int) bool {
	if !g.InBounds(x, z) {
		return false
	}
	return !g.Tile(x, z).BlocksMove()
}
