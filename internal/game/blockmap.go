package game

// Blockmap is the static solidity layer: tiles blocked by decorations and the
// pushwall's moving buffer, independent of the structural Grid. Rebuilt
// whenever the level's decoration set is (re)spawned. Out-of-bounds reads
// return solid.
type Blockmap struct {
	width  int
	height int
	solid  []bool // row-major: index = z*width + x
}

// NewBlockmap creates an all-clear blockmap matching the grid dimensions.
func NewBlockmap(width, height int) *Blockmap {
	return &Blockmap{
		width:  width,
		height: height,
		solid:  make([]bool, width*height),
	}
}

// Solid returns true if (x, z) is statically blocked. Out-of-bounds is solid.
func (bm *Blockmap) Solid(x, z int) bool {
	if x < 0 || x >= bm.width || z < 0 || z >= bm.height {
		return true
	}
	return bm.solid[z*bm.width+x]
}

// SetSolid marks or clears static blocking at (x, z). Out-of-bounds is a no-op.
func (bm *Blockmap) SetSolid(x, z int, v bool) {
	if x < 0 || x >= bm.width || z < 0 || z >= bm.height {
		return
	}
	bm.solid[z*bm.width+x] = v
}

// Clear resets every cell to unblocked.
func (bm *Blockmap) Clear() {
	for i := range bm.solid {
		bm.solid[i] = false
	}
}

// TileKey packs a tile coordinate for set membership.
type TileKey struct {
	X, Z int
}

// Occupancy is the per-tick set of tiles claimed by live enemies: each
// enemy's current tile, the destination of any enemy mid-slide, plus early
// destination claims inserted during the same tick's decisions. Rebuilt from
// scratch once per AI tick; intentionally non-incremental so it can never go
// stale.
//
// At most one live actor holds a given destination claim at a time. A claim is
// advisory: it stops a second enemy from choosing the same destination, but
// does not stop the claiming enemy's own vacated tile from reading as free
// on the next rebuild.
type Occupancy struct {
	tiles map[TileKey]struct{}
}

// NewOccupancy creates an empty occupancy set.
func NewOccupancy() *Occupancy {
	return &Occupancy{tiles: make(map[TileKey]struct{})}
}

// Reset empties the set for a fresh rebuild.
func (o *Occupancy) Reset() {
	clear(o.tiles)
}

// Claim inserts a tile into the set.
func (o *Occupancy) Claim(x, z int) {
	o.tiles[TileKey{x, z}] = struct{}{}
}

// Release removes a tile from the set.
func (o *Occupancy) Release(x, z int) {
	delete(o.tiles, TileKey{x, z})
}

// Occupied returns true if a live actor holds (x, z).
func (o *Occupancy) Occupied(x, z int) bool {
	_, ok := o.tiles[TileKey{x, z}]
	return ok
}

// Len returns the number of claimed tiles.
func (o *Occupancy) Len() int {
	return len(o.tiles)
}
