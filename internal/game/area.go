package game

// AreaMap labels every passable tile (empty or open door) with a connected
// region id. It is a cheap "same room" filter run before the more expensive
// ray march: two positions in different regions cannot possibly see each
// other, so perception skips the sight line entirely.
//
// The map is recomputed once per AI tick and shared by every enemy in that
// tick; it is never persisted across ticks.
type AreaMap struct {
	width  int
	height int
	region []int // -1 = not passable, otherwise region id
}

// BuildAreaMap flood-fills the grid's passable tiles into connected regions.
// Closed doors separate regions; open doors join them.
func BuildAreaMap(g *Grid) *AreaMap {
	am := &AreaMap{
		width:  g.Width,
		height: g.Height,
		region: make([]int, g.Width*g.Height),
	}
	for i := range am.region {
		am.region[i] = -1
	}

	next := 0
	var stack []TileKey
	for z := 0; z < g.Height; z++ {
		for x := 0; x < g.Width; x++ {
			if am.region[z*g.Width+x] != -1 || !g.Passable(x, z) {
				continue
			}
			// Iterative 4-way flood fill from this seed.
			stack = append(stack[:0], TileKey{x, z})
			am.region[z*g.Width+x] = next
			for len(stack) > 0 {
				c := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				for _, d := range cardinalSteps {
					nx, nz := c.X+d[0], c.Z+d[1]
					if !g.Passable(nx, nz) {
						continue
					}
					idx := nz*g.Width + nx
					if am.region[idx] != -1 {
						continue
					}
					am.region[idx] = next
					stack = append(stack, TileKey{nx, nz})
				}
			}
			next++
		}
	}
	return am
}

// cardinalSteps is the fixed tile-step order used by the flood fill and by
// the chase-step candidate list: east, south, west, north.
var cardinalSteps = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// Region returns the region id at (x, z), or -1 for blocked or out-of-bounds
// tiles.
func (am *AreaMap) Region(x, z int) int {
	if x < 0 || x >= am.width || z < 0 || z >= am.height {
		return -1
	}
	return am.region[z*am.width+x]
}

// SameRegion returns true if both tiles are passable and mutually reachable.
func (am *AreaMap) SameRegion(ax, az, bx, bz int) bool {
	ra := am.Region(ax, az)
	return ra != -1 && ra == am.Region(bx, bz)
}
