package game

import "math"

// The ray engine walks the grid cell-by-cell with a digital differential
// analyzer. One algorithm serves two call sites: perception line-of-sight
// (walls and closed doors block) and physical hitscan (also intersects the
// floor plane and reports the exact contact).
//
// Tile (x, z) occupies world space [x-0.5, x+0.5) x [z-0.5, z+0.5), so the
// tile under a world coordinate is floor(c + 0.5).

const (
	// rayEpsilon is the direction-component threshold below which an axis is
	// treated as never crossing a boundary.
	rayEpsilon = 1e-6
)

// TileAt converts one world coordinate to its tile index.
func TileAt(c float64) int {
	return int(math.Floor(c + 0.5))
}

// TileCenter converts a tile index back to the world coordinate of its centre.
func TileCenter(t int) float64 {
	return float64(t)
}

// Vec3 is a world-space point or direction. The grid lives in the X/Z plane;
// Y is up and only matters to hitscan floor tests.
type Vec3 struct {
	X, Y, Z float64
}

// rayStepper holds DDA traversal state across the X/Z plane.
type rayStepper struct {
	tx, tz         int     // current tile
	stepX, stepZ   int     // per-axis tile increment (0 when axis never crosses)
	sideX, sideZ   float64 // parametric distance to the next boundary per axis
	deltaX, deltaZ float64 // parametric distance between successive boundaries
	lastStepX      bool    // true when the previous advance crossed an x boundary
}

// newRayStepper prepares traversal from origin (ox, oz) along (dx, dz).
// Near-zero direction components never cross their axis (infinite side
// distance) to avoid division artifacts.
func newRayStepper(ox, oz, dx, dz float64) rayStepper {
	rs := rayStepper{
		tx:     TileAt(ox),
		tz:     TileAt(oz),
		sideX:  math.Inf(1),
		sideZ:  math.Inf(1),
		deltaX: math.Inf(1),
		deltaZ: math.Inf(1),
	}
	if dx > rayEpsilon {
		rs.stepX = 1
		rs.deltaX = 1 / dx
		rs.sideX = (float64(rs.tx) + 0.5 - ox) / dx
	} else if dx < -rayEpsilon {
		rs.stepX = -1
		rs.deltaX = -1 / dx
		rs.sideX = (float64(rs.tx) - 0.5 - ox) / dx
	}
	if dz > rayEpsilon {
		rs.stepZ = 1
		rs.deltaZ = 1 / dz
		rs.sideZ = (float64(rs.tz) + 0.5 - oz) / dz
	} else if dz < -rayEpsilon {
		rs.stepZ = -1
		rs.deltaZ = -1 / dz
		rs.sideZ = (float64(rs.tz) - 0.5 - oz) / dz
	}
	return rs
}

// advance steps into the next cell along the ray and returns the parametric
// distance of the boundary crossing. When both boundary crossings are
// equidistant the x axis is taken first, so traversal is deterministic.
func (rs *rayStepper) advance() float64 {
	if rs.sideX <= rs.sideZ {
		t := rs.sideX
		rs.sideX += rs.deltaX
		rs.tx += rs.stepX
		rs.lastStepX = true
		return t
	}
	t := rs.sideZ
	rs.sideZ += rs.deltaZ
	rs.tz += rs.stepZ
	rs.lastStepX = false
	return t
}

// LineOfSight reports whether the straight line from (ox, oz) to (px, pz) is
// unobstructed by walls and closed doors, up to maxDist world units. A
// zero-length line is trivially visible. Stepping out of bounds blocks.
func LineOfSight(g *Grid, ox, oz, px, pz, maxDist float64) bool {
	dx := px - ox
	dz := pz - oz
	dist := math.Hypot(dx, dz)
	if dist < rayEpsilon {
		return true
	}
	dx /= dist
	dz /= dist

	targetX, targetZ := TileAt(px), TileAt(pz)
	rs := newRayStepper(ox, oz, dx, dz)
	if rs.tx == targetX && rs.tz == targetZ {
		return true
	}

	// Bound the walk so pathological float drift cannot loop forever.
	maxSteps := 4 * max(g.Width, g.Height)
	for i := 0; i < maxSteps; i++ {
		t := rs.advance()
		if t > maxDist || t > dist {
			// Unobstructed for the whole checked length.
			return true
		}
		if !g.InBounds(rs.tx, rs.tz) {
			return false
		}
		if g.Tile(rs.tx, rs.tz).BlocksSight() {
			return false
		}
		if rs.tx == targetX && rs.tz == targetZ {
			return true
		}
	}
	return false
}

// HitKind labels what a hitscan ray struck.
type HitKind uint8

const (
	HitNone  HitKind = iota // ray escaped the map or exceeded max distance
	HitWall                 // vertical wall or closed-door face
	HitFloor                // downward ray reached the floor plane first
)

// RayHit describes the first surface a hitscan ray contacts.
type RayHit struct {
	Kind     HitKind
	Point    Vec3    // exact contact position
	Normal   Vec3    // face normal, opposite the step direction (walls only)
	Dist     float64 // parametric distance along the ray
	TileX    int     // struck cell (walls only)
	TileZ    int
	WallCode uint16 // plane-0 code of the struck cell (walls only)
}

// Hitscan casts a ray from origin along dir (need not be normalised; Dist is
// parametric in units of |dir|) and returns the first vertical wall/door face
// or floor-plane intersection within maxDist. A zero direction or a ray that
// leaves the map reports no hit.
func Hitscan(g *Grid, origin, dir Vec3, maxDist float64) RayHit {
	if math.Abs(dir.X) < rayEpsilon && math.Abs(dir.Y) < rayEpsilon && math.Abs(dir.Z) < rayEpsilon {
		return RayHit{Kind: HitNone}
	}

	// Floor plane y=0 is only reachable on a downward ray.
	floorT := math.Inf(1)
	if dir.Y < -rayEpsilon && origin.Y > 0 {
		floorT = -origin.Y / dir.Y
	}

	rs := newRayStepper(origin.X, origin.Z, dir.X, dir.Z)
	maxSteps := 4 * max(g.Width, g.Height)
	for i := 0; i < maxSteps; i++ {
		t := rs.advance()
		if math.IsInf(t, 1) {
			// Purely vertical ray: only the floor can be hit.
			break
		}
		if floorT <= t {
			break
		}
		if t > maxDist {
			return RayHit{Kind: HitNone}
		}
		if !g.InBounds(rs.tx, rs.tz) {
			return RayHit{Kind: HitNone}
		}
		if g.Tile(rs.tx, rs.tz).BlocksMove() {
			normal := Vec3{}
			if rs.lastStepX {
				normal.X = -float64(rs.stepX)
			} else {
				normal.Z = -float64(rs.stepZ)
			}
			return RayHit{
				Kind: HitWall,
				Point: Vec3{
					X: origin.X + dir.X*t,
					Y: origin.Y + dir.Y*t,
					Z: origin.Z + dir.Z*t,
				},
				Normal:   normal,
				Dist:     t,
				TileX:    rs.tx,
				TileZ:    rs.tz,
				WallCode: g.Plane0(rs.tx, rs.tz),
			}
		}
	}

	if !math.IsInf(floorT, 1) && floorT <= maxDist {
		return RayHit{
			Kind: HitFloor,
			Point: Vec3{
				X: origin.X + dir.X*floorT,
				Y: 0,
				Z: origin.Z + dir.Z*floorT,
			},
			Normal: Vec3{Y: 1},
			Dist:   floorT,
		}
	}
	return RayHit{Kind: HitNone}
}

// chebyshev returns the diagonal-inclusive tile distance max(|dx|, |dz|).
func chebyshev(ax, az, bx, bz int) int {
	dx := ax - bx
	if dx < 0 {
		dx = -dx
	}
	dz := az - bz
	if dz < 0 {
		dz = -dz
	}
	return max(dx, dz)
}
