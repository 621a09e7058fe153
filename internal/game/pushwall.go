package game

// Pushwall is the single active secret-wall slider. At most one may be active
// system-wide; a second push attempt while one is moving is rejected with a
// "no way" event and leaves the grid untouched.
//
// The tic counter runs 1..256 at 70 Hz. Every 128 tics the wall crosses a
// whole tile: the tile it leaves becomes empty (wall code cleared and sight
// restored), and at the second boundary the wall re-solidifies at its
// destination with the original code. While moving, both the base tile and
// the tile ahead stay statically blocked so nothing can walk into the slider.
type Pushwall struct {
	Active  bool
	Code    uint16 // original plane-0 wall code to restore at the destination
	BaseX   int    // tile the wall currently occupies
	BaseZ   int
	DirX    int // cardinal unit push direction
	DirZ    int
	Counter int // 1..256 while active
}

// Offset returns the visual displacement of the sliding wall within its
// current tile segment, as a 0..1 fraction of one tile. The renderer applies
// it along the push direction; it is a pure function of the counter.
func (pw *Pushwall) Offset() float64 {
	if !pw.Active {
		return 0
	}
	return float64((pw.Counter/2)%64) / 64.0
}

// TryPushwall attempts to start the secret wall at (x, z) sliding along
// (dirX, dirZ). Preconditions: the tile is in the level's secret-marker set,
// carries a nonzero wall code, the two tiles beyond it are both clear of
// walls, closed doors, static solids and live actors, and no other pushwall
// is active. The marker is consumed on success — a secret wall pushes once.
func (s *Sim) TryPushwall(x, z int, dirX, dirZ int) bool {
	if !s.secretMarkers[TileKey{x, z}] {
		return false
	}
	if s.Pushwall.Active {
		s.Events.Emit(Event{Kind: EventPushwallNoWay, X: TileCenter(x), Z: TileCenter(z), Actor: -1})
		return false
	}
	if !s.Grid.InBounds(x, z) || s.Grid.Plane0(x, z) == 0 {
		return false
	}
	for step := 1; step <= 2; step++ {
		ax, az := x+dirX*step, z+dirZ*step
		if s.Grid.Solid(ax, az) || s.Statics.Solid(ax, az) || s.Occupancy.Occupied(ax, az) {
			s.Events.Emit(Event{Kind: EventPushwallNoWay, X: TileCenter(x), Z: TileCenter(z), Actor: -1})
			return false
		}
	}

	delete(s.secretMarkers, TileKey{x, z})
	s.Pushwall = Pushwall{
		Active:  true,
		Code:    s.Grid.Plane0(x, z),
		BaseX:   x,
		BaseZ:   z,
		DirX:    dirX,
		DirZ:    dirZ,
		Counter: 1,
	}
	s.syncPushwallBlocking()
	s.Events.Emit(Event{Kind: EventPushwallActivate, X: TileCenter(x), Z: TileCenter(z), Actor: -1})
	return true
}

// pushwallTic advances the active slider by one 70 Hz tic.
func (s *Sim) pushwallTic() {
	pw := &s.Pushwall
	if !pw.Active {
		return
	}
	pw.Counter++
	if pw.Counter%128 != 0 {
		return
	}

	// Full-tile boundary: the tile being left opens up.
	s.Grid.SetTile(pw.BaseX, pw.BaseZ, TileEmpty)
	s.Grid.SetPlane0(pw.BaseX, pw.BaseZ, 0)
	s.Statics.SetSolid(pw.BaseX, pw.BaseZ, false)

	if pw.Counter >= 256 {
		// Second boundary: wall re-solidifies one tile short of the buffer.
		destX, destZ := pw.BaseX+pw.DirX, pw.BaseZ+pw.DirZ
		s.Statics.SetSolid(destX, destZ, false)
		s.Grid.SetTile(destX, destZ, TileWall)
		s.Grid.SetPlane0(destX, destZ, pw.Code)
		*pw = Pushwall{}
		return
	}

	pw.BaseX += pw.DirX
	pw.BaseZ += pw.DirZ
	s.syncPushwallBlocking()
}

// syncPushwallBlocking keeps the 2-tile moving buffer {base, base+dir}
// statically solid while the slider is active.
func (s *Sim) syncPushwallBlocking() {
	pw := &s.Pushwall
	s.Statics.SetSolid(pw.BaseX, pw.BaseZ, true)
	s.Statics.SetSolid(pw.BaseX+pw.DirX, pw.BaseZ+pw.DirZ, true)
}
