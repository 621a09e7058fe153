package game

// Door is the countdown state for one door tile. The structural open/closed
// state lives in the Grid; the Door only tracks timing. A door whose timer is
// positive is logically open (or about to close).
type Door struct {
	X, Z      int
	OpenTimer int  // tics until auto-close; 0 while closed
	WantOpen  bool // set from first use until the door actually closes
}

// doorAt returns the door entity on (x, z), or nil. A door tile with no
// matching entity is treated as a no-op by every caller.
func (s *Sim) doorAt(x, z int) *Door {
	return s.doorIndex[TileKey{x, z}]
}

// UseDoor handles a "use" against the door tile at (x, z): flips the tile
// open and starts (or restarts) the auto-close countdown. The open event
// fires only on the first use of a closed door; countdown resets while the
// door is already wanted open stay silent so AI re-triggers on a chase path
// cannot double-play the sound.
func (s *Sim) UseDoor(x, z int) {
	d := s.doorAt(x, z)
	if d == nil {
		return
	}
	first := !d.WantOpen
	d.WantOpen = true
	d.OpenTimer = s.Config.DoorOpenTics
	if s.Grid.Tile(x, z) == TileDoorClosed {
		s.Grid.SetTile(x, z, TileDoorOpen)
	}
	if first {
		s.Events.Emit(Event{Kind: EventDoorOpen, X: TileCenter(x), Z: TileCenter(z), Actor: -1})
	}
}

// doorTic advances every door by one 70 Hz tic: open timers count down, and a
// door whose timer expires closes unless an actor is standing in the doorway,
// in which case a short retry grace is re-armed. Doors never close on an
// occupant.
func (s *Sim) doorTic() {
	for _, d := range s.Doors {
		if d.OpenTimer <= 0 {
			continue
		}
		d.OpenTimer--
		if d.OpenTimer > 0 {
			continue
		}
		if s.doorwayOccupied(d.X, d.Z) {
			d.OpenTimer = s.Config.DoorRetryTics
			continue
		}
		s.Grid.SetTile(d.X, d.Z, TileDoorClosed)
		d.WantOpen = false
		s.Events.Emit(Event{Kind: EventDoorClose, X: TileCenter(d.X), Z: TileCenter(d.Z), Actor: -1})
	}
}

// doorwayOccupied reports whether the player or any live enemy currently
// computes to the door tile, including an enemy mid-slide into it.
func (s *Sim) doorwayOccupied(x, z int) bool {
	if s.Player != nil && TileAt(s.Player.X) == x && TileAt(s.Player.Z) == z {
		return true
	}
	for _, e := range s.Enemies {
		if e.Dead {
			continue
		}
		if e.TileX == x && e.TileZ == z {
			return true
		}
		if e.Moving && e.MoveToX == x && e.MoveToZ == z {
			return true
		}
	}
	return false
}
