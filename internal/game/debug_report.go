package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// DebugReport formats a full snapshot of the simulation state: player,
// every enemy, door timers and the pushwall. Pasteable into a bug report.
func DebugReport(s *Sim) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- ironspear debug report ---\n")
	fmt.Fprintf(&b, "tick=%d grid=%dx%d\n\n", s.Tick, s.Grid.Width, s.Grid.Height)

	p := s.Player
	fmt.Fprintf(&b, "player: pos=(%.3f, %.3f) tile=(%d, %d) heading=%.3f hp=%d ammo=%d\n\n",
		p.X, p.Z, TileAt(p.X), TileAt(p.Z), p.Heading, p.Health, p.Ammo)

	fmt.Fprintf(&b, "enemies (%d live / %d total):\n", s.LiveEnemies(), len(s.Enemies))
	for _, e := range s.Enemies {
		status := e.State.String()
		if e.Dead {
			status = "dead"
		}
		fmt.Fprintf(&b, "  E%d %s pos=(%.3f, %.3f) tile=(%d, %d) hp=%d cooldown=%d",
			e.ID, status, e.X, e.Z, e.TileX, e.TileZ, e.Health, e.Cooldown)
		if e.Moving {
			fmt.Fprintf(&b, " moving->(%d, %d)", e.MoveToX, e.MoveToZ)
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	if len(s.Doors) == 0 {
		b.WriteString("doors: none\n")
	} else {
		b.WriteString("doors:\n")
		for _, d := range s.Doors {
			state := "closed"
			if s.Grid.Tile(d.X, d.Z) == TileDoorOpen {
				state = fmt.Sprintf("open timer=%d", d.OpenTimer)
			}
			fmt.Fprintf(&b, "  (%d, %d) %s used=%v\n", d.X, d.Z, state, d.WantOpen)
		}
	}

	if s.Pushwall.Active {
		fmt.Fprintf(&b, "pushwall: active base=(%d, %d) dir=(%d, %d) counter=%d offset=%.4f\n",
			s.Pushwall.BaseX, s.Pushwall.BaseZ, s.Pushwall.DirX, s.Pushwall.DirZ,
			s.Pushwall.Counter, s.Pushwall.Offset())
	} else {
		b.WriteString("pushwall: idle\n")
	}

	fmt.Fprintf(&b, "\noccupancy: %d claimed tiles\n", s.Occupancy.Len())
	return b.String()
}

// CopyDebugReport writes the report to the system clipboard.
func CopyDebugReport(s *Sim) error {
	return clipboard.WriteAll(DebugReport(s))
}
