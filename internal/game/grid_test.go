package game

import "testing"

func TestTile_Properties(t *testing.T) {
	cases := []struct {
		tile  Tile
		move  bool
		sight bool
	}{
		{TileEmpty, false, false},
		{TileWall, true, true},
		{TileDoorClosed, true, true},
		{TileDoorOpen, false, false},
	}
	for _, tc := range cases {
		if got := tc.tile.BlocksMove(); got != tc.move {
			t.Errorf("%s BlocksMove = %v, want %v", tc.tile, got, tc.move)
		}
		if got := tc.tile.BlocksSight(); got != tc.sight {
			t.Errorf("%s BlocksSight = %v, want %v", tc.tile, got, tc.sight)
		}
	}
}

func TestGrid_OutOfBoundsIsSolid(t *testing.T) {
	g := NewGrid(4, 4)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100}} {
		if !g.Solid(p[0], p[1]) {
			t.Errorf("expected (%d,%d) solid out of bounds", p[0], p[1])
		}
		if !g.Opaque(p[0], p[1]) {
			t.Errorf("expected (%d,%d) opaque out of bounds", p[0], p[1])
		}
		if g.Passable(p[0], p[1]) {
			t.Errorf("expected (%d,%d) impassable out of bounds", p[0], p[1])
		}
	}
}

func TestGrid_SetAndQuery(t *testing.T) {
	g := NewGrid(3, 3)
	g.SetTile(1, 2, TileWall)
	g.SetPlane0(1, 2, 17)
	if !g.Solid(1, 2) {
		t.Fatal("wall tile should be solid")
	}
	if g.Plane0(1, 2) != 17 {
		t.Fatalf("Plane0 = %d, want 17", g.Plane0(1, 2))
	}
	if g.Solid(2, 1) {
		t.Fatal("empty tile should not be solid")
	}
}

func TestBlockmap_OutOfBoundsIsSolid(t *testing.T) {
	bm := NewBlockmap(3, 3)
	if !bm.Solid(-1, 0) || !bm.Solid(3, 0) {
		t.Fatal("out of bounds should be solid")
	}
	bm.SetSolid(-1, 0, true) // no-op, must not panic
	bm.SetSolid(1, 1, true)
	if !bm.Solid(1, 1) {
		t.Fatal("expected (1,1) solid after SetSolid")
	}
	bm.Clear()
	if bm.Solid(1, 1) {
		t.Fatal("expected clear after Clear")
	}
}

func TestOccupancy_ClaimRelease(t *testing.T) {
	o := NewOccupancy()
	o.Claim(2, 3)
	if !o.Occupied(2, 3) {
		t.Fatal("expected claim to register")
	}
	if o.Occupied(3, 2) {
		t.Fatal("transposed tile should not be occupied")
	}
	o.Release(2, 3)
	if o.Occupied(2, 3) || o.Len() != 0 {
		t.Fatal("expected release to clear the claim")
	}
}
