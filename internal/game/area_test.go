package game

import "testing"

func TestAreaMap_ClosedDoorSeparates(t *testing.T) {
	g := NewGrid(5, 1)
	g.SetTile(2, 0, TileDoorClosed)

	am := BuildAreaMap(g)
	if !am.SameRegion(0, 0, 1, 0) {
		t.Fatal("adjacent floor tiles must share a region")
	}
	if am.SameRegion(1, 0, 3, 0) {
		t.Fatal("closed door must separate regions")
	}
	if am.Region(2, 0) != -1 {
		t.Fatalf("door tile region = %d, want -1", am.Region(2, 0))
	}
}

func TestAreaMap_OpenDoorJoins(t *testing.T) {
	g := NewGrid(5, 1)
	g.SetTile(2, 0, TileDoorOpen)

	am := BuildAreaMap(g)
	if !am.SameRegion(0, 0, 4, 0) {
		t.Fatal("open door must join regions")
	}
}

func TestAreaMap_OutOfBounds(t *testing.T) {
	g := NewGrid(3, 3)
	am := BuildAreaMap(g)
	if am.Region(-1, 0) != -1 || am.Region(0, 3) != -1 {
		t.Fatal("out-of-bounds region must be -1")
	}
	if am.SameRegion(0, 0, -1, 0) {
		t.Fatal("out-of-bounds tile cannot share a region")
	}
}

func TestAreaMap_DiagonalDoesNotConnect(t *testing.T) {
	// Two floor pockets touching only at a corner stay separate regions.
	g := NewGrid(2, 2)
	g.SetTile(1, 0, TileWall)
	g.SetTile(0, 1, TileWall)
	am := BuildAreaMap(g)
	if am.SameRegion(0, 0, 1, 1) {
		t.Fatal("diagonal adjacency must not connect regions")
	}
}
