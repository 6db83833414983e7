package dungeon

import (
	"testing"

	"deepdelve/pkg/engine/lattice"
)

func TestRoom_ConnectLinksInverseSlots(t *testing.T) {
	a := newRoom(lattice.Origin)
	b := newRoom(lattice.Origin.Step(lattice.East))

	a.connect(b, lattice.East)

	if a.Connection(lattice.East) != b {
		t.Errorf("a.Connection(East) = %v, want b", a.Connection(lattice.East))
	}
	if b.Connection(lattice.West) != a {
		t.Errorf("b.Connection(West) = %v, want a", b.Connection(lattice.West))
	}
	for _, d := range []lattice.Direction{lattice.Up, lattice.North, lattice.South, lattice.Down} {
		if a.Connection(d) != nil {
			t.Errorf("a.Connection(%v) = non-nil, want nil", d)
		}
	}
}

func TestRoom_ConnectionInvalidDirection(t *testing.T) {
	r := newRoom(lattice.Origin)
	if r.Connection(-1) != nil {
		t.Error("Connection(-1) returned a room")
	}
	if r.Connection(lattice.DirectionCount) != nil {
		t.Error("Connection(6) returned a room")
	}
}

func TestRoom_StartAndEndFlags(t *testing.T) {
	start := newRoom(lattice.Origin)
	if !start.IsStart() {
		t.Error("room at origin IsStart() = false")
	}
	if start.IsEnd() {
		t.Error("fresh room IsEnd() = true")
	}

	other := newRoom(lattice.Coord{X: 1, Y: 2, Z: 3})
	if other.IsStart() {
		t.Error("room off origin IsStart() = true")
	}
	if other.X() != 1 || other.Y() != 2 || other.Z() != 3 {
		t.Errorf("coordinate accessors returned %d,%d,%d, want 1,2,3", other.X(), other.Y(), other.Z())
	}
}

func TestRoom_NeighborsAndDegree(t *testing.T) {
	center := newRoom(lattice.Origin)
	if center.Degree() != 0 {
		t.Errorf("fresh room Degree() = %d, want 0", center.Degree())
	}
	if len(center.Neighbors()) != 0 {
		t.Errorf("fresh room Neighbors() has %d entries, want 0", len(center.Neighbors()))
	}

	up := newRoom(lattice.Origin.Step(lattice.Up))
	south := newRoom(lattice.Origin.Step(lattice.South))
	center.connect(up, lattice.Up)
	center.connect(south, lattice.South)

	if center.Degree() != 2 {
		t.Errorf("Degree() = %d, want 2", center.Degree())
	}
	neighbors := center.Neighbors()
	if len(neighbors) != 2 {
		t.Fatalf("Neighbors() has %d entries, want 2", len(neighbors))
	}
	// Direction order: Up before South
	if neighbors[0] != up || neighbors[1] != south {
		t.Error("Neighbors() not in direction order")
	}
}
