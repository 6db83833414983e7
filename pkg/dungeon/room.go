// Package dungeon generates the topology of a 3D grid-based dungeon:
// a set of non-overlapping rooms on integer lattice points, connected
// through a guaranteed path from a start room to an end room, with side
// branches grown off that path until the requested room count is reached.
package dungeon

import (
	"deepdelve/pkg/engine/lattice"
)

// Room is a single occupied lattice cell with up to six directional links.
// Coordinates are relative to the start room at the origin. A nil link
// slot means no connection on that side.
type Room struct {
	coord lattice.Coord
	end   bool

	// links holds at most one neighbor per direction. Linked rooms always
	// reference each other on inverse slots: if links[d] is B, then B's
	// links[d.Inverse()] is this room.
	links [lattice.DirectionCount]*Room
}

func newRoom(coord lattice.Coord) *Room {
	return &Room{coord: coord}
}

// Coord returns the room's lattice coordinate
func (r *Room) Coord() lattice.Coord {
	return r.coord
}

// X returns the room's X coordinate
func (r *Room) X() int { return r.coord.X }

// Y returns the room's Y coordinate
func (r *Room) Y() int { return r.coord.Y }

// Z returns the room's Z coordinate
func (r *Room) Z() int { return r.coord.Z }

// IsEnd returns true if this room is the designated end of the main path
func (r *Room) IsEnd() bool {
	return r.end
}

// IsStart returns true if this room sits at the origin
func (r *Room) IsStart() bool {
	return r.coord.IsOrigin()
}

// Connection returns the room linked in the given direction, or nil if
// there is no connection on that side or the direction is invalid.
func (r *Room) Connection(d lattice.Direction) *Room {
	if !d.IsValid() {
		return nil
	}
	return r.links[d]
}

// Neighbors returns all linked rooms in direction order
func (r *Room) Neighbors() []*Room {
	var neighbors []*Room
	for _, d := range lattice.AllDirections() {
		if r.links[d] != nil {
			neighbors = append(neighbors, r.links[d])
		}
	}
	return neighbors
}

// Degree returns the number of non-empty connection slots
func (r *Room) Degree() int {
	n := 0
	for _, link := range r.links {
		if link != nil {
			n++
		}
	}
	return n
}

// connect links this room to neighbor in the given direction, and neighbor
// back to this room on the inverse slot.
func (r *Room) connect(neighbor *Room, d lattice.Direction) {
	r.links[d] = neighbor
	neighbor.links[d.Inverse()] = r
}
