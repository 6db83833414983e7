package dungeon

import (
	"github.com/zyedidia/generic/mapset"

	"deepdelve/pkg/engine/lattice"
)

// Dungeon is an ordered collection of generated rooms. Insertion order is
// creation order: path rooms first in path order, then branch rooms grouped
// by the path room they were grown from.
type Dungeon struct {
	rooms []*Room

	// occupied is the coordinate-keyed occupancy index. Where two rooms
	// ever share a coordinate (a quirk of reusing one generator for
	// several Generate calls), the first room placed wins the index
	// entry, matching a linear first-match scan over the collection.
	occupied map[lattice.Coord]*Room

	endRoom *Room
}

func newDungeon() *Dungeon {
	return &Dungeon{
		occupied: make(map[lattice.Coord]*Room),
	}
}

// Size returns the number of rooms in the dungeon
func (d *Dungeon) Size() int {
	return len(d.rooms)
}

// Room returns the room at the given creation index, or nil if out of range
func (d *Dungeon) Room(i int) *Room {
	if i < 0 || i >= len(d.rooms) {
		return nil
	}
	return d.rooms[i]
}

// Rooms returns the rooms in creation order
func (d *Dungeon) Rooms() []*Room {
	out := make([]*Room, len(d.rooms))
	copy(out, d.rooms)
	return out
}

// ForEachRoom iterates over all rooms in creation order, calling the provided
// function with each room's creation index
func (d *Dungeon) ForEachRoom(fn func(i int, room *Room)) {
	for i, room := range d.rooms {
		fn(i, room)
	}
}

// FindRoom returns the room occupying the given lattice point, or nil if
// the point is vacant.
func (d *Dungeon) FindRoom(x, y, z int) *Room {
	return d.RoomAt(lattice.Coord{X: x, Y: y, Z: z})
}

// RoomAt returns the room occupying the given coordinate, or nil if vacant
func (d *Dungeon) RoomAt(c lattice.Coord) *Room {
	return d.occupied[c]
}

// Start returns the room at the origin, or nil if none has been placed
func (d *Dungeon) Start() *Room {
	return d.occupied[lattice.Origin]
}

// End returns the room flagged as the end of the main path, or nil if the
// path dead-ended before an end room could be designated.
func (d *Dungeon) End() *Room {
	return d.endRoom
}

// Bounds returns the smallest axis-aligned box containing every room.
// Both corners are zero coordinates when the dungeon is empty.
func (d *Dungeon) Bounds() (min, max lattice.Coord) {
	if len(d.rooms) == 0 {
		return lattice.Origin, lattice.Origin
	}
	min, max = d.rooms[0].coord, d.rooms[0].coord
	for _, room := range d.rooms[1:] {
		c := room.coord
		if c.X < min.X {
			min.X = c.X
		}
		if c.Y < min.Y {
			min.Y = c.Y
		}
		if c.Z < min.Z {
			min.Z = c.Z
		}
		if c.X > max.X {
			max.X = c.X
		}
		if c.Y > max.Y {
			max.Y = c.Y
		}
		if c.Z > max.Z {
			max.Z = c.Z
		}
	}
	return min, max
}

// add appends a room to the collection and records it in the occupancy index
func (d *Dungeon) add(room *Room) {
	d.rooms = append(d.rooms, room)
	if _, taken := d.occupied[room.coord]; !taken {
		d.occupied[room.coord] = room
	}
}

func (d *Dungeon) markEnd(room *Room) {
	room.end = true
	d.endRoom = room
}

// connectAllAdjacent links the given room bidirectionally to every existing
// room on an adjacent lattice point. Probing the six neighbor coordinates
// through the occupancy index is equivalent to scanning the whole collection
// for unit-offset rooms. A room placed next to several existing rooms ends
// up with several connections, which is how branches rejoin the main path.
func (d *Dungeon) connectAllAdjacent(room *Room) {
	for _, dir := range lattice.AllDirections() {
		neighbor := d.occupied[room.coord.Step(dir)]
		if neighbor != nil && neighbor != room {
			room.connect(neighbor, dir)
		}
	}
}

// ReachableFromStart returns the number of rooms reachable from the start
// room by following connection slots, including the start room itself.
// Returns 0 if there is no start room.
func (d *Dungeon) ReachableFromStart() int {
	start := d.Start()
	if start == nil {
		return 0
	}
	visited := mapset.New[*Room]()
	queue := []*Room{start}
	visited.Put(start)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, n := range current.Neighbors() {
			if !visited.Has(n) {
				visited.Put(n)
				queue = append(queue, n)
			}
		}
	}
	return visited.Size()
}

// Validate checks the dungeon for common issues and returns an error
// description, or empty string if valid.
func (d *Dungeon) Validate() string {
	if len(d.rooms) == 0 {
		return "Dungeon has no rooms"
	}

	if d.Start() == nil {
		return "Dungeon has no room at the origin"
	}

	if d.endRoom == nil {
		return "Dungeon has no end room"
	}

	for _, room := range d.rooms {
		for _, dir := range lattice.AllDirections() {
			linked := room.links[dir]
			if linked == nil {
				continue
			}
			if linked.links[dir.Inverse()] != room {
				return "Room at " + room.coord.String() + " has an asymmetric connection " + dir.String()
			}
		}
	}

	reachable := d.ReachableFromStart()
	endReached := false
	visited := mapset.New[*Room]()
	queue := []*Room{d.Start()}
	visited.Put(d.Start())
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == d.endRoom {
			endReached = true
			break
		}
		for _, n := range current.Neighbors() {
			if !visited.Has(n) {
				visited.Put(n)
				queue = append(queue, n)
			}
		}
	}
	if !endReached {
		return "End room is not reachable from the start room"
	}
	if reachable != len(d.rooms) {
		return "Dungeon contains rooms unreachable from the start room"
	}

	return ""
}
