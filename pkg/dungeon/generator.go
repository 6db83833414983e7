package dungeon

import (
	"errors"
	"math/rand"
	"time"

	"deepdelve/pkg/engine/lattice"
)

// Tuning constants for the kind of dungeons generated.
const (
	// pathPortion caps the main path length relative to the total room count.
	pathPortion = 0.6

	// randomModifier biases branch lengths along the main path. It cancels
	// out of the branch formula today, but is kept as the tuning knob the
	// formula is written around: see branchRollBound.
	randomModifier = 0.1
)

// ErrTooFewRooms is returned by Generate when fewer than two rooms are
// requested. A dungeon needs at least a start and an end room.
var ErrTooFewRooms = errors.New("dungeon must have at least 2 rooms")

// Generator builds dungeons from an owned random source. A Generator is not
// safe for concurrent use; distinct instances are fully independent.
type Generator struct {
	rng     *rand.Rand
	dungeon *Dungeon
}

// NewGenerator creates a generator with a non-reproducible random source
func NewGenerator() *Generator {
	return NewSeededGenerator(time.Now().UnixNano())
}

// NewSeededGenerator creates a generator whose output is fully determined
// by the given seed: the same seed and room count always produce the same
// dungeon.
func NewSeededGenerator(seed int64) *Generator {
	return &Generator{
		rng:     rand.New(rand.NewSource(seed)),
		dungeon: newDungeon(),
	}
}

// Generate builds a dungeon of the requested number of rooms: a main path
// from the start room at the origin to an end room, then side branches off
// the path until the room budget is spent. Returns ErrTooFewRooms when
// fewer than two rooms are requested.
//
// The room collection and the random cursor live on the generator, so a
// second Generate call extends the dungeon already built rather than
// starting fresh. Callers wanting an unrelated dungeon should use a new
// Generator.
func (g *Generator) Generate(rooms int) (*Dungeon, error) {
	if rooms < 2 {
		return nil, ErrTooFewRooms
	}

	pathSize, spare := g.buildPath(rooms)
	g.growBranches(pathSize, spare)

	return g.dungeon, nil
}

// buildPath constructs the guaranteed start-to-end route. It returns the
// number of rooms in the collection once the path is done (the branch
// grower treats all of them as path rooms) and the spare room budget left
// for branches.
func (g *Generator) buildPath(rooms int) (pathSize, spare int) {
	// Path length is drawn from [1, floor(pathPortion*rooms)]: the +1
	// lifts the zero-based draw to one-based, it does not widen the
	// range. The low end of the draw can fall below the two rooms a
	// path minimally needs, hence the clamp.
	path := g.rng.Intn(int(pathPortion*float64(rooms))) + 1
	if path < 2 {
		path = 2
	}
	spare = rooms - path

	current := newRoom(lattice.Origin)
	g.dungeon.add(current)

	for step := 1; step < path; step++ {
		dir, ok := g.randomValidDirection(current)
		if !ok {
			// Walled in on all six sides. This needs the walk
			// to curl around and seal its own tip, so it only
			// shows up at sizes far beyond interactive dungeons,
			// but when it does the unbuilt steps become branch
			// budget instead of a failed generation.
			spare += path - step
			return g.dungeon.Size(), spare
		}

		next := newRoom(current.coord.Step(dir))
		current.connect(next, dir)
		g.dungeon.add(next)
		g.dungeon.connectAllAdjacent(next)
		current = next
	}

	g.dungeon.markEnd(current)
	return g.dungeon.Size(), spare
}

// growBranches spends the spare room budget on side branches. Path rooms
// are visited in path order; each branch starts fresh from its path room,
// never from another branch's tip. Branch lengths are biased to grow as
// the walk approaches the end of the path, and the final path room takes
// whatever budget remains so no spare is left over.
func (g *Generator) growBranches(pathSize, spare int) {
	for i := 0; i < pathSize && spare > 0; i++ {
		tip := g.dungeon.Room(i)

		var subPath int
		if i == pathSize-1 {
			subPath = spare
		} else {
			subPath = g.rng.Intn(branchRollBound(pathSize, i, spare)) * 2
			if subPath > spare {
				subPath = spare
			}
		}

		for ; subPath > 0; subPath-- {
			dir, ok := g.randomValidDirection(tip)
			if !ok {
				// Dead-ended branch. The shortfall is lost:
				// the outer budget is already fixed, so the
				// dungeon simply comes out with this branch
				// cut short.
				break
			}

			next := newRoom(tip.coord.Step(dir))
			tip.connect(next, dir)
			g.dungeon.add(next)
			g.dungeon.connectAllAdjacent(next)
			tip = next
			spare--
		}
	}
}

// branchRollBound returns the exclusive upper bound for the halved
// branch-length roll at path room i. The modifier starts near
// randomModifier's bias at the start of the path and grows to 1 at the
// final rooms, so leftover budget tends to form long branches near the
// end. The bound never drops below 2, which keeps degenerate one-room
// branches out, and the caller doubles the roll so branch lengths skew
// even.
//
// Kept as a pure function of (pathSize, i, spare) so the distribution is
// testable without a random source.
func branchRollBound(pathSize, i, spare int) int {
	modifier := (randomModifier / float64(pathSize-i)) / randomModifier
	bound := int(modifier * float64(spare) / 2)
	if bound < 2 {
		bound = 2
	}
	return bound
}

// randomValidDirection picks a uniformly random starting direction and
// cycles through all six exactly once, returning the first whose target
// coordinate is vacant. Reports false when the room is enclosed on all
// sides. The selector only reports a usable direction; it never places or
// links rooms.
func (g *Generator) randomValidDirection(room *Room) (lattice.Direction, bool) {
	dir := lattice.Direction(g.rng.Intn(lattice.DirectionCount))
	for i := 0; i < lattice.DirectionCount; i++ {
		if g.dungeon.RoomAt(room.coord.Step(dir)) == nil {
			return dir, true
		}
		dir = (dir + 1) % lattice.DirectionCount
	}
	return 0, false
}
