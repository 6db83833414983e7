// Package lattice provides integer 3D lattice primitives.
// These are engine-level constructs usable by any grid-based generator.
package lattice

// Direction represents one of the six axis-aligned unit steps.
// The numbering pairs each direction with its inverse as (d, 5-d):
// Up/Down span the Z axis, East/West the X axis, North/South the Y axis.
type Direction int

// Direction constants
const (
	Up    Direction = iota // +1 on the Z axis
	East                   // +1 on the X axis
	North                  // +1 on the Y axis
	South                  // -1 on the Y axis
	West                   // -1 on the X axis
	Down                   // -1 on the Z axis
)

// DirectionCount is the number of axis-aligned directions.
const DirectionCount = 6

var directionDeltas = [DirectionCount]Coord{
	Up:    {Z: 1},
	East:  {X: 1},
	North: {Y: 1},
	South: {Y: -1},
	West:  {X: -1},
	Down:  {Z: -1},
}

var directionNames = [DirectionCount]string{
	Up:    "Up",
	East:  "East",
	North: "North",
	South: "South",
	West:  "West",
	Down:  "Down",
}

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{Up, East, North, South, West, Down}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	if !d.IsValid() {
		return "Unknown"
	}
	return directionNames[d]
}

// IsValid returns true if the direction is one of the six axis-aligned directions
func (d Direction) IsValid() bool {
	return d >= Up && d <= Down
}

// Inverse returns the opposite direction. The pairs are (Up, Down),
// (East, West) and (North, South), each spanning a single axis.
func (d Direction) Inverse() Direction {
	return Down - d
}

// Delta returns the unit coordinate offset for this direction
func (d Direction) Delta() Coord {
	if !d.IsValid() {
		return Coord{}
	}
	return directionDeltas[d]
}
