package lattice

import "fmt"

// Coord is a point on the integer 3D lattice.
type Coord struct {
	X int
	Y int
	Z int
}

// Origin is the zero coordinate, conventionally the start of a layout.
var Origin = Coord{}

// Add returns the component-wise sum of two coordinates
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y, Z: c.Z + o.Z}
}

// Step returns the neighboring coordinate one unit away in the given direction
func (c Coord) Step(d Direction) Coord {
	return c.Add(d.Delta())
}

// IsOrigin returns true if this is the zero coordinate
func (c Coord) IsOrigin() bool {
	return c == Origin
}

// String returns the coordinate as "x,y,z"
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d,%d", c.X, c.Y, c.Z)
}
