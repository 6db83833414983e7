package lattice

import "testing"

func TestAllDirections_CountAndValidity(t *testing.T) {
	dirs := AllDirections()
	if len(dirs) != DirectionCount {
		t.Fatalf("AllDirections returned %d directions, want %d", len(dirs), DirectionCount)
	}
	seen := map[Direction]bool{}
	for _, d := range dirs {
		if !d.IsValid() {
			t.Errorf("direction %d is not valid", d)
		}
		if seen[d] {
			t.Errorf("direction %v appears twice", d)
		}
		seen[d] = true
	}
}

func TestDirection_InversePairing(t *testing.T) {
	// Directions pair as (0,5), (1,4), (2,3), each pair spanning one axis.
	pairs := map[Direction]Direction{
		Up:    Down,
		East:  West,
		North: South,
	}
	for d, want := range pairs {
		if d.Inverse() != want {
			t.Errorf("%v.Inverse() = %v, want %v", d, d.Inverse(), want)
		}
		if want.Inverse() != d {
			t.Errorf("%v.Inverse() = %v, want %v", want, want.Inverse(), d)
		}
	}
	for _, d := range AllDirections() {
		sum := d.Delta().Add(d.Inverse().Delta())
		if sum != Origin {
			t.Errorf("%v delta + %v delta = %v, want origin", d, d.Inverse(), sum)
		}
	}
}

func TestDirection_DeltaSingleAxisUnit(t *testing.T) {
	for _, d := range AllDirections() {
		delta := d.Delta()
		nonZero := 0
		for _, v := range []int{delta.X, delta.Y, delta.Z} {
			if v == 1 || v == -1 {
				nonZero++
			} else if v != 0 {
				t.Errorf("%v delta component %d is not a unit step", d, v)
			}
		}
		if nonZero != 1 {
			t.Errorf("%v delta %v spans %d axes, want exactly 1", d, delta, nonZero)
		}
	}
}

func TestDirection_InvalidValues(t *testing.T) {
	for _, d := range []Direction{-1, Direction(DirectionCount), 42} {
		if d.IsValid() {
			t.Errorf("direction %d should not be valid", d)
		}
		if d.String() != "Unknown" {
			t.Errorf("direction %d String() = %q, want Unknown", d, d.String())
		}
		if d.Delta() != Origin {
			t.Errorf("direction %d Delta() = %v, want zero", d, d.Delta())
		}
	}
}

func TestCoord_StepRoundTrip(t *testing.T) {
	c := Coord{X: 3, Y: -2, Z: 7}
	for _, d := range AllDirections() {
		stepped := c.Step(d)
		if stepped == c {
			t.Errorf("Step(%v) did not move from %v", d, c)
		}
		if back := stepped.Step(d.Inverse()); back != c {
			t.Errorf("Step(%v) then Step(%v) = %v, want %v", d, d.Inverse(), back, c)
		}
	}
}

func TestCoord_OriginAndString(t *testing.T) {
	if !Origin.IsOrigin() {
		t.Error("Origin.IsOrigin() = false")
	}
	if (Coord{X: 1}).IsOrigin() {
		t.Error("Coord{X:1}.IsOrigin() = true")
	}
	if got := (Coord{X: 1, Y: -2, Z: 3}).String(); got != "1,-2,3" {
		t.Errorf("String() = %q, want \"1,-2,3\"", got)
	}
}
