package atlas

import (
	"fmt"
	"os"
	"path/filepath"

	"deepdelve/pkg/dungeon"
	"deepdelve/pkg/engine/lattice"
)

// DumpToFile writes a full debug dump of the dungeon to the given path:
// metadata, legend, per-layer maps, and a room table with every connection.
// Format is human- and LLM-readable (sections, key: value, consistent
// structure). Returns the absolute path written.
func DumpToFile(d *dungeon.Dungeon, path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	min, max := d.Bounds()

	// --- Metadata ---
	fmt.Fprintln(f, "=== DUNGEON DUMP (topology, layers, rooms) ===")
	fmt.Fprintln(f, "")
	fmt.Fprintln(f, "--- Metadata ---")
	fmt.Fprintf(f, "room_count: %d\n", d.Size())
	fmt.Fprintf(f, "reachable_from_start: %d\n", d.ReachableFromStart())
	fmt.Fprintf(f, "bounds_min: %s\n", min)
	fmt.Fprintf(f, "bounds_max: %s\n", max)
	fmt.Fprintf(f, "coordinate_system: x,y,z (0-based, start room at origin; +z up, +x east, +y north)\n")
	if start := d.Start(); start != nil {
		fmt.Fprintf(f, "start_room: %s\n", start.Coord())
	} else {
		fmt.Fprintln(f, "start_room: none")
	}
	if end := d.End(); end != nil {
		fmt.Fprintf(f, "end_room: %s\n", end.Coord())
	} else {
		fmt.Fprintln(f, "end_room: none")
	}
	if msg := d.Validate(); msg != "" {
		fmt.Fprintf(f, "validation: %s\n", msg)
	} else {
		fmt.Fprintln(f, "validation: ok")
	}
	fmt.Fprintln(f, "")

	// --- Legend ---
	fmt.Fprintln(f, "--- Legend (cell symbols) ---")
	fmt.Fprintf(f, "%s = vacant  %s = room  %s = junction (3+ connections)  %s = start  %s = end\n",
		IconVacant, IconRoom, IconJunction, IconStart, IconEnd)
	fmt.Fprintln(f, "")

	// --- Layer maps ---
	for _, layer := range Layers(d) {
		fmt.Fprintf(f, "--- Layer z=%d ---\n", layer.Z)
		for _, line := range layer.Lines {
			fmt.Fprintln(f, line)
		}
		fmt.Fprintln(f, "")
	}

	// --- Room table ---
	fmt.Fprintln(f, "--- Rooms (creation order, with connections) ---")
	d.ForEachRoom(func(i int, room *dungeon.Room) {
		fmt.Fprintf(f, "room %d: at %s", i, room.Coord())
		if room.IsStart() {
			fmt.Fprint(f, " [start]")
		}
		if room.IsEnd() {
			fmt.Fprint(f, " [end]")
		}
		fmt.Fprintln(f, "")
		for _, dir := range lattice.AllDirections() {
			if linked := room.Connection(dir); linked != nil {
				fmt.Fprintf(f, "  %s -> %s\n", dir, linked.Coord())
			}
		}
	})

	return absPath, nil
}
