// Package atlas renders generated dungeon topology for inspection: ASCII
// views of each z-layer and a full text dump. It consumes the room sequence
// the generator returns and never feeds back into generation.
package atlas

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"golang.org/x/term"

	"deepdelve/pkg/dungeon"
)

// Cell symbols for layer views
const (
	IconVacant   = "·"
	IconRoom     = "o"
	IconJunction = "+" // room with three or more connections
	IconStart    = "S"
	IconEnd      = "E"
)

// Fallback width when the terminal size cannot be determined
const defaultTerminalWidth = 80

var (
	colorStart    = color.Style{color.FgGreen, color.OpBold}
	colorEnd      = color.Style{color.FgRed, color.OpBold}
	colorJunction = color.Style{color.FgYellow}
	colorRoom     = color.Style{color.FgGray}
)

// Layer is the ASCII view of a single z-slice of a dungeon, cropped to the
// dungeon's bounds. Lines run north to south; columns run west to east.
type Layer struct {
	Z     int
	Lines []string
}

// roomSymbol returns the symbol for a room: start and end are marked, and a
// junction symbol distinguishes rooms where branches meet or rejoin.
func roomSymbol(room *dungeon.Room) string {
	switch {
	case room.IsStart():
		return IconStart
	case room.IsEnd():
		return IconEnd
	case room.Degree() >= 3:
		return IconJunction
	default:
		return IconRoom
	}
}

func colorize(symbol string) string {
	switch symbol {
	case IconStart:
		return colorStart.Sprint(symbol)
	case IconEnd:
		return colorEnd.Sprint(symbol)
	case IconJunction:
		return colorJunction.Sprint(symbol)
	case IconRoom:
		return colorRoom.Sprint(symbol)
	default:
		return symbol
	}
}

// Layers returns one view per occupied z-layer, lowest layer first.
// Layers with no rooms are skipped.
func Layers(d *dungeon.Dungeon) []Layer {
	if d.Size() == 0 {
		return nil
	}

	min, max := d.Bounds()
	var layers []Layer
	for z := min.Z; z <= max.Z; z++ {
		occupied := false
		var lines []string
		// North at the top: iterate Y from max down to min.
		for y := max.Y; y >= min.Y; y-- {
			var row strings.Builder
			for x := min.X; x <= max.X; x++ {
				room := d.FindRoom(x, y, z)
				if room == nil {
					row.WriteString(IconVacant)
					continue
				}
				occupied = true
				row.WriteString(roomSymbol(room))
			}
			lines = append(lines, row.String())
		}
		if occupied {
			layers = append(layers, Layer{Z: z, Lines: lines})
		}
	}
	return layers
}

// FprintLayers writes every occupied layer view to w, one labelled block per
// z-slice. With colored set, symbols are styled for terminals; lines wider
// than the terminal are truncated so layer maps never wrap.
func FprintLayers(w io.Writer, d *dungeon.Dungeon, colored bool) {
	width := terminalWidth()
	for _, layer := range Layers(d) {
		fmt.Fprintf(w, "%s %d\n", gotext.Get("Layer z"), layer.Z)
		for _, line := range layer.Lines {
			symbols := strings.Split(line, "")
			if len(symbols) > width {
				symbols = symbols[:width]
			}
			if colored {
				for i, s := range symbols {
					symbols[i] = colorize(s)
				}
			}
			fmt.Fprintln(w, strings.Join(symbols, ""))
		}
		fmt.Fprintln(w)
	}
}

// terminalWidth returns the current terminal width, falling back to the
// default when stdout is not a terminal.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultTerminalWidth
	}
	return width
}
