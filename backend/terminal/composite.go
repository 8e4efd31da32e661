package terminal

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlayAt splices the overlay block into the base view at cell (x, y),
// preserving ANSI styling on both sides of the cut. Lines falling outside
// the base are dropped rather than extending it.
func overlayAt(base, overlay string, x, y int) string {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	baseLines := strings.Split(base, "\n")
	overLines := strings.Split(overlay, "\n")

	for i, over := range overLines {
		row := y + i
		if row >= len(baseLines) {
			break
		}
		baseLines[row] = spliceLine(baseLines[row], over, x)
	}
	return strings.Join(baseLines, "\n")
}

// spliceLine replaces the cells of line starting at column x with the
// overlay segment, keeping the prefix and any suffix past the segment.
func spliceLine(line, over string, x int) string {
	lineW := ansi.StringWidth(line)
	overW := ansi.StringWidth(over)

	left := ansi.Truncate(line, x, "")
	if pad := x - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}

	right := ""
	if end := x + overW; end < lineW {
		right = ansi.TruncateLeft(line, end, "")
	}
	return left + over + right
}
