package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Composite draws layer over base with its top-left corner at column x and
// row y. Base lines are padded as needed; styled text on either side of the
// layer is preserved.
func Composite(base, layer string, x, y int) string {
	x, y = max(x, 0), max(y, 0)
	baseLines := strings.Split(base, "\n")
	layerLines := strings.Split(layer, "\n")
	for len(baseLines) < y+len(layerLines) {
		baseLines = append(baseLines, "")
	}

	for i, line := range layerLines {
		row := baseLines[y+i]
		if w := ansi.StringWidth(row); w < x {
			row += strings.Repeat(" ", x-w)
		}
		left := ansi.Truncate(row, x, "")
		right := ansi.TruncateLeft(row, x+ansi.StringWidth(line), "")
		baseLines[y+i] = left + line + right
	}
	return strings.Join(baseLines, "\n")
}
