package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// centerLines pads each line so a multi-line message centers as a block.
// Widths are measured in terminal cells, not bytes.
func centerLines(text string) string {
	lines := strings.Split(text, "\n")
	widest := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > widest {
			widest = w
		}
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		pad := (widest - runewidth.StringWidth(line)) / 2
		out[i] = strings.Repeat(" ", pad) + line
	}
	return strings.Join(out, "\n")
}
