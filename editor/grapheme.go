package editor

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// cellText returns how r is painted when it starts at terminal cell
// visualCol, and how many cells it takes. Tabs expand to the next tab stop;
// control characters show as '?'.
func cellText(r rune, visualCol, tabWidth int) (string, int) {
	if r == '\t' {
		w := tabAdvance(visualCol, tabWidth)
		return strings.Repeat(" ", w), w
	}
	if unicode.IsControl(r) {
		return "?", 1
	}
	s := string(r)
	return s, graphemeCellWidth(s)
}

func graphemeCellWidth(text string) int {
	w := runewidth.StringWidth(text)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		fallback := uniseg.StringWidth(text)
		if fallback > w {
			w = fallback
		}
	}
	return w
}

func tabAdvance(visualCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 8
	}
	return tabWidth - visualCol%tabWidth
}
