package buffer

import "strconv"

// Pos is a (line, column) position. Both are 0-based rune counts; Col
// counts runes from the start of line Row.
type Pos struct {
	Row int
	Col int
}

// String renders p 1-based, the way the status ruler shows it.
func (p Pos) String() string {
	return strconv.Itoa(p.Row+1) + "," + strconv.Itoa(p.Col+1)
}

// clamp limits v to [lo, hi]; hi below lo yields lo.
func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
