package buffer

import (
	"iter"
	"sort"
	"strings"

	"github.com/iw2rmb/vex/internal/linebreak"
)

// Buffer is a mutable, line-indexed text container.
//
// Every line except the last ends in exactly one terminator. The zero value
// is not usable; construct with New or FromReader.
type Buffer struct {
	lines   [][]rune
	starts  []int // starts[i] is the rune offset of lines[i]
	length  int
	version uint64
}

func New(text string) *Buffer {
	b := &Buffer{lines: splitLines([]rune(text))}
	for _, line := range b.lines {
		b.length += len(line)
	}
	b.reindex(0)
	return b
}

func (b *Buffer) Text() string {
	var sb strings.Builder
	for _, line := range b.lines {
		sb.WriteString(string(line))
	}
	return sb.String()
}

// Version increments on every effective text mutation.
func (b *Buffer) Version() uint64 { return b.version }

// LenChars returns the document length in runes.
func (b *Buffer) LenChars() int { return b.length }

// LenLines returns the number of lines; it is never less than one.
func (b *Buffer) LenLines() int { return len(b.lines) }

// Line returns the given line including its terminator.
// Out-of-range rows yield "".
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return string(b.lines[row])
}

// LineLen returns the rune length of row including its terminator.
func (b *Buffer) LineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

// EditableLen returns the rune length of row without its terminator.
// "\r\n" counts as a single terminator.
func (b *Buffer) EditableLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	line := b.lines[row]
	return len(line) - linebreak.TrailingLenRunes(line)
}

// LineToChar returns the rune offset where row starts. Row is clamped to
// [0, LenLines()]; LenLines() maps to LenChars().
func (b *Buffer) LineToChar(row int) int {
	if row <= 0 {
		return 0
	}
	if row >= len(b.lines) {
		return b.length
	}
	return b.starts[row]
}

// CharToLine returns the row containing the rune offset off, clamped to
// [0, LenChars()]. LenChars() maps to the last line.
func (b *Buffer) CharToLine(off int) int {
	off = clamp(off, 0, b.length)
	return sort.Search(len(b.starts), func(i int) bool { return b.starts[i] > off }) - 1
}

// CharAt returns the rune at off.
func (b *Buffer) CharAt(off int) (rune, bool) {
	if off < 0 || off >= b.length {
		return 0, false
	}
	row := b.CharToLine(off)
	return b.lines[row][off-b.starts[row]], true
}

// PosToChar converts (row, col) into a rune offset. The position is clamped
// into the document first.
func (b *Buffer) PosToChar(p Pos) int {
	row := clamp(p.Row, 0, len(b.lines)-1)
	col := clamp(p.Col, 0, len(b.lines[row]))
	return b.starts[row] + col
}

// CharToPos converts a rune offset into (row, col).
func (b *Buffer) CharToPos(off int) Pos {
	off = clamp(off, 0, b.length)
	row := b.CharToLine(off)
	return Pos{Row: row, Col: off - b.starts[row]}
}

// LinesAt yields lines starting at row, terminators included. The sequence
// is finite, restartable and reads the buffer as it is when iterated.
func (b *Buffer) LinesAt(row int) iter.Seq[string] {
	return func(yield func(string) bool) {
		if row < 0 {
			row = 0
		}
		for i := row; i < len(b.lines); i++ {
			if !yield(string(b.lines[i])) {
				return
			}
		}
	}
}

func (b *Buffer) reindex(from int) {
	if cap(b.starts) >= len(b.lines) {
		b.starts = b.starts[:len(b.lines)]
	} else {
		starts := make([]int, len(b.lines))
		copy(starts, b.starts)
		b.starts = starts
	}
	if from <= 0 {
		b.starts[0] = 0
		from = 1
	}
	for i := from; i < len(b.lines); i++ {
		b.starts[i] = b.starts[i-1] + len(b.lines[i-1])
	}
}

func splitLines(text []rune) [][]rune {
	lines := make([][]rune, 0, 1)
	start := 0
	for i := 0; i < len(text); {
		if n := linebreak.Next(text, i); n > 0 {
			i += n
			lines = append(lines, append([]rune(nil), text[start:i]...))
			start = i
			continue
		}
		i++
	}
	return append(lines, append([]rune(nil), text[start:]...))
}
