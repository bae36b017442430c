package editor

import (
	"iter"

	"github.com/iw2rmb/vex/buffer"
	"github.com/iw2rmb/vex/internal/linebreak"
)

// Point is a screen-space offset in (columns, rows).
type Point struct {
	X int
	Y int
}

// Viewport owns a buffer and the scroll window over it.
//
// Invariants, kept by every method:
//   - 0 <= cursor.Row < buffer.LenLines()
//   - 0 <= cursor.Col <= buffer.EditableLen(cursor.Row)
//   - RelCursorPos() lies in [0, cols) x [0, rows)
//
// The sticky column is what vertical motion restores the cursor column
// from; only horizontal motion and edits change it.
type Viewport struct {
	buf    *buffer.Buffer
	cols   int
	rows   int
	scroll Point
	cursor buffer.Pos
	sticky int
}

// NewViewport returns a viewport of the given size over an empty buffer.
// Sizes below one are raised to one.
func NewViewport(cols, rows int) *Viewport {
	return &Viewport{
		buf:  buffer.New(""),
		cols: max(cols, 1),
		rows: max(rows, 1),
	}
}

func (v *Viewport) Buffer() *buffer.Buffer { return v.buf }

func (v *Viewport) Size() (cols, rows int) { return v.cols, v.rows }

// Cursor returns the cursor as (Row=line, Col=column).
func (v *Viewport) Cursor() buffer.Pos { return v.cursor }

func (v *Viewport) Scroll() Point { return v.scroll }

func (v *Viewport) Sticky() int { return v.sticky }

// SetBuffer replaces the buffer and resets scroll, cursor and sticky column
// to the origin. A nil buffer is replaced by an empty one.
func (v *Viewport) SetBuffer(b *buffer.Buffer) {
	if b == nil {
		b = buffer.New("")
	}
	v.buf = b
	v.scroll = Point{}
	v.cursor = buffer.Pos{}
	v.sticky = 0
}

// Resize changes the screen size. The cursor never moves; when it would
// fall outside the new size the scroll offset advances by exactly the
// deficit.
func (v *Viewport) Resize(cols, rows int) {
	cols, rows = max(cols, 1), max(rows, 1)
	relX, relY := v.RelCursorPos()
	if relY >= rows {
		v.scroll.Y += relY - rows + 1
	}
	if relX >= cols {
		v.scroll.X += relX - cols + 1
	}
	v.cols, v.rows = cols, rows
}

// MoveCursorDown moves n lines down, saturating at the last line.
func (v *Viewport) MoveCursorDown(n int) {
	n = max(n, 0)
	last := v.buf.LenLines() - 1
	target := last
	if n < last-v.cursor.Row {
		target = v.cursor.Row + n
	}

	if bottom := v.scroll.Y + v.rows; target >= bottom {
		v.scroll.Y += target - bottom + 1
	}
	v.cursor = buffer.Pos{Row: target, Col: v.sticky}
	v.clampCol()
	v.followCol()
}

// MoveCursorUp moves n lines up, saturating at the first line.
func (v *Viewport) MoveCursorUp(n int) {
	n = max(n, 0)
	target := 0
	if n < v.cursor.Row {
		target = v.cursor.Row - n
	}

	if target < v.scroll.Y {
		v.scroll.Y = target
	}
	v.cursor = buffer.Pos{Row: target, Col: v.sticky}
	v.clampCol()
	v.followCol()
}

// MoveCursorLeft moves n columns left within the current line.
func (v *Viewport) MoveCursorLeft(n int) {
	n = max(n, 0)
	if n > v.cursor.Col {
		v.cursor.Col = 0
	} else {
		v.cursor.Col -= n
	}
	v.sticky = v.cursor.Col
	v.followCol()
}

// MoveCursorRight moves n columns right within the current line.
func (v *Viewport) MoveCursorRight(n int) {
	n = max(n, 0)
	limit := v.maxCol(v.cursor.Row)
	if n >= limit-v.cursor.Col {
		v.cursor.Col = limit
	} else {
		v.cursor.Col += n
	}
	v.sticky = v.cursor.Col
	v.followCol()
}

// InsertChar inserts r at the cursor and advances past it. Inserting a
// terminator behaves like InsertEnter.
func (v *Viewport) InsertChar(r rune) {
	off := v.cursorOffset()
	v.buf.InsertRune(off, r)
	v.placeCursor(off + 1)
}

// InsertEnter splits the line at the cursor and moves to the start of the
// new line.
func (v *Viewport) InsertEnter() {
	v.InsertChar('\n')
}

// Backspace removes the character before the cursor, joining with the
// previous line when that character is a terminator. It is a no-op at the
// buffer origin. A "\r\n" pair is removed as one terminator.
func (v *Viewport) Backspace() {
	if v.cursor == (buffer.Pos{}) {
		return
	}
	off := v.cursorOffset()
	start := off - 1
	if v.isCRLF(start - 1) {
		start--
	}
	v.buf.Remove(start, off)
	v.placeCursor(start)
}

// Delete removes the character under the cursor, if any. A "\r\n" pair is
// removed as one terminator.
func (v *Viewport) Delete() {
	off := v.cursorOffset()
	if off >= v.buf.LenChars() {
		return
	}
	end := off + 1
	if v.isCRLF(off) {
		end++
	}
	v.buf.Remove(off, end)
	v.placeCursor(off)
}

// VisibleLines yields at most rows lines starting at the scroll offset.
func (v *Viewport) VisibleLines() iter.Seq[string] {
	return v.VisibleLinesFrom(0)
}

// VisibleLinesFrom yields at most rows-row lines starting row lines below
// the scroll offset.
func (v *Viewport) VisibleLinesFrom(row int) iter.Seq[string] {
	row = max(row, 0)
	limit := v.rows - row
	start := v.scroll.Y + row
	return func(yield func(string) bool) {
		if limit <= 0 {
			return
		}
		n := 0
		for line := range v.buf.LinesAt(start) {
			if !yield(line) {
				return
			}
			n++
			if n == limit {
				return
			}
		}
	}
}

// RelCursorPos returns the cursor relative to the scroll offset.
func (v *Viewport) RelCursorPos() (x, y int) {
	return v.cursor.Col - v.scroll.X, v.cursor.Row - v.scroll.Y
}

func (v *Viewport) cursorOffset() int {
	return v.buf.LineToChar(v.cursor.Row) + v.cursor.Col
}

func (v *Viewport) isCRLF(off int) bool {
	r0, ok0 := v.buf.CharAt(off)
	r1, ok1 := v.buf.CharAt(off + 1)
	return ok0 && ok1 && r0 == '\r' && r1 == '\n'
}

// maxCol is the editable length of row: its rune count without the
// trailing terminator, when there is one.
func (v *Viewport) maxCol(row int) int {
	return v.buf.EditableLen(row)
}

func (v *Viewport) clampCol() {
	v.cursor.Col = min(max(v.cursor.Col, 0), v.maxCol(v.cursor.Row))
}

// placeCursor moves the cursor to the rune offset off after an edit. Row
// changes go through vertical motion so the scroll window follows.
func (v *Viewport) placeCursor(off int) {
	p := v.buf.CharToPos(off)
	switch {
	case p.Row > v.cursor.Row:
		v.MoveCursorDown(p.Row - v.cursor.Row)
	case p.Row < v.cursor.Row:
		v.MoveCursorUp(v.cursor.Row - p.Row)
	}
	v.cursor.Col = p.Col
	v.clampCol()
	v.sticky = v.cursor.Col
	v.followCol()
}

// followCol moves the horizontal scroll offset by the minimum amount that
// keeps the cursor column on screen.
func (v *Viewport) followCol() {
	if v.cursor.Col < v.scroll.X {
		v.scroll.X = v.cursor.Col
		return
	}
	if v.cursor.Col >= v.scroll.X+v.cols {
		v.scroll.X = v.cursor.Col - v.cols + 1
	}
}

// lineText strips the terminator from a line yielded by VisibleLines.
func lineText(line string) string {
	return linebreak.TrimTrailing(line)
}
