package editor

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// View paints the visible lines, '~' for rows past the end of the buffer,
// and the status line. The cursor is drawn as a styled cell on its line,
// or on the command line in Ex mode.
func (m Model) View() string {
	v := m.ed.Viewport()
	cols, rows := v.Size()
	cur := v.Cursor()
	_, relY := v.RelCursorPos()
	showCursor := m.ed.Mode() != ModeEx

	lines := make([]string, 0, rows)
	for line := range v.VisibleLines() {
		lines = append(lines, line)
	}
	left := v.Scroll().X
	if relY >= 0 && relY < len(lines) {
		left = m.leftEdge(lines[relY], left, cols, cur.Col)
	}

	out := make([]string, 0, rows+1)
	for i, line := range lines {
		out = append(out, m.renderLine(line, left, cols, cur.Col, showCursor && i == relY))
	}
	for len(out) < rows {
		out = append(out, m.ed.cfg.Style.Tilde.Render("~"))
	}
	out = append(out, m.statusLine(m.ed.cfg.Width))
	return strings.Join(out, "\n")
}

// leftEdge returns the first rune column to paint. The viewport scrolls by
// runes, so tabs and wide runes before the cursor can push its cell past
// width; the edge then moves right until the cursor cell fits.
func (m Model) leftEdge(line string, scrollX, width, cursorCol int) int {
	runes := []rune(lineText(line))
	left := scrollX
	for left < cursorCol && m.cursorCellEnd(runes, left, cursorCol) > width {
		left++
	}
	return left
}

// cursorCellEnd is the cell just past the cursor when painting from left.
func (m Model) cursorCellEnd(runes []rune, left, cursorCol int) int {
	cells := 0
	for col := left; col < cursorCol && col < len(runes); col++ {
		_, w := cellText(runes[col], cells, m.ed.cfg.TabWidth)
		cells += w
	}
	if cursorCol >= len(runes) {
		return cells + 1
	}
	_, w := cellText(runes[cursorCol], cells, m.ed.cfg.TabWidth)
	return cells + w
}

// renderLine paints the runes of line from column left, clipped to width
// cells. Tab stops are measured from the left edge of the screen.
func (m Model) renderLine(line string, left, width, cursorCol int, showCursor bool) string {
	st := m.ed.cfg.Style
	runes := []rune(lineText(line))

	var sb, run strings.Builder
	flush := func() {
		if run.Len() > 0 {
			sb.WriteString(st.Text.Render(run.String()))
			run.Reset()
		}
	}

	cells := 0
	for col := left; col < len(runes); col++ {
		isCursor := showCursor && col == cursorCol
		text, w := cellText(runes[col], cells, m.ed.cfg.TabWidth)
		if cells+w > width {
			// A rune wider than the whole screen still shows the cursor.
			if isCursor && cells == 0 {
				sb.WriteString(st.Cursor.Render(" "))
			}
			break
		}
		if isCursor {
			flush()
			sb.WriteString(st.Cursor.Render(text))
		} else {
			run.WriteString(text)
		}
		cells += w
	}
	flush()

	if showCursor && cursorCol >= len(runes) && cells < width {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func (m Model) statusLine(width int) string {
	st := m.ed.cfg.Style
	if m.ed.Mode() == ModeEx {
		return st.StatusBar.Render(m.exLine(width))
	}

	left, isErr := m.ed.Message()
	leftStyle := st.Message
	if isErr {
		leftStyle = st.Error
	}
	if left == "" {
		left = m.fileLabel()
		if m.ed.Mode() == ModeInsert {
			left = "-- INSERT --"
		}
	}

	ruler := m.ed.Viewport().Cursor().String()
	rulerW := runewidth.StringWidth(ruler)
	if rulerW+1 > width {
		return st.StatusBar.Render(runewidth.Truncate(left, width, "…"))
	}

	left = runewidth.Truncate(left, width-rulerW-1, "…")
	gap := width - runewidth.StringWidth(left) - rulerW
	return st.StatusBar.Render(leftStyle.Render(left) + strings.Repeat(" ", gap) + ruler)
}

// exLine renders ":" plus the command text, scrolled so the cursor cell
// stays within width.
func (m Model) exLine(width int) string {
	st := m.ed.cfg.Style
	ex := m.ed.ExLine()
	runes := append([]rune{':'}, []rune(ex.Text())...)
	cursor := ex.Cursor() + 1

	start := 0
	if cursor >= width {
		start = cursor - width + 1
	}

	var sb strings.Builder
	cells := 0
	for i := start; i < len(runes); i++ {
		text, w := cellText(runes[i], cells, m.ed.cfg.TabWidth)
		if cells+w > width {
			break
		}
		if i == cursor {
			sb.WriteString(st.Cursor.Render(text))
		} else {
			sb.WriteString(text)
		}
		cells += w
	}
	if cursor >= len(runes) && cells < width {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func (m Model) fileLabel() string {
	name := m.ed.Filename()
	if name == "" {
		name = "[No Name]"
	}
	if m.ed.Modified() {
		name += " [+]"
	}
	return name
}
