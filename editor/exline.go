package editor

// ExResultKind reports what a key did to the command line.
type ExResultKind uint8

const (
	ExEditing ExResultKind = iota
	ExAborted
	ExFinished
)

// ExResult is returned by ExLine.HandleKey. Text is set for ExFinished.
type ExResult struct {
	Kind ExResultKind
	Text string
}

// ExLine is a single-line editor for colon commands.
//
// Invariant: 0 <= cursor <= len(text). ExFinished and ExAborted leave the
// line cleared.
type ExLine struct {
	text   []rune
	cursor int
}

func (e *ExLine) Text() string { return string(e.text) }

func (e *ExLine) Cursor() int { return e.cursor }

func (e *ExLine) Len() int { return len(e.text) }

func (e *ExLine) Clear() {
	e.text = e.text[:0]
	e.cursor = 0
}

// HandleKey applies one key event. Keys with modifiers and keys the line
// does not understand are ignored.
func (e *ExLine) HandleKey(ev KeyEvent) ExResult {
	if ev.Mods != 0 {
		return ExResult{Kind: ExEditing}
	}

	switch ev.Code {
	case KeyChar:
		e.text = append(e.text, 0)
		copy(e.text[e.cursor+1:], e.text[e.cursor:])
		e.text[e.cursor] = ev.Rune
		e.cursor++
	case KeyEnter:
		text := string(e.text)
		e.Clear()
		return ExResult{Kind: ExFinished, Text: text}
	case KeyBackspace:
		if len(e.text) == 0 {
			return ExResult{Kind: ExAborted}
		}
		if e.cursor > 0 {
			e.text = append(e.text[:e.cursor-1], e.text[e.cursor:]...)
			e.cursor--
		}
	case KeyDelete:
		if e.cursor < len(e.text) {
			e.text = append(e.text[:e.cursor], e.text[e.cursor+1:]...)
		}
	case KeyLeft:
		if e.cursor > 0 {
			e.cursor--
		}
	case KeyRight:
		if e.cursor < len(e.text) {
			e.cursor++
		}
	case KeyEsc:
		e.Clear()
		return ExResult{Kind: ExAborted}
	}
	return ExResult{Kind: ExEditing}
}
