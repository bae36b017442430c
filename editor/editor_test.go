package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iw2rmb/vex/buffer"
)

func newTestEditor(t *testing.T, text string, width, height int) *Editor {
	t.Helper()
	ed, err := New(Config{Width: width, Height: height})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ed.SetBuffer(buffer.New(text))
	return ed
}

func feed(ed *Editor, evs ...KeyEvent) {
	for _, ev := range evs {
		ed.HandleKey(ev)
	}
}

func feedString(ed *Editor, s string) {
	for _, r := range s {
		ed.HandleKey(Char(r))
	}
}

func TestNew_Defaults(t *testing.T) {
	ed, err := New(Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := ed.Mode(); got != ModeNormal {
		t.Fatalf("mode=%s, want NORMAL", got)
	}
	cols, rows := ed.Viewport().Size()
	if cols != 80 || rows != 23 {
		t.Fatalf("viewport size=%dx%d, want 80x23", cols, rows)
	}
	if ed.Modified() {
		t.Fatalf("fresh editor should not be modified")
	}
	if msg, _ := ed.Message(); msg != "" {
		t.Fatalf("message=%q, want empty", msg)
	}
}

func TestEditor_InsertTypingAndEscape(t *testing.T) {
	ed := newTestEditor(t, "world", 80, 24)

	feed(ed, Char('i'))
	if got := ed.Mode(); got != ModeInsert {
		t.Fatalf("mode=%s, want INSERT", got)
	}
	feedString(ed, "hello ")
	feed(ed, Key(KeyEsc))

	if got := ed.Mode(); got != ModeNormal {
		t.Fatalf("mode=%s, want NORMAL", got)
	}
	if got := ed.Viewport().Buffer().Text(); got != "hello world" {
		t.Fatalf("text=%q", got)
	}
	if got := ed.Viewport().Cursor(); got != (buffer.Pos{Row: 0, Col: 6}) {
		t.Fatalf("cursor=%v", got)
	}
	if !ed.Modified() {
		t.Fatalf("expected modified buffer")
	}

	// In Normal mode letters are commands or no-ops, never text.
	feedString(ed, "xyz")
	if got := ed.Viewport().Buffer().Text(); got != "hello world" {
		t.Fatalf("normal mode typed text: %q", got)
	}
}

func TestEditor_InsertEditingKeys(t *testing.T) {
	ed := newTestEditor(t, "ab", 80, 24)
	feed(ed, Char('i'), Key(KeyRight), Key(KeyEnter), Key(KeyTab), Key(KeyBackspace), Key(KeyDelete))

	if got := ed.Viewport().Buffer().Text(); got != "a\n" {
		t.Fatalf("text=%q, want %q", got, "a\n")
	}
	if got := ed.Viewport().Cursor(); got != (buffer.Pos{Row: 1, Col: 0}) {
		t.Fatalf("cursor=%v", got)
	}
}

func TestEditor_InsertIgnoresModifiedKeys(t *testing.T) {
	ed := newTestEditor(t, "", 80, 24)
	feed(ed,
		Char('i'),
		KeyEvent{Code: KeyChar, Rune: 'x', Mods: ModCtrl},
		KeyEvent{Code: KeyChar, Rune: 'y', Mods: ModAlt},
		KeyEvent{Code: KeyEnter, Mods: ModShift},
		Key(KeyHome),
	)
	if got := ed.Viewport().Buffer().Text(); got != "" {
		t.Fatalf("text=%q, want empty", got)
	}
	if got := ed.Mode(); got != ModeInsert {
		t.Fatalf("mode=%s, want INSERT", got)
	}
}

func TestEditor_NormalMotions(t *testing.T) {
	ed := newTestEditor(t, "abc\nde\nfghi", 80, 24)
	feed(ed, Char('l'), Char('l'), Char('j'))
	if got := ed.Viewport().Cursor(); got != (buffer.Pos{Row: 1, Col: 2}) {
		t.Fatalf("cursor=%v", got)
	}
	feed(ed, Key(KeyDown))
	if got := ed.Viewport().Cursor(); got != (buffer.Pos{Row: 2, Col: 2}) {
		t.Fatalf("sticky cursor=%v", got)
	}
	feed(ed, Char('k'), Char('k'), Char('h'))
	if got := ed.Viewport().Cursor(); got != (buffer.Pos{Row: 0, Col: 1}) {
		t.Fatalf("cursor=%v", got)
	}
}

func TestEditor_HalfPageUsesTextRows(t *testing.T) {
	// Height 11 leaves 10 text rows; half a page is 5 lines.
	ed := newTestEditor(t, numberedLines(30), 80, 11)
	feed(ed, KeyEvent{Code: KeyChar, Rune: 'd', Mods: ModCtrl})
	if got := ed.Viewport().Cursor().Row; got != 5 {
		t.Fatalf("row=%d, want 5", got)
	}
	feed(ed, KeyEvent{Code: KeyChar, Rune: 'd', Mods: ModCtrl}, KeyEvent{Code: KeyChar, Rune: 'd', Mods: ModCtrl})
	if got, scroll := ed.Viewport().Cursor().Row, ed.Viewport().Scroll().Y; got != 15 || scroll != 6 {
		t.Fatalf("row=%d scroll=%d, want 15 6", got, scroll)
	}
	feed(ed, KeyEvent{Code: KeyChar, Rune: 'u', Mods: ModCtrl})
	if got := ed.Viewport().Cursor().Row; got != 10 {
		t.Fatalf("row=%d, want 10", got)
	}
}

func TestEditor_WriteCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	ed := newTestEditor(t, "", 80, 24)

	feed(ed, Char('i'))
	feedString(ed, "hi")
	feed(ed, Key(KeyEnter))
	feedString(ed, "there")
	feed(ed, Key(KeyEsc), Char(':'))
	if got := ed.Mode(); got != ModeEx {
		t.Fatalf("mode=%s, want EX", got)
	}
	feedString(ed, "w "+path)
	feed(ed, Key(KeyEnter))

	if got := ed.Mode(); got != ModeNormal {
		t.Fatalf("mode=%s, want NORMAL", got)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if got := string(data); got != "hi\nthere" {
		t.Fatalf("file=%q", got)
	}

	msg, isErr := ed.Message()
	if isErr || !strings.HasSuffix(msg, "2L, 8B written") {
		t.Fatalf("message=%q isErr=%v", msg, isErr)
	}
	if ed.Modified() {
		t.Fatalf("buffer should be clean after write")
	}
	if got := ed.Filename(); got != path {
		t.Fatalf("filename=%q, want %q", got, path)
	}
}

func TestEditor_WriteWithoutFilename(t *testing.T) {
	ed := newTestEditor(t, "abc", 80, 24)
	feed(ed, Char(':'), Char('w'), Key(KeyEnter))

	msg, isErr := ed.Message()
	if msg != "Expected filename" || !isErr {
		t.Fatalf("message=%q isErr=%v", msg, isErr)
	}
	if got := ed.Mode(); got != ModeNormal {
		t.Fatalf("mode=%s, want NORMAL", got)
	}
	if ed.Quit() {
		t.Fatalf("error must not quit")
	}
}

func TestEditor_WriteErrorBecomesMessage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.txt")
	ed := newTestEditor(t, "abc", 80, 24)
	feed(ed, Char(':'))
	feedString(ed, "w "+path)
	feed(ed, Key(KeyEnter))

	msg, isErr := ed.Message()
	if !isErr || msg == "" {
		t.Fatalf("message=%q isErr=%v, want an error", msg, isErr)
	}
	if ed.Filename() != "" {
		t.Fatalf("failed write must not name the buffer")
	}
}

func TestEditor_UnknownCommand(t *testing.T) {
	ed := newTestEditor(t, "", 80, 24)
	feed(ed, Char(':'))
	feedString(ed, "zz top")
	feed(ed, Key(KeyEnter))

	msg, isErr := ed.Message()
	if msg != "Unknown command: `zz`" || !isErr {
		t.Fatalf("message=%q isErr=%v", msg, isErr)
	}
}

func TestEditor_EmptyCommandDoesNothing(t *testing.T) {
	ed := newTestEditor(t, "", 80, 24)
	feed(ed, Char(':'), Key(KeyEnter))
	if msg, _ := ed.Message(); msg != "" {
		t.Fatalf("message=%q, want empty", msg)
	}
	if ed.Quit() || ed.Mode() != ModeNormal {
		t.Fatalf("quit=%v mode=%s", ed.Quit(), ed.Mode())
	}
}

func TestEditor_QuitCommand(t *testing.T) {
	ed := newTestEditor(t, "", 80, 24)
	feed(ed, Char(':'), Char('q'))
	if ed.Quit() {
		t.Fatalf("quit before enter")
	}
	feed(ed, Key(KeyEnter))
	if !ed.Quit() {
		t.Fatalf("expected quit")
	}
}

func TestEditor_MessageLifetime(t *testing.T) {
	ed := newTestEditor(t, "abc", 80, 24)
	feed(ed, Char(':'))
	feedString(ed, "nope")
	feed(ed, Key(KeyEnter))
	if msg, _ := ed.Message(); msg == "" {
		t.Fatalf("expected message")
	}

	// Motions and inserts keep the message.
	feed(ed, Char('l'), Char('i'), Char('x'), Key(KeyEsc))
	if msg, _ := ed.Message(); msg != "Unknown command: `nope`" {
		t.Fatalf("message=%q", msg)
	}

	// Entering Ex mode clears it.
	feed(ed, Char(':'))
	if msg, _ := ed.Message(); msg != "" {
		t.Fatalf("message=%q, want cleared", msg)
	}
}

func TestEditor_ExAbort(t *testing.T) {
	ed := newTestEditor(t, "", 80, 24)

	feed(ed, Char(':'), Key(KeyBackspace))
	if got := ed.Mode(); got != ModeNormal {
		t.Fatalf("backspace on empty: mode=%s, want NORMAL", got)
	}

	feed(ed, Char(':'), Char('w'), Key(KeyBackspace))
	if got := ed.Mode(); got != ModeEx {
		t.Fatalf("backspace on text: mode=%s, want EX", got)
	}
	feed(ed, Key(KeyBackspace))
	if got := ed.Mode(); got != ModeNormal {
		t.Fatalf("second backspace: mode=%s, want NORMAL", got)
	}

	feed(ed, Char(':'), Char('q'), Key(KeyEsc))
	if got := ed.Mode(); got != ModeNormal || ed.Quit() {
		t.Fatalf("esc: mode=%s quit=%v", got, ed.Quit())
	}

	// A fresh command line starts empty.
	feed(ed, Char(':'))
	if got := ed.ExLine().Text(); got != "" {
		t.Fatalf("ex text=%q, want empty", got)
	}
}

func TestEditor_ExLineKeysDoNotMoveCursor(t *testing.T) {
	ed := newTestEditor(t, "abc\ndef", 80, 24)
	feed(ed, Char(':'), Char('j'), Char('l'), Key(KeyLeft))
	if got := ed.Viewport().Cursor(); got != (buffer.Pos{}) {
		t.Fatalf("cursor=%v, want origin", got)
	}
	if got := ed.ExLine().Text(); got != "jl" {
		t.Fatalf("ex text=%q", got)
	}
}

func TestEditor_OperatorModeIsInert(t *testing.T) {
	ed := newTestEditor(t, "abc", 80, 24)
	ed.mode = ModeOperator
	feed(ed, Char('l'), Char('i'), Char(':'), Key(KeyEsc), Key(KeyEnter))
	if got := ed.Mode(); got != ModeOperator {
		t.Fatalf("mode=%s, want OPERATOR", got)
	}
	if got := ed.Viewport().Cursor(); got != (buffer.Pos{}) {
		t.Fatalf("cursor=%v", got)
	}
	if got := ed.Viewport().Buffer().Text(); got != "abc" {
		t.Fatalf("text=%q", got)
	}
}

func TestEditor_Open(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(path, []byte("one\r\ntwo\n"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	ed := newTestEditor(t, "", 80, 24)
	if err := ed.Open(path); err != nil {
		t.Fatalf("Open: %v", err)
	}
	b := ed.Viewport().Buffer()
	if b.LenLines() != 3 || b.Text() != "one\r\ntwo\n" {
		t.Fatalf("buffer lines=%d text=%q", b.LenLines(), b.Text())
	}
	if got := b.EditableLen(0); got != 3 {
		t.Fatalf("editable len of CRLF line=%d, want 3", got)
	}
	if msg, isErr := ed.Message(); isErr || !strings.HasSuffix(msg, "2L, 9B") {
		t.Fatalf("message=%q isErr=%v", msg, isErr)
	}
	if ed.Filename() != path || ed.Modified() {
		t.Fatalf("filename=%q modified=%v", ed.Filename(), ed.Modified())
	}

	// :w without a name still requires one, even for a named buffer.
	feed(ed, Char(':'), Char('w'), Key(KeyEnter))
	if msg, _ := ed.Message(); msg != "Expected filename" {
		t.Fatalf("message=%q", msg)
	}
}

func TestEditor_OpenMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")
	ed := newTestEditor(t, "old", 80, 24)
	if err := ed.Open(path); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if got := ed.Viewport().Buffer().Text(); got != "" {
		t.Fatalf("text=%q, want empty", got)
	}
	if msg, _ := ed.Message(); !strings.HasSuffix(msg, "[New]") {
		t.Fatalf("message=%q", msg)
	}
	if ed.Filename() != path {
		t.Fatalf("filename=%q", ed.Filename())
	}
}

func TestEditor_OpenDirectoryFails(t *testing.T) {
	ed := newTestEditor(t, "keep", 80, 24)
	if err := ed.Open(t.TempDir()); err == nil {
		t.Fatalf("expected error opening a directory")
	}
	if msg, isErr := ed.Message(); !isErr || msg == "" {
		t.Fatalf("message=%q isErr=%v", msg, isErr)
	}
	if got := ed.Viewport().Buffer().Text(); got != "keep" {
		t.Fatalf("buffer replaced: %q", got)
	}
}

func TestEditor_ResizeReservesStatusLine(t *testing.T) {
	ed := newTestEditor(t, numberedLines(10), 80, 24)
	feed(ed, Char('j'), Char('j'), Char('j'))
	ed.Resize(40, 3)

	cols, rows := ed.Viewport().Size()
	if cols != 40 || rows != 2 {
		t.Fatalf("size=%dx%d, want 40x2", cols, rows)
	}
	if _, y := ed.Viewport().RelCursorPos(); y != 1 {
		t.Fatalf("rel y=%d, want 1", y)
	}

	ed.Resize(0, 0)
	if cols, rows := ed.Viewport().Size(); cols != 1 || rows != 1 {
		t.Fatalf("size=%dx%d, want 1x1", cols, rows)
	}
}

func TestLineCount_IgnoresEmptyLineAfterFinalTerminator(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{text: "", want: 0},
		{text: "a", want: 1},
		{text: "a\n", want: 1},
		{text: "a\nb", want: 2},
		{text: "a\r\nb\r\n", want: 2},
		{text: "\n", want: 1},
		{text: "\n\n", want: 2},
	}
	for _, tc := range cases {
		if got := lineCount(buffer.New(tc.text)); got != tc.want {
			t.Fatalf("lineCount(%q)=%d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestEditor_WriteMessageCountsLinesLikeVim(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	ed := newTestEditor(t, "a\n", 80, 24)
	if err := ed.Write(path); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if msg, _ := ed.Message(); !strings.HasSuffix(msg, `" 1L, 2B written`) {
		t.Fatalf("message=%q", msg)
	}
}
