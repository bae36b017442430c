package editor

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"

	"github.com/iw2rmb/vex/buffer"
)

// transitions is the mode table: (current mode, action name) -> next mode.
// Leaving Ex mode is driven by ExLine results, not by bindings.
var transitions = map[Mode]map[string]Mode{
	ModeNormal: {
		actionEnterInsert: ModeInsert,
		actionEnterEx:     ModeEx,
	},
	ModeInsert: {
		actionLeaveInsert: ModeNormal,
	},
}

// Editor owns the viewport, the mode, the dispatcher and the command line,
// and turns key events into edits and mode changes.
//
// Nothing here terminates the process: I/O and command errors become the
// status message, and only the quit command sets Quit.
type Editor struct {
	cfg  Config
	log  *log.Logger
	view *Viewport
	disp *Dispatcher
	ex   ExLine
	mode Mode

	filename     string
	savedVersion uint64

	message string
	isError bool
	quit    bool
}

func New(cfg Config) (*Editor, error) {
	if cfg.Width <= 0 {
		cfg.Width = 80
	}
	if cfg.Height <= 0 {
		cfg.Height = 24
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = 8
	}
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	disp, err := NewDispatcher(cfg.KeyMap)
	if err != nil {
		return nil, fmt.Errorf("build key bindings: %w", err)
	}

	e := &Editor{
		cfg:  cfg,
		log:  logger,
		disp: disp,
		mode: ModeNormal,
	}
	e.view = NewViewport(cfg.Width, textRows(cfg.Height))
	return e, nil
}

// textRows is the viewport height for a screen height; the bottom row is
// the status line.
func textRows(height int) int {
	return max(height-1, 1)
}

func (e *Editor) Viewport() *Viewport { return e.view }

func (e *Editor) ExLine() *ExLine { return &e.ex }

func (e *Editor) Mode() Mode { return e.mode }

func (e *Editor) Filename() string { return e.filename }

// Modified reports whether the buffer changed since it was opened or last
// written.
func (e *Editor) Modified() bool { return e.view.Buffer().Version() != e.savedVersion }

// Message returns the status message and whether it reports an error.
func (e *Editor) Message() (string, bool) { return e.message, e.isError }

// Quit reports whether the quit command ran.
func (e *Editor) Quit() bool { return e.quit }

// Resize applies a new screen size.
func (e *Editor) Resize(width, height int) {
	e.cfg.Width, e.cfg.Height = max(width, 1), max(height, 1)
	e.view.Resize(e.cfg.Width, textRows(e.cfg.Height))
}

// SetBuffer replaces the document without binding it to a file.
func (e *Editor) SetBuffer(b *buffer.Buffer) {
	e.view.SetBuffer(b)
	e.savedVersion = e.view.Buffer().Version()
}

// Open loads path into the viewport. A missing file opens an empty buffer
// bound to path. Any other error keeps the current buffer; it is returned
// and also becomes the status message.
func (e *Editor) Open(path string) error {
	b, err := loadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		e.log.Printf("open %s: new file", path)
		e.SetBuffer(buffer.New(""))
		e.filename = path
		e.setMessage(fmt.Sprintf("%q [New]", path))
		return nil
	case err != nil:
		e.log.Printf("open %s: %v", path, err)
		e.setError(err.Error())
		return err
	}

	e.SetBuffer(b)
	e.filename = path
	e.log.Printf("open %s: %d lines", path, lineCount(b))
	e.setMessage(fmt.Sprintf("%q %dL, %dB", path, lineCount(b), len(b.Text())))
	return nil
}

// Write saves the buffer to path and reports the outcome as the status
// message. The first successful write names an unnamed buffer.
func (e *Editor) Write(path string) error {
	b := e.view.Buffer()
	n, err := saveFile(b, path)
	if err != nil {
		e.log.Printf("write %s: %v", path, err)
		e.setError(err.Error())
		return err
	}

	if e.filename == "" {
		e.filename = path
	}
	if path == e.filename {
		e.savedVersion = b.Version()
	}
	e.log.Printf("write %s: %d bytes", path, n)
	e.setMessage(fmt.Sprintf("%q %dL, %dB written", path, lineCount(b), n))
	return nil
}

// HandleKey dispatches one key event. A bound action runs first and may
// change the mode; unbound keys fall back to the mode's default handling.
func (e *Editor) HandleKey(ev KeyEvent) {
	if act, ok := e.disp.Lookup(e.mode, ev); ok {
		if act.Run != nil {
			act.Run(e.view)
		}
		if next, ok := transitions[e.mode][act.Name]; ok {
			e.setMode(next)
		}
		return
	}

	switch e.mode {
	case ModeInsert:
		e.insertDefault(ev)
	case ModeEx:
		e.exDefault(ev)
	}
}

func (e *Editor) insertDefault(ev KeyEvent) {
	if ev.Mods != 0 {
		return
	}
	switch ev.Code {
	case KeyChar:
		e.view.InsertChar(ev.Rune)
	case KeyTab:
		e.view.InsertChar('\t')
	case KeyEnter:
		e.view.InsertEnter()
	case KeyBackspace:
		e.view.Backspace()
	case KeyDelete:
		e.view.Delete()
	}
}

func (e *Editor) exDefault(ev KeyEvent) {
	res := e.ex.HandleKey(ev)
	switch res.Kind {
	case ExAborted:
		e.setMode(ModeNormal)
	case ExFinished:
		e.setMode(ModeNormal)
		e.runCommand(res.Text)
	}
}

func (e *Editor) runCommand(line string) {
	cmd, err := ParseCommand(line)
	if err != nil {
		e.log.Printf("command %q: %v", line, err)
		e.setError(err.Error())
		return
	}

	switch cmd.Kind {
	case CommandQuit:
		e.log.Printf("quit")
		e.quit = true
	case CommandWrite:
		_ = e.Write(cmd.Filename)
	}
}

// lineCount is the line count reported in file messages. The empty line
// after a final terminator is not counted, so "a\n" is one line and an
// empty buffer is zero.
func lineCount(b *buffer.Buffer) int {
	n := b.LenLines()
	if b.LineLen(n-1) == 0 {
		n--
	}
	return n
}

func (e *Editor) setMode(next Mode) {
	if next == e.mode {
		return
	}
	e.log.Printf("mode %s -> %s", e.mode, next)
	if next == ModeEx {
		e.ex.Clear()
		e.clearMessage()
	}
	e.mode = next
}

func (e *Editor) setMessage(s string) {
	e.message, e.isError = s, false
}

func (e *Editor) setError(s string) {
	e.message, e.isError = s, true
}

func (e *Editor) clearMessage() {
	e.message, e.isError = "", false
}
