package editor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyCode identifies a key: either a character (KeyChar) or a named key.
type KeyCode uint8

const (
	KeyNone KeyCode = iota
	KeyChar
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDown
	KeyTab
	KeyEsc
)

// Modifiers is a set of modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
)

// KeyEvent is one key press. It is comparable and used directly as a
// dispatch table key, so Rune must be zero unless Code is KeyChar.
type KeyEvent struct {
	Code KeyCode
	Rune rune
	Mods Modifiers
}

// Char returns the event for an unmodified character.
func Char(r rune) KeyEvent { return KeyEvent{Code: KeyChar, Rune: r} }

// Key returns the event for an unmodified named key.
func Key(code KeyCode) KeyEvent { return KeyEvent{Code: code} }

var keyNames = map[KeyCode]string{
	KeyEnter:     "enter",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPgUp:      "pgup",
	KeyPgDown:    "pgdown",
	KeyTab:       "tab",
	KeyEsc:       "esc",
}

var namedKeys = func() map[string]KeyCode {
	out := make(map[string]KeyCode, len(keyNames)+1)
	for code, name := range keyNames {
		out[name] = code
	}
	out["escape"] = KeyEsc
	return out
}()

// String renders the event in the same form Bubble Tea uses for key
// bindings, e.g. "ctrl+d", "l", "left".
func (k KeyEvent) String() string {
	var sb strings.Builder
	if k.Mods&ModCtrl != 0 {
		sb.WriteString("ctrl+")
	}
	if k.Mods&ModAlt != 0 {
		sb.WriteString("alt+")
	}
	if k.Mods&ModShift != 0 {
		sb.WriteString("shift+")
	}
	switch k.Code {
	case KeyChar:
		sb.WriteRune(k.Rune)
	case KeyNone:
		sb.WriteString("none")
	default:
		sb.WriteString(keyNames[k.Code])
	}
	return sb.String()
}

// ParseKey parses a binding string such as "ctrl+u", "k" or "esc".
func ParseKey(s string) (KeyEvent, error) {
	name := s
	var mods Modifiers
	for {
		mod, rest, ok := cutModifier(name)
		if !ok {
			break
		}
		mods |= mod
		name = rest
	}

	if code, ok := namedKeys[name]; ok {
		return KeyEvent{Code: code, Mods: mods}, nil
	}
	if name == "space" {
		return KeyEvent{Code: KeyChar, Rune: ' ', Mods: mods}, nil
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return KeyEvent{Code: KeyChar, Rune: r, Mods: mods}, nil
	}
	return KeyEvent{}, fmt.Errorf("unknown key %q", s)
}

func cutModifier(s string) (Modifiers, string, bool) {
	for _, m := range []struct {
		prefix string
		mod    Modifiers
	}{
		{prefix: "ctrl+", mod: ModCtrl},
		{prefix: "alt+", mod: ModAlt},
		{prefix: "shift+", mod: ModShift},
	} {
		// A bare "+" after the prefix is the plus key itself.
		if rest, ok := strings.CutPrefix(s, m.prefix); ok && rest != "" {
			return m.mod, rest, true
		}
	}
	return 0, s, false
}

// KeyEventsFromTea translates a Bubble Tea key message. Rune messages yield
// one event per rune; pasted line breaks become Enter. Keys with no
// KeyEvent equivalent (function keys, for instance) yield nothing.
func KeyEventsFromTea(msg tea.KeyMsg) []KeyEvent {
	if msg.Type == tea.KeyRunes {
		out := make([]KeyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if msg.Paste && (r == '\r' || r == '\n') {
				out = append(out, Key(KeyEnter))
				continue
			}
			ev := Char(r)
			if msg.Alt {
				ev.Mods |= ModAlt
			}
			out = append(out, ev)
		}
		return out
	}
	if msg.Type == tea.KeySpace {
		ev := Char(' ')
		if msg.Alt {
			ev.Mods |= ModAlt
		}
		return []KeyEvent{ev}
	}

	ev, err := ParseKey(msg.String())
	if err != nil {
		return nil
	}
	return []KeyEvent{ev}
}
