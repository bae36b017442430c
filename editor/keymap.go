package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Keys must be unique within a mode; NewDispatcher rejects duplicates.
type KeyMap struct {
	// Normal mode.
	Left, Right, Up, Down    key.Binding
	HalfPageDown, HalfPageUp key.Binding
	EnterInsert              key.Binding
	EnterEx                  key.Binding

	// Insert mode.
	LeaveInsert                                   key.Binding
	InsertLeft, InsertRight, InsertUp, InsertDown key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "left")),
		Right: key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "right")),
		Up:    key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:  key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),

		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "half page down")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "half page up")),

		EnterInsert: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insert")),
		EnterEx:     key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),

		LeaveInsert: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "normal mode")),
		InsertLeft:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		InsertRight: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		InsertUp:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		InsertDown:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
	}
}

func (km KeyMap) bindings() []key.Binding {
	return []key.Binding{
		km.Left, km.Right, km.Up, km.Down,
		km.HalfPageDown, km.HalfPageUp,
		km.EnterInsert, km.EnterEx,
		km.LeaveInsert, km.InsertLeft, km.InsertRight, km.InsertUp, km.InsertDown,
	}
}

// isZero reports whether no binding carries any key.
func (km KeyMap) isZero() bool {
	for _, b := range km.bindings() {
		if len(b.Keys()) > 0 {
			return false
		}
	}
	return true
}
