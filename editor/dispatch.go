package editor

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
)

// Action is a bound editor command. Run receives only the viewport; mode
// changes are looked up by Name in the orchestrator's transition table.
// Run may be nil for actions that only change mode.
type Action struct {
	Name string
	Run  func(v *Viewport)
}

const (
	actionMoveLeft     = "move-left"
	actionMoveRight    = "move-right"
	actionMoveUp       = "move-up"
	actionMoveDown     = "move-down"
	actionHalfPageDown = "half-page-down"
	actionHalfPageUp   = "half-page-up"
	actionEnterInsert  = "enter-insert"
	actionEnterEx      = "enter-ex"
	actionLeaveInsert  = "leave-insert"
)

var (
	moveLeft  = Action{Name: actionMoveLeft, Run: func(v *Viewport) { v.MoveCursorLeft(1) }}
	moveRight = Action{Name: actionMoveRight, Run: func(v *Viewport) { v.MoveCursorRight(1) }}
	moveUp    = Action{Name: actionMoveUp, Run: func(v *Viewport) { v.MoveCursorUp(1) }}
	moveDown  = Action{Name: actionMoveDown, Run: func(v *Viewport) { v.MoveCursorDown(1) }}

	halfPageDown = Action{Name: actionHalfPageDown, Run: func(v *Viewport) { v.MoveCursorDown(halfPage(v)) }}
	halfPageUp   = Action{Name: actionHalfPageUp, Run: func(v *Viewport) { v.MoveCursorUp(halfPage(v)) }}

	enterInsert = Action{Name: actionEnterInsert}
	enterEx     = Action{Name: actionEnterEx}
	leaveInsert = Action{Name: actionLeaveInsert}
)

// halfPage is half the screen height, rounded up.
func halfPage(v *Viewport) int {
	_, rows := v.Size()
	return (rows + 1) / 2
}

// Dispatcher maps (Mode, KeyEvent) to an Action. Tables are built once by
// NewDispatcher and never change afterwards.
type Dispatcher struct {
	tables map[Mode]map[KeyEvent]Action
}

func NewDispatcher(km KeyMap) (*Dispatcher, error) {
	d := &Dispatcher{tables: make(map[Mode]map[KeyEvent]Action, len(Modes()))}
	for _, m := range Modes() {
		d.tables[m] = make(map[KeyEvent]Action)
	}

	binds := []struct {
		mode Mode
		b    key.Binding
		a    Action
	}{
		{ModeNormal, km.Left, moveLeft},
		{ModeNormal, km.Right, moveRight},
		{ModeNormal, km.Up, moveUp},
		{ModeNormal, km.Down, moveDown},
		{ModeNormal, km.HalfPageDown, halfPageDown},
		{ModeNormal, km.HalfPageUp, halfPageUp},
		{ModeNormal, km.EnterInsert, enterInsert},
		{ModeNormal, km.EnterEx, enterEx},

		{ModeInsert, km.LeaveInsert, leaveInsert},
		{ModeInsert, km.InsertLeft, moveLeft},
		{ModeInsert, km.InsertRight, moveRight},
		{ModeInsert, km.InsertUp, moveUp},
		{ModeInsert, km.InsertDown, moveDown},
	}
	for _, bd := range binds {
		if err := d.bind(bd.mode, bd.b, bd.a); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *Dispatcher) bind(mode Mode, b key.Binding, a Action) error {
	if !b.Enabled() {
		return nil
	}
	table := d.tables[mode]
	for _, k := range b.Keys() {
		ev, err := ParseKey(k)
		if err != nil {
			return fmt.Errorf("%s binding %s: %w", mode, a.Name, err)
		}
		if prev, ok := table[ev]; ok {
			return fmt.Errorf("%s: key %q bound to both %s and %s", mode, k, prev.Name, a.Name)
		}
		table[ev] = a
	}
	return nil
}

// Lookup returns the action bound to ev in mode. Matching is exact,
// modifiers included; there is no prefix matching.
func (d *Dispatcher) Lookup(mode Mode, ev KeyEvent) (Action, bool) {
	a, ok := d.tables[mode][ev]
	return a, ok
}

// Len returns the number of keys bound in mode.
func (d *Dispatcher) Len(mode Mode) int {
	return len(d.tables[mode])
}
