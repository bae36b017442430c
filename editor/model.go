package editor

import tea "github.com/charmbracelet/bubbletea"

// Model adapts an Editor to Bubble Tea. Key messages are dispatched in
// order; the program quits once the editor's quit command has run.
type Model struct {
	ed *Editor
}

func NewModel(ed *Editor) Model { return Model{ed: ed} }

func (m Model) Editor() *Editor { return m.ed }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ed.Resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		for _, ev := range KeyEventsFromTea(msg) {
			m.ed.HandleKey(ev)
			if m.ed.Quit() {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}
