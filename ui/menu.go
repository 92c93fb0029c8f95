package ui

// Menu is a vertical list of options navigated with up, down and select.
// Selection wraps around at both ends.
type Menu struct {
	Options  []string
	Handlers []func()
	selected int
}

// NewMenu pairs each option with its handler. Missing handlers are no-ops.
func NewMenu(options []string, handlers ...func()) *Menu {
	return &Menu{Options: options, Handlers: handlers}
}

func (m *Menu) Selected() int {
	return m.selected
}

// Select moves the cursor to i, ignoring out-of-range indices.
func (m *Menu) Select(i int) {
	if i < 0 || i >= len(m.Options) {
		return
	}
	m.selected = i
}

// Move shifts the cursor by delta with wrap-around.
func (m *Menu) Move(delta int) {
	n := len(m.Options)
	if n == 0 {
		return
	}
	m.selected = ((m.selected+delta)%n + n) % n
}

// Activate runs the handler of the selected option.
func (m *Menu) Activate() {
	m.Run(m.selected)
}

// Run runs the handler of option i.
func (m *Menu) Run(i int) {
	if i < 0 || i >= len(m.Handlers) || m.Handlers[i] == nil {
		return
	}
	m.Handlers[i]()
}

// Label returns option i decorated with a cursor when it is selected.
func (m *Menu) Label(i int) string {
	if i == m.selected {
		return "> " + m.Options[i] + " <"
	}
	return m.Options[i]
}
