package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Play     key.Binding
	Forward  key.Binding
	Backward key.Binding
	JumpBack key.Binding
	JumpFwd  key.Binding
	Start    key.Binding
	End      key.Binding
	Reset    key.Binding
	Faster   key.Binding
	Slower   key.Binding
	Chart    key.Binding
	Theme    key.Binding
	Menu     key.Binding
	Help     key.Binding
	Quit     key.Binding

	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Select key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Play:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
		Forward:  key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("→/l", "step")),
		Backward: key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("←/h", "back")),
		JumpBack: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "-10")),
		JumpFwd:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "+10")),
		Start:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "start")),
		End:      key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "end")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Faster:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "faster")),
		Slower:   key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "slower")),
		Chart:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "chart")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Menu:     key.NewBinding(key.WithKeys("esc", "m"), key.WithHelp("esc", "menu")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Switch: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "column")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Forward, k.Backward, k.Faster, k.Slower, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Play, k.Forward, k.Backward, k.JumpBack, k.JumpFwd},
		{k.Start, k.End, k.Reset, k.Faster, k.Slower},
		{k.Chart, k.Theme, k.Menu, k.Help, k.Quit},
	}
}

// menuKeys is the help shown on the selection screen.
type menuKeys keyMap

func (k menuKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Select, k.Theme, k.Quit}
}

func (k menuKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
