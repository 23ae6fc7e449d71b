package component

import (
	"github.com/charmbracelet/bubbles/key"
)

// CheckBoxListKeyMap defines the keys a CheckBoxList reacts to.
type CheckBoxListKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Toggle   key.Binding
}

// DefaultCheckBoxListKeyMap returns the default list bindings.
func DefaultCheckBoxListKeyMap() CheckBoxListKeyMap {
	return CheckBoxListKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
	}
}

// ComboCheckListKeyMap defines the keys a ComboCheckList reacts to.
type ComboCheckListKeyMap struct {
	Up   key.Binding
	Down key.Binding
	// Navigate keys are only forwarded while the popup is open.
	Navigate key.Binding
	// Toggle opens the popup, or toggles the highlighted row when it is open.
	Toggle   key.Binding
	Collapse key.Binding
}

// DefaultComboCheckListKeyMap returns the default combo bindings.
func DefaultComboCheckListKeyMap() ComboCheckListKeyMap {
	return ComboCheckListKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Navigate: key.NewBinding(
			key.WithKeys("pgup", "pgdown", "home", "end"),
			key.WithHelp("pgup/pgdn", "scroll"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "open/toggle"),
		),
		Collapse: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "apply"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k ComboCheckListKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Collapse, k.Up, k.Down}
}

// FullHelp implements help.KeyMap.
func (k ComboCheckListKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Navigate},
		{k.Toggle, k.Collapse},
	}
}
