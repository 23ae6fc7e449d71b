package gui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyType classifies a KeyStroke.
type KeyType uint8

const (
	KeyUnknown KeyType = iota
	KeyCharacter
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyDelete
	KeyTab
	KeyReverseTab
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
)

var keyNames = map[KeyType]string{
	KeyEnter:      "enter",
	KeyEscape:     "esc",
	KeyBackspace:  "backspace",
	KeyDelete:     "delete",
	KeyTab:        "tab",
	KeyReverseTab: "shift+tab",
	KeyArrowUp:    "up",
	KeyArrowDown:  "down",
	KeyArrowLeft:  "left",
	KeyArrowRight: "right",
	KeyPageUp:     "pgup",
	KeyPageDown:   "pgdown",
	KeyHome:       "home",
	KeyEnd:        "end",
}

// KeyStroke is a single decoded key press.
type KeyStroke struct {
	Type KeyType
	// Char is set when Type is KeyCharacter.
	Char rune
	Alt  bool
	Ctrl bool
}

// NewKeyStroke returns a keystroke of the given non-character type.
func NewKeyStroke(t KeyType) KeyStroke {
	return KeyStroke{Type: t}
}

// NewCharacter returns a plain character keystroke.
func NewCharacter(r rune) KeyStroke {
	return KeyStroke{Type: KeyCharacter, Char: r}
}

// String returns the bubbletea name of the key ("up", "enter", " ", "ctrl+c", ...)
// so bindings from bubbles/key match keystrokes directly.
func (k KeyStroke) String() string {
	var name string
	switch k.Type {
	case KeyCharacter:
		name = string(k.Char)
		if k.Ctrl {
			name = "ctrl+" + name
		}
	case KeyUnknown:
		return ""
	default:
		name = keyNames[k.Type]
	}
	if k.Alt {
		name = "alt+" + name
	}
	return name
}

// Is reports whether k is a plain key of type t.
func (k KeyStroke) Is(t KeyType) bool {
	return k.Type == t && !k.Alt && !k.Ctrl
}

// FromKeyMsg decodes a bubbletea key message.
func FromKeyMsg(msg tea.KeyMsg) KeyStroke {
	ks := KeyStroke{Alt: msg.Alt}

	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return KeyStroke{}
		}
		ks.Type = KeyCharacter
		ks.Char = msg.Runes[0]
	case tea.KeySpace:
		ks.Type = KeyCharacter
		ks.Char = ' '
	case tea.KeyEnter:
		ks.Type = KeyEnter
	case tea.KeyEsc:
		ks.Type = KeyEscape
	case tea.KeyBackspace:
		ks.Type = KeyBackspace
	case tea.KeyDelete:
		ks.Type = KeyDelete
	case tea.KeyTab:
		ks.Type = KeyTab
	case tea.KeyShiftTab:
		ks.Type = KeyReverseTab
	case tea.KeyUp:
		ks.Type = KeyArrowUp
	case tea.KeyDown:
		ks.Type = KeyArrowDown
	case tea.KeyLeft:
		ks.Type = KeyArrowLeft
	case tea.KeyRight:
		ks.Type = KeyArrowRight
	case tea.KeyPgUp:
		ks.Type = KeyPageUp
	case tea.KeyPgDown:
		ks.Type = KeyPageDown
	case tea.KeyHome:
		ks.Type = KeyHome
	case tea.KeyEnd:
		ks.Type = KeyEnd
	default:
		if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
			ks.Type = KeyCharacter
			ks.Char = rune('a' + int(msg.Type-tea.KeyCtrlA))
			ks.Ctrl = true
		}
	}
	return ks
}
