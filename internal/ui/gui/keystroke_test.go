package gui_test

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/tuikit/internal/ui/gui"
)

func TestFromKeyMsg(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want gui.KeyStroke
	}{
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, gui.NewCharacter('q')},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, gui.NewCharacter(' ')},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, gui.NewKeyStroke(gui.KeyEnter)},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, gui.NewKeyStroke(gui.KeyEscape)},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, gui.NewKeyStroke(gui.KeyArrowUp)},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, gui.NewKeyStroke(gui.KeyArrowDown)},
		{"page up", tea.KeyMsg{Type: tea.KeyPgUp}, gui.NewKeyStroke(gui.KeyPageUp)},
		{"page down", tea.KeyMsg{Type: tea.KeyPgDown}, gui.NewKeyStroke(gui.KeyPageDown)},
		{"home", tea.KeyMsg{Type: tea.KeyHome}, gui.NewKeyStroke(gui.KeyHome)},
		{"end", tea.KeyMsg{Type: tea.KeyEnd}, gui.NewKeyStroke(gui.KeyEnd)},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, gui.NewKeyStroke(gui.KeyTab)},
		{"shift tab", tea.KeyMsg{Type: tea.KeyShiftTab}, gui.NewKeyStroke(gui.KeyReverseTab)},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, gui.KeyStroke{Type: gui.KeyCharacter, Char: 'c', Ctrl: true}},
		{"alt+x", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}, gui.KeyStroke{Type: gui.KeyCharacter, Char: 'x', Alt: true}},
		{"empty runes", tea.KeyMsg{Type: tea.KeyRunes}, gui.KeyStroke{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gui.FromKeyMsg(tt.msg))
		})
	}
}

func TestKeyStroke_StringMatchesBubbleteaNames(t *testing.T) {
	msgs := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'a'}},
		{Type: tea.KeySpace, Runes: []rune{' '}},
		{Type: tea.KeyEnter},
		{Type: tea.KeyEsc},
		{Type: tea.KeyUp},
		{Type: tea.KeyDown},
		{Type: tea.KeyLeft},
		{Type: tea.KeyRight},
		{Type: tea.KeyPgUp},
		{Type: tea.KeyPgDown},
		{Type: tea.KeyHome},
		{Type: tea.KeyEnd},
		{Type: tea.KeyTab},
		{Type: tea.KeyShiftTab},
		{Type: tea.KeyBackspace},
		{Type: tea.KeyDelete},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyRunes, Runes: []rune{'k'}, Alt: true},
	}

	for _, msg := range msgs {
		t.Run(msg.String(), func(t *testing.T) {
			assert.Equal(t, msg.String(), gui.FromKeyMsg(msg).String())
		})
	}
}

func TestKeyStroke_WorksWithKeyMatches(t *testing.T) {
	toggle := key.NewBinding(key.WithKeys(" ", "enter"))

	assert.True(t, key.Matches(gui.NewCharacter(' '), toggle))
	assert.True(t, key.Matches(gui.NewKeyStroke(gui.KeyEnter), toggle))
	assert.False(t, key.Matches(gui.NewKeyStroke(gui.KeyEscape), toggle))
	assert.False(t, key.Matches(gui.KeyStroke{Type: gui.KeyCharacter, Char: ' ', Alt: true}, toggle))
}

func TestKeyStroke_Is(t *testing.T) {
	assert.True(t, gui.NewKeyStroke(gui.KeyArrowUp).Is(gui.KeyArrowUp))
	assert.False(t, gui.KeyStroke{Type: gui.KeyArrowUp, Alt: true}.Is(gui.KeyArrowUp))
	assert.Empty(t, gui.KeyStroke{}.String())
}
