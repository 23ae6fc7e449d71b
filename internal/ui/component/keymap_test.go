package component_test

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/tuikit/internal/ui/component"
	"github.com/bnema/tuikit/internal/ui/gui"
)

func TestComboCheckListKeyMap_Matches(t *testing.T) {
	keys := component.DefaultComboCheckListKeyMap()

	tests := []struct {
		name    string
		ks      gui.KeyStroke
		binding key.Binding
		want    bool
	}{
		{"space toggles", keySpace, keys.Toggle, true},
		{"enter toggles", keyEnter, keys.Toggle, true},
		{"escape collapses", keyEscape, keys.Collapse, true},
		{"enter does not collapse", keyEnter, keys.Collapse, false},
		{"end navigates", keyEnd, keys.Navigate, true},
		{"page down navigates", keyPgDown, keys.Navigate, true},
		{"down is separate from navigate", keyDown, keys.Navigate, false},
		{"alt+space does not toggle", gui.KeyStroke{Type: gui.KeyCharacter, Char: ' ', Alt: true}, keys.Toggle, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, key.Matches(tt.ks, tt.binding))
		})
	}
}

func TestComboCheckList_CustomKeyMap(t *testing.T) {
	c := newStatesCombo()
	keys := c.KeyMap()
	keys.Collapse = key.NewBinding(key.WithKeys("q"))
	c.SetKeyMap(keys)

	assert.Equal(t, gui.Handled, c.HandleKeyStroke(keySpace))
	assert.Equal(t, gui.Unhandled, c.HandleKeyStroke(keyEscape))
	assert.True(t, c.IsPopupOpen())
	assert.Equal(t, gui.Handled, c.HandleKeyStroke(gui.NewCharacter('q')))
	assert.False(t, c.IsPopupOpen())
}

func TestComboCheckListKeyMap_Help(t *testing.T) {
	h := help.New()
	keys := component.DefaultComboCheckListKeyMap()

	short := h.View(keys)
	assert.Contains(t, short, "open/toggle")
	assert.Contains(t, short, "apply")

	h.ShowAll = true
	full := h.View(keys)
	assert.Contains(t, full, "scroll")
	assert.Greater(t, strings.Count(full, "\n"), 0)
}
