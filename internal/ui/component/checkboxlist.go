package component

import (
	"fmt"
	"slices"
	"sync"

	"github.com/charmbracelet/bubbles/key"

	"github.com/bnema/tuikit/internal/ui/gui"
)

// CheckBoxListListener observes toggles made inside a CheckBoxList.
type CheckBoxListListener interface {
	OnStatusChanged(index int, checked bool)
}

// CheckBoxList is a scrollable list of items, each with a checkbox.
type CheckBoxList[V comparable] struct {
	gui.InteractableBase

	mu        sync.RWMutex
	items     []V
	checked   []bool
	selected  int
	scroll    int
	keys      CheckBoxListKeyMap
	listeners listenerSet[CheckBoxListListener]
}

// NewCheckBoxList returns an empty list.
func NewCheckBoxList[V comparable]() *CheckBoxList[V] {
	l := &CheckBoxList[V]{keys: DefaultCheckBoxListKeyMap()}
	l.InitComponent("CheckBoxList")
	return l
}

// AddItem appends item with the given state.
func (l *CheckBoxList[V]) AddItem(item V, checked bool) *CheckBoxList[V] {
	l.mu.Lock()
	l.items = append(l.items, item)
	l.checked = append(l.checked, checked)
	l.mu.Unlock()
	l.Invalidate()
	return l
}

// ClearItems removes every item.
func (l *CheckBoxList[V]) ClearItems() {
	l.mu.Lock()
	l.items, l.checked = nil, nil
	l.selected, l.scroll = 0, 0
	l.mu.Unlock()
	l.Invalidate()
}

func (l *CheckBoxList[V]) ItemCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// Item returns the item at index.
func (l *CheckBoxList[V]) Item(index int) (V, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if index < 0 || index >= len(l.items) {
		var zero V
		return zero, fmt.Errorf("item %d of %d: %w", index, len(l.items), ErrIndexOutOfRange)
	}
	return l.items[index], nil
}

// IsChecked reports the state of the first item equal to item.
func (l *CheckBoxList[V]) IsChecked(item V) (checked, ok bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if i := slices.Index(l.items, item); i >= 0 {
		return l.checked[i], true
	}
	return false, false
}

// IsCheckedAt reports the state of the item at index.
func (l *CheckBoxList[V]) IsCheckedAt(index int) (checked, ok bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if index < 0 || index >= len(l.checked) {
		return false, false
	}
	return l.checked[index], true
}

// SetChecked sets the state of the first item equal to item; absent items are ignored.
func (l *CheckBoxList[V]) SetChecked(item V, checked bool) *CheckBoxList[V] {
	l.mu.Lock()
	i := slices.Index(l.items, item)
	if i < 0 {
		l.mu.Unlock()
		return l
	}
	l.checked[i] = checked
	l.mu.Unlock()

	l.Invalidate()
	l.notify(i, checked)
	return l
}

// CheckedStates returns a copy of the state of every row.
func (l *CheckBoxList[V]) CheckedStates() []bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.checked)
}

// CheckedItems returns the checked items in list order.
func (l *CheckBoxList[V]) CheckedItems() []V {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []V
	for i, item := range l.items {
		if l.checked[i] {
			out = append(out, item)
		}
	}
	return out
}

// SelectedIndex returns the highlighted row, -1 when the list is empty.
func (l *CheckBoxList[V]) SelectedIndex() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if len(l.items) == 0 {
		return -1
	}
	return l.selected
}

// SetSelectedIndex moves the highlight, clamped to the list.
func (l *CheckBoxList[V]) SetSelectedIndex(index int) {
	l.mu.Lock()
	l.selectLocked(index)
	l.mu.Unlock()
	l.Invalidate()
}

// ScrollOffset returns the first visible row.
func (l *CheckBoxList[V]) ScrollOffset() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.scroll
}

// ToggleSelected flips the highlighted row and notifies listeners.
func (l *CheckBoxList[V]) ToggleSelected() {
	l.mu.Lock()
	if len(l.items) == 0 {
		l.mu.Unlock()
		return
	}
	i := l.selected
	l.checked[i] = !l.checked[i]
	checked := l.checked[i]
	l.mu.Unlock()

	l.Invalidate()
	l.notify(i, checked)
}

// AddListener registers listener; nil, duplicates and non-comparable values are ignored.
func (l *CheckBoxList[V]) AddListener(listener CheckBoxListListener) *CheckBoxList[V] {
	if listener != nil {
		l.listeners.add(listener)
	}
	return l
}

// RemoveListener unregisters listener.
func (l *CheckBoxList[V]) RemoveListener(listener CheckBoxListListener) *CheckBoxList[V] {
	if listener != nil {
		l.listeners.remove(listener)
	}
	return l
}

// SetKeyMap replaces the key bindings.
func (l *CheckBoxList[V]) SetKeyMap(keys CheckBoxListKeyMap) {
	l.mu.Lock()
	l.keys = keys
	l.mu.Unlock()
}

func (l *CheckBoxList[V]) notify(index int, checked bool) {
	for _, listener := range l.listeners.snapshot() {
		listener.OnStatusChanged(index, checked)
	}
}

// visibleRows is the page size used for scrolling; caller holds the lock.
// Before the first layout the preferred height stands in for the real one.
func (l *CheckBoxList[V]) visibleRows() int {
	if rows := l.Size().Rows; rows > 0 {
		return rows
	}
	if s, ok := l.PreferredSizeOverride(); ok && s.Rows > 0 {
		return s.Rows
	}
	return max(1, len(l.items))
}

// selectLocked clamps and applies a new selection, keeping it in view.
func (l *CheckBoxList[V]) selectLocked(index int) {
	if len(l.items) == 0 {
		l.selected, l.scroll = 0, 0
		return
	}
	l.selected = max(0, min(index, len(l.items)-1))
	l.scroll = ensureVisible(l.selected, l.scroll, l.visibleRows(), len(l.items))
}

// ensureVisible returns a scroll offset that shows row within a viewport of rows lines.
func ensureVisible(row, scroll, rows, total int) int {
	if rows <= 0 {
		return 0
	}
	if row < scroll {
		scroll = row
	}
	if row >= scroll+rows {
		scroll = row - rows + 1
	}
	return max(0, min(scroll, total-rows))
}

// HandleKeyStroke moves the highlight and toggles rows. Leaving the top or bottom
// row with the arrows hands focus to the neighbouring component.
func (l *CheckBoxList[V]) HandleKeyStroke(ks gui.KeyStroke) gui.Result {
	l.mu.Lock()
	keys := l.keys
	n := len(l.items)
	selected := l.selected
	page := l.visibleRows()

	result := gui.Handled
	switch {
	case key.Matches(ks, keys.Up):
		if selected <= 0 {
			result = gui.MoveFocusUp
			break
		}
		l.selectLocked(selected - 1)
	case key.Matches(ks, keys.Down):
		if selected >= n-1 {
			result = gui.MoveFocusDown
			break
		}
		l.selectLocked(selected + 1)
	case key.Matches(ks, keys.PageUp):
		l.selectLocked(selected - page)
	case key.Matches(ks, keys.PageDown):
		l.selectLocked(selected + page)
	case key.Matches(ks, keys.Home):
		l.selectLocked(0)
	case key.Matches(ks, keys.End):
		l.selectLocked(n - 1)
	case key.Matches(ks, keys.Toggle):
		l.mu.Unlock()
		l.ToggleSelected()
		return gui.Handled
	default:
		l.mu.Unlock()
		return l.InteractableBase.HandleKeyStroke(ks)
	}
	l.mu.Unlock()

	if result == gui.Handled {
		l.Invalidate()
	}
	return result
}

// CursorLocation puts the cursor inside the checkbox of the highlighted row.
func (l *CheckBoxList[V]) CursorLocation() (gui.Position, bool) {
	if !l.IsFocused() || !l.ThemeDefinition().CursorVisible {
		return gui.TopLeft, false
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	if len(l.items) == 0 {
		return gui.TopLeft, false
	}
	return gui.Position{Column: 1, Row: l.selected - l.scroll}, true
}

func (l *CheckBoxList[V]) PreferredSize() gui.Size {
	return l.CachedPreferredSize(func() gui.Size {
		l.mu.RLock()
		defer l.mu.RUnlock()
		cols := 0
		for _, item := range l.items {
			cols = max(cols, gui.ColumnWidth(fmt.Sprint(item)))
		}
		return gui.Size{Columns: cols + 4, Rows: len(l.items)}
	})
}

func (l *CheckBoxList[V]) Draw(g *gui.TextGraphics) {
	def := l.ThemeDefinition()
	focused := l.IsFocused()
	size := g.Size()

	l.mu.Lock()
	n := len(l.items)
	l.scroll = ensureVisible(l.selected, l.scroll, size.Rows, n)
	items := slices.Clone(l.items)
	checked := slices.Clone(l.checked)
	selected, scroll := l.selected, l.scroll
	l.mu.Unlock()

	scrollbar := n > size.Rows && size.Columns > 1
	textCols := size.Columns
	if scrollbar {
		textCols--
	}
	rows := g.Sub(gui.TopLeft, size.WithColumns(textCols))

	checkedGlyph := def.Character(gui.GlyphChecked, gui.SymbolCheckMark)
	uncheckedGlyph := def.Character(gui.GlyphUnchecked, gui.SymbolBlank)

	for row := 0; row < size.Rows; row++ {
		idx := scroll + row
		style := def.Normal
		if idx == selected && idx < n {
			style = def.Active
			if focused {
				style = def.Selected
			}
		}
		rows.ApplyThemeStyle(style).FillRow(row, ' ')
		if idx >= n {
			continue
		}

		mark := uncheckedGlyph
		if checked[idx] {
			mark = checkedGlyph
		}
		rows.PutString(0, row, "["+string(mark)+"] ")
		rows.PutString(4, row, gui.FitString(fmt.Sprint(items[idx]), textCols-4))
	}

	if scrollbar {
		drawScrollbar(g.Sub(gui.Position{Column: size.Columns - 1}, size.WithColumns(1)), def, scroll, size.Rows, n)
	}
	l.MarkDrawn()
}

// drawScrollbar draws a vertical track with a thumb proportional to the visible part.
func drawScrollbar(g *gui.TextGraphics, def *gui.ThemeDefinition, scroll, visible, total int) {
	height := g.Size().Rows
	if height == 0 || total <= visible {
		return
	}

	thumb := max(1, height*visible/total)
	maxScroll := total - visible
	top := 0
	if maxScroll > 0 {
		top = (height - thumb) * scroll / maxScroll
	}

	track := def.Character(gui.GlyphScrollTrack, gui.SymbolLightShade)
	bar := def.Character(gui.GlyphScrollThumb, gui.SymbolBlock)
	g.ApplyThemeStyle(def.Insensitive)
	for row := 0; row < height; row++ {
		ch := track
		if row >= top && row < top+thumb {
			ch = bar
		}
		g.SetCharacter(0, row, ch)
	}
}
