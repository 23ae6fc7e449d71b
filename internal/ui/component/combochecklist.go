package component

import (
	"fmt"
	"slices"
	"sync"

	"github.com/charmbracelet/bubbles/key"

	"github.com/bnema/tuikit/internal/ui/gui"
)

const (
	// KindComboCheckList is the theme kind of ComboCheckList.
	KindComboCheckList = "ComboCheckList"

	// DefaultDropDownRows is the popup height limit of a new ComboCheckList.
	DefaultDropDownRows = 10
)

// ComboCheckList is a one-line control showing "<n> of <total> checked" that expands
// into a popup checklist. Changes made in the popup are applied when it is closed
// with the collapse key (Escape) and discarded when the control loses focus.
//
// It is safe to mutate items and states from any goroutine; listeners run on the
// GUI event loop when one is attached.
type ComboCheckList[V comparable] struct {
	gui.InteractableBase

	mu              sync.RWMutex
	items           []V
	status          []bool
	popup           *checkListPopup[V]
	dropDownFocused bool
	dropDownRows    int
	renderer        ComboCheckListRenderer[V]
	keys            ComboCheckListKeyMap

	listeners listenerSet[Listener]
}

// NewComboCheckList returns an empty, collapsed ComboCheckList.
func NewComboCheckList[V comparable]() *ComboCheckList[V] {
	c := &ComboCheckList[V]{
		dropDownFocused: true,
		dropDownRows:    DefaultDropDownRows,
		keys:            DefaultComboCheckListKeyMap(),
	}
	c.InitComponent(KindComboCheckList)
	return c
}

// statusChange is one pending listener notification.
type statusChange struct {
	index   int
	checked bool
}

// AddItem appends an unchecked item.
func (c *ComboCheckList[V]) AddItem(item V) *ComboCheckList[V] {
	return c.AddItemWithState(item, false)
}

// AddItemWithState appends item with the given state. Nil values are ignored.
func (c *ComboCheckList[V]) AddItemWithState(item V, checked bool) *ComboCheckList[V] {
	if isNil(item) {
		return c
	}
	c.mu.Lock()
	c.items = append(c.items, item)
	c.status = append(c.status, checked)
	c.mu.Unlock()

	c.Invalidate()
	return c
}

// ClearItems removes every item.
func (c *ComboCheckList[V]) ClearItems() *ComboCheckList[V] {
	c.mu.Lock()
	c.items, c.status = nil, nil
	c.mu.Unlock()

	c.Invalidate()
	return c
}

// RemoveItem removes the first item equal to item; absent items are ignored.
func (c *ComboCheckList[V]) RemoveItem(item V) *ComboCheckList[V] {
	c.mu.Lock()
	i := slices.Index(c.items, item)
	if i < 0 {
		c.mu.Unlock()
		return c
	}
	c.removeLocked(i)
	c.mu.Unlock()

	c.Invalidate()
	return c
}

// RemoveItemAt removes the item at index.
func (c *ComboCheckList[V]) RemoveItemAt(index int) error {
	c.mu.Lock()
	if index < 0 || index >= len(c.items) {
		n := len(c.items)
		c.mu.Unlock()
		return fmt.Errorf("remove item %d of %d: %w", index, n, ErrIndexOutOfRange)
	}
	c.removeLocked(index)
	c.mu.Unlock()

	c.Invalidate()
	return nil
}

func (c *ComboCheckList[V]) removeLocked(i int) {
	c.items = slices.Delete(c.items, i, i+1)
	c.status = slices.Delete(c.status, i, i+1)
}

// SetItem replaces the item at index, keeping its state.
func (c *ComboCheckList[V]) SetItem(index int, item V) error {
	if isNil(item) {
		return fmt.Errorf("set item %d: %w", index, ErrNilItem)
	}
	c.mu.Lock()
	if index < 0 || index >= len(c.items) {
		n := len(c.items)
		c.mu.Unlock()
		return fmt.Errorf("set item %d of %d: %w", index, n, ErrIndexOutOfRange)
	}
	c.items[index] = item
	c.mu.Unlock()

	c.Invalidate()
	return nil
}

// ItemCount returns the number of items.
func (c *ComboCheckList[V]) ItemCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Item returns the item at index.
func (c *ComboCheckList[V]) Item(index int) (V, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if index < 0 || index >= len(c.items) {
		var zero V
		return zero, fmt.Errorf("item %d of %d: %w", index, len(c.items), ErrIndexOutOfRange)
	}
	return c.items[index], nil
}

// Items returns a copy of the items.
func (c *ComboCheckList[V]) Items() []V {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items)
}

// IsChecked reports the state of the first item equal to item.
func (c *ComboCheckList[V]) IsChecked(item V) (checked, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := slices.Index(c.items, item); i >= 0 {
		return c.status[i], true
	}
	return false, false
}

// IsCheckedAt reports the state of the item at index.
func (c *ComboCheckList[V]) IsCheckedAt(index int) (checked, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if index < 0 || index >= len(c.status) {
		return false, false
	}
	return c.status[index], true
}

// SetChecked sets the state of the first item equal to item and notifies listeners.
// Absent items are ignored.
func (c *ComboCheckList[V]) SetChecked(item V, checked bool) *ComboCheckList[V] {
	c.mu.Lock()
	i := slices.Index(c.items, item)
	if i < 0 {
		c.mu.Unlock()
		return c
	}
	c.status[i] = checked
	c.mu.Unlock()

	c.Invalidate()
	c.notify([]statusChange{{index: i, checked: checked}})
	return c
}

// SetCheckedAt sets the state of the item at index and notifies listeners.
func (c *ComboCheckList[V]) SetCheckedAt(index int, checked bool) error {
	c.mu.Lock()
	if index < 0 || index >= len(c.status) {
		n := len(c.status)
		c.mu.Unlock()
		return fmt.Errorf("set checked %d of %d: %w", index, n, ErrIndexOutOfRange)
	}
	c.status[index] = checked
	c.mu.Unlock()

	c.Invalidate()
	c.notify([]statusChange{{index: index, checked: checked}})
	return nil
}

// CheckedItems returns the checked items in list order.
func (c *ComboCheckList[V]) CheckedItems() []V {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []V
	for i, item := range c.items {
		if c.status[i] {
			out = append(out, item)
		}
	}
	return out
}

// Text returns the summary shown in the collapsed control.
func (c *ComboCheckList[V]) Text() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.textLocked()
}

func (c *ComboCheckList[V]) textLocked() string {
	checked := 0
	for _, s := range c.status {
		if s {
			checked++
		}
	}
	return fmt.Sprintf("%d of %d checked", checked, len(c.items))
}

// DropDownNumberOfRows returns the popup height limit; 0 means unlimited.
func (c *ComboCheckList[V]) DropDownNumberOfRows() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dropDownRows
}

// SetDropDownNumberOfRows limits the popup height; 0 shows every item.
// It applies the next time the popup opens.
func (c *ComboCheckList[V]) SetDropDownNumberOfRows(rows int) *ComboCheckList[V] {
	c.mu.Lock()
	c.dropDownRows = max(0, rows)
	c.mu.Unlock()
	return c
}

// IsDropDownFocused reports whether the drop-down button, not the popup, has focus.
func (c *ComboCheckList[V]) IsDropDownFocused() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dropDownFocused
}

// IsPopupOpen reports whether the popup is showing.
func (c *ComboCheckList[V]) IsPopupOpen() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.popup != nil
}

// PopupList returns the checklist of the open popup, nil when collapsed.
func (c *ComboCheckList[V]) PopupList() *CheckBoxList[V] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.popup == nil {
		return nil
	}
	return c.popup.list
}

// PopupWindow returns the open popup window, nil when collapsed.
func (c *ComboCheckList[V]) PopupWindow() *gui.BasicWindow {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.popup == nil {
		return nil
	}
	return c.popup.window
}

// AddListener registers listener; nil and already registered listeners are ignored.
// listener must be a comparable value, typically a pointer. Function and other
// non-comparable values are rejected; use AddListenerFunc for functions.
func (c *ComboCheckList[V]) AddListener(listener Listener) *ComboCheckList[V] {
	if listener == nil {
		return c
	}
	if !comparableListener(listener) {
		c.Logger().Warn().
			Str("component", KindComboCheckList).
			Str("listener", fmt.Sprintf("%T", listener)).
			Msg("non-comparable listener rejected")
		return c
	}
	c.listeners.add(listener)
	return c
}

// AddListenerFunc registers fn and returns a func that unregisters it.
// Each call is a separate registration; calling remove more than once is a no-op.
func (c *ComboCheckList[V]) AddListenerFunc(fn func(index int, checked bool)) (remove func()) {
	if fn == nil {
		return func() {}
	}
	l := &funcListener{fn: fn}
	c.listeners.add(l)
	return func() { c.listeners.remove(l) }
}

// RemoveListener unregisters listener.
func (c *ComboCheckList[V]) RemoveListener(listener Listener) *ComboCheckList[V] {
	if listener != nil {
		c.listeners.remove(listener)
	}
	return c
}

// KeyMap returns the key bindings.
func (c *ComboCheckList[V]) KeyMap() ComboCheckListKeyMap {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.keys
}

// SetKeyMap replaces the key bindings.
func (c *ComboCheckList[V]) SetKeyMap(keys ComboCheckListKeyMap) {
	c.mu.Lock()
	c.keys = keys
	c.mu.Unlock()
}

// Renderer returns the renderer, installing the default one on first use.
func (c *ComboCheckList[V]) Renderer() ComboCheckListRenderer[V] {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.renderer == nil {
		c.renderer = DefaultComboCheckListRenderer[V]{}
	}
	return c.renderer
}

// SetRenderer replaces the renderer.
func (c *ComboCheckList[V]) SetRenderer(r ComboCheckListRenderer[V]) *ComboCheckList[V] {
	c.mu.Lock()
	c.renderer = r
	c.mu.Unlock()
	c.Invalidate()
	return c
}

// ComboCheckListState is a consistent copy of what a renderer needs.
type ComboCheckListState[V comparable] struct {
	Items           []V
	Checked         []bool
	Text            string
	Focused         bool
	DropDownFocused bool
	PopupOpen       bool
	Size            gui.Size
}

// State returns a snapshot taken under a single read lock.
func (c *ComboCheckList[V]) State() ComboCheckListState[V] {
	focused := c.IsFocused()
	size := c.Size()

	c.mu.RLock()
	defer c.mu.RUnlock()
	return ComboCheckListState[V]{
		Items:           slices.Clone(c.items),
		Checked:         slices.Clone(c.status),
		Text:            c.textLocked(),
		Focused:         focused,
		DropDownFocused: c.dropDownFocused,
		PopupOpen:       c.popup != nil,
		Size:            size,
	}
}

// notify delivers changes in order to a snapshot of the listeners, on the GUI loop when attached.
func (c *ComboCheckList[V]) notify(changes []statusChange) {
	if len(changes) == 0 {
		return
	}
	c.Dispatch(func() {
		listeners := c.listeners.snapshot()
		for _, change := range changes {
			for _, l := range listeners {
				l.OnStatusChange(change.index, change.checked)
			}
		}
	})
}

// HandleKeyStroke drives the collapsed/expanded state machine.
func (c *ComboCheckList[V]) HandleKeyStroke(ks gui.KeyStroke) gui.Result {
	c.mu.RLock()
	popup, keys := c.popup, c.keys
	c.mu.RUnlock()

	switch {
	case key.Matches(ks, keys.Up):
		if popup == nil {
			return gui.MoveFocusUp
		}
		popup.list.HandleKeyStroke(ks)
		return gui.Handled
	case key.Matches(ks, keys.Down):
		if popup == nil {
			return gui.MoveFocusDown
		}
		popup.list.HandleKeyStroke(ks)
		return gui.Handled
	case key.Matches(ks, keys.Navigate):
		if popup != nil {
			popup.list.HandleKeyStroke(ks)
			return gui.Handled
		}
	case key.Matches(ks, keys.Toggle):
		if popup == nil {
			c.openPopup()
			return gui.Handled
		}
		popup.list.ToggleSelected()
		c.Invalidate()
		return gui.Handled
	case key.Matches(ks, keys.Collapse):
		if popup != nil {
			c.commitPopup()
			return gui.Handled
		}
	}
	return c.InteractableBase.HandleKeyStroke(ks)
}

func (c *ComboCheckList[V]) OnEnterFocus(direction gui.FocusChangeDirection, previous gui.Interactable) {
	c.InteractableBase.OnEnterFocus(direction, previous)
	c.mu.Lock()
	c.dropDownFocused = true
	c.mu.Unlock()
}

// OnLeaveFocus closes an open popup without applying its changes.
func (c *ComboCheckList[V]) OnLeaveFocus(direction gui.FocusChangeDirection, next gui.Interactable) {
	c.InteractableBase.OnLeaveFocus(direction, next)

	c.mu.Lock()
	popup := c.detachPopupLocked()
	c.mu.Unlock()

	if popup != nil {
		popup.close()
		c.Invalidate()
		c.Logger().Debug().
			Str("component", KindComboCheckList).
			Msg("popup discarded on focus loss")
	}
}

func (c *ComboCheckList[V]) detachPopupLocked() *checkListPopup[V] {
	popup := c.popup
	c.popup = nil
	c.dropDownFocused = true
	return popup
}

func (c *ComboCheckList[V]) openPopup() {
	width := c.Size().Columns

	c.mu.Lock()
	if c.popup != nil {
		c.mu.Unlock()
		return
	}
	popup := newCheckListPopup(c, c.items, c.status, width, c.dropDownRows)
	c.popup = popup
	c.dropDownFocused = false
	count := len(c.items)
	c.mu.Unlock()

	popup.window.SetPosition(c.ToGlobal(gui.Position{Column: 0, Row: 1}))
	if g := c.TextGUI(); g != nil {
		g.AddWindow(popup.window)
	}
	c.Invalidate()

	c.Logger().Debug().
		Str("component", KindComboCheckList).
		Int("items", count).
		Msg("popup opened")
}

// commitPopup copies every popup row back by index, closes the popup and
// notifies listeners once per row.
func (c *ComboCheckList[V]) commitPopup() {
	c.mu.Lock()
	popup := c.popup
	if popup == nil {
		c.mu.Unlock()
		return
	}
	states := popup.list.CheckedStates()
	n := min(len(states), len(c.status))
	changes := make([]statusChange, 0, n)
	for i := 0; i < n; i++ {
		c.status[i] = states[i]
		changes = append(changes, statusChange{index: i, checked: states[i]})
	}
	c.detachPopupLocked()
	c.mu.Unlock()

	popup.close()
	c.Invalidate()

	c.Logger().Debug().
		Str("component", KindComboCheckList).
		Int("rows", n).
		Msg("popup committed")
	c.notify(changes)
}

func (c *ComboCheckList[V]) CursorLocation() (gui.Position, bool) {
	return c.Renderer().CursorLocation(c)
}

func (c *ComboCheckList[V]) PreferredSize() gui.Size {
	return c.CachedPreferredSize(func() gui.Size {
		return c.Renderer().PreferredSize(c)
	})
}

func (c *ComboCheckList[V]) Draw(g *gui.TextGraphics) {
	c.Renderer().Draw(g, c)
	c.MarkDrawn()
}

// checkListPopup is the auxiliary window shown while a ComboCheckList is expanded.
// It holds its own copy of the states until the owner commits them.
type checkListPopup[V comparable] struct {
	window *gui.BasicWindow
	list   *CheckBoxList[V]
}

func newCheckListPopup[V comparable](owner *ComboCheckList[V], items []V, status []bool, width, rows int) *checkListPopup[V] {
	list := NewCheckBoxList[V]()
	for i, item := range items {
		list.AddItem(item, status[i])
	}

	preferred := list.PreferredSize()
	if width > 0 {
		preferred = preferred.WithColumns(width)
	}
	if rows > 0 {
		preferred = preferred.WithRows(min(rows, preferred.Rows))
	}
	list.SetPreferredSize(preferred)
	list.OnEnterFocus(gui.FocusDirectionTeleport, nil)

	window := gui.NewBasicWindow("", gui.HintNoFocus, gui.HintFixedPosition)
	window.SetThemeProvider(owner.Theme)
	window.SetComponent(list)

	return &checkListPopup[V]{window: window, list: list}
}

func (p *checkListPopup[V]) close() {
	p.window.Close()
}
