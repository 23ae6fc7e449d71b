package gui

import (
	"sync"

	"github.com/rs/zerolog"
)

// Result is what an Interactable reports after handling a keystroke.
type Result uint8

const (
	// Unhandled lets the window try its own bindings.
	Unhandled Result = iota
	Handled
	MoveFocusNext
	MoveFocusPrevious
	MoveFocusUp
	MoveFocusDown
	MoveFocusLeft
	MoveFocusRight
)

func (r Result) String() string {
	switch r {
	case Handled:
		return "handled"
	case MoveFocusNext:
		return "move-focus-next"
	case MoveFocusPrevious:
		return "move-focus-previous"
	case MoveFocusUp:
		return "move-focus-up"
	case MoveFocusDown:
		return "move-focus-down"
	case MoveFocusLeft:
		return "move-focus-left"
	case MoveFocusRight:
		return "move-focus-right"
	default:
		return "unhandled"
	}
}

// FocusChangeDirection describes how focus arrived at or left an Interactable.
type FocusChangeDirection uint8

const (
	FocusDirectionTeleport FocusChangeDirection = iota
	FocusDirectionNext
	FocusDirectionPrevious
	FocusDirectionUp
	FocusDirectionDown
	FocusDirectionLeft
	FocusDirectionRight
	// FocusDirectionReset is used when the window drops focus, e.g. on close.
	FocusDirectionReset
)

// Container is anything a component can be placed into.
type Container interface {
	Invalidate()
	Theme() *Theme
	TextGUI() TextGUI
	ToGlobal(Position) Position
}

// Component is a drawable element of a window.
type Component interface {
	Position() Position
	SetPosition(Position)
	Size() Size
	SetSize(Size)
	PreferredSize() Size
	Draw(g *TextGraphics)
	Invalidate()
	IsInvalid() bool
	Parent() Container
	SetParent(Container)
	Theme() *Theme
	TextGUI() TextGUI
	ToGlobal(Position) Position
}

// Interactable is a component that can hold keyboard focus.
type Interactable interface {
	Component
	HandleKeyStroke(KeyStroke) Result
	// CursorLocation is relative to the component; false hides the cursor.
	CursorLocation() (Position, bool)
	IsFocused() bool
	IsFocusable() bool
	OnEnterFocus(direction FocusChangeDirection, previous Interactable)
	OnLeaveFocus(direction FocusChangeDirection, next Interactable)
}

// ComponentBase carries the state shared by every component.
// Embed it and call InitComponent from the constructor.
type ComponentBase struct {
	mu        sync.Mutex
	kind      string
	parent    Container
	position  Position
	size      Size
	preferred *Size
	cached    Size
	hasCached bool
	gen       uint64
	invalid   bool
	theme     *Theme
}

// InitComponent sets the theme kind used to look up the component's ThemeDefinition.
func (b *ComponentBase) InitComponent(kind string) {
	b.mu.Lock()
	b.kind = kind
	b.invalid = true
	b.mu.Unlock()
}

// Kind returns the theme kind of the component.
func (b *ComponentBase) Kind() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.kind
}

func (b *ComponentBase) Position() Position {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.position
}

func (b *ComponentBase) SetPosition(p Position) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.position = p
}

func (b *ComponentBase) Size() Size {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.size
}

func (b *ComponentBase) SetSize(s Size) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.size = s
}

func (b *ComponentBase) Parent() Container {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.parent
}

func (b *ComponentBase) SetParent(p Container) {
	b.mu.Lock()
	b.parent = p
	b.mu.Unlock()
	b.Invalidate()
}

// SetPreferredSize overrides the calculated preferred size.
func (b *ComponentBase) SetPreferredSize(s Size) {
	b.mu.Lock()
	b.preferred = &s
	b.mu.Unlock()
	b.Invalidate()
}

// ClearPreferredSize drops an override set with SetPreferredSize.
func (b *ComponentBase) ClearPreferredSize() {
	b.mu.Lock()
	b.preferred = nil
	b.mu.Unlock()
	b.Invalidate()
}

// PreferredSizeOverride returns the size set with SetPreferredSize, if any.
func (b *ComponentBase) PreferredSizeOverride() (Size, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.preferred == nil {
		return Size{}, false
	}
	return *b.preferred, true
}

// CachedPreferredSize returns the override, the cached size, or calc's result.
// A result computed while an invalidation happened is not cached.
func (b *ComponentBase) CachedPreferredSize(calc func() Size) Size {
	b.mu.Lock()
	if b.preferred != nil {
		s := *b.preferred
		b.mu.Unlock()
		return s
	}
	if b.hasCached {
		s := b.cached
		b.mu.Unlock()
		return s
	}
	gen := b.gen
	b.mu.Unlock()

	s := calc()

	b.mu.Lock()
	if gen == b.gen {
		b.cached = s
		b.hasCached = true
	}
	b.mu.Unlock()
	return s
}

// Invalidate drops the cached preferred size and marks the parent chain for redraw.
func (b *ComponentBase) Invalidate() {
	b.mu.Lock()
	b.invalid = true
	b.hasCached = false
	b.gen++
	parent := b.parent
	b.mu.Unlock()

	if parent != nil {
		parent.Invalidate()
	}
}

func (b *ComponentBase) IsInvalid() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.invalid
}

// MarkDrawn clears the invalid flag; called at the end of Draw.
func (b *ComponentBase) MarkDrawn() {
	b.mu.Lock()
	b.invalid = false
	b.mu.Unlock()
}

// SetTheme overrides the theme inherited from the parent.
func (b *ComponentBase) SetTheme(t *Theme) {
	b.mu.Lock()
	b.theme = t
	b.mu.Unlock()
	b.Invalidate()
}

func (b *ComponentBase) Theme() *Theme {
	b.mu.Lock()
	theme, parent := b.theme, b.parent
	b.mu.Unlock()

	switch {
	case theme != nil:
		return theme
	case parent != nil:
		return parent.Theme()
	default:
		return DefaultTheme()
	}
}

// ThemeDefinition returns the definition for this component's kind.
func (b *ComponentBase) ThemeDefinition() *ThemeDefinition {
	return b.Theme().Definition(b.Kind())
}

func (b *ComponentBase) TextGUI() TextGUI {
	parent := b.Parent()
	if parent == nil {
		return nil
	}
	return parent.TextGUI()
}

// ToGlobal translates a component-relative position to screen coordinates.
func (b *ComponentBase) ToGlobal(p Position) Position {
	b.mu.Lock()
	pos, parent := b.position, b.parent
	b.mu.Unlock()

	p = pos.Add(p)
	if parent == nil {
		return p
	}
	return parent.ToGlobal(p)
}

// Dispatch runs fn on the GUI event loop, or right away when the component is detached.
func (b *ComponentBase) Dispatch(fn func()) {
	if g := b.TextGUI(); g != nil {
		g.Dispatch(fn)
		return
	}
	fn()
}

// Logger returns the GUI logger, or a disabled one when detached.
func (b *ComponentBase) Logger() *zerolog.Logger {
	if g := b.TextGUI(); g != nil {
		return g.Logger()
	}
	nop := zerolog.Nop()
	return &nop
}

// InteractableBase adds focus handling to ComponentBase.
type InteractableBase struct {
	ComponentBase

	focusMu  sync.Mutex
	focused  bool
	disabled bool
}

func (b *InteractableBase) IsFocused() bool {
	b.focusMu.Lock()
	defer b.focusMu.Unlock()
	return b.focused
}

func (b *InteractableBase) IsFocusable() bool {
	b.focusMu.Lock()
	defer b.focusMu.Unlock()
	return !b.disabled
}

// SetEnabled toggles whether the window may move focus here.
func (b *InteractableBase) SetEnabled(enabled bool) {
	b.focusMu.Lock()
	b.disabled = !enabled
	b.focusMu.Unlock()
	b.Invalidate()
}

func (b *InteractableBase) IsEnabled() bool {
	return b.IsFocusable()
}

func (b *InteractableBase) OnEnterFocus(FocusChangeDirection, Interactable) {
	b.focusMu.Lock()
	b.focused = true
	b.focusMu.Unlock()
	b.Invalidate()
}

func (b *InteractableBase) OnLeaveFocus(FocusChangeDirection, Interactable) {
	b.focusMu.Lock()
	b.focused = false
	b.focusMu.Unlock()
	b.Invalidate()
}

func (b *InteractableBase) CursorLocation() (Position, bool) {
	return TopLeft, false
}

// HandleKeyStroke implements the default focus traversal keys.
func (b *InteractableBase) HandleKeyStroke(ks KeyStroke) Result {
	if ks.Alt || ks.Ctrl {
		return Unhandled
	}
	switch ks.Type {
	case KeyArrowUp:
		return MoveFocusUp
	case KeyArrowDown:
		return MoveFocusDown
	case KeyArrowLeft:
		return MoveFocusLeft
	case KeyArrowRight:
		return MoveFocusRight
	case KeyTab:
		return MoveFocusNext
	case KeyReverseTab:
		return MoveFocusPrevious
	}
	return Unhandled
}
