package cli

import (
	"context"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/tuikit/internal/logging"
	"github.com/bnema/tuikit/internal/ui/component"
	"github.com/bnema/tuikit/internal/ui/gui"
)

// DefaultDemoItems are shown when the demo command gets no arguments.
var DefaultDemoItems = []string{
	"Alabama", "Michigan", "Wisconsin", "Idaho", "Oregon",
	"Iowa", "Kansas", "Texas", "North Carolina",
}

// ComboDemo is a window holding a bordered ComboCheckList and an OK button.
// OK records the checked items and closes the window.
type ComboDemo struct {
	Window *gui.BasicWindow
	Combo  *component.ComboCheckList[string]
	OK     *component.Button

	mu        sync.Mutex
	confirmed bool
	result    []string
}

// NewComboDemo builds the demo window and adds it to g.
// rows limits the popup height; 0 shows every item.
func NewComboDemo(g *gui.MultiWindowTextGUI, items []string, rows int) *ComboDemo {
	if len(items) == 0 {
		items = DefaultDemoItems
	}

	const title = "ComboCheckList"
	ctx := logging.WithWindow(logging.WithContext(context.Background(), *g.Logger()), title)

	d := &ComboDemo{
		Window: gui.NewBasicWindow(title, gui.HintCentered),
		Combo:  component.NewComboCheckList[string]().SetDropDownNumberOfRows(rows),
	}
	for _, item := range items {
		d.Combo.AddItem(item)
	}
	d.Combo.AddListener(statusLogger{combo: d.Combo, logger: logging.FromContext(ctx)})
	d.OK = component.NewButton("OK", d.confirm)

	d.Window.SetComponent(gui.NewHorizontalPanel(gui.WithBorder(d.Combo, "Test"), d.OK))
	g.AddWindow(d.Window)
	return d
}

func (d *ComboDemo) confirm() {
	checked := d.Combo.CheckedItems()

	d.mu.Lock()
	d.confirmed = true
	d.result = checked
	d.mu.Unlock()

	d.Window.Close()
}

// Result returns the items checked when OK was pressed, and whether it was.
func (d *ComboDemo) Result() ([]string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.result), d.confirmed
}

// statusLogger logs every state change reported by the combo.
type statusLogger struct {
	combo  *component.ComboCheckList[string]
	logger *zerolog.Logger
}

func (l statusLogger) OnStatusChange(index int, checked bool) {
	item, err := l.combo.Item(index)
	if err != nil {
		l.logger.Warn().Err(err).Int("index", index).Msg("status change for missing item")
		return
	}
	l.logger.Debug().
		Int("index", index).
		Str("item", item).
		Bool("checked", checked).
		Msg("status changed")
}
