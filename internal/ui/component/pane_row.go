package component

import (
	"context"
	"fmt"

	"github.com/bnema/panewall/internal/config"
	"github.com/bnema/panewall/internal/logging"
	"github.com/bnema/panewall/internal/ui/layout"
)

const (
	// SeparatorWidth is the fixed width of the divider between two panes, in pixels.
	SeparatorWidth = 20

	// SeparatorClass is the CSS class styling pane dividers.
	SeparatorClass = "pane-separator"

	// PaneRowClass is the CSS class of the row container.
	PaneRowClass = "pane-row"
)

// PaneRow lays out web panes left to right with a fixed-width separator
// between each adjacent pair. Panes share the available width equally.
type PaneRow struct {
	box        layout.BoxWidget
	panes      []*WebPane
	separators []layout.SeparatorWidget
	children   []layout.Widget
}

// NewPaneRow builds cfg.EffectivePaneCount() panes, each loading cfg.URL.
func NewPaneRow(ctx context.Context, factory layout.WidgetFactory, cfg *config.Config) (*PaneRow, error) {
	if factory == nil {
		return nil, ErrNoFactory
	}
	if cfg == nil {
		cfg = config.Fallback()
	}

	ctx = logging.WithURL(logging.WithComponent(ctx, "pane-row"), cfg.URL)
	log := logging.FromContext(ctx)

	count := cfg.EffectivePaneCount()
	if count != cfg.NumberOfWindows {
		log.Debug().
			Int("requested", cfg.NumberOfWindows).
			Int("effective", count).
			Msg("pane count clamped")
	}

	box := factory.NewBox(layout.OrientationHorizontal, 0)
	box.SetMargins(0)
	box.SetHExpand(true)
	box.SetVExpand(true)
	box.AddCSSClass(PaneRowClass)

	row := &PaneRow{
		box:        box,
		panes:      make([]*WebPane, 0, count),
		separators: make([]layout.SeparatorWidget, 0, count-1),
		children:   make([]layout.Widget, 0, 2*count-1),
	}

	for i := range count {
		if i > 0 {
			row.appendSeparator(factory)
		}

		pane, err := NewWebPane(logging.WithPaneIndex(ctx, i), factory)
		if err != nil {
			return nil, fmt.Errorf("pane %d: %w", i, err)
		}
		pane.LoadURL(cfg.URL)

		row.panes = append(row.panes, pane)
		row.append(pane.Widget())
	}

	log.Info().
		Int("panes", len(row.panes)).
		Msg("pane row built")

	return row, nil
}

func (r *PaneRow) appendSeparator(factory layout.WidgetFactory) {
	sep := factory.NewSeparator(layout.OrientationVertical)
	sep.SetSizeRequest(SeparatorWidth, -1)
	sep.SetHExpand(false)
	sep.SetVExpand(true)
	sep.AddCSSClass(SeparatorClass)

	r.separators = append(r.separators, sep)
	r.append(sep)
}

func (r *PaneRow) append(child layout.Widget) {
	r.box.Append(child)
	r.children = append(r.children, child)
}

// Panes returns the panes in display order.
func (r *PaneRow) Panes() []*WebPane {
	return r.panes
}

// Separators returns the separators in display order.
func (r *PaneRow) Separators() []layout.SeparatorWidget {
	return r.separators
}

// Children returns panes and separators in the order they were appended.
func (r *PaneRow) Children() []layout.Widget {
	return r.children
}

// Widget returns the row container.
func (r *PaneRow) Widget() layout.Widget {
	return r.box
}
