// Package component provides the UI building blocks of the pane wall.
package component

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/panewall/internal/logging"
	"github.com/bnema/panewall/internal/ui/layout"
)

// ErrNoFactory is returned when a component is built without a widget factory.
var ErrNoFactory = errors.New("widget factory is nil")

// WebPane is a single embedded browser surface configured for touch input.
type WebPane struct {
	view   layout.WebViewWidget
	logger zerolog.Logger
}

// NewWebPane creates a web view that fills its allocation and receives raw
// touch events, so gestures such as pinch-to-zoom reach the page itself.
// No URL is loaded until LoadURL is called.
func NewWebPane(ctx context.Context, factory layout.WidgetFactory) (*WebPane, error) {
	if factory == nil {
		return nil, ErrNoFactory
	}

	view, err := factory.NewWebView()
	if err != nil {
		return nil, fmt.Errorf("failed to create web view: %w", err)
	}

	view.SetHExpand(true)
	view.SetVExpand(true)
	view.SetTouchEventsEnabled(true)

	return &WebPane{
		view:   view,
		logger: logging.FromContext(ctx).With().Str("component", "web-pane").Logger(),
	}, nil
}

// LoadURL navigates the pane. The URL is handed to the web engine unvalidated;
// whatever the engine does with a bad URL is what the pane shows.
func (p *WebPane) LoadURL(url string) {
	p.logger.Debug().Str("target", url).Msg("loading url")
	p.view.LoadURI(url)
}

// URL returns the URL currently loaded by the web engine.
func (p *WebPane) URL() string {
	return p.view.URI()
}

// TouchEventsEnabled reports whether the pane receives raw touch events.
func (p *WebPane) TouchEventsEnabled() bool {
	return p.view.TouchEventsEnabled()
}

// Widget returns the underlying web view widget.
func (p *WebPane) Widget() layout.WebViewWidget {
	return p.view
}
