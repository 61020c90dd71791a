package component_test

import (
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/bnema/panewall/internal/ui/layout"
	"github.com/bnema/panewall/internal/ui/layout/mocks"
)

// newWebViewMock returns a web view mock expecting the setup NewWebPane
// performs followed by a single navigation to url.
func newWebViewMock(t *testing.T, url string) *mocks.MockWebViewWidget {
	t.Helper()
	view := mocks.NewMockWebViewWidget(t)
	view.EXPECT().SetHExpand(true).Once()
	view.EXPECT().SetVExpand(true).Once()
	view.EXPECT().SetTouchEventsEnabled(true).Once()
	view.EXPECT().LoadURI(url).Once()
	view.EXPECT().TouchEventsEnabled().Return(true).Maybe()
	view.EXPECT().URI().Return(url).Maybe()
	return view
}

func newSeparatorMock(t *testing.T) *mocks.MockSeparatorWidget {
	t.Helper()
	sep := mocks.NewMockSeparatorWidget(t)
	sep.EXPECT().SetSizeRequest(20, -1).Once()
	sep.EXPECT().SetHExpand(false).Once()
	sep.EXPECT().SetVExpand(true).Once()
	sep.EXPECT().AddCSSClass("pane-separator").Once()
	return sep
}

// rowFixture wires a mock factory that hands out fresh widget mocks and
// records what the row appends to its box.
type rowFixture struct {
	factory    *mocks.MockWidgetFactory
	box        *mocks.MockBoxWidget
	views      []*mocks.MockWebViewWidget
	separators []*mocks.MockSeparatorWidget
	appended   []layout.Widget
}

func newRowFixture(t *testing.T, url string, panes int) *rowFixture {
	t.Helper()
	f := &rowFixture{
		factory: mocks.NewMockWidgetFactory(t),
		box:     mocks.NewMockBoxWidget(t),
	}

	f.factory.EXPECT().NewBox(layout.OrientationHorizontal, 0).Return(f.box).Once()
	f.box.EXPECT().SetMargins(0).Once()
	f.box.EXPECT().SetHExpand(true).Once()
	f.box.EXPECT().SetVExpand(true).Once()
	f.box.EXPECT().AddCSSClass("pane-row").Once()
	f.box.EXPECT().Append(mock.Anything).Run(func(child layout.Widget) {
		f.appended = append(f.appended, child)
	}).Times(2*panes - 1)

	f.factory.EXPECT().NewWebView().RunAndReturn(func() (layout.WebViewWidget, error) {
		view := newWebViewMock(t, url)
		f.views = append(f.views, view)
		return view, nil
	}).Times(panes)

	if panes > 1 {
		f.factory.EXPECT().NewSeparator(layout.OrientationVertical).RunAndReturn(func(layout.Orientation) layout.SeparatorWidget {
			sep := newSeparatorMock(t)
			f.separators = append(f.separators, sep)
			return sep
		}).Times(panes - 1)
	}

	return f
}
