package window_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/panewall/internal/config"
	"github.com/bnema/panewall/internal/ui/component"
	"github.com/bnema/panewall/internal/ui/layout"
	"github.com/bnema/panewall/internal/ui/layout/mocks"
	"github.com/bnema/panewall/internal/ui/window"
)

// buildRow creates a single-pane row backed by permissive mocks.
func buildRow(t *testing.T, factory *mocks.MockWidgetFactory) (*component.PaneRow, *mocks.MockBoxWidget) {
	t.Helper()
	box := mocks.NewMockBoxWidget(t)
	view := mocks.NewMockWebViewWidget(t)

	factory.EXPECT().NewBox(layout.OrientationHorizontal, 0).Return(box).Once()
	box.EXPECT().SetMargins(mock.Anything).Maybe()
	box.EXPECT().SetHExpand(mock.Anything).Maybe()
	box.EXPECT().SetVExpand(mock.Anything).Maybe()
	box.EXPECT().AddCSSClass(mock.Anything).Maybe()
	box.EXPECT().Append(mock.Anything).Maybe()

	factory.EXPECT().NewWebView().Return(view, nil).Once()
	view.EXPECT().SetHExpand(mock.Anything).Maybe()
	view.EXPECT().SetVExpand(mock.Anything).Maybe()
	view.EXPECT().SetTouchEventsEnabled(true).Once()
	view.EXPECT().LoadURI(mock.Anything).Once()

	row, err := component.NewPaneRow(context.Background(), factory, &config.Config{NumberOfWindows: 1, URL: "https://example.com"})
	require.NoError(t, err)
	return row, box
}

func TestNew_SetsTitleAndContent(t *testing.T) {
	// Arrange
	mockFactory := mocks.NewMockWidgetFactory(t)
	row, box := buildRow(t, mockFactory)
	mockWindow := mocks.NewMockWindowWidget(t)

	mockFactory.EXPECT().NewWindow().Return(mockWindow, nil).Once()
	mockWindow.EXPECT().SetTitle("Modular Multi-Touch Dual-Website Browser").Once()
	mockWindow.EXPECT().SetChild(mock.Anything).Run(func(child layout.Widget) {
		assert.Same(t, box, child)
	}).Once()

	// Act
	mw, err := window.New(context.Background(), mockFactory, row)

	// Assert
	require.NoError(t, err)
	assert.Same(t, row, mw.PaneRow())
}

func TestShow_MaximizesThenPresents(t *testing.T) {
	mockFactory := mocks.NewMockWidgetFactory(t)
	row, _ := buildRow(t, mockFactory)
	mockWindow := mocks.NewMockWindowWidget(t)

	var order []string
	mockFactory.EXPECT().NewWindow().Return(mockWindow, nil).Once()
	mockWindow.EXPECT().SetTitle(mock.Anything).Once()
	mockWindow.EXPECT().SetChild(mock.Anything).Once()
	mockWindow.EXPECT().Maximize().Run(func() { order = append(order, "maximize") }).Once()
	mockWindow.EXPECT().Present().Run(func() { order = append(order, "present") }).Once()

	mw, err := window.New(context.Background(), mockFactory, row)
	require.NoError(t, err)

	mw.Show()

	assert.Equal(t, []string{"maximize", "present"}, order)
}

func TestNew_WindowCreationFails(t *testing.T) {
	mockFactory := mocks.NewMockWidgetFactory(t)
	row, _ := buildRow(t, mockFactory)
	cause := errors.New("no display")
	mockFactory.EXPECT().NewWindow().Return(nil, cause).Once()

	mw, err := window.New(context.Background(), mockFactory, row)

	require.ErrorIs(t, err, window.ErrWindowCreationFailed)
	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "no display")
	assert.Nil(t, mw)
}

func TestNew_NilWindowWithoutError(t *testing.T) {
	mockFactory := mocks.NewMockWidgetFactory(t)
	row, _ := buildRow(t, mockFactory)
	mockFactory.EXPECT().NewWindow().Return(nil, nil).Once()

	mw, err := window.New(context.Background(), mockFactory, row)

	require.ErrorIs(t, err, window.ErrWindowCreationFailed)
	assert.Nil(t, mw)
}

func TestNew_NilRow(t *testing.T) {
	mockFactory := mocks.NewMockWidgetFactory(t)

	mw, err := window.New(context.Background(), mockFactory, nil)

	require.Error(t, err)
	assert.Nil(t, mw)
}

func TestNew_NilFactory(t *testing.T) {
	mw, err := window.New(context.Background(), nil, &component.PaneRow{})

	require.ErrorIs(t, err, component.ErrNoFactory)
	assert.Nil(t, mw)
}
