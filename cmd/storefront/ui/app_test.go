package ui

import (
	"errors"
	"testing"
	"time"

	"storefront/internal/legal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	m, cmd := a.Update(msg)
	next, ok := m.(App)
	require.True(t, ok)
	return next, cmd
}

func newTestApp(t *testing.T, opts Options) App {
	t.Helper()
	if opts.Documents == nil {
		opts.Documents = map[legal.Kind]*legal.Document{legal.Privacy: testDocument()}
	}
	if opts.SettleDelay == 0 {
		opts.SettleDelay = time.Millisecond
	}
	return NewApp(testContent(), opts)
}

func TestApp_InitMeasuresDescription(t *testing.T) {
	a := newTestApp(t, Options{})
	require.True(t, a.Product().Mounted())

	msgs := runCmd(a.Init())
	require.Len(t, msgs, 1)

	a, _ = update(t, a, tea.WindowSizeMsg{Width: 80, Height: 30})
	a, _ = update(t, a, msgs[0])
	assert.True(t, a.Product().Description().Overflow())

	a, _ = update(t, a, keyRune('m'))
	assert.Equal(t, Expanded, a.Product().Description().State())
}

func TestApp_NavigationMountsAndUnmounts(t *testing.T) {
	a := newTestApp(t, Options{})
	a, _ = update(t, a, tea.WindowSizeMsg{Width: 80, Height: 30})

	a, _ = update(t, a, keyRune('p'))
	assert.Equal(t, PagePrivacy, a.Page())
	assert.False(t, a.Product().Mounted())
	assert.False(t, a.Product().Description().Mounted())
	assert.Contains(t, stripANSI(a.View()), "Back to App")

	// Product keys are inert on a legal page.
	a, _ = update(t, a, keyRune('m'))
	assert.Equal(t, Collapsed, a.Product().Description().State())

	a, cmd := update(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, PageProduct, a.Page())
	assert.True(t, a.Product().Description().Mounted())
	assert.NotNil(t, cmd, "remount schedules a measurement")

	a, _ = update(t, a, keyRune('t'))
	assert.Equal(t, PageTerms, a.Page())
	assert.Contains(t, stripANSI(a.View()), "Terms of Service is not available.")
}

func TestApp_StaleMeasurementAfterNavigation(t *testing.T) {
	a := newTestApp(t, Options{})
	pending := runCmd(a.Init())
	require.Len(t, pending, 1)

	a, _ = update(t, a, keyRune('p'))
	a, _ = update(t, a, pending[0])
	assert.False(t, a.Product().Description().Overflow())
}

func TestApp_ResizeGoesToActivePageOnly(t *testing.T) {
	a := newTestApp(t, Options{})
	a, _ = update(t, a, tea.WindowSizeMsg{Width: 100, Height: 30})
	a, _ = update(t, a, keyRune('p'))

	a, _ = update(t, a, tea.WindowSizeMsg{Width: 50, Height: 20})
	assert.Equal(t, 100, a.product.layout.TerminalWidth)
	assert.Equal(t, 50, a.legal[PagePrivacy].layout.TerminalWidth)

	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, 50, a.product.layout.TerminalWidth)
}

func TestApp_ContentReload(t *testing.T) {
	a := newTestApp(t, Options{})
	a, _ = update(t, a, tea.WindowSizeMsg{Width: 100, Height: 30})

	a, _ = update(t, a, ContentReloadedMsg{Err: errors.New("bad json")})
	assert.Contains(t, a.Product().Status(), "bad json")
	assert.Equal(t, "Habit Hero", a.Product().Content().App.Name)
	assert.Contains(t, stripANSI(a.View()), "Reload failed")

	next := testContent()
	next.App.Name = "Tiny Tasks"
	a, _ = update(t, a, ContentReloadedMsg{Content: next})
	assert.Empty(t, a.Product().Status())
	assert.Equal(t, "Tiny Tasks", a.Product().Content().App.Name)
}

func TestApp_Quit(t *testing.T) {
	action := newTestAction(t, &fakeClipboard{})
	a := newTestApp(t, Options{Share: action})
	require.Equal(t, 1, action.Subscribers())

	a, cmd := update(t, a, keyRune('q'))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
	assert.Zero(t, action.Subscribers())
	assert.False(t, a.Product().Mounted())
}

func TestApp_ShareFollowsWidth(t *testing.T) {
	action := newTestAction(t, &fakeClipboard{})
	a := newTestApp(t, Options{Share: action, CompactWidth: 60})

	a, _ = update(t, a, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.True(t, a.Product().Share().Enabled())

	a, _ = update(t, a, tea.WindowSizeMsg{Width: 40, Height: 30})
	assert.False(t, a.Product().Share().Enabled())
}

func TestPageString(t *testing.T) {
	assert.Equal(t, "product", PageProduct.String())
	assert.Equal(t, "privacy", PagePrivacy.String())
	assert.Equal(t, "terms", PageTerms.String())
}
