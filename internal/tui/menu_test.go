package tui

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-launcher/internal/mock"
	"github.com/MKhiriev/go-launcher/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func testInfo() *models.VersionInfo {
	return models.NewVersionInfoFromMap(map[string]string{
		"buildNumber":    "42",
		"displayVersion": "1.2.3",
	})
}

func newTestMenu(t *testing.T, clip Clipboard) *MenuModel {
	t.Helper()
	return NewMenuModel("Test Launcher", testInfo(), ThemeByName("default"), clip)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// buttonPoint returns a screen point inside button idx.
func buttonPoint(m *MenuModel, idx int) (int, int) {
	top := appPaddingTop + lipgloss.Height(m.headerView())
	return appPaddingLeft + 3, top + idx*buttonHeight + 1
}

func mouse(action tea.MouseAction, button tea.MouseButton, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

func hoveredIndexes(m *MenuModel) []int {
	var out []int
	for i, b := range m.buttons {
		if b.Hovered() {
			out = append(out, i)
		}
	}
	return out
}

// ── keyboard ──────────────────────────────────────────────────────────────────

func TestNewMenuModel_FocusesFirstButton(t *testing.T) {
	m := newTestMenu(t, nil)

	require.Len(t, m.buttons, 3)
	assert.Equal(t, []int{0}, hoveredIndexes(m))
	assert.Nil(t, m.Init())
}

func TestMenuModel_KeyboardNavigation(t *testing.T) {
	m := newTestMenu(t, nil)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.idx)
	assert.Equal(t, []int{1}, hoveredIndexes(m))

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 2, m.idx)

	// Stays on the last button.
	m.Update(keyRunes("j"))
	assert.Equal(t, 2, m.idx)

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 0, m.idx)

	// Stays on the first button.
	m.Update(keyRunes("k"))
	assert.Equal(t, 0, m.idx)
	assert.Equal(t, []int{0}, hoveredIndexes(m))
}

func TestMenuModel_EnterOpensBuildInfo(t *testing.T) {
	m := newTestMenu(t, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageBuildInfo}, cmd())
}

func TestMenuModel_QuitKey(t *testing.T) {
	m := newTestMenu(t, nil)

	_, cmd := m.Update(keyRunes("q"))

	require.NotNil(t, cmd)
	assert.Equal(t, quitMsg{}, cmd())
}

func TestMenuModel_CopyKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	clip := mock.NewMockClipboard(ctrl)
	m := newTestMenu(t, clip)

	clip.EXPECT().WriteAll(m.info.String()).Return(nil)

	_, cmd := m.Update(keyRunes("c"))

	require.NotNil(t, cmd)
	assert.Equal(t, copiedMsg{}, cmd())
}

func TestMenuModel_CopyFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	clip := mock.NewMockClipboard(ctrl)
	m := newTestMenu(t, clip)

	clip.EXPECT().WriteAll(gomock.Any()).Return(assert.AnError)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	msg, ok := cmd().(copyFailedMsg)
	require.True(t, ok)
	assert.ErrorIs(t, msg.err, assert.AnError)
}

func TestMenuModel_IgnoresOtherMessages(t *testing.T) {
	m := newTestMenu(t, nil)

	_, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.idx)
}

// ── mouse ─────────────────────────────────────────────────────────────────────

func TestMenuModel_MouseHover(t *testing.T) {
	m := newTestMenu(t, nil)

	x, y := buttonPoint(m, 2)
	m.Update(mouse(tea.MouseActionMotion, tea.MouseButtonNone, x, y))
	assert.Equal(t, []int{2}, hoveredIndexes(m))

	// Leaving every button clears the hover.
	m.Update(mouse(tea.MouseActionMotion, tea.MouseButtonNone, 0, 0))
	assert.Empty(t, hoveredIndexes(m))
}

func TestMenuModel_MouseClick(t *testing.T) {
	m := newTestMenu(t, nil)
	x, y := buttonPoint(m, 2)

	_, cmd := m.Update(mouse(tea.MouseActionPress, tea.MouseButtonLeft, x, y))
	assert.Nil(t, cmd)
	assert.True(t, m.buttons[2].Pressed())

	_, cmd = m.Update(mouse(tea.MouseActionRelease, tea.MouseButtonNone, x, y))
	assert.False(t, m.buttons[2].Pressed())
	require.NotNil(t, cmd)
	assert.Equal(t, quitMsg{}, cmd())
}

// TestMenuModel_MouseReleaseOutsideCancels verifies that dragging off a held
// button and releasing elsewhere does not click it.
func TestMenuModel_MouseReleaseOutsideCancels(t *testing.T) {
	m := newTestMenu(t, nil)
	x, y := buttonPoint(m, 0)

	m.Update(mouse(tea.MouseActionPress, tea.MouseButtonLeft, x, y))

	m.Update(mouse(tea.MouseActionMotion, tea.MouseButtonLeft, 0, 0))
	assert.False(t, m.buttons[0].Pressed())

	m.Update(mouse(tea.MouseActionMotion, tea.MouseButtonLeft, x, y))
	assert.True(t, m.buttons[0].Pressed())

	_, cmd := m.Update(mouse(tea.MouseActionRelease, tea.MouseButtonNone, 0, 0))
	assert.Nil(t, cmd)
	assert.False(t, m.buttons[0].Pressed())
	assert.Equal(t, -1, m.held)
}

func TestMenuModel_MouseRightPressIgnored(t *testing.T) {
	m := newTestMenu(t, nil)
	x, y := buttonPoint(m, 1)

	m.Update(mouse(tea.MouseActionPress, tea.MouseButtonRight, x, y))

	assert.False(t, m.buttons[1].Pressed())
	assert.Equal(t, -1, m.held)
}

func TestMenuModel_ButtonAt(t *testing.T) {
	m := newTestMenu(t, nil)
	top := appPaddingTop + lipgloss.Height(m.headerView())

	tests := []struct {
		name     string
		x, y     int
		expected int
	}{
		{name: "above buttons", x: appPaddingLeft, y: top - 1, expected: -1},
		{name: "first row of first button", x: appPaddingLeft, y: top, expected: 0},
		{name: "second button", x: appPaddingLeft + 5, y: top + buttonHeight, expected: 1},
		{name: "last row of last button", x: appPaddingLeft, y: top + 3*buttonHeight - 1, expected: 2},
		{name: "below buttons", x: appPaddingLeft, y: top + 3*buttonHeight, expected: -1},
		{name: "left of buttons", x: appPaddingLeft - 1, y: top, expected: -1},
		{name: "right of buttons", x: appPaddingLeft + buttonWidth + 2, y: top, expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, m.buttonAt(tt.x, tt.y))
		})
	}
}

// ── view ──────────────────────────────────────────────────────────────────────

// TestMenuModel_ViewLayoutMatchesHitTesting verifies that buttons are drawn
// where buttonAt expects them.
func TestMenuModel_ViewLayoutMatchesHitTesting(t *testing.T) {
	m := newTestMenu(t, nil)
	lines := strings.Split(m.View(), "\n")

	for i, b := range m.buttons {
		_, y := buttonPoint(m, i)
		require.Greater(t, len(lines), y)
		assert.Contains(t, lines[y], b.Label())
	}
}

func TestMenuModel_ViewHeader(t *testing.T) {
	t.Run("release build", func(t *testing.T) {
		view := newTestMenu(t, nil).View()
		assert.Contains(t, view, "Test Launcher")
		assert.Contains(t, view, "version 1.2.3")
	})

	t.Run("development build", func(t *testing.T) {
		m := NewMenuModel("Dev", models.EmptyVersionInfo(), ThemeByName("dark"), nil)
		assert.Contains(t, m.View(), "development build")
	})
}
