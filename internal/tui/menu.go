package tui

import (
	"strings"

	"github.com/MKhiriev/go-launcher/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	itemVersionInfo = "Version info"
	itemCopyVersion = "Copy version"
	itemQuit        = "Quit"
)

// MenuModel is the launcher's main menu: a column of themed buttons
// operated with the keyboard or, when enabled, the mouse.
type MenuModel struct {
	appName   string
	info      *models.VersionInfo
	theme     Theme
	clipboard Clipboard

	buttons []Button
	idx     int
	// held is the index of the button under a mouse press, or -1.
	held int
}

// NewMenuModel builds the main menu with keyboard focus on the first button.
func NewMenuModel(appName string, info *models.VersionInfo, theme Theme, clip Clipboard) *MenuModel {
	m := &MenuModel{
		appName:   appName,
		info:      info,
		theme:     theme,
		clipboard: clip,
		buttons: []Button{
			NewButton(itemVersionInfo),
			NewButton(itemCopyVersion),
			NewButton(itemQuit),
		},
		held: -1,
	}
	m.focus(0)

	return m
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}

	return m, nil
}

func (m *MenuModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.up, keys.backtab):
		if m.idx > 0 {
			m.focus(m.idx - 1)
		}
	case key.Matches(msg, keys.down, keys.tab):
		if m.idx < len(m.buttons)-1 {
			m.focus(m.idx + 1)
		}
	case key.Matches(msg, keys.enter):
		return m.activate(m.idx)
	case key.Matches(msg, keys.copy):
		return m.activate(indexOf(m.buttons, itemCopyVersion))
	case key.Matches(msg, keys.quit):
		return m.activate(indexOf(m.buttons, itemQuit))
	}

	return nil
}

// handleMouse mirrors a desktop button: motion moves the hover, a left
// press holds the button down and a release over the same button clicks it.
func (m *MenuModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	at := m.buttonAt(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		if at >= 0 {
			m.focus(at)
		} else {
			m.clearHover()
		}
		if m.held >= 0 {
			m.buttons[m.held].pressed = at == m.held
		}
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || at < 0 {
			return nil
		}
		m.focus(at)
		m.held = at
		m.buttons[at].pressed = true
	case tea.MouseActionRelease:
		held := m.held
		m.held = -1
		if held < 0 {
			return nil
		}
		m.buttons[held].pressed = false
		if at == held {
			return m.activate(held)
		}
	}

	return nil
}

func (m *MenuModel) activate(idx int) tea.Cmd {
	if idx < 0 || idx >= len(m.buttons) {
		return nil
	}

	switch m.buttons[idx].label {
	case itemVersionInfo:
		return func() tea.Msg { return NavigateTo{Page: pageBuildInfo} }
	case itemCopyVersion:
		return cmdCopyToClipboard(m.clipboard, m.info.String())
	case itemQuit:
		return func() tea.Msg { return quitMsg{} }
	}

	return nil
}

func (m *MenuModel) focus(idx int) {
	for i := range m.buttons {
		m.buttons[i].hovered = i == idx
	}
	m.idx = idx
}

func (m *MenuModel) clearHover() {
	for i := range m.buttons {
		m.buttons[i].hovered = false
	}
}

// buttonAt maps screen coordinates to a button index, or -1.
func (m *MenuModel) buttonAt(x, y int) int {
	top := appPaddingTop + lipgloss.Height(m.headerView())
	width := lipgloss.Width(m.theme.Normal.Render(""))

	if y < top || x < appPaddingLeft || x >= appPaddingLeft+width {
		return -1
	}

	idx := (y - top) / buttonHeight
	if idx >= len(m.buttons) {
		return -1
	}
	return idx
}

func (m *MenuModel) headerView() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render(m.appName))
	b.WriteString("\n")
	if m.info.IsEmpty() {
		b.WriteString(helpStyle.Render("development build"))
	} else {
		b.WriteString(helpStyle.Render("version " + valueOrNA(m.info.DisplayVersion())))
	}
	b.WriteString("\n")

	return b.String()
}

func (m *MenuModel) View() string {
	rows := make([]string, 0, len(m.buttons)+3)
	rows = append(rows, m.headerView())
	for _, btn := range m.buttons {
		rows = append(rows, btn.View(m.theme))
	}
	rows = append(rows, "", helpStyle.Render("enter: select │ ↑/↓: navigate │ v: version │ c: copy │ q: quit"))

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func indexOf(buttons []Button, label string) int {
	for i, b := range buttons {
		if b.label == label {
			return i
		}
	}
	return -1
}
