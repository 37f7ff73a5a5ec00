package tui

import "github.com/charmbracelet/lipgloss"

const (
	appPaddingTop  = 1
	appPaddingLeft = 2

	// buttonWidth is the inner width of a menu button.
	buttonWidth = 24
	// buttonHeight is the rendered height of a menu button, borders included.
	buttonHeight = 3
)

var (
	appStyle    = lipgloss.NewStyle().Padding(appPaddingTop, appPaddingLeft)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// Theme holds the three button looks of the launcher's main menu.
type Theme struct {
	Name    string
	Normal  lipgloss.Style
	Hovered lipgloss.Style
	Pressed lipgloss.Style
	Title   lipgloss.Style
}

func baseButtonStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder())
}

func newTheme(name string, fg, bg, hoverBg, pressBg, border lipgloss.Color) Theme {
	base := baseButtonStyle().BorderForeground(border)

	return Theme{
		Name:    name,
		Normal:  base.Foreground(fg).Background(bg),
		Hovered: base.Foreground(fg).Background(hoverBg).Bold(true),
		Pressed: base.Border(lipgloss.ThickBorder()).Foreground(fg).Background(pressBg).Bold(true),
		Title:   titleStyle.Foreground(border),
	}
}

var themes = map[string]Theme{
	"default": newTheme("default", "15", "238", "62", "57", "63"),
	"dark":    newTheme("dark", "252", "235", "240", "236", "244"),
	"light":   newTheme("light", "232", "254", "153", "111", "25"),
}

// ThemeByName returns the named theme, or the default theme for an unknown
// name.
func ThemeByName(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["default"]
}
