package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageMenu      = "menu"
	pageBuildInfo = "build-info"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global quit keys
// 3) handles NavigateTo messages
// 4) owns the transient status line
// 5) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	statusTTL time.Duration
	status    string
	statusErr bool

	quitByUser bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, statusTTL time.Duration) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		statusTTL: statusTTL,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global hotkeys for every page.
		switch msg.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.isMenuPage() {
				return r.navigate(NavigateTo{Page: pageBuildInfo})
			}
		}
	case NavigateTo:
		return r.navigate(msg)
	case quitMsg:
		return r, tea.Quit
	case copiedMsg:
		r.status = "Version info copied to clipboard"
		r.statusErr = false
		return r, cmdClearStatus(r.statusTTL)
	case copyFailedMsg:
		r.status = msg.err.Error()
		r.statusErr = true
		return r, cmdClearStatus(r.statusTTL)
	case clearStatusMsg:
		r.status = ""
		r.statusErr = false
		return r, nil
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, exists := r.pages[nav.Page]
	if !exists {
		return r, nil
	}

	r.current = next

	if nav.Payload != nil {
		return r, func() tea.Msg { return nav.Payload }
	}
	return r, r.current.Init()
}

func (r RootModel) View() string {
	var view string
	if r.current == nil {
		view = renderPage("TUI", "", "")
	} else {
		view = r.current.View()
	}

	if r.status == "" {
		return view
	}

	style := statusStyle
	if r.statusErr {
		style = errorStyle
	}
	return view + "\n  " + style.Render(r.status)
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}
