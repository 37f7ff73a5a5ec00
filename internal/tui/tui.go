package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-launcher/internal/logger"
	"github.com/MKhiriev/go-launcher/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures the launcher UI.
type Options struct {
	// AppName is shown in the header of every page.
	AppName string
	// Theme names the button theme; unknown names fall back to "default".
	Theme string
	// Mouse enables hover and click tracking.
	Mouse bool
	// StatusTTL is how long a status line stays visible.
	StatusTTL time.Duration
}

// TUI runs the launcher's terminal main menu.
type TUI struct {
	info      *models.VersionInfo
	opts      Options
	clipboard Clipboard
	logger    *logger.Logger
}

// New returns a TUI displaying info. The system clipboard is used unless
// replaced with [TUI.WithClipboard].
func New(info *models.VersionInfo, opts Options, log *logger.Logger) (*TUI, error) {
	if info == nil {
		return nil, ErrNoVersionInfo
	}
	if log == nil {
		log = logger.Nop()
	}
	if opts.StatusTTL <= 0 {
		opts.StatusTTL = 2 * time.Second
	}

	return &TUI{
		info:      info,
		opts:      opts,
		clipboard: systemClipboard{},
		logger:    log.GetChildLogger("tui"),
	}, nil
}

// WithClipboard replaces the clipboard used by the copy action.
func (t *TUI) WithClipboard(c Clipboard) *TUI {
	if c != nil {
		t.clipboard = c
	}
	return t
}

func (t *TUI) newRootModel() RootModel {
	theme := ThemeByName(t.opts.Theme)

	pages := map[string]tea.Model{
		pageMenu:      NewMenuModel(t.opts.AppName, t.info, theme, t.clipboard),
		pageBuildInfo: NewBuildInfoModel(t.opts.AppName, t.info, t.clipboard),
	}

	return NewRootModel(pages, pageMenu, t.opts.StatusTTL)
}

// programOptions enables all-motion mouse reporting when Mouse is set, so
// hover follows the pointer without a button held down.
func (t *TUI) programOptions(ctx context.Context) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if t.opts.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}

	return opts
}

// Run shows the main menu until the user quits or ctx is cancelled.
// Interrupting with ctrl+c returns [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) error {
	t.logger.Debug().Str("theme", t.opts.Theme).Bool("mouse", t.opts.Mouse).Msg("starting launcher ui")

	finalModel, err := tea.NewProgram(t.newRootModel(), t.programOptions(ctx)...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("run launcher ui: %w", err)
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
