package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-launcher/internal/config"
	"github.com/MKhiriev/go-launcher/internal/logger"
	"github.com/MKhiriev/go-launcher/internal/tui"
	"github.com/MKhiriev/go-launcher/internal/version"
	"github.com/MKhiriev/go-launcher/models"
)

// ErrNilDependency is returned by [NewApp] when a required dependency is nil.
var ErrNilDependency = errors.New("nil dependency")

// App is the launcher process: it reports its build metadata and runs the UI.
type App struct {
	cfg  *config.LauncherConfig
	info *models.VersionInfo
	ui   UI
	out  io.Writer

	logger *logger.Logger
}

// ResolveVersionInfo returns the descriptor the launcher should report:
// the file named by cfg.InfoFile when set, otherwise the process-wide
// descriptor of the packaged resource.
func ResolveVersionInfo(cfg config.LauncherVersion, log *logger.Logger) *models.VersionInfo {
	if cfg.InfoFile != "" {
		return version.NewLoader(log).LoadFile(cfg.InfoFile)
	}

	return version.Default()
}

// NewApp wires the launcher. out receives the -version output.
func NewApp(cfg *config.LauncherConfig, info *models.VersionInfo, ui UI, out io.Writer, log *logger.Logger) (*App, error) {
	if cfg == nil || info == nil || out == nil {
		return nil, ErrNilDependency
	}
	if ui == nil && !cfg.Version.Print {
		return nil, fmt.Errorf("%w: ui", ErrNilDependency)
	}
	if log == nil {
		log = logger.Nop()
	}

	return &App{
		cfg:    cfg,
		info:   info,
		ui:     ui,
		out:    out,
		logger: log.GetChildLogger("app"),
	}, nil
}

// Run prints the version and returns when -version was requested, and
// otherwise blocks in the UI. Leaving the UI with ctrl+c is a normal exit.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().
		Str("display_version", a.info.DisplayVersion()).
		Bool("empty", a.info.IsEmpty()).
		Stringer("version_info", a.info).
		Msg("launcher version info")

	if a.cfg.Version.Print {
		return a.printVersion()
	}

	if a.info.IsEmpty() {
		a.logger.Warn().Msg("no build metadata packaged, running a development build")
	}

	err := a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Msg("launcher closed")
		return nil
	case errors.Is(err, context.Canceled):
		a.logger.Info().Msg("launcher interrupted")
		return nil
	default:
		return fmt.Errorf("launcher ui: %w", err)
	}
}

func (a *App) printVersion() error {
	out, err := version.Format(a.info, a.cfg.Version.Output)
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintln(a.out, out); err != nil {
		return fmt.Errorf("write version info: %w", err)
	}

	return nil
}
