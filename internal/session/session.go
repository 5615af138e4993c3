// Package session manages isolated browser automation sessions.
// Every session runs in its own disposable profile directory and presents
// itself as an ordinary desktop browser to the remote site.
package session

import (
	"context"
	"fmt"
	"os"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ozonwatch/price-watcher/internal/platform"
	"github.com/rs/zerolog"
)

// stealthScript hides the most common automation fingerprints from the page scripts.
const stealthScript = `
Object.defineProperty(navigator, 'webdriver', {
	get: () => undefined,
});
window.chrome = window.chrome || { runtime: {} };
`

// Config holds browser session configuration.
type Config struct {
	Headless     bool
	NoSandbox    bool
	UserAgent    string
	WindowWidth  int
	WindowHeight int
	// BrowserBin is the path to the browser binary. Empty means auto-detect.
	BrowserBin string
}

// Manager creates browser sessions.
type Manager struct {
	cfg    Config
	logger *zerolog.Logger
}

// NewManager returns new Manager.
func NewManager(cfg Config, logger *zerolog.Logger) *Manager {
	return &Manager{
		cfg:    cfg,
		logger: logger,
	}
}

// Acquire launches a browser in a fresh disposable profile directory and
// connects to it. The caller owns the returned session for one batch and
// must call Release when done.
func (m *Manager) Acquire(ctx context.Context) (*Session, error) {
	profileDir, err := os.MkdirTemp("", "price-watcher-profile-")
	if err != nil {
		return nil, fmt.Errorf("can't create profile directory: %w", err)
	}

	launch := launcher.New().
		Headless(m.cfg.Headless).
		NoSandbox(m.cfg.NoSandbox).
		UserDataDir(profileDir).
		Set("disable-dev-shm-usage").
		Set("disable-gpu").
		Set("disable-blink-features", "AutomationControlled").
		Set("window-size", fmt.Sprintf("%d,%d", m.cfg.WindowWidth, m.cfg.WindowHeight)).
		Set("user-agent", m.cfg.UserAgent)
	if m.cfg.BrowserBin != "" {
		launch = launch.Bin(m.cfg.BrowserBin)
	}

	controlURL, err := launch.Launch()
	if err != nil {
		_ = os.RemoveAll(profileDir)
		return nil, fmt.Errorf("can't launch browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		launch.Kill()
		_ = os.RemoveAll(profileDir)
		return nil, fmt.Errorf("can't connect to browser: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		_ = browser.Close()
		launch.Kill()
		_ = os.RemoveAll(profileDir)
		return nil, fmt.Errorf("can't open browser page: %w", err)
	}

	if _, err := page.EvalOnNewDocument(stealthScript); err != nil {
		m.logger.Warn().Err(err).Msg("can't install stealth script")
	}

	m.logger.Debug().
		Str("profileDir", profileDir).
		Msg("browser session acquired")

	return &Session{
		browser:    browser,
		launcher:   launch,
		page:       page,
		profileDir: profileDir,
		logger:     m.logger,
	}, nil
}

// Session is one live browser automation session.
// It reuses a single tab for all product pages of a batch.
type Session struct {
	browser    *rod.Browser
	launcher   *launcher.Launcher
	page       *rod.Page
	profileDir string
	logger     *zerolog.Logger
}

// Release tears the session down: closes the browser, kills the launched
// process and removes the disposable profile directory. Safe to call on
// every exit path, including after session faults.
func (s *Session) Release() {
	if err := s.browser.Close(); err != nil {
		s.logger.Warn().Err(err).Msg("can't close browser")
	}
	s.launcher.Kill()
	if err := os.RemoveAll(s.profileDir); err != nil {
		s.logger.Warn().Err(err).Msg("can't remove profile directory")
	}

	s.logger.Debug().
		Str("profileDir", s.profileDir).
		Msg("browser session released")
}

// classify wraps a navigation error into a session-level or page-level fault.
// A quick browser probe tells a dead session apart from a slow page.
func (s *Session) classify(err error, msg string) error {
	if _, probeErr := s.browser.Version(); probeErr != nil {
		return fmt.Errorf("%w: %s: %s", platform.ErrSessionLost, msg, err)
	}
	return fmt.Errorf("%w: %s: %s", platform.ErrPageUnavailable, msg, err)
}
