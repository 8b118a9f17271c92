package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/hive/internal/config"
	"github.com/vovakirdan/hive/internal/puzzle/catalog"
	"github.com/vovakirdan/hive/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.hive/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Play is the per-session template; Store and Logger are filled in by the server.
	Play Settings
}

// SSHServerConfigFrom builds server settings from the loaded configuration.
func SSHServerConfigFrom(cfg config.Config) SSHServerConfig {
	return SSHServerConfig{
		Address:     cfg.SSH.Address,
		HostKeyPath: cfg.SSH.HostKey,
		IdleTimeout: cfg.SSH.IdleTimeout(),
		Play:        SettingsFrom(cfg),
	}
}

// SSHServer wraps a Wish SSH server that serves hive sessions.
type SSHServer struct {
	config  SSHServerConfig
	server  *ssh.Server
	catalog *catalog.Catalog
	store   *storage.Store
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server. store may be nil; the caller keeps
// ownership of it.
func NewSSHServer(cfg SSHServerConfig, cat *catalog.Catalog, store *storage.Store, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "hive-ssh",
		})
	}

	srv := &SSHServer{
		config:  cfg,
		catalog: cat,
		store:   store,
		logger:  logger,
	}

	hostKeyPath, err := config.ExpandHome(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".hive", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
// Every session gets its own engine and pad.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	settings := s.config.Play
	settings.Runtime.ScreenW = pty.Window.Width
	settings.Runtime.ScreenH = pty.Window.Height
	settings.Runtime.Seed = time.Now().UnixNano()
	settings.Store = s.store
	settings.Logger = s.logger.With("user", sshSession.User())

	model := NewSessionModel(s.catalog, settings)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until interrupted.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
	case err := <-errCh:
		s.logger.Error("server error", "error", err)
		return err
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionModel manages a full session flow: menu -> puzzle -> menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	catalog  *catalog.Catalog
	settings Settings
	width    int
	height   int
	menu     MenuModel
	game     *Model
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(cat *catalog.Catalog, settings Settings) SessionModel {
	w, h := settings.Runtime.ScreenW, settings.Runtime.ScreenH
	return SessionModel{
		catalog:  cat,
		settings: settings,
		width:    w,
		height:   h,
		menu:     NewMenuModel(cat.List(), settings.Store, w, h),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	if m.game != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.menu.Selected(); selected != nil {
		def := m.catalog.Definition(selected.ID)
		settings := m.settings
		settings.Runtime.ScreenW, settings.Runtime.ScreenH = m.width, m.height
		settings.Runtime.Seed = 0
		game := NewModel(def, settings)
		game.embedded = true
		m.game = &game
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates while a puzzle is open.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	// Leaving a puzzle returns to a fresh menu with updated best scores.
	if m.game.IsQuitting() {
		m.game = nil
		m.menu = NewMenuModel(m.catalog.List(), m.settings.Store, m.width, m.height)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.game != nil {
		return m.game.View()
	}
	return m.menu.View()
}
