package tui

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	bm "github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/registry"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

// SSHOptions configure the multi-session SSH game server.
type SSHOptions struct {
	Addr        string
	HostKeyPath string
	IdleTimeout time.Duration
	GameID      string
	TickRate    int
	Seed        int64
	Store       *storage.Store // nil disables persistence
}

// ServeSSH runs games over SSH until interrupted. Each connecting client
// gets its own independent session sized to its terminal; the SSH user
// name becomes the player name on the scoreboard.
func ServeSSH(opts SSHOptions) error {
	if _, err := registry.Get(opts.GameID); err != nil {
		return err
	}

	teaHandler := func(s ssh.Session) (tea.Model, []tea.ProgramOption) {
		game, err := registry.Get(opts.GameID)
		if err != nil {
			log.Error("cannot create game for session", "game", opts.GameID, "err", err)
			return nil, nil
		}

		pty, _, _ := s.Pty()
		cfg := core.DefaultConfig()
		if pty.Window.Width > 0 {
			cfg.ScreenW = pty.Window.Width
		}
		if pty.Window.Height > 0 {
			cfg.ScreenH = pty.Window.Height
		}
		cfg.TickRate = opts.TickRate
		cfg.Seed = opts.Seed

		m := NewModel(Options{
			Game:   game,
			Store:  opts.Store,
			Config: cfg,
			Player: s.User(),
		})
		return m, []tea.ProgramOption{tea.WithAltScreen()}
	}

	srv, err := wish.NewServer(
		wish.WithAddress(opts.Addr),
		wish.WithHostKeyPath(opts.HostKeyPath),
		wish.WithIdleTimeout(opts.IdleTimeout),
		wish.WithMiddleware(
			bm.Middleware(teaHandler),
			activeterm.Middleware(),
			logging.Middleware(),
		),
	)
	if err != nil {
		return fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting SSH server", "addr", opts.Addr, "game", opts.GameID)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		var opErr *net.OpError
		if errors.As(err, &opErr) {
			return fmt.Errorf("tui: cannot listen on %s: %w", opts.Addr, err)
		}
		return fmt.Errorf("tui: SSH server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("stopping SSH server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("tui: SSH shutdown failed: %w", err)
	}
	return nil
}
