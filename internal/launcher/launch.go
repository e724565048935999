package launcher

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/paso-board/internal/board"
	"github.com/thenoetrevino/paso-board/internal/config"
	"github.com/thenoetrevino/paso-board/internal/events"
	"github.com/thenoetrevino/paso-board/internal/logging"
	"github.com/thenoetrevino/paso-board/internal/session"
	"github.com/thenoetrevino/paso-board/internal/tui"
)

// Options controls one run of the terminal board
type Options struct {
	Config *config.Config
	Debug  bool

	// ConfigPath is watched for changes; empty disables reloading
	ConfigPath string
}

// NewSession builds the session the board runs on, wired to bus
func NewSession(cfg *config.Config, bus *events.Bus, debug bool) *session.Session {
	return session.New(
		session.WithGenerator(board.NewRandomGenerator(cfg.Defaults.ColumnTitlePrefix, cfg.Defaults.TaskContentPrefix)),
		session.WithPublisher(bus),
		session.WithLogger(slog.Default()),
		session.WithDebug(debug || cfg.Log.Debug),
	)
}

// Launch starts the TUI application and blocks until it exits
func Launch(opts Options) error {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	// Initialize logging to file before anything else
	closer, err := logging.Init(cfg.Log.Path, cfg.Log.SlogLevel())
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() {
		if err := closer.Close(); err != nil {
			log.Printf("Error closing log file: %v", err)
		}
	}()

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	bus := events.NewBus()
	drags := 0
	unsubscribe := bus.Subscribe(func(e events.Event) {
		if e.Type == events.EventDragEnded {
			drags++
		}
	})
	defer unsubscribe()

	sess := NewSession(cfg, bus, opts.Debug)
	slog.Info("starting board", "debug", opts.Debug || cfg.Log.Debug)

	p := tea.NewProgram(tui.InitialModel(sess, cfg), tea.WithContext(ctx))

	if opts.ConfigPath != "" {
		watcher, err := config.NewWatcher(opts.ConfigPath, func(c *config.Config) {
			p.Send(tui.ConfigChangedMsg{Config: c})
		})
		if err == nil {
			err = watcher.Start(ctx)
			defer watcher.Stop()
		}
		if err != nil {
			slog.Warn("continuing without config reload", "error", err)
		}
	}
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}
	if ctx.Err() != nil {
		slog.Info("shutdown signal received")
	}

	state := sess.State()
	slog.Info("board closed",
		"columns", len(state.Columns()),
		"tasks", len(state.Tasks()),
		"drags", drags,
		"events", bus.Sequence(),
		"columns_rev", state.Revision().Columns,
		"tasks_rev", state.Revision().Tasks)
	return nil
}
