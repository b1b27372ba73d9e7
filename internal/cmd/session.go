package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/Alia5/dactylkeys/internal/config"
	"github.com/Alia5/dactylkeys/internal/configpaths"
	"github.com/Alia5/dactylkeys/internal/log"
	"github.com/Alia5/dactylkeys/keymap"
	"github.com/Alia5/dactylkeys/store"
)

// Session opens the store and the keymap engine on first use and owns them
// until Close. Commands receive it through kong bindings.
type Session struct {
	Store  config.Store
	Logger *slog.Logger
	Raw    log.RawLogger
	In     io.Reader
	Out    io.Writer
	Now    func() time.Time

	engine *keymap.Engine
	close  func() error
}

// Engine returns the session's engine, opening the store if needed.
func (s *Session) Engine() (*keymap.Engine, error) {
	if s.engine != nil {
		return s.engine, nil
	}

	path := s.Store.Path
	if path == "" {
		p, err := configpaths.DefaultStorePath(s.Store.Backend)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve store path: %w", err)
		}
		path = p
	}
	st, closeFn, err := store.Open(s.Store.Backend, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", s.Store.Backend, err)
	}
	if s.Raw != nil {
		st = store.NewTraced(st, s.Raw)
	}
	s.close = closeFn
	s.logger().Debug("store opened", "backend", s.Store.Backend, "path", path)

	var opts []keymap.Option
	if s.Now != nil {
		opts = append(opts, keymap.WithClock(s.Now))
	}
	s.engine = keymap.New(st, s.logger(), opts...)
	return s.engine, nil
}

// Close releases the store. The session can be reopened afterwards.
func (s *Session) Close() error {
	s.engine = nil
	if s.close == nil {
		return nil
	}
	err := s.close()
	s.close = nil
	return err
}

func (s *Session) logger() *slog.Logger {
	if s.Logger == nil {
		s.Logger = slog.New(slog.DiscardHandler)
	}
	return s.Logger
}

func (s *Session) out() io.Writer {
	if s.Out == nil {
		return os.Stdout
	}
	return s.Out
}

func (s *Session) in() io.Reader {
	if s.In == nil {
		return os.Stdin
	}
	return s.In
}
