package commands

import (
	"context"
	"sync"

	"github.com/doeshing/jer-go/internal/app"
	"github.com/doeshing/jer-go/internal/pkg/logger"
	"github.com/doeshing/jer-go/internal/ports"
)

// Session builds the container on first use so persistent flags such as
// --config and --debug are parsed before configuration is loaded.
type Session struct {
	Options app.Options

	once      sync.Once
	container *app.Container
	err       error
}

// NewSession returns a session for opts.
func NewSession(opts app.Options) *Session {
	return &Session{Options: opts}
}

// Container returns the lazily built container.
func (s *Session) Container(ctx context.Context) (*app.Container, error) {
	s.once.Do(func() {
		s.container, s.err = app.BuildContainer(ctx, s.Options)
	})
	return s.container, s.err
}

// Logger returns the container logger when the container was built. Before
// that it falls back to Options.Logger or a stderr logger at the verbosity
// the parsed flags selected.
func (s *Session) Logger() ports.Logger {
	if s.container != nil && s.container.Logger != nil {
		return s.container.Logger
	}
	if s.Options.Logger != nil {
		return s.Options.Logger
	}
	return logger.NewStd(s.Options.Verbose)
}

// Close releases the container if it was built.
func (s *Session) Close() error {
	if s.container == nil {
		return nil
	}
	return s.container.Close()
}
