package app

import (
	"context"

	"github.com/doeshing/jer-go/internal/application/doctor"
	"github.com/doeshing/jer-go/internal/application/launch"
	"github.com/doeshing/jer-go/internal/domain"
	"github.com/doeshing/jer-go/internal/infrastructure/archive"
	"github.com/doeshing/jer-go/internal/infrastructure/config"
	"github.com/doeshing/jer-go/internal/infrastructure/executor"
	"github.com/doeshing/jer-go/internal/infrastructure/history"
	"github.com/doeshing/jer-go/internal/infrastructure/launchcmd"
	"github.com/doeshing/jer-go/internal/infrastructure/procinfo"
	"github.com/doeshing/jer-go/internal/pkg/logger"
	"github.com/doeshing/jer-go/internal/ports"
)

// Options controls how the container is assembled.
type Options struct {
	ConfigPath string
	Verbose    bool

	// HistoryPath overrides the default history database location.
	HistoryPath string

	// Logger replaces the default stderr logger when set.
	Logger ports.Logger

	// Environ replaces os.Environ for process introspection when set.
	Environ func() []string
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config         domain.Config
	ConfigProvider ports.ConfigProvider
	ConfigLoader   *config.FileLoader
	Logger         ports.Logger
	Extractor      *archive.Extractor
	Runner         *executor.LocalRunner

	// HistoryStore is nil when history is disabled in the configuration.
	HistoryStore *history.SQLiteStore

	environ func() []string
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	cfgLoader := config.NewFileLoader(opts.ConfigPath)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := opts.Logger
	if log == nil {
		log = logger.NewStd(opts.Verbose)
	}

	var historyStore *history.SQLiteStore
	if cfg.History.Enabled {
		historyStore = history.NewSQLiteStore(opts.HistoryPath)
	}

	return &Container{
		Config:         cfg,
		ConfigProvider: cfgLoader,
		ConfigLoader:   cfgLoader,
		Logger:         log,
		Extractor:      archive.NewExtractor(log),
		Runner:         executor.NewLocalRunner(cfg.Launch.Shell),
		HistoryStore:   historyStore,
		environ:        opts.Environ,
	}, nil
}

// History returns the configured history repository or nil.
func (c *Container) History() ports.HistoryRepository {
	if c.HistoryStore == nil {
		return nil
	}
	return c.HistoryStore
}

// CommandBuilder snapshots the launch information for archivePath and
// registers the configured sensitive keys.
func (c *Container) CommandBuilder(archivePath string, programArgs []string) (*launchcmd.Builder, error) {
	provider := procinfo.NewJVMProvider(c.Config.Launch, archivePath, programArgs)
	if c.environ != nil {
		provider = provider.WithEnviron(c.environ)
	}
	builder, err := launchcmd.New(provider)
	if err != nil {
		return nil, err
	}
	builder.AddSensitive(c.Config.Security.SensitiveKeys...)
	return builder, nil
}

// LaunchService assembles the extract-and-launch use case for one archive.
func (c *Container) LaunchService(archivePath string, programArgs []string) (*launch.Service, error) {
	builder, err := c.CommandBuilder(archivePath, programArgs)
	if err != nil {
		return nil, err
	}
	return &launch.Service{
		Extractor: c.Extractor,
		Renderer:  builder,
		Runner:    c.Runner,
		History:   c.History(),
		Logger:    c.Logger,
	}, nil
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.HistoryStore == nil {
		return nil
	}
	return c.HistoryStore.Close()
}

// ExtractService assembles the extraction-only use case.
func (c *Container) ExtractService() *launch.Service {
	return &launch.Service{
		Extractor: c.Extractor,
		History:   c.History(),
		Logger:    c.Logger,
	}
}

// DoctorService assembles the environment diagnostics.
func (c *Container) DoctorService() *doctor.Service {
	provider := procinfo.NewJVMProvider(c.Config.Launch, "", nil)
	if c.environ != nil {
		provider = provider.WithEnviron(c.environ)
	}
	return &doctor.Service{
		ConfigProvider: c.ConfigProvider,
		ProcessInfo:    provider,
		History:        c.History(),
		Shell:          c.Runner.Shell(),
	}
}
