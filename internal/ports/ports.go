// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). The launch use case depends only on these
// abstractions, so extraction, process introspection and process spawning can be
// swapped for stubs in tests.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., ArchiveExtractor, ProcessRunner)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"

	"github.com/doeshing/jer-go/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.jer/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// ArchiveExtractor unpacks an archive into its timestamp-derived destination.
type ArchiveExtractor interface {
	Extract(domain.ExtractionRequest) (domain.ExtractionResult, error)
}

// ProcessInfoProvider supplies the launch information of the process being
// reconstructed. Tests inject synthetic values instead of reading globals.
type ProcessInfoProvider interface {
	Capture() (domain.ProcessInfo, error)
}

// CommandRenderer turns a captured process snapshot into a command line.
type CommandRenderer interface {
	Render(target string, opts domain.RenderOptions) string
}

// ProcessRunner starts a command line as a new OS process.
type ProcessRunner interface {
	Start(ctx context.Context, workingDir, commandLine string) (Process, error)
}

// Process is a started child process.
type Process interface {
	Wait() (domain.ExecutionResult, error)
}

// HistoryRepository persists run records.
type HistoryRepository interface {
	Save(domain.RunRecord) error
	Records(limit int, search string) ([]domain.RunRecord, error)
	Clear() error
	Path() string
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
