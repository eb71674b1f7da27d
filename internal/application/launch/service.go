package launch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/doeshing/jer-go/internal/domain"
	"github.com/doeshing/jer-go/internal/ports"
)

// Service orchestrates extract-then-launch end-to-end.
type Service struct {
	Extractor ports.ArchiveExtractor
	Renderer  ports.CommandRenderer
	Runner    ports.ProcessRunner
	History   ports.HistoryRepository
	Logger    ports.Logger

	// Now and NewID are overridable for tests.
	Now   func() time.Time
	NewID func() string
}

func (s *Service) validate() error {
	if s.Extractor == nil || s.Renderer == nil || s.Runner == nil || s.Logger == nil {
		return errors.New("launch.Service dependencies not satisfied")
	}
	return nil
}

// Extract unpacks the archive without launching anything.
func (s *Service) Extract(req domain.ExtractionRequest) (domain.ExtractionResult, error) {
	if s.Extractor == nil || s.Logger == nil {
		return domain.ExtractionResult{}, errors.New("launch.Service dependencies not satisfied")
	}
	start := s.now()
	result, err := s.Extractor.Extract(req)
	if err != nil {
		return result, err
	}
	s.record(domain.RunRecord{
		Timestamp:   start,
		Archive:     req.ArchivePath,
		Destination: result.Directory,
		Created:     result.Created,
		Success:     true,
	})
	return result, nil
}

// CommandLine renders the command that would launch resource.
func (s *Service) CommandLine(resource string, opts domain.RenderOptions) (string, error) {
	if s.Renderer == nil {
		return "", errors.New("launch.Service dependencies not satisfied")
	}
	return s.Renderer.Render(resource, opts), nil
}

// Run extracts the archive and launches req.Resource from the extraction
// directory, waiting for the child to exit. Without a resource nothing is
// launched and no error is returned.
func (s *Service) Run(ctx context.Context, req domain.LaunchRequest) (domain.LaunchResponse, error) {
	if err := s.validate(); err != nil {
		return domain.LaunchResponse{}, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	start := s.now()
	extraction, err := s.Extractor.Extract(req.Extraction)
	if err != nil {
		s.Logger.Debug("could not extract archive", map[string]interface{}{
			"archive": req.Extraction.ArchivePath,
			"error":   err.Error(),
		})
		return domain.LaunchResponse{}, err
	}
	resp := domain.LaunchResponse{Extraction: extraction}

	record := domain.RunRecord{
		Timestamp:   start,
		Archive:     req.Extraction.ArchivePath,
		Destination: extraction.Directory,
		Created:     extraction.Created,
		Resource:    req.Resource,
	}

	if strings.TrimSpace(req.Resource) == "" {
		s.Logger.Warn("no launch target given, ending", map[string]interface{}{"destination": extraction.Directory})
		record.Success = true
		s.record(record)
		return resp, nil
	}

	redactedOpts := req.Render
	redactedOpts.RedactSensitive = true
	resp.CommandLine = s.Renderer.Render(req.Resource, redactedOpts)
	record.CommandLine = resp.CommandLine
	s.Logger.Info("start command", map[string]interface{}{"command": resp.CommandLine, "dir": extraction.Directory})

	execOpts := req.Render
	execOpts.RedactSensitive = false
	commandLine := s.Renderer.Render(req.Resource, execOpts)

	proc, err := s.Runner.Start(ctx, extraction.Directory, commandLine)
	if err != nil {
		record.ExitCode = -1
		s.record(record)
		return resp, fmt.Errorf("launch %s: %w", req.Resource, err)
	}
	resp.Launched = true
	record.Launched = true

	result, waitErr := proc.Wait()
	resp.Execution = &result
	record.ExitCode = result.ExitCode
	record.DurationMS = result.DurationMS
	record.Success = waitErr == nil
	s.record(record)

	if waitErr != nil {
		return resp, fmt.Errorf("%s exited with code %d: %w", req.Resource, result.ExitCode, waitErr)
	}
	s.Logger.Debug("process finished", map[string]interface{}{"duration_ms": result.DurationMS})
	return resp, nil
}

func (s *Service) record(rec domain.RunRecord) {
	if s.History == nil {
		return
	}
	rec.ID = s.newID()
	if err := s.History.Save(rec); err != nil {
		s.Logger.Warn("history save failed", map[string]interface{}{"error": err.Error()})
	}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}
