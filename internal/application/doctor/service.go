package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	configapp "github.com/doeshing/jer-go/internal/application/config"
	"github.com/doeshing/jer-go/internal/domain"
	"github.com/doeshing/jer-go/internal/ports"
)

// Service runs environment diagnostics for extract-and-launch.
type Service struct {
	ConfigProvider ports.ConfigProvider
	ProcessInfo    ports.ProcessInfoProvider
	History        ports.HistoryRepository
	Shell          string

	// LookPath and TempDir are overridable for tests.
	LookPath func(string) (string, error)
	TempDir  func() string
}

// Run executes checks and returns a report. The error is non-nil when any
// check failed.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	if err := configapp.Validate(cfg); err != nil {
		checks = append(checks, fail("Config file", err.Error()))
	} else {
		checks = append(checks, ok("Config file", fmt.Sprintf("format version %s", cfg.ConfigFormatVersion)))
	}

	checks = append(checks,
		s.javaCheck(),
		s.shellCheck(),
		s.destinationCheck(cfg.Extraction.Destination),
		s.historyCheck(),
	)

	report := domain.HealthReport{Checks: checks}
	if report.Failed() {
		return report, errors.New("one or more checks failed")
	}
	return report, nil
}

func (s *Service) javaCheck() domain.HealthCheck {
	if s.ProcessInfo == nil {
		return warn("Java", "process information unavailable")
	}
	info, err := s.ProcessInfo.Capture()
	if err != nil {
		return fail("Java", err.Error())
	}
	path, err := s.lookPath(info.Interpreter)
	if err != nil {
		return warn("Java", fmt.Sprintf("%s not found, launches will fail", info.Interpreter))
	}
	return ok("Java", path)
}

func (s *Service) shellCheck() domain.HealthCheck {
	if s.Shell == "" {
		return warn("Shell", "no shell configured")
	}
	if _, err := s.lookPath(s.Shell); err != nil {
		return fail("Shell", fmt.Sprintf("%s not executable: %v", s.Shell, err))
	}
	return ok("Shell", s.Shell)
}

func (s *Service) destinationCheck(root string) domain.HealthCheck {
	if root == "" {
		root = s.tempDir()
	}
	probe, err := os.MkdirTemp(root, ".jer-doctor-*")
	if err != nil {
		return fail("Destination", fmt.Sprintf("%s not writable: %v", root, err))
	}
	_ = os.Remove(probe)
	return ok("Destination", root)
}

func (s *Service) historyCheck() domain.HealthCheck {
	if s.History == nil {
		return warn("History", "disabled")
	}
	if _, err := s.History.Records(1, ""); err != nil {
		return fail("History", fmt.Sprintf("%s: %v", s.History.Path(), err))
	}
	return ok("History", s.History.Path())
}

func (s *Service) lookPath(file string) (string, error) {
	if s.LookPath != nil {
		return s.LookPath(file)
	}
	return exec.LookPath(file)
}

func (s *Service) tempDir() string {
	if s.TempDir != nil {
		return s.TempDir()
	}
	return os.TempDir()
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
