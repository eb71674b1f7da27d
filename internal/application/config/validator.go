package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/doeshing/jer-go/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if v := cfg.ConfigFormatVersion; v != "" && v != "1" {
		return fmt.Errorf("unsupported config_format_version %q", v)
	}
	if err := validateExtraction(cfg.Extraction); err != nil {
		return err
	}
	if err := validateLaunch(cfg.Launch); err != nil {
		return err
	}
	return validateSecurity(cfg.Security)
}

func validateExtraction(settings domain.ExtractionSettings) error {
	if settings.Destination != "" && !filepath.IsAbs(settings.Destination) {
		return fmt.Errorf("extraction.destination must be absolute, got %s", settings.Destination)
	}
	return nil
}

func validateLaunch(settings domain.LaunchSettings) error {
	for i, opt := range settings.JVMOptions {
		if strings.TrimSpace(opt) == "" {
			return fmt.Errorf("launch.jvm_options[%d] is blank", i)
		}
	}
	for key := range settings.SystemProperties {
		if key == "" || strings.ContainsAny(key, "= \t") {
			return fmt.Errorf("launch.system_properties has invalid key %q", key)
		}
	}
	if strings.TrimSpace(settings.Shell) == "" {
		return fmt.Errorf("launch.shell must not be empty (use auto)")
	}
	return nil
}

func validateSecurity(settings domain.SecuritySettings) error {
	for i, key := range settings.SensitiveKeys {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("security.sensitive_keys[%d] is blank", i)
		}
	}
	return nil
}
