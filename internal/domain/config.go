package domain

// Config mirrors ~/.jer/config.yaml.
type Config struct {
	ConfigFormatVersion string             `yaml:"config_format_version"`
	Extraction          ExtractionSettings `yaml:"extraction"`
	Launch              LaunchSettings     `yaml:"launch"`
	Security            SecuritySettings   `yaml:"security"`
	History             HistorySettings    `yaml:"history"`
}

// ExtractionSettings holds defaults for extraction flags.
type ExtractionSettings struct {
	Destination string `yaml:"destination"`
	Overwrite   bool   `yaml:"overwrite"`
}

// LaunchSettings describes the JVM launch being reconstructed.
type LaunchSettings struct {
	JavaCommand             string            `yaml:"java_command"`
	JVMOptions              []string          `yaml:"jvm_options"`
	SystemProperties        map[string]string `yaml:"system_properties"`
	BootClasspath           string            `yaml:"boot_classpath"`
	Classpath               string            `yaml:"classpath"`
	LibraryPath             string            `yaml:"library_path"`
	Shell                   string            `yaml:"shell"`
	IncludeEnvironment      bool              `yaml:"include_environment"`
	IncludeSystemProperties bool              `yaml:"include_system_properties"`
	EscapeValues            bool              `yaml:"escape_values"`
}

// SecuritySettings lists names whose values are redacted in logs.
type SecuritySettings struct {
	SensitiveKeys []string `yaml:"sensitive_keys"`
}

// HistorySettings toggles run history persistence.
type HistorySettings struct {
	Enabled bool `yaml:"enabled"`
}

// RenderOptions derives the rendering flags configured for launches.
func (c Config) RenderOptions() RenderOptions {
	return RenderOptions{
		IncludeEnvironment:      c.Launch.IncludeEnvironment,
		IncludeSystemProperties: c.Launch.IncludeSystemProperties,
		EscapeValues:            c.Launch.EscapeValues,
	}
}
