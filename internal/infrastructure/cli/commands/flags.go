package commands

import (
	"github.com/spf13/pflag"

	"github.com/doeshing/jer-go/internal/domain"
)

// ExtractionFlags are the flags shared by every command that extracts.
type ExtractionFlags struct {
	Overwrite   bool
	Destination string
	Filter      string

	fs *pflag.FlagSet
}

// Bind registers the extraction flags on fs.
func (f *ExtractionFlags) Bind(fs *pflag.FlagSet) {
	f.fs = fs
	fs.BoolVarP(&f.Overwrite, "overwrite", "o", false, "Extract again even if the destination already exists")
	fs.StringVarP(&f.Destination, "destination", "d", "", "Root directory for the extraction (default: system temp dir)")
	fs.StringVarP(&f.Filter, "jarResourcePath", "p", "", "Only extract entries below this path inside the archive")
}

// Request builds the extraction request, falling back to configured
// defaults for flags that were not given.
func (f *ExtractionFlags) Request(archivePath string, cfg domain.ExtractionSettings) domain.ExtractionRequest {
	req := domain.ExtractionRequest{
		ArchivePath:     archivePath,
		DestinationRoot: cfg.Destination,
		ResourceFilter:  f.Filter,
		Overwrite:       cfg.Overwrite,
	}
	if f.changed("destination") {
		req.DestinationRoot = f.Destination
	}
	if f.changed("overwrite") {
		req.Overwrite = f.Overwrite
	}
	return req
}

func (f *ExtractionFlags) changed(name string) bool {
	if f.fs == nil {
		return false
	}
	return f.fs.Changed(name)
}

// RenderFlags override the configured command line rendering options.
type RenderFlags struct {
	Environment bool
	Properties  bool
	Escape      bool
	NoRedact    bool

	fs *pflag.FlagSet
}

// Bind registers the rendering flags on fs.
func (f *RenderFlags) Bind(fs *pflag.FlagSet) {
	f.fs = fs
	fs.BoolVar(&f.Environment, "env", false, "Prefix the command line with the environment")
	fs.BoolVar(&f.Properties, "props", false, "Include system properties as -D options")
	fs.BoolVar(&f.Escape, "escape", false, "Quote values")
	fs.BoolVar(&f.NoRedact, "no-redact", false, "Show values of sensitive keys")
}

// Options merges the flags over base.
func (f *RenderFlags) Options(base domain.RenderOptions) domain.RenderOptions {
	opts := base
	opts.RedactSensitive = true
	if f.fs == nil {
		return opts
	}
	if f.fs.Changed("env") {
		opts.IncludeEnvironment = f.Environment
	}
	if f.fs.Changed("props") {
		opts.IncludeSystemProperties = f.Properties
	}
	if f.fs.Changed("escape") {
		opts.EscapeValues = f.Escape
	}
	if f.NoRedact {
		opts.RedactSensitive = false
	}
	return opts
}
