// Package launchcmd reconstructs the command line of a captured JVM launch
// so an extracted artifact can be started the same way.
package launchcmd

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/doeshing/jer-go/internal/domain"
	"github.com/doeshing/jer-go/internal/ports"
)

// Builder renders command lines from a snapshot captured at construction.
// The snapshot never refreshes; only the sensitive key set may grow.
type Builder struct {
	info domain.ProcessInfo

	mu        sync.RWMutex
	sensitive map[string]struct{}
}

// New captures the process information exposed by provider.
func New(provider ports.ProcessInfoProvider) (*Builder, error) {
	info, err := provider.Capture()
	if err != nil {
		return nil, fmt.Errorf("capture process info: %w", err)
	}
	return &Builder{
		info:      info.Clone(),
		sensitive: map[string]struct{}{},
	}, nil
}

// AddSensitive registers names whose values are redacted when rendering
// with RedactSensitive. Registering a known or blank name is a no-op.
func (b *Builder) AddSensitive(names ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		b.sensitive[name] = struct{}{}
	}
}

// Sensitive returns the registered names in sorted order.
func (b *Builder) Sensitive() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	names := make([]string, 0, len(b.sensitive))
	for name := range b.sensitive {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns a copy of the captured process information.
func (b *Builder) Snapshot() domain.ProcessInfo {
	return b.info.Clone()
}

// Render builds the command line. A non-blank target replaces the captured
// classpath; every other launch parameter is replayed as captured.
func (b *Builder) Render(target string, opts domain.RenderOptions) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	parts := []string{b.info.Interpreter}
	parts = append(parts, b.info.InputArguments...)

	if opts.IncludeSystemProperties {
		props := filterProperties(b.info.SystemProperties, domain.IgnoredPropertyPrefixes)
		parts = append(parts, b.renderMap(props, "-D", opts)...)
	}

	if !isBlank(b.info.BootClasspath) {
		parts = append(parts, b.info.BootClasspath)
	}

	if cp := b.info.Classpath; !isBlank(cp) {
		if strings.HasSuffix(cp, domain.JarModeSuffix) {
			parts = append(parts, "-jar")
		} else {
			parts = append(parts, "-cp")
		}
		if isBlank(target) {
			parts = append(parts, cp)
		} else {
			parts = append(parts, target)
		}
	}

	parts = append(parts, b.info.ProgramArguments...)

	if opts.IncludeEnvironment {
		parts = append(parts, b.renderMap(b.info.Environment, "", opts)...)
	}

	return joinNonEmpty(parts)
}

func (b *Builder) renderMap(values map[string]string, keyPrefix string, opts domain.RenderOptions) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		var sb strings.Builder
		sb.WriteString(keyPrefix)
		sb.WriteString(k)
		if v := values[k]; !isBlank(v) {
			sb.WriteByte('=')
			sb.WriteString(b.renderValue(k, v, opts))
		}
		out = append(out, sb.String())
	}
	return out
}

func (b *Builder) renderValue(key, value string, opts domain.RenderOptions) string {
	if opts.RedactSensitive {
		if _, ok := b.sensitive[key]; ok {
			return domain.RedactedValue
		}
	}
	if opts.EscapeValues {
		return `"` + value + `"`
	}
	return value
}

// filterProperties drops blank values and keys under any ignored prefix.
func filterProperties(props map[string]string, ignored []string) map[string]string {
	out := make(map[string]string, len(props))
	for k, v := range props {
		if isBlank(v) || hasAnyPrefix(k, ignored) {
			continue
		}
		out[k] = v
	}
	return out
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func joinNonEmpty(parts []string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

var _ ports.CommandRenderer = (*Builder)(nil)
