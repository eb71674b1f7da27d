// Package procinfo supplies the process information a JVM launched for an
// archive would report about itself.
package procinfo

import (
	"os"
	"os/exec"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/doeshing/jer-go/internal/domain"
	"github.com/doeshing/jer-go/internal/ports"
)

var processStart = time.Now()

// JVMProvider implements ports.ProcessInfoProvider from configuration, the
// archive path and the process environment.
type JVMProvider struct {
	settings    domain.LaunchSettings
	archivePath string
	programArgs []string

	environ  func() []string
	lookPath func(string) (string, error)
	getwd    func() (string, error)
}

// NewJVMProvider builds a provider for archivePath. programArgs are replayed
// after the classpath.
func NewJVMProvider(settings domain.LaunchSettings, archivePath string, programArgs []string) *JVMProvider {
	return &JVMProvider{
		settings:    settings,
		archivePath: archivePath,
		programArgs: programArgs,
		environ:     os.Environ,
		lookPath:    exec.LookPath,
		getwd:       os.Getwd,
	}
}

// WithEnviron replaces the environment source.
func (p *JVMProvider) WithEnviron(environ func() []string) *JVMProvider {
	p.environ = environ
	return p
}

// Capture implements ports.ProcessInfoProvider.
func (p *JVMProvider) Capture() (domain.ProcessInfo, error) {
	env := ParseEnviron(p.environ())
	inputArgs := append([]string(nil), p.settings.JVMOptions...)
	inputArgs = append(inputArgs, strings.Fields(env["JDK_JAVA_OPTIONS"])...)

	classpath := p.settings.Classpath
	if classpath == "" {
		classpath = p.archivePath
	}
	libraryPath := p.settings.LibraryPath
	if libraryPath == "" {
		libraryPath = env["LD_LIBRARY_PATH"]
	}

	javaCommand := p.javaCommand(env)
	props := p.baselineProperties(env, javaCommand)
	for k, v := range p.settings.SystemProperties {
		props[k] = v
	}
	for k, v := range ParseDefines(inputArgs) {
		props[k] = v
	}

	return domain.ProcessInfo{
		StartupTime:      processStart,
		Interpreter:      javaCommand,
		InputArguments:   inputArgs,
		BootClasspath:    p.settings.BootClasspath,
		Classpath:        classpath,
		LibraryPath:      libraryPath,
		ProgramArguments: append([]string(nil), p.programArgs...),
		SystemProperties: props,
		Environment:      env,
	}, nil
}

func (p *JVMProvider) javaCommand(env map[string]string) string {
	if p.settings.JavaCommand != "" {
		return p.settings.JavaCommand
	}
	if home := env["JAVA_HOME"]; home != "" {
		return filepath.Join(home, "bin", javaBinary())
	}
	if path, err := p.lookPath("java"); err == nil {
		return path
	}
	return "java"
}

func (p *JVMProvider) baselineProperties(env map[string]string, javaCommand string) map[string]string {
	props := map[string]string{
		"java.io.tmpdir": os.TempDir(),
		"os.name":        runtime.GOOS,
		"os.arch":        runtime.GOARCH,
		"file.separator": string(filepath.Separator),
		"path.separator": string(filepath.ListSeparator),
	}
	if home := env["JAVA_HOME"]; home != "" {
		props["java.home"] = home
	} else if filepath.IsAbs(javaCommand) {
		props["java.home"] = filepath.Dir(filepath.Dir(javaCommand))
	}
	if wd, err := p.getwd(); err == nil {
		props["user.dir"] = wd
	}
	if home, err := os.UserHomeDir(); err == nil {
		props["user.home"] = home
	}
	if u, err := user.Current(); err == nil {
		props["user.name"] = u.Username
	}
	return props
}

// ParseEnviron converts KEY=VALUE pairs into a map. Later duplicates win.
func ParseEnviron(pairs []string) map[string]string {
	env := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = value
	}
	return env
}

// ParseDefines extracts -Dkey=value system properties from JVM options.
// A bare -Dkey defines an empty value.
func ParseDefines(args []string) map[string]string {
	props := map[string]string{}
	for _, arg := range args {
		def, ok := strings.CutPrefix(arg, "-D")
		if !ok || def == "" {
			continue
		}
		key, value, _ := strings.Cut(def, "=")
		if key == "" {
			continue
		}
		props[key] = value
	}
	return props
}

func javaBinary() string {
	if runtime.GOOS == "windows" {
		return "java.exe"
	}
	return "java"
}

var _ ports.ProcessInfoProvider = (*JVMProvider)(nil)
