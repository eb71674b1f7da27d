package domain

import "time"

// ProcessInfo is the launch information of a process, captured once.
type ProcessInfo struct {
	StartupTime      time.Time
	Interpreter      string
	InputArguments   []string
	BootClasspath    string
	Classpath        string
	LibraryPath      string
	ProgramArguments []string
	SystemProperties map[string]string
	Environment      map[string]string
}

// Clone returns a deep copy so callers cannot mutate a captured snapshot.
func (p ProcessInfo) Clone() ProcessInfo {
	out := p
	out.InputArguments = append([]string(nil), p.InputArguments...)
	out.ProgramArguments = append([]string(nil), p.ProgramArguments...)
	out.SystemProperties = cloneMap(p.SystemProperties)
	out.Environment = cloneMap(p.Environment)
	return out
}

func cloneMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// RenderOptions selects how a launch command line is rendered.
type RenderOptions struct {
	IncludeEnvironment      bool
	IncludeSystemProperties bool
	EscapeValues            bool
	RedactSensitive         bool
}

// ExecutionResult wraps details from the process runner.
type ExecutionResult struct {
	ExitCode   int
	DurationMS int64
	Err        error
}
