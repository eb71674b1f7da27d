package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/doeshing/jer-go/internal/domain"
	"github.com/doeshing/jer-go/internal/ports"
)

// LocalRunner starts command lines through the host shell.
type LocalRunner struct {
	shell  string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewLocalRunner builds a runner; shell defaults to $SHELL, then /bin/sh.
// The child inherits the standard streams of the current process.
func NewLocalRunner(shell string) *LocalRunner {
	if shell == "" || shell == "auto" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = "/bin/sh"
	}
	return &LocalRunner{shell: shell, stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
}

// WithOutput redirects the child's stdout and stderr.
func (r *LocalRunner) WithOutput(stdout, stderr io.Writer) *LocalRunner {
	r.stdout = stdout
	r.stderr = stderr
	return r
}

// Shell returns the shell used to interpret command lines.
func (r *LocalRunner) Shell() string {
	return r.shell
}

// Start implements ports.ProcessRunner.
func (r *LocalRunner) Start(ctx context.Context, workingDir, commandLine string) (ports.Process, error) {
	//nolint:gosec // G204: the command line is reconstructed from the launching process
	c := exec.CommandContext(ctx, r.shell, "-c", commandLine)
	c.Dir = workingDir
	c.Stdin = r.stdin
	c.Stdout = r.stdout
	c.Stderr = r.stderr

	start := time.Now()
	if err := c.Start(); err != nil {
		return nil, fmt.Errorf("start %q: %w", commandLine, err)
	}
	return &localProcess{cmd: c, start: start}, nil
}

type localProcess struct {
	cmd   *exec.Cmd
	start time.Time
}

// Wait blocks until the child exits. A non-zero exit is returned as an
// error together with its exit code.
func (p *localProcess) Wait() (domain.ExecutionResult, error) {
	err := p.cmd.Wait()
	result := domain.ExecutionResult{
		DurationMS: time.Since(p.start).Milliseconds(),
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		result.Err = err
		return result, err
	}
	if err != nil {
		result.ExitCode = -1
		result.Err = err
		return result, err
	}
	return result, nil
}

var _ ports.ProcessRunner = (*LocalRunner)(nil)
