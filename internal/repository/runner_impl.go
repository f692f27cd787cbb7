package repository

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"os/exec"

	"github.com/gitship/gitship/internal/domain"
)

const gitExecutable = "git"

// execRunner is the production CommandRunner backed by os/exec. No timeout
// is applied: a hang in the external tool hangs the flow, by policy.
type execRunner struct {
	tool string
}

// NewExecRunner returns a CommandRunner that drives the git executable.
func NewExecRunner() CommandRunner {
	return &execRunner{tool: gitExecutable}
}

func (r *execRunner) Run(ctx context.Context, args ...string) (Output, error) {
	cmd := exec.CommandContext(ctx, r.tool, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := Output{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return out, &domain.CommandError{
				Args:     args,
				ExitCode: exitErr.ExitCode(),
				Stderr:   out.Stderr,
			}
		}
		return out, &domain.SpawnError{Tool: r.tool, Err: err}
	}
	return out, nil
}

// Stream runs the command without blocking, reading its stderr line by line
// and handing each line to the sink as it arrives. Git writes clone
// progress to stderr. A single cooperative loop alternates between reading
// and emitting; after the stream closes the final exit status is collected.
func (r *execRunner) Stream(ctx context.Context, sink LineSink, args ...string) error {
	cmd := exec.CommandContext(ctx, r.tool, args...)
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return &domain.SpawnError{Tool: r.tool, Err: err}
	}
	if err := cmd.Start(); err != nil {
		return &domain.SpawnError{Tool: r.tool, Err: err}
	}

	scanner := bufio.NewScanner(stderr)
	for scanner.Scan() {
		sink(scanner.Text())
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Diagnostics were already forwarded to the sink while the
			// process ran, so the error only carries the exit status.
			return &domain.CommandError{Args: args, ExitCode: exitErr.ExitCode()}
		}
		return &domain.SpawnError{Tool: r.tool, Err: err}
	}
	return scanner.Err()
}
