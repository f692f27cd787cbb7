package repository

import "context"

// Output is the captured result of one external command run. Git writes
// informational text to either stream depending on the subcommand, so both
// are always captured.
type Output struct {
	Stdout string
	Stderr string
}

// Message returns the stream a human should read, preferring whichever is
// non-empty. Push confirmations in particular arrive on stderr.
func (o Output) Message() string {
	if o.Stderr != "" {
		return o.Stderr
	}
	return o.Stdout
}

// LineSink receives one line of live diagnostic output.
type LineSink func(line string)

// CommandRunner is the single narrow port through which the external
// version-control tool is driven. Run blocks until the command exits and
// captures both streams; Stream spawns the command, forwards its stderr
// line by line to the sink as it arrives, then waits for the exit status.
//
// Failures are reported as *domain.SpawnError when the tool could not be
// started and *domain.CommandError when it exited non-zero.
type CommandRunner interface {
	Run(ctx context.Context, args ...string) (Output, error)
	Stream(ctx context.Context, sink LineSink, args ...string) error
}
