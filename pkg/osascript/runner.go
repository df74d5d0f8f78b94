// Package osascript executes AppleScript source against the host's
// scripting bridge via the osascript binary.
//
// Execution is funneled through a single worker goroutine: the scripting
// engine of the target application is single-threaded and concurrent
// calls against it are unsafe. Callers block until their script has run,
// but the process never runs more than one script at a time.
package osascript

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"sync"
)

// ErrApplicationNotRunning reports that the target application could not
// be reached by the scripting bridge.
var ErrApplicationNotRunning = errors.New("target application is not running")

// ErrRunnerClosed reports a Run call after Close.
var ErrRunnerClosed = errors.New("osascript runner is closed")

// ScriptError carries the scripting engine's failure message verbatim.
type ScriptError struct {
	Message string
}

func (e *ScriptError) Error() string {
	return "applescript error: " + e.Message
}

// Executor runs one script and returns its raw text output.
type Executor interface {
	Run(ctx context.Context, script string) (string, error)
}

type job struct {
	script string
	reply  chan result
}

type result struct {
	output string
	err    error
}

// Runner serializes script execution on a dedicated worker goroutine.
type Runner struct {
	path     string
	baseArgs []string

	jobs      chan job
	done      chan struct{}
	closeOnce sync.Once
}

var _ Executor = (*Runner)(nil)

// New creates a Runner that executes scripts via `osascript -e <script>`.
func New() *Runner {
	return NewCommand("osascript", "-e")
}

// NewCommand creates a Runner with a custom interpreter command.
// The script source is appended as the final argument.
func NewCommand(path string, args ...string) *Runner {
	r := &Runner{
		path:     path,
		baseArgs: args,
		jobs:     make(chan job),
		done:     make(chan struct{}),
	}
	go r.work()
	return r
}

// Run submits the script and blocks until it has executed.
// There is no retry and no way to abort a script once it has started;
// cancelling the context only abandons the wait, not the execution.
func (r *Runner) Run(ctx context.Context, script string) (string, error) {
	reply := make(chan result, 1)

	select {
	case r.jobs <- job{script: script, reply: reply}:
	case <-r.done:
		return "", ErrRunnerClosed
	case <-ctx.Done():
		return "", ctx.Err()
	}

	select {
	case res := <-reply:
		return res.output, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// Close stops the worker. Run calls that have not been picked up, and
// any submitted later, fail with ErrRunnerClosed. A script already
// handed to the worker still runs to completion and its caller gets the
// result.
func (r *Runner) Close() {
	r.closeOnce.Do(func() {
		close(r.done)
	})
}

func (r *Runner) work() {
	for {
		select {
		case j := <-r.jobs:
			out, err := r.execute(j.script)
			j.reply <- result{output: out, err: err}
		case <-r.done:
			return
		}
	}
}

// execute performs the blocking call. It deliberately does not take a
// context: the underlying scripting call has no abort primitive.
func (r *Runner) execute(script string) (string, error) {
	args := make([]string, 0, len(r.baseArgs)+1)
	args = append(args, r.baseArgs...)
	args = append(args, script)

	cmd := exec.Command(r.path, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", classify(msg)
	}

	return strings.TrimRight(stdout.String(), "\n"), nil
}

// classify maps a scripting failure message to a typed error.
func classify(msg string) error {
	if strings.Contains(msg, "Application isn't running") ||
		strings.Contains(msg, "Can't get application") ||
		strings.Contains(msg, "(-600)") {
		return ErrApplicationNotRunning
	}
	return &ScriptError{Message: msg}
}
