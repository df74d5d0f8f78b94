package osascript_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/kiki830621/che-things-mcp/pkg/osascript"
)

func TestRunnerSuccess(t *testing.T) {
	// sh -c makes the "script" argument a shell command, which lets the
	// tests run without a scripting bridge on the host.
	r := osascript.NewCommand("sh", "-c")
	defer r.Close()

	out, err := r.Run(context.Background(), `printf 'hello|||world'`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "hello|||world" {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestRunnerTrimsTrailingNewline(t *testing.T) {
	r := osascript.NewCommand("sh", "-c")
	defer r.Close()

	out, err := r.Run(context.Background(), `echo some-id`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "some-id" {
		t.Errorf("expected trailing newline stripped, got %q", out)
	}
}

func TestRunnerErrorClassification(t *testing.T) {
	r := osascript.NewCommand("sh", "-c")
	defer r.Close()

	tests := []struct {
		name       string
		script     string
		notRunning bool
	}{
		{
			name:       "not running phrase",
			script:     `echo "execution error: Things3 got an error: Application isn't running. (-600)" 1>&2; exit 1`,
			notRunning: true,
		},
		{
			name:       "cannot get application",
			script:     `echo "Can't get application \"Things3\"." 1>&2; exit 1`,
			notRunning: true,
		},
		{
			name:   "generic script failure",
			script: `echo "execution error: missing value (-1728)" 1>&2; exit 1`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Run(context.Background(), tt.script)
			if err == nil {
				t.Fatal("expected error")
			}

			if tt.notRunning {
				if !errors.Is(err, osascript.ErrApplicationNotRunning) {
					t.Errorf("expected ErrApplicationNotRunning, got %v", err)
				}
				return
			}

			var scriptErr *osascript.ScriptError
			if !errors.As(err, &scriptErr) {
				t.Fatalf("expected *ScriptError, got %v", err)
			}
			if !strings.Contains(scriptErr.Message, "-1728") {
				t.Errorf("expected message passed through verbatim, got %q", scriptErr.Message)
			}
		})
	}
}

func TestRunnerFailureWithoutStderr(t *testing.T) {
	r := osascript.NewCommand("sh", "-c")
	defer r.Close()

	_, err := r.Run(context.Background(), `exit 3`)
	var scriptErr *osascript.ScriptError
	if !errors.As(err, &scriptErr) {
		t.Fatalf("expected *ScriptError, got %v", err)
	}
	if scriptErr.Message == "" {
		t.Error("expected non-empty message from process error")
	}
}

func TestRunnerSerializesConcurrentCalls(t *testing.T) {
	r := osascript.NewCommand("sh", "-c")
	defer r.Close()

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := r.Run(context.Background(), `printf ok`)
			if err != nil {
				errs <- err
				return
			}
			if out != "ok" {
				errs <- errors.New("unexpected output " + out)
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent run failed: %v", err)
	}
}

func TestRunnerRunAfterClose(t *testing.T) {
	r := osascript.NewCommand("sh", "-c")
	r.Close()

	_, err := r.Run(context.Background(), `printf never`)
	if !errors.Is(err, osascript.ErrRunnerClosed) {
		t.Fatalf("expected ErrRunnerClosed, got %v", err)
	}

	// Close is idempotent and a later Run still fails cleanly.
	r.Close()
	if _, err := r.Run(context.Background(), `printf never`); !errors.Is(err, osascript.ErrRunnerClosed) {
		t.Fatalf("expected ErrRunnerClosed, got %v", err)
	}
}

func TestRunnerCloseWithConcurrentRuns(t *testing.T) {
	r := osascript.NewCommand("sh", "-c")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Either outcome is fine; the process must not panic.
			out, err := r.Run(context.Background(), `printf ok`)
			if err != nil {
				if !errors.Is(err, osascript.ErrRunnerClosed) {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if out != "ok" {
				t.Errorf("unexpected output %q", out)
			}
		}()
	}
	r.Close()
	wg.Wait()
}

func TestRunnerContextCancelledBeforeSubmit(t *testing.T) {
	r := osascript.NewCommand("sh", "-c")
	defer r.Close()

	// Occupy the worker so the second submission has to wait.
	go r.Run(context.Background(), `sleep 0.3`) //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Run(ctx, `printf never`)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
