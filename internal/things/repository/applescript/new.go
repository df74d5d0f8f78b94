package applescript

import (
	"context"
	"errors"
	"strings"

	"github.com/kiki830621/che-things-mcp/internal/things"
	"github.com/kiki830621/che-things-mcp/internal/things/repository"
	"github.com/kiki830621/che-things-mcp/pkg/datemath"
	"github.com/kiki830621/che-things-mcp/pkg/log"
	"github.com/kiki830621/che-things-mcp/pkg/osascript"
)

type implRepository struct {
	l      log.Logger
	runner osascript.Executor
	dates  *datemath.Parser
}

var _ repository.ThingsRepository = &implRepository{}

// New builds the AppleScript-backed repository. All scripts go through
// the given executor, which serializes them.
func New(l log.Logger, runner osascript.Executor, dates *datemath.Parser) repository.ThingsRepository {
	return &implRepository{
		l:      l,
		runner: runner,
		dates:  dates,
	}
}

// run executes one script and maps executor failures into the domain
// error taxonomy.
func (r *implRepository) run(ctx context.Context, script string) (string, error) {
	out, err := r.runner.Run(ctx, script)
	if err != nil {
		return "", r.mapExecError(ctx, err)
	}
	return out, nil
}

func (r *implRepository) mapExecError(ctx context.Context, err error) error {
	if errors.Is(err, osascript.ErrApplicationNotRunning) {
		return things.ErrApplicationNotRunning
	}
	var se *osascript.ScriptError
	if errors.As(err, &se) {
		r.l.Warnf(ctx, "applescript.run: script failed: %s", se.Message)
		return &things.ScriptError{Message: se.Message}
	}
	return err
}

// asNotFound converts a "Can't get <kind> id ..." script failure into a
// NotFoundError for mutations that address a single object by id. Any
// other error passes through unchanged.
func asNotFound(err error, kind, ref string) error {
	var se *things.ScriptError
	if errors.As(err, &se) && strings.Contains(se.Message, "Can't get") {
		return &things.NotFoundError{Kind: kind, Ref: ref}
	}
	return err
}
