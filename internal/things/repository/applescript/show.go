package applescript

import (
	"context"
	"strings"

	"github.com/kiki830621/che-things-mcp/internal/things"
)

// UI commands bring the application to the foreground so the user
// actually sees the navigation happen.

func (r *implRepository) ShowTodo(ctx context.Context, id string) error {
	script := tell(
		"show to do id "+quote(id),
		"activate",
	)
	if _, err := r.run(ctx, script); err != nil {
		return asNotFound(err, "to-do", id)
	}
	return nil
}

func (r *implRepository) ShowProject(ctx context.Context, id string) error {
	script := tell(
		"show project id "+quote(id),
		"activate",
	)
	if _, err := r.run(ctx, script); err != nil {
		return asNotFound(err, "project", id)
	}
	return nil
}

func (r *implRepository) ShowList(ctx context.Context, name string) error {
	script := tell(
		"show "+listReference(name),
		"activate",
	)
	_, err := r.run(ctx, script)
	return err
}

func (r *implRepository) ShowQuickEntry(ctx context.Context, input things.QuickEntryInput) error {
	props := make([]string, 0, 2)
	if input.Name != nil {
		props = append(props, "name:"+quote(*input.Name))
	}
	if input.Notes != nil {
		props = append(props, "notes:"+quote(*input.Notes))
	}
	statement := "show quick entry panel"
	if len(props) > 0 {
		statement += " with properties {" + strings.Join(props, ", ") + "}"
	}
	_, err := r.run(ctx, tell(statement))
	return err
}

func (r *implRepository) EmptyTrash(ctx context.Context) error {
	_, err := r.run(ctx, tell("empty trash"))
	return err
}
