package applescript

import (
	"context"
	"strings"

	"github.com/kiki830621/che-things-mcp/internal/model"
	"github.com/kiki830621/che-things-mcp/internal/things"
)

// AddTodo creates a to-do and places it. Placement is done with
// post-creation statements instead of creation-time location
// properties; the latter silently ignores unknown containers, the
// former fails loudly.
func (r *implRepository) AddTodo(ctx context.Context, input things.AddTodoInput) (model.Todo, error) {
	if input.ProjectName != nil {
		if err := r.checkProjectExists(ctx, *input.ProjectName); err != nil {
			return model.Todo{}, err
		}
	}

	statements := []string{
		"set newTodo to make new to do with properties " + todoProperties(input),
	}
	if input.DueDate != nil {
		statements = append(statements, r.dueDateStatement("newTodo", *input.DueDate))
	}
	switch {
	case input.ProjectName != nil:
		statements = append(statements, "set project of newTodo to project "+quote(*input.ProjectName))
	case input.ListName != nil:
		statements = append(statements, "move newTodo to "+listReference(*input.ListName))
	}
	if input.When != nil {
		statements = append(statements, r.whenStatement("newTodo", *input.When))
	}
	statements = append(statements, "return id of newTodo")

	id, err := r.run(ctx, tell(statements...))
	if err != nil {
		return model.Todo{}, err
	}
	return r.todoByID(ctx, id, input)
}

// todoByID reads back a just-created to-do. If the read fails or comes
// back empty the creation still succeeded, so the result is assembled
// from the input instead of surfacing an error.
func (r *implRepository) todoByID(ctx context.Context, id string, input things.AddTodoInput) (model.Todo, error) {
	out, err := r.run(ctx, todoFetchScript(`(to dos whose id is `+quote(id)+`)`))
	if err == nil {
		if todos := parseTodos(out); len(todos) > 0 {
			return todos[0], nil
		}
	}
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}
	return model.Todo{
		ID:          id,
		Name:        input.Name,
		Notes:       input.Notes,
		Status:      model.StatusOpen,
		TagNames:    tags,
		DueDate:     input.DueDate,
		ProjectName: input.ProjectName,
	}, nil
}

// checkProjectExists verifies a project name before a creation script
// references it. Referencing a missing project inside the creation
// script would create the to-do and then fail, leaving a half-placed
// item behind.
func (r *implRepository) checkProjectExists(ctx context.Context, name string) error {
	script := tell(
		"try",
		"    set theProject to first project whose name is "+quote(name),
		`    return "found"`,
		"on error",
		`    return "not_found"`,
		"end try",
	)
	out, err := r.run(ctx, script)
	if err != nil {
		return err
	}
	if strings.TrimSpace(out) != "found" {
		return things.NewInvalidParameter("Project '%s' not found", name)
	}
	return nil
}

// UpdateTodo applies a partial update, one set statement per provided
// field. An update with no fields is rejected before any script runs.
func (r *implRepository) UpdateTodo(ctx context.Context, input things.UpdateTodoInput) error {
	statements := []string{
		"set targetTodo to to do id " + quote(input.ID),
	}
	provided := 0
	if input.Name != nil {
		statements = append(statements, "set name of targetTodo to "+quote(*input.Name))
		provided++
	}
	if input.Notes != nil {
		statements = append(statements, "set notes of targetTodo to "+quote(*input.Notes))
		provided++
	}
	if input.DueDate != nil {
		statements = append(statements, r.dueDateStatement("targetTodo", *input.DueDate))
		provided++
	}
	if input.Tags != nil {
		statements = append(statements, "set tag names of targetTodo to "+quote(strings.Join(input.Tags, listSeparator)))
		provided++
	}
	if input.When != nil {
		statements = append(statements, r.whenStatement("targetTodo", *input.When))
		provided++
	}
	if provided == 0 {
		return things.NewInvalidParameter("no fields to update")
	}

	if _, err := r.run(ctx, tell(statements...)); err != nil {
		return asNotFound(err, "to-do", input.ID)
	}
	return nil
}

func (r *implRepository) SetTodoStatus(ctx context.Context, id string, completed bool) error {
	status := "open"
	if completed {
		status = "completed"
	}
	script := tell("set status of to do id " + quote(id) + " to " + status)
	if _, err := r.run(ctx, script); err != nil {
		return asNotFound(err, "to-do", id)
	}
	return nil
}

func (r *implRepository) DeleteTodo(ctx context.Context, id string) error {
	script := tell("delete to do id " + quote(id))
	if _, err := r.run(ctx, script); err != nil {
		return asNotFound(err, "to-do", id)
	}
	return nil
}

// MoveTodo relocates a to-do. The destination is validated upstream;
// here exactly one of ToList/ToProject is expected to be set.
func (r *implRepository) MoveTodo(ctx context.Context, input things.MoveTodoInput) error {
	var statement string
	switch {
	case input.ToProject != nil:
		statement = "move to do id " + quote(input.ID) + " to project " + quote(*input.ToProject)
	case input.ToList != nil:
		statement = "move to do id " + quote(input.ID) + " to " + listReference(*input.ToList)
	default:
		return things.NewInvalidParameter("either to_list or to_project is required")
	}
	if _, err := r.run(ctx, tell(statement)); err != nil {
		return asNotFound(err, "to-do", input.ID)
	}
	return nil
}
