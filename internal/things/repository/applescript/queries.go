package applescript

import (
	"context"

	"github.com/kiki830621/che-things-mcp/internal/model"
	"github.com/kiki830621/che-things-mcp/internal/things"
)

func (r *implRepository) TodosInList(ctx context.Context, listName string) ([]model.Todo, error) {
	out, err := r.run(ctx, todoFetchScript("to dos of "+listReference(listName)))
	if err != nil {
		return nil, err
	}
	return parseTodos(out), nil
}

func (r *implRepository) OpenTodos(ctx context.Context) ([]model.Todo, error) {
	out, err := r.run(ctx, todoFetchScript("(to dos whose status is open)"))
	if err != nil {
		return nil, err
	}
	return parseTodos(out), nil
}

func (r *implRepository) SelectedTodos(ctx context.Context) ([]model.Todo, error) {
	out, err := r.run(ctx, todoFetchScript("selected to dos"))
	if err != nil {
		return nil, err
	}
	return parseTodos(out), nil
}

func (r *implRepository) TodosInProject(ctx context.Context, scope things.ProjectScope) ([]model.Todo, error) {
	ref, err := projectReference(scope)
	if err != nil {
		return nil, err
	}
	out, err := r.run(ctx, todoFetchScript("to dos of "+ref))
	if err != nil {
		return nil, err
	}
	return parseTodos(out), nil
}

func (r *implRepository) TodosInArea(ctx context.Context, scope things.AreaScope) ([]model.Todo, error) {
	ref, err := areaReference(scope)
	if err != nil {
		return nil, err
	}
	out, err := r.run(ctx, todoFetchScript("to dos of "+ref))
	if err != nil {
		return nil, err
	}
	return parseTodos(out), nil
}

func (r *implRepository) Projects(ctx context.Context) ([]model.Project, error) {
	out, err := r.run(ctx, projectFetchScript("projects"))
	if err != nil {
		return nil, err
	}
	return parseProjects(out), nil
}

func (r *implRepository) ProjectsInArea(ctx context.Context, scope things.AreaScope) ([]model.Project, error) {
	ref, err := areaReference(scope)
	if err != nil {
		return nil, err
	}
	out, err := r.run(ctx, projectFetchScript("projects of "+ref))
	if err != nil {
		return nil, err
	}
	return parseProjects(out), nil
}

func (r *implRepository) Areas(ctx context.Context) ([]model.Area, error) {
	script := tell(
		`set output to ""`,
		"repeat with a in areas",
		`    set output to output & (id of a) & "|||" & (name of a) & "|||" & (tag names of a) & "###"`,
		"end repeat",
		"return output",
	)
	out, err := r.run(ctx, script)
	if err != nil {
		return nil, err
	}
	return parseAreas(out), nil
}

func (r *implRepository) Tags(ctx context.Context) ([]model.Tag, error) {
	script := tell(
		`set output to ""`,
		"repeat with t in tags",
		`    set output to output & (id of t) & "|||" & (name of t) & "###"`,
		"end repeat",
		"return output",
	)
	out, err := r.run(ctx, script)
	if err != nil {
		return nil, err
	}
	return parseTags(out), nil
}

// projectReference builds an AppleScript project reference from a
// scope. Id takes precedence when both are set.
func projectReference(scope things.ProjectScope) (string, error) {
	switch {
	case scope.ID != nil:
		return "project id " + quote(*scope.ID), nil
	case scope.Name != nil:
		return "project " + quote(*scope.Name), nil
	default:
		return "", things.NewInvalidParameter("either project id or name is required")
	}
}

func areaReference(scope things.AreaScope) (string, error) {
	switch {
	case scope.ID != nil:
		return "area id " + quote(*scope.ID), nil
	case scope.Name != nil:
		return "area " + quote(*scope.Name), nil
	default:
		return "", things.NewInvalidParameter("either area id or name is required")
	}
}
