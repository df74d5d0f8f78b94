package usecase

import (
	"context"
	"strings"

	"github.com/kiki830621/che-things-mcp/internal/model"
	"github.com/kiki830621/che-things-mcp/internal/things"
)

func (uc *implUseCase) GetList(ctx context.Context, listName string) ([]model.Todo, error) {
	if strings.TrimSpace(listName) == "" {
		return nil, things.NewInvalidParameter("list name is required")
	}
	return uc.repo.TodosInList(ctx, listName)
}

func (uc *implUseCase) GetProjects(ctx context.Context) ([]model.Project, error) {
	return uc.repo.Projects(ctx)
}

func (uc *implUseCase) GetAreas(ctx context.Context) ([]model.Area, error) {
	return uc.repo.Areas(ctx)
}

func (uc *implUseCase) GetTags(ctx context.Context) ([]model.Tag, error) {
	return uc.repo.Tags(ctx)
}

func (uc *implUseCase) GetSelectedTodos(ctx context.Context) ([]model.Todo, error) {
	return uc.repo.SelectedTodos(ctx)
}

func (uc *implUseCase) AddTodo(ctx context.Context, input things.AddTodoInput) (model.Todo, error) {
	if strings.TrimSpace(input.Name) == "" {
		return model.Todo{}, things.NewInvalidParameter("name is required")
	}
	return uc.repo.AddTodo(ctx, input)
}

func (uc *implUseCase) UpdateTodo(ctx context.Context, input things.UpdateTodoInput) error {
	if strings.TrimSpace(input.ID) == "" {
		return things.NewInvalidParameter("id is required")
	}
	return uc.repo.UpdateTodo(ctx, input)
}

func (uc *implUseCase) CompleteTodo(ctx context.Context, id string, completed bool) error {
	if strings.TrimSpace(id) == "" {
		return things.NewInvalidParameter("id is required")
	}
	return uc.repo.SetTodoStatus(ctx, id, completed)
}

func (uc *implUseCase) DeleteTodo(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return things.NewInvalidParameter("id is required")
	}
	return uc.repo.DeleteTodo(ctx, id)
}

// SearchTodos fetches all open to-dos and filters in process. The
// scripting engine has no usable text search, and matching here keeps
// the comparison semantics consistent regardless of application locale.
func (uc *implUseCase) SearchTodos(ctx context.Context, query string) ([]model.Todo, error) {
	if strings.TrimSpace(query) == "" {
		return nil, things.NewInvalidParameter("query is required")
	}
	todos, err := uc.repo.OpenTodos(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	matched := make([]model.Todo, 0)
	for _, td := range todos {
		if strings.Contains(strings.ToLower(td.Name), needle) {
			matched = append(matched, td)
			continue
		}
		if td.Notes != nil && strings.Contains(strings.ToLower(*td.Notes), needle) {
			matched = append(matched, td)
		}
	}
	return matched, nil
}

func (uc *implUseCase) AddProject(ctx context.Context, input things.AddProjectInput) (model.Project, error) {
	if strings.TrimSpace(input.Name) == "" {
		return model.Project{}, things.NewInvalidParameter("name is required")
	}
	return uc.repo.AddProject(ctx, input)
}

func (uc *implUseCase) UpdateProject(ctx context.Context, input things.UpdateProjectInput) error {
	if strings.TrimSpace(input.ID) == "" {
		return things.NewInvalidParameter("id is required")
	}
	return uc.repo.UpdateProject(ctx, input)
}

func (uc *implUseCase) DeleteProject(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return things.NewInvalidParameter("id is required")
	}
	return uc.repo.DeleteProject(ctx, id)
}

// MoveTodo requires exactly one destination. Accepting both would make
// the outcome depend on statement ordering inside the script.
func (uc *implUseCase) MoveTodo(ctx context.Context, input things.MoveTodoInput) error {
	if strings.TrimSpace(input.ID) == "" {
		return things.NewInvalidParameter("id is required")
	}
	if input.ToList == nil && input.ToProject == nil {
		return things.NewInvalidParameter("either to_list or to_project is required")
	}
	if input.ToList != nil && input.ToProject != nil {
		return things.NewInvalidParameter("to_list and to_project are mutually exclusive")
	}
	return uc.repo.MoveTodo(ctx, input)
}

func (uc *implUseCase) MoveProject(ctx context.Context, id, toArea string) error {
	if strings.TrimSpace(id) == "" {
		return things.NewInvalidParameter("id is required")
	}
	if strings.TrimSpace(toArea) == "" {
		return things.NewInvalidParameter("to_area is required")
	}
	return uc.repo.MoveProject(ctx, id, toArea)
}

func (uc *implUseCase) ShowTodo(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return things.NewInvalidParameter("id is required")
	}
	return uc.repo.ShowTodo(ctx, id)
}

func (uc *implUseCase) ShowProject(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return things.NewInvalidParameter("id is required")
	}
	return uc.repo.ShowProject(ctx, id)
}

func (uc *implUseCase) ShowList(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return things.NewInvalidParameter("list name is required")
	}
	return uc.repo.ShowList(ctx, name)
}

func (uc *implUseCase) ShowQuickEntry(ctx context.Context, input things.QuickEntryInput) error {
	return uc.repo.ShowQuickEntry(ctx, input)
}

func (uc *implUseCase) EmptyTrash(ctx context.Context) error {
	return uc.repo.EmptyTrash(ctx)
}

func (uc *implUseCase) GetTodosInProject(ctx context.Context, scope things.ProjectScope) ([]model.Todo, error) {
	return uc.repo.TodosInProject(ctx, scope)
}

func (uc *implUseCase) GetTodosInArea(ctx context.Context, scope things.AreaScope) ([]model.Todo, error) {
	return uc.repo.TodosInArea(ctx, scope)
}

func (uc *implUseCase) GetProjectsInArea(ctx context.Context, scope things.AreaScope) ([]model.Project, error) {
	return uc.repo.ProjectsInArea(ctx, scope)
}
