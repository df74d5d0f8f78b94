package repository

import (
	"context"

	"github.com/kiki830621/che-things-mcp/internal/model"
	"github.com/kiki830621/che-things-mcp/internal/things"
)

// ThingsRepository is the scripting-bridge boundary: every method builds
// one or more AppleScript commands, executes them, and decodes the
// result. Implementations must not cache application state; the
// application is the sole source of truth.
type ThingsRepository interface {
	// Queries
	TodosInList(ctx context.Context, listName string) ([]model.Todo, error)
	OpenTodos(ctx context.Context) ([]model.Todo, error)
	SelectedTodos(ctx context.Context) ([]model.Todo, error)
	TodosInProject(ctx context.Context, scope things.ProjectScope) ([]model.Todo, error)
	TodosInArea(ctx context.Context, scope things.AreaScope) ([]model.Todo, error)
	Projects(ctx context.Context) ([]model.Project, error)
	ProjectsInArea(ctx context.Context, scope things.AreaScope) ([]model.Project, error)
	Areas(ctx context.Context) ([]model.Area, error)
	Tags(ctx context.Context) ([]model.Tag, error)

	// Mutations
	AddTodo(ctx context.Context, input things.AddTodoInput) (model.Todo, error)
	UpdateTodo(ctx context.Context, input things.UpdateTodoInput) error
	SetTodoStatus(ctx context.Context, id string, completed bool) error
	DeleteTodo(ctx context.Context, id string) error
	AddProject(ctx context.Context, input things.AddProjectInput) (model.Project, error)
	UpdateProject(ctx context.Context, input things.UpdateProjectInput) error
	DeleteProject(ctx context.Context, id string) error
	MoveTodo(ctx context.Context, input things.MoveTodoInput) error
	MoveProject(ctx context.Context, id, toArea string) error

	// UI commands
	ShowTodo(ctx context.Context, id string) error
	ShowProject(ctx context.Context, id string) error
	ShowList(ctx context.Context, name string) error
	ShowQuickEntry(ctx context.Context, input things.QuickEntryInput) error
	EmptyTrash(ctx context.Context) error
}
