package things

import (
	"context"

	"github.com/kiki830621/che-things-mcp/internal/model"
)

// UseCase is the business logic interface for the Things bridge. It is
// a closed catalog: every inbound operation the transport advertises
// maps onto exactly one method here.
type UseCase interface {
	// List reads
	GetList(ctx context.Context, listName string) ([]model.Todo, error)
	GetProjects(ctx context.Context) ([]model.Project, error)
	GetAreas(ctx context.Context) ([]model.Area, error)
	GetTags(ctx context.Context) ([]model.Tag, error)
	GetSelectedTodos(ctx context.Context) ([]model.Todo, error)

	// Task operations
	AddTodo(ctx context.Context, input AddTodoInput) (model.Todo, error)
	UpdateTodo(ctx context.Context, input UpdateTodoInput) error
	CompleteTodo(ctx context.Context, id string, completed bool) error
	DeleteTodo(ctx context.Context, id string) error
	SearchTodos(ctx context.Context, query string) ([]model.Todo, error)

	// Project operations
	AddProject(ctx context.Context, input AddProjectInput) (model.Project, error)
	UpdateProject(ctx context.Context, input UpdateProjectInput) error
	DeleteProject(ctx context.Context, id string) error

	// Move operations
	MoveTodo(ctx context.Context, input MoveTodoInput) error
	MoveProject(ctx context.Context, id, toArea string) error

	// UI operations
	ShowTodo(ctx context.Context, id string) error
	ShowProject(ctx context.Context, id string) error
	ShowList(ctx context.Context, name string) error
	ShowQuickEntry(ctx context.Context, input QuickEntryInput) error

	// Utility operations
	EmptyTrash(ctx context.Context) error

	// Advanced queries
	GetTodosInProject(ctx context.Context, scope ProjectScope) ([]model.Todo, error)
	GetTodosInArea(ctx context.Context, scope AreaScope) ([]model.Todo, error)
	GetProjectsInArea(ctx context.Context, scope AreaScope) ([]model.Project, error)

	// Batch operations: per-item outcomes, never a batch-level failure.
	CreateTodosBatch(ctx context.Context, items []AddTodoInput) BatchResult
	CompleteTodosBatch(ctx context.Context, ids []string, completed bool) BatchResult
	DeleteTodosBatch(ctx context.Context, ids []string) BatchResult
	MoveTodosBatch(ctx context.Context, input MoveTodosBatchInput) BatchResult
	UpdateTodosBatch(ctx context.Context, items []UpdateTodoInput) BatchResult

	// Checklist operations (URL-scheme channel, fire-and-forget)
	AddChecklistItems(ctx context.Context, todoID string, items []string) error
	SetChecklistItems(ctx context.Context, todoID string, items []string) error
}
