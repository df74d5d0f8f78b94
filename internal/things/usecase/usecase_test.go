package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/kiki830621/che-things-mcp/internal/model"
	"github.com/kiki830621/che-things-mcp/internal/things"
	"github.com/kiki830621/che-things-mcp/pkg/thingsurl"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockRepo satisfies the repository interface with overridable hooks.
type mockRepo struct {
	openTodos     func(ctx context.Context) ([]model.Todo, error)
	addTodo       func(ctx context.Context, input things.AddTodoInput) (model.Todo, error)
	updateTodo    func(ctx context.Context, input things.UpdateTodoInput) error
	setTodoStatus func(ctx context.Context, id string, completed bool) error
	deleteTodo    func(ctx context.Context, id string) error
	moveTodo      func(ctx context.Context, input things.MoveTodoInput) error
}

func (m *mockRepo) TodosInList(ctx context.Context, listName string) ([]model.Todo, error) {
	return nil, nil
}
func (m *mockRepo) OpenTodos(ctx context.Context) ([]model.Todo, error) {
	if m.openTodos != nil {
		return m.openTodos(ctx)
	}
	return nil, nil
}
func (m *mockRepo) SelectedTodos(ctx context.Context) ([]model.Todo, error) { return nil, nil }
func (m *mockRepo) TodosInProject(ctx context.Context, scope things.ProjectScope) ([]model.Todo, error) {
	return nil, nil
}
func (m *mockRepo) TodosInArea(ctx context.Context, scope things.AreaScope) ([]model.Todo, error) {
	return nil, nil
}
func (m *mockRepo) Projects(ctx context.Context) ([]model.Project, error) { return nil, nil }
func (m *mockRepo) ProjectsInArea(ctx context.Context, scope things.AreaScope) ([]model.Project, error) {
	return nil, nil
}
func (m *mockRepo) Areas(ctx context.Context) ([]model.Area, error) { return nil, nil }
func (m *mockRepo) Tags(ctx context.Context) ([]model.Tag, error)   { return nil, nil }
func (m *mockRepo) AddTodo(ctx context.Context, input things.AddTodoInput) (model.Todo, error) {
	if m.addTodo != nil {
		return m.addTodo(ctx, input)
	}
	return model.Todo{ID: "new", Name: input.Name}, nil
}
func (m *mockRepo) UpdateTodo(ctx context.Context, input things.UpdateTodoInput) error {
	if m.updateTodo != nil {
		return m.updateTodo(ctx, input)
	}
	return nil
}
func (m *mockRepo) SetTodoStatus(ctx context.Context, id string, completed bool) error {
	if m.setTodoStatus != nil {
		return m.setTodoStatus(ctx, id, completed)
	}
	return nil
}
func (m *mockRepo) DeleteTodo(ctx context.Context, id string) error {
	if m.deleteTodo != nil {
		return m.deleteTodo(ctx, id)
	}
	return nil
}
func (m *mockRepo) AddProject(ctx context.Context, input things.AddProjectInput) (model.Project, error) {
	return model.Project{ID: "p", Name: input.Name}, nil
}
func (m *mockRepo) UpdateProject(ctx context.Context, input things.UpdateProjectInput) error {
	return nil
}
func (m *mockRepo) DeleteProject(ctx context.Context, id string) error { return nil }
func (m *mockRepo) MoveTodo(ctx context.Context, input things.MoveTodoInput) error {
	if m.moveTodo != nil {
		return m.moveTodo(ctx, input)
	}
	return nil
}
func (m *mockRepo) MoveProject(ctx context.Context, id, toArea string) error { return nil }
func (m *mockRepo) ShowTodo(ctx context.Context, id string) error            { return nil }
func (m *mockRepo) ShowProject(ctx context.Context, id string) error         { return nil }
func (m *mockRepo) ShowList(ctx context.Context, name string) error          { return nil }
func (m *mockRepo) ShowQuickEntry(ctx context.Context, input things.QuickEntryInput) error {
	return nil
}
func (m *mockRepo) EmptyTrash(ctx context.Context) error { return nil }

type noopOpener struct{ err error }

func (o *noopOpener) Open(rawURL string) error { return o.err }

func newTestUseCase(repo *mockRepo, opener *noopOpener) things.UseCase {
	if opener == nil {
		opener = &noopOpener{}
	}
	return New(&mockLogger{}, repo, thingsurl.NewWithOpener("", opener))
}

func strPtr(s string) *string { return &s }

func TestSearchTodos(t *testing.T) {
	repo := &mockRepo{
		openTodos: func(ctx context.Context) ([]model.Todo, error) {
			return []model.Todo{
				{ID: "1", Name: "Buy MILK at the store"},
				{ID: "2", Name: "Walk the dog", Notes: strPtr("remember the milk too")},
				{ID: "3", Name: "Unrelated"},
			}, nil
		},
	}
	uc := newTestUseCase(repo, nil)

	matched, err := uc.SearchTodos(context.Background(), "milk")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matched) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matched))
	}
	if matched[0].ID != "1" || matched[1].ID != "2" {
		t.Fatalf("unexpected matches: %+v", matched)
	}

	t.Run("empty query rejected", func(t *testing.T) {
		_, err := uc.SearchTodos(context.Background(), "   ")
		var ipe *things.InvalidParameterError
		if !errors.As(err, &ipe) {
			t.Fatalf("expected InvalidParameterError, got %v", err)
		}
	})
}

func TestMoveTodoValidation(t *testing.T) {
	uc := newTestUseCase(&mockRepo{}, nil)

	tests := []struct {
		name    string
		input   things.MoveTodoInput
		wantErr bool
	}{
		{"no destination", things.MoveTodoInput{ID: "T"}, true},
		{"both destinations", things.MoveTodoInput{ID: "T", ToList: strPtr("inbox"), ToProject: strPtr("P")}, true},
		{"list only", things.MoveTodoInput{ID: "T", ToList: strPtr("inbox")}, false},
		{"project only", things.MoveTodoInput{ID: "T", ToProject: strPtr("P")}, false},
		{"missing id", things.MoveTodoInput{ToList: strPtr("inbox")}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := uc.MoveTodo(context.Background(), tt.input)
			if tt.wantErr {
				var ipe *things.InvalidParameterError
				if !errors.As(err, &ipe) {
					t.Fatalf("expected InvalidParameterError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestCreateTodosBatch(t *testing.T) {
	calls := 0
	repo := &mockRepo{
		addTodo: func(ctx context.Context, input things.AddTodoInput) (model.Todo, error) {
			calls++
			if input.Name == "boom" {
				return model.Todo{}, fmt.Errorf("creation failed")
			}
			return model.Todo{ID: "id-" + input.Name, Name: input.Name}, nil
		},
	}
	uc := newTestUseCase(repo, nil)

	result := uc.CreateTodosBatch(context.Background(), []things.AddTodoInput{
		{Name: "a"},
		{Name: "boom"},
		{Name: "c"},
	})

	if calls != 3 {
		t.Fatalf("a failing item must not abort the batch, got %d calls", calls)
	}
	if result.Total != 3 || result.Succeeded != 2 || result.Failed != 1 {
		t.Fatalf("unexpected counts: %+v", result)
	}
	if result.Succeeded+result.Failed != result.Total {
		t.Fatalf("counts do not add up: %+v", result)
	}
	if len(result.Results) != 3 {
		t.Fatalf("expected one outcome per input, got %d", len(result.Results))
	}
	for i, r := range result.Results {
		if r.Index != i {
			t.Errorf("result %d carries index %d", i, r.Index)
		}
	}
	if result.Results[1].Success || result.Results[1].Error == nil {
		t.Fatalf("failing item not reported: %+v", result.Results[1])
	}
	if result.Results[0].ID == nil || *result.Results[0].ID != "id-a" {
		t.Fatalf("succeeding item lost its id: %+v", result.Results[0])
	}
}

func TestUpdateTodosBatchValidationFailure(t *testing.T) {
	uc := newTestUseCase(&mockRepo{}, nil)

	result := uc.UpdateTodosBatch(context.Background(), []things.UpdateTodoInput{
		{ID: "ok", Name: strPtr("renamed")},
		{Name: strPtr("no id")},
	})
	if result.Succeeded != 1 || result.Failed != 1 {
		t.Fatalf("unexpected counts: %+v", result)
	}
	if result.Results[1].Error == nil {
		t.Fatal("validation failure must surface as an item error")
	}
}

func TestMoveTodosBatch(t *testing.T) {
	var moved []string
	repo := &mockRepo{
		moveTodo: func(ctx context.Context, input things.MoveTodoInput) error {
			moved = append(moved, input.ID)
			return nil
		},
	}
	uc := newTestUseCase(repo, nil)

	result := uc.MoveTodosBatch(context.Background(), things.MoveTodosBatchInput{
		IDs:    []string{"a", "b"},
		ToList: strPtr("today"),
	})
	if result.Succeeded != 2 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(moved) != 2 || moved[0] != "a" || moved[1] != "b" {
		t.Fatalf("input order not preserved: %v", moved)
	}
}

func TestChecklistOperations(t *testing.T) {
	t.Run("append requires items", func(t *testing.T) {
		uc := newTestUseCase(&mockRepo{}, nil)
		err := uc.AddChecklistItems(context.Background(), "T1", nil)
		var ipe *things.InvalidParameterError
		if !errors.As(err, &ipe) {
			t.Fatalf("expected InvalidParameterError, got %v", err)
		}
	})

	t.Run("replace with empty list is allowed", func(t *testing.T) {
		uc := newTestUseCase(&mockRepo{}, nil)
		if err := uc.SetChecklistItems(context.Background(), "T1", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("opener failure wraps as scheme error", func(t *testing.T) {
		uc := newTestUseCase(&mockRepo{}, &noopOpener{err: fmt.Errorf("open failed")})
		err := uc.AddChecklistItems(context.Background(), "T1", []string{"item"})
		var use *things.URLSchemeError
		if !errors.As(err, &use) {
			t.Fatalf("expected URLSchemeError, got %v", err)
		}
	})
}
