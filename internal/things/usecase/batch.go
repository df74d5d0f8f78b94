package usecase

import (
	"context"

	"github.com/kiki830621/che-things-mcp/internal/things"
)

// runBatch executes items sequentially and records an outcome per item.
// A failing item never aborts the batch; partial progress is reported,
// not rolled back, since the scripting bridge has no transactions.
func runBatch(total int, do func(i int) (*string, error)) things.BatchResult {
	result := things.BatchResult{
		Total:   total,
		Results: make([]things.BatchItemResult, 0, total),
	}
	for i := 0; i < total; i++ {
		id, err := do(i)
		if err != nil {
			msg := err.Error()
			result.Failed++
			result.Results = append(result.Results, things.BatchItemResult{
				Index: i,
				Error: &msg,
			})
			continue
		}
		result.Succeeded++
		result.Results = append(result.Results, things.BatchItemResult{
			Index:   i,
			Success: true,
			ID:      id,
		})
	}
	return result
}

func (uc *implUseCase) CreateTodosBatch(ctx context.Context, items []things.AddTodoInput) things.BatchResult {
	return runBatch(len(items), func(i int) (*string, error) {
		todo, err := uc.AddTodo(ctx, items[i])
		if err != nil {
			return nil, err
		}
		return &todo.ID, nil
	})
}

func (uc *implUseCase) CompleteTodosBatch(ctx context.Context, ids []string, completed bool) things.BatchResult {
	return runBatch(len(ids), func(i int) (*string, error) {
		if err := uc.CompleteTodo(ctx, ids[i], completed); err != nil {
			return nil, err
		}
		return &ids[i], nil
	})
}

func (uc *implUseCase) DeleteTodosBatch(ctx context.Context, ids []string) things.BatchResult {
	return runBatch(len(ids), func(i int) (*string, error) {
		if err := uc.DeleteTodo(ctx, ids[i]); err != nil {
			return nil, err
		}
		return &ids[i], nil
	})
}

func (uc *implUseCase) MoveTodosBatch(ctx context.Context, input things.MoveTodosBatchInput) things.BatchResult {
	return runBatch(len(input.IDs), func(i int) (*string, error) {
		err := uc.MoveTodo(ctx, things.MoveTodoInput{
			ID:        input.IDs[i],
			ToList:    input.ToList,
			ToProject: input.ToProject,
		})
		if err != nil {
			return nil, err
		}
		return &input.IDs[i], nil
	})
}

func (uc *implUseCase) UpdateTodosBatch(ctx context.Context, items []things.UpdateTodoInput) things.BatchResult {
	return runBatch(len(items), func(i int) (*string, error) {
		if err := uc.UpdateTodo(ctx, items[i]); err != nil {
			return nil, err
		}
		return &items[i].ID, nil
	})
}
