package usecase

import (
	"context"
	"strings"

	"github.com/kiki830621/che-things-mcp/internal/things"
)

// Checklist items are not reachable through the scripting bridge at
// all, so these two operations go out over the things:/// URL scheme
// instead. The hand-off is fire-and-forget: success means the URL was
// dispatched, not that the application applied it.

func (uc *implUseCase) AddChecklistItems(ctx context.Context, todoID string, items []string) error {
	if strings.TrimSpace(todoID) == "" {
		return things.NewInvalidParameter("todo id is required")
	}
	if len(items) == 0 {
		return things.NewInvalidParameter("at least one checklist item is required")
	}
	if err := uc.urls.AppendChecklistItems(todoID, items); err != nil {
		uc.l.Errorf(ctx, "usecase.AddChecklistItems: %v", err)
		return &things.URLSchemeError{Message: err.Error()}
	}
	return nil
}

// SetChecklistItems replaces the full checklist. An empty item list is
// allowed here, unlike append, because replacing with nothing is a
// meaningful command: it clears the checklist.
func (uc *implUseCase) SetChecklistItems(ctx context.Context, todoID string, items []string) error {
	if strings.TrimSpace(todoID) == "" {
		return things.NewInvalidParameter("todo id is required")
	}
	if err := uc.urls.ReplaceChecklistItems(todoID, items); err != nil {
		uc.l.Errorf(ctx, "usecase.SetChecklistItems: %v", err)
		return &things.URLSchemeError{Message: err.Error()}
	}
	return nil
}
