package things

// AddTodoInput is the input for creating a to-do. Nil optional fields
// are omitted from the creation command entirely.
type AddTodoInput struct {
	Name        string
	Notes       *string
	DueDate     *string
	Tags        []string
	ListName    *string
	ProjectName *string
	When        *string // "today", "tomorrow", "evening", "anytime", "someday", or a date string
}

// UpdateTodoInput is the input for a partial to-do update. A nil field
// is left untouched; Tags == nil means tags are not changed.
type UpdateTodoInput struct {
	ID      string
	Name    *string
	Notes   *string
	DueDate *string
	Tags    []string
	When    *string
}

// AddProjectInput is the input for creating a project.
type AddProjectInput struct {
	Name     string
	Notes    *string
	Tags     []string
	AreaName *string
	When     *string
}

// UpdateProjectInput is the input for a partial project update.
type UpdateProjectInput struct {
	ID    string
	Name  *string
	Notes *string
	Tags  []string
}

// MoveTodoInput moves a to-do into a list or a project. Exactly one of
// ToList/ToProject must be set.
type MoveTodoInput struct {
	ID        string
	ToList    *string
	ToProject *string
}

// ProjectScope addresses a project by id or by name.
type ProjectScope struct {
	ID   *string
	Name *string
}

// AreaScope addresses an area by id or by name.
type AreaScope struct {
	ID   *string
	Name *string
}

// QuickEntryInput pre-fills the application's quick entry panel.
type QuickEntryInput struct {
	Name  *string
	Notes *string
}

// MoveTodosBatchInput moves a set of to-dos to the same destination.
type MoveTodosBatchInput struct {
	IDs       []string
	ToList    *string
	ToProject *string
}

// BatchItemResult is the outcome of one item in a batch operation.
// Index is the item's position in the input collection.
type BatchItemResult struct {
	Index   int     `json:"index"`
	Success bool    `json:"success"`
	ID      *string `json:"id,omitempty"`
	Error   *string `json:"error,omitempty"`
}

// BatchResult aggregates per-item outcomes of a batch operation.
// Succeeded+Failed always equals Total, and Results preserves input
// order with one entry per input item.
type BatchResult struct {
	Total     int               `json:"total"`
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
	Results   []BatchItemResult `json:"results"`
}
