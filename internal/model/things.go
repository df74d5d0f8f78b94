package model

// Todo represents a Things to-do as read through the scripting bridge.
// Date fields carry the application's native textual date representation
// and are passed through opaquely; nil means the field is unset in the
// application, never an empty value.
type Todo struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Notes          *string  `json:"notes,omitempty"`
	Status         Status   `json:"status"`
	TagNames       []string `json:"tag_names"`
	DueDate        *string  `json:"due_date,omitempty"`
	ScheduledDate  *string  `json:"scheduled_date,omitempty"`
	CompletionDate *string  `json:"completion_date,omitempty"`
	ProjectName    *string  `json:"project_name,omitempty"`
	AreaName       *string  `json:"area_name,omitempty"`
}

// Project represents a Things project. TodoCount is computed by the
// application at read time.
type Project struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Notes     *string  `json:"notes,omitempty"`
	Status    Status   `json:"status"`
	TagNames  []string `json:"tag_names"`
	AreaName  *string  `json:"area_name,omitempty"`
	TodoCount int      `json:"todo_count"`
}

// Area represents a Things area.
type Area struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	TagNames []string `json:"tag_names"`
}

// Tag represents a Things tag.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Status is the lifecycle state the application reports for a to-do or
// project.
type Status string

const (
	StatusOpen      Status = "open"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)
