package http

import (
	"strings"

	"github.com/kiki830621/che-things-mcp/internal/things"
)

// Request bodies mirror the tool catalog's parameter names. Pointer
// fields distinguish "absent" from "present but empty", which partial
// updates rely on.

type addTodoReq struct {
	Name     string   `json:"name"`
	Notes    *string  `json:"notes"`
	DueDate  *string  `json:"due_date"`
	Tags     []string `json:"tags"`
	ListName *string  `json:"list_name"`
	Project  *string  `json:"project"`
	When     *string  `json:"when"`
}

func (r addTodoReq) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return things.NewInvalidParameter("name is required")
	}
	return nil
}

func (r addTodoReq) toInput() things.AddTodoInput {
	return things.AddTodoInput{
		Name:        r.Name,
		Notes:       r.Notes,
		DueDate:     r.DueDate,
		Tags:        r.Tags,
		ListName:    r.ListName,
		ProjectName: r.Project,
		When:        r.When,
	}
}

type updateTodoReq struct {
	ID      string   `json:"id"`
	Name    *string  `json:"name"`
	Notes   *string  `json:"notes"`
	DueDate *string  `json:"due_date"`
	Tags    []string `json:"tags"`
	When    *string  `json:"when"`
}

func (r updateTodoReq) validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return things.NewInvalidParameter("id is required")
	}
	return nil
}

func (r updateTodoReq) toInput() things.UpdateTodoInput {
	return things.UpdateTodoInput{
		ID:      r.ID,
		Name:    r.Name,
		Notes:   r.Notes,
		DueDate: r.DueDate,
		Tags:    r.Tags,
		When:    r.When,
	}
}

// idReq addresses a single object. Used by complete/delete/show tools.
type idReq struct {
	ID string `json:"id"`
}

func (r idReq) validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return things.NewInvalidParameter("id is required")
	}
	return nil
}

type completeTodoReq struct {
	ID        string `json:"id"`
	Completed *bool  `json:"completed"`
}

func (r completeTodoReq) validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return things.NewInvalidParameter("id is required")
	}
	return nil
}

// completed defaults to true: the common case is marking done.
func (r completeTodoReq) completed() bool {
	if r.Completed == nil {
		return true
	}
	return *r.Completed
}

type searchReq struct {
	Query string `json:"query"`
}

func (r searchReq) validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return things.NewInvalidParameter("query is required")
	}
	return nil
}

type addProjectReq struct {
	Name  string   `json:"name"`
	Notes *string  `json:"notes"`
	Tags  []string `json:"tags"`
	Area  *string  `json:"area"`
	When  *string  `json:"when"`
}

func (r addProjectReq) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return things.NewInvalidParameter("name is required")
	}
	return nil
}

func (r addProjectReq) toInput() things.AddProjectInput {
	return things.AddProjectInput{
		Name:     r.Name,
		Notes:    r.Notes,
		Tags:     r.Tags,
		AreaName: r.Area,
		When:     r.When,
	}
}

type updateProjectReq struct {
	ID    string   `json:"id"`
	Name  *string  `json:"name"`
	Notes *string  `json:"notes"`
	Tags  []string `json:"tags"`
}

func (r updateProjectReq) validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return things.NewInvalidParameter("id is required")
	}
	return nil
}

func (r updateProjectReq) toInput() things.UpdateProjectInput {
	return things.UpdateProjectInput{
		ID:    r.ID,
		Name:  r.Name,
		Notes: r.Notes,
		Tags:  r.Tags,
	}
}

type moveTodoReq struct {
	ID        string  `json:"id"`
	ToList    *string `json:"to_list"`
	ToProject *string `json:"to_project"`
}

func (r moveTodoReq) validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return things.NewInvalidParameter("id is required")
	}
	return nil
}

func (r moveTodoReq) toInput() things.MoveTodoInput {
	return things.MoveTodoInput{
		ID:        r.ID,
		ToList:    r.ToList,
		ToProject: r.ToProject,
	}
}

type moveProjectReq struct {
	ID     string `json:"id"`
	ToArea string `json:"to_area"`
}

func (r moveProjectReq) validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return things.NewInvalidParameter("id is required")
	}
	if strings.TrimSpace(r.ToArea) == "" {
		return things.NewInvalidParameter("to_area is required")
	}
	return nil
}

type nameReq struct {
	Name string `json:"name"`
}

func (r nameReq) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return things.NewInvalidParameter("name is required")
	}
	return nil
}

type quickEntryReq struct {
	Name  *string `json:"name"`
	Notes *string `json:"notes"`
}

func (r quickEntryReq) toInput() things.QuickEntryInput {
	return things.QuickEntryInput{
		Name:  r.Name,
		Notes: r.Notes,
	}
}

// scopeReq addresses a project or area by id or name for the advanced
// query tools. At least one must be given.
type scopeReq struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`
}

func (r scopeReq) validate() error {
	if r.ID == nil && r.Name == nil {
		return things.NewInvalidParameter("either id or name is required")
	}
	return nil
}

func (r scopeReq) toProjectScope() things.ProjectScope {
	return things.ProjectScope{ID: r.ID, Name: r.Name}
}

func (r scopeReq) toAreaScope() things.AreaScope {
	return things.AreaScope{ID: r.ID, Name: r.Name}
}

type createTodosBatchReq struct {
	Todos []addTodoReq `json:"todos"`
}

func (r createTodosBatchReq) validate() error {
	if len(r.Todos) == 0 {
		return things.NewInvalidParameter("todos is required")
	}
	return nil
}

func (r createTodosBatchReq) toInputs() []things.AddTodoInput {
	inputs := make([]things.AddTodoInput, 0, len(r.Todos))
	for _, t := range r.Todos {
		inputs = append(inputs, t.toInput())
	}
	return inputs
}

type idsBatchReq struct {
	IDs []string `json:"ids"`
}

func (r idsBatchReq) validate() error {
	if len(r.IDs) == 0 {
		return things.NewInvalidParameter("ids is required")
	}
	return nil
}

type completeTodosBatchReq struct {
	IDs       []string `json:"ids"`
	Completed *bool    `json:"completed"`
}

func (r completeTodosBatchReq) validate() error {
	if len(r.IDs) == 0 {
		return things.NewInvalidParameter("ids is required")
	}
	return nil
}

func (r completeTodosBatchReq) completed() bool {
	if r.Completed == nil {
		return true
	}
	return *r.Completed
}

type moveTodosBatchReq struct {
	IDs       []string `json:"ids"`
	ToList    *string  `json:"to_list"`
	ToProject *string  `json:"to_project"`
}

func (r moveTodosBatchReq) validate() error {
	if len(r.IDs) == 0 {
		return things.NewInvalidParameter("ids is required")
	}
	return nil
}

func (r moveTodosBatchReq) toInput() things.MoveTodosBatchInput {
	return things.MoveTodosBatchInput{
		IDs:       r.IDs,
		ToList:    r.ToList,
		ToProject: r.ToProject,
	}
}

type updateTodosBatchReq struct {
	Todos []updateTodoReq `json:"todos"`
}

func (r updateTodosBatchReq) validate() error {
	if len(r.Todos) == 0 {
		return things.NewInvalidParameter("todos is required")
	}
	return nil
}

func (r updateTodosBatchReq) toInputs() []things.UpdateTodoInput {
	inputs := make([]things.UpdateTodoInput, 0, len(r.Todos))
	for _, t := range r.Todos {
		inputs = append(inputs, t.toInput())
	}
	return inputs
}

type checklistReq struct {
	TodoID string   `json:"todo_id"`
	Items  []string `json:"items"`
}

func (r checklistReq) validate() error {
	if strings.TrimSpace(r.TodoID) == "" {
		return things.NewInvalidParameter("todo_id is required")
	}
	return nil
}

// statusResp acknowledges a mutation with no data payload.
type statusResp struct {
	Status string `json:"status"`
}

var okStatus = statusResp{Status: "ok"}
