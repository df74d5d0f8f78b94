package http

import (
	"github.com/gin-gonic/gin"

	"github.com/kiki830621/che-things-mcp/pkg/response"
)

// toolDef is one entry in the closed tool catalog. Dispatch is a flat
// table lookup: adding a tool means adding a row here, nothing else.
type toolDef struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	handler     gin.HandlerFunc `json:"-"`
}

func (h *handler) catalog() []toolDef {
	return []toolDef{
		{"get_inbox", "Get todos from the Inbox list", h.listHandler("inbox")},
		{"get_today", "Get todos scheduled for today", h.listHandler("today")},
		{"get_upcoming", "Get scheduled upcoming todos", h.listHandler("upcoming")},
		{"get_anytime", "Get todos from the Anytime list", h.listHandler("anytime")},
		{"get_someday", "Get todos from the Someday list", h.listHandler("someday")},
		{"get_logbook", "Get completed todos from the Logbook", h.listHandler("logbook")},

		{"get_projects", "Get all projects", h.getProjects},
		{"get_areas", "Get all areas", h.getAreas},
		{"get_tags", "Get all tags", h.getTags},
		{"get_selected_todos", "Get the todos currently selected in the app", h.getSelectedTodos},

		{"add_todo", "Create a new todo", h.addTodo},
		{"update_todo", "Update fields of an existing todo", h.updateTodo},
		{"complete_todo", "Mark a todo completed or reopen it", h.completeTodo},
		{"delete_todo", "Delete a todo", h.deleteTodo},
		{"search_todos", "Search open todos by name and notes", h.searchTodos},

		{"add_project", "Create a new project", h.addProject},
		{"update_project", "Update fields of an existing project", h.updateProject},
		{"delete_project", "Delete a project", h.deleteProject},

		{"move_todo", "Move a todo to a list or project", h.moveTodo},
		{"move_project", "Move a project into an area", h.moveProject},

		{"show_todo", "Navigate the app to a todo", h.showTodo},
		{"show_project", "Navigate the app to a project", h.showProject},
		{"show_list", "Navigate the app to a list", h.showList},
		{"show_quick_entry", "Open the quick entry panel", h.showQuickEntry},

		{"empty_trash", "Empty the app's trash", h.emptyTrash},

		{"get_todos_in_project", "Get todos inside a project", h.getTodosInProject},
		{"get_todos_in_area", "Get todos inside an area", h.getTodosInArea},
		{"get_projects_in_area", "Get projects inside an area", h.getProjectsInArea},

		{"create_todos_batch", "Create multiple todos", h.createTodosBatch},
		{"complete_todos_batch", "Complete or reopen multiple todos", h.completeTodosBatch},
		{"delete_todos_batch", "Delete multiple todos", h.deleteTodosBatch},
		{"move_todos_batch", "Move multiple todos to one destination", h.moveTodosBatch},
		{"update_todos_batch", "Update multiple todos", h.updateTodosBatch},

		{"add_checklist_items", "Append checklist items to a todo", h.addChecklistItems},
		{"set_checklist_items", "Replace the checklist of a todo", h.setChecklistItems},
	}
}

// RegisterRoutes mounts one POST route per tool plus the catalog
// listing.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	tools := h.catalog()

	rg.GET("/tools", func(c *gin.Context) {
		response.OK(c, tools)
	})
	for _, tool := range tools {
		rg.POST("/tools/"+tool.Name, tool.handler)
	}
}
