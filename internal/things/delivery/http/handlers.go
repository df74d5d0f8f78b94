package http

import (
	"github.com/gin-gonic/gin"

	"github.com/kiki830621/che-things-mcp/pkg/response"
)

// listHandler builds a read handler for one built-in list.
func (h *handler) listHandler(listName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		todos, err := h.uc.GetList(c.Request.Context(), listName)
		if err != nil {
			h.respondErr(c, "uc.GetList("+listName+")", err)
			return
		}
		response.OK(c, todos)
	}
}

func (h *handler) getProjects(c *gin.Context) {
	projects, err := h.uc.GetProjects(c.Request.Context())
	if err != nil {
		h.respondErr(c, "uc.GetProjects", err)
		return
	}
	response.OK(c, projects)
}

func (h *handler) getAreas(c *gin.Context) {
	areas, err := h.uc.GetAreas(c.Request.Context())
	if err != nil {
		h.respondErr(c, "uc.GetAreas", err)
		return
	}
	response.OK(c, areas)
}

func (h *handler) getTags(c *gin.Context) {
	tags, err := h.uc.GetTags(c.Request.Context())
	if err != nil {
		h.respondErr(c, "uc.GetTags", err)
		return
	}
	response.OK(c, tags)
}

func (h *handler) getSelectedTodos(c *gin.Context) {
	todos, err := h.uc.GetSelectedTodos(c.Request.Context())
	if err != nil {
		h.respondErr(c, "uc.GetSelectedTodos", err)
		return
	}
	response.OK(c, todos)
}

func (h *handler) addTodo(c *gin.Context) {
	req, err := decode[addTodoReq](c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}
	todo, err := h.uc.AddTodo(c.Request.Context(), req.toInput())
	if err != nil {
		h.respondErr(c, "uc.AddTodo", err)
		return
	}
	response.OK(c, todo)
}

func (h *handler) updateTodo(c *gin.Context) {
	req, err := decode[updateTodoReq](c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}
	if err := h.uc.UpdateTodo(c.Request.Context(), req.toInput()); err != nil {
		h.respondErr(c, "uc.UpdateTodo", err)
		return
	}
	response.OK(c, okStatus)
}

func (h *handler) completeTodo(c *gin.Context) {
	req, err := decode[completeTodoReq](c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}
	if err := h.uc.CompleteTodo(c.Request.Context(), req.ID, req.completed()); err != nil {
		h.respondErr(c, "uc.CompleteTodo", err)
		return
	}
	response.OK(c, okStatus)
}

func (h *handler) deleteTodo(c *gin.Context) {
	req, err := decode[idReq](c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}
	if err := h.uc.DeleteTodo(c.Request.Context(), req.ID); err != nil {
		h.respondErr(c, "uc.DeleteTodo", err)
		return
	}
	response.OK(c, okStatus)
}

func (h *handler) searchTodos(c *gin.Context) {
	req, err := decode[searchReq](c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}
	todos, err := h.uc.SearchTodos(c.Request.Context(), req.Query)
	if err != nil {
		h.respondErr(c, "uc.SearchTodos", err)
		return
	}
	response.OK(c, todos)
}

func (h *handler) addProject(c *gin.Context) {
	req, err := decode[addProjectReq](c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}
	project, err := h.uc.AddProject(c.Request.Context(), req.toInput())
	if err != nil {
		h.respondErr(c, "uc.AddProject", err)
		return
	}
	response.OK(c, project)
}

func (h *handler) updateProject(c *gin.Context) {
	req, err := decode[updateProjectReq](c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}
	if err := h.uc.UpdateProject(c.Request.Context(), req.toInput()); err != nil {
		h.respondErr(c, "uc.UpdateProject", err)
		return
	}
	response.OK(c, okStatus)
}

func (h *handler) deleteProject(c *gin.Context) {
	req, err := decode[idReq](c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}
	if err := h.uc.DeleteProject(c.Request.Context(), req.ID); err != nil {
		h.respondErr(c, "uc.DeleteProject", err)
		return
	}
	response.OK(c, okStatus)
}

func (h *handler) moveTodo(c *gin.Context) {
	req, err := decode[moveTodoReq](c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}
	if err := h.uc.MoveTodo(c.Request.Context(), req.toInput()); err != nil {
		h.respondErr(c, "uc.MoveTodo", err)
		return
	}
	response.OK(c, okStatus)
}

func (h *handler) moveProject(c *gin.Context) {
	req, err := decode[moveProjectReq](c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}
	if err := h.uc.MoveProject(c.Request.Context(), req.ID, req.ToArea); err != nil {
		h.respondErr(c, "uc.MoveProject", err)
		return
	}
	response.OK(c, okStatus)
}

func (h *handler) showTodo(c *gin.Context) {
	req, err := decode[idReq](c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}
	if err := h.uc.ShowTodo(c.Request.Context(), req.ID); err != nil {
		h.respondErr(c, "uc.ShowTodo", err)
		return
	}
	response.OK(c, okStatus)
}

func (h *handler) showProject(c *gin.Context) {
	req, err := decode[idReq](c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}
	if err := h.uc.ShowProject(c.Request.Context(), req.ID); err != nil {
		h.respondErr(c, "uc.ShowProject", err)
		return
	}
	response.OK(c, okStatus)
}

func (h *handler) showList(c *gin.Context) {
	req, err := decode[nameReq](c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}
	if err := h.uc.ShowList(c.Request.Context(), req.Name); err != nil {
		h.respondErr(c, "uc.ShowList", err)
		return
	}
	response.OK(c, okStatus)
}

func (h *handler) showQuickEntry(c *gin.Context) {
	req, err := decodeOptional[quickEntryReq](c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}
	if err := h.uc.ShowQuickEntry(c.Request.Context(), req.toInput()); err != nil {
		h.respondErr(c, "uc.ShowQuickEntry", err)
		return
	}
	response.OK(c, okStatus)
}

func (h *handler) emptyTrash(c *gin.Context) {
	if err := h.uc.EmptyTrash(c.Request.Context()); err != nil {
		h.respondErr(c, "uc.EmptyTrash", err)
		return
	}
	response.OK(c, okStatus)
}

func (h *handler) getTodosInProject(c *gin.Context) {
	req, err := decode[scopeReq](c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}
	todos, err := h.uc.GetTodosInProject(c.Request.Context(), req.toProjectScope())
	if err != nil {
		h.respondErr(c, "uc.GetTodosInProject", err)
		return
	}
	response.OK(c, todos)
}

func (h *handler) getTodosInArea(c *gin.Context) {
	req, err := decode[scopeReq](c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}
	todos, err := h.uc.GetTodosInArea(c.Request.Context(), req.toAreaScope())
	if err != nil {
		h.respondErr(c, "uc.GetTodosInArea", err)
		return
	}
	response.OK(c, todos)
}

func (h *handler) getProjectsInArea(c *gin.Context) {
	req, err := decode[scopeReq](c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}
	projects, err := h.uc.GetProjectsInArea(c.Request.Context(), req.toAreaScope())
	if err != nil {
		h.respondErr(c, "uc.GetProjectsInArea", err)
		return
	}
	response.OK(c, projects)
}

// Batch handlers always answer 200: per-item failures live inside the
// result body, not in the HTTP status.

func (h *handler) createTodosBatch(c *gin.Context) {
	req, err := decode[createTodosBatchReq](c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}
	response.OK(c, h.uc.CreateTodosBatch(c.Request.Context(), req.toInputs()))
}

func (h *handler) completeTodosBatch(c *gin.Context) {
	req, err := decode[completeTodosBatchReq](c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}
	response.OK(c, h.uc.CompleteTodosBatch(c.Request.Context(), req.IDs, req.completed()))
}

func (h *handler) deleteTodosBatch(c *gin.Context) {
	req, err := decode[idsBatchReq](c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}
	response.OK(c, h.uc.DeleteTodosBatch(c.Request.Context(), req.IDs))
}

func (h *handler) moveTodosBatch(c *gin.Context) {
	req, err := decode[moveTodosBatchReq](c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}
	response.OK(c, h.uc.MoveTodosBatch(c.Request.Context(), req.toInput()))
}

func (h *handler) updateTodosBatch(c *gin.Context) {
	req, err := decode[updateTodosBatchReq](c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}
	response.OK(c, h.uc.UpdateTodosBatch(c.Request.Context(), req.toInputs()))
}

func (h *handler) addChecklistItems(c *gin.Context) {
	req, err := decode[checklistReq](c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}
	if err := h.uc.AddChecklistItems(c.Request.Context(), req.TodoID, req.Items); err != nil {
		h.respondErr(c, "uc.AddChecklistItems", err)
		return
	}
	response.OK(c, okStatus)
}

func (h *handler) setChecklistItems(c *gin.Context) {
	req, err := decode[checklistReq](c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}
	if err := h.uc.SetChecklistItems(c.Request.Context(), req.TodoID, req.Items); err != nil {
		h.respondErr(c, "uc.SetChecklistItems", err)
		return
	}
	response.OK(c, okStatus)
}
