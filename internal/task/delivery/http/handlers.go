package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quartz/internal/middleware"
	"quartz/pkg/response"
)

// Create godoc
// @Summary     Create a new task
// @Description Creates a task on the user's board and pairs it with an agent.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	created, err := h.uc.Create(ctx, middleware.ScopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newTaskResp(created))
}

// List godoc
// @Summary     List tasks
// @Description Returns the board: active tasks in display order, then done tasks.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.List(ctx, middleware.ScopeFromContext(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(out))
}

// Detail godoc
// @Summary     Get task detail
// @Description Returns a single task by its ID.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	t, err := h.uc.Get(ctx, middleware.ScopeFromContext(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newTaskResp(t))
}

// Update godoc
// @Summary     Update a task
// @Description Updates a task. All fields are optional (partial update).
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	updated, err := h.uc.Update(ctx, middleware.ScopeFromContext(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newTaskResp(updated))
}

// Complete godoc
// @Summary     Complete a task
// @Description Marks a task done and moves it off the active board.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	completed, err := h.uc.Complete(ctx, middleware.ScopeFromContext(c), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Complete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newTaskResp(completed))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task by ID.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.Delete(ctx, middleware.ScopeFromContext(c), id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}
