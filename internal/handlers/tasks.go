package handlers

import (
	"net/http"

	"lentora/internal/service"

	"github.com/gin-gonic/gin"
)

// TaskRequest is the payload for creating or editing a task.
type TaskRequest struct {
	Title       string `json:"title" binding:"required" example:"Write weekly report"`
	Description string `json:"description,omitempty" example:"Summarize sprint results"`
	// Allowed: low, medium, high (default medium)
	Priority string `json:"priority,omitempty" example:"high"`
	Shared   bool   `json:"shared,omitempty"`
}

func (r TaskRequest) input() service.TaskInput {
	return service.TaskInput{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Shared:      r.Shared,
	}
}

// CompleteTaskRequest toggles completion. An empty body marks the task completed.
type CompleteTaskRequest struct {
	Completed *bool `json:"completed,omitempty" example:"true"`
}

// @Summary      List tasks
// @Tags         tasks
// @Produce      json
// @Param        filter  query   string  false  "Task filter"  Enums(all,active,completed)
// @Success      200     {object}  map[string]interface{}  "count, tasks"
// @Failure      400     {object}  map[string]string
// @Failure      401     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /api/v1/tasks [get]
// @Security     BearerAuth
func (h *Handler) listTasks(c *gin.Context) {
	tasks, err := h.services.Tasks.List(c.Request.Context(), c.Query("filter"))
	if err != nil {
		h.respondServiceError(c, err, "failed to load tasks", "tasks_list_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count": len(tasks),
		"tasks": tasks,
	})
}

// @Summary      Create task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body   TaskRequest  true  "Task payload"
// @Success      201   {object}  models.Task
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/tasks [post]
// @Security     BearerAuth
func (h *Handler) createTask(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	task, err := h.services.Tasks.Create(c.Request.Context(), req.input())
	if err != nil {
		h.respondServiceError(c, err, "failed to create task", "task_create_failed")
		return
	}
	c.JSON(http.StatusCreated, task)
}

// @Summary      Update task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path   string       true  "Task ID"
// @Param        body  body   TaskRequest  true  "Task payload"
// @Success      200   {object}  models.Task
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/tasks/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateTask(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	id := c.Param("id")
	task, err := h.services.Tasks.Update(c.Request.Context(), id, req.input())
	if err != nil {
		h.respondServiceError(c, err, "failed to update task", "task_update_failed")
		return
	}
	c.JSON(http.StatusOK, task)
}

// @Summary      Complete or reopen task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path   string               true   "Task ID"
// @Param        body  body   CompleteTaskRequest  false  "Completion flag"
// @Success      200   {object}  models.Task
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/tasks/{id}/complete [post]
// @Security     BearerAuth
func (h *Handler) completeTask(c *gin.Context) {
	completed := true
	if c.Request.ContentLength > 0 {
		var req CompleteTaskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
			return
		}
		if req.Completed != nil {
			completed = *req.Completed
		}
	}
	task, err := h.services.Tasks.SetCompleted(c.Request.Context(), c.Param("id"), completed)
	if err != nil {
		h.respondServiceError(c, err, "failed to update task", "task_complete_failed")
		return
	}
	c.JSON(http.StatusOK, task)
}

// @Summary      Delete task
// @Tags         tasks
// @Param        id  path  string  true  "Task ID"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/tasks/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteTask(c *gin.Context) {
	if err := h.services.Tasks.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondServiceError(c, err, "failed to delete task", "task_delete_failed")
		return
	}
	c.Status(http.StatusNoContent)
}
