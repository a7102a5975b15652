package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schoolify/internal/domain"
	"schoolify/internal/validate"
)

const msgTaskNotFound = "Tâche non trouvée"

type createTaskRequest struct {
	Name   string `json:"name"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type updateTaskRequest struct {
	Name   *string `json:"name"`
	Date   *string `json:"date"`
	Time   *string `json:"time"`
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

func (h *Handler) listTasks(c *gin.Context) {
	tasks, err := h.tasks.ListTasks(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, err, msgTaskNotFound)
		return
	}
	c.JSON(http.StatusOK, tasksToResponse(tasks))
}

func (h *Handler) listTasksByDate(c *gin.Context) {
	tasks, err := h.tasks.ListByDate(c.Request.Context(), currentUserID(c), c.Param("date"))
	if err != nil {
		h.respondError(c, err, msgTaskNotFound)
		return
	}
	c.JSON(http.StatusOK, tasksToResponse(tasks))
}

func (h *Handler) markedDates(c *gin.Context) {
	marked, err := h.tasks.MarkedDates(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, err, msgTaskNotFound)
		return
	}
	c.JSON(http.StatusOK, marked)
}

func (h *Handler) createTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}

	task, err := h.tasks.CreateTask(c.Request.Context(), currentUserID(c), validate.NewTask{
		Name:   req.Name,
		Date:   req.Date,
		Time:   req.Time,
		Status: req.Status,
		Notes:  req.Notes,
	})
	if err != nil {
		h.respondError(c, err, msgTaskNotFound)
		return
	}
	c.JSON(http.StatusOK, taskToResponse(*task))
}

func (h *Handler) updateTask(c *gin.Context) {
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}

	update := domain.TaskUpdate{
		Name:  req.Name,
		Date:  req.Date,
		Time:  req.Time,
		Notes: req.Notes,
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		update.Status = &status
	}

	task, err := h.tasks.UpdateTask(c.Request.Context(), currentUserID(c), c.Param("id"), update)
	if err != nil {
		h.respondError(c, err, msgTaskNotFound)
		return
	}
	c.JSON(http.StatusOK, taskToResponse(*task))
}

func (h *Handler) deleteTask(c *gin.Context) {
	if err := h.tasks.DeleteTask(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		h.respondError(c, err, msgTaskNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tâche supprimée"})
}
