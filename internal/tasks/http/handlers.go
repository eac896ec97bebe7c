package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	httpapi "github.com/taskboard-io/taskboard-backend/internal/api/http"
	"github.com/taskboard-io/taskboard-backend/internal/tasks/domain"
	"github.com/taskboard-io/taskboard-backend/internal/tasks/service"
)

// Handler bundles the dependencies for task HTTP endpoints.
type Handler struct {
	svc *service.TaskService
}

func New(svc *service.TaskService) *Handler {
	return &Handler{svc: svc}
}

type createReq struct {
	Title  string `json:"title"`
	Status string `json:"status"`
}

type updateReq struct {
	Title  *string `json:"title"`
	Status *string `json:"status"`
}

func (h *Handler) list(c *gin.Context) {
	projectID, ok := pathID(c, "id", "project not found")
	if !ok {
		return
	}

	items, err := h.svc.List(c.Request.Context(), projectID)
	if err != nil {
		httpapi.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) create(c *gin.Context) {
	projectID, ok := pathID(c, "id", "project not found")
	if !ok {
		return
	}

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}

	t, err := h.svc.Create(c.Request.Context(), projectID, domain.CreateTaskRequest{
		Title:  req.Title,
		Status: req.Status,
	})
	if err != nil {
		httpapi.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *Handler) update(c *gin.Context) {
	projectID, ok := pathID(c, "id", "project not found")
	if !ok {
		return
	}
	taskID, ok := pathID(c, "taskId", "task not found")
	if !ok {
		return
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}

	t, err := h.svc.Update(c.Request.Context(), projectID, taskID, domain.UpdateTaskRequest{
		Title:  req.Title,
		Status: req.Status,
	})
	if err != nil {
		httpapi.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *Handler) delete(c *gin.Context) {
	projectID, ok := pathID(c, "id", "project not found")
	if !ok {
		return
	}
	taskID, ok := pathID(c, "taskId", "task not found")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), projectID, taskID); err != nil {
		httpapi.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}

func (h *Handler) summary(c *gin.Context) {
	projectID, ok := pathID(c, "id", "project not found")
	if !ok {
		return
	}

	s, err := h.svc.Summary(c.Request.Context(), projectID)
	if err != nil {
		httpapi.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func pathID(c *gin.Context, param, notFoundMsg string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": notFoundMsg})
		return 0, false
	}
	return id, true
}
