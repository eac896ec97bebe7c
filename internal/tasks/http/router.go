package http

import "github.com/gin-gonic/gin"

// RegisterProjectSubroutes attaches task routes under the projects group.
func (h *Handler) RegisterProjectSubroutes(projectsGroup *gin.RouterGroup) {
	projectsGroup.GET("/:id/tasks", h.list)
	projectsGroup.POST("/:id/tasks", h.create)
	projectsGroup.PUT("/:id/tasks/:taskId", h.update)
	projectsGroup.DELETE("/:id/tasks/:taskId", h.delete)
	projectsGroup.GET("/:id/task-summary", h.summary)
}
