package http

import "github.com/gin-gonic/gin"

// RegisterPublic attaches the unauthenticated auth routes.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.POST("/register", h.register)
	rg.POST("/login", h.login)
}

// RegisterProtected attaches the routes that require a valid bearer token.
func (h *Handler) RegisterProtected(rg *gin.RouterGroup) {
	rg.POST("/logout", h.logout)
	rg.GET("/user", h.currentUser)
}
