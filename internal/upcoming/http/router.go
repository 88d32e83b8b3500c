package http

import "github.com/gin-gonic/gin"

// Register attaches the upcoming-projects routes. Update and delete address
// records via the ?id=<code> query parameter the SPA already uses.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/upcoming-projects", h.list)
	r.POST("/upcoming-projects", h.create)
	r.PUT("/upcoming-projects", h.update)
	r.DELETE("/upcoming-projects", h.delete)
}
