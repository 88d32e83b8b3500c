package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nirvixtech/nirvix-tracker/internal/notify/dispatcher"
)

// Handler exposes the welcome-email endpoint. The send is synchronous; the
// caller gets the delivery outcome directly, matching the dashboard's
// onboarding flow.
type Handler struct {
	dispatcher *dispatcher.Dispatcher
}

func New(d *dispatcher.Dispatcher) *Handler {
	return &Handler{dispatcher: d}
}

type welcomeRequest struct {
	MemberName string `json:"memberName"`
}

func (h *Handler) welcome(c *gin.Context) {
	var req welcomeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.MemberName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "memberName is required"})
		return
	}

	res := h.dispatcher.SendWelcome(c.Request.Context(), req.MemberName)
	c.JSON(http.StatusOK, gin.H{"success": res.Success, "message": res.Message})
}

func (h *Handler) Register(r gin.IRouter) {
	r.POST("/welcome-email", h.welcome)
}
