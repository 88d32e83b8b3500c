package team

import (
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "github.com/nirvixtech/nirvix-tracker/internal/api/http"
)

type Handler struct {
	repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) list(c *gin.Context) {
	members, err := h.repo.List(c.Request.Context())
	if err != nil {
		httpapi.Fail(c, http.StatusInternalServerError, "Failed to fetch team: "+err.Error())
		return
	}
	httpapi.OK(c, members)
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/team", h.list)
}
