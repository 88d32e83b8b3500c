package projects

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "github.com/nirvixtech/nirvix-tracker/internal/api/http"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		httpapi.Fail(c, http.StatusInternalServerError, "Failed to fetch projects: "+err.Error())
		return
	}
	httpapi.OK(c, items)
}

func (h *Handler) create(c *gin.Context) {
	var payload Payload
	if err := c.ShouldBindJSON(&payload); err != nil {
		httpapi.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	saved, err := h.svc.Create(c.Request.Context(), payload)
	if err != nil {
		h.writeError(c, err, "Failed to save project: ")
		return
	}
	httpapi.OK(c, saved)
}

func (h *Handler) update(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		httpapi.Fail(c, http.StatusBadRequest, "Project name is required")
		return
	}

	var payload Payload
	if err := c.ShouldBindJSON(&payload); err != nil {
		httpapi.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	saved, err := h.svc.Update(c.Request.Context(), name, payload)
	if err != nil {
		h.writeError(c, err, "Failed to update project: ")
		return
	}
	httpapi.OK(c, saved)
}

func (h *Handler) delete(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		httpapi.Fail(c, http.StatusBadRequest, "Project name is required")
		return
	}

	deleted, err := h.svc.Delete(c.Request.Context(), name)
	if err != nil {
		h.writeError(c, err, "Failed to delete project: ")
		return
	}
	httpapi.OK(c, deleted)
}

func (h *Handler) writeError(c *gin.Context, err error, storagePrefix string) {
	switch {
	case errors.Is(err, ErrMissingName):
		httpapi.Fail(c, http.StatusBadRequest, "Missing required field: name")
	case errors.Is(err, ErrDuplicate):
		httpapi.Fail(c, http.StatusConflict, "Project with this name already exists")
	case errors.Is(err, ErrNotFound):
		httpapi.Fail(c, http.StatusNotFound, "Project not found")
	default:
		httpapi.Fail(c, http.StatusInternalServerError, storagePrefix+err.Error())
	}
}

// Register attaches the project routes; update and delete address records
// via the ?name= query parameter.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/projects", h.list)
	r.POST("/projects", h.create)
	r.PUT("/projects", h.update)
	r.DELETE("/projects", h.delete)
}
