package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "github.com/nirvixtech/nirvix-tracker/internal/api/http"
	"github.com/nirvixtech/nirvix-tracker/internal/upcoming/domain"
)

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		httpapi.Fail(c, http.StatusInternalServerError, "Failed to fetch upcoming projects: "+err.Error())
		return
	}

	out := make([]projectResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toResponse(p))
	}
	httpapi.OK(c, out)
}

func (h *Handler) create(c *gin.Context) {
	var payload domain.Payload
	if err := c.ShouldBindJSON(&payload); err != nil {
		httpapi.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	saved, err := h.svc.Create(c.Request.Context(), payload)
	if err != nil {
		h.writeError(c, err, "Failed to save upcoming project: ")
		return
	}
	httpapi.OK(c, toResponse(saved))
}

func (h *Handler) update(c *gin.Context) {
	code := c.Query("id")
	if code == "" {
		httpapi.Fail(c, http.StatusBadRequest, "Project ID is required")
		return
	}

	var payload domain.Payload
	if err := c.ShouldBindJSON(&payload); err != nil {
		httpapi.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	saved, err := h.svc.Update(c.Request.Context(), code, payload)
	if err != nil {
		h.writeError(c, err, "Failed to update upcoming project: ")
		return
	}
	httpapi.OK(c, toResponse(saved))
}

func (h *Handler) delete(c *gin.Context) {
	code := c.Query("id")
	if code == "" {
		httpapi.Fail(c, http.StatusBadRequest, "Project ID is required")
		return
	}

	deleted, err := h.svc.Delete(c.Request.Context(), code)
	if err != nil {
		h.writeError(c, err, "Failed to delete upcoming project: ")
		return
	}
	httpapi.OK(c, toResponse(deleted))
}

func (h *Handler) writeError(c *gin.Context, err error, storagePrefix string) {
	switch {
	case domain.IsValidationError(err):
		httpapi.Fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httpapi.Fail(c, http.StatusNotFound, "Upcoming project not found")
	default:
		httpapi.Fail(c, http.StatusInternalServerError, storagePrefix+err.Error())
	}
}
