package http

import (
	"context"

	"github.com/nirvixtech/nirvix-tracker/internal/upcoming/domain"
)

// Lifecycle is the service surface the endpoints translate to.
type Lifecycle interface {
	Create(ctx context.Context, payload domain.Payload) (domain.UpcomingProject, error)
	List(ctx context.Context) ([]domain.UpcomingProject, error)
	Update(ctx context.Context, code string, payload domain.Payload) (domain.UpcomingProject, error)
	Delete(ctx context.Context, code string) (domain.UpcomingProject, error)
}

// Handler bundles the dependencies for upcoming-project HTTP endpoints.
type Handler struct {
	svc Lifecycle
}

func New(svc Lifecycle) *Handler {
	return &Handler{svc: svc}
}

const timestampLayout = "2006-01-02 15:04:05"

// projectResponse is the wire shape: the internal code travels as `id`.
type projectResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Client      string   `json:"client"`
	Description string   `json:"description"`
	TechStack   []string `json:"techStack"`
	Status      string   `json:"status"`
	Deadline    string   `json:"deadline"`
	AssignedTo  []string `json:"assignedTo"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

func toResponse(p domain.UpcomingProject) projectResponse {
	return projectResponse{
		ID:          p.Code,
		Name:        p.Name,
		Client:      p.Client,
		Description: p.Description,
		TechStack:   p.TechStack,
		Status:      p.Status,
		Deadline:    p.Deadline,
		AssignedTo:  p.AssignedTo,
		CreatedAt:   p.CreatedAt.Format(timestampLayout),
		UpdatedAt:   p.UpdatedAt.Format(timestampLayout),
	}
}
