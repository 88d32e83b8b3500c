package clients

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	httpapi "github.com/nirvixtech/nirvix-tracker/internal/api/http"
)

type Client struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Industry      string   `json:"industry"`
	ContactPerson string   `json:"contactPerson"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Projects      []string `json:"projects"`
	TotalValue    float64  `json:"totalValue"`
	Since         string   `json:"since"`
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) List(ctx context.Context) ([]Client, error) {
	const q = `
select id, name, coalesce(industry, ''), coalesce(contact_person, ''), coalesce(email, ''),
       coalesce(phone, ''), projects, coalesce(total_value, 0), coalesce(since::text, '')
from clients
order by name asc;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	out := make([]Client, 0, 8)
	for rows.Next() {
		var cl Client
		err := rows.Scan(&cl.ID, &cl.Name, &cl.Industry, &cl.ContactPerson, &cl.Email,
			&cl.Phone, &cl.Projects, &cl.TotalValue, &cl.Since)
		if err != nil {
			return nil, fmt.Errorf("list clients: %w", err)
		}
		if cl.Projects == nil {
			cl.Projects = []string{}
		}
		out = append(out, cl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return out, nil
}

type Handler struct {
	repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) list(c *gin.Context) {
	clients, err := h.repo.List(c.Request.Context())
	if err != nil {
		httpapi.Fail(c, http.StatusInternalServerError, "Failed to fetch clients: "+err.Error())
		return
	}
	httpapi.OK(c, clients)
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/clients", h.list)
}
