package domains

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	httpapi "github.com/nirvixtech/nirvix-tracker/internal/api/http"
)

type Domain struct {
	Name        string `json:"name"`
	RenewalDate string `json:"renewalDate"`
	Status      string `json:"status"`
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) List(ctx context.Context) ([]Domain, error) {
	const q = `
select name, coalesce(renewal_date, ''), coalesce(status, 'Active')
from domains
order by name asc;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list domains: %w", err)
	}
	defer rows.Close()

	out := make([]Domain, 0, 8)
	for rows.Next() {
		var d Domain
		if err := rows.Scan(&d.Name, &d.RenewalDate, &d.Status); err != nil {
			return nil, fmt.Errorf("list domains: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list domains: %w", err)
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
	domains, err := h.repo.List(c.Request.Context())
	if err != nil {
		httpapi.Fail(c, http.StatusInternalServerError, "Failed to fetch domains: "+err.Error())
		return
	}
	httpapi.OK(c, domains)
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/domains", h.list)
}
