package servers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	httpapi "github.com/nirvixtech/nirvix-tracker/internal/api/http"
)

type Server struct {
	Name        string   `json:"name"`
	IP          string   `json:"ip"`
	URL         string   `json:"url"`
	Nameservers []string `json:"nameservers"`
	Websites    []string `json:"websites"`
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) List(ctx context.Context) ([]Server, error) {
	const q = `
select name, coalesce(ip, ''), coalesce(url, ''), nameservers, websites
from servers
order by id asc;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list servers: %w", err)
	}
	defer rows.Close()

	out := make([]Server, 0, 8)
	for rows.Next() {
		var s Server
		if err := rows.Scan(&s.Name, &s.IP, &s.URL, &s.Nameservers, &s.Websites); err != nil {
			return nil, fmt.Errorf("list servers: %w", err)
		}
		if s.Nameservers == nil {
			s.Nameservers = []string{}
		}
		if s.Websites == nil {
			s.Websites = []string{}
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list servers: %w", err)
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
	servers, err := h.repo.List(c.Request.Context())
	if err != nil {
		httpapi.Fail(c, http.StatusInternalServerError, "Failed to fetch servers: "+err.Error())
		return
	}
	httpapi.OK(c, servers)
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/servers", h.list)
}
