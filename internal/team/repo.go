package team

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrMemberNotFound means a display name resolved to no usable address:
// either no such member or the member has no email on file.
var ErrMemberNotFound = errors.New("team member not found")

type Member struct {
	Name   string   `json:"name"`
	Role   string   `json:"role"`
	Email  string   `json:"email"`
	Skills []string `json:"skills"`
	Avatar string   `json:"avatar"`
}

// Repo reads the team table. Assignment notifications resolve recipient
// names through it at delivery time; writes happen elsewhere.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) List(ctx context.Context) ([]Member, error) {
	const q = `
select name, coalesce(role, ''), coalesce(email, ''), skills, coalesce(avatar, '')
from team
order by id asc;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list team: %w", err)
	}
	defer rows.Close()

	out := make([]Member, 0, 16)
	for rows.Next() {
		var m Member
		if err := rows.Scan(&m.Name, &m.Role, &m.Email, &m.Skills, &m.Avatar); err != nil {
			return nil, fmt.Errorf("list team: %w", err)
		}
		if m.Skills == nil {
			m.Skills = []string{}
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list team: %w", err)
	}
	return out, nil
}

// ResolveEmail maps a member display name to their email address.
func (r *Repo) ResolveEmail(ctx context.Context, name string) (string, error) {
	const q = `
select coalesce(email, '')
from team
where name = $1
limit 1;
`
	var email string
	err := r.db.QueryRow(ctx, q, name).Scan(&email)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrMemberNotFound
	}
	if err != nil {
		return "", fmt.Errorf("resolve team member: %w", err)
	}
	if email == "" {
		return "", ErrMemberNotFound
	}
	return email, nil
}
