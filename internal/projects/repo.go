package projects

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

const projectColumns = `name, coalesce(url, ''), coalesce(type, ''), tech_stack, coalesce(handled_by, ''),
coalesce(renewal_date, ''), coalesce(status, 'Active'), coalesce(client, ''), coalesce(description, ''),
assigned_to, coalesce(deadline, ''), created_at, updated_at`

func (r *Repo) List(ctx context.Context) ([]Project, error) {
	const q = `
select ` + projectColumns + `
from projects
order by id asc;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	out := make([]Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return out, nil
}

// GetByName matches case-insensitively, as the dashboard always has.
func (r *Repo) GetByName(ctx context.Context, name string) (Project, error) {
	const q = `
select ` + projectColumns + `
from projects
where lower(name) = lower($1);
`
	p, err := scanProject(r.db.QueryRow(ctx, q, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Project{}, ErrNotFound
		}
		return Project{}, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

func (r *Repo) Insert(ctx context.Context, p Project) (Project, error) {
	const q = `
insert into projects
  (name, url, type, tech_stack, handled_by, renewal_date, status, client, description, assigned_to, deadline, created_at, updated_at)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now())
returning created_at, updated_at;
`
	err := r.db.QueryRow(ctx, q,
		p.Name, p.URL, p.Type, p.TechStack, p.HandledBy, p.RenewalDate,
		p.Status, p.Client, p.Description, p.AssignedTo, p.Deadline).
		Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Project{}, ErrDuplicate
		}
		return Project{}, fmt.Errorf("insert project: %w", err)
	}
	return p, nil
}

// Update rewrites the row addressed by name; the new name may differ when
// the payload renamed the project.
func (r *Repo) Update(ctx context.Context, name string, p Project) (Project, error) {
	const q = `
update projects
set name = $2, url = $3, type = $4, tech_stack = $5, handled_by = $6, renewal_date = $7,
    status = $8, client = $9, description = $10, assigned_to = $11, deadline = $12, updated_at = now()
where lower(name) = lower($1)
returning created_at, updated_at;
`
	err := r.db.QueryRow(ctx, q,
		name, p.Name, p.URL, p.Type, p.TechStack, p.HandledBy, p.RenewalDate,
		p.Status, p.Client, p.Description, p.AssignedTo, p.Deadline).
		Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Project{}, ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Project{}, ErrDuplicate
		}
		return Project{}, fmt.Errorf("update project: %w", err)
	}
	return p, nil
}

func (r *Repo) Delete(ctx context.Context, name string) (Project, error) {
	const q = `
delete from projects
where lower(name) = lower($1)
returning ` + projectColumns + `;
`
	p, err := scanProject(r.db.QueryRow(ctx, q, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Project{}, ErrNotFound
		}
		return Project{}, fmt.Errorf("delete project: %w", err)
	}
	return p, nil
}

func scanProject(row pgx.Row) (Project, error) {
	var p Project
	err := row.Scan(&p.Name, &p.URL, &p.Type, &p.TechStack, &p.HandledBy,
		&p.RenewalDate, &p.Status, &p.Client, &p.Description,
		&p.AssignedTo, &p.Deadline, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return Project{}, err
	}
	if p.TechStack == nil {
		p.TechStack = []string{}
	}
	if p.AssignedTo == nil {
		p.AssignedTo = []string{}
	}
	return p, nil
}
