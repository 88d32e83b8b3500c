package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nirvixtech/nirvix-tracker/internal/upcoming/domain"
)

// Repo provides persistence for upcoming projects. Code assignment happens
// inside Insert: the next sequence value is taken from a dedicated counter
// row in the same transaction as the insert, so concurrent creators can
// never compute the same code.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

const selectColumns = `code, name, client, description, tech_stack, status, deadline, assigned_to, created_at, updated_at`

// Insert stores a new record, assigning the next code in the UP namespace.
// The passed record's Code field is ignored; the saved row is returned.
func (r *Repo) Insert(ctx context.Context, p domain.UpcomingProject) (domain.UpcomingProject, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.UpcomingProject{}, fmt.Errorf("begin insert: %w", err)
	}
	defer tx.Rollback(ctx)

	const nextQ = `
insert into code_sequences (prefix, value) values ($1, 1)
on conflict (prefix) do update set value = code_sequences.value + 1
returning value;
`
	var seq int64
	if err := tx.QueryRow(ctx, nextQ, domain.CodePrefix).Scan(&seq); err != nil {
		return domain.UpcomingProject{}, fmt.Errorf("next code: %w", err)
	}
	p.Code = domain.FormatCode(seq)

	const insertQ = `
insert into upcoming_projects
  (code, name, client, description, tech_stack, status, deadline, assigned_to, created_at, updated_at)
values ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
returning created_at, updated_at;
`
	err = tx.QueryRow(ctx, insertQ,
		p.Code, p.Name, p.Client, p.Description, p.TechStack, p.Status, p.Deadline, p.AssignedTo).
		Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.UpcomingProject{}, fmt.Errorf("insert upcoming project: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.UpcomingProject{}, fmt.Errorf("commit insert: %w", err)
	}
	return p, nil
}

// List returns all records newest-first, insertion order breaking ties.
func (r *Repo) List(ctx context.Context) ([]domain.UpcomingProject, error) {
	const q = `
select ` + selectColumns + `
from upcoming_projects
order by created_at desc, id desc;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list upcoming projects: %w", err)
	}
	defer rows.Close()

	out := make([]domain.UpcomingProject, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list upcoming projects: %w", err)
	}
	return out, nil
}

// GetByCode fetches a single record, domain.ErrNotFound when absent.
func (r *Repo) GetByCode(ctx context.Context, code string) (domain.UpcomingProject, error) {
	const q = `
select ` + selectColumns + `
from upcoming_projects
where code = $1;
`
	p, err := scanProject(r.db.QueryRow(ctx, q, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.UpcomingProject{}, domain.ErrNotFound
		}
		return domain.UpcomingProject{}, fmt.Errorf("get upcoming project: %w", err)
	}
	return p, nil
}

// Update persists the merged record under its existing code. The code and
// created_at columns are left untouched; updated_at refreshes in SQL.
func (r *Repo) Update(ctx context.Context, p domain.UpcomingProject) (domain.UpcomingProject, error) {
	const q = `
update upcoming_projects
set name = $2, client = $3, description = $4, tech_stack = $5,
    status = $6, deadline = $7, assigned_to = $8, updated_at = now()
where code = $1
returning created_at, updated_at;
`
	err := r.db.QueryRow(ctx, q,
		p.Code, p.Name, p.Client, p.Description, p.TechStack, p.Status, p.Deadline, p.AssignedTo).
		Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.UpcomingProject{}, domain.ErrNotFound
		}
		return domain.UpcomingProject{}, fmt.Errorf("update upcoming project: %w", err)
	}
	return p, nil
}

// Delete hard-removes a record and returns the deleted snapshot.
func (r *Repo) Delete(ctx context.Context, code string) (domain.UpcomingProject, error) {
	const q = `
delete from upcoming_projects
where code = $1
returning ` + selectColumns + `;
`
	p, err := scanProject(r.db.QueryRow(ctx, q, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.UpcomingProject{}, domain.ErrNotFound
		}
		return domain.UpcomingProject{}, fmt.Errorf("delete upcoming project: %w", err)
	}
	return p, nil
}

// SeedSequence aligns the code counter with the highest code already stored,
// so deployments with pre-existing rows keep numbering where they left off.
// A missing or unparseable last code seeds from zero.
func (r *Repo) SeedSequence(ctx context.Context) error {
	const lastQ = `
select code from upcoming_projects
where code like $1
order by id desc
limit 1;
`
	var last string
	err := r.db.QueryRow(ctx, lastQ, domain.CodePrefix+"%").Scan(&last)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("seed code sequence: %w", err)
	}

	var n int64
	if last != "" {
		n, _ = domain.ParseCodeNumber(last)
	}

	const seedQ = `
insert into code_sequences (prefix, value) values ($1, $2)
on conflict (prefix) do update
set value = greatest(code_sequences.value, excluded.value);
`
	if _, err := r.db.Exec(ctx, seedQ, domain.CodePrefix, n); err != nil {
		return fmt.Errorf("seed code sequence: %w", err)
	}
	return nil
}

func scanProject(row pgx.Row) (domain.UpcomingProject, error) {
	var p domain.UpcomingProject
	err := row.Scan(&p.Code, &p.Name, &p.Client, &p.Description, &p.TechStack,
		&p.Status, &p.Deadline, &p.AssignedTo, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.UpcomingProject{}, err
	}
	if p.TechStack == nil {
		p.TechStack = []string{}
	}
	if p.AssignedTo == nil {
		p.AssignedTo = []string{}
	}
	return p, nil
}
