package projects

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	notify "github.com/nirvixtech/nirvix-tracker/internal/notify/domain"
)

type Notifier interface {
	NotifyAssignment(ctx context.Context, job notify.AssignmentJob) error
}

// Store is the persistence contract; Update addresses the record by its
// pre-update name so a payload may rename it.
type Store interface {
	List(ctx context.Context) ([]Project, error)
	GetByName(ctx context.Context, name string) (Project, error)
	Insert(ctx context.Context, p Project) (Project, error)
	Update(ctx context.Context, name string, p Project) (Project, error)
	Delete(ctx context.Context, name string) (Project, error)
}

type Service struct {
	repo     Store
	notifier Notifier
	logger   *slog.Logger
}

func NewService(repo Store, notifier Notifier, logger *slog.Logger) *Service {
	return &Service{repo: repo, notifier: notifier, logger: logger}
}

func (s *Service) List(ctx context.Context) ([]Project, error) {
	return s.repo.List(ctx)
}

// Create stores a new project. The name is the identity; duplicates are
// rejected case-insensitively. Assignees are notified after the write lands.
func (s *Service) Create(ctx context.Context, payload Payload) (Project, error) {
	if payload.Name == nil || strings.TrimSpace(*payload.Name) == "" {
		return Project{}, ErrMissingName
	}

	if _, err := s.repo.GetByName(ctx, strings.TrimSpace(*payload.Name)); err == nil {
		return Project{}, ErrDuplicate
	} else if !errors.Is(err, ErrNotFound) {
		return Project{}, err
	}

	saved, err := s.repo.Insert(ctx, payload.Apply(Project{}))
	if err != nil {
		return Project{}, err
	}

	s.notifyAssignees(ctx, saved)
	return saved, nil
}

// Update merges the payload over the project addressed by name and persists
// it; assignees are re-notified on every successful update.
func (s *Service) Update(ctx context.Context, name string, payload Payload) (Project, error) {
	existing, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return Project{}, err
	}

	saved, err := s.repo.Update(ctx, name, payload.Apply(existing))
	if err != nil {
		return Project{}, err
	}

	s.notifyAssignees(ctx, saved)
	return saved, nil
}

func (s *Service) Delete(ctx context.Context, name string) (Project, error) {
	return s.repo.Delete(ctx, name)
}

func (s *Service) notifyAssignees(ctx context.Context, p Project) {
	if len(p.AssignedTo) == 0 {
		return
	}

	job := notify.NewAssignmentJob(p.AssignedTo, notify.ProjectSnapshot{
		Name:        p.Name,
		Client:      p.Client,
		Description: p.Description,
		Status:      p.Status,
		Deadline:    p.Deadline,
		TechStack:   p.TechStack,
	})

	if err := s.notifier.NotifyAssignment(context.WithoutCancel(ctx), job); err != nil {
		s.logger.Error("assignment notification hand-off failed",
			"project", p.Name, "job_id", job.ID, "error", err)
		return
	}
	s.logger.Info("assignment notification queued",
		"project", p.Name, "job_id", job.ID, "recipients", len(job.Recipients))
}
