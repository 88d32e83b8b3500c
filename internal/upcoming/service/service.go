package service

import (
	"context"
	"log/slog"

	notify "github.com/nirvixtech/nirvix-tracker/internal/notify/domain"
	"github.com/nirvixtech/nirvix-tracker/internal/upcoming/domain"
)

// Store is the persistence contract the lifecycle manager needs. Code
// assignment lives behind Insert so callers never see a half-created record.
type Store interface {
	Insert(ctx context.Context, p domain.UpcomingProject) (domain.UpcomingProject, error)
	List(ctx context.Context) ([]domain.UpcomingProject, error)
	GetByCode(ctx context.Context, code string) (domain.UpcomingProject, error)
	Update(ctx context.Context, p domain.UpcomingProject) (domain.UpcomingProject, error)
	Delete(ctx context.Context, code string) (domain.UpcomingProject, error)
}

// Notifier hands an assignment job off for delivery. Implementations must
// not block on the mail relay; a returned error means the job could not be
// handed off at all and is logged, never surfaced to the API caller.
type Notifier interface {
	NotifyAssignment(ctx context.Context, job notify.AssignmentJob) error
}

// Service orchestrates validated create/read/update/delete of upcoming
// projects and triggers assignment notifications after successful writes.
type Service struct {
	store    Store
	notifier Notifier
	logger   *slog.Logger
}

func New(store Store, notifier Notifier, logger *slog.Logger) *Service {
	return &Service{store: store, notifier: notifier, logger: logger}
}

// Create validates the payload, persists the record with a freshly assigned
// code, and queues assignment emails for a non-empty assignedTo list.
// Notification hand-off failures never fail the create.
func (s *Service) Create(ctx context.Context, payload domain.Payload) (domain.UpcomingProject, error) {
	candidate, err := payload.Normalize(domain.UpcomingProject{})
	if err != nil {
		return domain.UpcomingProject{}, err
	}

	saved, err := s.store.Insert(ctx, candidate)
	if err != nil {
		return domain.UpcomingProject{}, err
	}

	s.notifyAssignees(ctx, saved)
	return saved, nil
}

// List returns every record, newest first.
func (s *Service) List(ctx context.Context) ([]domain.UpcomingProject, error) {
	return s.store.List(ctx)
}

// Update merges the payload over the record addressed by code, re-validates
// the merged view and persists it. The code and creation timestamp are
// preserved; assignees are re-notified on every successful update, not only
// when the assignment changed.
func (s *Service) Update(ctx context.Context, code string, payload domain.Payload) (domain.UpcomingProject, error) {
	existing, err := s.store.GetByCode(ctx, code)
	if err != nil {
		return domain.UpcomingProject{}, err
	}

	merged, err := payload.Normalize(existing)
	if err != nil {
		return domain.UpcomingProject{}, err
	}

	saved, err := s.store.Update(ctx, merged)
	if err != nil {
		return domain.UpcomingProject{}, err
	}

	s.notifyAssignees(ctx, saved)
	return saved, nil
}

// Delete hard-removes the record and returns its last snapshot. No
// notification is sent.
func (s *Service) Delete(ctx context.Context, code string) (domain.UpcomingProject, error) {
	return s.store.Delete(ctx, code)
}

func (s *Service) notifyAssignees(ctx context.Context, p domain.UpcomingProject) {
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

	// The write already committed; losing the hand-off is log-worthy only.
	if err := s.notifier.NotifyAssignment(context.WithoutCancel(ctx), job); err != nil {
		s.logger.Error("assignment notification hand-off failed",
			"code", p.Code, "job_id", job.ID, "error", err)
		return
	}
	s.logger.Info("assignment notification queued",
		"code", p.Code, "job_id", job.ID, "recipients", len(job.Recipients))
}
