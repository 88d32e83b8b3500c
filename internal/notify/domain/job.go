package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProjectSnapshot is the slice of a project that assignment emails render.
// It is copied at enqueue time so later edits never leak into in-flight jobs.
type ProjectSnapshot struct {
	Name        string   `json:"name"`
	Client      string   `json:"client"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	Deadline    string   `json:"deadline"`
	TechStack   []string `json:"techStack"`
}

// AssignmentJob asks the dispatcher to notify each recipient about a project
// assignment. Delivery is at-least-once; the job ID keeps duplicate runs
// traceable in logs.
type AssignmentJob struct {
	ID         string          `json:"id"`
	Recipients []string        `json:"recipients"`
	Project    ProjectSnapshot `json:"project"`
	EnqueuedAt time.Time       `json:"enqueuedAt"`
}

func NewAssignmentJob(recipients []string, project ProjectSnapshot) AssignmentJob {
	return AssignmentJob{
		ID:         uuid.New().String(),
		Recipients: recipients,
		Project:    project,
		EnqueuedAt: time.Now().UTC(),
	}
}

// DeliveryResult records the outcome for a single recipient. One result is
// produced per input recipient, in input order, success or not.
type DeliveryResult struct {
	Recipient string `json:"recipient"`
	Success   bool   `json:"success"`
	Message   string `json:"message"`
}
