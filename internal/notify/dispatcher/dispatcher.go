package dispatcher

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/nirvixtech/nirvix-tracker/internal/notify/domain"
	"github.com/nirvixtech/nirvix-tracker/internal/notify/mailer"
	"github.com/nirvixtech/nirvix-tracker/internal/team"
)

// Directory resolves a team member display name to an email address.
type Directory interface {
	ResolveEmail(ctx context.Context, name string) (string, error)
}

const defaultSendTimeout = 30 * time.Second

// Dispatcher delivers assignment emails recipient by recipient. Failures are
// isolated: one unresolvable name or relay error never affects the other
// recipients, and Dispatch never returns an error.
type Dispatcher struct {
	directory    Directory
	mailer       mailer.Mailer
	dashboardURL string
	logger       *slog.Logger
	sendTimeout  time.Duration
}

func New(directory Directory, m mailer.Mailer, dashboardURL string, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		directory:    directory,
		mailer:       m,
		dashboardURL: dashboardURL,
		logger:       logger,
		sendTimeout:  defaultSendTimeout,
	}
}

// Dispatch processes one assignment job, returning a result per recipient in
// input order.
func (d *Dispatcher) Dispatch(ctx context.Context, job domain.AssignmentJob) []domain.DeliveryResult {
	results := make([]domain.DeliveryResult, 0, len(job.Recipients))
	sent := 0
	for _, name := range job.Recipients {
		res := d.deliverAssignment(ctx, name, job.Project)
		if res.Success {
			sent++
		} else {
			d.logger.Warn("assignment email failed",
				"job_id", job.ID, "recipient", name, "reason", res.Message)
		}
		results = append(results, res)
	}
	d.logger.Info("assignment job processed",
		"job_id", job.ID, "recipients", len(job.Recipients), "sent", sent)
	return results
}

func (d *Dispatcher) deliverAssignment(ctx context.Context, name string, p domain.ProjectSnapshot) domain.DeliveryResult {
	email, err := d.directory.ResolveEmail(ctx, name)
	if err != nil {
		if errors.Is(err, team.ErrMemberNotFound) {
			return domain.DeliveryResult{
				Recipient: name,
				Success:   false,
				Message:   "Email not found for team member: " + name,
			}
		}
		return domain.DeliveryResult{
			Recipient: name,
			Success:   false,
			Message:   "Failed to resolve team member " + name + ": " + err.Error(),
		}
	}

	htmlBody, textBody, err := mailer.AssignmentBodies(name, p, d.dashboardURL)
	if err != nil {
		return domain.DeliveryResult{Recipient: name, Success: false, Message: err.Error()}
	}

	sctx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()

	if err := d.mailer.Send(sctx, email, mailer.AssignmentSubject(p.Name), htmlBody, textBody); err != nil {
		return domain.DeliveryResult{
			Recipient: name,
			Success:   false,
			Message:   "Failed to send email to " + email + ": " + err.Error(),
		}
	}
	return domain.DeliveryResult{
		Recipient: name,
		Success:   true,
		Message:   "Email sent successfully to " + email,
	}
}

// SendWelcome delivers the welcome email to a single member, synchronously.
func (d *Dispatcher) SendWelcome(ctx context.Context, name string) domain.DeliveryResult {
	email, err := d.directory.ResolveEmail(ctx, name)
	if err != nil {
		if errors.Is(err, team.ErrMemberNotFound) {
			return domain.DeliveryResult{
				Recipient: name,
				Success:   false,
				Message:   "Email not found for team member: " + name,
			}
		}
		return domain.DeliveryResult{
			Recipient: name,
			Success:   false,
			Message:   "Failed to resolve team member " + name + ": " + err.Error(),
		}
	}

	htmlBody, textBody, err := mailer.WelcomeBodies(name, d.dashboardURL)
	if err != nil {
		return domain.DeliveryResult{Recipient: name, Success: false, Message: err.Error()}
	}

	sctx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()

	if err := d.mailer.Send(sctx, email, mailer.WelcomeSubject, htmlBody, textBody); err != nil {
		return domain.DeliveryResult{
			Recipient: name,
			Success:   false,
			Message:   "Failed to send email to " + email + ": " + err.Error(),
		}
	}
	return domain.DeliveryResult{
		Recipient: name,
		Success:   true,
		Message:   "Email sent successfully to " + email,
	}
}
