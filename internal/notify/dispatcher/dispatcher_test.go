package dispatcher

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirvixtech/nirvix-tracker/internal/notify/domain"
	"github.com/nirvixtech/nirvix-tracker/internal/team"
)

type fakeDirectory map[string]string

func (d fakeDirectory) ResolveEmail(_ context.Context, name string) (string, error) {
	email, ok := d[name]
	if !ok {
		return "", team.ErrMemberNotFound
	}
	return email, nil
}

type sentMail struct {
	to      string
	subject string
}

type fakeMailer struct {
	sent    []sentMail
	failFor map[string]error
}

func (m *fakeMailer) Send(_ context.Context, to, subject, htmlBody, textBody string) error {
	if err, ok := m.failFor[to]; ok {
		return err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject})
	return nil
}

func newTestDispatcher(dir fakeDirectory, m *fakeMailer) *Dispatcher {
	return New(dir, m, "https://tracker.example.com/", slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testJob(recipients ...string) domain.AssignmentJob {
	return domain.NewAssignmentJob(recipients, domain.ProjectSnapshot{
		Name:      "Platform Revamp",
		Client:    "Acme Corp",
		Status:    "Planning",
		Deadline:  "2026-03-31",
		TechStack: []string{"Go", "React"},
	})
}

func TestDispatch_PartialFailure(t *testing.T) {
	dir := fakeDirectory{"Kasun": "kasun@nirvixtech.com"}
	m := &fakeMailer{}
	d := newTestDispatcher(dir, m)

	results := d.Dispatch(context.Background(), testJob("Kasun", "Ghost"))

	require.Len(t, results, 2, "one result per recipient, failures included")

	assert.Equal(t, "Kasun", results[0].Recipient)
	assert.True(t, results[0].Success)
	assert.Equal(t, "Email sent successfully to kasun@nirvixtech.com", results[0].Message)

	assert.Equal(t, "Ghost", results[1].Recipient)
	assert.False(t, results[1].Success)
	assert.Equal(t, "Email not found for team member: Ghost", results[1].Message)

	require.Len(t, m.sent, 1)
	assert.Equal(t, "kasun@nirvixtech.com", m.sent[0].to)
	assert.Equal(t, "🚀 New Project Assignment: Platform Revamp", m.sent[0].subject)
}

func TestDispatch_RelayFailureIsIsolated(t *testing.T) {
	dir := fakeDirectory{
		"Kasun": "kasun@nirvixtech.com",
		"Imesh": "imesh@nirvixtech.com",
	}
	m := &fakeMailer{failFor: map[string]error{
		"kasun@nirvixtech.com": errors.New("connection refused"),
	}}
	d := newTestDispatcher(dir, m)

	results := d.Dispatch(context.Background(), testJob("Kasun", "Imesh"))

	require.Len(t, results, 2)
	assert.False(t, results[0].Success)
	assert.Equal(t, "Failed to send email to kasun@nirvixtech.com: connection refused", results[0].Message)
	assert.True(t, results[1].Success, "one relay failure never blocks the next recipient")
}

func TestDispatch_EmptyRecipients(t *testing.T) {
	d := newTestDispatcher(fakeDirectory{}, &fakeMailer{})

	results := d.Dispatch(context.Background(), testJob())
	assert.Empty(t, results)
}

func TestSendWelcome(t *testing.T) {
	dir := fakeDirectory{"Nadeesha": "nadeesha@nirvixtech.com"}

	t.Run("delivers to a known member", func(t *testing.T) {
		m := &fakeMailer{}
		d := newTestDispatcher(dir, m)

		res := d.SendWelcome(context.Background(), "Nadeesha")
		assert.True(t, res.Success)
		assert.Equal(t, "Email sent successfully to nadeesha@nirvixtech.com", res.Message)
		require.Len(t, m.sent, 1)
		assert.Equal(t, "🎉 Welcome to Nirvix Technology", m.sent[0].subject)
	})

	t.Run("reports unknown members", func(t *testing.T) {
		m := &fakeMailer{}
		d := newTestDispatcher(dir, m)

		res := d.SendWelcome(context.Background(), "Ghost")
		assert.False(t, res.Success)
		assert.Equal(t, "Email not found for team member: Ghost", res.Message)
		assert.Empty(t, m.sent)
	})
}
