package projects

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	notify "github.com/nirvixtech/nirvix-tracker/internal/notify/domain"
)

type fakeStore struct {
	records map[string]Project
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: map[string]Project{}}
}

func (s *fakeStore) key(name string) string { return strings.ToLower(name) }

func (s *fakeStore) List(context.Context) ([]Project, error) {
	out := make([]Project, 0, len(s.records))
	for _, p := range s.records {
		out = append(out, p)
	}
	return out, nil
}

func (s *fakeStore) GetByName(_ context.Context, name string) (Project, error) {
	p, ok := s.records[s.key(name)]
	if !ok {
		return Project{}, ErrNotFound
	}
	return p, nil
}

func (s *fakeStore) Insert(_ context.Context, p Project) (Project, error) {
	if _, ok := s.records[s.key(p.Name)]; ok {
		return Project{}, ErrDuplicate
	}
	s.records[s.key(p.Name)] = p
	return p, nil
}

func (s *fakeStore) Update(_ context.Context, name string, p Project) (Project, error) {
	if _, ok := s.records[s.key(name)]; !ok {
		return Project{}, ErrNotFound
	}
	delete(s.records, s.key(name))
	s.records[s.key(p.Name)] = p
	return p, nil
}

func (s *fakeStore) Delete(_ context.Context, name string) (Project, error) {
	p, ok := s.records[s.key(name)]
	if !ok {
		return Project{}, ErrNotFound
	}
	delete(s.records, s.key(name))
	return p, nil
}

type fakeNotifier struct {
	jobs []notify.AssignmentJob
}

func (n *fakeNotifier) NotifyAssignment(_ context.Context, job notify.AssignmentJob) error {
	n.jobs = append(n.jobs, job)
	return nil
}

func newTestService() (*Service, *fakeStore, *fakeNotifier) {
	store := newFakeStore()
	notifier := &fakeNotifier{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(store, notifier, logger), store, notifier
}

func TestCreateProject(t *testing.T) {
	t.Run("stores and notifies assignees", func(t *testing.T) {
		svc, store, notifier := newTestService()

		saved, err := svc.Create(context.Background(),
			decodePayload(t, `{"name": "Portal", "client": "Acme", "assignedTo": ["Kasun"]}`))
		require.NoError(t, err)
		assert.Equal(t, "Portal", saved.Name)
		assert.Equal(t, "Active", saved.Status)
		assert.Contains(t, store.records, "portal")

		require.Len(t, notifier.jobs, 1)
		assert.Equal(t, []string{"Kasun"}, notifier.jobs[0].Recipients)
	})

	t.Run("requires a name", func(t *testing.T) {
		svc, _, _ := newTestService()

		_, err := svc.Create(context.Background(), decodePayload(t, `{"client": "Acme"}`))
		assert.ErrorIs(t, err, ErrMissingName)

		_, err = svc.Create(context.Background(), decodePayload(t, `{"name": "   "}`))
		assert.ErrorIs(t, err, ErrMissingName)
	})

	t.Run("rejects duplicate names case-insensitively", func(t *testing.T) {
		svc, _, _ := newTestService()

		_, err := svc.Create(context.Background(), decodePayload(t, `{"name": "Portal"}`))
		require.NoError(t, err)

		_, err = svc.Create(context.Background(), decodePayload(t, `{"name": "PORTAL"}`))
		assert.ErrorIs(t, err, ErrDuplicate)
	})
}

func TestUpdateProject(t *testing.T) {
	t.Run("merges over the stored record", func(t *testing.T) {
		svc, _, notifier := newTestService()

		_, err := svc.Create(context.Background(),
			decodePayload(t, `{"name": "Portal", "client": "Acme", "assignedTo": ["Kasun"]}`))
		require.NoError(t, err)

		updated, err := svc.Update(context.Background(), "Portal",
			decodePayload(t, `{"status": "Maintenance"}`))
		require.NoError(t, err)
		assert.Equal(t, "Maintenance", updated.Status)
		assert.Equal(t, "Acme", updated.Client)
		assert.Len(t, notifier.jobs, 2, "assignees are re-notified on update")
	})

	t.Run("can rename", func(t *testing.T) {
		svc, store, _ := newTestService()

		_, err := svc.Create(context.Background(), decodePayload(t, `{"name": "Portal"}`))
		require.NoError(t, err)

		updated, err := svc.Update(context.Background(), "Portal",
			decodePayload(t, `{"name": "Portal v2"}`))
		require.NoError(t, err)
		assert.Equal(t, "Portal v2", updated.Name)
		assert.NotContains(t, store.records, "portal")
		assert.Contains(t, store.records, "portal v2")
	})

	t.Run("unknown project", func(t *testing.T) {
		svc, _, _ := newTestService()

		_, err := svc.Update(context.Background(), "Ghost", decodePayload(t, `{"status": "x"}`))
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeleteProject(t *testing.T) {
	svc, store, _ := newTestService()

	_, err := svc.Create(context.Background(), decodePayload(t, `{"name": "Portal"}`))
	require.NoError(t, err)

	deleted, err := svc.Delete(context.Background(), "Portal")
	require.NoError(t, err)
	assert.Equal(t, "Portal", deleted.Name)
	assert.Empty(t, store.records)

	_, err = svc.Delete(context.Background(), "Portal")
	assert.ErrorIs(t, err, ErrNotFound)
}
