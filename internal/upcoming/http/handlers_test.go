package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	notify "github.com/nirvixtech/nirvix-tracker/internal/notify/domain"
	"github.com/nirvixtech/nirvix-tracker/internal/upcoming/domain"
	"github.com/nirvixtech/nirvix-tracker/internal/upcoming/service"
)

type memStore struct {
	seq     int64
	records map[string]domain.UpcomingProject
	order   []string
}

func newMemStore() *memStore {
	return &memStore{records: map[string]domain.UpcomingProject{}}
}

func (s *memStore) Insert(_ context.Context, p domain.UpcomingProject) (domain.UpcomingProject, error) {
	s.seq++
	p.Code = domain.FormatCode(s.seq)
	p.CreatedAt = time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)
	p.UpdatedAt = p.CreatedAt
	s.records[p.Code] = p
	s.order = append(s.order, p.Code)
	return p, nil
}

func (s *memStore) List(context.Context) ([]domain.UpcomingProject, error) {
	out := make([]domain.UpcomingProject, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		if p, ok := s.records[s.order[i]]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *memStore) GetByCode(_ context.Context, code string) (domain.UpcomingProject, error) {
	p, ok := s.records[code]
	if !ok {
		return domain.UpcomingProject{}, domain.ErrNotFound
	}
	return p, nil
}

func (s *memStore) Update(_ context.Context, p domain.UpcomingProject) (domain.UpcomingProject, error) {
	if _, ok := s.records[p.Code]; !ok {
		return domain.UpcomingProject{}, domain.ErrNotFound
	}
	s.records[p.Code] = p
	return p, nil
}

func (s *memStore) Delete(_ context.Context, code string) (domain.UpcomingProject, error) {
	p, ok := s.records[code]
	if !ok {
		return domain.UpcomingProject{}, domain.ErrNotFound
	}
	delete(s.records, code)
	return p, nil
}

type noopNotifier struct{}

func (noopNotifier) NotifyAssignment(context.Context, notify.AssignmentJob) error { return nil }

func newTestRouter() (*gin.Engine, *memStore) {
	gin.SetMode(gin.TestMode)
	store := newMemStore()
	svc := service.New(store, noopNotifier{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	r := gin.New()
	New(svc).Register(r)
	return r, store
}

func doRequest(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const validBody = `{
	"name": "Platform Revamp",
	"client": "Acme Corp",
	"description": "Rebuild the customer portal",
	"deadline": "2026-03-31",
	"techStack": ["Go", "React"],
	"status": "Planning",
	"assignedTo": ["Kasun"]
}`

func TestCreateUpcomingProject(t *testing.T) {
	r, _ := newTestRouter()

	w := doRequest(r, http.MethodPost, "/upcoming-projects", validBody)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool            `json:"success"`
		Data    projectResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "UP001", resp.Data.ID)
	assert.Equal(t, "Platform Revamp", resp.Data.Name)
	assert.Equal(t, []string{"Kasun"}, resp.Data.AssignedTo)
	assert.Equal(t, "2026-02-10 09:30:00", resp.Data.CreatedAt)
}

func TestCreateUpcomingProject_MissingField(t *testing.T) {
	r, store := newTestRouter()

	body := `{
		"name": "Platform Revamp",
		"client": "Acme Corp",
		"description": "Rebuild the customer portal",
		"deadline": "2026-03-31",
		"techStack": ["Go"],
		"status": "Planning"
	}`
	w := doRequest(r, http.MethodPost, "/upcoming-projects", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success": false, "error": "Missing required field: assignedTo"}`, w.Body.String())
	assert.Empty(t, store.records)
}

func TestCreateUpcomingProject_MalformedJSON(t *testing.T) {
	r, _ := newTestRouter()

	w := doRequest(r, http.MethodPost, "/upcoming-projects", `{"name": `)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success": false, "error": "Invalid request body"}`, w.Body.String())
}

func TestListUpcomingProjects(t *testing.T) {
	r, _ := newTestRouter()
	require.Equal(t, http.StatusOK, doRequest(r, http.MethodPost, "/upcoming-projects", validBody).Code)

	w := doRequest(r, http.MethodGet, "/upcoming-projects", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool              `json:"success"`
		Data    []projectResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "UP001", resp.Data[0].ID)
}

func TestUpdateUpcomingProject(t *testing.T) {
	r, _ := newTestRouter()
	require.Equal(t, http.StatusOK, doRequest(r, http.MethodPost, "/upcoming-projects", validBody).Code)

	t.Run("merges the patch over the stored record", func(t *testing.T) {
		w := doRequest(r, http.MethodPut, "/upcoming-projects?id=UP001", `{"status": "Completed"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data projectResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Completed", resp.Data.Status)
		assert.Equal(t, "Platform Revamp", resp.Data.Name)
	})

	t.Run("requires the id query parameter", func(t *testing.T) {
		w := doRequest(r, http.MethodPut, "/upcoming-projects", `{"status": "Completed"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"success": false, "error": "Project ID is required"}`, w.Body.String())
	})

	t.Run("reports unknown codes as not found", func(t *testing.T) {
		w := doRequest(r, http.MethodPut, "/upcoming-projects?id=UP999", `{"status": "Completed"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"success": false, "error": "Upcoming project not found"}`, w.Body.String())
	})

	t.Run("surfaces validation failures", func(t *testing.T) {
		w := doRequest(r, http.MethodPut, "/upcoming-projects?id=UP001", `{"status": "Done"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"success": false, "error": "Invalid status. Must be one of: Upcoming, Under Development, Planning, Cancelled, Completed"}`, w.Body.String())
	})
}

func TestDeleteUpcomingProject(t *testing.T) {
	r, store := newTestRouter()
	require.Equal(t, http.StatusOK, doRequest(r, http.MethodPost, "/upcoming-projects", validBody).Code)

	t.Run("returns the deleted record", func(t *testing.T) {
		w := doRequest(r, http.MethodDelete, "/upcoming-projects?id=UP001", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Success bool            `json:"success"`
			Data    projectResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "UP001", resp.Data.ID)
		assert.Empty(t, store.records)
	})

	t.Run("deleting twice reports not found", func(t *testing.T) {
		w := doRequest(r, http.MethodDelete, "/upcoming-projects?id=UP001", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"success": false, "error": "Upcoming project not found"}`, w.Body.String())
	})

	t.Run("requires the id query parameter", func(t *testing.T) {
		w := doRequest(r, http.MethodDelete, "/upcoming-projects", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"success": false, "error": "Project ID is required"}`, w.Body.String())
	})
}
