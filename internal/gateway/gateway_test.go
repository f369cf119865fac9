package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/hr-dashboard/internal/dto"
	"github.com/yukikurage/hr-dashboard/internal/models"
)

type recordedRequest struct {
	Method        string
	Path          string
	Authorization string
	Body          string
}

type fakeUpstream struct {
	t        *testing.T
	mu       sync.Mutex
	requests []recordedRequest
	routes   map[string]func(w http.ResponseWriter, r *http.Request)
	server   *httptest.Server
}

func newFakeUpstream(t *testing.T) *fakeUpstream {
	t.Helper()
	f := &fakeUpstream{t: t, routes: make(map[string]func(http.ResponseWriter, *http.Request))}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.requests = append(f.requests, recordedRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			Body:          string(body),
		})
		handler, ok := f.routes[r.Method+" "+r.URL.Path]
		f.mu.Unlock()

		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "no route"})
			return
		}
		handler(w, r)
	}))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeUpstream) handle(route string, status int, body any) {
	f.routes[route] = func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, status, body)
	}
}

func (f *fakeUpstream) handleRaw(route string, body string) {
	f.routes[route] = func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}
}

func (f *fakeUpstream) recorded() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.requests...)
}

func (f *fakeUpstream) client() *Client {
	return NewClient(f.server.URL+"/", f.server.Client(), nil)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestClient_AttachesBearerExceptOnLogin(t *testing.T) {
	upstream := newFakeUpstream(t)
	upstream.handle("GET /trabajadores", http.StatusOK, []models.Worker{{ID: 1}})
	upstream.handle("POST /auth/login", http.StatusOK, dto.LoginResponse{Token: "t2", Username: "admin", Role: "ROLE_ADMIN"})

	client := upstream.client()
	ctx := WithToken(context.Background(), "t1")

	_, err := NewWorkerGateway(client).List(ctx)
	require.NoError(t, err)

	resp, err := NewAuthGateway(client).Login(ctx, "admin", "secret")
	require.NoError(t, err)
	assert.Equal(t, "t2", resp.Token)
	assert.Equal(t, "ROLE_ADMIN", resp.Role)

	reqs := upstream.recorded()
	require.Len(t, reqs, 2)
	assert.Equal(t, "Bearer t1", reqs[0].Authorization)
	assert.Empty(t, reqs[1].Authorization)
	assert.JSONEq(t, `{"username":"admin","password":"secret"}`, reqs[1].Body)
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	upstream := newFakeUpstream(t)
	upstream.handle("GET /trabajadores", http.StatusOK, []models.Worker{})

	_, err := NewWorkerGateway(upstream.client()).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, upstream.recorded()[0].Authorization)
}

func TestClient_StatusErrors(t *testing.T) {
	tests := []struct {
		status  int
		body    any
		message string
	}{
		{http.StatusUnauthorized, map[string]string{}, "Tu sesión expiró. Por favor vuelve a iniciar sesión"},
		{http.StatusForbidden, map[string]string{}, "No tienes permisos para realizar esta operación"},
		{http.StatusNotFound, map[string]string{"message": "Trabajador no existe"}, "Recurso no encontrado - Trabajador no existe"},
		{http.StatusInternalServerError, map[string]string{"message": "NPE"}, "Error interno del servidor - NPE"},
		{http.StatusInternalServerError, map[string]string{}, "Error interno del servidor"},
		{http.StatusConflict, map[string]string{"message": "Email duplicado"}, "Error 409: Email duplicado"},
	}

	for _, tt := range tests {
		upstream := newFakeUpstream(t)
		upstream.handle("GET /trabajadores/3", tt.status, tt.body)

		_, err := NewWorkerGateway(upstream.client()).Get(context.Background(), 3)
		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, tt.status, statusErr.Status)
		assert.Equal(t, tt.message, statusErr.UserMessage())
	}
}

func TestClient_Unreachable(t *testing.T) {
	upstream := newFakeUpstream(t)
	client := upstream.client()
	upstream.server.Close()

	_, err := NewWorkerGateway(client).List(context.Background())
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 0, statusErr.Status)
	assert.Contains(t, statusErr.UserMessage(), "No se puede conectar al servidor")
	assert.False(t, IsUnauthorized(err))
}

func TestWorkerGateway_ToggleStatus(t *testing.T) {
	upstream := newFakeUpstream(t)
	upstream.handle("PATCH /trabajadores/4/desactivar", http.StatusOK, map[string]any{
		"message":    "ok",
		"id":         4,
		"estado":     "INACTIVO",
		"trabajador": models.Worker{ID: 4, RegistrationStatus: models.RegistrationInactive},
	})
	upstream.handle("PATCH /trabajadores/4/reactivar", http.StatusOK, map[string]any{"message": "ok", "id": 4})
	upstream.handle("GET /trabajadores/4", http.StatusOK, models.Worker{ID: 4, RegistrationStatus: models.RegistrationActive})

	gw := NewWorkerGateway(upstream.client())

	w, err := gw.ToggleStatus(context.Background(), 4, models.RegistrationActive)
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationInactive, w.RegistrationStatus)

	w, err = gw.ToggleStatus(context.Background(), 4, models.RegistrationInactive)
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationActive, w.RegistrationStatus)

	reqs := upstream.recorded()
	require.Len(t, reqs, 3)
	assert.Equal(t, "/trabajadores/4/desactivar", reqs[0].Path)
	assert.Equal(t, "/trabajadores/4/reactivar", reqs[1].Path)
	assert.Equal(t, http.MethodGet, reqs[2].Method)
}

func TestProjectGateway_ToggleStatusFallsBackToGet(t *testing.T) {
	upstream := newFakeUpstream(t)
	upstream.handle("PATCH /proyectos/8/desactivar", http.StatusOK, map[string]any{"message": "ok", "id": 8, "estadoRegistro": "INACTIVO"})
	upstream.handle("GET /proyectos/8", http.StatusOK, models.Project{ID: 8, RegistrationStatus: models.RegistrationInactive})

	gw := NewProjectGateway(upstream.client(), NewWorkerGateway(upstream.client()))
	p, err := gw.ToggleStatus(context.Background(), 8, models.RegistrationActive)
	require.NoError(t, err)
	assert.True(t, p.IsInactive())
}

func TestProjectGateway_UpdateStatus(t *testing.T) {
	upstream := newFakeUpstream(t)
	upstream.handle("PATCH /proyectos/2/estado-proyecto", http.StatusOK, models.Project{ID: 2, Status: models.ProjectCompleted})

	gw := NewProjectGateway(upstream.client(), NewWorkerGateway(upstream.client()))
	p, err := gw.UpdateStatus(context.Background(), 2, models.ProjectCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectCompleted, p.Status)
	assert.JSONEq(t, `{"estado":"COMPLETADO"}`, upstream.recorded()[0].Body)
}

func TestProjectGateway_ListAllJoinsLegacyShapes(t *testing.T) {
	upstream := newFakeUpstream(t)
	upstream.handle("GET /trabajadores", http.StatusOK, []models.Worker{
		{ID: 3, FirstName: "Carla"},
		{ID: 1, FirstName: "Ana"},
		{ID: 2, FirstName: "Beto"},
	})
	upstream.handleRaw("GET /proyectos", `[
		{"id": 10, "titulo": "array", "trabajadores": [{"id": 2, "nombre": "Beto"}]},
		{"id": 11, "titulo": "ids", "trabajadorIds": [1, 3]},
		{"id": 12, "titulo": "plural ids", "trabajadoresIds": [2]},
		{"id": 13, "titulo": "snake", "trabajador_id": 1},
		{"id": 14, "titulo": "camel", "trabajador_id": 0, "trabajadorId": 3},
		{"id": 15, "titulo": "none"},
		{"id": 16, "titulo": "unknown id", "trabajadorIds": [99]}
	]`)

	gw := NewProjectGateway(upstream.client(), NewWorkerGateway(upstream.client()))
	projects, err := gw.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 7)

	want := map[uint64][]uint64{
		10: {2},
		11: {3, 1},
		12: {2},
		13: {1},
		14: {3},
		15: {},
		16: {},
	}
	for _, p := range projects {
		assert.Equal(t, want[p.ID], p.WorkerIDs(), "project %d", p.ID)
	}

	assert.Nil(t, projects[0].Worker, "array shape passes through untouched")
	require.NotNil(t, projects[1].Worker)
	assert.Equal(t, "Carla", projects[1].Worker.FirstName)
	assert.Nil(t, projects[5].Worker)
}

func TestProjectGateway_ListAllPropagatesErrors(t *testing.T) {
	upstream := newFakeUpstream(t)
	upstream.handle("GET /proyectos", http.StatusOK, []models.Project{})
	upstream.handle("GET /trabajadores", http.StatusForbidden, map[string]string{})

	gw := NewProjectGateway(upstream.client(), NewWorkerGateway(upstream.client()))
	_, err := gw.ListAll(context.Background())

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusForbidden, statusErr.Status)
}

func TestProjectGateway_ByWorkerAndByStatus(t *testing.T) {
	upstream := newFakeUpstream(t)
	upstream.handle("GET /proyectos/trabajador/5", http.StatusOK, []models.Project{{ID: 1}})
	upstream.handle("GET /proyectos/estado/EN_PROGRESO", http.StatusOK, []models.Project{{ID: 2}, {ID: 3}})

	gw := NewProjectGateway(upstream.client(), NewWorkerGateway(upstream.client()))

	byWorker, err := gw.ByWorker(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, byWorker, 1)

	byStatus, err := gw.ByStatus(context.Background(), models.ProjectInProgress)
	require.NoError(t, err)
	assert.Len(t, byStatus, 2)
}
