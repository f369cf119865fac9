package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/hr-dashboard/internal/assignment"
	"github.com/yukikurage/hr-dashboard/internal/cache"
	"github.com/yukikurage/hr-dashboard/internal/constants"
	"github.com/yukikurage/hr-dashboard/internal/gateway"
	"github.com/yukikurage/hr-dashboard/internal/models"
	"github.com/yukikurage/hr-dashboard/internal/repository"
	"github.com/yukikurage/hr-dashboard/internal/sequence"
	"github.com/yukikurage/hr-dashboard/internal/services"
	"github.com/yukikurage/hr-dashboard/internal/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testNow = time.Date(2026, time.October, 15, 10, 30, 0, 0, time.UTC)

type upstreamRequest struct {
	Method        string
	Path          string
	Authorization string
	Body          string
}

// upstream is a programmable stand-in for the HR REST API
type upstream struct {
	mu       sync.Mutex
	requests []upstreamRequest
	routes   map[string]func(w http.ResponseWriter, r *http.Request)
	server   *httptest.Server
}

func newUpstream(t *testing.T) *upstream {
	t.Helper()
	u := &upstream{routes: make(map[string]func(http.ResponseWriter, *http.Request))}
	u.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		u.mu.Lock()
		u.requests = append(u.requests, upstreamRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			Body:          string(body),
		})
		handler, ok := u.routes[r.Method+" "+r.URL.Path]
		u.mu.Unlock()

		if !ok {
			writeUpstreamJSON(w, http.StatusNotFound, gin.H{"message": "no route"})
			return
		}
		handler(w, r)
	}))
	t.Cleanup(u.server.Close)
	return u
}

func (u *upstream) handle(route string, status int, body any) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.routes[route] = func(w http.ResponseWriter, _ *http.Request) {
		writeUpstreamJSON(w, status, body)
	}
}

func (u *upstream) recorded(method, path string) []upstreamRequest {
	u.mu.Lock()
	defer u.mu.Unlock()
	var out []upstreamRequest
	for _, r := range u.requests {
		if r.Method == method && r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

func writeUpstreamJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// testApp is the full router wired against an upstream fake
type testApp struct {
	t        *testing.T
	router   *gin.Engine
	upstream *upstream
	store    *repository.MemoryCacheEntryRepository
	now      time.Time
	cookies  []*http.Cookie
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	up := newUpstream(t)
	app := &testApp{
		t:        t,
		upstream: up,
		store:    repository.NewMemoryCacheEntryRepository(),
		now:      testNow,
	}
	clock := func() time.Time { return app.now }

	client := gateway.NewClient(up.server.URL, up.server.Client(), nil)
	workerGateway := gateway.NewWorkerGateway(client)
	projectGateway := gateway.NewProjectGateway(client, workerGateway)

	validator := validation.New(clock)
	reconciler := assignment.NewReconciler(false)
	tracker := sequence.NewTracker()

	workerService := services.NewWorkerService(
		workerGateway, projectGateway,
		cache.NewSoftDeleteCache[models.Worker](constants.WorkerCacheKey, app.store, nil),
		validator, reconciler, tracker, nil,
	)
	projectService := services.NewProjectService(
		projectGateway,
		cache.NewSoftDeleteCache[models.Project](constants.ProjectCacheKey, app.store, nil),
		validator, reconciler, tracker, nil,
	)

	r := gin.New()
	r.Use(sessions.Sessions(constants.SessionCookieName, cookie.NewStore([]byte("secret"))))
	RegisterRoutes(r, Handlers{
		Auth:      NewAuthHandler(services.NewAuthService(gateway.NewAuthGateway(client), clock, nil)),
		Workers:   NewWorkerHandler(workerService),
		Projects:  NewProjectHandler(projectService),
		Dashboard: NewDashboardHandler(services.NewStatsService(workerGateway, projectGateway)),
	}, clock)
	app.router = r

	return app
}

// do sends a request carrying the current session cookies and keeps any
// cookies the response sets
func (a *testApp) do(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range a.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	if set := w.Result().Cookies(); len(set) > 0 {
		a.cookies = set
	}
	return w
}

// login authenticates with a token expiring in one hour
func (a *testApp) login() string {
	a.t.Helper()

	token := signedToken(a.t, a.now.Add(time.Hour))
	a.upstream.handle("POST /auth/login", http.StatusOK, gin.H{
		"token":    token,
		"username": "admin",
		"role":     constants.AdminRole,
	})

	w := a.do(http.MethodPost, "/api/auth/login", gin.H{"username": "admin", "password": "secret"})
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())
	return token
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": exp.Unix(),
	}).SignedString([]byte("upstream-secret"))
	require.NoError(t, err)
	return token
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
