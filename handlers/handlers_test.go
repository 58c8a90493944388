package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"devfolio/middleware"
	"devfolio/models"
	"devfolio/persistence"
	"devfolio/services/gemini"
	"devfolio/session"
	"devfolio/store"
)

const testPassword = "yazid"

type testEnv struct {
	router   *gin.Engine
	store    *store.Store
	sessions *session.Manager
	fs       afero.Fs
}

// newTestEnv wires the full route table against in-memory backends:
// a MemMapFs local store with no seed data and a stub-free gemini client
// (no API key, so AI calls degrade to their fallbacks).
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWith(t, nil)
}

func newTestEnvWith(t *testing.T, ai *gemini.Client) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fs := afero.NewMemMapFs()
	adapter := persistence.NewLocalStore(fs, "data", "test_portfolio", 0, nil)
	projects, err := store.New(adapter, models.UserProfile{Name: "Elyazid Azri", Title: "Game Dev"})
	require.NoError(t, err)

	sessions := session.NewManager(testPassword)
	if ai == nil {
		ai = gemini.NewClient("", "")
	}

	r := gin.New()
	r.GET("/health", HealthCheck)

	api := r.Group("/api")
	api.GET("/profile", GetProfile(projects))
	api.GET("/projects", ListProjects(projects))

	api.POST("/session", BeginSession(sessions))
	api.POST("/session/login", Login(sessions))
	api.POST("/session/logout", Logout(sessions))
	api.POST("/session/view", Navigate(sessions))

	admin := api.Group("")
	admin.Use(middleware.AuthRequired(sessions))
	admin.POST("/projects", CreateProject(projects))
	admin.PUT("/projects/:id", UpdateProject(projects))
	admin.DELETE("/projects/:id", DeleteProject(projects))
	admin.POST("/ai/describe", DescribeProject(ai))
	admin.POST("/ai/bio", GenerateBio(ai, projects))
	admin.POST("/ai/illustrate", IllustrateProject(ai))
	admin.POST("/save-projects", SaveProjects(projects))
	admin.POST("/upload-image", UploadImage(fs, "public"))

	return &testEnv{router: r, store: projects, sessions: sessions, fs: fs}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// adminToken begins a session and unlocks its gate.
func (e *testEnv) adminToken(t *testing.T) string {
	t.Helper()

	sess, err := e.sessions.Begin()
	require.NoError(t, err)
	_, err = e.sessions.Login(sess.Token, testPassword)
	require.NoError(t, err)
	return sess.Token
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
