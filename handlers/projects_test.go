package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devfolio/models"
)

func TestHealthCheck(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetProfile(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/profile", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Elyazid Azri", decodeBody(t, w)["name"])
}

func TestCreateProjectRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	draft := models.ProjectDraft{Title: "Neon Racer", Description: "fast", Category: models.CategoryPC}

	w := env.do(t, http.MethodPost, "/api/projects", "", draft)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// A session that reached admin but never logged in is still locked out.
	sess, err := env.sessions.Begin()
	require.NoError(t, err)
	_, err = env.sessions.Navigate(sess.Token, models.ViewAdmin)
	require.NoError(t, err)

	w = env.do(t, http.MethodPost, "/api/projects", sess.Token, draft)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateProject(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	w := env.do(t, http.MethodPost, "/api/projects", token, models.ProjectDraft{
		Title:        "Neon Racer",
		Description:  "fast",
		Category:     models.CategoryPC,
		Technologies: []string{"Unity"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	project := body["project"].(map[string]any)
	assert.NotEmpty(t, project["id"])
	assert.Equal(t, models.PlaceholderImageURL, project["imageUrl"])
	assert.Empty(t, body["warning"])

	projects := env.store.List()
	require.Len(t, projects, 1)
	assert.Equal(t, "Neon Racer", projects[0].Title)
}

func TestCreateProjectValidation(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	w := env.do(t, http.MethodPost, "/api/projects", token, map[string]any{
		"title":    "No Description",
		"category": "PC",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, env.store.List())
}

func TestUpdateProject(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	created, err := env.store.Create(models.ProjectDraft{Title: "Neon Racer", Description: "fast", Category: models.CategoryPC})
	require.NoError(t, err)

	w := env.do(t, http.MethodPut, "/api/projects/"+created.ID, token, map[string]any{
		"category": "VR",
	})
	require.Equal(t, http.StatusOK, w.Code)

	project := decodeBody(t, w)["project"].(map[string]any)
	assert.Equal(t, created.ID, project["id"])
	assert.Equal(t, "VR", project["category"])
	assert.Equal(t, "Neon Racer", project["title"])
}

func TestUpdateProjectNotFound(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	w := env.do(t, http.MethodPut, "/api/projects/999", token, map[string]any{"title": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProject(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	created, err := env.store.Create(models.ProjectDraft{Title: "Neon Racer", Description: "fast", Category: models.CategoryPC})
	require.NoError(t, err)

	w := env.do(t, http.MethodDelete, "/api/projects/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, env.store.List())

	// Idempotent: a second delete still succeeds.
	w = env.do(t, http.MethodDelete, "/api/projects/"+created.ID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListProjectsFiltersByCategory(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.store.Create(models.ProjectDraft{Title: "PC Game", Description: "d", Category: models.CategoryPC})
	require.NoError(t, err)
	_, err = env.store.Create(models.ProjectDraft{Title: "VR Game", Description: "d", Category: models.CategoryVR})
	require.NoError(t, err)

	w := env.do(t, http.MethodGet, "/api/projects?category=VR", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["total"])

	w = env.do(t, http.MethodGet, "/api/projects?category=All", "", nil)
	body = decodeBody(t, w)
	assert.Equal(t, float64(2), body["total"])
}

func TestLoggedOutTokenLosesMutationAccess(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	_, err := env.sessions.Logout(token)
	require.NoError(t, err)

	w := env.do(t, http.MethodPost, "/api/projects", token, models.ProjectDraft{
		Title: "Neon Racer", Description: "fast", Category: models.CategoryPC,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
