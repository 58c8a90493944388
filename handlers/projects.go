package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"devfolio/models"
	"devfolio/persistence"
	"devfolio/store"
)

func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status": "ok",
	})
}

func GetProfile(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.Profile())
	}
}

func ListProjects(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		projects := s.List()

		// The showcase grid filters by platform tab; "All" and an absent
		// parameter both mean everything.
		if category := c.Query("category"); category != "" && category != "All" {
			filtered := []models.Project{}
			for _, p := range projects {
				if p.Category == models.Category(category) {
					filtered = append(filtered, p)
				}
			}
			projects = filtered
		}

		c.JSON(http.StatusOK, models.ProjectsResponse{
			Projects: projects,
			Total:    len(projects),
		})
	}
}

func CreateProject(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var draft models.ProjectDraft
		if err := c.ShouldBindJSON(&draft); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		project, err := s.Create(draft)
		if err != nil && !isSyncError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		log.Printf("Project created: %s (%s)", project.Title, project.ID)
		c.JSON(http.StatusCreated, mutationBody(project, err))
	}
}

func UpdateProject(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch models.ProjectPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		project, err := s.Update(c.Param("id"), patch)
		if err != nil && !isSyncError(err) {
			status := http.StatusBadRequest
			if errors.Is(err, store.ErrNotFound) {
				status = http.StatusNotFound
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, mutationBody(project, err))
	}
}

func DeleteProject(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := s.Delete(c.Param("id"))
		if err != nil && !isSyncError(err) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete project"})
			return
		}

		body := gin.H{"message": "project deleted"}
		if warning := persistWarning(err); warning != "" {
			body["warning"] = warning
		}
		c.JSON(http.StatusOK, body)
	}
}

func isSyncError(err error) bool {
	var syncErr *store.SyncError
	return errors.As(err, &syncErr)
}

// mutationBody wraps a mutated project, attaching a warning when the
// mutation took effect in memory but could not be persisted.
func mutationBody(project models.Project, err error) gin.H {
	body := gin.H{"project": project}
	if warning := persistWarning(err); warning != "" {
		body["warning"] = warning
	}
	return body
}

// persistWarning converts a sync failure into the user-facing warning the
// admin panel must show. Quota breaches get the blocking storage-full
// message; anything else reports the failure verbatim.
func persistWarning(err error) string {
	if err == nil {
		return ""
	}
	log.Printf("persistence warning: %v", err)
	if errors.Is(err, persistence.ErrQuotaExceeded) {
		return "Warning: Could not save changes. Storage might be full (too many large images)."
	}
	return "Warning: could not persist changes: " + err.Error()
}
