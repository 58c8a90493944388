package handlers

import (
	"encoding/base64"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"

	"devfolio/models"
	"devfolio/store"
)

// Development-only endpoints, registered only under the seedfile storage
// strategy. They mirror the original local dev server: saving writes the
// whole posted state through the store (which regenerates the seed
// artifact), and uploads land under the public image directory. Responses
// use the {"success": true} / {"error": msg} envelope the frontend expects.

// saveProjectsRequest carries the complete state the frontend wants
// persisted. An empty project list is legal; only unparsable payloads fail.
type saveProjectsRequest struct {
	Projects    []models.Project   `json:"projects"`
	UserProfile models.UserProfile `json:"userProfile"`
}

func SaveProjects(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req saveProjectsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		if err := s.ReplaceAll(req.Projects, req.UserProfile); err != nil {
			// In-memory state is replaced either way; a 500 here means the
			// artifact on disk was not rewritten.
			log.Printf("save-projects: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

type uploadImageRequest struct {
	FileName   string `json:"fileName" binding:"required"`
	Base64Data string `json:"base64Data" binding:"required"`
}

func UploadImage(fs afero.Fs, publicDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req uploadImageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// Payload arrives as "data:<mime>;base64,<data>".
		_, payload, found := strings.Cut(req.Base64Data, ",")
		if !found {
			payload = req.Base64Data
		}

		buf, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid base64 payload: " + err.Error()})
			return
		}

		// Strip any path components so uploads cannot escape the image dir.
		fileName := filepath.Base(req.FileName)
		dirPath := filepath.Join(publicDir, "images")
		if err := fs.MkdirAll(dirPath, 0o755); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		if err := afero.WriteFile(fs, filepath.Join(dirPath, fileName), buf, 0o644); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		log.Printf("Uploaded image: %s (%d bytes)", fileName, len(buf))
		c.JSON(http.StatusOK, gin.H{"success": true, "path": "/images/" + fileName})
	}
}
