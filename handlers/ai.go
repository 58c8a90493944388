package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"devfolio/services/gemini"
	"devfolio/store"
)

// AI assist endpoints draft content into the admin form's in-progress
// record. They only ever return display strings; nothing here writes to
// the project store.

type describeRequest struct {
	Title        string   `json:"title" binding:"required"`
	Technologies []string `json:"technologies"`
}

func DescribeProject(ai *gemini.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req describeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		description := ai.DescribeProject(c.Request.Context(), req.Title, req.Technologies)
		c.JSON(http.StatusOK, gin.H{"description": description})
	}
}

type bioRequest struct {
	ExperienceYears int    `json:"experienceYears" binding:"required"`
	Specialty       string `json:"specialty" binding:"required"`
}

func GenerateBio(ai *gemini.Client, s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req bioRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		bio := ai.GenerateBio(c.Request.Context(), s.Profile().Name, req.ExperienceYears, req.Specialty)
		c.JSON(http.StatusOK, gin.H{"bio": bio})
	}
}

type illustrateRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

func IllustrateProject(ai *gemini.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req illustrateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// A missing image is "try again", not a failure, so the status
		// stays 200 and imageUrl is null.
		uri, ok := ai.IllustrateProject(c.Request.Context(), req.Prompt)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"imageUrl": nil})
			return
		}

		c.JSON(http.StatusOK, gin.H{"imageUrl": uri})
	}
}
