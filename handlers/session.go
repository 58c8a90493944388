package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"devfolio/middleware"
	"devfolio/models"
	"devfolio/session"
)

func BeginSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := sessions.Begin()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start session"})
			return
		}

		c.JSON(http.StatusCreated, session.Response(sess, true))
	}
}

func Login(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := middleware.BearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		sess, err := sessions.Login(token, req.Password)
		switch {
		case errors.Is(err, session.ErrUnknownSession):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown session"})
		case errors.Is(err, session.ErrInvalidPassword):
			// Wrong secret: inline error, no lockout.
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "invalid password",
				"session": session.Response(sess, false),
			})
		default:
			c.JSON(http.StatusOK, session.Response(sess, false))
		}
	}
}

func Logout(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := middleware.BearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		sess, err := sessions.Logout(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown session"})
			return
		}

		c.JSON(http.StatusOK, session.Response(sess, false))
	}
}

func Navigate(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := middleware.BearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			return
		}

		var req models.NavigateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		sess, err := sessions.Navigate(token, req.View)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown session"})
			return
		}

		c.JSON(http.StatusOK, session.Response(sess, false))
	}
}
