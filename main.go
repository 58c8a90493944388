package main

import (
	"log"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"

	"devfolio/config"
	"devfolio/handlers"
	"devfolio/middleware"
	"devfolio/persistence"
	"devfolio/seed"
	"devfolio/services/gemini"
	"devfolio/session"
	"devfolio/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	fs := afero.NewOsFs()

	var adapter persistence.Adapter
	switch cfg.Storage.Strategy {
	case config.StrategyLocal:
		adapter = persistence.NewLocalStore(fs, cfg.Storage.DataDir, cfg.Storage.Namespace, cfg.Storage.QuotaBytes, seed.Projects())
	case config.StrategySeedFile:
		adapter = persistence.NewSeedFile(fs, cfg.Storage.SeedPath)
	}

	projects, err := store.New(adapter, seed.Profile())
	if err != nil {
		log.Fatal("Failed to load project store:", err)
	}

	sessions := session.NewManager(cfg.Admin.Password)
	ai := gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.BaseURL)

	r := gin.Default()
	r.Use(middleware.RequestLog(cfg.Server.RequestLogPath))

	// The frontend dev server runs on its own port during development.
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = []string{"http://localhost:3000"}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	r.GET("/health", handlers.HealthCheck)
	r.Static("/images", filepath.Join(cfg.Server.PublicDir, "images"))

	api := r.Group("/api")

	// Public showcase data.
	api.GET("/profile", handlers.GetProfile(projects))
	api.GET("/projects", handlers.ListProjects(projects))

	// Auth gate and view router.
	api.POST("/session", handlers.BeginSession(sessions))
	api.POST("/session/login", handlers.Login(sessions))
	api.POST("/session/logout", handlers.Logout(sessions))
	api.POST("/session/view", handlers.Navigate(sessions))

	// Admin mutation surface, gated on an unlocked session.
	admin := api.Group("")
	admin.Use(middleware.AuthRequired(sessions))
	admin.POST("/projects", handlers.CreateProject(projects))
	admin.PUT("/projects/:id", handlers.UpdateProject(projects))
	admin.DELETE("/projects/:id", handlers.DeleteProject(projects))
	admin.POST("/ai/describe", handlers.DescribeProject(ai))
	admin.POST("/ai/bio", handlers.GenerateBio(ai, projects))
	admin.POST("/ai/illustrate", handlers.IllustrateProject(ai))

	// Dev-only file-rewrite endpoints; never expose these publicly.
	if cfg.Storage.Strategy == config.StrategySeedFile {
		admin.POST("/save-projects", handlers.SaveProjects(projects))
		admin.POST("/upload-image", handlers.UploadImage(fs, cfg.Server.PublicDir))
	}

	log.Printf("Server starting on :%s (storage=%s)", cfg.Server.Port, cfg.Storage.Strategy)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("Server failed:", err)
	}
}
