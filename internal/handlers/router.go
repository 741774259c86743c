package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-portal/internal/middleware"
	"github.com/justsurfingit/job-portal/internal/services"
	"gorm.io/gorm"
)

type RouterConfig struct {
	DB             *gorm.DB
	LLMService     *services.LLMService
	AllowedOrigins []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logging())

	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
	r.Use(cors.New(corsConfig))

	health := &HealthHandler{DB: cfg.DB, AIEnabled: cfg.LLMService != nil}
	candidateHandler := NewCandidateHandler(services.NewCandidateService(cfg.DB))
	jobHandler := NewJobHandler(services.NewJobService(cfg.DB))
	savedSearchHandler := NewSavedSearchHandler(services.NewSavedSearchService(cfg.DB))
	aiHandler := NewAIHandler(cfg.LLMService)

	api := r.Group("/api")
	{
		api.GET("/health", health.HealthCheck)

		api.GET("/candidates/:id", candidateHandler.GetCandidate)

		api.GET("/employer/posted-jobs", jobHandler.GetPostedJobs)
		api.POST("/employer/jobs", jobHandler.CreateJob)

		api.GET("/saved-searches", savedSearchHandler.List)
		api.POST("/saved-searches", savedSearchHandler.Create)
		api.DELETE("/saved-searches", savedSearchHandler.Delete)

		ai := api.Group("/ai")
		ai.POST("/job-description", aiHandler.GenerateJobDescription)
		ai.POST("/suggest-skills", aiHandler.SuggestSkills)
		ai.POST("/match-jobs", aiHandler.MatchJobs)
		ai.POST("/extract-job", aiHandler.ExtractJob)
	}

	return r
}
