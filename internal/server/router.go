package server

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ankitsingh13022003-code/MindCare/internal/handlers"
	"github.com/ankitsingh13022003-code/MindCare/internal/middleware"
	"github.com/ankitsingh13022003-code/MindCare/internal/utils"
)

type RouterConfig struct {
	AuthHandler       *handlers.AuthHandler
	QuizHandler       *handlers.QuizHandler
	AssessmentHandler *handlers.AssessmentHandler
	GuidanceHandler   *handlers.GuidanceHandler
	ContactHandler    *handlers.ContactHandler
	AdminHandler      *handlers.AdminHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	allowOrigins := strings.Split(utils.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173", nil), ",")
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	router.GET("/", handlers.Home)
	router.POST("/signup", cfg.AuthHandler.Register)
	router.POST("/login", cfg.AuthHandler.Login)
	router.GET("/guidance", cfg.GuidanceHandler.GetGuidance)
	router.POST("/contact", cfg.ContactHandler.Submit)

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// Auth
	protected.POST("/refresh", cfg.AuthHandler.Refresh)
	protected.POST("/logout", cfg.AuthHandler.Logout)
	// Quiz
	protected.GET("/quiz", cfg.QuizHandler.GetQuiz)
	protected.POST("/quiz", cfg.QuizHandler.SubmitQuiz)
	// Assessments
	protected.GET("/dashboard", cfg.AssessmentHandler.Dashboard)
	protected.GET("/result/:id", cfg.AssessmentHandler.GetResult)

	// ===============
	// || Staff     ||
	// ===============
	staff := router.Group("/admin-panel")
	staff.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireStaff())
	staff.GET("", cfg.AdminHandler.Overview)
	staff.GET("/questions", cfg.AdminHandler.ListQuestions)
	staff.POST("/questions", cfg.AdminHandler.CreateQuestion)
	staff.PUT("/questions/:id", cfg.AdminHandler.UpdateQuestion)
	staff.DELETE("/questions/:id", cfg.AdminHandler.DeleteQuestion)
	staff.GET("/messages", cfg.AdminHandler.ListMessages)
	staff.GET("/messages/:id", cfg.AdminHandler.GetMessage)
	staff.DELETE("/messages/:id", cfg.AdminHandler.DeleteMessage)

	return router
}
