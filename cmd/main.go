package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/ankitsingh13022003-code/MindCare/internal/db"
	"github.com/ankitsingh13022003-code/MindCare/internal/handlers"
	"github.com/ankitsingh13022003-code/MindCare/internal/middleware"
	"github.com/ankitsingh13022003-code/MindCare/internal/platform/logger"
	"github.com/ankitsingh13022003-code/MindCare/internal/repos"
	"github.com/ankitsingh13022003-code/MindCare/internal/server"
	"github.com/ankitsingh13022003-code/MindCare/internal/services"
	"github.com/ankitsingh13022003-code/MindCare/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, relying on process environment")
	}
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "", log)
	if jwtSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is required")
	}
	accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTL := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)
	port := utils.GetEnv("PORT", "8080", log)

	// Database
	databaseService, err := db.NewDatabaseService(log)
	if err != nil {
		log.Fatal("Database init failed", "error", err)
	}
	if err := databaseService.AutoMigrateAll(); err != nil {
		log.Fatal("Database auto migration failed", "error", err)
	}
	theDB := databaseService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	userRepo := repos.NewUserRepo(theDB, log)
	userTokenRepo := repos.NewUserTokenRepo(theDB, log)
	questionRepo := repos.NewQuestionRepo(theDB, log)
	questionOptionRepo := repos.NewQuestionOptionRepo(theDB, log)
	assessmentRepo := repos.NewAssessmentRepo(theDB, log)
	contactMessageRepo := repos.NewContactMessageRepo(theDB, log)

	// Services
	log.Info("Setting up Services from main...")
	authService := services.NewAuthService(theDB, log, userRepo, userTokenRepo, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second, time.Duration(refreshTokenTTL)*time.Second)
	catalogService := services.NewCatalogService(theDB, log, questionRepo, questionOptionRepo)
	scoringService := services.NewScoringService(theDB, log, questionRepo, assessmentRepo)
	assessmentService := services.NewAssessmentService(theDB, log, assessmentRepo)
	guidanceService, err := services.NewGuidanceService(log)
	if err != nil {
		log.Fatal("Could not init GuidanceService", "error", err)
	}
	contactService := services.NewContactService(theDB, log, contactMessageRepo)
	adminService := services.NewAdminService(theDB, log, questionRepo, assessmentRepo, contactMessageRepo)

	// Handlers
	log.Info("Setting up Handlers from main...")
	authHandler := handlers.NewAuthHandler(authService)
	quizHandler := handlers.NewQuizHandler(catalogService, scoringService)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentService, guidanceService)
	guidanceHandler := handlers.NewGuidanceHandler(guidanceService)
	contactHandler := handlers.NewContactHandler(contactService)
	adminHandler := handlers.NewAdminHandler(adminService, catalogService, contactService)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	router := server.NewRouter(server.RouterConfig{
		AuthHandler:       authHandler,
		QuizHandler:       quizHandler,
		AssessmentHandler: assessmentHandler,
		GuidanceHandler:   guidanceHandler,
		ContactHandler:    contactHandler,
		AdminHandler:      adminHandler,
		AuthMiddleware:    authMiddleware,
	})

	log.Info("Starting server", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Server exited", "error", err)
	}
}
