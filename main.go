package main

import (
	"context"
	"log"
	"time"

	"quizhub-service/internal/cache"
	"quizhub-service/internal/config"
	"quizhub-service/internal/db"
	"quizhub-service/internal/event"
	"quizhub-service/internal/handlers"
	"quizhub-service/internal/repository"
	"quizhub-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.New()
	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	db.InitMongo(cfg.MongoURI)
	defer db.Disconnect()

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitURI != "" && cfg.RabbitExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitURI, cfg.RabbitExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	// Redis stats cache
	var statsCache service.StatsCache
	if cfg.RedisAddr != "" {
		statsCache = cache.NewStatsCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.StatsCacheTTL)
	} else {
		log.Println("Redis not configured, statistics will be computed per request")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database(cfg.MongoDatabase)

	// Repositories, services, handlers
	quizRepo := repository.NewQuizRepository(database)
	questionRepo := repository.NewQuestionRepository(database)
	resultRepo := repository.NewResultRepository(database)
	adminRepo := repository.NewAdminRepository(database)

	quizService := service.NewQuizService(quizRepo, questionRepo)
	questionService := service.NewQuestionService(questionRepo, quizRepo)
	resultService := service.NewResultService(resultRepo, questionRepo, statsCache)
	statsService := service.NewStatsService(resultRepo, quizRepo, questionRepo, statsCache)
	authService := service.NewAuthService(adminRepo, cfg.JWTSecret, cfg.TokenExpiry)

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := authService.EnsureDefaultAdmin(seedCtx, cfg.DefaultAdminUser, cfg.DefaultAdminPass); err != nil {
		log.Printf("Could not seed default admin: %v", err)
	}
	seedCancel()

	quizHandler := handlers.NewQuizHandler(quizService, questionService)
	questionHandler := handlers.NewQuestionHandler(questionService)
	resultHandler := handlers.NewResultHandler(resultService, statsService)
	adminHandler := handlers.NewAdminHandler(authService, statsService)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	// Public surface: catalog reads and result submission
	quizzes := api.Group("/quizzes")
	{
		quizzes.GET("/", quizHandler.ListQuizzes)
		quizzes.GET("/:id", quizHandler.GetQuiz)
		quizzes.GET("/:id/questions", quizHandler.GetQuizQuestions)
	}

	api.POST("/results", func(c *gin.Context) {
		resultHandler.SubmitResult(c)
		if c.Writer.Status() < 300 {
			publisher.Publish(event.ResultSubmitted, gin.H{
				"ip":        c.ClientIP(),
				"timestamp": time.Now(),
			})
		}
	})

	// Admin login is the only public admin route
	admin := api.Group("/admin")
	admin.POST("/login", func(c *gin.Context) {
		adminHandler.Login(c)
		if c.Writer.Status() < 300 {
			publisher.Publish(event.AdminLogin, gin.H{"timestamp": time.Now()})
		}
	})

	// Everything privileged goes through the credential check
	authorized := admin.Group("", handlers.RequireAdmin(authService))
	{
		authorized.POST("/verify", adminHandler.Verify)
		authorized.GET("/dashboard", adminHandler.Dashboard)
		authorized.GET("/quizzes/:id/questions", quizHandler.GetQuizQuestionsFull)
	}

	protected := api.Group("", handlers.RequireAdmin(authService))
	{
		protected.POST("/quizzes", func(c *gin.Context) {
			quizHandler.CreateQuiz(c)
			if c.Writer.Status() < 300 {
				publisher.Publish(event.QuizCreated, gin.H{"timestamp": time.Now()})
			}
		})
		protected.PUT("/quizzes/:id", func(c *gin.Context) {
			quizHandler.UpdateQuiz(c)
			if c.Writer.Status() < 300 {
				publisher.Publish(event.QuizUpdated, gin.H{"id": c.Param("id"), "timestamp": time.Now()})
			}
		})
		protected.DELETE("/quizzes/:id", func(c *gin.Context) {
			quizHandler.DeleteQuiz(c)
			if c.Writer.Status() < 300 {
				publisher.Publish(event.QuizDeleted, gin.H{"id": c.Param("id"), "timestamp": time.Now()})
			}
		})

		protected.POST("/questions", func(c *gin.Context) {
			questionHandler.CreateQuestion(c)
			if c.Writer.Status() < 300 {
				publisher.Publish(event.QuestionCreated, gin.H{"timestamp": time.Now()})
			}
		})
		protected.PUT("/questions/:id", questionHandler.UpdateQuestion)
		protected.DELETE("/questions/:id", questionHandler.DeleteQuestion)

		protected.GET("/results", resultHandler.ListResults)
		protected.GET("/results/quiz/:quizId", resultHandler.ListResultsByQuiz)
		protected.GET("/results/stats/:quizId", resultHandler.QuizStats)
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
