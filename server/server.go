package server

import (
	"blog-server/cache"
	"blog-server/confs"
	"blog-server/db"
	"blog-server/handlers"
	httpHandler "blog-server/handlers/http"
	"blog-server/repositories"
	"blog-server/services"
	"blog-server/usecases"
	"blog-server/ws"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app *gin.Engine
	cfg *confs.Config
	db  db.Database
}

func NewServer(cfg *confs.Config, database db.Database) *Server {
	return &Server{
		app: gin.Default(),
		cfg: cfg,
		db:  database,
	}
}

func (s *Server) Start() {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	categoryRepo := repositories.NewCategoryPgRepository(s.db)
	postRepo := repositories.NewPostPgRepository(s.db)

	// View counter and its flusher
	viewCounter := cache.NewViewCounter()
	flusher := services.NewViewFlusher(viewCounter, postRepo, s.cfg.ViewFlushInterval)
	flusher.Start()

	// Initialize use cases
	authUseCase := usecases.NewAuthUseCase(userRepo)
	postUseCase := usecases.NewPostUseCase(postRepo, categoryRepo, viewCounter)
	categoryUseCase := usecases.NewCategoryUseCase(categoryRepo)
	seederUseCase := usecases.NewSeederUseCase(userRepo, categoryRepo, postRepo)

	// Live post feed
	manager := ws.NewManager()
	feedHandler := handlers.NewFeedHandler(manager)

	// Initialize handlers
	secret := []byte(s.cfg.JWTSecret)
	authHandler := httpHandler.NewAuthHandler(authUseCase, secret, s.cfg.TokenTTL)
	postHandler := httpHandler.NewPostHandler(postUseCase, manager)
	categoryHandler := httpHandler.NewCategoryHandler(categoryUseCase)
	uploadHandler := httpHandler.NewUploadHandler(s.cfg.UploadDir)
	seederHandler := httpHandler.NewSeederHandler(seederUseCase)
	statsHandler := handlers.NewStatsHandler(flusher)

	protect := httpHandler.Protect(authUseCase, secret)

	// Serve uploaded images
	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("failed to create upload dir: %v", err)
	}
	s.app.Static("/uploads", s.cfg.UploadDir)

	// Setup API routes
	api := s.app.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Post routes
		posts := api.Group("/posts")
		{
			posts.GET("", postHandler.GetPosts)
			posts.POST("", protect, postHandler.CreatePost)
			posts.GET("/:identifier", postHandler.GetPost) // id or slug
			posts.PUT("/:identifier", protect, postHandler.UpdatePost)
			posts.DELETE("/:identifier", protect, postHandler.DeletePost)
		}

		// Category routes
		categories := api.Group("/categories")
		{
			categories.GET("", categoryHandler.GetCategories)
			categories.POST("", protect, categoryHandler.CreateCategory)
		}

		// Image upload
		api.POST("/upload", uploadHandler.Upload)

		// Development seeder
		api.POST("/seeder", protect, seederHandler.Seed)

		// View-counter management endpoints
		cacheGroup := api.Group("/cache")
		{
			cacheGroup.GET("/stats", statsHandler.GetStats)
			cacheGroup.POST("/flush", protect, statsHandler.Flush)
		}
	}

	// Live updates feed
	s.app.GET("/ws", feedHandler.HandleFeedWS)

	if err := s.app.Run("0.0.0.0:" + s.cfg.Port); err != nil {
		panic(err)
	}
}
