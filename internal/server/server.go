package server

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"

	"github.com/soulverse/profile-server/internal/database"
	"github.com/soulverse/profile-server/internal/handlers"
	"github.com/soulverse/profile-server/internal/middleware"
)

type Server struct {
	db           database.Service
	handler      *handlers.Handler
	templatesDir string
}

// New creates and configures an HTTP server around the given database.
func New(db database.Service) *http.Server {
	s := &Server{
		db:           db,
		handler:      handlers.NewHandler(db.GetDB()),
		templatesDir: "./web/templates",
	}

	router := s.RegisterRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // local dev fallback
	}

	return &http.Server{
		Addr:         "0.0.0.0:" + port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.Use(middleware.ErrorHandler())

	r.HTMLRender = loadTemplates(s.templatesDir)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.db.Health())
	})

	// Server-rendered profile page
	r.GET("/", s.handler.Profile.ShowProfile)

	api := r.Group("/api")
	{
		// Profile routes
		api.POST("/profiles", s.handler.Profile.CreateProfile)
		api.GET("/profiles/:profileId", s.handler.Profile.GetProfile)

		// User routes
		api.POST("/users", s.handler.User.CreateUser)
		api.GET("/users", s.handler.User.GetUsers)
		api.GET("/users/:userId", s.handler.User.GetUser)

		// Comment routes
		api.POST("/:profileId/comments", s.handler.Comment.CreateComment)
		api.GET("/:profileId/comments", s.handler.Comment.GetComments)
		api.GET("/:profileId/comments/:commentId", s.handler.Comment.GetComment)
		api.PUT("/:profileId/comments/:commentId", s.handler.Comment.UpdateComment)
		api.DELETE("/:profileId/comments/:commentId", s.handler.Comment.DeleteComment)

		// Vote routes
		api.POST("/:profileId/comments/:commentId/vote", s.handler.Vote.CastVote)
		api.GET("/:profileId/comments/:commentId/votes", s.handler.Vote.GetVotes)
		api.DELETE("/:profileId/comments/:commentId/vote", s.handler.Vote.RemoveVote)
	}

	return r
}

func loadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	views, err := filepath.Glob(templatesDir + "/*.html")
	if err != nil {
		panic(err)
	}

	for _, view := range views {
		name := filepath.Base(view)
		name = name[:len(name)-len(filepath.Ext(name))]
		files := append(append([]string{}, layouts...), view)
		r.AddFromFiles(name, files...)
	}

	return r
}
