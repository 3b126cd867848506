package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"todosapp/config"
	"todosapp/database"
	authhandlers "todosapp/internal/handlers/auth"
	todohandlers "todosapp/internal/handlers/todos"
	"todosapp/internal/middleware"
	"todosapp/internal/stores"
	"todosapp/internal/token"
	"todosapp/internal/user"
)

func main() {
	cfg := config.Load()

	db, err := database.ConnectDB(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}

	database.ProcessMigrations(db)

	userStore := &stores.GormUserStore{DB: db}
	todoStore := &stores.GormTodoStore{DB: db}
	hasher := user.BcryptHasher{}
	tokenService := &token.JWTService{Secret: cfg.JWTSecret}

	auth := authhandlers.NewAuthHandler(userStore, hasher, tokenService, cfg.AccessTokenTTL)
	todos := todohandlers.NewTodoHandler(todoStore)

	// Initialize router
	r := gin.Default()

	// Public routes
	r.POST("/auth/", auth.Register)
	r.POST("/token", auth.Login)
	r.GET("/user", auth.ListUsers)

	// Protected routes
	protected := r.Group("/")
	protected.Use(middleware.JWTAuthMiddleware(tokenService))
	{
		protected.GET("/me", auth.CurrentUser)

		protected.GET("/todo/", todos.List)
		protected.GET("/todo/:id", todos.GetByID)
		protected.POST("/todo", todos.Create)
		protected.PUT("/todo/:id", todos.Replace)
		protected.PATCH("/todo/:id", todos.Patch)
		protected.DELETE("/todo/:id", todos.Delete)
	}

	// Example: test route
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Start server on port from env or fallback
	r.Run(":" + cfg.Port)
}
