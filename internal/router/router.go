package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/userhub-dev/userhub/internal/auth"
	"github.com/userhub-dev/userhub/internal/handlers"
	"github.com/userhub-dev/userhub/internal/middleware"
	"github.com/userhub-dev/userhub/internal/services"
	"github.com/userhub-dev/userhub/internal/types"
	"gorm.io/gorm"
)

func NewRouter(database *gorm.DB) *gin.Engine {
	r := gin.Default()

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.ErrorHandler())

	userService := services.NewUserService(database, auth.NewBcryptHasher())
	userHandler := handlers.NewUserHandler(userService)
	authHandler := handlers.NewAuthHandler(userService)
	projectHandler := handlers.NewExternalProjectHandler(services.NewExternalProjectService(database))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.GET("/me", middleware.AuthMiddleware(database), authHandler.Me)
		}

		users := api.Group("/users")
		{
			users.POST("", userHandler.CreateUser)
			users.GET("/:user_id", userHandler.GetUser)
			users.PUT("/:user_id", userHandler.UpdateUser)
			users.DELETE("/:user_id", userHandler.DeleteUser)

			// External project endpoints
			users.POST("/:user_id/external-projects", projectHandler.AddExternalProject)
			users.GET("/:user_id/external-projects", projectHandler.ListExternalProjects)
			users.GET("/:user_id/external-projects/:project_id", projectHandler.GetExternalProject)
			users.PUT("/:user_id/external-projects/:project_id", projectHandler.UpdateExternalProject)
			users.DELETE("/:user_id/external-projects/:project_id", projectHandler.DeleteExternalProject)
		}
	}

	return r
}
