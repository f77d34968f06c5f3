package main

import (
	"log"
	"net/http"

	"soundlink/backend/internal/auth"
	"soundlink/backend/internal/config"
	"soundlink/backend/internal/database"
	"soundlink/backend/internal/handler"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "soundlink/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           SoundLink API
// @version         1.0
// @description     Social backend for the SoundLink music-streaming client: accounts, friendships and direct chat.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", handler.RegisterUser)
			authRoutes.POST("/login", handler.LoginUser)
		}

		// User routes (protected)
		userRoutes := apiV1.Group("/users")
		userRoutes.Use(auth.AuthMiddleware())
		{
			userRoutes.GET("", handler.SearchUsers) // Must be before /:id
			userRoutes.GET("/me", handler.GetMe)
			userRoutes.PUT("/me", handler.UpdateMe)
			userRoutes.GET("/:id", handler.GetUserByID)

			// Friendship actions
			userRoutes.POST("/:id/request", handler.SendFriendRequest)
			userRoutes.POST("/:id/accept", handler.AcceptFriendRequest)
			userRoutes.POST("/:id/reject", handler.RejectFriendRequest)
			userRoutes.POST("/:id/unfollow", handler.UnfollowFriend)
		}

		// Friendship query routes (protected)
		friendRoutes := apiV1.Group("/friends")
		friendRoutes.Use(auth.AuthMiddleware())
		{
			friendRoutes.GET("", handler.GetFriends)
			friendRoutes.GET("/requests/sent", handler.GetSentRequests)
			friendRoutes.GET("/requests/received", handler.GetReceivedRequests)
			friendRoutes.GET("/discover", handler.DiscoverFriends)
			friendRoutes.GET("/search", handler.SearchNewFriends)
		}

		// Chat routes (protected)
		chatRoutes := apiV1.Group("/chats")
		chatRoutes.Use(auth.AuthMiddleware())
		{
			chatRoutes.GET("", handler.GetAllConversations)
			chatRoutes.GET("/:id", handler.GetConversation)
			chatRoutes.POST("/:id/messages", handler.SendMessage)
		}
	}

	log.Printf("Server is running on %s", config.AppConfig.ServerAddr)
	log.Printf("Swagger UI is available at http://localhost%s/swagger/index.html", config.AppConfig.ServerAddr)
	log.Fatal(router.Run(config.AppConfig.ServerAddr))
}
