package routes

import (
	"database/sql"

	"examprep_backend/handlers"
	"examprep_backend/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(r *gin.Engine, db *sql.DB, jwtSecret []byte) {
	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(db, jwtSecret)
	chapterHandler := handlers.NewChapterHandler(db)
	discussionHandler := handlers.NewDiscussionHandler(db)
	mockTestHandler := handlers.NewMockTestHandler(db)
	gamificationHandler := handlers.NewGamificationHandler(db)

	r.GET("/health", healthHandler.HealthCheck)

	api := r.Group("/api")

	// Public routes
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.POST("/refresh", authHandler.RefreshToken)

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(db, jwtSecret))
	{
		// Chapter reference routes
		protected.GET("/chapters", chapterHandler.GetChapters)
		protected.GET("/topics", chapterHandler.GetTopics)

		// Discussion routes
		protected.GET("/discussions", discussionHandler.ListDiscussions)
		protected.POST("/discussions", discussionHandler.CreateDiscussion)
		protected.GET("/discussions/:id", discussionHandler.GetDiscussion)
		protected.POST("/discussions/:id/replies", discussionHandler.CreateReply)
		protected.POST("/discussions/:id/vote", discussionHandler.VoteDiscussion)
		protected.POST("/discussions/:id/resolve", discussionHandler.ResolveDiscussion)

		// Reply routes
		protected.POST("/replies/:id/vote", discussionHandler.VoteReply)
		protected.PUT("/replies/:id/accept", discussionHandler.AcceptReply)

		// Mock test routes
		protected.GET("/mock-tests", mockTestHandler.GetMockTests)
		protected.GET("/mock-tests/attempts-this-month", mockTestHandler.GetAttemptsThisMonth)
		protected.GET("/mock-tests/:id", mockTestHandler.GetMockTest)
		protected.POST("/mock-tests/:id/start", mockTestHandler.StartTest)
		protected.POST("/mock-tests/:id/submit", mockTestHandler.SubmitTest)

		// Gamification routes
		protected.GET("/xp/history", gamificationHandler.GetXPHistory)
		protected.GET("/profile", authHandler.GetUserInfo)

		// Logout route
		protected.POST("/logout", authHandler.Logout)

		// User info route
		protected.GET("/userinfo", authHandler.GetUserInfo)
	}
}
