package router

import (
	"github.com/gin-gonic/gin"
	"github.com/thoughtsblog/internal/handler"
)

// RegisterRoutes wires the route surface onto the engine. Everything
// outside the public set sits behind the session guard.
func RegisterRoutes(r *gin.Engine, api *handler.API) {
	r.Use(handler.LoadUser())

	// Public routes
	r.GET("/", api.ShowHome)
	r.GET("/error", api.ShowError)

	r.GET("/auth/login", api.ShowLogin)
	r.POST("/auth/login", api.Login)
	r.GET("/auth/sign-up", api.ShowSignUp)
	r.POST("/auth/sign-up", api.SignUp)
	r.GET("/auth/check-email", api.ShowCheckEmail)
	r.GET("/auth/logout", api.Logout)

	// Protected pages
	pages := r.Group("/")
	pages.Use(handler.RequireUser())
	{
		pages.GET("/onboarding", api.ShowOnboarding)
		pages.GET("/feed", api.ShowFeed)
		pages.GET("/article/:id", api.ShowArticle)
		pages.GET("/profile", api.ShowProfile)
		pages.GET("/settings", api.ShowSettings)
		pages.GET("/write", api.ShowWrite)
	}

	// Protected JSON API
	apiGroup := r.Group("/api")
	apiGroup.Use(handler.RequireUser())
	{
		apiGroup.GET("/categories", api.GetCategories)
		apiGroup.GET("/feed", api.GetFeed)

		apiGroup.POST("/articles", api.CreateArticle)
		apiGroup.POST("/articles/:id/publish", api.PublishArticle)
		apiGroup.POST("/articles/:id/like", api.ToggleLike)
		apiGroup.POST("/articles/:id/bookmark", api.ToggleBookmark)
		apiGroup.GET("/articles/:id/comments", api.GetComments)
		apiGroup.POST("/articles/:id/comments", api.CreateComment)
		apiGroup.GET("/articles/:id/suggested", api.GetSuggested)

		apiGroup.POST("/uploads", api.UploadCover)

		apiGroup.GET("/profile", api.GetProfile)
		apiGroup.PUT("/profile", api.UpdateProfile)
		apiGroup.PUT("/interests", api.UpdateInterests)
		apiGroup.POST("/onboarding", api.SaveOnboarding)
	}
}
