package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/thoughtsblog/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db           *gorm.DB
	auth         *service.AuthService
	profiles     *service.ProfileService
	interests    *service.InterestService
	feed         *service.FeedService
	articles     *service.ArticleService
	interactions *service.InteractionService
	uploadDir    string
	uploadURL    string
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, uploadDir, uploadURL string) *API {
	return &API{
		db:           gdb,
		auth:         service.NewAuthService(gdb),
		profiles:     service.NewProfileService(gdb),
		interests:    service.NewInterestService(gdb),
		feed:         service.NewFeedService(gdb),
		articles:     service.NewArticleService(gdb),
		interactions: service.NewInteractionService(gdb),
		uploadDir:    uploadDir,
		uploadURL:    uploadURL,
	}
}

// DB exposes the underlying gorm instance for legacy paths.
func (a *API) DB() *gorm.DB {
	return a.db
}

func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}

	if user, ok := CurrentUser(c); ok {
		payload["CurrentUser"] = user
	}
	payload["CurrentPath"] = c.Request.URL.Path

	c.HTML(status, template, payload)
}
