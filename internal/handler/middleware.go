package handler

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/thoughtsblog/internal/db"
)

const (
	sessionUserIDKey = "user_id"
	userContextKey   = "current_user"

	// Session lifetime; the cookie is rewritten on every authenticated
	// request so activity keeps the session alive (sliding expiry).
	sessionMaxAge = 30 * 24 * 60 * 60
)

// LoadUser resolves the caller's identity from the session cookie on every
// request and stores it in the request context.
func LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get(sessionUserIDKey)
		if userID != nil {
			var user db.User
			if err := db.DB.First(&user, userID).Error; err == nil {
				c.Set(userContextKey, &user)

				session.Options(sessions.Options{
					Path:     "/",
					MaxAge:   sessionMaxAge,
					HttpOnly: true,
				})
				session.Set(sessionUserIDKey, user.ID)
				if err := session.Save(); err != nil {
					log.Printf("failed to refresh session: %v", err)
				}
			}
		}
		c.Next()
	}
}

// RequireUser gates protected routes. Anonymous page requests are
// redirected to the login route; anonymous API calls get 401 JSON.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(userContextKey); ok {
			c.Next()
			return
		}

		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "autenticação necessária"})
			return
		}
		c.Redirect(http.StatusFound, "/auth/login")
		c.Abort()
	}
}

// CurrentUser returns the user loaded for this request, if any.
func CurrentUser(c *gin.Context) (*db.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*db.User)
	return user, ok
}

// SetSessionUser writes the identity into the session after sign-in.
func SetSessionUser(c *gin.Context, userID uint) error {
	session := sessions.Default(c)
	session.Options(sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
	})
	session.Set(sessionUserIDKey, userID)
	return session.Save()
}

// ClearSession drops the identity on sign-out.
func ClearSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	return session.Save()
}
